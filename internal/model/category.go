package model

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#3b82f6"

// Category may point at a parent category. Cycles are not prevented.
type Category struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	ParentID *int64 `json:"parentId"`
	Color    string `gorm:"not null;default:#3b82f6" json:"color"`
}

// CategoryPatch holds the fields of a partial update. ClearParent sets
// parent_id to NULL and wins over ParentID.
type CategoryPatch struct {
	Name        *string
	ParentID    *int64
	Color       *string
	ClearParent bool
}

func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.ParentID != nil {
		c.ParentID = p.ParentID
	}
	if p.ClearParent {
		c.ParentID = nil
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
}

func (p CategoryPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.ParentID != nil {
		cols["parent_id"] = *p.ParentID
	}
	if p.ClearParent {
		cols["parent_id"] = nil
	}
	if p.Color != nil {
		cols["color"] = *p.Color
	}
	return cols
}
