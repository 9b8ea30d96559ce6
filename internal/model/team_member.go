package model

type TeamMember struct {
	ID        int64   `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Email     string  `gorm:"uniqueIndex;not null" json:"email"`
	Role      string  `gorm:"not null" json:"role"`
	AvatarURL *string `gorm:"column:avatar_url" json:"avatarUrl"`
}

// TeamMemberPatch is a partial team member update.
type TeamMemberPatch struct {
	Name      *string
	Email     *string
	Role      *string
	AvatarURL *string
}

func (p TeamMemberPatch) Apply(m *TeamMember) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.AvatarURL != nil {
		m.AvatarURL = p.AvatarURL
	}
}

func (p TeamMemberPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.Role != nil {
		cols["role"] = *p.Role
	}
	if p.AvatarURL != nil {
		cols["avatar_url"] = *p.AvatarURL
	}
	return cols
}

// DefaultTeamMembers is the roster restored by a data reset.
func DefaultTeamMembers() []TeamMember {
	return []TeamMember{
		{Name: "Zacchaeus James", Email: "zacchaeus@company.com", Role: "Team Lead"},
		{Name: "Glory Arogundade", Email: "glory@company.com", Role: "UI Designer"},
		{Name: "Fiyinfoluwa Enis", Email: "fiyinfoluwa@company.com", Role: "Developer"},
		{Name: "Joseph", Email: "joseph@company.com", Role: "Developer"},
	}
}
