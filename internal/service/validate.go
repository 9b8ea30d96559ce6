package service

import (
	"slices"
	"strings"

	"taskflow/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterTaskTags(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterTaskTags adds the taskstatus and taskpriority tags to v.
func RegisterTaskTags(v *validator.Validate) error {
	if err := v.RegisterValidation("taskstatus", memberOf(model.TaskStatuses)); err != nil {
		return err
	}
	return v.RegisterValidation("taskpriority", memberOf(model.TaskPriorities))
}

func memberOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	}
}

// checkVar records message against field when value fails tag.
func checkVar(v *ValidationError, field string, value interface{}, tag, message string) {
	if err := validate.Var(value, tag); err != nil {
		v.add(field, message)
	}
}

func checkTitle(v *ValidationError, title string) {
	if strings.TrimSpace(title) == "" {
		v.add("title", "Title is required")
	}
}

func checkStatus(v *ValidationError, status string) {
	checkVar(v, "status", status, "taskstatus", "Status must be one of todo, in_progress, completed")
}

func checkPriority(v *ValidationError, priority string) {
	checkVar(v, "priority", priority, "taskpriority", "Priority must be one of low, medium, high, urgent")
}
