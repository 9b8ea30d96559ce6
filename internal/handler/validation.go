package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the domain tags on gin's validator and makes
// field errors report JSON names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return service.RegisterTaskTags(v)
}

// bindingError turns a gin binding failure into a ValidationError.
func bindingError(err error) *service.ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &service.ValidationError{}
		for _, fe := range verrs {
			out.Errors = append(out.Errors, service.FieldError{
				Field:   fe.Field(),
				Message: fieldMessage(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &service.ValidationError{Errors: []service.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("Expected %s", typeErr.Type.String()),
		}}}
	}

	return &service.ValidationError{Errors: []service.FieldError{{
		Field:   "body",
		Message: "Malformed request body",
	}}}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email"
	case "hexcolor":
		return "Color must be a hex color"
	case "taskstatus":
		return "Status must be one of " + strings.Join(model.TaskStatuses, ", ")
	case "taskpriority":
		return "Priority must be one of " + strings.Join(model.TaskPriorities, ", ")
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
