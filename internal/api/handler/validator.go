package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tradeco/board/internal/core/domain"
)

// formValidator lets Echo run go-playground/validator over the bound form structs.
// Field errors are reported under the form field name, wrapped in domain.ErrInvalidInput.
type formValidator struct {
	v *validator.Validate
}

// NewValidator returns the validator assigned to echo.Echo.Validator.
func NewValidator() *formValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &formValidator{v: v}
}

func (fv *formValidator) Validate(i any) error {
	err := fv.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	// the first failing field is enough for a form message
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fieldMessage(ve[0]))
}

func fieldMessage(fe validator.FieldError) string {
	label := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return label + " must be a valid email"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "datetime":
		return label + " must be a date like 2006-01-02"
	}
	return fmt.Sprintf("%s is not valid", label)
}
