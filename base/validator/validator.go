package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground's validator so callers can map failures on
// their own field names.
type Validator struct {
	validator *validator.Validate
}

func New() *Validator {
	return &Validator{validator.New()}
}

// Validate checks struct tags on i.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// MissingFields returns the struct field names that failed the `required`
// tag, in declaration order. Other failures are ignored.
func MissingFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := []string{}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			fields = append(fields, fe.StructField())
		}
	}
	return fields
}
