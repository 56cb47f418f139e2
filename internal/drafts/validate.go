package drafts

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// contactRules mirrors the review-step form schema
type contactRules struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"required,email"`
	Phone string `validate:"required,min=7"`
}

// validateContact checks the contact fields and reports the first offending
// field as a ValidationError.
func validateContact(info ContactInfo) error {
	rules := contactRules{
		Name:  strings.TrimSpace(info.Name),
		Email: strings.TrimSpace(info.Email),
		Phone: strings.TrimSpace(info.Phone),
	}

	err := validate.Struct(rules)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return validationErr(field, "is required")
	case "email":
		return validationErr(field, "must be a valid email address")
	case "min":
		return validationErr(field, "is too short")
	default:
		return validationErr(field, "is invalid")
	}
}
