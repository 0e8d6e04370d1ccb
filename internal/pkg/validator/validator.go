package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Registration role validation
	validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		role := fl.Field().String()
		return role == "client" || role == "photographer"
	})

	// Weekday name validation for availability entries
	validate.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		day := fl.Field().String()
		validDays := []string{
			"Monday", "Tuesday", "Wednesday", "Thursday",
			"Friday", "Saturday", "Sunday",
		}
		for _, d := range validDays {
			if day == d {
				return true
			}
		}
		return false
	})
}

// Validate validates a struct and returns a map of field errors, or nil.
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email address"
		case "min":
			errors[field] = fmt.Sprintf("Must be at least %s", err.Param())
		case "max":
			errors[field] = fmt.Sprintf("Must be at most %s", err.Param())
		case "gte":
			errors[field] = fmt.Sprintf("Must be %s or greater", err.Param())
		case "lte":
			errors[field] = fmt.Sprintf("Must be %s or less", err.Param())
		case "role":
			errors[field] = "Role must be 'client' or 'photographer'"
		case "weekday":
			errors[field] = "Must be a valid weekday name"
		case "datetime":
			errors[field] = "Invalid date format, expected YYYY-MM-DD"
		default:
			errors[field] = fmt.Sprintf("Failed validation: %s", err.Tag())
		}
	}
	return errors
}
