package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the accumulated validation result.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	validate   = validator.New()
	phoneRegex = regexp.MustCompile(`^[0-9]{10,15}$`)
)

func init() {
	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
}

// ValidateStruct runs every rule on the input and returns all failures at
// once, so a client can fix the whole payload in a single round trip.
func ValidateStruct(input interface{}) []FieldError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var errors []FieldError
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errors = append(errors, FieldError{
			Field:   jsonFieldName(fieldErr),
			Message: messageFor(fieldErr),
		})
	}
	return errors
}

func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if len(name) > 0 {
		return strings.ToLower(name[:1]) + name[1:]
	}
	return name
}

func messageFor(fe validator.FieldError) string {
	field := jsonFieldName(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please provide a valid email"
	case "phone":
		return "Please provide a valid phone number (10-15 digits)"
	case "min":
		if isTextKind(fe.Kind()) {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if isTextKind(fe.Kind()) {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("Invalid %s", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// min/max mean length for strings and slices but magnitude for numbers, so
// the error wording differs by kind.
func isTextKind(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// NormalizeEmail trims and lowercases.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
