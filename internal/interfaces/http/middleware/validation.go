package middleware

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// seqCodePattern matches sequential identifiers such as "U00042" or
// "CT00001": an uppercase prefix followed by a zero-padded number.
var seqCodePattern = regexp.MustCompile(`^[A-Z]{1,3}[0-9]{4,}$`)

// SetupValidator configures gin's validator: field names in error
// messages come from JSON tags, and the "seqcode" tag checks the
// sequential identifier format.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("seqcode", func(fl validator.FieldLevel) bool {
			return seqCodePattern.MatchString(fl.Field().String())
		})
	}
}

// ValidationMessage renders a single validation error as a client-facing
// message keyed on the JSON field name.
func ValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return e.Field() + " must be a valid email address"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "seqcode":
		return e.Field() + " must be a sequential identifier such as U00042"
	default:
		return e.Field() + " is invalid"
	}
}

// ValidationMessages flattens validator errors into messages; non-validator
// errors produce a single generic entry.
func ValidationMessages(err error) []string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{"Invalid request body"}
	}
	msgs := make([]string, 0, len(fieldErrors))
	for _, e := range fieldErrors {
		msgs = append(msgs, ValidationMessage(e))
	}
	return msgs
}
