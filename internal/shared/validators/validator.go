package validators

import (
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagLogFileName accepts a bare file name that stays inside the log directory.
const TagLogFileName = "logfilename"

// New creates a new validator instance with the custom tags registered.
func New() *Validate {
	validate := validator.New()
	_ = validate.RegisterValidation(TagLogFileName, isLogFileName)
	return validate
}

func isLogFileName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}
