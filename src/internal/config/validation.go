package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	loggerNameRegexp   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
	categoryNameRegexp = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "logger_name":
		return "must start with a letter or digit and consist only of letters, digits, '.', '_' and '-'"
	case "category_name":
		return "must consist only of lowercase letters, numbers, and underscores [a-z0-9_] and start with a letter"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // For logger profiles: the profile name (e.g., "plugin")
	FieldPath string // Dot-notation field path (e.g., "general.cygwin", "logger.0.categories")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("logger_name", validateLoggerName); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("category_name", validateCategoryName); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: logger profile name format
func validateLoggerName(fl validator.FieldLevel) bool {
	return loggerNameRegexp.MatchString(fl.Field().String())
}

// Custom validator: category name format
func validateCategoryName(fl validator.FieldLevel) bool {
	return categoryNameRegexp.MatchString(fl.Field().String())
}
