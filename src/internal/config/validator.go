package config

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.General != nil {
		if err := validate.Struct(c.General); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
		}
	}

	validationErrors = append(validationErrors, c.validateCategories()...)

	if len(c.Loggers) == 0 {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "logger",
			Message:   "configuration must contain at least one logger",
		})
	} else {
		validationErrors = append(validationErrors, c.validateLoggers()...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateCategories() ValidationErrors {
	var validationErrors ValidationErrors

	// Sorted for a stable error order
	names := make([]string, 0, len(c.Categories))
	for name := range c.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !categoryNameRegexp.MatchString(name) {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: "categories." + name,
				Message:   "category name must consist only of lowercase letters, numbers, and underscores [a-z0-9_] and start with a letter",
			})
		}
		if c.Categories[name] == 0 {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: "categories." + name,
				Message:   "category value must have at least one bit set",
			})
		}
	}

	return validationErrors
}

func (c *Config) validateLoggers() ValidationErrors {
	var validationErrors ValidationErrors
	seenNames := make(map[string]bool)

	for i, lc := range c.Loggers {
		itemName := lc.Name
		if itemName == "" {
			itemName = fmt.Sprintf("logger[%d]", i)
		}

		// Validate struct fields
		if err := validate.Struct(lc); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("logger.%d", i), itemName)...)
		}

		// Check duplicate profile name
		if lc.Name != "" && seenNames[lc.Name] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "name",
				Message:   fmt.Sprintf("duplicate logger name: %s", lc.Name),
			})
		}
		seenNames[lc.Name] = true

		// Validate categories exist
		for _, category := range lc.Categories {
			if _, ok := c.Categories[category]; !ok {
				validationErrors = append(validationErrors, ValidationError{
					ItemName:  itemName,
					FieldPath: "categories",
					Message:   fmt.Sprintf("unknown category: %s", category),
				})
			}
		}

		// Validate output file template
		if lc.OutputFile != "" {
			if _, err := c.RenderOutputFile(lc, time.Now()); err != nil {
				validationErrors = append(validationErrors, ValidationError{
					ItemName:  itemName,
					FieldPath: "output_file",
					Message:   err.Error(),
				})
			}
		}

		if lc.ClearOnStart && lc.OutputFile == "" {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "clear_on_start",
				Message:   "requires output_file",
			})
		}
	}

	return validationErrors
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
