package config

import (
	"errors"
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		General:    &GeneralConfig{Cygwin: CygwinAuto},
		Categories: map[string]uint64{"errors": 1, "trace": 2},
		Loggers: []*LoggerConfig{
			{Name: "plugin", Categories: []string{"errors"}, OutputFile: "{{name}}.log"},
		},
		_absConfigFilePath: "/etc/debug-tools/debug-tools.toml",
	}
}

func validationErrorsOf(t *testing.T, err error) ValidationErrors {
	t.Helper()

	var ve ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("Expected ValidationErrors, got %T: %v", err, err)
	}
	return ve
}

func hasFieldError(ve ValidationErrors, fieldPath, message string) bool {
	for _, e := range ve {
		if e.FieldPath == fieldPath && strings.Contains(e.Message, message) {
			return true
		}
	}
	return false
}

func TestValidateConfig_Success(t *testing.T) {
	if err := validConfig().ValidateConfig(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestValidateConfig_NoLoggers(t *testing.T) {
	cfg := validConfig()
	cfg.Loggers = nil

	ve := validationErrorsOf(t, cfg.ValidateConfig())
	if !hasFieldError(ve, "logger", "at least one logger") {
		t.Errorf("Expected missing logger error, got: %v", ve)
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.General.Cygwin = "maybe"
	cfg.Categories["Bad-Name"] = 4
	cfg.Categories["empty"] = 0
	cfg.Loggers = []*LoggerConfig{
		{Name: ""},
		{Name: "-dash"},
		{Name: "plugin", Categories: []string{"missing"}},
		{Name: "plugin"},
		{Name: "tmpl", OutputFile: "{{host}}.log"},
		{Name: "clear", ClearOnStart: true},
	}

	ve := validationErrorsOf(t, cfg.ValidateConfig())

	expected := []struct {
		fieldPath string
		message   string
	}{
		{"general.cygwin", "must be one of"},
		{"categories.Bad-Name", "category name"},
		{"categories.empty", "at least one bit"},
		{"logger.0.name", "field is required"},
		{"logger.1.name", "must start with a letter or digit"},
		{"categories", "unknown category: missing"},
		{"name", "duplicate logger name: plugin"},
		{"output_file", "unknown template variable"},
		{"clear_on_start", "requires output_file"},
	}

	for _, e := range expected {
		if !hasFieldError(ve, e.fieldPath, e.message) {
			t.Errorf("Expected error %s: %s, got:\n%v", e.fieldPath, e.message, ve)
		}
	}
}

func TestValidateConfig_InvalidCategoryNameInProfile(t *testing.T) {
	cfg := validConfig()
	cfg.Loggers[0].Categories = []string{"Errors"}

	ve := validationErrorsOf(t, cfg.ValidateConfig())
	if !hasFieldError(ve, "logger.0.categories[0]", "lowercase") {
		t.Errorf("Expected category_name error, got: %v", ve)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	ve := ValidationErrors{
		{FieldPath: "logger", Message: "configuration must contain at least one logger"},
		{ItemName: "plugin", FieldPath: "categories", Message: "unknown category: x"},
	}

	expected := "validation failed with 2 error(s):\n" +
		"  1. logger: configuration must contain at least one logger\n" +
		"  2. [plugin] categories: unknown category: x\n"
	if ve.Error() != expected {
		t.Errorf("Error() = %q, want %q", ve.Error(), expected)
	}
	if (ValidationErrors{}).Error() != "no validation errors" {
		t.Error("Expected empty message for no errors")
	}
}
