package models

import (
	"fmt"
	"strings"

	"github.com/paulossjunior/dynamic-forms/pkg/constants"
	"github.com/paulossjunior/dynamic-forms/pkg/errors"
)

// FieldDefinition is a reusable, typed field schema independent of any form.
// ValidationRules is stored as-is and never evaluated.
type FieldDefinition struct {
	ID              int64          `json:"id"`
	EntityType      string         `json:"entity_type"`
	KeyName         string         `json:"key_name"`
	Label           string         `json:"label"`
	FieldType       string         `json:"field_type"`
	Options         []string       `json:"options"`
	ValidationRules map[string]any `json:"validation_rules"`
	IsActive        bool           `json:"is_active"`
}

// Validate checks the single-record invariants of a field definition
func (f *FieldDefinition) Validate() error {
	if strings.TrimSpace(f.EntityType) == "" {
		return errors.NewValidationError(constants.FieldEntityType, "entity_type is required")
	}
	if strings.TrimSpace(f.KeyName) == "" || len(f.KeyName) > constants.MaxKeyNameLength {
		return errors.NewValidationError(constants.FieldKeyName, "key_name is required and must be <= 255 chars")
	}
	if strings.TrimSpace(f.Label) == "" {
		return errors.NewValidationError(constants.FieldLabel, "label is required")
	}
	if !constants.IsValidFieldType(f.FieldType) {
		return errors.NewValidationError(constants.FieldFieldType,
			fmt.Sprintf("unsupported field type '%s' (expected one of %s)", f.FieldType, strings.Join(constants.FieldTypes, ", ")))
	}
	return nil
}

// Normalize replaces nil collections so they serialize as [] and {}
func (f *FieldDefinition) Normalize() {
	if f.Options == nil {
		f.Options = []string{}
	}
	if f.ValidationRules == nil {
		f.ValidationRules = map[string]any{}
	}
}
