package models

import (
	"strings"

	"github.com/paulossjunior/dynamic-forms/pkg/constants"
	"github.com/paulossjunior/dynamic-forms/pkg/errors"
)

// Person holds per-person responses keyed by field key_name. CustomData keys
// are not tied to field definitions; consistency is advisory.
type Person struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	CustomData map[string]any `json:"custom_data"`
}

// Validate checks the single-record invariants of a person
func (p *Person) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.NewValidationError(constants.FieldName, "name is required")
	}
	if strings.TrimSpace(p.Email) == "" || !strings.Contains(p.Email, "@") {
		return errors.NewValidationError(constants.FieldEmail, "a valid email is required")
	}
	return nil
}
