package models

import (
	"unicode/utf8"

	"github.com/paulossjunior/dynamic-forms/pkg/constants"
	"github.com/paulossjunior/dynamic-forms/pkg/errors"
)

// Section is a named, ordered grouping of fields within a form.
// ID is nil until the section is persisted; FormID is zero while the owning
// form is still being created.
type Section struct {
	ID          *int64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Order       int     `json:"order"`
	FormID      int64   `json:"form_id"`
}

// Validate checks the single-record invariants of a section.
// Uniqueness of Order within a form is not checked here.
func (s *Section) Validate() error {
	if s.Name == "" || utf8.RuneCountInString(s.Name) > constants.MaxSectionNameLength {
		return errors.NewValidationError(constants.FieldName, "Section name is required and must be <= 100 chars")
	}
	if s.Description != nil && utf8.RuneCountInString(*s.Description) > constants.MaxSectionDescriptionLength {
		return errors.NewValidationError(constants.FieldDescription, "Section description must be <= 500 chars")
	}
	if s.Order < 0 {
		return errors.NewValidationError("order", "Section order must be >= 0")
	}
	return nil
}

// IDValue returns the persisted id, or zero when unset
func (s *Section) IDValue() int64 {
	if s.ID == nil {
		return 0
	}
	return *s.ID
}
