package models

// Form is a named, ordered composition of sections and field associations.
type Form struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Sections    []*Section          `json:"sections"`
	Fields      []*FieldAssociation `json:"fields"`
}

// FieldAssociation links a form to a field definition. SectionID is a weak
// reference: the association does not own the section it points to.
type FieldAssociation struct {
	FormID     int64            `json:"form_id"`
	FieldID    int64            `json:"field_id"`
	SectionID  *int64           `json:"section_id"`
	Order      int              `json:"order"`
	IsRequired bool             `json:"is_required"`
	Field      *FieldDefinition `json:"field,omitempty"`
}
