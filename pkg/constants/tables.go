package constants

// Table names
const (
	TableFieldDefinition = "custom_field_definitions"
	TableForm            = "forms"
	TableSection         = "sections"
	TableFormField       = "form_fields"
	TablePerson          = "people"
)

// Column names
const (
	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldFormID          = "form_id"
	FieldFieldID         = "field_id"
	FieldSectionID       = "section_id"
	FieldOrderIndex      = "order_index"
	FieldOrder           = "`order`"
	FieldIsRequired      = "is_required"
	FieldEntityType      = "entity_type"
	FieldKeyName         = "key_name"
	FieldLabel           = "label"
	FieldFieldType       = "field_type"
	FieldOptions         = "options"
	FieldValidationRules = "validation_rules"
	FieldIsActive        = "is_active"
	FieldEmail           = "email"
	FieldCustomData      = "custom_data"
)

// Field length limits
const (
	MaxSectionNameLength        = 100
	MaxSectionDescriptionLength = 500
	MaxFormNameLength           = 255
	MaxKeyNameLength            = 255
)
