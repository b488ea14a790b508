package constants

// Field types accepted for custom field definitions
const (
	FieldTypeText        = "text"
	FieldTypeNumber      = "number"
	FieldTypeSelect      = "select"
	FieldTypeMultiSelect = "multiselect"
	FieldTypeCheckbox    = "checkbox"
	FieldTypeRadio       = "radio"
)

// FieldTypes lists the supported field type vocabulary
var FieldTypes = []string{
	FieldTypeText,
	FieldTypeNumber,
	FieldTypeSelect,
	FieldTypeMultiSelect,
	FieldTypeCheckbox,
	FieldTypeRadio,
}

// IsValidFieldType checks if a field type belongs to the vocabulary
func IsValidFieldType(fieldType string) bool {
	for _, ft := range FieldTypes {
		if ft == fieldType {
			return true
		}
	}
	return false
}

// IsChoiceFieldType reports whether values of the type come from the options list
func IsChoiceFieldType(fieldType string) bool {
	switch fieldType {
	case FieldTypeSelect, FieldTypeMultiSelect, FieldTypeRadio:
		return true
	}
	return false
}

// Entity types
const (
	EntityTypePerson = "person"
)

// Database drivers
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)
