package ports

import (
	"context"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
)

// FieldDefinitionRepository persists custom field definitions.
type FieldDefinitionRepository interface {
	// Create returns a ConflictError when (entity_type, key_name) is taken.
	Create(ctx context.Context, field *models.FieldDefinition) (*models.FieldDefinition, error)
	GetByKey(ctx context.Context, entityType, keyName string) (*models.FieldDefinition, error)
	ListActive(ctx context.Context, entityType string) ([]*models.FieldDefinition, error)
	ListAllActive(ctx context.Context) ([]*models.FieldDefinition, error)
	SetActive(ctx context.Context, entityType, keyName string, active bool) (bool, error)
}

// PersonRepository persists people and their custom data.
type PersonRepository interface {
	// Create returns a ConflictError when the email is taken.
	Create(ctx context.Context, person *models.Person) (*models.Person, error)
	GetByID(ctx context.Context, id int64) (*models.Person, error)
	List(ctx context.Context) ([]*models.Person, error)
}
