package ports

import (
	"context"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
)

// FormRepository persists form headers. Sections and associations are loaded
// through their own repositories.
type FormRepository interface {
	// Create returns a ConflictError when the name is already taken.
	Create(ctx context.Context, form *models.Form) (*models.Form, error)
	GetByID(ctx context.Context, id int64) (*models.Form, error)
	GetByName(ctx context.Context, name string) (*models.Form, error)
	List(ctx context.Context) ([]*models.Form, error)
	// Delete cascades to the form's sections and field associations.
	Delete(ctx context.Context, id int64) (bool, error)
}

// FieldAssociationRepository persists form <-> field links.
type FieldAssociationRepository interface {
	// Create returns a NotFoundError when the field definition does not exist.
	Create(ctx context.Context, assoc *models.FieldAssociation) (*models.FieldAssociation, error)
	Get(ctx context.Context, formID, fieldID int64) (*models.FieldAssociation, error)
	// ListByForm returns associations ordered by Order, each carrying its field definition.
	ListByForm(ctx context.Context, formID int64) ([]*models.FieldAssociation, error)
	SetSection(ctx context.Context, formID, fieldID int64, sectionID *int64) error
}
