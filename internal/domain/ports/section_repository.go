package ports

import (
	"context"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
)

// SectionRepository persists sections independently of storage technology.
type SectionRepository interface {
	// Create persists a new section (ID nil on input) and returns it with an assigned ID.
	// A missing owning form yields a NotFoundError.
	Create(ctx context.Context, section *models.Section) (*models.Section, error)

	// GetByID returns nil, nil when no section has the given id.
	GetByID(ctx context.Context, id int64) (*models.Section, error)

	// ListByForm returns the sections of a form ordered ascending by Order.
	ListByForm(ctx context.Context, formID int64) ([]*models.Section, error)

	// Update replaces name, description and order of an existing section.
	// Returns a NotFoundError when the id does not exist.
	Update(ctx context.Context, section *models.Section) (*models.Section, error)

	// Delete removes a section. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
}
