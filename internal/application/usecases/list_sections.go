package usecases

import (
	"context"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
)

// ListSections returns the sections of a form in display order
type ListSections struct {
	repo ports.SectionRepository
}

// NewListSections creates the use case
func NewListSections(repo ports.SectionRepository) *ListSections {
	return &ListSections{repo: repo}
}

func (uc *ListSections) Execute(ctx context.Context, formID int64) ([]*models.Section, error) {
	return uc.repo.ListByForm(ctx, formID)
}
