package usecases

import (
	"context"

	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
)

// DeleteSection removes a section without checking that it exists
type DeleteSection struct {
	repo ports.SectionRepository
}

// NewDeleteSection creates the use case
func NewDeleteSection(repo ports.SectionRepository) *DeleteSection {
	return &DeleteSection{repo: repo}
}

func (uc *DeleteSection) Execute(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
