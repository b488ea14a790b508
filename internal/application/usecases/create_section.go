package usecases

import (
	"context"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
)

// CreateSectionRequest carries the attributes of a new section
type CreateSectionRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Order       int     `json:"order"`
	FormID      int64   `json:"form_id"`
}

// CreateSection validates and persists a new section
type CreateSection struct {
	repo ports.SectionRepository
}

// NewCreateSection creates the use case
func NewCreateSection(repo ports.SectionRepository) *CreateSection {
	return &CreateSection{repo: repo}
}

// Execute validates before any write. A missing form surfaces as a NotFoundError.
func (uc *CreateSection) Execute(ctx context.Context, req CreateSectionRequest) (*models.Section, error) {
	section := &models.Section{
		Name:        req.Name,
		Description: req.Description,
		Order:       req.Order,
		FormID:      req.FormID,
	}
	if err := section.Validate(); err != nil {
		return nil, err
	}
	return uc.repo.Create(ctx, section)
}
