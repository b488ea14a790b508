package usecases

import (
	"context"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
	"github.com/paulossjunior/dynamic-forms/pkg/errors"
	"github.com/paulossjunior/dynamic-forms/pkg/patch"
	"github.com/paulossjunior/dynamic-forms/pkg/utils"
)

// UpdateSectionRequest is a partial update. Omitted keys keep their current
// value; an explicit null clears description.
type UpdateSectionRequest struct {
	Name        patch.Value[string] `json:"name"`
	Description patch.Value[string] `json:"description"`
	Order       patch.Value[int]    `json:"order"`
}

// UpdateSection merges supplied fields into an existing section
type UpdateSection struct {
	repo ports.SectionRepository
}

// NewUpdateSection creates the use case
func NewUpdateSection(repo ports.SectionRepository) *UpdateSection {
	return &UpdateSection{repo: repo}
}

func (uc *UpdateSection) Execute(ctx context.Context, id int64, req UpdateSectionRequest) (*models.Section, error) {
	section, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, errors.NewNotFoundError("Section", utils.FormatID(id))
	}

	if err := merge(section, req); err != nil {
		return nil, err
	}
	if err := section.Validate(); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, section)
}

func merge(section *models.Section, req UpdateSectionRequest) error {
	if req.Name.Set {
		if !req.Name.Present() {
			return errors.NewValidationError(constants.FieldName, "Section name is required and must be <= 100 chars")
		}
		section.Name = req.Name.V
	}
	if req.Description.Present() {
		section.Description = utils.Ptr(req.Description.V)
	} else if req.Description.Set {
		section.Description = nil
	}
	if req.Order.Set {
		if !req.Order.Present() {
			return errors.NewValidationError("order", "Section order must be >= 0")
		}
		section.Order = req.Order.V
	}
	return nil
}
