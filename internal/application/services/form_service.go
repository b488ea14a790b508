package services

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
	"github.com/paulossjunior/dynamic-forms/pkg/errors"
	"github.com/paulossjunior/dynamic-forms/pkg/utils"
)

// SectionInput is an inline section of a composite form request.
// TempID only lives for the duration of one CreateForm call.
type SectionInput struct {
	TempID      string  `json:"temp_id,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Order       int     `json:"order"`
}

// FieldInput links a field definition to the new form. SectionID takes
// precedence over SectionTempID.
type FieldInput struct {
	FieldID       int64   `json:"field_id"`
	IsRequired    bool    `json:"is_required"`
	SectionID     *int64  `json:"section_id,omitempty"`
	SectionTempID *string `json:"section_temp_id,omitempty"`
}

// CreateFormRequest is the composite create payload
type CreateFormRequest struct {
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Sections    []SectionInput `json:"sections"`
	Fields      []FieldInput   `json:"fields"`
}

// Validate rejects malformed input before anything is written
func (r CreateFormRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" || utf8.RuneCountInString(r.Name) > constants.MaxFormNameLength {
		return errors.NewValidationError(constants.FieldName, "Form name is required and must be <= 255 chars")
	}
	for _, in := range r.Sections {
		section := in.toSection(0)
		if err := section.Validate(); err != nil {
			return err
		}
	}
	for _, in := range r.Fields {
		if in.FieldID <= 0 {
			return errors.NewValidationError(constants.FieldFieldID, "field_id is required")
		}
	}
	return nil
}

func (in SectionInput) toSection(formID int64) *models.Section {
	return &models.Section{
		Name:        in.Name,
		Description: in.Description,
		Order:       in.Order,
		FormID:      formID,
	}
}

// FormService composes forms out of sections and field associations
type FormService struct {
	uow ports.UnitOfWork
}

// NewFormService creates a new FormService
func NewFormService(uow ports.UnitOfWork) *FormService {
	return &FormService{uow: uow}
}

// CreateForm persists the form, its sections and its field associations in
// one transaction and returns the composed form.
func (s *FormService) CreateForm(ctx context.Context, req CreateFormRequest) (*models.Form, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var formID int64
	err := s.uow.WithinTransaction(ctx, func(repos ports.Repositories) error {
		form, err := repos.Forms.Create(ctx, &models.Form{Name: req.Name, Description: req.Description})
		if err != nil {
			return err
		}
		formID = form.ID

		tempIDs := make(map[string]int64, len(req.Sections))
		for _, in := range req.Sections {
			created, err := repos.Sections.Create(ctx, in.toSection(form.ID))
			if err != nil {
				return err
			}
			if in.TempID != "" {
				if _, dup := tempIDs[in.TempID]; dup {
					log.Printf("⚠️  Form %q: temp_id %q used by more than one section, last one wins", req.Name, in.TempID)
				}
				tempIDs[in.TempID] = created.IDValue()
			}
		}

		for i, in := range req.Fields {
			sectionID, err := resolveSection(ctx, repos, form, in, tempIDs)
			if err != nil {
				return err
			}
			assoc := &models.FieldAssociation{
				FormID:     form.ID,
				FieldID:    in.FieldID,
				SectionID:  sectionID,
				Order:      i,
				IsRequired: in.IsRequired,
			}
			if _, err := repos.Associations.Create(ctx, assoc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("📝 Created form %q (id=%d, %d sections, %d fields)", req.Name, formID, len(req.Sections), len(req.Fields))
	return s.GetForm(ctx, formID)
}

// resolveSection applies the precedence: direct section id, then temp id.
// A direct id must name a section of the same form. An unknown temp id
// leaves the association without a section.
func resolveSection(ctx context.Context, repos ports.Repositories, form *models.Form, in FieldInput, tempIDs map[string]int64) (*int64, error) {
	if in.SectionID != nil {
		section, err := repos.Sections.GetByID(ctx, *in.SectionID)
		if err != nil {
			return nil, err
		}
		if section == nil {
			return nil, errors.NewNotFoundError("Section", utils.FormatID(*in.SectionID))
		}
		if section.FormID != form.ID {
			return nil, errors.NewValidationError(constants.FieldSectionID, "Section does not belong to this form")
		}
		return utils.Ptr(*in.SectionID), nil
	}
	if in.SectionTempID == nil || *in.SectionTempID == "" {
		return nil, nil
	}
	if id, ok := tempIDs[*in.SectionTempID]; ok {
		return utils.Ptr(id), nil
	}
	log.Printf("⚠️  Form %q: field %d references unknown section_temp_id %q, stored without section",
		form.Name, in.FieldID, *in.SectionTempID)
	return nil, nil
}

// GetForm returns the form with its sections and associations
func (s *FormService) GetForm(ctx context.Context, id int64) (*models.Form, error) {
	repos := s.uow.Repositories()
	form, err := repos.Forms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, errors.NewNotFoundError("form", utils.FormatID(id))
	}
	if err := loadChildren(ctx, repos, form); err != nil {
		return nil, err
	}
	return form, nil
}

// ListForms returns every form, fully composed, ordered by id
func (s *FormService) ListForms(ctx context.Context) ([]*models.Form, error) {
	repos := s.uow.Repositories()
	forms, err := repos.Forms.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, form := range forms {
		if err := loadChildren(ctx, repos, form); err != nil {
			return nil, err
		}
	}
	return forms, nil
}

func loadChildren(ctx context.Context, repos ports.Repositories, form *models.Form) error {
	sections, err := repos.Sections.ListByForm(ctx, form.ID)
	if err != nil {
		return err
	}
	fields, err := repos.Associations.ListByForm(ctx, form.ID)
	if err != nil {
		return err
	}
	form.Sections = sections
	form.Fields = fields
	return nil
}

// DeleteForm removes the form with its sections and associations
func (s *FormService) DeleteForm(ctx context.Context, id int64) error {
	return s.uow.WithinTransaction(ctx, func(repos ports.Repositories) error {
		deleted, err := repos.Forms.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return errors.NewNotFoundError("form", utils.FormatID(id))
		}
		return nil
	})
}

// AssignFieldSection moves an existing association into a section of the same form
func (s *FormService) AssignFieldSection(ctx context.Context, formID, fieldID, sectionID int64) (*models.FieldAssociation, error) {
	var updated *models.FieldAssociation
	err := s.uow.WithinTransaction(ctx, func(repos ports.Repositories) error {
		assoc, err := repos.Associations.Get(ctx, formID, fieldID)
		if err != nil {
			return err
		}
		if assoc == nil {
			return errors.NewNotFoundError("form field", utils.FormatID(fieldID))
		}

		section, err := repos.Sections.GetByID(ctx, sectionID)
		if err != nil {
			return err
		}
		if section == nil {
			return errors.NewNotFoundError("Section", utils.FormatID(sectionID))
		}
		if section.FormID != formID {
			return errors.NewValidationError(constants.FieldSectionID, "Section does not belong to this form")
		}

		if err := repos.Associations.SetSection(ctx, formID, fieldID, section.ID); err != nil {
			return err
		}
		assoc.SectionID = utils.Ptr(sectionID)
		updated = assoc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
