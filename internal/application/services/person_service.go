package services

import (
	"context"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
	"github.com/paulossjunior/dynamic-forms/pkg/errors"
	"github.com/paulossjunior/dynamic-forms/pkg/utils"
)

// CreatePersonRequest carries a person and their responses keyed by field key_name
type CreatePersonRequest struct {
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	CustomData map[string]any `json:"custom_data"`
}

// PersonService manages people and their custom data
type PersonService struct {
	uow ports.UnitOfWork
}

// NewPersonService creates a new PersonService
func NewPersonService(uow ports.UnitOfWork) *PersonService {
	return &PersonService{uow: uow}
}

// Create stores a person. A taken email is a ConflictError.
func (s *PersonService) Create(ctx context.Context, req CreatePersonRequest) (*models.Person, error) {
	person := &models.Person{Name: req.Name, Email: req.Email, CustomData: req.CustomData}
	if err := person.Validate(); err != nil {
		return nil, err
	}
	return s.uow.Repositories().People.Create(ctx, person)
}

// List returns every person ordered by id
func (s *PersonService) List(ctx context.Context) ([]*models.Person, error) {
	return s.uow.Repositories().People.List(ctx)
}

// Get returns one person or a NotFoundError
func (s *PersonService) Get(ctx context.Context, id int64) (*models.Person, error) {
	person, err := s.uow.Repositories().People.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, errors.NewNotFoundError("person", utils.FormatID(id))
	}
	return person, nil
}
