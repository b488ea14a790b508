package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
	"github.com/paulossjunior/dynamic-forms/pkg/errors"
	"github.com/paulossjunior/dynamic-forms/pkg/utils"
)

// CreateFieldRequest describes a new custom field definition.
// IsActive defaults to true when omitted.
type CreateFieldRequest struct {
	EntityType      string         `json:"entity_type"`
	KeyName         string         `json:"key_name"`
	Label           string         `json:"label"`
	FieldType       string         `json:"field_type"`
	Options         []string       `json:"options"`
	ValidationRules map[string]any `json:"validation_rules"`
	IsActive        *bool          `json:"is_active"`
}

// FieldService manages custom field definitions
type FieldService struct {
	uow ports.UnitOfWork
}

// NewFieldService creates a new FieldService
func NewFieldService(uow ports.UnitOfWork) *FieldService {
	return &FieldService{uow: uow}
}

// Create validates and stores a definition
func (s *FieldService) Create(ctx context.Context, req CreateFieldRequest) (*models.FieldDefinition, error) {
	field := &models.FieldDefinition{
		EntityType:      strings.TrimSpace(req.EntityType),
		KeyName:         strings.TrimSpace(req.KeyName),
		Label:           req.Label,
		FieldType:       req.FieldType,
		Options:         req.Options,
		ValidationRules: req.ValidationRules,
		IsActive:        utils.DerefOr(req.IsActive, true),
	}
	if err := field.Validate(); err != nil {
		return nil, err
	}

	created, err := s.uow.Repositories().Fields.Create(ctx, field)
	if err != nil {
		return nil, err
	}
	log.Printf("🧩 Created field definition %s.%s (%s)", created.EntityType, created.KeyName, created.FieldType)
	return created, nil
}

// ListActive returns the active definitions of an entity type
func (s *FieldService) ListActive(ctx context.Context, entityType string) ([]*models.FieldDefinition, error) {
	return s.uow.Repositories().Fields.ListActive(ctx, entityType)
}

// SetActive soft-disables or re-enables a definition
func (s *FieldService) SetActive(ctx context.Context, entityType, keyName string, active bool) (*models.FieldDefinition, error) {
	repos := s.uow.Repositories()
	found, err := repos.Fields.SetActive(ctx, entityType, keyName, active)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFoundError("field definition", fmt.Sprintf("%s.%s", entityType, keyName))
	}
	return repos.Fields.GetByKey(ctx, entityType, keyName)
}
