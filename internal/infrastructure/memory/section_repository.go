// Package memory holds in-process repository implementations used by tests
// and local experiments.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
	apperrors "github.com/paulossjunior/dynamic-forms/pkg/errors"
	"github.com/paulossjunior/dynamic-forms/pkg/utils"
)

// SectionRepository keeps sections in a map guarded by a mutex
type SectionRepository struct {
	mu       sync.RWMutex
	nextID   int64
	sections map[int64]models.Section
}

var _ ports.SectionRepository = (*SectionRepository)(nil)

// NewSectionRepository creates an empty repository
func NewSectionRepository() *SectionRepository {
	return &SectionRepository{sections: make(map[int64]models.Section)}
}

// Create stores a copy of the section under a fresh id
func (r *SectionRepository) Create(_ context.Context, section *models.Section) (*models.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := clone(section)
	stored.ID = utils.Ptr(r.nextID)
	r.sections[r.nextID] = stored

	out := clone(&stored)
	return &out, nil
}

// GetByID returns nil, nil when absent
func (r *SectionRepository) GetByID(_ context.Context, id int64) (*models.Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.sections[id]
	if !ok {
		return nil, nil
	}
	out := clone(&stored)
	return &out, nil
}

// ListByForm returns the form's sections ordered by order then id
func (r *SectionRepository) ListByForm(_ context.Context, formID int64) ([]*models.Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sections := make([]*models.Section, 0)
	for _, stored := range r.sections {
		if stored.FormID != formID {
			continue
		}
		out := clone(&stored)
		sections = append(sections, &out)
	}
	sort.Slice(sections, func(i, j int) bool {
		if sections[i].Order != sections[j].Order {
			return sections[i].Order < sections[j].Order
		}
		return *sections[i].ID < *sections[j].ID
	})
	return sections, nil
}

// Update replaces name, description and order
func (r *SectionRepository) Update(_ context.Context, section *models.Section) (*models.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if section.ID == nil {
		return nil, apperrors.NewNotFoundError("Section", "")
	}
	stored, ok := r.sections[*section.ID]
	if !ok {
		return nil, apperrors.NewNotFoundError("Section", utils.FormatID(*section.ID))
	}

	stored.Name = section.Name
	stored.Description = cloneString(section.Description)
	stored.Order = section.Order
	r.sections[*section.ID] = stored

	out := clone(&stored)
	return &out, nil
}

// Delete is a no-op for unknown ids
func (r *SectionRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sections, id)
	return nil
}

func clone(s *models.Section) models.Section {
	out := *s
	out.Description = cloneString(s.Description)
	if s.ID != nil {
		out.ID = utils.Ptr(*s.ID)
	}
	return out
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	return utils.Ptr(*v)
}
