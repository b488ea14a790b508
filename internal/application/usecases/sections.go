package usecases

import "github.com/paulossjunior/dynamic-forms/internal/domain/ports"

// Sections groups the section use cases bound to one repository
type Sections struct {
	Create *CreateSection
	List   *ListSections
	Update *UpdateSection
	Delete *DeleteSection
}

// NewSections wires every section use case to repo
func NewSections(repo ports.SectionRepository) *Sections {
	return &Sections{
		Create: NewCreateSection(repo),
		List:   NewListSections(repo),
		Update: NewUpdateSection(repo),
		Delete: NewDeleteSection(repo),
	}
}
