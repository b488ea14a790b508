package services

import (
	"github.com/paulossjunior/dynamic-forms/internal/application/usecases"
	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
)

// ServiceManager wires every service over one unit of work
type ServiceManager struct {
	Sections  *usecases.Sections
	Forms     *FormService
	Fields    *FieldService
	People    *PersonService
	Analytics *AnalyticsService
}

// NewServiceManager creates a new service manager with all dependencies wired
func NewServiceManager(uow ports.UnitOfWork) *ServiceManager {
	return &ServiceManager{
		Sections:  usecases.NewSections(uow.Repositories().Sections),
		Forms:     NewFormService(uow),
		Fields:    NewFieldService(uow),
		People:    NewPersonService(uow),
		Analytics: NewAnalyticsService(uow),
	}
}
