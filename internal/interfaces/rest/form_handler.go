package rest

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/paulossjunior/dynamic-forms/internal/application/services"
	"github.com/paulossjunior/dynamic-forms/internal/domain/models"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
)

// FormService defines the form operations the handler needs
type FormService interface {
	CreateForm(ctx context.Context, req services.CreateFormRequest) (*models.Form, error)
	GetForm(ctx context.Context, id int64) (*models.Form, error)
	ListForms(ctx context.Context) ([]*models.Form, error)
	DeleteForm(ctx context.Context, id int64) error
	AssignFieldSection(ctx context.Context, formID, fieldID, sectionID int64) (*models.FieldAssociation, error)
}

// FormHandler handles form composition endpoints
type FormHandler struct {
	svc FormService
}

// NewFormHandler creates a new FormHandler
func NewFormHandler(svc FormService) *FormHandler {
	return &FormHandler{svc: svc}
}

// ============================================================================
// Request Types
// ============================================================================

// InlineSectionRequest is a section nested in a composite create.
// order_index is accepted as an alias of order.
type InlineSectionRequest struct {
	TempID      string  `json:"temp_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	OrderIndex  *int    `json:"order_index"`
}

// CreateFormRequest is the composite create body
type CreateFormRequest struct {
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	Sections    []InlineSectionRequest `json:"sections"`
	Fields      []services.FieldInput  `json:"fields"`
}

func (r CreateFormRequest) toService() services.CreateFormRequest {
	out := services.CreateFormRequest{
		Name:        r.Name,
		Description: r.Description,
		Sections:    make([]services.SectionInput, 0, len(r.Sections)),
		Fields:      r.Fields,
	}
	for _, s := range r.Sections {
		out.Sections = append(out.Sections, services.SectionInput{
			TempID:      s.TempID,
			Name:        s.Name,
			Description: s.Description,
			Order:       firstInt(s.Order, s.OrderIndex),
		})
	}
	return out
}

func firstInt(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

// ============================================================================
// Endpoints
// ============================================================================

// CreateForm handles POST /api/forms
func (h *FormHandler) CreateForm(c *gin.Context) {
	var req CreateFormRequest
	HandleCreateEnvelope(c, constants.ResponseData, "Form created successfully", &req, func() (interface{}, error) {
		return h.svc.CreateForm(c.Request.Context(), req.toService())
	})
}

// ListForms handles GET /api/forms
func (h *FormHandler) ListForms(c *gin.Context) {
	HandleGetEnvelope(c, constants.ResponseData, func() (interface{}, error) {
		return h.svc.ListForms(c.Request.Context())
	})
}

// GetForm handles GET /api/forms/:id
func (h *FormHandler) GetForm(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	HandleGetEnvelope(c, constants.ResponseData, func() (interface{}, error) {
		return h.svc.GetForm(c.Request.Context(), id)
	})
}

// DeleteForm handles DELETE /api/forms/:id
func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	HandleDeleteEnvelope(c, "Form deleted successfully", func() error {
		return h.svc.DeleteForm(c.Request.Context(), id)
	})
}

// AssignFieldSection handles POST /api/forms/:id/fields/:fieldId/section/:sectionId
func (h *FormHandler) AssignFieldSection(c *gin.Context) {
	formID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	fieldID, ok := ParseIDParam(c, "fieldId")
	if !ok {
		return
	}
	sectionID, ok := ParseIDParam(c, "sectionId")
	if !ok {
		return
	}
	HandleUpdateEnvelope(c, constants.ResponseData, "Field assigned to section", nil, func() (interface{}, error) {
		return h.svc.AssignFieldSection(c.Request.Context(), formID, fieldID, sectionID)
	})
}
