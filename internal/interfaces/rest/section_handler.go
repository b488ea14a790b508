package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/paulossjunior/dynamic-forms/internal/application/usecases"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
	"github.com/paulossjunior/dynamic-forms/pkg/patch"
)

// SectionHandler exposes the section use cases
type SectionHandler struct {
	sections *usecases.Sections
}

// NewSectionHandler creates a new SectionHandler
func NewSectionHandler(sections *usecases.Sections) *SectionHandler {
	return &SectionHandler{sections: sections}
}

// CreateSectionRequest is the body of POST /api/sections
type CreateSectionRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	OrderIndex  *int    `json:"order_index"`
	FormID      int64   `json:"form_id"`
}

// UpdateSectionRequest is the body of PUT/PATCH /api/sections/:id.
// Omitted keys are left unchanged.
type UpdateSectionRequest struct {
	Name        patch.Value[string] `json:"name"`
	Description patch.Value[string] `json:"description"`
	Order       patch.Value[int]    `json:"order"`
	OrderIndex  patch.Value[int]    `json:"order_index"`
}

func (r UpdateSectionRequest) toUseCase() usecases.UpdateSectionRequest {
	order := r.Order
	if !order.Set {
		order = r.OrderIndex
	}
	return usecases.UpdateSectionRequest{Name: r.Name, Description: r.Description, Order: order}
}

// CreateSection handles POST /api/sections
func (h *SectionHandler) CreateSection(c *gin.Context) {
	var req CreateSectionRequest
	HandleCreateEnvelope(c, constants.ResponseData, "Section created successfully", &req, func() (interface{}, error) {
		return h.sections.Create.Execute(c.Request.Context(), usecases.CreateSectionRequest{
			Name:        req.Name,
			Description: req.Description,
			Order:       firstInt(req.Order, req.OrderIndex),
			FormID:      req.FormID,
		})
	})
}

// ListSections handles GET /api/forms/:id/sections
func (h *SectionHandler) ListSections(c *gin.Context) {
	formID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	HandleGetEnvelope(c, constants.ResponseData, func() (interface{}, error) {
		return h.sections.List.Execute(c.Request.Context(), formID)
	})
}

// UpdateSection handles PUT and PATCH /api/sections/:id
func (h *SectionHandler) UpdateSection(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateSectionRequest
	HandleUpdateEnvelope(c, constants.ResponseData, "Section updated successfully", &req, func() (interface{}, error) {
		return h.sections.Update.Execute(c.Request.Context(), id, req.toUseCase())
	})
}

// DeleteSection handles DELETE /api/sections/:id. Unknown ids succeed.
func (h *SectionHandler) DeleteSection(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	HandleDeleteEnvelope(c, "Section deleted successfully", func() error {
		return h.sections.Delete.Execute(c.Request.Context(), id)
	})
}
