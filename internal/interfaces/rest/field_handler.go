package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/paulossjunior/dynamic-forms/internal/application/services"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
	"github.com/paulossjunior/dynamic-forms/pkg/errors"
)

// FieldHandler handles custom field definition endpoints
type FieldHandler struct {
	svc *services.FieldService
}

// NewFieldHandler creates a new FieldHandler
func NewFieldHandler(svc *services.FieldService) *FieldHandler {
	return &FieldHandler{svc: svc}
}

// SetActiveRequest is the body of PATCH /api/fields/:entityType/:keyName
type SetActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

// CreateField handles POST /api/fields
func (h *FieldHandler) CreateField(c *gin.Context) {
	var req services.CreateFieldRequest
	HandleCreateEnvelope(c, constants.ResponseData, "Field created successfully", &req, func() (interface{}, error) {
		return h.svc.Create(c.Request.Context(), req)
	})
}

// ListFields handles GET /api/fields/:entityType
func (h *FieldHandler) ListFields(c *gin.Context) {
	HandleGetEnvelope(c, constants.ResponseData, func() (interface{}, error) {
		return h.svc.ListActive(c.Request.Context(), c.Param("entityType"))
	})
}

// SetActive handles PATCH /api/fields/:entityType/:keyName
func (h *FieldHandler) SetActive(c *gin.Context) {
	var req SetActiveRequest
	HandleUpdateEnvelope(c, constants.ResponseData, "Field updated successfully", &req, func() (interface{}, error) {
		if req.IsActive == nil {
			return nil, errors.NewValidationError(constants.FieldIsActive, "is_active is required")
		}
		return h.svc.SetActive(c.Request.Context(), c.Param("entityType"), c.Param("keyName"), *req.IsActive)
	})
}
