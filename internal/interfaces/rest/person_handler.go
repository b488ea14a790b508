package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/paulossjunior/dynamic-forms/internal/application/services"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
)

// PersonHandler handles people endpoints
type PersonHandler struct {
	svc *services.PersonService
}

// NewPersonHandler creates a new PersonHandler
func NewPersonHandler(svc *services.PersonService) *PersonHandler {
	return &PersonHandler{svc: svc}
}

// CreatePerson handles POST /api/people
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req services.CreatePersonRequest
	HandleCreateEnvelope(c, constants.ResponseData, "Person created successfully", &req, func() (interface{}, error) {
		return h.svc.Create(c.Request.Context(), req)
	})
}

// ListPeople handles GET /api/people
func (h *PersonHandler) ListPeople(c *gin.Context) {
	HandleGetEnvelope(c, constants.ResponseData, func() (interface{}, error) {
		return h.svc.List(c.Request.Context())
	})
}

// GetPerson handles GET /api/people/:id
func (h *PersonHandler) GetPerson(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	HandleGetEnvelope(c, constants.ResponseData, func() (interface{}, error) {
		return h.svc.Get(c.Request.Context(), id)
	})
}
