package rest

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/paulossjunior/dynamic-forms/internal/application/services"
	"github.com/paulossjunior/dynamic-forms/pkg/constants"
)

// AnalyticsHandler serves the field statistics rollup
type AnalyticsHandler struct {
	svc *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(svc *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// FieldStats handles GET /api/analytics/field-stats?cached=true
func (h *AnalyticsHandler) FieldStats(c *gin.Context) {
	useSnapshot, _ := strconv.ParseBool(c.Query(constants.ParamCached))
	HandleGetEnvelope(c, constants.ResponseData, func() (interface{}, error) {
		return h.svc.FieldStats(c.Request.Context(), useSnapshot)
	})
}
