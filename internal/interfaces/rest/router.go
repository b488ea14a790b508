package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/paulossjunior/dynamic-forms/internal/application/services"
	"github.com/paulossjunior/dynamic-forms/internal/interfaces/middleware"
	"github.com/paulossjunior/dynamic-forms/pkg/ratelimiter"
)

// RouterOptions carries the cross-cutting pieces of the HTTP surface
type RouterOptions struct {
	AllowedOrigins []string
	Limiter        *ratelimiter.MapLimiter // nil disables rate limiting
	Metrics        *middleware.Metrics     // nil disables /metrics
	DB             Pinger
}

// NewRouter registers every route on a new gin engine
func NewRouter(svcMgr *services.ServiceManager, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Cors(opts.AllowedOrigins))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
		router.GET("/metrics", opts.Metrics.Handler())
	}

	router.GET("/health", Health(opts.DB))

	fieldHandler := NewFieldHandler(svcMgr.Fields)
	personHandler := NewPersonHandler(svcMgr.People)
	formHandler := NewFormHandler(svcMgr.Forms)
	sectionHandler := NewSectionHandler(svcMgr.Sections)
	analyticsHandler := NewAnalyticsHandler(svcMgr.Analytics)

	api := router.Group("/api")
	api.Use(middleware.RateLimit(opts.Limiter))
	{
		api.POST("/fields", fieldHandler.CreateField)
		api.GET("/fields/:entityType", fieldHandler.ListFields)
		api.PATCH("/fields/:entityType/:keyName", fieldHandler.SetActive)

		api.POST("/people", personHandler.CreatePerson)
		api.GET("/people", personHandler.ListPeople)
		api.GET("/people/:id", personHandler.GetPerson)

		api.POST("/forms", formHandler.CreateForm)
		api.GET("/forms", formHandler.ListForms)
		api.GET("/forms/:id", formHandler.GetForm)
		api.DELETE("/forms/:id", formHandler.DeleteForm)
		api.GET("/forms/:id/sections", sectionHandler.ListSections)
		api.POST("/forms/:id/fields/:fieldId/section/:sectionId", formHandler.AssignFieldSection)

		api.POST("/sections", sectionHandler.CreateSection)
		api.PUT("/sections/:id", sectionHandler.UpdateSection)
		api.PATCH("/sections/:id", sectionHandler.UpdateSection)
		api.DELETE("/sections/:id", sectionHandler.DeleteSection)

		api.GET("/analytics/field-stats", analyticsHandler.FieldStats)
	}

	return router
}
