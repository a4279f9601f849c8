package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Оценка риска и сетка
	api.GET("/risk-assessment", h.assessRisk)
	api.GET("/risk-grid", h.riskGrid)
	api.POST("/scenario-comparison", h.compareScenarios)
	api.GET("/risk-bands", h.riskBands)
	api.GET("/hazards/:code", h.hazardIndicators)

	// Реестр муниципалитетов
	municipalities := api.Group("/municipalities")
	{
		municipalities.GET("", h.listMunicipalities)
		municipalities.GET("/:code", h.getMunicipality)
	}

	// Управление кешем требует API-ключа
	cacheGroup := api.Group("/cache", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		cacheGroup.GET("/stats", h.cacheStats)
		cacheGroup.DELETE("", h.clearCache)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
