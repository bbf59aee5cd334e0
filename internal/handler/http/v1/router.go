package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Геокодирование свободного текста
	api.POST("/geocode", h.geocodeText)

	// Маршруты для управления инцидентами (CRUD) и привязанными данными
	disasters := api.Group("/disasters")
	{
		disasters.POST("", h.createDisaster)
		disasters.GET("", h.listDisasters)
		disasters.GET("/:id", h.getDisaster)
		disasters.PUT("/:id", h.updateDisaster)
		disasters.DELETE("/:id", h.deleteDisaster)

		disasters.POST("/:id/reports", h.createReport)
		disasters.GET("/:id/reports", h.listReports)
		disasters.GET("/:id/resources", h.listResources)
		disasters.POST("/:id/verify-image", h.verifyImage)
		disasters.GET("/:id/social-media", h.getSocialPosts)
	}

	// Официальные оповещения
	api.GET("/updates", h.getUpdates)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
