package routes

import (
	"catalog-query/internal/handlers"
	"catalog-query/internal/query"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, pipeline *query.Pipeline) {
	h := handlers.NewQueryHandler(pipeline)

	router.POST("/query", h.HandleQuery)
	router.GET("/healthz", handlers.Health)
}
