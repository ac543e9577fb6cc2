package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-query/internal/query"
)

type QueryRequest struct {
	Query string `json:"query"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type QueryHandler struct {
	pipeline *query.Pipeline
}

func NewQueryHandler(p *query.Pipeline) *QueryHandler {
	return &QueryHandler{pipeline: p}
}

// POST /query
func (h *QueryHandler) HandleQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: err.Error()})
		return
	}

	result, err := h.pipeline.Handle(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, query.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid query"})
			return
		}
		log.Println("❌ query failed:", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GET /healthz
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
