package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samara-logia/cadaster-portal/internal/assistant"
)

// RegisterAssistantRoutes wires the citizen-facing assistant proxy. Failures
// never surface: the client collapses them to its offline message.
func RegisterAssistantRoutes(r *gin.Engine, client *assistant.Client) {
	r.POST("/api/assistant", func(c *gin.Context) {
		var req struct {
			Query string `json:"query" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"text": client.Ask(c.Request.Context(), req.Query)})
	})
}
