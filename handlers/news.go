package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samara-logia/cadaster-portal/internal/envelope"
	"github.com/samara-logia/cadaster-portal/internal/news"
	"github.com/samara-logia/cadaster-portal/pkg/logger"
)

// RegisterNewsRoutes wires the announcement endpoints. Reading is public;
// publishing requires the admin gate.
func RegisterNewsRoutes(r *gin.Engine, svc *news.Service, adminAuth gin.HandlerFunc) {
	r.GET("/api/news", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			logger.Errorf("announcement list failed: %v", err)
			c.JSON(http.StatusInternalServerError, envelope.Fail("Failed to fetch announcements"))
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.POST("/api/news", adminAuth, func(c *gin.Context) {
		var req struct {
			Title string `json:"title" binding:"required"`
			Body  string `json:"body" binding:"required"`
			Lang  string `json:"lang"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, envelope.Fail(err.Error()))
			return
		}
		id, err := svc.Publish(c.Request.Context(), req.Title, req.Body, req.Lang)
		if err != nil {
			logger.Errorf("announcement publish failed: %v", err)
			c.JSON(http.StatusInternalServerError, envelope.Fail("Failed to save announcement"))
			return
		}
		c.JSON(http.StatusCreated, envelope.OK(map[string]any{"id": id}))
	})
}
