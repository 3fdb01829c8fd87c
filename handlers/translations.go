package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samara-logia/cadaster-portal/internal/i18n"
)

// RegisterTranslationRoutes serves the static language tables.
func RegisterTranslationRoutes(r *gin.Engine) {
	r.GET("/api/translations/:lang", func(c *gin.Context) {
		table, ok := i18n.Table(c.Param("lang"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown language"})
			return
		}
		c.JSON(http.StatusOK, table)
	})
}
