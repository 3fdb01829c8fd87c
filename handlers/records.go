package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samara-logia/cadaster-portal/internal/records"
)

// RegisterRecordRoutes wires the public parcel-register lookup.
func RegisterRecordRoutes(r *gin.Engine) {
	r.GET("/api/records/search", func(c *gin.Context) {
		c.JSON(http.StatusOK, records.Search(c.Query("q")))
	})
}
