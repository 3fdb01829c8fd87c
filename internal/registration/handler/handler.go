package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/samara-logia/cadaster-portal/internal/envelope"
	"github.com/samara-logia/cadaster-portal/internal/registration/service"
	"github.com/samara-logia/cadaster-portal/internal/upload"
	"github.com/samara-logia/cadaster-portal/pkg/logger"
	"github.com/samara-logia/cadaster-portal/pkg/metrics"
)

// documentField is the multipart field name the portal form uses for the
// optional supporting document.
const documentField = "document"

// RegisterRoutes wires the registration endpoints. The listing endpoint is
// for office staff and sits behind adminAuth.
func RegisterRoutes(r *gin.Engine, svc *service.Service, adminAuth gin.HandlerFunc) {
	r.POST("/api/registrations", func(c *gin.Context) { submit(c, svc) })
	r.GET("/api/registrations", adminAuth, func(c *gin.Context) { list(c, svc) })
}

func submit(c *gin.Context, svc *service.Service) {
	in := service.SubmitInput{
		FullName:      c.PostForm("fullName"),
		PhoneNumber:   c.PostForm("phoneNumber"),
		SubcityKebele: c.PostForm("subcityKebele"),
		HouseNumber:   c.PostForm("houseNumber"),
	}

	if raw := strings.TrimSpace(c.PostForm("areaSqm")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			metrics.SubmissionsRejected.WithLabelValues("validation").Inc()
			c.JSON(http.StatusBadRequest, envelope.Fail("areaSqm must be a number"))
			return
		}
		in.AreaSqm = &v
	}

	if fh, err := c.FormFile(documentField); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			logger.Errorf("open uploaded document: %v", err)
			metrics.SubmissionsRejected.WithLabelValues("upload").Inc()
			c.JSON(http.StatusInternalServerError, envelope.Fail("Failed to save registration"))
			return
		}
		defer f.Close()
		in.DocumentName = fh.Filename
		in.Document = f
	}

	id, err := svc.Submit(c.Request.Context(), in)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			metrics.SubmissionsRejected.WithLabelValues("validation").Inc()
			c.JSON(http.StatusBadRequest, envelope.Fail(verr.Error()))
			return
		}
		// upload and storage failures collapse to one opaque message
		logger.Errorf("registration submit failed: %v", err)
		metrics.SubmissionsRejected.WithLabelValues(rejectReason(err)).Inc()
		c.JSON(http.StatusInternalServerError, envelope.Fail("Failed to save registration"))
		return
	}

	metrics.SubmissionsAccepted.Inc()
	c.JSON(http.StatusOK, envelope.OK(map[string]any{
		"id":         id,
		"trackingId": service.TrackingID(id),
	}))
}

func list(c *gin.Context, svc *service.Service) {
	recs, err := svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("registration list failed: %v", err)
		c.JSON(http.StatusInternalServerError, envelope.Fail("Failed to fetch registrations"))
		return
	}
	c.JSON(http.StatusOK, recs)
}

func rejectReason(err error) string {
	var uerr *upload.Error
	if errors.As(err, &uerr) {
		return "upload"
	}
	return "storage"
}
