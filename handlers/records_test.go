package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/samara-logia/cadaster-portal/internal/records"
)

func TestRecordSearchEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRecordRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/api/records/search?q=SL-102", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got []records.PropertyRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "SL-102-44-A", got[0].ID)
}

func TestRecordSearchEmptyQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRecordRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/api/records/search", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}
