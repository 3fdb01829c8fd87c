package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the portal API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>cadaster-portal API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the portal endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "cadaster-portal", "version": "v0.1.0" },
  "paths": {
    "/api/registrations": {
      "post": {
        "summary": "Submit a land-registration application",
        "requestBody": { "content": { "multipart/form-data": { "schema": {"type":"object","properties":{"fullName":{"type":"string"},"phoneNumber":{"type":"string"},"subcityKebele":{"type":"string"},"houseNumber":{"type":"string"},"areaSqm":{"type":"number"},"document":{"type":"string","format":"binary"}},"required":["fullName","phoneNumber"]}}}},
        "responses": { "200": { "description": "tracking id returned" }, "400": { "description": "missing required field" }, "500": { "description": "submission failed" } }
      },
      "get": { "summary": "List submitted applications (office staff)", "responses": { "200": { "description": "applications, newest first" }, "401": { "description": "missing or invalid token" } } }
    },
    "/api/admin/login": {
      "post": { "summary": "Office-staff login", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"username":{"type":"string"},"password":{"type":"string"}},"required":["username","password"]}}}}, "responses": { "200": { "description": "bearer token" }, "401": { "description": "invalid credentials" } } }
    },
    "/api/news": {
      "get": { "summary": "List announcements", "responses": { "200": { "description": "announcements, newest first" } } },
      "post": { "summary": "Publish an announcement (office staff)", "responses": { "201": { "description": "announcement id" }, "401": { "description": "missing or invalid token" } } }
    },
    "/api/records/search": {
      "get": { "summary": "Search the published parcel register", "parameters": [{"name":"q","in":"query","schema":{"type":"string"}}], "responses": { "200": { "description": "matching parcels" } } }
    },
    "/api/assistant": {
      "post": { "summary": "Ask the cadaster assistant", "responses": { "200": { "description": "answer or offline notice" } } }
    },
    "/api/translations/{lang}": {
      "get": { "summary": "Language table", "responses": { "200": { "description": "message table" }, "404": { "description": "unknown language" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
