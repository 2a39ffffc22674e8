package handler

import (
	_ "embed"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Single-page Swagger UI shell pulling assets from a CDN and pointed at
// /openapi.yaml, so the binary ships no doc assets beyond this file.
//
//go:embed swagger.html
var swaggerHTML string

// RegisterDocs mounts the API documentation at the root:
//   - GET /openapi.yaml: the scouting API description, read from api/openapi.yaml
//   - GET /docs: Swagger UI rendering of it
func RegisterDocs(r *gin.Engine) {
	r.GET("/openapi.yaml", func(c *gin.Context) {
		data, err := os.ReadFile("api/openapi.yaml")
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to read api description: %v", err)
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
	})
	r.GET("/docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})
}
