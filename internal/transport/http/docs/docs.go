// Package docs serves the OpenAPI document and the Swagger UI that renders it.
package docs

import (
	_ "embed"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// DocPath is where the OpenAPI document is served.
const DocPath = "/swagger/openapi.yaml"

//go:embed openapi.yaml
var openAPI []byte

// OpenAPI serves the embedded document.
func OpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openAPI)
}

// UI serves Swagger UI pointed at DocPath.
func UI() http.HandlerFunc {
	return httpSwagger.Handler(
		httpSwagger.URL(DocPath),
		httpSwagger.DocExpansion("none"),
	)
}
