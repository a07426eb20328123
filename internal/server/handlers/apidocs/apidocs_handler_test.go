package apidocs

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "github.com/eventtickets/eventtickets/internal/server/docs"
	"github.com/eventtickets/eventtickets/internal/server/handlers/api"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func setupRouter(h *APIDocsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/openapi/v1.json", h.JSON)
	r.GET("/openapi/v1.yaml", h.YAML)
	return r
}

type openAPIDoc struct {
	OpenAPI string `json:"openapi" yaml:"openapi"`
	Info    struct {
		Title   string `json:"title" yaml:"title"`
		Version string `json:"version" yaml:"version"`
	} `json:"info" yaml:"info"`
	Paths map[string]map[string]struct {
		OperationID string   `json:"operationId" yaml:"operationId"`
		Tags        []string `json:"tags" yaml:"tags"`
	} `json:"paths" yaml:"paths"`
}

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	setupRouter(New("swagger")).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi/v1.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var doc openAPIDoc
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.True(t, strings.HasPrefix(doc.OpenAPI, "3."), doc.OpenAPI)
	assert.Equal(t, "Event Ticket Manager API", doc.Info.Title)
	assert.Equal(t, "HealthCheck", doc.Paths["/health"]["get"].OperationID)
	assert.Equal(t, []string{"System"}, doc.Paths["/api/v1/info"]["get"].Tags)
}

func TestYAML(t *testing.T) {
	w := httptest.NewRecorder()
	setupRouter(New("swagger")).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi/v1.yaml", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var doc openAPIDoc
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Event Ticket Manager API", doc.Info.Title)
	assert.Equal(t, "GetApiInfo", doc.Paths["/api/v1/info"]["get"].OperationID)
}

func TestLoadOpenAPI3(t *testing.T) {
	doc, err := LoadOpenAPI3("swagger")
	require.NoError(t, err)
	require.NotNil(t, doc.Paths)
	assert.NotNil(t, doc.Paths.Value("/health"))
	assert.Equal(t, "v1", doc.Info.Version)
}

func TestUnknownInstance(t *testing.T) {
	w := httptest.NewRecorder()
	setupRouter(New("missing")).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi/v1.json", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), api.CodeInternalError)
}
