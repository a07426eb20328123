package apidocs

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/eventtickets/eventtickets/internal/server/handlers/api"
	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"
)

// APIDocsHandler serves the registered swagger 2.0 document as OpenAPI 3.
// The conversion runs once, on first request.
type APIDocsHandler struct {
	docJSON func() ([]byte, error)
	docYAML func() ([]byte, error)
}

func New(instanceName string) *APIDocsHandler {
	docJSON := sync.OnceValues(func() ([]byte, error) {
		doc, err := LoadOpenAPI3(instanceName)
		if err != nil {
			return nil, err
		}
		return doc.MarshalJSON()
	})

	docYAML := sync.OnceValues(func() ([]byte, error) {
		data, err := docJSON()
		if err != nil {
			return nil, err
		}
		var tree map[string]any
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("decode openapi json: %w", err)
		}
		return yaml.Marshal(tree)
	})

	return &APIDocsHandler{
		docJSON: docJSON,
		docYAML: docYAML,
	}
}

// LoadOpenAPI3 reads the swag registered document and converts it to OpenAPI 3.
func LoadOpenAPI3(instanceName string) (*openapi3.T, error) {
	raw, err := swag.ReadDoc(instanceName)
	if err != nil {
		return nil, fmt.Errorf("read swagger doc %q: %w", instanceName, err)
	}

	var doc2 openapi2.T
	if err := json.Unmarshal([]byte(raw), &doc2); err != nil {
		return nil, fmt.Errorf("decode swagger doc: %w", err)
	}

	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("convert swagger doc: %w", err)
	}
	return doc3, nil
}

func (h *APIDocsHandler) JSON(ctx *gin.Context) {
	data, err := h.docJSON()
	if err != nil {
		api.AbortWithError(ctx, http.StatusInternalServerError, api.CodeInternalError, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *APIDocsHandler) YAML(ctx *gin.Context) {
	data, err := h.docYAML()
	if err != nil {
		api.AbortWithError(ctx, http.StatusInternalServerError, api.CodeInternalError, err)
		return
	}
	ctx.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
}
