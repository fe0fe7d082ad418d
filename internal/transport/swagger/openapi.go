package swagger

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
)

// Document is an OpenAPI file parsed and validated at startup.
type Document struct {
	Spec *openapi3.T
	raw  []byte
}

// LoadDocument reads path and rejects documents that do not validate.
func LoadDocument(ctx context.Context, path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read openapi document: %w", err)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("parse openapi document: %w", err)
	}
	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	return &Document{Spec: spec, raw: raw}, nil
}

// Operations counts the operations the document declares.
func (d *Document) Operations() int {
	count := 0
	for _, item := range d.Spec.Paths.Map() {
		count += len(item.Operations())
	}
	return count
}

func (d *Document) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(d.raw)
}
