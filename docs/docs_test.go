package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestDocRegistered(t *testing.T) {
	doc, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("Failed to read doc: %v", err)
	}

	var spec struct {
		Paths map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("Doc is not valid JSON: %v", err)
	}
	for _, path := range []string{"/", "/api/transacoes", "/api/transacoes/{user_id}", "/api/transacoes/{id}", "/api/transacoes/summary/{user_id}"} {
		if _, ok := spec.Paths[path]; !ok {
			t.Errorf("Expected path %s in doc", path)
		}
	}
}
