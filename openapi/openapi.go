// Package openapi serves the API description in YAML and JSON.
package openapi

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var document []byte

var jsonDocument = sync.OnceValues(func() ([]byte, error) {
	return ToJSON(document)
})

// ToJSON converts a YAML document to JSON.
func ToJSON(doc []byte) ([]byte, error) {
	var tree any
	if err := yaml.Unmarshal(doc, &tree); err != nil {
		return nil, fmt.Errorf("parse openapi yaml: %w", err)
	}
	normalized, err := normalize(tree)
	if err != nil {
		return nil, err
	}
	return json.Marshal(normalized)
}

// normalize rewrites map[any]any nodes, which encoding/json rejects, into
// string keyed maps.
func normalize(node any) (any, error) {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			n, err := normalize(child)
			if err != nil {
				return nil, err
			}
			v[k] = n
		}
		return v, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, child := range v {
			n, err := normalize(child)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = n
		}
		return out, nil
	case []any:
		for i, child := range v {
			n, err := normalize(child)
			if err != nil {
				return nil, err
			}
			v[i] = n
		}
		return v, nil
	default:
		return v, nil
	}
}

func JSONHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := jsonDocument()
		if err != nil {
			log.WithError(err).Error("Failed to render API docs")
			http.Error(w, "API docs unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}
}

func YAMLHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(document)
	}
}
