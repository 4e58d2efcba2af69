package openapi

import (
	"encoding/json"
	"net/http"
)

// NewSpec creates an empty OpenAPI 3.1 document with shared components.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI:    "3.1.0",
		Info:       &Info{Title: title, Version: version},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

// SetDescription sets the API description.
func (s *Spec) SetDescription(desc string) {
	s.Info.Description = desc
}

// AddTag registers a tag description once.
func (s *Spec) AddTag(name, description string) {
	for _, t := range s.Tags {
		if t.Name == name {
			return
		}
	}
	s.Tags = append(s.Tags, &Tag{Name: name, Description: description})
}

// AddOperation attaches op to path under method. Unsupported methods are ignored.
func (s *Spec) AddOperation(path, method string, op *Operation) {
	item, ok := s.Paths[path]
	if !ok {
		item = &PathItem{}
		s.Paths[path] = item
	}

	switch method {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodDelete:
		item.Delete = op
	}
}

// NewComponents returns the responses shared by every error-producing operation.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Detail": {
				Type:     "object",
				Required: []string{"detail"},
				Properties: map[string]*Schema{
					"detail": {Type: "string"},
				},
			},
			"Message": {
				Type:     "object",
				Required: []string{"message"},
				Properties: map[string]*Schema{
					"message": {Type: "string"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":          ResponseJSON("Request conflicts with current state", "Detail"),
			"NotFound":            ResponseJSON("Resource not found", "Detail"),
			"UnprocessableEntity": ResponseJSON("Missing or invalid parameter", "Detail"),
		},
	}
}

// AddSchemas merges schemas into the components, replacing existing names.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// MarshalJSON renders the document as indented JSON.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// ServeSpec returns a handler that writes a pre-rendered document.
func ServeSpec(data []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}
