// Package routes registers grouped HTTP handlers on a ServeMux and records
// their OpenAPI operations on the way.
package routes

import (
	"net/http"

	"github.com/JaimeStill/activity-signup/pkg/openapi"
)

// Group mounts Routes under Prefix. Tags and Description label the group's
// operations in the OpenAPI document; Children nest under the same prefix.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Route binds a handler to Method and Pattern relative to its group.
// OpenAPI is optional; undocumented routes are still mounted.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Register mounts every route of groups on mux under basePath. When spec is
// non-nil, routes carrying an OpenAPI operation are added to it, tagged with
// their group's tags.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, g := range groups {
		registerGroup(mux, basePath, spec, g)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, spec *openapi.Spec, group Group) {
	fullPrefix := parentPrefix + group.Prefix

	if spec != nil {
		for _, tag := range group.Tags {
			spec.AddTag(tag, group.Description)
		}
	}

	for _, route := range group.Routes {
		path := fullPrefix + route.Pattern
		mux.HandleFunc(route.Method+" "+path, route.Handler)

		if spec != nil && route.OpenAPI != nil {
			op := *route.OpenAPI
			if len(op.Tags) == 0 {
				op.Tags = group.Tags
			}
			spec.AddOperation(path, route.Method, &op)
		}
	}

	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, spec, child)
	}
}
