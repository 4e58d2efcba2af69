// Package web serves the embedded single-page signup client.
// The root path redirects to the index page under /static/.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/JaimeStill/activity-signup/pkg/routes"
)

// IndexPath is the redirect target for the root path.
const IndexPath = "/static/index.html"

//go:embed static/*
var staticFS embed.FS

// Routes returns the root redirect and the static file server.
func Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{$}", Handler: redirectIndex},
			{Method: "GET", Pattern: IndexPath, Handler: serveIndex},
			{Method: "GET", Pattern: "/static/", Handler: Static()},
		},
	}
}

// Static returns a handler serving the embedded assets under /static/.
func Static() http.HandlerFunc {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub))).ServeHTTP
}

// serveIndex writes the index page directly; http.FileServer would redirect
// ".../index.html" to the directory.
func serveIndex(w http.ResponseWriter, r *http.Request) {
	data, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func redirectIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, IndexPath, http.StatusTemporaryRedirect)
}
