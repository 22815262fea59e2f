// Package web holds the server-rendered pages and their static assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed templates
var templates embed.FS

//go:embed static
var static embed.FS

// Templates returns the page templates rooted at the templates directory.
func Templates() http.FileSystem {
	return subFS(templates, "templates")
}

// Static returns the scripts and stylesheets rooted at the static directory.
func Static() http.FileSystem {
	return subFS(static, "static")
}

func subFS(fsys embed.FS, dir string) http.FileSystem {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
