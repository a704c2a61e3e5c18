// filepath: internal/web/web.go
// Package web renders the embedded HTML templates for the public site and
// the admin pages. The markup is deliberately minimal; styling lives with
// whatever frontend is put in front of this service.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"studiohub/internal/logging"
)

//go:embed templates/*.html
var files embed.FS

var pages = template.Must(template.ParseFS(files, "templates/*.html"))

// Render executes one of the embedded page templates. The page is buffered
// first so a template error results in a clean 500 instead of a half-written
// response.
func Render(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		logging.Log.Errorf("Failed to render template %s: %v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
