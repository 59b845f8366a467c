package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

//go:embed templates/*.html
var templateFS embed.FS

// Templates holds the server-rendered pages
var Templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// ResultTemplate is the standalone confirmation/error page
const ResultTemplate = "result.html"

// ResultPage is the data rendered into ResultTemplate
type ResultPage struct {
	Failed  bool
	Message string
}

// Static returns the public site rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
