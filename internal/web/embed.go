package web

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcMap = template.FuncMap{
	"fmtDate": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"fmtTime": func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	},
}

var templates = template.Must(
	template.New("web").Funcs(funcMap).ParseFS(templateFS, "templates/*.html"),
)
