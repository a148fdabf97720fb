package api

import (
	"embed"
	"encoding/json"
	"html/template"
	"io/fs"
	"time"
)

//go:embed web/templates/*.html web/static
var webFS embed.FS

func LoadTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		// json marshals a value to JSON string
		"json": func(v any) (string, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
		"millis": func(d time.Duration) int64 {
			return d.Milliseconds()
		},
	}

	return template.New("base").Funcs(funcs).ParseFS(webFS, "web/templates/*.html")
}

func staticFS() fs.FS {
	sub, err := fs.Sub(webFS, "web/static")
	if err != nil {
		panic(err)
	}
	return sub
}
