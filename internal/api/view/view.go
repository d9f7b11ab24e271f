// Package view renders the server-side HTML pages. Every page is parsed once at startup
// together with the shared layout and partials, all embedded in the binary.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var files embed.FS

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// New parses every page under templates/pages.
func New() (*Renderer, error) {
	names, err := fs.Glob(files, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: list pages: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, p := range names {
		t, err := template.New("layout.html").Funcs(Funcs()).ParseFS(files,
			"templates/layout.html",
			"templates/partials/*.html",
			p,
		)
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", p, err)
		}
		r.pages[path.Base(p)] = t
	}
	return r, nil
}

// Render executes the named page (e.g. "login.html") inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	if m, ok := data.(echo.Map); ok {
		if _, set := m["Year"]; !set {
			m["Year"] = time.Now().Year()
		}
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Has reports whether a page with that name was loaded.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Funcs returns the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"date": func(v interface{}) string {
			switch t := v.(type) {
			case time.Time:
				if t.IsZero() {
					return ""
				}
				return t.Format("2006-01-02")
			case *time.Time:
				if t == nil || t.IsZero() {
					return ""
				}
				return t.Format("2006-01-02")
			}
			return ""
		},
		"money": func(v float64) string { return fmt.Sprintf("£%.2f", v) },
	}
}
