package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zizaimai/rental-manager/internal/model"
	"github.com/zizaimai/rental-manager/internal/utils"
)

//go:embed templates/*.html templates/partials/*.html
var templateFS embed.FS

const (
	layoutFile   = "templates/layout.html"
	partialsGlob = "templates/partials/*.html"
)

// Renderer executes the page templates.  Each view is parsed together with
// the shared layout and partials so that every view can define its own
// "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.  Links produced by the href
// helper are prefixed with basePath.
func NewRenderer(basePath string) (*Renderer, error) {
	funcs := template.FuncMap{
		"href": func(p string) string {
			if p == "/" {
				return basePath + "/"
			}
			return basePath + p
		},
		"label": utils.SnakeToCapitalizedWords,
		"money": money,
		"date":  func(t model.Timestamp) string { return t.DateTime() },
		"join": func(sep string, items any) string {
			switch v := items.(type) {
			case []string:
				return strings.Join(v, sep)
			case []model.CategoryName:
				s := make([]string, len(v))
				for i, n := range v {
					s[i] = string(n)
				}
				return strings.Join(s, sep)
			}
			return fmt.Sprint(items)
		},
	}

	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, layoutFile, partialsGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		t, err := template.Must(layout.Clone()).ParseFS(templateFS, f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		r.pages[strings.TrimSuffix(path.Base(f), ".html")] = t
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("render: unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}
