package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/intelligrit/travel-optimizer/internal/form"
	"github.com/intelligrit/travel-optimizer/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is everything the page template needs.
type PageData struct {
	Page     *form.Page
	Plan     *PlanView
	Summary  string
	Warnings []string
	Paces    []model.Pace
}

// NewPageData derives the template input from the page state.
func NewPageData(p *form.Page) PageData {
	return PageData{
		Page:     p,
		Plan:     Build(p.Plan),
		Summary:  form.Summary(p.Interests),
		Warnings: p.Warnings(),
		Paces:    model.Paces,
	}
}

// Renderer renders the trip planner page.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"checked": form.Checked,
		"join":    strings.Join,
		"coord": func(f float64) string {
			return strconv.FormatFloat(f, 'f', 1, 64)
		},
		"offset": func(a, b float64) float64 { return a + b },
	}
	tmpl, err := template.New("root").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderPage writes the full page for p.
func (r *Renderer) RenderPage(w io.Writer, p *form.Page) error {
	return r.tmpl.ExecuteTemplate(w, "page", NewPageData(p))
}
