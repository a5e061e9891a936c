// Package view отрисовывает страницу загрузки и таблицу результатов.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/Totarae/AudioAnalyzer/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer хранит разобранные шаблоны. Безопасен для конкурентного использования.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer разбирает встроенные шаблоны.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderPage пишет полную страницу с формой и таблицей.
func (r *Renderer) RenderPage(w io.Writer, rows []model.AnalyzeResult) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", rows)
}

// RenderTable пишет только фрагмент таблицы.
func (r *Renderer) RenderTable(w io.Writer, rows []model.AnalyzeResult) error {
	return r.tmpl.ExecuteTemplate(w, "table", rows)
}
