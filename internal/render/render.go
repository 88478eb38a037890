// Package render is the presentation layer shared by the interactive page
// and the PDF export: both consume the exact same HTML for a given invoice.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"invoicegen/internal/model"
	"invoicegen/pkg/currency"
)

// Renderer produces the HTML surfaces of the application.
type Renderer interface {
	RenderForm() (string, error)
	RenderInvoice(inv model.Invoice) (string, error)
}

type templateRenderer struct {
	tmpl *template.Template
}

// New parses every template under dir once, with the currency formatter
// exposed as the "money" template function.
func New(dir string) (Renderer, error) {
	tmpl, err := template.New("invoicegen").Funcs(template.FuncMap{
		"money": currency.Format,
		"add1":  func(i int) int { return i + 1 },
	}).ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates in %s: %w", dir, err)
	}
	return &templateRenderer{tmpl: tmpl}, nil
}

func (r *templateRenderer) RenderForm() (string, error) {
	return r.execute("invoice_form.html", nil)
}

func (r *templateRenderer) RenderInvoice(inv model.Invoice) (string, error) {
	return r.execute("invoice.html", inv)
}

func (r *templateRenderer) execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
