// Package template renderiza las plantillas HTML de factura con html/template.
// Las plantillas por defecto van embebidas en el binario; un directorio externo
// (PDF_TEMPLATE_DIR) puede reemplazarlas sin recompilar.
package template

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-pdf-api/internal/application/billing"
	"github.com/jhoicas/invoice-pdf-api/internal/domain"
)

//go:embed templates/*.html
var embedded embed.FS

var _ billing.HTMLRenderer = (*Engine)(nil)

// Engine conjunto de plantillas cargadas, indexadas por nombre de archivo sin extensión.
type Engine struct {
	tmpl *template.Template
}

// New carga las plantillas embebidas, o las de dir si no está vacío.
func New(dir string) (*Engine, error) {
	var fsys fs.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	} else {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, fmt.Errorf("plantillas embebidas: %w", err)
		}
		fsys = sub
	}
	return NewFromFS(fsys)
}

// NewFromFS carga todas las plantillas *.html de fsys.
func NewFromFS(fsys fs.FS) (*Engine, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("cargar plantillas: %w", err)
	}
	return &Engine{tmpl: tmpl}, nil
}

// RenderHTML ejecuta la plantilla name ("invoice" o "invoice.html") con la vista de la factura.
func (e *Engine) RenderHTML(_ context.Context, name string, view billing.InvoiceView) (string, error) {
	if !strings.HasSuffix(name, ".html") {
		name += ".html"
	}
	t := e.tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("%w: plantilla %q no existe", domain.ErrRendering, name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: ejecutar plantilla %q: %v", domain.ErrRendering, name, err)
	}
	return buf.String(), nil
}

var funcs = template.FuncMap{
	"money": money,
}

// money formatea un importe con dos decimales.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
