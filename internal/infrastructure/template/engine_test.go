package template_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-pdf-api/internal/application/billing"
	"github.com/jhoicas/invoice-pdf-api/internal/domain"
	tpl "github.com/jhoicas/invoice-pdf-api/internal/infrastructure/template"
)

func sampleView() billing.InvoiceView {
	return billing.InvoiceView{
		InvoiceID:    "INV-001",
		CustomerName: "John <Doe>",
		Date:         "2024-01-15",
		Items: []billing.ItemView{
			{Name: "Item 1", Quantity: 2, Price: decimal.NewFromInt(100)},
			{Name: "Item 2", Quantity: 1, Price: decimal.NewFromInt(200)},
		},
		TotalAmount: decimal.NewFromInt(400),
	}
}

func TestEngine_RenderHTML_PlantillaEmbebida(t *testing.T) {
	e, err := tpl.New("")
	require.NoError(t, err)

	html, err := e.RenderHTML(context.Background(), "invoice", sampleView())
	require.NoError(t, err)

	assert.Contains(t, html, "INV-001")
	assert.Contains(t, html, "2024-01-15")
	assert.Contains(t, html, "Item 2")
	assert.Contains(t, html, "200.00", "subtotal de Item 1 y precio de Item 2")
	assert.Contains(t, html, "400.00")
	assert.Contains(t, html, "John &lt;Doe&gt;", "html/template debe escapar el nombre del cliente")
}

func TestEngine_RenderHTML_AceptaNombreConExtension(t *testing.T) {
	e, err := tpl.New("")
	require.NoError(t, err)

	_, err = e.RenderHTML(context.Background(), "invoice.html", sampleView())
	assert.NoError(t, err)
}

func TestEngine_RenderHTML_PlantillaInexistente(t *testing.T) {
	e, err := tpl.New("")
	require.NoError(t, err)

	_, err = e.RenderHTML(context.Background(), "receipt", sampleView())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRendering)
}

func TestEngine_NewFromFS_PlantillaPersonalizada(t *testing.T) {
	fsys := fstest.MapFS{
		"simple.html": {Data: []byte(`<p>{{.InvoiceID}}|{{.CustomerName}}|{{len .Items}}|{{money .TotalAmount}}</p>`)},
	}
	e, err := tpl.NewFromFS(fsys)
	require.NoError(t, err)

	html, err := e.RenderHTML(context.Background(), "simple", sampleView())
	require.NoError(t, err)
	assert.Equal(t, "<p>INV-001|John &lt;Doe&gt;|2|400.00</p>", html)
}

func TestEngine_RenderHTML_ErrorDeEjecucion(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.html": {Data: []byte(`{{.NoExiste}}`)},
	}
	e, err := tpl.NewFromFS(fsys)
	require.NoError(t, err)

	_, err = e.RenderHTML(context.Background(), "broken", sampleView())
	assert.ErrorIs(t, err, domain.ErrRendering)
}
