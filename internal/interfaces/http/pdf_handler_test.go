package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-pdf-api/internal/application/billing"
	"github.com/jhoicas/invoice-pdf-api/internal/application/dto"
	"github.com/jhoicas/invoice-pdf-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/invoice-pdf-api/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-pdf-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/invoice-pdf-api/internal/infrastructure/storage"
	tpl "github.com/jhoicas/invoice-pdf-api/internal/infrastructure/template"
	apphttp "github.com/jhoicas/invoice-pdf-api/internal/interfaces/http"
	"github.com/jhoicas/invoice-pdf-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const exampleInvoice = `{
  "invoiceId": "INV-001",
  "customerName": "John Doe",
  "date": "2024-01-15",
  "items": [
    {"name": "Product A", "quantity": 2, "price": 99.99},
    {"name": "Product B", "quantity": 1, "price": 100.01}
  ],
  "totalAmount": 299.99
}`

type testEnv struct {
	app  *fiber.App
	repo repository.InvoiceRepository
	fs   afero.Fs
}

// newTestEnv arma la aplicación completa con SQLite en un directorio temporal,
// plantillas embebidas, motor maroto y un directorio de salida en memoria.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlstore.Open(filepath.Join(t.TempDir(), "invoices.db"), zerolog.Nop())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	engine, err := tpl.New("")
	require.NoError(t, err)

	memFs := afero.NewMemMapFs()
	repo := sqlstore.NewInvoiceRepository(db)
	uc := billing.NewPDFUseCase(
		repo,
		engine,
		infrapdf.NewMarotoRenderer("test"),
		storage.NewOutputDir(memFs, "generated-pdfs"),
		billing.PDFConfig{BasePath: "/api/pdf"},
	)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{PDF: uc, BasePath: "/api/pdf", Logger: logger.Nop()})

	return &testEnv{app: app, repo: repo, fs: memFs}
}

func (e *testEnv) do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func assertPDF(t *testing.T, resp *http.Response, body []byte, fileName string) {
	t.Helper()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="`+fileName+`"`, resp.Header.Get(fiber.HeaderContentDisposition))
	assert.Equal(t, strconv.Itoa(len(body)), resp.Header.Get(fiber.HeaderContentLength))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")), "el cuerpo debe ser un PDF")
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /generate y /generate-with-link
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_DevuelvePDFAdjunto(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/pdf/generate", exampleInvoice)

	assertPDF(t, resp, body, "invoice.pdf")
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestGenerate_CuerpoInvalido500SinCuerpo(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/pdf/generate", `{"invoiceId":`)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, body)
}

func TestGenerate_CamposRequeridos(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/pdf/generate", `{"invoiceId":"INV-9","items":[]}`)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, body)
}

func TestGenerateWithLink_EscribeArchivoYSePuedeDescargar(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/pdf/generate-with-link", exampleInvoice)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var out dto.GenerateWithLinkResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "PDF generated successfully", out.Message)
	assert.Regexp(t, `^generated-pdfs/invoice_[0-9a-f-]{36}\.pdf$`, filepath.ToSlash(out.FilePath))
	require.True(t, strings.HasPrefix(out.DownloadURL, "/api/pdf/download/"))

	exists, err := afero.Exists(env.fs, out.FilePath)
	require.NoError(t, err)
	assert.True(t, exists)

	fileName := filepath.Base(out.FilePath)
	resp, pdfBody := env.do(t, http.MethodGet, out.DownloadURL, "")
	assertPDF(t, resp, pdfBody, fileName)
}

func TestGenerateWithLink_ErrorJSON(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/pdf/generate-with-link", `not json`)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, strings.HasPrefix(out.Error, "PDF generation failed: "), out.Error)
	assert.Equal(t, "validation", out.Code)
}

func TestDownloadFile_Inexistente404(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/pdf/download/invoice_nope.pdf", "")

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Empty(t, body)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /save, GET /invoice/:id, GET /generate/:id
// ──────────────────────────────────────────────────────────────────────────────

func TestSave_EjemploINV001(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/pdf/save", exampleInvoice)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var out dto.SaveInvoiceResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Invoice saved to database", out.Message)
	assert.Equal(t, "INV-001", out.InvoiceID)
	require.Positive(t, out.ID)
	assert.Equal(t, "/api/pdf/invoice/"+strconv.FormatInt(out.ID, 10), out.PdfURL)

	inv, err := env.repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, "Product A", inv.Items[0].Name)
	assert.Equal(t, "Product B", inv.Items[1].Name)
	assert.Equal(t, "299.99", inv.TotalAmount.StringFixed(2))

	// El PDF de la factura guardada se sirve en pdfUrl.
	resp, pdfBody := env.do(t, http.MethodGet, out.PdfURL, "")
	assertPDF(t, resp, pdfBody, "invoice_"+strconv.FormatInt(out.ID, 10)+".pdf")
}

func TestSave_FechaMalFormada500TextoPlano(t *testing.T) {
	env := newTestEnv(t)
	badDate := strings.Replace(exampleInvoice, "2024-01-15", "15/01/2024", 1)

	resp, body := env.do(t, http.MethodPost, "/api/pdf/save", badDate)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.True(t, strings.HasPrefix(string(body), "Save failed: "), string(body))
}

func TestGenerate_FechaMalFormadaSeRenderizaTalCual(t *testing.T) {
	env := newTestEnv(t)
	badDate := strings.Replace(exampleInvoice, "2024-01-15", "15/01/2024", 1)

	resp, body := env.do(t, http.MethodPost, "/api/pdf/generate", badDate)

	assertPDF(t, resp, body, "invoice.pdf")
}

func TestDownloadInvoice_Inexistente404SinCuerpo(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/pdf/invoice/999", "/api/pdf/invoice/abc"} {
		resp, body := env.do(t, http.MethodGet, path, "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, path)
		assert.Empty(t, body, path)
	}

	// Sin efectos secundarios: no se escribió ningún archivo.
	exists, err := afero.DirExists(env.fs, "generated-pdfs")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGenerateFromDB(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/pdf/save", exampleInvoice)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var saved dto.SaveInvoiceResponse
	require.NoError(t, json.Unmarshal(body, &saved))
	id := strconv.FormatInt(saved.ID, 10)

	resp, body = env.do(t, http.MethodGet, "/api/pdf/generate/"+id, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var out dto.GenerateFromDBResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "PDF generated from database", out.Message)
	assert.Equal(t, id, out.InvoiceID)
	assert.Equal(t, "/api/pdf/invoice/"+id, out.DownloadURL)
	assert.Regexp(t, `invoice_db_INV-001_\d+_[0-9a-f]{8}\.pdf$`, out.FilePath)

	data, err := afero.ReadFile(env.fs, out.FilePath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGenerateFromDB_Inexistente404JSON(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/pdf/generate/42", "")

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, strings.HasPrefix(out.Error, "Failed to generate PDF from DB: "), out.Error)
	assert.Equal(t, "not_found", out.Code)
}

func TestSave_DosLineasYURLRecuperable(t *testing.T) {
	env := newTestEnv(t)
	body := `{"invoiceId":"INV-001","customerName":"John Doe","date":"2024-01-15",
		"items":[{"name":"Item 1","quantity":2,"price":100},{"name":"Item 2","quantity":1,"price":200}],
		"totalAmount":400}`

	resp, out := env.do(t, http.MethodPost, "/api/pdf/save", body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(out))

	var saved dto.SaveInvoiceResponse
	require.NoError(t, json.Unmarshal(out, &saved))
	assert.Equal(t, "/api/pdf/invoice/"+strconv.FormatInt(saved.ID, 10), saved.PdfURL)

	inv, err := env.repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, "2024-01-15", inv.Date.Format(billing.DateLayout))
	assert.Equal(t, "400.00", inv.TotalAmount.StringFixed(2))
	require.Len(t, inv.Items, 2)
	for _, it := range inv.Items {
		assert.Equal(t, saved.ID, it.InvoiceID)
	}

	resp, _ = env.do(t, http.MethodGet, saved.PdfURL, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
