package billing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/invoice-pdf-api/internal/application/dto"
	"github.com/jhoicas/invoice-pdf-api/internal/domain"
	"github.com/jhoicas/invoice-pdf-api/internal/domain/entity"
	"github.com/jhoicas/invoice-pdf-api/internal/domain/repository"
)

// PDFConfig parámetros del caso de uso.
type PDFConfig struct {
	TemplateName string // Plantilla HTML a usar (por defecto "invoice")
	BasePath     string // Prefijo de las URLs devueltas (ej. /api/pdf)
}

// GeneratedFile PDF escrito en el directorio de salida.
type GeneratedFile struct {
	FileName    string
	Path        string
	DownloadURL string
	InvoiceID   int64 // Solo para PDFs generados desde la base de datos
}

// PDFUseCase orquesta plantilla HTML, motor PDF, directorio de salida y repositorio de facturas.
// No guarda estado propio: todas las dependencias llegan por el constructor.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	html        HTMLRenderer
	pdf         PDFRenderer
	output      OutputStore
	cfg         PDFConfig
	now         func() time.Time
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	html HTMLRenderer,
	pdf PDFRenderer,
	output OutputStore,
	cfg PDFConfig,
) *PDFUseCase {
	if cfg.TemplateName == "" {
		cfg.TemplateName = "invoice"
	}
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		html:        html,
		pdf:         pdf,
		output:      output,
		cfg:         cfg,
		now:         time.Now,
	}
}

// GeneratePDF renderiza la petición y devuelve los bytes del PDF. No persiste nada.
func (uc *PDFUseCase) GeneratePDF(ctx context.Context, req *dto.PdfRequest) ([]byte, error) {
	return uc.render(ctx, FromRequest{Request: req})
}

// GeneratePDFToFile renderiza la petición y la escribe como invoice_<uuid>.pdf en el directorio de salida.
func (uc *PDFUseCase) GeneratePDFToFile(ctx context.Context, req *dto.PdfRequest) (*GeneratedFile, error) {
	pdfBytes, err := uc.render(ctx, FromRequest{Request: req})
	if err != nil {
		return nil, err
	}
	name := requestFileName()
	path, err := uc.output.Write(ctx, name, pdfBytes)
	if err != nil {
		return nil, withKind(domain.ErrIO, fmt.Errorf("pdf: escribir archivo: %w", err))
	}
	return &GeneratedFile{
		FileName:    name,
		Path:        path,
		DownloadURL: uc.cfg.BasePath + "/download/" + name,
	}, nil
}

// GeneratePDFFromDB carga la factura por ID y devuelve los bytes del PDF.
//
// Retorna:
//   - domain.ErrNotFound  si la factura no existe.
//   - domain.ErrStorage   si falla la consulta.
//   - domain.ErrRendering si falla la plantilla o el motor PDF.
func (uc *PDFUseCase) GeneratePDFFromDB(ctx context.Context, id int64) ([]byte, error) {
	inv, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.render(ctx, FromEntity{Invoice: inv})
}

// GeneratePDFFromDBToFile igual que GeneratePDFFromDB pero escribe el PDF en el directorio de salida
// con un nombre derivado del código de la factura.
func (uc *PDFUseCase) GeneratePDFFromDBToFile(ctx context.Context, id int64) (*GeneratedFile, error) {
	inv, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	pdfBytes, err := uc.render(ctx, FromEntity{Invoice: inv})
	if err != nil {
		return nil, err
	}
	name := databaseFileName(inv.InvoiceCode, uc.now())
	path, err := uc.output.Write(ctx, name, pdfBytes)
	if err != nil {
		return nil, withKind(domain.ErrIO, fmt.Errorf("pdf: escribir archivo: %w", err))
	}
	return &GeneratedFile{
		FileName:    name,
		Path:        path,
		DownloadURL: uc.InvoiceURL(inv.ID),
		InvoiceID:   inv.ID,
	}, nil
}

// OpenGeneratedFile devuelve un PDF generado previamente (URL de descarga de GeneratePDFToFile).
func (uc *PDFUseCase) OpenGeneratedFile(ctx context.Context, fileName string) ([]byte, error) {
	data, err := uc.output.Read(ctx, fileName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, withKind(domain.ErrIO, fmt.Errorf("pdf: leer archivo: %w", err))
	}
	return data, nil
}

// InvoiceURL URL de descarga del PDF de una factura persistida.
func (uc *PDFUseCase) InvoiceURL(id int64) string {
	return uc.cfg.BasePath + "/invoice/" + strconv.FormatInt(id, 10)
}

func (uc *PDFUseCase) load(ctx context.Context, id int64) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, withKind(domain.ErrStorage, fmt.Errorf("pdf: obtener factura %d: %w", id, err))
	}
	if inv == nil {
		return nil, fmt.Errorf("factura %d: %w", id, domain.ErrNotFound)
	}
	return inv, nil
}

// render: origen → vista → HTML → PDF.
func (uc *PDFUseCase) render(ctx context.Context, src Source) ([]byte, error) {
	view, err := NewInvoiceView(src)
	if err != nil {
		return nil, err
	}
	html, err := uc.html.RenderHTML(ctx, uc.cfg.TemplateName, view)
	if err != nil {
		return nil, withKind(domain.ErrRendering, fmt.Errorf("pdf: renderizar plantilla %q: %w", uc.cfg.TemplateName, err))
	}
	pdfBytes, err := uc.pdf.RenderPDF(ctx, Document{HTML: html, View: view})
	if err != nil {
		return nil, withKind(domain.ErrRendering, fmt.Errorf("pdf: generación fallida: %w", err))
	}
	if len(pdfBytes) == 0 {
		return nil, fmt.Errorf("%w: el motor devolvió un documento vacío", domain.ErrRendering)
	}
	return pdfBytes, nil
}

// withKind asegura que err lleve la categoría kind si aún no lleva ninguna de dominio.
func withKind(kind, err error) error {
	if domain.Kind(err) != "internal" {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}
