package billing

import "context"

// HTMLRenderer ejecuta una plantilla con nombre sobre la vista normalizada de la factura.
type HTMLRenderer interface {
	RenderHTML(ctx context.Context, templateName string, view InvoiceView) (string, error)
}

// Document es la entrada del motor PDF: el HTML ya renderizado y la vista de la que proviene.
// Los motores basados en navegador usan HTML; los de layout nativo (maroto) usan View.
type Document struct {
	HTML string
	View InvoiceView
}

// PDFRenderer convierte un documento en bytes PDF.
// Un fallo debe devolverse como error (domain.ErrRendering), nunca como bytes vacíos o parciales.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, doc Document) ([]byte, error)
}

// OutputStore directorio de salida de los PDF generados.
type OutputStore interface {
	// Write guarda data bajo fileName y devuelve la ruta del archivo. No sobrescribe archivos existentes.
	Write(ctx context.Context, fileName string, data []byte) (string, error)
	// Read devuelve el contenido de un PDF generado; domain.ErrNotFound si no existe o el nombre no es válido.
	Read(ctx context.Context, fileName string) ([]byte, error)
}
