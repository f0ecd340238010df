package dto

import "github.com/shopspring/decimal"

// PdfRequest body para POST /api/pdf/generate, /generate-with-link y /save.
// Date se espera en formato YYYY-MM-DD pero no se valida aquí; solo el guardado la interpreta.
type PdfRequest struct {
	InvoiceID    string           `json:"invoiceId" validate:"required" example:"INV-2024-001"`
	CustomerName string           `json:"customerName" validate:"required" example:"John Doe"`
	Date         string           `json:"date" validate:"required" example:"2024-01-15"`
	Items        []PdfItemRequest `json:"items" validate:"required,dive"`
	TotalAmount  *decimal.Decimal `json:"totalAmount" validate:"required" swaggertype:"number" example:"299.99"`
}

// PdfItemRequest línea de la factura en la petición.
type PdfItemRequest struct {
	Name     string          `json:"name" validate:"required" example:"Product A"`
	Quantity int             `json:"quantity" validate:"gte=0" example:"2"`
	Price    decimal.Decimal `json:"price" swaggertype:"number" example:"99.99"`
}

// GenerateWithLinkResponse respuesta de POST /api/pdf/generate-with-link.
type GenerateWithLinkResponse struct {
	Message     string `json:"message"`
	FilePath    string `json:"filePath"`
	DownloadURL string `json:"downloadUrl"`
}

// GenerateFromDBResponse respuesta de GET /api/pdf/generate/:id.
type GenerateFromDBResponse struct {
	Message     string `json:"message"`
	FilePath    string `json:"filePath"`
	InvoiceID   string `json:"invoiceId"`
	DownloadURL string `json:"downloadUrl"`
}

// SaveInvoiceResponse respuesta de POST /api/pdf/save.
type SaveInvoiceResponse struct {
	Message   string `json:"message"`
	ID        int64  `json:"id"`
	InvoiceID string `json:"invoiceId"`
	PdfURL    string `json:"pdfUrl"`
}
