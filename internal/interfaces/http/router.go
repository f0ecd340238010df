package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-pdf-api/internal/application/billing"
	"github.com/jhoicas/invoice-pdf-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PDF      *billing.PDFUseCase
	BasePath string // ej. /api/pdf
	Logger   *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	base := deps.BasePath
	if base == "" {
		base = "/api/pdf"
	}
	pdf := app.Group(base)
	h := NewPdfHandler(deps.PDF, deps.Logger)

	// Generación sin persistencia
	pdf.Post("/generate", h.Generate)
	pdf.Post("/generate-with-link", h.GenerateWithLink)

	// Facturas persistidas
	pdf.Get("/invoice/:id", h.DownloadInvoice)
	pdf.Get("/generate/:id", h.GenerateFromDB)
	pdf.Post("/save", h.Save)

	// Archivos escritos por /generate-with-link
	pdf.Get("/download/:file", h.DownloadFile)
}
