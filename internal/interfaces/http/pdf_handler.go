package http

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-pdf-api/internal/application/billing"
	"github.com/jhoicas/invoice-pdf-api/internal/application/dto"
	"github.com/jhoicas/invoice-pdf-api/internal/domain"
	"github.com/jhoicas/invoice-pdf-api/pkg/logger"
)

// PdfHandler maneja las peticiones HTTP de generación de PDF y guardado de facturas.
// Los códigos de estado son fijos por endpoint; la categoría real del error solo se registra en el log.
type PdfHandler struct {
	uc       *billing.PDFUseCase
	validate *validator.Validate
	log      *logger.Logger
}

// NewPdfHandler construye el handler.
func NewPdfHandler(uc *billing.PDFUseCase, log *logger.Logger) *PdfHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PdfHandler{
		uc:       uc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log.Component("pdf_handler"),
	}
}

// Generate godoc
// @Summary      Generar PDF
// @Description  Renderiza la factura recibida y devuelve el PDF como adjunto. No persiste nada.
// @Tags         pdf
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.PdfRequest  true  "Datos de la factura"
// @Success      200   {file}  binary
// @Failure      500
// @Router       /api/pdf/generate [post]
func (h *PdfHandler) Generate(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err == nil {
		var pdfBytes []byte
		if pdfBytes, err = h.uc.GeneratePDF(c.UserContext(), req); err == nil {
			return sendPDF(c, "invoice.pdf", pdfBytes)
		}
	}
	h.logFailure(c, "generate", err)
	return c.Status(fiber.StatusInternalServerError).Send(nil)
}

// GenerateWithLink godoc
// @Summary      Generar PDF en disco
// @Description  Renderiza la factura, la escribe en el directorio de salida y devuelve la ruta y la URL de descarga.
// @Tags         pdf
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PdfRequest  true  "Datos de la factura"
// @Success      200   {object}  dto.GenerateWithLinkResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/pdf/generate-with-link [post]
func (h *PdfHandler) GenerateWithLink(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err == nil {
		var file *billing.GeneratedFile
		if file, err = h.uc.GeneratePDFToFile(c.UserContext(), req); err == nil {
			return c.JSON(dto.GenerateWithLinkResponse{
				Message:     "PDF generated successfully",
				FilePath:    file.Path,
				DownloadURL: file.DownloadURL,
			})
		}
	}
	h.logFailure(c, "generate_with_link", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: "PDF generation failed: " + err.Error(),
		Code:  domain.Kind(err),
	})
}

// DownloadInvoice godoc
// @Summary      Descargar PDF de una factura guardada
// @Tags         pdf
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404
// @Router       /api/pdf/invoice/{id} [get]
func (h *PdfHandler) DownloadInvoice(c *fiber.Ctx) error {
	id, err := invoiceIDParam(c)
	if err == nil {
		var pdfBytes []byte
		if pdfBytes, err = h.uc.GeneratePDFFromDB(c.UserContext(), id); err == nil {
			return sendPDF(c, "invoice_"+strconv.FormatInt(id, 10)+".pdf", pdfBytes)
		}
	}
	h.logFailure(c, "download_invoice", err)
	return c.Status(fiber.StatusNotFound).Send(nil)
}

// GenerateFromDB godoc
// @Summary      Generar PDF en disco desde la base de datos
// @Tags         pdf
// @Produce      json
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {object}  dto.GenerateFromDBResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pdf/generate/{id} [get]
func (h *PdfHandler) GenerateFromDB(c *fiber.Ctx) error {
	id, err := invoiceIDParam(c)
	if err == nil {
		var file *billing.GeneratedFile
		if file, err = h.uc.GeneratePDFFromDBToFile(c.UserContext(), id); err == nil {
			return c.JSON(dto.GenerateFromDBResponse{
				Message:     "PDF generated from database",
				FilePath:    file.Path,
				InvoiceID:   strconv.FormatInt(file.InvoiceID, 10),
				DownloadURL: file.DownloadURL,
			})
		}
	}
	h.logFailure(c, "generate_from_db", err)
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: "Failed to generate PDF from DB: " + err.Error(),
		Code:  domain.Kind(err),
	})
}

// Save godoc
// @Summary      Guardar factura
// @Description  Persiste la factura y sus líneas. La respuesta incluye la URL del PDF.
// @Tags         pdf
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PdfRequest  true  "Datos de la factura"
// @Success      200   {object}  dto.SaveInvoiceResponse
// @Failure      500   {string}  string  "Save failed: ..."
// @Router       /api/pdf/save [post]
func (h *PdfHandler) Save(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err == nil {
		var saved *billing.SavedInvoice
		if saved, err = h.uc.SaveInvoice(c.UserContext(), req); err == nil {
			return c.JSON(dto.SaveInvoiceResponse{
				Message:   "Invoice saved to database",
				ID:        saved.ID,
				InvoiceID: saved.InvoiceCode,
				PdfURL:    saved.PdfURL,
			})
		}
	}
	h.logFailure(c, "save", err)
	return c.Status(fiber.StatusInternalServerError).SendString("Save failed: " + err.Error())
}

// DownloadFile godoc
// @Summary      Descargar un PDF generado con /generate-with-link
// @Tags         pdf
// @Produce      application/pdf
// @Param        file  path  string  true  "Nombre del archivo"
// @Success      200   {file}  binary
// @Failure      404
// @Router       /api/pdf/download/{file} [get]
func (h *PdfHandler) DownloadFile(c *fiber.Ctx) error {
	name := c.Params("file")
	data, err := h.uc.OpenGeneratedFile(c.UserContext(), name)
	if err != nil {
		h.logFailure(c, "download_file", err)
		return c.Status(fiber.StatusNotFound).Send(nil)
	}
	return sendPDF(c, name, data)
}

func (h *PdfHandler) parseRequest(c *fiber.Ctx) (*dto.PdfRequest, error) {
	var req dto.PdfRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fmt.Errorf("%w: cuerpo inválido: %v", domain.ErrInvalidInput, err)
	}
	if err := h.validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return &req, nil
}

func (h *PdfHandler) logFailure(c *fiber.Ctx, op string, err error) {
	h.log.Error().
		Err(err).
		Str("op", op).
		Str("kind", domain.Kind(err)).
		Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
		Msg("operación PDF fallida")
}

func invoiceIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id %q: %w", c.Params("id"), domain.ErrNotFound)
	}
	return id, nil
}

// sendPDF responde 200 con el PDF como adjunto (Content-Type, Content-Disposition y Content-Length).
func sendPDF(c *fiber.Ctx, fileName string, data []byte) error {
	c.Attachment(fileName)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Status(fiber.StatusOK).Send(data)
}
