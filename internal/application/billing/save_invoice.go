package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-pdf-api/internal/application/dto"
	"github.com/jhoicas/invoice-pdf-api/internal/domain"
	"github.com/jhoicas/invoice-pdf-api/internal/domain/entity"
)

// SavedInvoice resultado de guardar una factura.
type SavedInvoice struct {
	ID          int64
	InvoiceCode string
	PdfURL      string
}

// SaveInvoice convierte la petición en factura + líneas y la persiste.
// La fecha solo se interpreta aquí: una fecha mal formada llega hasta este punto
// y se devuelve como domain.ErrInvalidInput.
func (uc *PDFUseCase) SaveInvoice(ctx context.Context, req *dto.PdfRequest) (*SavedInvoice, error) {
	inv, err := invoiceFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, withKind(domain.ErrStorage, fmt.Errorf("guardar factura: %w", err))
	}
	return &SavedInvoice{
		ID:          inv.ID,
		InvoiceCode: inv.InvoiceCode,
		PdfURL:      uc.InvoiceURL(inv.ID),
	}, nil
}

func invoiceFromRequest(req *dto.PdfRequest) (*entity.Invoice, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: petición vacía", domain.ErrInvalidInput)
	}
	date, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha %q: %v", domain.ErrInvalidInput, req.Date, err)
	}
	total := decimal.Zero
	if req.TotalAmount != nil {
		total = *req.TotalAmount
	}
	items := make([]entity.InvoiceItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.InvoiceItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return &entity.Invoice{
		InvoiceCode:  req.InvoiceID,
		CustomerName: req.CustomerName,
		Date:         date,
		TotalAmount:  total,
		Items:        items,
	}, nil
}
