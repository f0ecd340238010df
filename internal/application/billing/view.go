package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-pdf-api/internal/application/dto"
	"github.com/jhoicas/invoice-pdf-api/internal/domain"
	"github.com/jhoicas/invoice-pdf-api/internal/domain/entity"
)

// DateLayout formato de fecha de las facturas (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Source origen de datos de una factura a renderizar. Solo existen dos variantes:
// FromRequest (petición sin persistir) y FromEntity (factura leída de la base de datos).
type Source interface {
	isSource()
}

// FromRequest factura tal como llega en la petición HTTP.
type FromRequest struct {
	Request *dto.PdfRequest
}

// FromEntity factura persistida.
type FromEntity struct {
	Invoice *entity.Invoice
}

func (FromRequest) isSource() {}
func (FromEntity) isSource()  {}

// InvoiceView variables que recibe la plantilla, iguales para ambos orígenes.
type InvoiceView struct {
	InvoiceID    string
	CustomerName string
	Date         string
	Items        []ItemView
	TotalAmount  decimal.Decimal
}

// ItemView línea de la factura en la plantilla.
type ItemView struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// Subtotal cantidad por precio unitario, solo para mostrar.
func (i ItemView) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewInvoiceView normaliza cualquiera de los dos orígenes a InvoiceView.
// La fecha de una entidad se formatea como YYYY-MM-DD; la de una petición se pasa tal cual.
// Cualquier otro origen (o uno sin datos) devuelve domain.ErrUnsupportedSource.
func NewInvoiceView(src Source) (InvoiceView, error) {
	switch s := src.(type) {
	case FromRequest:
		if s.Request == nil {
			return InvoiceView{}, fmt.Errorf("%w: petición vacía", domain.ErrUnsupportedSource)
		}
		return viewFromRequest(s.Request), nil
	case FromEntity:
		if s.Invoice == nil {
			return InvoiceView{}, fmt.Errorf("%w: factura vacía", domain.ErrUnsupportedSource)
		}
		return viewFromEntity(s.Invoice), nil
	default:
		return InvoiceView{}, fmt.Errorf("%w: %T", domain.ErrUnsupportedSource, src)
	}
}

func viewFromRequest(req *dto.PdfRequest) InvoiceView {
	items := make([]ItemView, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ItemView{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	total := decimal.Zero
	if req.TotalAmount != nil {
		total = *req.TotalAmount
	}
	return InvoiceView{
		InvoiceID:    req.InvoiceID,
		CustomerName: req.CustomerName,
		Date:         req.Date,
		Items:        items,
		TotalAmount:  total,
	}
}

func viewFromEntity(inv *entity.Invoice) InvoiceView {
	items := make([]ItemView, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, ItemView{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	return InvoiceView{
		InvoiceID:    inv.InvoiceCode,
		CustomerName: inv.CustomerName,
		Date:         inv.Date.Format(DateLayout),
		Items:        items,
		TotalAmount:  inv.TotalAmount,
	}
}
