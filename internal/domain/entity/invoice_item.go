package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea de una factura.
// Solo existe dentro de su factura; InvoiceID es la única referencia al padre.
type InvoiceItem struct {
	ID        int64
	InvoiceID int64
	Name      string
	Quantity  int
	Price     decimal.Decimal
}
