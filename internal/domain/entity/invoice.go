package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura persistida con sus líneas.
// El total lo envía el cliente y no se recalcula a partir de las líneas.
type Invoice struct {
	ID           int64
	InvoiceCode  string // Código de negocio (ej. INV-2024-001)
	CustomerName string
	Date         time.Time
	TotalAmount  decimal.Decimal
	Items        []InvoiceItem
}
