package repository

import (
	"context"

	"github.com/jhoicas/invoice-pdf-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
type InvoiceRepository interface {
	// Create inserta la cabecera y todas las líneas en una sola transacción.
	// Asigna ID a la factura y ID/InvoiceID a cada línea.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByID devuelve (nil, nil) si la factura no existe.
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
}
