package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/invoice-pdf-api/internal/domain"
	"github.com/jhoicas/invoice-pdf-api/internal/domain/entity"
	"github.com/jhoicas/invoice-pdf-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre pgx.
type InvoiceRepo struct {
	q  Querier
	tx *TxRunner
}

// NewInvoiceRepository construye el adaptador sobre el pool.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{q: pool, tx: NewTxRunner(pool)}
}

// Create persiste cabecera y líneas en una sola transacción.
// Los IDs se asignan a la factura y a las líneas solo si el commit tiene éxito.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	var invoiceID int64
	itemIDs := make([]int64, len(invoice.Items))

	err := r.tx.Run(ctx, func(q Querier) error {
		const insertInvoice = `
			INSERT INTO invoices (invoice_id, customer_name, date, total_amount)
			VALUES ($1, $2, $3, $4)
			RETURNING id`
		if err := q.QueryRow(ctx, insertInvoice,
			invoice.InvoiceCode, invoice.CustomerName, invoice.Date, invoice.TotalAmount,
		).Scan(&invoiceID); err != nil {
			return storageError("insert invoice", err)
		}

		const insertItem = `
			INSERT INTO invoice_items (invoice_id, name, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id`
		for i, item := range invoice.Items {
			if err := q.QueryRow(ctx, insertItem,
				invoiceID, item.Name, item.Quantity, item.Price,
			).Scan(&itemIDs[i]); err != nil {
				return storageError("insert invoice item", err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrStorage) {
			return err
		}
		return storageError("create invoice", err)
	}

	invoice.ID = invoiceID
	for i := range invoice.Items {
		invoice.Items[i].ID = itemIDs[i]
		invoice.Items[i].InvoiceID = invoiceID
	}
	return nil
}

// GetByID obtiene la factura con sus líneas en orden de inserción. (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	const query = `
		SELECT id, invoice_id, customer_name, date, total_amount
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.InvoiceCode, &inv.CustomerName, &inv.Date, &inv.TotalAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageError("get invoice", err)
	}

	items, err := r.itemsByInvoiceID(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return &inv, nil
}

func (r *InvoiceRepo) itemsByInvoiceID(ctx context.Context, invoiceID int64) ([]entity.InvoiceItem, error) {
	const query = `
		SELECT id, invoice_id, name, quantity, price
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, storageError("list invoice items", err)
	}
	defer rows.Close()

	list := make([]entity.InvoiceItem, 0)
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, storageError("scan invoice item", err)
		}
		list = append(list, it)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list invoice items", err)
	}
	return list, nil
}
