package sqlstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-pdf-api/internal/domain/entity"
)

// invoiceModel fila de la tabla invoices.
type invoiceModel struct {
	ID           int64              `gorm:"primaryKey;autoIncrement"`
	InvoiceCode  string             `gorm:"column:invoice_id;not null"`
	CustomerName string             `gorm:"column:customer_name;not null"`
	Date         time.Time          `gorm:"column:date;type:date;not null"`
	TotalAmount  decimal.Decimal    `gorm:"column:total_amount;type:numeric(10,2)"`
	Items        []invoiceItemModel `gorm:"foreignKey:InvoiceID;references:ID"`
}

func (invoiceModel) TableName() string { return "invoices" }

// invoiceItemModel fila de la tabla invoice_items.
type invoiceItemModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"column:name"`
	Quantity  int             `gorm:"column:quantity;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	InvoiceID int64           `gorm:"column:invoice_id;not null;index"`
}

func (invoiceItemModel) TableName() string { return "invoice_items" }

func toModel(inv *entity.Invoice) *invoiceModel {
	items := make([]invoiceItemModel, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, invoiceItemModel{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	return &invoiceModel{
		InvoiceCode:  inv.InvoiceCode,
		CustomerName: inv.CustomerName,
		Date:         inv.Date,
		TotalAmount:  inv.TotalAmount,
		Items:        items,
	}
}

func toEntity(m *invoiceModel) *entity.Invoice {
	items := make([]entity.InvoiceItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, entity.InvoiceItem{
			ID:        it.ID,
			InvoiceID: it.InvoiceID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return &entity.Invoice{
		ID:           m.ID,
		InvoiceCode:  m.InvoiceCode,
		CustomerName: m.CustomerName,
		Date:         m.Date,
		TotalAmount:  m.TotalAmount,
		Items:        items,
	}
}
