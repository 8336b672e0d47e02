package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tml-logistik/invoice-api/internal/domain/entity"
)

// MonthlyRecap is one aggregated row of the recap dashboard.
type MonthlyRecap struct {
	Year  int
	Month int
	Count int64
	Total decimal.Decimal // sum of grand totals
}

// InvoiceRepository persists invoice headers and their items. Lookups return
// (nil, nil) when the record does not exist — absence is not an error here.
type InvoiceRepository interface {
	Create(inv *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	Update(inv *entity.Invoice) error
	DeleteItemsByInvoiceID(invoiceID string) error
	Delete(id string) error

	GetByID(id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	ListWithItems(limit, offset int) ([]*entity.Invoice, error)
	ListNumbersByPrefix(prefix string) ([]string, error)
	MonthlyRecap(year int) ([]MonthlyRecap, error)
}
