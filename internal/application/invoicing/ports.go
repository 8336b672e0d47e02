package invoicing

import (
	"context"

	"github.com/tml-logistik/invoice-api/internal/domain/calc"
	"github.com/tml-logistik/invoice-api/internal/domain/catalog"
	"github.com/tml-logistik/invoice-api/internal/domain/entity"
	"github.com/tml-logistik/invoice-api/internal/domain/repository"
)

// InvoiceTxRunner runs fn inside one transaction. The repository passed to fn
// is bound to that transaction; header and items are committed or rolled back
// together, never half-written.
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// InvoiceDocument is everything the PDF renderer needs, resolved up front so
// the generator does no lookups of its own.
type InvoiceDocument struct {
	Invoice *entity.Invoice
	Type    catalog.InvoiceType
	Rows    []calc.Row
	Bank    catalog.BankAccount
}

// InvoicePDFGenerator renders the printable invoice.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc *InvoiceDocument) ([]byte, error)
}
