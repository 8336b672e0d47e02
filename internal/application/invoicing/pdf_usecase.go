package invoicing

import (
	"context"
	"fmt"
	"strings"

	"github.com/tml-logistik/invoice-api/internal/domain"
	"github.com/tml-logistik/invoice-api/internal/domain/catalog"
	"github.com/tml-logistik/invoice-api/internal/domain/repository"
)

// PDFUseCase resolves an invoice into the document the renderer needs and
// produces the downloadable PDF.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	generator   InvoicePDFGenerator
}

func NewPDFUseCase(invoiceRepo repository.InvoiceRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, generator: generator}
}

// DownloadInvoicePDF loads the invoice with its items, resolves the type and
// bank account and renders the PDF. Returns the bytes and a filename derived
// from the invoice number.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	typ, ok := catalog.TypeByID(inv.InvoiceTypeID)
	if !ok {
		return nil, "", domain.ErrUnknownInvoiceType
	}
	bank, _ := catalog.BankForGroup(typ.BankGroup)

	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load items: %w", err)
	}
	inv.Items = items

	doc := &InvoiceDocument{
		Invoice: inv,
		Type:    typ,
		Rows:    rowsFromItems(typ, items),
		Bank:    bank,
	}
	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render: %w", err)
	}

	// TML/2026/IX/007 -> invoice_TML-2026-IX-007.pdf
	name := strings.NewReplacer("/", "-", ".", "").Replace(inv.InvoiceNumber)
	if name == "" {
		name = inv.ID
	}
	return pdfBytes, fmt.Sprintf("invoice_%s.pdf", name), nil
}
