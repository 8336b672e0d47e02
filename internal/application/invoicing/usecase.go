// Package invoicing implements the application usecases around invoices:
// create/update with schema validation and computed totals, number
// sequencing, listing, recap aggregation and PDF download.
package invoicing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tml-logistik/invoice-api/internal/application/dto"
	"github.com/tml-logistik/invoice-api/internal/domain"
	"github.com/tml-logistik/invoice-api/internal/domain/calc"
	"github.com/tml-logistik/invoice-api/internal/domain/catalog"
	"github.com/tml-logistik/invoice-api/internal/domain/entity"
	"github.com/tml-logistik/invoice-api/internal/domain/repository"
	"github.com/tml-logistik/invoice-api/internal/domain/schema"
	"github.com/tml-logistik/invoice-api/internal/domain/sequence"
	"github.com/tml-logistik/invoice-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// RowValidationError aggregates the per-field failures of the submitted
// rows. It unwraps to ErrInvalidInput so the transport maps it to 400 while
// still being able to surface every field message.
type RowValidationError struct {
	Fields []schema.FieldError
}

func (e *RowValidationError) Error() string {
	if len(e.Fields) == 0 {
		return domain.ErrInvalidInput.Error()
	}
	return fmt.Sprintf("%s (%d kesalahan)", e.Fields[0].Message, len(e.Fields))
}

func (e *RowValidationError) Unwrap() error { return domain.ErrInvalidInput }

// InvoiceUseCase drives the invoice lifecycle. Totals are always recomputed
// server-side from the rows; client-sent totals are never trusted.
type InvoiceUseCase struct {
	invoiceRepo    repository.InvoiceRepository
	txRunner       InvoiceTxRunner
	numberPrefix   string
	defaultTaxRate decimal.Decimal
	log            *logger.Logger
}

// NewInvoiceUseCase builds the usecase. numberPrefix is the company code of
// the invoice numbers ("TML" in production); defaultTaxRate is the PPN
// percentage applied when a create request carries none (zero = no tax).
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	txRunner InvoiceTxRunner,
	numberPrefix string,
	defaultTaxRate decimal.Decimal,
	log *logger.Logger,
) *InvoiceUseCase {
	if numberPrefix == "" {
		numberPrefix = sequence.DefaultPrefix
	}
	return &InvoiceUseCase{
		invoiceRepo:    invoiceRepo,
		txRunner:       txRunner,
		numberPrefix:   numberPrefix,
		defaultTaxRate: defaultTaxRate,
		log:            log,
	}
}

// CreateInvoice validates the rows against the type schema, computes the
// totals, assigns an invoice number when none was sent and persists header
// plus items in one transaction. New invoices start as DRAFT.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	typ, ok := catalog.TypeByID(in.InvoiceTypeID)
	if !ok {
		return nil, domain.ErrUnknownInvoiceType
	}

	invDate, err := time.Parse(dateLayout, in.InvoiceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invoice_date", domain.ErrInvalidInput)
	}
	periodStart, periodEnd, err := parsePeriod(in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, err
	}

	rows := toRows(in.Rows)
	calc.Renumber(rows)
	if errs := schema.ValidateRows(typ, rows); len(errs) > 0 {
		return nil, &RowValidationError{Fields: errs}
	}
	for i, row := range rows {
		rows[i] = schema.NormalizeRow(typ, row)
	}

	taxRate := in.TaxRate
	if taxRate.IsZero() {
		taxRate = uc.defaultTaxRate
	}
	totals := calc.ComputeTotals(typ, rows, in.DP, taxRate)

	number := in.InvoiceNumber
	fallback := false
	if number == "" {
		number, fallback = uc.nextNumber(invDate)
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:              uuid.New().String(),
		InvoiceNumber:   number,
		CustomerName:    typ.CustomerName,
		InvoiceTypeID:   typ.ID,
		InvoiceTypeName: typ.Name,
		BankGroup:       string(typ.BankGroup),
		IsFee:           typ.IsFee,
		InvoiceDate:     invDate,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		TotalAmount:     totals.GrandTotal,
		DP:              totals.DownPayment,
		TaxRate:         totals.TaxRate,
		TaxAmount:       totals.TaxAmount,
		GrandTotal:      totals.FinalAmount,
		Terbilang:       totals.Terbilang,
		Status:          entity.StatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, row := range rows {
		inv.Items = append(inv.Items, itemFromRow(inv.ID, row, now))
	}

	err = uc.txRunner.RunInvoice(ctx, func(repo repository.InvoiceRepository) error {
		if err := repo.Create(inv); err != nil {
			return err
		}
		for _, item := range inv.Items {
			if err := repo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("invoice_id", inv.ID).
		Str("invoice_number", inv.InvoiceNumber).
		Int("invoice_type_id", typ.ID).
		Int("rows", len(rows)).
		Msg("invoice created")

	resp := uc.toResponse(inv, rows)
	resp.NumberFallback = fallback
	return resp, nil
}

// UpdateInvoice recomputes everything from the submitted rows and replaces
// the stored items wholesale in one transaction.
func (uc *InvoiceUseCase) UpdateInvoice(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	existing, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	typ, ok := catalog.TypeByID(in.InvoiceTypeID)
	if !ok {
		return nil, domain.ErrUnknownInvoiceType
	}

	invDate, err := time.Parse(dateLayout, in.InvoiceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invoice_date", domain.ErrInvalidInput)
	}
	periodStart, periodEnd, err := parsePeriod(in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, err
	}

	rows := toRows(in.Rows)
	calc.Renumber(rows)
	if errs := schema.ValidateRows(typ, rows); len(errs) > 0 {
		return nil, &RowValidationError{Fields: errs}
	}
	for i, row := range rows {
		rows[i] = schema.NormalizeRow(typ, row)
	}

	totals := calc.ComputeTotals(typ, rows, in.DP, in.TaxRate)

	status := existing.Status
	if in.Status != "" {
		status = in.Status
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:              existing.ID,
		InvoiceNumber:   in.InvoiceNumber,
		CustomerName:    typ.CustomerName,
		InvoiceTypeID:   typ.ID,
		InvoiceTypeName: typ.Name,
		BankGroup:       string(typ.BankGroup),
		IsFee:           typ.IsFee,
		InvoiceDate:     invDate,
		PeriodStart:     periodStart,
		PeriodEnd:       periodEnd,
		TotalAmount:     totals.GrandTotal,
		DP:              totals.DownPayment,
		TaxRate:         totals.TaxRate,
		TaxAmount:       totals.TaxAmount,
		GrandTotal:      totals.FinalAmount,
		Terbilang:       totals.Terbilang,
		Status:          status,
		CreatedAt:       existing.CreatedAt,
		UpdatedAt:       now,
	}
	for _, row := range rows {
		inv.Items = append(inv.Items, itemFromRow(inv.ID, row, now))
	}

	err = uc.txRunner.RunInvoice(ctx, func(repo repository.InvoiceRepository) error {
		if err := repo.Update(inv); err != nil {
			return err
		}
		if err := repo.DeleteItemsByInvoiceID(inv.ID); err != nil {
			return err
		}
		for _, item := range inv.Items {
			if err := repo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(inv, rows), nil
}

// GetInvoice loads one invoice with its rows.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return uc.toResponse(inv, uc.rowsFor(inv)), nil
}

// ListInvoices pages through the invoices, newest first, rows included.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.DefaultPage()
	invoices, err := uc.invoiceRepo.ListWithItems(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, uc.toResponse(inv, uc.rowsFor(inv)))
	}
	return out, nil
}

// DeleteInvoice removes an invoice and its items.
func (uc *InvoiceUseCase) DeleteInvoice(ctx context.Context, id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.Delete(id)
}

// NextNumber previews the number the next invoice dated at would get.
func (uc *InvoiceUseCase) NextNumber(ctx context.Context, at time.Time) *dto.NextNumberResponse {
	number, fallback := uc.nextNumber(at)
	return &dto.NextNumberResponse{InvoiceNumber: number, Fallback: fallback}
}

// nextNumber sequences within the year/month prefix of at. When the existing
// numbers cannot be read the placeholder is issued instead of failing:
// creating an invoice must not block on the recap scan.
func (uc *InvoiceUseCase) nextNumber(at time.Time) (string, bool) {
	prefix := sequence.Prefix(uc.numberPrefix, at)
	existing, err := uc.invoiceRepo.ListNumbersByPrefix(prefix)
	if err != nil {
		uc.log.Warn().Err(err).Str("prefix", prefix).Msg("sequencing degraded, issuing placeholder number")
		return sequence.Placeholder(prefix), true
	}
	return sequence.Next(prefix, existing), false
}

func (uc *InvoiceUseCase) rowsFor(inv *entity.Invoice) []calc.Row {
	typ, ok := catalog.TypeByID(inv.InvoiceTypeID)
	if !ok {
		// Type removed from the catalog after the invoice was stored; fall
		// back to the base columns so the rows stay readable.
		typ = catalog.InvoiceType{Columns: catalog.Types()[0].Columns}
	}
	return rowsFromItems(typ, inv.Items)
}

func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice, rows []calc.Row) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		CustomerName:    inv.CustomerName,
		InvoiceTypeID:   inv.InvoiceTypeID,
		InvoiceTypeName: inv.InvoiceTypeName,
		BankGroup:       inv.BankGroup,
		IsFee:           inv.IsFee,
		InvoiceDate:     inv.InvoiceDate.Format(dateLayout),
		TotalAmount:     inv.TotalAmount,
		DP:              inv.DP,
		TaxRate:         inv.TaxRate,
		TaxAmount:       inv.TaxAmount,
		GrandTotal:      inv.GrandTotal,
		Terbilang:       inv.Terbilang,
		Status:          inv.Status,
		CreatedAt:       inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       inv.UpdatedAt.Format(time.RFC3339),
	}
	if inv.PeriodStart != nil {
		resp.PeriodStart = inv.PeriodStart.Format(dateLayout)
	}
	if inv.PeriodEnd != nil {
		resp.PeriodEnd = inv.PeriodEnd.Format(dateLayout)
	}
	resp.Rows = make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		resp.Rows = append(resp.Rows, map[string]any(row))
	}
	return resp
}

func parsePeriod(start, end string) (*time.Time, *time.Time, error) {
	parse := func(s, field string) (*time.Time, error) {
		if strings.TrimSpace(s) == "" {
			return nil, nil
		}
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, field)
		}
		return &t, nil
	}
	ps, err := parse(start, "period_start")
	if err != nil {
		return nil, nil, err
	}
	pe, err := parse(end, "period_end")
	if err != nil {
		return nil, nil, err
	}
	if ps != nil && pe != nil && pe.Before(*ps) {
		return nil, nil, fmt.Errorf("%w: period_end sebelum period_start", domain.ErrInvalidInput)
	}
	return ps, pe, nil
}
