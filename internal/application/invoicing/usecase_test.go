package invoicing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tml-logistik/invoice-api/internal/application/dto"
	"github.com/tml-logistik/invoice-api/internal/domain"
	"github.com/tml-logistik/invoice-api/internal/domain/entity"
	"github.com/tml-logistik/invoice-api/internal/domain/repository"
	"github.com/tml-logistik/invoice-api/pkg/logger"
)

// fakeInvoiceRepo keeps invoices in memory and mimics the repository
// contract: lookups return (nil, nil) on absence, Create fails with
// ErrDuplicate on a reused invoice number.
type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    map[string][]*entity.InvoiceItem
	numbers  map[string]bool

	failListNumbers bool
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[string]*entity.Invoice),
		items:    make(map[string][]*entity.InvoiceItem),
		numbers:  make(map[string]bool),
	}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	if r.numbers[inv.InvoiceNumber] {
		return domain.ErrDuplicate
	}
	cp := *inv
	cp.Items = nil
	r.invoices[inv.ID] = &cp
	r.numbers[inv.InvoiceNumber] = true
	return nil
}

func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	cp := *item
	r.items[item.InvoiceID] = append(r.items[item.InvoiceID], &cp)
	return nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	old, ok := r.invoices[inv.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if inv.InvoiceNumber != old.InvoiceNumber && r.numbers[inv.InvoiceNumber] {
		return domain.ErrDuplicate
	}
	delete(r.numbers, old.InvoiceNumber)
	cp := *inv
	cp.Items = nil
	r.invoices[inv.ID] = &cp
	r.numbers[inv.InvoiceNumber] = true
	return nil
}

func (r *fakeInvoiceRepo) DeleteItemsByInvoiceID(invoiceID string) error {
	delete(r.items, invoiceID)
	return nil
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	if inv, ok := r.invoices[id]; ok {
		delete(r.numbers, inv.InvoiceNumber)
	}
	delete(r.invoices, id)
	delete(r.items, id)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	return r.items[invoiceID], nil
}

func (r *fakeInvoiceRepo) ListWithItems(limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for id, inv := range r.invoices {
		cp := *inv
		cp.Items = r.items[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListNumbersByPrefix(prefix string) ([]string, error) {
	if r.failListNumbers {
		return nil, errors.New("db down")
	}
	var out []string
	for num := range r.numbers {
		out = append(out, num)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) MonthlyRecap(year int) ([]repository.MonthlyRecap, error) {
	byMonth := make(map[int]*repository.MonthlyRecap)
	for _, inv := range r.invoices {
		if inv.InvoiceDate.Year() != year {
			continue
		}
		m := int(inv.InvoiceDate.Month())
		rec, ok := byMonth[m]
		if !ok {
			rec = &repository.MonthlyRecap{Year: year, Month: m}
			byMonth[m] = rec
		}
		rec.Count++
		rec.Total = rec.Total.Add(inv.GrandTotal)
	}
	var out []repository.MonthlyRecap
	for m := 1; m <= 12; m++ {
		if rec, ok := byMonth[m]; ok {
			out = append(out, *rec)
		}
	}
	return out, nil
}

// fakeTxRunner hands the same repo to fn; no real transaction semantics.
type fakeTxRunner struct {
	repo repository.InvoiceRepository
}

func (r *fakeTxRunner) RunInvoice(ctx context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(r.repo)
}

func newTestUseCase(repo *fakeInvoiceRepo) *InvoiceUseCase {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return NewInvoiceUseCase(repo, &fakeTxRunner{repo: repo}, "TML", decimal.Zero, log)
}

func validRow(n int) map[string]any {
	return map[string]any{
		"no":       n,
		"tanggal":  "2026-09-01",
		"consigne": "PT MAJU JAYA",
		"noMobil":  fmt.Sprintf("B 90%d1 TML", n),
		"pickup":   "JICT",
		"tujuan":   "CIKARANG",
		"harga":    float64(1_750_000),
	}
}

func TestCreateInvoice_StandardType(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := newTestUseCase(repo)

	resp, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 3, // OB - Bpk Dwi
		InvoiceDate:   "2026-09-01",
		Rows:          []map[string]any{validRow(1), validRow(2)},
	})
	require.NoError(t, err)

	assert.Equal(t, "TML/2026/IX/001", resp.InvoiceNumber)
	assert.False(t, resp.NumberFallback)
	assert.Equal(t, "Bpk Dwi", resp.CustomerName)
	assert.Equal(t, "A", resp.BankGroup)
	assert.False(t, resp.IsFee)
	assert.Equal(t, entity.StatusDraft, resp.Status)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(3_500_000)))
	assert.True(t, resp.GrandTotal.Equal(decimal.NewFromInt(3_500_000)))
	assert.Equal(t, "Tiga juta lima ratus ribu rupiah", resp.Terbilang)
	assert.Len(t, resp.Rows, 2)

	// persisted: header + 2 items
	assert.Len(t, repo.invoices, 1)
	assert.Len(t, repo.items[resp.ID], 2)
}

func TestCreateInvoice_SequencesWithinMonth(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := newTestUseCase(repo)

	for range 3 {
		_, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
			InvoiceTypeID: 3,
			InvoiceDate:   "2026-09-10",
			Rows:          []map[string]any{validRow(1)},
		})
		require.NoError(t, err)
	}
	resp, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 3,
		InvoiceDate:   "2026-09-20",
		Rows:          []map[string]any{validRow(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, "TML/2026/IX/004", resp.InvoiceNumber)

	// new month, sequence restarts
	resp, err = uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 3,
		InvoiceDate:   "2026-10-01",
		Rows:          []map[string]any{validRow(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, "TML/2026/X/001", resp.InvoiceNumber)
}

func TestCreateInvoice_FeeTypeDiscountAndDP(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := newTestUseCase(repo)

	row := validRow(1)
	row["depo"] = "DWIPA"
	row["harga"] = float64(2_000_000)
	resp, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 5, // Import FEE - Bpk Dwi
		InvoiceDate:   "2026-09-01",
		Rows:          []map[string]any{row},
		DP:            decimal.NewFromInt(1_000_000),
		TaxRate:       decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	assert.True(t, resp.IsFee)
	// 2,000,000 - 150,000 fee discount = 1,850,000
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(1_850_000)))
	assert.True(t, resp.DP.Equal(decimal.NewFromInt(1_000_000)))
	// tax on DP-adjusted base: 10% of 850,000
	assert.True(t, resp.TaxAmount.Equal(decimal.NewFromInt(85_000)))
	assert.True(t, resp.GrandTotal.Equal(decimal.NewFromInt(935_000)))
}

func TestCreateInvoice_DefaultTaxRate(t *testing.T) {
	repo := newFakeInvoiceRepo()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	uc := NewInvoiceUseCase(repo, &fakeTxRunner{repo: repo}, "TML", decimal.NewFromInt(11), log)

	// no tax rate in the request: the configured default applies
	resp, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 3,
		InvoiceDate:   "2026-09-01",
		Rows:          []map[string]any{validRow(1)},
	})
	require.NoError(t, err)
	assert.True(t, resp.TaxRate.Equal(decimal.NewFromInt(11)))
	assert.True(t, resp.TaxAmount.Equal(decimal.NewFromInt(192_500)))
	assert.True(t, resp.GrandTotal.Equal(decimal.NewFromInt(1_942_500)))

	// an explicit rate wins over the default
	resp, err = uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 3,
		InvoiceDate:   "2026-09-02",
		Rows:          []map[string]any{validRow(1)},
		TaxRate:       decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.True(t, resp.TaxRate.Equal(decimal.NewFromInt(10)))
	assert.True(t, resp.TaxAmount.Equal(decimal.NewFromInt(175_000)))
}

func TestCreateInvoice_UnknownType(t *testing.T) {
	uc := newTestUseCase(newFakeInvoiceRepo())

	_, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 99,
		InvoiceDate:   "2026-09-01",
		Rows:          []map[string]any{validRow(1)},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownInvoiceType)
}

func TestCreateInvoice_RowValidation(t *testing.T) {
	uc := newTestUseCase(newFakeInvoiceRepo())

	bad := validRow(1)
	delete(bad, "consigne")
	_, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 3,
		InvoiceDate:   "2026-09-01",
		Rows:          []map[string]any{validRow(1), bad},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var rve *RowValidationError
	require.ErrorAs(t, err, &rve)
	require.Len(t, rve.Fields, 1)
	assert.Equal(t, "consigne", rve.Fields[0].Key)
	assert.Contains(t, rve.Fields[0].Message, "baris 2")
}

func TestCreateInvoice_BadDate(t *testing.T) {
	uc := newTestUseCase(newFakeInvoiceRepo())

	_, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 3,
		InvoiceDate:   "01/09/2026",
		Rows:          []map[string]any{validRow(1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateInvoice_PlaceholderOnSequencerFailure(t *testing.T) {
	repo := newFakeInvoiceRepo()
	repo.failListNumbers = true
	uc := newTestUseCase(repo)

	resp, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 3,
		InvoiceDate:   "2026-09-01",
		Rows:          []map[string]any{validRow(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, "TML/2026/IX/...", resp.InvoiceNumber)
	assert.True(t, resp.NumberFallback)
}

func TestCreateInvoice_ExplicitNumberDuplicate(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := newTestUseCase(repo)

	req := dto.CreateInvoiceRequest{
		InvoiceTypeID: 3,
		InvoiceNumber: "TML/2026/IX/007",
		InvoiceDate:   "2026-09-01",
		Rows:          []map[string]any{validRow(1)},
	}
	_, err := uc.CreateInvoice(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.CreateInvoice(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdateInvoice_ReplacesItemsAndRecomputes(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := newTestUseCase(repo)

	created, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 3,
		InvoiceDate:   "2026-09-01",
		Rows:          []map[string]any{validRow(1), validRow(2)},
	})
	require.NoError(t, err)

	row := validRow(1)
	row["harga"] = float64(5_000_000)
	updated, err := uc.UpdateInvoice(context.Background(), created.ID, dto.UpdateInvoiceRequest{
		InvoiceTypeID: 3,
		InvoiceNumber: created.InvoiceNumber,
		InvoiceDate:   "2026-09-02",
		Rows:          []map[string]any{row},
		Status:        entity.StatusFinal,
	})
	require.NoError(t, err)

	assert.True(t, updated.GrandTotal.Equal(decimal.NewFromInt(5_000_000)))
	assert.Equal(t, entity.StatusFinal, updated.Status)
	assert.Len(t, repo.items[created.ID], 1)
	assert.Equal(t, "Lima juta rupiah", updated.Terbilang)
}

func TestUpdateInvoice_NotFound(t *testing.T) {
	uc := newTestUseCase(newFakeInvoiceRepo())

	_, err := uc.UpdateInvoice(context.Background(), "missing", dto.UpdateInvoiceRequest{
		InvoiceTypeID: 3,
		InvoiceNumber: "TML/2026/IX/001",
		InvoiceDate:   "2026-09-01",
		Rows:          []map[string]any{validRow(1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetInvoice_RowsMatchSchema(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := newTestUseCase(repo)

	created, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 1, // OB - PT ISL: has gatePass, no depo
		InvoiceDate:   "2026-09-01",
		Rows:          []map[string]any{validRow(1)},
	})
	require.NoError(t, err)

	got, err := uc.GetInvoice(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	row := got.Rows[0]
	assert.Contains(t, row, "gatePass")
	assert.NotContains(t, row, "depo")
	assert.Equal(t, "PT MAJU JAYA", row["consigne"])
}

func TestGetInvoice_NotFound(t *testing.T) {
	uc := newTestUseCase(newFakeInvoiceRepo())
	_, err := uc.GetInvoice(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteInvoice(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := newTestUseCase(repo)

	created, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 3,
		InvoiceDate:   "2026-09-01",
		Rows:          []map[string]any{validRow(1)},
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteInvoice(context.Background(), created.ID))
	assert.Empty(t, repo.invoices)

	assert.ErrorIs(t, uc.DeleteInvoice(context.Background(), created.ID), domain.ErrNotFound)
}

func TestNextNumber_Preview(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := newTestUseCase(repo)

	_, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 3,
		InvoiceDate:   "2026-09-01",
		Rows:          []map[string]any{validRow(1)},
	})
	require.NoError(t, err)

	resp := uc.NextNumber(context.Background(), mustDate(t, "2026-09-15"))
	assert.Equal(t, "TML/2026/IX/002", resp.InvoiceNumber)
	assert.False(t, resp.Fallback)
}

func TestMonthlySummary(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := newTestUseCase(repo)
	recap := NewRecapUseCase(repo)

	for _, date := range []string{"2026-09-01", "2026-09-15", "2026-10-02"} {
		_, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
			InvoiceTypeID: 3,
			InvoiceDate:   date,
			Rows:          []map[string]any{validRow(1)},
		})
		require.NoError(t, err)
	}

	months, err := recap.MonthlySummary(context.Background(), 2026)
	require.NoError(t, err)
	require.Len(t, months, 2)
	assert.Equal(t, 9, months[0].Month)
	assert.Equal(t, int64(2), months[0].Count)
	assert.True(t, months[0].Total.Equal(decimal.NewFromInt(3_500_000)))
	assert.Equal(t, 10, months[1].Month)
	assert.Equal(t, int64(1), months[1].Count)
}

func TestDownloadInvoicePDF(t *testing.T) {
	repo := newFakeInvoiceRepo()
	uc := newTestUseCase(repo)

	created, err := uc.CreateInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceTypeID: 3,
		InvoiceDate:   "2026-09-01",
		Rows:          []map[string]any{validRow(1)},
	})
	require.NoError(t, err)

	var captured *InvoiceDocument
	pdfUC := NewPDFUseCase(repo, pdfGeneratorFunc(func(ctx context.Context, doc *InvoiceDocument) ([]byte, error) {
		captured = doc
		return []byte("%PDF-1.7"), nil
	}))

	data, filename, err := pdfUC.DownloadInvoicePDF(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), data)
	assert.Equal(t, "invoice_TML-2026-IX-001.pdf", filename)

	require.NotNil(t, captured)
	assert.Equal(t, 3, captured.Type.ID)
	assert.Equal(t, "HERI PURWANTO", captured.Bank.AccountHolder)
	assert.Len(t, captured.Rows, 1)
}

func TestDownloadInvoicePDF_NotFound(t *testing.T) {
	pdfUC := NewPDFUseCase(newFakeInvoiceRepo(), pdfGeneratorFunc(func(ctx context.Context, doc *InvoiceDocument) ([]byte, error) {
		return nil, nil
	}))
	_, _, err := pdfUC.DownloadInvoicePDF(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type pdfGeneratorFunc func(ctx context.Context, doc *InvoiceDocument) ([]byte, error)

func (f pdfGeneratorFunc) GenerateInvoicePDF(ctx context.Context, doc *InvoiceDocument) ([]byte, error) {
	return f(ctx, doc)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}
