package calc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tml-logistik/invoice-api/internal/domain/calc"
	"github.com/tml-logistik/invoice-api/internal/domain/catalog"
)

func feeType(t *testing.T) catalog.InvoiceType {
	t.Helper()
	typ, ok := catalog.TypeByID(5) // Import FEE - Bpk Dwi
	require.True(t, ok)
	require.True(t, typ.IsFee)
	return typ
}

func standardType(t *testing.T) catalog.InvoiceType {
	t.Helper()
	typ, ok := catalog.TypeByID(1) // OB - PT ISL
	require.True(t, ok)
	require.False(t, typ.IsFee)
	return typ
}

func eq(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, got.Equal(decimal.NewFromInt(want)),
		"want %d got %s %v", want, got, msgAndArgs)
}

func TestRowTotal_SumsCurrencyColumns(t *testing.T) {
	typ := standardType(t)
	row := calc.Row{"harga": 1_500_000, "gatePass": 250_000, "tujuan": "BEKASI"}
	eq(t, 1_750_000, calc.RowTotal(typ, row))
}

func TestRowTotal_FeeDiscountOnHarga(t *testing.T) {
	typ := feeType(t)

	// 500,000 - 150,000 = 350,000
	eq(t, 350_000, calc.RowTotal(typ, calc.Row{"harga": 500_000}))

	// Discount floors at zero, never a negative contribution.
	eq(t, 0, calc.RowTotal(typ, calc.Row{"harga": 100_000}))

	// Other currency columns are summed at face value.
	eq(t, 450_000, calc.RowTotal(typ, calc.Row{"harga": 500_000, "liftOff": 100_000}))
}

func TestRowTotal_MalformedValuesCoerceToZero(t *testing.T) {
	typ := standardType(t)
	row := calc.Row{"harga": "abc", "gatePass": nil, "liftOff": []string{"x"}}
	eq(t, 0, calc.RowTotal(typ, row))

	// JSON numbers arrive as float64.
	eq(t, 1_850_000, calc.RowTotal(typ, calc.Row{"harga": float64(1_850_000)}))
	// Numeric strings still count.
	eq(t, 700_000, calc.RowTotal(typ, calc.Row{"harga": "700000"}))
}

func TestComputeTotals_StandardNoTax(t *testing.T) {
	typ := standardType(t)
	rows := []calc.Row{
		{"harga": 3_600_000},
		{"harga": 3_600_000},
	}
	tot := calc.ComputeTotals(typ, rows, decimal.Zero, decimal.Zero)
	eq(t, 7_200_000, tot.GrandTotal)
	eq(t, 0, tot.TaxAmount)
	eq(t, 7_200_000, tot.FinalAmount)
	assert.Equal(t, "Tujuh juta dua ratus ribu rupiah", tot.Terbilang)
}

func TestComputeTotals_StandardIgnoresDownPayment(t *testing.T) {
	typ := standardType(t)
	rows := []calc.Row{{"harga": 2_000_000}}
	// A stray dp for a non-FEE type must never be subtracted.
	tot := calc.ComputeTotals(typ, rows, decimal.NewFromInt(500_000), decimal.Zero)
	eq(t, 2_000_000, tot.FinalAmount)
	eq(t, 0, tot.DownPayment)
}

func TestComputeTotals_FeeDownPayment(t *testing.T) {
	typ := feeType(t)
	// Row totals already include the per-row discount; craft rows summing to
	// a 7,100,000 grand total.
	rows := []calc.Row{
		{"harga": 3_700_000}, // 3,550,000
		{"harga": 3_700_000}, // 3,550,000
	}
	tot := calc.ComputeTotals(typ, rows, decimal.NewFromInt(2_000_000), decimal.Zero)
	eq(t, 7_100_000, tot.GrandTotal)
	eq(t, 5_100_000, tot.FinalAmount)
}

func TestComputeTotals_TaxOnStandard(t *testing.T) {
	typ := standardType(t)
	rows := []calc.Row{{"harga": 1_000_000}}
	tot := calc.ComputeTotals(typ, rows, decimal.Zero, decimal.NewFromInt(10))
	eq(t, 100_000, tot.TaxAmount)
	eq(t, 1_100_000, tot.FinalAmount)
}

func TestComputeTotals_TaxRoundsHalfAwayFromZero(t *testing.T) {
	typ := standardType(t)
	rows := []calc.Row{{"harga": 333_335}}
	// 0.5% of 333,335 = 1,666.675 -> 1,667
	tot := calc.ComputeTotals(typ, rows, decimal.Zero, decimal.NewFromFloat(0.5))
	eq(t, 1_667, tot.TaxAmount)
}

func TestComputeTotals_FeeTaxAppliesAfterDownPayment(t *testing.T) {
	typ := feeType(t)
	rows := []calc.Row{{"harga": 5_150_000}} // row total 5,000,000
	tot := calc.ComputeTotals(typ, rows, decimal.NewFromInt(1_000_000), decimal.NewFromInt(11))
	eq(t, 5_000_000, tot.GrandTotal)
	eq(t, 440_000, tot.TaxAmount) // 11% of 4,000,000
	eq(t, 4_440_000, tot.FinalAmount)
}

func TestComputeTotals_ZeroRows(t *testing.T) {
	typ := standardType(t)
	tot := calc.ComputeTotals(typ, nil, decimal.Zero, decimal.Zero)
	eq(t, 0, tot.GrandTotal)
	eq(t, 0, tot.FinalAmount)
	assert.Empty(t, tot.Terbilang)
}

// Overpayment: a down payment above the grand total produces a negative
// jumlah that propagates untouched, with an empty terbilang.
func TestComputeTotals_NegativeFinalAmountPropagates(t *testing.T) {
	typ := feeType(t)
	rows := []calc.Row{{"harga": 1_150_000}} // row total 1,000,000
	tot := calc.ComputeTotals(typ, rows, decimal.NewFromInt(3_000_000), decimal.Zero)
	eq(t, -2_000_000, tot.FinalAmount)
	assert.Empty(t, tot.Terbilang)
}

func TestDefaultRow(t *testing.T) {
	typ := feeType(t)
	row := calc.DefaultRow(typ, 3)
	assert.Equal(t, 3, row["no"])
	assert.Equal(t, 0, row["harga"])
	assert.Equal(t, "", row["tujuan"])
	assert.Equal(t, "", row["tanggal"])
	assert.Len(t, row, len(typ.Columns))
}

func TestRenumber_AfterRemoval(t *testing.T) {
	typ := standardType(t)
	rows := []calc.Row{
		calc.DefaultRow(typ, 1),
		calc.DefaultRow(typ, 2),
		calc.DefaultRow(typ, 3),
	}
	// Remove the middle row; numbering must become 1,2 — not 1,3.
	rows = append(rows[:1], rows[2:]...)
	calc.Renumber(rows)
	assert.Equal(t, 1, rows[0]["no"])
	assert.Equal(t, 2, rows[1]["no"])
}
