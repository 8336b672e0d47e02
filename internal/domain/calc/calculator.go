package calc

import (
	"github.com/shopspring/decimal"

	"github.com/tml-logistik/invoice-api/internal/domain/catalog"
	"github.com/tml-logistik/invoice-api/pkg/terbilang"
)

// Totals is the computed footer of an invoice. FinalAmount (the "jumlah") may
// go negative when the down payment exceeds the total — that is a legitimate
// overpayment signal, not an error, and is never clamped here.
type Totals struct {
	GrandTotal  decimal.Decimal
	DownPayment decimal.Decimal
	TaxRate     decimal.Decimal
	TaxAmount   decimal.Decimal
	FinalAmount decimal.Decimal
	Terbilang   string
}

// RowTotal sums the currency columns of one row. For FEE types the
// discount-eligible column contributes max(0, value - discount); all other
// currency columns are summed at face value.
func RowTotal(t catalog.InvoiceType, row Row) decimal.Decimal {
	total := decimal.Zero
	for _, key := range t.CurrencyKeys() {
		v := Amount(row[key])
		if t.IsFee && key == t.DiscountKey {
			v = v.Sub(decimal.NewFromInt(t.DiscountAmount))
			if v.IsNegative() {
				v = decimal.Zero
			}
		}
		total = total.Add(v)
	}
	return total
}

// GrandTotal sums RowTotal over all rows.
func GrandTotal(t catalog.InvoiceType, rows []Row) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(RowTotal(t, row))
	}
	return total
}

// ComputeTotals derives the invoice footer.
//
// The down payment only applies under FEE semantics: for standard types a
// nonzero dp from the caller is ignored entirely. Tax is applied on the
// DP-adjusted base for FEE types and rounded half away from zero to whole
// Rupiah (Round on a positive base behaves like the half-up rounding of the
// legacy tool). A zero or negative taxRate means no tax line.
func ComputeTotals(t catalog.InvoiceType, rows []Row, dp, taxRate decimal.Decimal) Totals {
	grand := GrandTotal(t, rows)

	if !t.IsFee {
		dp = decimal.Zero
	}
	base := grand.Sub(dp)

	tax := decimal.Zero
	if taxRate.IsPositive() {
		tax = base.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(0)
	}

	final := base.Add(tax)

	words := ""
	if final.IsPositive() {
		words = terbilang.RupiahCapitalized(final.IntPart())
	}

	return Totals{
		GrandTotal:  grand,
		DownPayment: dp,
		TaxRate:     taxRate,
		TaxAmount:   tax,
		FinalAmount: final,
		Terbilang:   words,
	}
}
