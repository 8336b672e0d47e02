// Package calc implements the invoice arithmetic: per-row totals with the
// FEE discount, grand totals, down payment, tax and the terbilang text.
// Everything here is pure computation over in-memory values — no I/O, safe
// to call concurrently.
package calc

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/tml-logistik/invoice-api/internal/domain/catalog"
)

// Row is one invoice line: column key -> value. Values arrive from JSON, so
// numbers may show up as float64, json.Number or even strings; Amount
// coerces them all, and anything unusable counts as zero.
type Row map[string]any

// DefaultRow builds an empty row for an invoice type: the row number set to
// n, currency/number columns zeroed, everything else blank.
func DefaultRow(t catalog.InvoiceType, n int) Row {
	row := make(Row, len(t.Columns))
	for _, col := range t.Columns {
		switch {
		case col.Key == "no":
			row[col.Key] = n
		case col.Type == catalog.ColumnCurrency || col.Type == catalog.ColumnNumber:
			row[col.Key] = 0
		default:
			row[col.Key] = ""
		}
	}
	return row
}

// Renumber rewrites the no column so rows stay 1-based and sequential after
// an insert, removal or reorder.
func Renumber(rows []Row) {
	for i, row := range rows {
		if row == nil {
			continue
		}
		row["no"] = i + 1
	}
}

// Amount coerces a row value to a decimal amount. Missing, malformed or
// non-numeric values are zero — the calculators never fail on user input.
func Amount(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		if n == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
