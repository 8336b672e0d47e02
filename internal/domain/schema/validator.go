// Package schema derives the validation contract of an invoice row from the
// column schema of its invoice type. Validation is structural only —
// presence and type shape per column. Whether a tujuan matches a known
// destination or a price lookup succeeded is a UI convenience, not an
// integrity rule, and is not checked here.
package schema

import (
	"fmt"
	"strings"

	"github.com/tml-logistik/invoice-api/internal/domain/calc"
	"github.com/tml-logistik/invoice-api/internal/domain/catalog"
)

// FieldError is one per-field validation failure. Errors are collected and
// reported together; validation never aborts the rest of the row.
type FieldError struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

// ValidateRow checks one row against the column schema of its type.
// An empty result means the row is acceptable.
//
// Rules per column:
//   - required text/select/date: non-empty string
//   - required number: present and >= 1 (the row number)
//   - required currency: present and non-negative
//   - optional columns may be absent; absence is not an error
func ValidateRow(t catalog.InvoiceType, row calc.Row) []FieldError {
	var errs []FieldError
	for _, col := range t.Columns {
		if !col.Required {
			continue
		}
		v, present := row[col.Key]
		switch col.Type {
		case catalog.ColumnNumber:
			if !present || calc.Amount(v).IntPart() < 1 {
				errs = append(errs, FieldError{col.Key, col.Label, col.Label + " wajib diisi"})
			}
		case catalog.ColumnCurrency:
			if !present {
				errs = append(errs, FieldError{col.Key, col.Label, col.Label + " wajib diisi"})
			} else if calc.Amount(v).IsNegative() {
				errs = append(errs, FieldError{col.Key, col.Label, col.Label + " tidak boleh negatif"})
			}
		default: // text, date, select
			s, _ := v.(string)
			if !present || strings.TrimSpace(s) == "" {
				errs = append(errs, FieldError{col.Key, col.Label, col.Label + " wajib diisi"})
			}
		}
	}
	return errs
}

// ValidateRows validates every row and prefixes each failure with its
// 1-based position.
func ValidateRows(t catalog.InvoiceType, rows []calc.Row) []FieldError {
	var errs []FieldError
	for i, row := range rows {
		for _, fe := range ValidateRow(t, row) {
			fe.Message = fmt.Sprintf("baris %d: %s", i+1, fe.Message)
			errs = append(errs, fe)
		}
	}
	return errs
}

// NormalizeRow fills the defaults for absent optional columns ('' for
// text-like, 0 for numeric-like) and drops keys the schema does not know,
// so persisted rows always have the exact shape of their type.
func NormalizeRow(t catalog.InvoiceType, row calc.Row) calc.Row {
	out := make(calc.Row, len(t.Columns))
	for _, col := range t.Columns {
		v, present := row[col.Key]
		if !present {
			if col.Type == catalog.ColumnCurrency || col.Type == catalog.ColumnNumber {
				out[col.Key] = 0
			} else {
				out[col.Key] = ""
			}
			continue
		}
		out[col.Key] = v
	}
	return out
}
