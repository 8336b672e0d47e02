package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tml-logistik/invoice-api/internal/domain/calc"
	"github.com/tml-logistik/invoice-api/internal/domain/catalog"
	"github.com/tml-logistik/invoice-api/internal/domain/schema"
)

func obType(t *testing.T) catalog.InvoiceType {
	t.Helper()
	typ, ok := catalog.TypeByID(3) // OB - Bpk Dwi: base + pickup + tujuan + harga
	require.True(t, ok)
	return typ
}

func validRow(t *testing.T) calc.Row {
	t.Helper()
	return calc.Row{
		"no":       1,
		"tanggal":  "2026-09-01",
		"consigne": "PT MAJU JAYA",
		"noMobil":  "B 9213 UYT",
		"tujuan":   "BEKASI",
		"harga":    1_600_000,
	}
}

func TestValidateRow_OK(t *testing.T) {
	assert.Empty(t, schema.ValidateRow(obType(t), validRow(t)))
}

func TestValidateRow_RequiredTextMissing(t *testing.T) {
	row := validRow(t)
	delete(row, "consigne")
	errs := schema.ValidateRow(obType(t), row)
	require.Len(t, errs, 1)
	assert.Equal(t, "consigne", errs[0].Key)
	assert.Contains(t, errs[0].Message, "wajib diisi")
}

func TestValidateRow_BlankStringIsMissing(t *testing.T) {
	row := validRow(t)
	row["tujuan"] = "   "
	errs := schema.ValidateRow(obType(t), row)
	require.Len(t, errs, 1)
	assert.Equal(t, "tujuan", errs[0].Key)
}

func TestValidateRow_NegativeCurrencyRejected(t *testing.T) {
	row := validRow(t)
	row["harga"] = -1
	errs := schema.ValidateRow(obType(t), row)
	require.Len(t, errs, 1)
	assert.Equal(t, "harga", errs[0].Key)
	assert.Contains(t, errs[0].Message, "tidak boleh negatif")
}

func TestValidateRow_ZeroCurrencyAllowed(t *testing.T) {
	row := validRow(t)
	row["harga"] = 0
	assert.Empty(t, schema.ValidateRow(obType(t), row))
}

func TestValidateRow_RowNumberRequired(t *testing.T) {
	row := validRow(t)
	row["no"] = 0
	errs := schema.ValidateRow(obType(t), row)
	require.Len(t, errs, 1)
	assert.Equal(t, "no", errs[0].Key)
}

// Optional columns may be absent without producing errors.
func TestValidateRow_OptionalAbsentIsFine(t *testing.T) {
	row := validRow(t)
	delete(row, "noContainer")
	delete(row, "status")
	delete(row, "size")
	delete(row, "pickup")
	assert.Empty(t, schema.ValidateRow(obType(t), row))
}

func TestValidateRow_CollectsAllErrors(t *testing.T) {
	typ := obType(t)
	errs := schema.ValidateRow(typ, calc.Row{})
	// no, tanggal, consigne, noMobil, tujuan, harga are required.
	assert.Len(t, errs, 6)
}

func TestValidateRows_PrefixesRowPosition(t *testing.T) {
	typ := obType(t)
	rows := []calc.Row{validRow(t), {}}
	errs := schema.ValidateRows(typ, rows)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "baris 2:")
}

func TestNormalizeRow_DefaultsAndUnknownKeys(t *testing.T) {
	typ := obType(t)
	row := calc.Row{"tujuan": "BANDUNG", "bogus": 42}
	out := schema.NormalizeRow(typ, row)

	assert.Equal(t, "BANDUNG", out["tujuan"])
	assert.Equal(t, 0, out["harga"])
	assert.Equal(t, "", out["consigne"])
	assert.NotContains(t, out, "bogus")
	assert.Len(t, out, len(typ.Columns))
}
