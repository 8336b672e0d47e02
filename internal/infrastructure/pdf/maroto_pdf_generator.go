// Package pdf renders the printable invoice with Maroto v2.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: PT Tunggal Mandiri Logistik │ No. Invoice + Tanggal │
//	│  ───────────────────────────────────────────────────────────│
//	│  Kepada Yth. <customer>  ·  Periode (when set)               │
//	│  ───────────────────────────────────────────────────────────│
//	│  TABEL: NO | TANGGAL | CONSIGNE/MOBIL | RINCIAN | TOTAL      │
//	│  ───────────────────────────────────────────────────────────│
//	│  TOTAL / DP / PPN / JUMLAH  +  terbilang                     │
//	│  REKENING (per bank group)  +  tanda tangan                  │
//	└─────────────────────────────────────────────────────────────┘
//
// The schema of an invoice type can carry up to sixteen columns, far more
// than the 12-unit grid fits, so the currency columns are folded into one
// RINCIAN BIAYA cell per row and the row total is recomputed for the last
// column.
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tml-logistik/invoice-api/internal/application/invoicing"
	"github.com/tml-logistik/invoice-api/internal/domain/calc"
	"github.com/tml-logistik/invoice-api/internal/domain/catalog"
	"github.com/tml-logistik/invoice-api/internal/domain/entity"
)

const companyName = "PT TUNGGAL MANDIRI LOGISTIK"

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// idPrinter formats whole Rupiah with Indonesian digit grouping (1.750.000).
var idPrinter = message.NewPrinter(language.Indonesian)

var _ invoicing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implements invoicing.InvoicePDFGenerator.
type MarotoPDFGenerator struct{}

func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the invoice and returns its bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, doc *invoicing.InvoiceDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+doc.Invoice.InvoiceNumber, true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc.Invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(doc.Invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(doc.Type, doc.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(doc.Invoice)...)
	m.AddRows(terbilangRow(doc.Invoice))
	m.AddRows(line.NewRow(2))
	m.AddRows(bankAndSignatureRow(doc.Bank))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return out.GetBytes(), nil
}

// headerRow: company identity left, invoice number and date right.
func headerRow(inv *entity.Invoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Jasa Angkutan & Logistik", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(inv.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Tanggal: "+inv.InvoiceDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: addressee plus the billing period when one was set.
func customerRow(inv *entity.Invoice) core.Row {
	period := ""
	if inv.PeriodStart != nil && inv.PeriodEnd != nil {
		period = fmt.Sprintf("Periode: %s s/d %s",
			inv.PeriodStart.Format("02/01/2006"), inv.PeriodEnd.Format("02/01/2006"))
	}
	cols := col.New(12).Add(
		text.New("Kepada Yth.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		text.New(inv.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
	)
	if period != "" {
		cols.Add(text.New(period, props.Text{Size: 8, Top: 12, Color: colorGray}))
	}
	return row.New(16).Add(cols)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("NO", 1, align.Center),
		h("TANGGAL", 2, align.Left),
		h("CONSIGNE / NO. MOBIL", 3, align.Left),
		h("RINCIAN BIAYA", 4, align.Left),
		h("TOTAL", 2, align.Right),
	)
}

// tableRows: one grid row per invoice row. The left cells carry the
// descriptive columns, the RINCIAN cell folds the nonzero currency columns
// (with the FEE discount shown where it applies) and TOTAL repeats the
// computed row total.
func tableRows(t catalog.InvoiceType, rows []calc.Row) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		consigne := str(r["consigne"])
		if mobil := str(r["noMobil"]); mobil != "" {
			consigne += "\n" + mobil
		}
		result = append(result, row.New(10).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", int(calc.Amount(r["no"]).IntPart())),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				str(r["tanggal"]),
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				consigne,
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				rincianBiaya(t, r),
				props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				"Rp "+formatMoney(calc.RowTotal(t, r)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// rincianBiaya builds the per-row cost breakdown: destination first, then
// every nonzero currency column by its schema label.
func rincianBiaya(t catalog.InvoiceType, r calc.Row) string {
	var parts []string
	if tujuan := str(r["tujuan"]); tujuan != "" {
		parts = append(parts, "TUJUAN "+tujuan)
	}
	for _, key := range t.CurrencyKeys() {
		v := calc.Amount(r[key])
		if v.IsZero() {
			continue
		}
		colDef, _ := t.Column(key)
		label := fmt.Sprintf("%s %s", colDef.Label, formatMoney(v))
		if t.IsFee && key == t.DiscountKey {
			label += fmt.Sprintf(" (potongan %s)", formatMoney(decimal.NewFromInt(t.DiscountAmount)))
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " | ")
}

// totalsRows: TOTAL, then DP and PPN only when they apply, then JUMLAH.
func totalsRows(inv *entity.Invoice) []core.Row {
	amountRow := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		color := &props.Color{}
		size := 9.0
		if bold {
			style = fontstyle.Bold
			color = colorPrimary
			size = 10
		}
		return row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: size, Align: align.Right, Right: 2, Color: color,
			})),
			col.New(3).Add(text.New(value, props.Text{
				Style: style, Size: size, Align: align.Right, Right: 1, Color: color,
			})),
		)
	}

	rows := []core.Row{
		amountRow("TOTAL:", "Rp "+formatMoney(inv.TotalAmount), false),
	}
	if inv.IsFee && !inv.DP.IsZero() {
		rows = append(rows, amountRow("DP:", "Rp "+formatMoney(inv.DP), false))
	}
	if inv.TaxRate.IsPositive() {
		label := fmt.Sprintf("PPN %s%%:", inv.TaxRate.String())
		rows = append(rows, amountRow(label, "Rp "+formatMoney(inv.TaxAmount), false))
	}
	rows = append(rows, amountRow("JUMLAH:", "Rp "+formatMoney(inv.GrandTotal), true))
	return rows
}

func terbilangRow(inv *entity.Invoice) core.Row {
	if inv.Terbilang == "" {
		return row.New(2)
	}
	return row.New(8).Add(col.New(12).Add(
		text.New("Terbilang: "+inv.Terbilang, props.Text{
			Style: fontstyle.BoldItalic, Size: 8, Top: 2, Color: colorGray,
		}),
	))
}

// bankAndSignatureRow: transfer account of the bank group left, signature
// block right.
func bankAndSignatureRow(bank catalog.BankAccount) core.Row {
	return row.New(30).Add(
		col.New(7).Add(
			text.New("Pembayaran ditransfer ke:", props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(bank.BankName, props.Text{Style: fontstyle.Bold, Size: 9, Top: 6}),
			text.New("No. Rek: "+bank.AccountNumber, props.Text{Size: 9, Top: 11}),
			text.New("a/n "+bank.AccountHolder, props.Text{Size: 9, Top: 16}),
		),
		col.New(5).Add(
			text.New("Hormat kami,", props.Text{Size: 9, Align: align.Center, Top: 1}),
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 24, Color: colorPrimary,
			}),
		),
	)
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func formatMoney(d decimal.Decimal) string {
	return idPrinter.Sprintf("%d", d.Round(0).IntPart())
}
