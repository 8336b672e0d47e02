package invoicing

import (
	"time"

	"github.com/google/uuid"

	"github.com/tml-logistik/invoice-api/internal/domain/calc"
	"github.com/tml-logistik/invoice-api/internal/domain/catalog"
	"github.com/tml-logistik/invoice-api/internal/domain/entity"
)

// toRows converts the raw request rows into calc rows.
func toRows(in []map[string]any) []calc.Row {
	rows := make([]calc.Row, len(in))
	for i, m := range in {
		rows[i] = calc.Row(m)
	}
	return rows
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

// itemFromRow flattens one schema row into the persisted item. Column keys
// the type does not use stay at their zero value.
func itemFromRow(invoiceID string, row calc.Row, now time.Time) *entity.InvoiceItem {
	return &entity.InvoiceItem{
		ID:              uuid.New().String(),
		InvoiceID:       invoiceID,
		RowNumber:       int(calc.Amount(row["no"]).IntPart()),
		Date:            str(row["tanggal"]),
		Consignee:       str(row["consigne"]),
		VehicleNumber:   str(row["noMobil"]),
		ContainerNumber: str(row["noContainer"]),
		Status:          str(row["status"]),
		Size:            str(row["size"]),
		PickupLocation:  str(row["pickup"]),
		Depo:            str(row["depo"]),
		SmartDepo:       str(row["smartDepo"]),
		Emty:            str(row["emty"]),
		Destination:     str(row["tujuan"]),
		Price:           calc.Amount(row["harga"]),
		GatePass:        calc.Amount(row["gatePass"]),
		LiftOff:         calc.Amount(row["liftOff"]),
		Bongkar:         calc.Amount(row["bongkar"]),
		Perbaikan:       calc.Amount(row["perbaikan"]),
		Parkir:          calc.Amount(row["parkir"]),
		Demurrage:       calc.Amount(row["demurrage"]),
		PMP:             calc.Amount(row["pmp"]),
		Repair:          calc.Amount(row["repair"]),
		Ngemail:         calc.Amount(row["ngemail"]),
		RSM:             calc.Amount(row["rsm"]),
		CreatedAt:       now,
	}
}

// rowFromItem rebuilds a schema row from the flattened item, emitting only
// the columns the invoice type actually has.
func rowFromItem(t catalog.InvoiceType, item *entity.InvoiceItem) calc.Row {
	full := calc.Row{
		"no":          item.RowNumber,
		"tanggal":     item.Date,
		"consigne":    item.Consignee,
		"noMobil":     item.VehicleNumber,
		"noContainer": item.ContainerNumber,
		"status":      item.Status,
		"size":        item.Size,
		"pickup":      item.PickupLocation,
		"depo":        item.Depo,
		"smartDepo":   item.SmartDepo,
		"emty":        item.Emty,
		"tujuan":      item.Destination,
		"harga":       item.Price,
		"gatePass":    item.GatePass,
		"liftOff":     item.LiftOff,
		"bongkar":     item.Bongkar,
		"perbaikan":   item.Perbaikan,
		"parkir":      item.Parkir,
		"demurrage":   item.Demurrage,
		"pmp":         item.PMP,
		"repair":      item.Repair,
		"ngemail":     item.Ngemail,
		"rsm":         item.RSM,
	}
	row := make(calc.Row, len(t.Columns))
	for _, col := range t.Columns {
		row[col.Key] = full[col.Key]
	}
	return row
}

// rowsFromItems maps persisted items back to editable rows in stored order.
func rowsFromItems(t catalog.InvoiceType, items []*entity.InvoiceItem) []calc.Row {
	rows := make([]calc.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, rowFromItem(t, item))
	}
	return rows
}
