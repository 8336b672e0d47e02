package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice lifecycle statuses.
const (
	StatusDraft = "DRAFT" // created on submit, number reserved
	StatusFinal = "FINAL" // printed / sent to the customer
	StatusPaid  = "PAID"  // payment received
)

// Invoice is the persisted header of an invoice. All computed money fields
// (TotalAmount..GrandTotal, Terbilang) are produced by the calc engine from
// the same items — the store never derives them itself.
type Invoice struct {
	ID              string
	InvoiceNumber   string // globally unique, TML/<year>/<roman month>/<seq>
	CustomerName    string
	InvoiceTypeID   int
	InvoiceTypeName string
	BankGroup       string // "A" or "B"
	IsFee           bool
	InvoiceDate     time.Time
	PeriodStart     *time.Time
	PeriodEnd       *time.Time
	TotalAmount     decimal.Decimal // grand total over the rows
	DP              decimal.Decimal // down payment, FEE types only
	TaxRate         decimal.Decimal // flat percentage, zero = no tax line
	TaxAmount       decimal.Decimal
	GrandTotal      decimal.Decimal // the jumlah: (total - dp) + tax
	Terbilang       string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []*InvoiceItem
}

// InvoiceItem is one row of an invoice, column values flattened into fixed
// fields. RowNumber preserves the original order; items are always replaced
// wholesale on update, never diffed.
type InvoiceItem struct {
	ID              string
	InvoiceID       string
	RowNumber       int
	Date            string // tanggal as entered (yyyy-mm-dd)
	Consignee       string
	VehicleNumber   string // noMobil
	ContainerNumber string
	Status          string
	Size            string
	PickupLocation  string
	Depo            string
	SmartDepo       string
	Emty            string
	Destination     string // tujuan
	Price           decimal.Decimal
	GatePass        decimal.Decimal
	LiftOff         decimal.Decimal
	Bongkar         decimal.Decimal
	Perbaikan       decimal.Decimal
	Parkir          decimal.Decimal
	Demurrage       decimal.Decimal
	PMP             decimal.Decimal
	Repair          decimal.Decimal
	Ngemail         decimal.Decimal
	RSM             decimal.Decimal
	CreatedAt       time.Time
}
