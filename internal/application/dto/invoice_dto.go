package dto

import (
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body for POST /api/invoices. Rows are dynamic maps
// keyed by the column schema of the invoice type; the engine validates them
// against that schema, not against struct tags.
type CreateInvoiceRequest struct {
	InvoiceTypeID int              `json:"invoice_type_id" validate:"required,min=1"`
	InvoiceNumber string           `json:"invoice_number,omitempty"` // empty = auto-sequence
	InvoiceDate   string           `json:"invoice_date" validate:"required,datetime=2006-01-02"`
	PeriodStart   string           `json:"period_start,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PeriodEnd     string           `json:"period_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Rows          []map[string]any `json:"rows" validate:"required,min=1"`
	DP            decimal.Decimal  `json:"dp"`
	TaxRate       decimal.Decimal  `json:"tax_rate"`
}

// UpdateInvoiceRequest body for PUT /api/invoices/:id. Items are replaced
// wholesale with Rows; there is no partial row update.
type UpdateInvoiceRequest struct {
	InvoiceTypeID int              `json:"invoice_type_id" validate:"required,min=1"`
	InvoiceNumber string           `json:"invoice_number" validate:"required"`
	InvoiceDate   string           `json:"invoice_date" validate:"required,datetime=2006-01-02"`
	PeriodStart   string           `json:"period_start,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PeriodEnd     string           `json:"period_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Rows          []map[string]any `json:"rows" validate:"required,min=1"`
	DP            decimal.Decimal  `json:"dp"`
	TaxRate       decimal.Decimal  `json:"tax_rate"`
	Status        string           `json:"status,omitempty" validate:"omitempty,oneof=DRAFT FINAL PAID"`
}

// InvoiceResponse invoice with rows for GET /api/invoices/:id.
type InvoiceResponse struct {
	ID              string           `json:"id"`
	InvoiceNumber   string           `json:"invoice_number"`
	NumberFallback  bool             `json:"number_fallback,omitempty"` // sequencing degraded, number is a placeholder
	CustomerName    string           `json:"customer_name"`
	InvoiceTypeID   int              `json:"invoice_type_id"`
	InvoiceTypeName string           `json:"invoice_type_name"`
	BankGroup       string           `json:"bank_group"`
	IsFee           bool             `json:"is_fee"`
	InvoiceDate     string           `json:"invoice_date"`
	PeriodStart     string           `json:"period_start,omitempty"`
	PeriodEnd       string           `json:"period_end,omitempty"`
	Rows            []map[string]any `json:"rows"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	DP              decimal.Decimal  `json:"dp"`
	TaxRate         decimal.Decimal  `json:"tax_rate"`
	TaxAmount       decimal.Decimal  `json:"tax_amount"`
	GrandTotal      decimal.Decimal  `json:"grand_total"`
	Terbilang       string           `json:"terbilang"`
	Status          string           `json:"status"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
}

// NextNumberResponse preview for GET /api/invoices/number/next.
type NextNumberResponse struct {
	InvoiceNumber string `json:"invoice_number"`
	Fallback      bool   `json:"fallback"` // true when the recap scan failed and a placeholder was issued
}

// MonthlyRecapResponse one month of the recap summary.
type MonthlyRecapResponse struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}
