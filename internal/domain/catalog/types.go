// Package catalog holds the master data of the invoicing tool: the sixteen
// invoice types with their column schemas, the bank accounts per group and
// the negotiated price list per destination. This is reference data, changed
// only by redeploying — there are no mutation operations.
package catalog

// ColumnType is the semantic type of a column in an invoice type schema.
// It drives form rendering, row validation and the PDF layout.
type ColumnType string

const (
	ColumnText     ColumnType = "text"
	ColumnNumber   ColumnType = "number"
	ColumnDate     ColumnType = "date"
	ColumnSelect   ColumnType = "select"
	ColumnCurrency ColumnType = "currency"
)

// ColumnDef describes one column of an invoice type. Keys are unique within
// a type; the slice order is the display and PDF column order.
type ColumnDef struct {
	Key      string     `json:"key"`
	Label    string     `json:"label"`
	Type     ColumnType `json:"type"`
	Options  []string   `json:"options,omitempty"` // required when Type is select
	Width    string     `json:"width,omitempty"`   // presentation hint only
	Required bool       `json:"required,omitempty"`
}

// BankGroup selects which bank account is printed on the PDF.
type BankGroup string

const (
	GrupA BankGroup = "A" // rekening Heri Purwanto
	GrupB BankGroup = "B" // rekening Ristummiyati
)

// BankAccount is the transfer destination printed on the invoice footer.
type BankAccount struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
}

// InvoiceType is one of the sixteen predefined invoice configurations.
// FEE types apply a per-row discount on the column named by DiscountKey and
// support a down payment subtracted from the total.
type InvoiceType struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	CustomerName   string      `json:"customer_name"`
	BankGroup      BankGroup   `json:"bank_group"`
	IsFee          bool        `json:"is_fee"`
	DiscountKey    string      `json:"discount_key,omitempty"`
	DiscountAmount int64       `json:"discount_amount,omitempty"`
	Columns        []ColumnDef `json:"columns"`
}

// Column returns the definition for key, ok=false when the type has no such
// column.
func (t InvoiceType) Column(key string) (ColumnDef, bool) {
	for _, c := range t.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return ColumnDef{}, false
}

// CurrencyKeys lists the keys of all currency columns in schema order.
func (t InvoiceType) CurrencyKeys() []string {
	var keys []string
	for _, c := range t.Columns {
		if c.Type == ColumnCurrency {
			keys = append(keys, c.Key)
		}
	}
	return keys
}
