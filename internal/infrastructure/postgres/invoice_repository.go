package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tml-logistik/invoice-api/internal/domain"
	"github.com/tml-logistik/invoice-api/internal/domain/entity"
	"github.com/tml-logistik/invoice-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass the pool or a tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	id, invoice_number, customer_name, invoice_type_id, invoice_type_name,
	bank_group, is_fee, invoice_date, period_start, period_end,
	total_amount, dp, tax_rate, tax_amount, grand_total, terbilang,
	status, created_at, updated_at`

// Create persists the invoice header. The UNIQUE constraint on
// invoice_number closes the race between concurrent sequencers: the loser
// gets ErrDuplicate and retries with a fresh number.
func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.InvoiceNumber, inv.CustomerName, inv.InvoiceTypeID, inv.InvoiceTypeName,
		inv.BankGroup, inv.IsFee, inv.InvoiceDate, inv.PeriodStart, inv.PeriodEnd,
		inv.TotalAmount, inv.DP, inv.TaxRate, inv.TaxAmount, inv.GrandTotal, inv.Terbilang,
		inv.Status, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persists one invoice row.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (
			id, invoice_id, row_number, item_date, consignee, vehicle_number,
			container_number, status, size, pickup_location, depo, smart_depo,
			emty, destination, price, gate_pass, lift_off, bongkar, perbaikan,
			parkir, demurrage, pmp, repair, ngemail, rsm, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.RowNumber, item.Date, item.Consignee, item.VehicleNumber,
		item.ContainerNumber, item.Status, item.Size, item.PickupLocation, item.Depo, item.SmartDepo,
		item.Emty, item.Destination, item.Price, item.GatePass, item.LiftOff, item.Bongkar, item.Perbaikan,
		item.Parkir, item.Demurrage, item.PMP, item.Repair, item.Ngemail, item.RSM, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// Update rewrites the full invoice header.
func (r *InvoiceRepo) Update(inv *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET invoice_number    = $2,
		    customer_name     = $3,
		    invoice_type_id   = $4,
		    invoice_type_name = $5,
		    bank_group        = $6,
		    is_fee            = $7,
		    invoice_date      = $8,
		    period_start      = $9,
		    period_end        = $10,
		    total_amount      = $11,
		    dp                = $12,
		    tax_rate          = $13,
		    tax_amount        = $14,
		    grand_total       = $15,
		    terbilang         = $16,
		    status            = $17,
		    updated_at        = $18
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.InvoiceNumber, inv.CustomerName, inv.InvoiceTypeID, inv.InvoiceTypeName,
		inv.BankGroup, inv.IsFee, inv.InvoiceDate, inv.PeriodStart, inv.PeriodEnd,
		inv.TotalAmount, inv.DP, inv.TaxRate, inv.TaxAmount, inv.GrandTotal, inv.Terbilang,
		inv.Status, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// DeleteItemsByInvoiceID removes every row of an invoice; used by the
// replace-wholesale update.
func (r *InvoiceRepo) DeleteItemsByInvoiceID(invoiceID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoice_items WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}
	return nil
}

// Delete removes the invoice; items go with it via ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// GetByID returns the invoice header, (nil, nil) when absent.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetItemsByInvoiceID returns the rows of an invoice in stored order.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, row_number, item_date, consignee, vehicle_number,
		       container_number, status, size, pickup_location, depo, smart_depo,
		       emty, destination, price, gate_pass, lift_off, bongkar, perbaikan,
		       parkir, demurrage, pmp, repair, ngemail, rsm, created_at
		FROM invoice_items WHERE invoice_id = $1 ORDER BY row_number`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(
			&it.ID, &it.InvoiceID, &it.RowNumber, &it.Date, &it.Consignee, &it.VehicleNumber,
			&it.ContainerNumber, &it.Status, &it.Size, &it.PickupLocation, &it.Depo, &it.SmartDepo,
			&it.Emty, &it.Destination, &it.Price, &it.GatePass, &it.LiftOff, &it.Bongkar, &it.Perbaikan,
			&it.Parkir, &it.Demurrage, &it.PMP, &it.Repair, &it.Ngemail, &it.RSM, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListWithItems pages the invoices newest first and attaches their rows.
func (r *InvoiceRepo) ListWithItems(limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices ORDER BY invoice_date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, inv := range list {
		items, err := r.GetItemsByInvoiceID(inv.ID)
		if err != nil {
			return nil, err
		}
		inv.Items = items
	}
	return list, nil
}

// ListNumbersByPrefix returns the invoice numbers starting with prefix; the
// sequencer derives the next number from them.
func (r *InvoiceRepo) ListNumbersByPrefix(prefix string) ([]string, error) {
	query := `SELECT invoice_number FROM invoices WHERE invoice_number LIKE $1 || '%'`
	rows, err := r.q.Query(context.Background(), query, prefix)
	if err != nil {
		return nil, fmt.Errorf("list invoice numbers: %w", err)
	}
	defer rows.Close()
	var numbers []string
	for rows.Next() {
		var num string
		if err := rows.Scan(&num); err != nil {
			return nil, fmt.Errorf("scan invoice number: %w", err)
		}
		numbers = append(numbers, num)
	}
	return numbers, rows.Err()
}

// MonthlyRecap aggregates count and grand total per month of a year.
func (r *InvoiceRepo) MonthlyRecap(year int) ([]repository.MonthlyRecap, error) {
	query := `
		SELECT EXTRACT(MONTH FROM invoice_date)::int AS month,
		       COUNT(*),
		       COALESCE(SUM(grand_total), 0)
		FROM invoices
		WHERE EXTRACT(YEAR FROM invoice_date)::int = $1
		GROUP BY month
		ORDER BY month`
	rows, err := r.q.Query(context.Background(), query, year)
	if err != nil {
		return nil, fmt.Errorf("monthly recap: %w", err)
	}
	defer rows.Close()
	var list []repository.MonthlyRecap
	for rows.Next() {
		rec := repository.MonthlyRecap{Year: year}
		if err := rows.Scan(&rec.Month, &rec.Count, &rec.Total); err != nil {
			return nil, fmt.Errorf("scan recap: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.CustomerName, &inv.InvoiceTypeID, &inv.InvoiceTypeName,
		&inv.BankGroup, &inv.IsFee, &inv.InvoiceDate, &inv.PeriodStart, &inv.PeriodEnd,
		&inv.TotalAmount, &inv.DP, &inv.TaxRate, &inv.TaxAmount, &inv.GrandTotal, &inv.Terbilang,
		&inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
