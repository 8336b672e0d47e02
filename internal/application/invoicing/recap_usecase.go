package invoicing

import (
	"context"
	"time"

	"github.com/tml-logistik/invoice-api/internal/application/dto"
	"github.com/tml-logistik/invoice-api/internal/domain/repository"
)

// RecapUseCase serves the recap dashboard: per-month counts and totals over
// the stored invoices.
type RecapUseCase struct {
	invoiceRepo repository.InvoiceRepository
}

func NewRecapUseCase(invoiceRepo repository.InvoiceRepository) *RecapUseCase {
	return &RecapUseCase{invoiceRepo: invoiceRepo}
}

// MonthlySummary aggregates the invoices of a year by month. year <= 0 means
// the current year. Months without invoices are omitted.
func (uc *RecapUseCase) MonthlySummary(ctx context.Context, year int) ([]dto.MonthlyRecapResponse, error) {
	if year <= 0 {
		year = time.Now().Year()
	}
	recaps, err := uc.invoiceRepo.MonthlyRecap(year)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlyRecapResponse, 0, len(recaps))
	for _, r := range recaps {
		out = append(out, dto.MonthlyRecapResponse{
			Year:  r.Year,
			Month: r.Month,
			Count: r.Count,
			Total: r.Total,
		})
	}
	return out, nil
}
