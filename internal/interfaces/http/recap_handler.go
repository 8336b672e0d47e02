package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tml-logistik/invoice-api/internal/application/dto"
	"github.com/tml-logistik/invoice-api/internal/application/invoicing"
)

// RecapHandler serves the recap dashboard.
type RecapHandler struct {
	uc *invoicing.RecapUseCase
}

func NewRecapHandler(uc *invoicing.RecapUseCase) *RecapHandler {
	return &RecapHandler{uc: uc}
}

// Monthly aggregates invoices per month of a year (current year by default).
// GET /api/recap/monthly?year=2026
func (h *RecapHandler) Monthly(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	months, err := h.uc.MonthlySummary(c.Context(), year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(months)
}
