package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tml-logistik/invoice-api/internal/application/dto"
	"github.com/tml-logistik/invoice-api/internal/domain/catalog"
)

// CatalogHandler serves the read-only master data: invoice types, reference
// lists for the row editor and the price lookup.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

// Types returns all invoice types with their column schemas.
// GET /api/catalog/types
func (h *CatalogHandler) Types(c *fiber.Ctx) error {
	return c.JSON(catalog.Types())
}

// TypeByID returns one invoice type.
// GET /api/catalog/types/:id
func (h *CatalogHandler) TypeByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id harus berupa angka"})
	}
	typ, ok := catalog.TypeByID(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_TYPE", Message: "tipe invoice tidak dikenal"})
	}
	return c.JSON(typ)
}

// Reference returns the select-option lists for the row editor.
// GET /api/catalog/reference
func (h *CatalogHandler) Reference(c *fiber.Ctx) error {
	return c.JSON(dto.ReferenceDataResponse{
		ContainerStatuses: catalog.ContainerStatuses,
		ContainerSizes:    catalog.ContainerSizes,
		PickupLocations:   catalog.PickupLocations,
		Depos:             catalog.Depos,
		Destinations:      catalog.Destinations(),
	})
}

// Prices looks up the negotiated prices for a destination and container
// size. Exactly one candidate means the UI may auto-fill.
// GET /api/catalog/prices?location=BANDUNG&size=40
func (h *CatalogHandler) Prices(c *fiber.Ctx) error {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location wajib diisi"})
	}
	size := strings.TrimSpace(c.Query("size"))

	prices := catalog.LookupPrices(location, size)
	resp := dto.PriceLookupResponse{
		Location: location,
		Size:     size,
		Prices:   prices,
	}
	if len(prices) == 1 {
		resp.AutoFill = &prices[0]
	}
	return c.JSON(resp)
}
