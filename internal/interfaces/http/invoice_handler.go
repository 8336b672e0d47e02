package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tml-logistik/invoice-api/internal/application/dto"
	"github.com/tml-logistik/invoice-api/internal/application/invoicing"
	"github.com/tml-logistik/invoice-api/internal/domain"
)

// InvoiceHandler handles the invoice lifecycle endpoints (protected).
type InvoiceHandler struct {
	uc    *invoicing.InvoiceUseCase
	pdfUC *invoicing.PDFUseCase
}

func NewInvoiceHandler(uc *invoicing.InvoiceUseCase, pdfUC *invoicing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// Create validates and persists a new invoice.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.uc.CreateInvoice(c.Context(), in)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update replaces the invoice header and rows.
// PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id wajib diisi"})
	}
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	resp, err := h.uc.UpdateInvoice(c.Context(), id, in)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(resp)
}

// GetByID returns one invoice with its rows.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id wajib diisi"})
	}
	resp, err := h.uc.GetInvoice(c.Context(), id)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(resp)
}

// List pages the invoices, newest first.
// GET /api/invoices?limit=&offset=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query tidak valid"})
	}
	resp, err := h.uc.ListInvoices(c.Context(), page)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(resp)
}

// Delete removes an invoice and its rows.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id wajib diisi"})
	}
	if err := h.uc.DeleteInvoice(c.Context(), id); err != nil {
		return invoiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// NextNumber previews the invoice number for a date (today by default).
// GET /api/invoices/number/next?date=2026-09-01
func (h *InvoiceHandler) NextNumber(c *fiber.Ctx) error {
	at := time.Now()
	if s := c.Query("date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date harus berformat YYYY-MM-DD"})
		}
		at = parsed
	}
	return c.JSON(h.uc.NextNumber(c.Context(), at))
}

// DownloadPDF streams the rendered invoice.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id wajib diisi"})
	}
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), id)
	if err != nil {
		return invoiceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// invoiceError maps usecase errors to HTTP statuses. Row validation failures
// carry the per-field messages so the form can highlight them.
func invoiceError(c *fiber.Ctx, err error) error {
	var rve *invoicing.RowValidationError
	if errors.As(err, &rve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "ROW_VALIDATION", Message: "baris invoice tidak valid", Fields: rve.Fields,
		})
	}
	switch {
	case errors.Is(err, domain.ErrUnknownInvoiceType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_TYPE", Message: "tipe invoice tidak dikenal"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice tidak ditemukan"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NUMBER", Message: "nomor invoice sudah dipakai"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
