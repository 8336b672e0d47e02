// Package http wires the Fiber routes to the application usecases.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tml-logistik/invoice-api/internal/application/auth"
	"github.com/tml-logistik/invoice-api/internal/application/invoicing"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	InvoiceUC  *invoicing.InvoiceUseCase
	InvoicePDF *invoicing.PDFUseCase
	RecapUC    *invoicing.RecapUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catalog (read-only master data)
	catalogGroup := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler()
	catalogGroup.Get("/types", catalogHandler.Types)
	catalogGroup.Get("/types/:id", catalogHandler.TypeByID)
	catalogGroup.Get("/reference", catalogHandler.Reference)
	catalogGroup.Get("/prices", catalogHandler.Prices)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/number/next", invoiceHandler.NextNumber)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", RequireRole("admin"), invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Recap
	recapGroup := protected.Group("/recap")
	recapHandler := NewRecapHandler(deps.RecapUC)
	recapGroup.Get("/monthly", recapHandler.Monthly)
}
