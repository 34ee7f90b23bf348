package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mialmacen/pos-api/internal/application/usecase"
	"github.com/mialmacen/pos-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CustomerUC *usecase.CustomerUseCase
	CartUC     *usecase.CartUseCase
	SaleUC     *usecase.SaleUseCase
	ReportUC   *usecase.ReportUseCase
	SettingsUC *usecase.SettingsUseCase
	BackupUC   *usecase.BackupUseCase
	PDF        *pdf.Generator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Catálogo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/stock", productHandler.AdjustStock)
	products.Delete("/:id", productHandler.Delete)

	// Clientes
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/sales", customerHandler.History)

	// Carrito
	cart := api.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.Get)
	cart.Post("/items", cartHandler.AddItem)
	cart.Put("/items/:id", cartHandler.SetQuantity)
	cart.Delete("/items/:id", cartHandler.RemoveItem)

	// Ventas
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReportUC, deps.SettingsUC, deps.PDF)
	sales.Post("/", saleHandler.Commit)
	sales.Post("/quick", saleHandler.Quick)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/ticket", saleHandler.Ticket)

	// Reportes y exportaciones
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.PDF)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/export.csv", reportHandler.ExportCSV)
	reports.Get("/export.xls", reportHandler.ExportXLS)
	reports.Get("/export.xlsx", reportHandler.ExportXLSX)
	reports.Get("/export.pdf", reportHandler.ExportPDF)

	// Configuración
	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
	settings.Post("/cajeros", settingsHandler.AddCashier)

	// Backup
	backup := api.Group("/backup")
	backupHandler := NewBackupHandler(deps.BackupUC)
	backup.Get("/", backupHandler.Export)
	backup.Post("/", backupHandler.Import)
	backup.Post("/reset", backupHandler.Reset)
}
