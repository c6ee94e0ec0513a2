package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	StockUC    *usecase.StockUseCase
	ReportUC   *usecase.ReportUseCase
	RecordSale *sales.RecordSaleUseCase
	SaleQuery  *sales.SaleQueryUseCase
}

// Router registra las rutas de la API.
// Las rutas /total se registran antes que las rutas con parámetro para que
// Fiber no las capture como :id o :code.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	reportHandler := NewReportHandler(deps.ReportUC)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/total", reportHandler.TotalProducts)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock entries
	stock := api.Group("/stock-entries")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Post("/", stockHandler.Create)
	stock.Get("/", stockHandler.List)
	stock.Put("/:id", stockHandler.Update)
	stock.Delete("/:id", stockHandler.Delete)

	// Totalizador de stock global
	api.Get("/stock/total", reportHandler.TotalStock)

	// Sales
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.RecordSale, deps.SaleQuery)
	salesGroup.Get("/total", reportHandler.TotalSalesValue)
	salesGroup.Post("/", saleHandler.Record)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:code", saleHandler.GetByCode)
	salesGroup.Delete("/:id", saleHandler.Delete)
}
