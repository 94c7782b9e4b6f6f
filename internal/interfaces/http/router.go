package http

import (
	"github.com/gofiber/fiber/v2"

	appretaceo "github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/retaceo"
	"github.com/kyxent-Immortal-Dev/Transactions-comercials-sub000/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ExpenseUC       *usecase.ExpenseUseCase
	ProductUC       *usecase.ProductUseCase
	PurchaseUC      *usecase.PurchaseUseCase
	CalculateUC     *appretaceo.CalculateUseCase
	LifecycleUC     *appretaceo.LifecycleUseCase
	PriceAnalysisUC *appretaceo.PriceAnalysisUseCase
	PDFUC           *appretaceo.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Compras (solo lectura) y su libro de gastos
	purchases := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)

	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	purchases.Post("/:id/expenses", expenseHandler.Add)
	purchases.Get("/:id/expenses", expenseHandler.List)
	purchases.Get("/:id/expenses/totals", expenseHandler.Totals)
	api.Delete("/expenses/:entryId", expenseHandler.Remove)

	// Retaceos
	retaceos := api.Group("/retaceos")
	retaceoHandler := NewRetaceoHandler(deps.CalculateUC, deps.LifecycleUC, deps.PDFUC)
	retaceos.Get("/calculate", retaceoHandler.Calculate)
	retaceos.Post("/", retaceoHandler.Create)
	retaceos.Post("/create-with-calculation", retaceoHandler.CreateWithCalculation)
	retaceos.Get("/:id", retaceoHandler.GetByID)
	retaceos.Post("/:id/calculation", retaceoHandler.AttachCalculation)
	retaceos.Post("/:id/approve", retaceoHandler.Approve)
	retaceos.Delete("/:id", retaceoHandler.Delete)
	retaceos.Get("/:id/pdf", retaceoHandler.PDF)

	// Productos y bitácora de precios
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.PriceAnalysisUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/price-history", productHandler.PriceHistory)

	// Análisis de precios
	analysisHandler := NewPriceAnalysisHandler(deps.PriceAnalysisUC)
	api.Post("/price-analysis", analysisHandler.Apply)
}
