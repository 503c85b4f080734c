package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/solicitudes-api/internal/application/analytics"
	"github.com/tu-usuario/solicitudes-api/internal/application/auth"
	"github.com/tu-usuario/solicitudes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC    *usecase.ClientUseCase
	ProductUC   *usecase.ProductUseCase
	SolicitudUC *usecase.SolicitudUseCase
	PDFUC       *usecase.PDFUseCase
	StatsUC     *analytics.StatsUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.StatsUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:taxId/stats", clientHandler.Stats)
	clients.Get("/:taxId", clientHandler.GetByTaxID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StatsUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/stats", productHandler.Stats)
	products.Put("/:id", productHandler.Rename)
	products.Delete("/:id", productHandler.Delete)

	// Solicitudes
	solicitudes := protected.Group("/solicitudes")
	solicitudHandler := NewSolicitudHandler(deps.SolicitudUC, deps.PDFUC)
	solicitudes.Post("/", solicitudHandler.Create)
	solicitudes.Get("/", solicitudHandler.List)
	solicitudes.Get("/export", solicitudHandler.ExportCSV)
	solicitudes.Get("/:id/pdf", solicitudHandler.PDF)
	solicitudes.Get("/:id", solicitudHandler.GetByID)
	solicitudes.Post("/:id/issue", solicitudHandler.Issue)
	solicitudes.Post("/:id/cancel", solicitudHandler.Cancel)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.StatsUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
