package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/seifmegahed/daftar/internal/application/analytics"
	"github.com/seifmegahed/daftar/internal/application/auth"
	"github.com/seifmegahed/daftar/internal/application/usecase"
	"github.com/seifmegahed/daftar/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	Authenticator Authenticator
	UserUC        *usecase.UserUseCase
	ClientUC      *usecase.ClientUseCase
	SupplierUC    *usecase.SupplierUseCase
	AddressUC     *usecase.AddressUseCase
	ProjectUC     *usecase.ProjectUseCase
	LineItemUC    *usecase.LineItemUseCase
	ItemUC        *usecase.ItemUseCase
	DocumentUC    *usecase.DocumentUseCase
	RequestUC     *usecase.UserRequestUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	SecureCookies bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SecureCookies)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (cookie o Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Authenticator))

	authGroup := protected.Group("/auth")
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)
	authGroup.Put("/password", authHandler.ChangePassword)

	// Users: la lista simple es para todos, el resto solo admin
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/options", userHandler.Options)
	users.Get("/", adminOnly, userHandler.List)
	users.Post("/", adminOnly, userHandler.Create)
	users.Get("/:id", adminOnly, userHandler.GetByID)
	users.Put("/:id", adminOnly, userHandler.Update)
	users.Put("/:id/password", adminOnly, userHandler.ResetPassword)

	addressHandler := NewAddressHandler(deps.AddressUC)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/options", clientHandler.Options)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", adminOnly, clientHandler.Delete)
	clients.Get("/:id/projects", clientHandler.Projects)
	clients.Put("/:id/primary-address", clientHandler.SetPrimaryAddress)
	clients.Put("/:id/primary-contact", clientHandler.SetPrimaryContact)
	clients.Get("/:id/addresses", addressHandler.ListAddresses(entity.ForClient))
	clients.Post("/:id/addresses", addressHandler.CreateAddress(entity.ForClient))
	clients.Get("/:id/contacts", addressHandler.ListContacts(entity.ForClient))
	clients.Post("/:id/contacts", addressHandler.CreateContact(entity.ForClient))

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/options", supplierHandler.Options)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)
	suppliers.Get("/:id/items", supplierHandler.Items)
	suppliers.Put("/:id/primary-address", supplierHandler.SetPrimaryAddress)
	suppliers.Put("/:id/primary-contact", supplierHandler.SetPrimaryContact)
	suppliers.Get("/:id/addresses", addressHandler.ListAddresses(entity.ForSupplier))
	suppliers.Post("/:id/addresses", addressHandler.CreateAddress(entity.ForSupplier))
	suppliers.Get("/:id/contacts", addressHandler.ListContacts(entity.ForSupplier))
	suppliers.Post("/:id/contacts", addressHandler.CreateContact(entity.ForSupplier))

	// Addresses / Contacts por ID
	addresses := protected.Group("/addresses")
	addresses.Get("/:id", addressHandler.GetAddress)
	addresses.Put("/:id", addressHandler.UpdateAddress)
	addresses.Delete("/:id", adminOnly, addressHandler.DeleteAddress)
	contacts := protected.Group("/contacts")
	contacts.Get("/:id", addressHandler.GetContact)
	contacts.Put("/:id", addressHandler.UpdateContact)
	contacts.Delete("/:id", adminOnly, addressHandler.DeleteContact)

	// Projects
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.LineItemUC)
	projects.Get("/", projectHandler.List)
	projects.Post("/", projectHandler.Create)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", adminOnly, projectHandler.Delete)
	projects.Get("/:id/offer.pdf", projectHandler.OfferPDF)
	projects.Get("/:id/comments", projectHandler.Comments)
	projects.Post("/:id/comments", projectHandler.AddComment)
	projects.Delete("/:id/comments/:commentId", projectHandler.DeleteComment)
	projects.Get("/:id/items/:kind", projectHandler.LineItems)
	projects.Post("/:id/items/:kind", projectHandler.AddLineItem)
	projects.Put("/:id/items/:kind/:lineId", projectHandler.UpdateLineItem)
	projects.Delete("/:id/items/:kind/:lineId", projectHandler.DeleteLineItem)

	// Items
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/options", itemHandler.Options)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)
	items.Get("/:id/projects", itemHandler.Projects)
	items.Get("/:id/suppliers", itemHandler.Suppliers)

	// Documents
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Get("/by-target", documentHandler.ListByTarget)
	documents.Get("/", documentHandler.List)
	documents.Post("/", documentHandler.Upload)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Put("/:id", documentHandler.Update)
	documents.Delete("/:id", adminOnly, documentHandler.Delete)
	documents.Get("/:id/download", documentHandler.Download)
	documents.Get("/:id/relations", documentHandler.Relations)
	documents.Post("/:id/relations", documentHandler.AddRelation)
	documents.Delete("/:id/relations/:relationId", documentHandler.DeleteRelation)

	// User requests
	requests := protected.Group("/requests")
	requestHandler := NewUserRequestHandler(deps.RequestUC)
	requests.Get("/mine", requestHandler.Mine)
	requests.Post("/", requestHandler.Create)
	requests.Get("/", adminOnly, requestHandler.List)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Put("/:id/resolve", adminOnly, requestHandler.Resolve)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
