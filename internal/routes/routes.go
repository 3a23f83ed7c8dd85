// Package routes wires the console screens to their handlers and guards.
package routes

import (
	"time"

	"chargili/internal/apiclient"
	"chargili/internal/handlers"
	"chargili/internal/logger"
	"chargili/internal/middleware"
	"chargili/internal/remotelist"
	"chargili/internal/repositories"
	"chargili/internal/repositories/cache"
	"chargili/internal/services/agent"
	"chargili/internal/services/auth"
	"chargili/internal/services/client"
	"chargili/internal/services/commission"
	"chargili/internal/services/currency"
	"chargili/internal/services/dispute"
	"chargili/internal/services/exchangerate"
	"chargili/internal/services/operator"
	"chargili/internal/services/payment"
	"chargili/internal/services/stock"
	"chargili/internal/services/ticket"
	"chargili/internal/services/transaction"
	"chargili/internal/session"
	"chargili/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Deps is everything the routes need. API, Store and Logger are required.
type Deps struct {
	API         *apiclient.Client
	Store       repositories.TokenStore
	Cache       *cache.CacheService
	Audit       repositories.AuditRepository
	Payments    payment.Lookup
	Logger      *logger.Logger
	RestoreMode string
	// LoginRateLimit is the number of login attempts per minute and IP. Zero disables it.
	LoginRateLimit int
	SecureCookies  bool
	Version        string
}

// SetupRoutes registers every console route on app and returns the session
// manager it built.
func SetupRoutes(app *fiber.App, d Deps) *session.Manager {
	log := d.Logger
	if log == nil {
		log = logger.NewNop()
	}

	authService := auth.NewService(d.API)
	sessions := session.NewManager(d.Store, authService, d.RestoreMode, log)
	lists := remotelist.NewRegistry()

	// A 401 anywhere ends the session of the request that received it.
	d.API.OnUnauthorized(sessions.Expire)
	sessions.OnEnd(lists.Drop)

	base := handlers.NewBase(handlers.BaseConfig{
		Logger:        log,
		Sessions:      sessions,
		Lists:         lists,
		Validator:     validation.New(),
		Audit:         d.Audit,
		SecureCookies: d.SecureCookies,
	})

	authHandler := handlers.NewAuthHandler(base, authService)
	dashboardHandler := handlers.NewDashboardHandler(base)
	agentHandler := handlers.NewAgentHandler(base, agent.NewService(d.API))
	clientHandler := handlers.NewClientHandler(base, client.NewService(d.API))
	transactionHandler := handlers.NewTransactionHandler(base, transaction.NewService(d.API), d.Payments)
	stockHandler := handlers.NewStockHandler(base, stock.NewService(d.API))
	rateHandler := handlers.NewExchangeRateHandler(base, exchangerate.NewService(d.API))
	currencyHandler := handlers.NewCurrencyHandler(base, currency.NewService(d.API))
	operatorHandler := handlers.NewOperatorHandler(base, operator.NewService(d.API))
	commissionHandler := handlers.NewCommissionHandler(base, commission.NewService(d.API))
	ticketHandler := handlers.NewTicketHandler(base, ticket.NewService(d.API))
	disputeHandler := handlers.NewDisputeHandler(base, dispute.NewService(d.API))
	auditHandler := handlers.NewAuditHandler(base)
	healthHandler := handlers.NewHealthHandler(d.Cache, d.Version)

	app.Get("/healthz", healthHandler.Check)

	app.Use(middleware.Session(sessions, log))

	// Public routes
	login := []fiber.Handler{}
	if d.LoginRateLimit > 0 {
		login = append(login, loginLimiter(d.LoginRateLimit))
	}
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", append(login, authHandler.Login)...)
	app.Get("/unauthorized", authHandler.Unauthorized)
	app.Post("/logout", authHandler.Logout)

	guard := middleware.Guard(middleware.GuardConfig{})
	admin := middleware.Guard(middleware.GuardConfig{RequireAdmin: true})

	app.Get("/", guard, dashboardHandler.Show)
	app.Get("/dashboard", guard, dashboardHandler.Show)

	account := app.Group("/account", guard)
	account.Post("/password", authHandler.ChangePassword)
	account.Post("/refresh", authHandler.RefreshToken)

	agents := app.Group("/agents", admin)
	agents.Get("/", agentHandler.List)
	agents.Post("/", agentHandler.Create)
	agents.Put("/:id", agentHandler.Update)
	agents.Delete("/:id", agentHandler.Delete)

	clients := app.Group("/clients", guard)
	clients.Get("/", clientHandler.List)
	clients.Get("/search", clientHandler.Search)
	clients.Get("/:id", clientHandler.Details)

	transactions := app.Group("/transactions", guard)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/export", transactionHandler.Export)
	transactions.Get("/:id", transactionHandler.Details)
	transactions.Post("/:id/status", transactionHandler.UpdateStatus)
	transactions.Post("/:id/assign", transactionHandler.Assign)

	cards := app.Group("/stock/cards", guard)
	cards.Get("/", stockHandler.Cards)
	cards.Post("/", stockHandler.CreateCard)
	cards.Put("/:id", stockHandler.UpdateCard)
	cards.Delete("/:id", stockHandler.DeleteCard)

	stockCards := app.Group("/stock-cartes", guard)
	stockCards.Get("/", stockHandler.Cards)
	stockCards.Get("/:id", stockHandler.Card)

	balance := app.Group("/stock/balance", guard)
	balance.Get("/", stockHandler.Balances)
	balance.Post("/", stockHandler.CreateBalance)
	balance.Post("/add", stockHandler.AddBalance)
	balance.Get("/:id", stockHandler.Balance)
	balance.Delete("/:id", stockHandler.DeleteBalance)

	params := app.Group("/parameters")

	rates := params.Group("/exchange-rates", admin)
	rates.Get("/", rateHandler.List)
	rates.Post("/", rateHandler.Create)
	rates.Get("/calculator", rateHandler.Calculator)
	rates.Get("/:id", rateHandler.Edit)
	rates.Put("/:id", rateHandler.Update)
	rates.Post("/:id/toggle", rateHandler.Toggle)
	rates.Get("/:id/history", rateHandler.History)

	currencies := params.Group("/currency", admin)
	currencies.Get("/", currencyHandler.List)
	currencies.Post("/", currencyHandler.Create)
	currencies.Get("/:id", currencyHandler.Edit)
	currencies.Put("/:id", currencyHandler.Update)
	currencies.Post("/:id/toggle", currencyHandler.Toggle)

	mainCurrencies := params.Group("/main-currency", admin)
	mainCurrencies.Get("/", currencyHandler.ListMain)
	mainCurrencies.Post("/", currencyHandler.CreateMain)
	mainCurrencies.Get("/:id", currencyHandler.EditMain)
	mainCurrencies.Put("/:id", currencyHandler.UpdateMain)
	mainCurrencies.Post("/:id/toggle", currencyHandler.ToggleMain)

	operators := params.Group("/operators", admin)
	operators.Get("/", operatorHandler.List)
	operators.Post("/", operatorHandler.Create)
	operators.Get("/:id", operatorHandler.Edit)
	operators.Put("/:id", operatorHandler.Update)
	operators.Post("/:id/activation", operatorHandler.Activation)
	operators.Delete("/:id", operatorHandler.Delete)

	commissions := params.Group("/commissions", admin)
	commissions.Get("/", commissionHandler.List)
	commissions.Post("/", commissionHandler.Create)
	commissions.Get("/:id", commissionHandler.Edit)
	commissions.Put("/:id", commissionHandler.Update)
	commissions.Delete("/:id", commissionHandler.Delete)

	tickets := params.Group("/support-tickets", guard)
	tickets.Get("/", ticketHandler.List)
	tickets.Post("/", ticketHandler.Create)
	tickets.Post("/:id/respond", ticketHandler.Respond)

	disputes := params.Group("/disputes", guard)
	disputes.Get("/", disputeHandler.List)
	disputes.Post("/", disputeHandler.Create)
	disputes.Get("/transaction/:id", disputeHandler.ByTransaction)
	disputes.Post("/:id/status", disputeHandler.UpdateStatus)

	app.Get("/audit", admin, auditHandler.List)

	return sessions
}

func loginLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Trop de tentatives de connexion. Veuillez réessayer dans une minute.",
			})
		},
	})
}
