package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"tour-storefront/internal/handler/api"
	"tour-storefront/internal/handler/middleware"
	"tour-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth     *api.AuthHandler
	Catalog  *api.CatalogHandler
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
	Account  *api.AccountHandler
	Admin    *api.AdminHandler
}

type Middlewares struct {
	fx.In

	Logger  *middleware.Logger
	Visitor *middleware.VisitorMiddleware
	Badge   *middleware.CartBadge
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.MetricsMiddleware())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(mw.Visitor.Identify(), mw.Badge.Handler())
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/register/external", Handler: h.Auth.RegisterExternal},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
		})

		tours := apiGroup.Group("/tours")
		addRoutes(tours, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.Search},
			{Method: http.MethodGet, Path: "/featured", Handler: h.Catalog.Featured},
			{Method: http.MethodGet, Path: "/destinations", Handler: h.Catalog.Destinations},
		})

		cart := apiGroup.Group("/cart")
		addRoutes(cart, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
			{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
			{Method: http.MethodGet, Path: "/totals", Handler: h.Cart.Totals},
			{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
			{Method: http.MethodDelete, Path: "/items/:index", Handler: h.Cart.RemoveItem},
		})

		// Checkout checks the session itself so its preconditions are reported in order.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Checkout.Checkout},
		})

		account := apiGroup.Group("/account")
		account.Use(mw.Visitor.RequireSession())
		addRoutes(account, []route{
			{Method: http.MethodPut, Path: "/profile", Handler: h.Account.UpdateProfile},
			{Method: http.MethodGet, Path: "/reservations", Handler: h.Account.Reservations},
			{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Account.CancelReservation},
			{Method: http.MethodGet, Path: "/invoices", Handler: h.Account.Invoices},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(mw.Visitor.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
			{Method: http.MethodPost, Path: "/users", Handler: h.Admin.CreateUser},
			{Method: http.MethodPut, Path: "/users/:id", Handler: h.Admin.UpdateUser},
			{Method: http.MethodGet, Path: "/tours", Handler: h.Admin.ListTours},
			{Method: http.MethodPost, Path: "/tours", Handler: h.Admin.CreateTour},
			{Method: http.MethodPut, Path: "/tours/:id", Handler: h.Admin.UpdateTour},
			{Method: http.MethodDelete, Path: "/tours/:id", Handler: h.Admin.DeleteTour},
			{Method: http.MethodGet, Path: "/destinations", Handler: h.Admin.ListDestinations},
			{Method: http.MethodGet, Path: "/reservations", Handler: h.Admin.ListReservations},
			{Method: http.MethodPut, Path: "/reservations/:id", Handler: h.Admin.UpdateReservation},
			{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Admin.CancelReservation},
			{Method: http.MethodGet, Path: "/reservations/:id/details", Handler: h.Admin.ReservationDetails},
			{Method: http.MethodGet, Path: "/invoices", Handler: h.Admin.ListInvoices},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
