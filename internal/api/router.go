package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/tradeco/board/internal/api/handler"
	"github.com/tradeco/board/internal/api/middleware"
	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"

	_ "github.com/tradeco/board/docs"
)

// Deps are the services and health checks the router wires into handlers.
type Deps struct {
	Auth     ports.AuthService
	Sessions ports.SessionService
	Profile  ports.ProfileService
	Jobs     ports.JobService
	Shelf    ports.ShelfService
	Renderer echo.Renderer
	Checks   map[string]handler.Pinger
	Log      zerolog.Logger

	// Metrics registry for the HTTP collectors. Nil means the process default.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	// Production turns on Secure cookies and hides the demo seeding route.
	Production bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = d.Renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "tradeco",
		Registerer: d.Registerer,
	}))
	e.Use(middleware.Session(d.Sessions, d.Production, d.Log))
	e.Use(middleware.RequestLogger(d.Log))

	// --- Dependencies ---
	dash := handler.NewDashboards(d.Jobs, d.Shelf)
	pages := handler.NewPageHandler()
	authHandler := handler.NewAuthHandler(d.Auth, d.Production, d.Log)
	profileHandler := handler.NewProfileHandler(d.Profile, dash, d.Production, d.Log)
	jobHandler := handler.NewJobHandler(d.Jobs, dash, d.Log)
	shelfHandler := handler.NewShelfHandler(d.Shelf, dash)

	// --- Public pages ---
	e.GET("/", pages.Index)
	e.GET("/enter", pages.Enter)
	e.GET("/contact_us", pages.Contact)

	// --- Login / registration, one set per role ---
	for _, role := range domain.Roles {
		p := handler.PathsFor(role)
		e.GET(p.Login, authHandler.LoginForm(role))
		e.POST(p.LoginAction, authHandler.Login(role))
		e.GET(p.Register, authHandler.RegisterForm(role))
		e.POST(p.RegisterAction, authHandler.Register(role))
	}
	e.POST("/logout", authHandler.Logout)
	e.GET("/logout", authHandler.Logout)

	// --- Role-guarded routes ---
	clientOnly := middleware.RequireRole(domain.RoleClient, handler.PathsFor(domain.RoleClient).Login)
	e.GET("/client/dashboard", jobHandler.Dashboard, clientOnly)
	e.POST("/client/jobs", jobHandler.Post, clientOnly)

	tradesmanOnly := middleware.RequireRole(domain.RoleTradesman, handler.PathsFor(domain.RoleTradesman).Login)
	e.GET("/tradesman/dashboard", jobHandler.Dashboard, tradesmanOnly)
	e.POST("/reserve_job", jobHandler.Reserve, tradesmanOnly)
	if !d.Production {
		e.GET("/create_jobs", jobHandler.SeedDemo, tradesmanOnly)
	}

	readerOnly := middleware.RequireRole(domain.RoleReader, handler.PathsFor(domain.RoleReader).Login)
	e.GET("/shelf", shelfHandler.Shelf, readerOnly)
	e.POST("/shelf/add", shelfHandler.Add, readerOnly)
	e.POST("/shelf/remove", shelfHandler.Remove, readerOnly)

	// --- Own account, any role ---
	signedIn := middleware.RequireAuth("/enter")
	e.POST("/update_user", profileHandler.Update, signedIn)
	e.POST("/change_password", profileHandler.ChangePassword, signedIn)
	e.POST("/delete_user", profileHandler.Delete, signedIn)

	// --- Health checks (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
