package main

import (
	"net/http"

	"github.com/enumulasashank/rideon-bike-rental/internal/handler"
	"github.com/enumulasashank/rideon-bike-rental/internal/middleware"
	"github.com/enumulasashank/rideon-bike-rental/internal/repository"
	authsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/auth"
	bikesvc "github.com/enumulasashank/rideon-bike-rental/internal/service/bike"
	locationsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/location"
	paymentsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/payment"
	rentalsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/rental"
	reportsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/report"
	"github.com/enumulasashank/rideon-bike-rental/internal/validation"
	"github.com/enumulasashank/rideon-bike-rental/internal/web"
	"github.com/enumulasashank/rideon-bike-rental/pkg/config"
	"github.com/enumulasashank/rideon-bike-rental/pkg/database"
	"github.com/enumulasashank/rideon-bike-rental/pkg/logger"
	"github.com/enumulasashank/rideon-bike-rental/pkg/session"
	"github.com/enumulasashank/rideon-bike-rental/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting bike rental service...", zap.String("environment", cfg.Server.Env))

	// Initialize database and migrate the schema
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Sessions
	sessions := session.NewManager(&cfg.Session)

	// Repositories
	customers := repository.NewCustomers(db)
	bikes := repository.NewBikes(db)
	rentals := repository.NewRentals(db)
	payments := repository.NewPayments(db)
	locations := repository.NewLocations(db)
	reports := repository.NewReports(db)

	// Services
	auth := authsvc.New(customers, sessions)
	bikeService := bikesvc.New(bikes)
	rentalService := rentalsvc.New(rentals)
	paymentService := paymentsvc.New(payments)
	locationService := locationsvc.New(locations)
	reportService := reportsvc.New(reports)

	// Handlers
	authHandler := handler.NewAuthHandler(auth, sessions)
	bikeHandler := handler.NewBikeHandler(bikeService, locationService)
	rentalHandler := handler.NewRentalHandler(rentalService, bikeService, locationService, auth)
	paymentHandler := handler.NewPaymentHandler(paymentService, rentalService)
	locationHandler := handler.NewLocationHandler(locationService)
	reportHandler := handler.NewReportHandler(reportService)

	// Initialize Echo framework
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal("Failed to parse templates", zap.Error(err))
	}
	e.Renderer = renderer

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/bikes")
	})
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)

	// Protected routes - session required, otherwise redirect to /login
	protected := e.Group("", middleware.SessionAuth(sessions, auth))

	protected.GET("/logout", authHandler.Logout)

	protected.GET("/bikes", bikeHandler.List)
	protected.GET("/bikes/create", bikeHandler.CreatePage)
	protected.POST("/bikes/create", bikeHandler.Create)
	protected.GET("/bikes/edit/:id", bikeHandler.EditPage)
	protected.POST("/bikes/edit/:id", bikeHandler.Edit)
	protected.POST("/bikes/delete/:id", bikeHandler.Delete)

	protected.GET("/rentals", rentalHandler.List)
	protected.GET("/rentals/create", rentalHandler.CreatePage)
	protected.POST("/rentals/create", rentalHandler.Create)

	protected.GET("/payments", paymentHandler.List)
	protected.GET("/payments/create", paymentHandler.CreatePage)
	protected.POST("/payments/create", paymentHandler.Create)

	protected.GET("/locations", locationHandler.List)
	protected.GET("/locations/create", locationHandler.CreatePage)
	protected.POST("/locations/create", locationHandler.Create)

	protected.GET("/dashboard", reportHandler.Dashboard)
	protected.GET("/api/rentals_by_location", reportHandler.RentalsByLocation)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
