package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/apoorva792/Reseller-Dashboard/internal/auth"
	"github.com/apoorva792/Reseller-Dashboard/internal/config"
	"github.com/apoorva792/Reseller-Dashboard/internal/handlers"
	"github.com/apoorva792/Reseller-Dashboard/internal/migrations"
	"github.com/apoorva792/Reseller-Dashboard/internal/seller"
	"github.com/apoorva792/Reseller-Dashboard/internal/services"
	"github.com/apoorva792/Reseller-Dashboard/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// App структура для управления приложением и его зависимостями.
type App struct {
	cfg    *config.Config
	log    *zap.SugaredLogger
	dbPool *pgxpool.Pool
	echo   *echo.Echo

	// Handlers
	userHandler    *handlers.UserHandler
	sellerHandler  *handlers.SellerHandler
	orderHandler   *handlers.OrderHandler
	billingHandler *handlers.BillingHandler
	disputeHandler *handlers.DisputeHandler
}

// NewApp создаёт и инициализирует новое приложение.
func NewApp(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*App, error) {
	app := &App{
		cfg: cfg,
		log: log,
	}

	if err := app.initDatabase(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := app.initDependencies(); err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app.initServer()

	return app, nil
}

// initDatabase инициализирует подключение к базе данных и выполняет миграции.
func (app *App) initDatabase(ctx context.Context) error {
	if app.cfg.DatabaseURI == "" {
		return fmt.Errorf("DATABASE_URI is required")
	}

	// Применение миграций
	app.log.Info("Running database migrations...")
	sqlDB, err := sql.Open("pgx", app.cfg.DatabaseURI)
	if err != nil {
		return fmt.Errorf("unable to open database connection: %w", err)
	}
	defer sqlDB.Close()

	if err := migrations.Run(sqlDB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.log.Info("Migrations completed successfully")

	// Подключение к базе данных через pgxpool
	dbPool, err := pgxpool.New(ctx, app.cfg.DatabaseURI)
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		return fmt.Errorf("unable to ping database: %w", err)
	}

	app.dbPool = dbPool
	app.log.Info("Successfully connected to database")

	return nil
}

// initDependencies инициализирует все зависимости приложения (storage, services, handlers).
func (app *App) initDependencies() error {
	if app.cfg.SellerAPIAddress == "" {
		return fmt.Errorf("SELLER_API_ADDRESS is required")
	}

	// Storage layer
	userStorage := storage.NewPostgresUserStorage(app.dbPool)
	credentialStorage := storage.NewPostgresCredentialStorage(app.dbPool)
	disputeStorage := storage.NewPostgresDisputeStorage(app.dbPool)

	// Клиент API продавца
	sellerClient := seller.NewClient(app.cfg.SellerAPIAddress, app.cfg.SellerTimeout)
	app.log.Infof("Seller API client initialized with address: %s", app.cfg.SellerAPIAddress)

	// Service layer
	userService := services.NewUserService(userStorage, app.cfg.JWTSecret, app.cfg.TokenExpiration)
	sessionService := services.NewSessionService(sellerClient, credentialStorage, app.log)
	orderService := services.NewOrderService(sellerClient, sessionService, app.log)
	billingService := services.NewBillingService(sellerClient, sessionService, app.log)
	disputeService := services.NewDisputeService(sellerClient, sessionService, disputeStorage, app.log)

	// Handler layer
	app.userHandler = handlers.NewUserHandler(userService)
	app.sellerHandler = handlers.NewSellerHandler(sessionService)
	app.orderHandler = handlers.NewOrderHandler(orderService)
	app.billingHandler = handlers.NewBillingHandler(billingService)
	app.disputeHandler = handlers.NewDisputeHandler(disputeService)

	return nil
}

// initServer инициализирует HTTP-сервер и настраивает маршруты.
func (app *App) initServer() {
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	// Публичные маршруты (не требуют аутентификации)
	e.POST("/api/user/register", app.userHandler.Register)
	e.POST("/api/user/login", app.userHandler.Login)

	// Защищённые маршруты (требуют аутентификации)
	protected := e.Group("/api")
	protected.Use(auth.JWTMiddleware(app.cfg.JWTSecret))

	protected.POST("/seller/login", app.sellerHandler.Login)
	protected.POST("/seller/refresh", app.sellerHandler.Refresh)
	protected.POST("/seller/logout", app.sellerHandler.Logout)
	protected.GET("/seller/profile", app.sellerHandler.Profile)

	protected.GET("/orders", app.orderHandler.ListOrders)
	protected.GET("/orders/template", app.orderHandler.Template)
	protected.GET("/orders/:id", app.orderHandler.GetOrder)
	protected.POST("/orders/upload", app.orderHandler.Upload)
	protected.POST("/orders/dispute", app.disputeHandler.Submit)
	protected.GET("/disputes", app.disputeHandler.List)

	protected.GET("/wallet/balance", app.billingHandler.GetBalance)
	protected.GET("/wallet/bills", app.billingHandler.GetBills)

	app.echo = e
}

// Start запускает приложение.
func (app *App) Start() error {
	app.log.Infof("Starting server on %s", app.cfg.RunAddress)
	if err := app.echo.Start(app.cfg.RunAddress); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

// Shutdown корректно завершает работу приложения.
func (app *App) Shutdown(ctx context.Context) error {
	app.log.Info("Shutting down server...")

	if err := app.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if app.dbPool != nil {
		app.dbPool.Close()
	}

	app.log.Info("Server gracefully stopped")
	return nil
}
