package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rookgm/streammart/config"
	"github.com/rookgm/streammart/internal/auth"
	"github.com/rookgm/streammart/internal/gateway"
	handler "github.com/rookgm/streammart/internal/handler/http"
	"github.com/rookgm/streammart/internal/logger"
	"github.com/rookgm/streammart/internal/middleware"
	"github.com/rookgm/streammart/internal/repository"
	"github.com/rookgm/streammart/internal/repository/postgres"
	"github.com/rookgm/streammart/internal/service"
	"github.com/rookgm/streammart/internal/worker"
	"go.uber.org/zap"
)

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Log.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	if err := db.Migrate(); err != nil {
		logger.Log.Fatal("Error migrating database", zap.Error(err))
	}

	token := auth.NewAuthToken([]byte(cfg.AuthTokenKey))

	// payment gateway adapters
	cryptomus := gateway.NewCryptomus(gateway.CryptomusConfig{
		BaseURL:        cfg.CryptomusBaseURL,
		Merchant:       cfg.CryptomusMerchant,
		APIKey:         cfg.CryptomusAPIKey,
		SettleCurrency: cfg.SettleCurrency,
		Lifetime:       cfg.InvoiceLifetime,
		Timeout:        cfg.GatewayTimeout,
	})
	payGate := gateway.NewPayGate(gateway.PayGateConfig{
		BaseURL: cfg.PayGateBaseURL,
		Wallet:  cfg.PayGateWallet,
		Timeout: cfg.GatewayTimeout,
	})
	adapters := map[string]gateway.Adapter{
		cryptomus.Name(): cryptomus,
		payGate.Name():   payGate,
	}

	// dependency injection
	// orders
	orderRepo := repository.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo)
	adminOrderHandler := handler.NewAdminOrderHandler(orderService)

	// packages
	packageRepo := repository.NewPackageRepository(db)
	packageService := service.NewPackageService(packageRepo)
	packageHandler := handler.NewPackageHandler(packageService)

	// checkout
	checkoutService := service.NewCheckoutService(orderRepo, packageRepo, adapters, cfg.PublicBaseURL)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)

	// payment reconciliation
	reconcileService := service.NewReconcileService(orderRepo, adapters)
	webhookHandler := handler.NewWebhookHandler(reconcileService)
	paymentHandler := handler.NewPaymentHandler(orderService, reconcileService)

	// admin auth
	adminRepo := repository.NewAdminRepository(db)
	authService := service.NewAuthService(adminRepo, token)
	authHandler := handler.NewAuthHandler(authService)

	// background reconciliation for orders with missed webhooks
	processor := worker.NewPaymentProcessor(reconcileService, cfg.ReconcileEvery)
	go processor.ProcessOrders(ctx)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger.Log))

	router.Get("/api/packages", packageHandler.ListActivePackages())
	router.Post("/api/checkout", checkoutHandler.Checkout())
	router.Get("/payment/return", paymentHandler.Return())

	// provider-facing endpoints
	router.Post("/api/webhook/cryptomus", webhookHandler.Cryptomus())
	router.Get("/api/webhook/paygate", webhookHandler.PayGate())

	router.Post("/api/admin/login", authHandler.LoginAdmin())

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(handler.AuthMiddleware(token))
		group.Get("/api/admin/orders", adminOrderHandler.ListOrders())
		group.Patch("/api/admin/orders/{id}/status", adminOrderHandler.UpdateOrderStatus())
		group.Post("/api/admin/orders/{id}/notify", adminOrderHandler.NotifyCustomer())
		group.Get("/api/admin/packages", packageHandler.ListPackages())
		group.Post("/api/admin/packages", packageHandler.CreatePackage())
		group.Put("/api/admin/packages/{id}", packageHandler.UpdatePackage())
		group.Delete("/api/admin/packages/{id}", packageHandler.DeletePackage())
	})

	logger.Log.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
