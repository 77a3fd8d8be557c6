package main

import (
	"context"
	"log"
	"time"

	"lightspace/internal/core/cache"
	"lightspace/internal/core/config"
	"lightspace/internal/core/logger"
	"lightspace/internal/core/server"
	cartadapter "lightspace/internal/features/cart/adapters"
	carthandler "lightspace/internal/features/cart/handler"
	cartservice "lightspace/internal/features/cart/service"
	catalogadapter "lightspace/internal/features/catalog/adapters"
	cataloghandler "lightspace/internal/features/catalog/handler"
	catalogservice "lightspace/internal/features/catalog/service"
	checkoutadapter "lightspace/internal/features/checkout/adapters"
	checkoutdomain "lightspace/internal/features/checkout/domain"
	checkouthandler "lightspace/internal/features/checkout/handler"
	checkoutports "lightspace/internal/features/checkout/ports"
	checkoutservice "lightspace/internal/features/checkout/service"
	wishlistadapter "lightspace/internal/features/wishlist/adapters"
	wishlisthandler "lightspace/internal/features/wishlist/handler"
	wishlistservice "lightspace/internal/features/wishlist/service"

	"go.uber.org/zap"
)

// @title LightSpace API
// @version 1.0
// @description Session-scoped shopping API for a lighting store: catalog, cart, wishlist and a checkout payment flow.
// @contact.name API Support
// @contact.email support@lightspace.shop
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Session store
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Invalid Redis URL", zap.Error(err))
	}
	defer redisCache.Close()

	if err := redisCache.Ping(context.Background()); err != nil {
		l.Fatal("Redis connection failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	sessionTTL := time.Duration(cfg.Redis.SessionTTLMinutes) * time.Minute

	// Catalog
	catalogProvider := catalogadapter.NewStaticCatalog()
	catalogSvc := catalogservice.NewCatalogService(catalogProvider)
	catalogHdl := cataloghandler.NewCatalogHandler(catalogSvc)

	// Cart
	cartRepo := cartadapter.NewRedisCartRepository(redisCache, sessionTTL)
	cartSvc := cartservice.NewCartService(cartRepo, catalogProvider)
	cartHdl := carthandler.NewCartHandler(cartSvc)

	// Wishlist
	wishlistRepo := wishlistadapter.NewRedisWishlistRepository(redisCache, sessionTTL)
	wishlistSvc := wishlistservice.NewWishlistService(wishlistRepo, catalogProvider)
	wishlistHdl := wishlisthandler.NewWishlistHandler(wishlistSvc)

	// Checkout
	var gateway checkoutports.PaymentGateway
	switch cfg.Checkout.GatewayMode {
	case "http":
		gateway = checkoutadapter.NewHTTPGateway(cfg.Checkout.GatewayURL)
		l.Info("Using HTTP payment gateway", zap.String("url", cfg.Checkout.GatewayURL))
	default:
		gateway = checkoutadapter.NewSimulatedGateway(
			cfg.Checkout.FailureRate,
			time.Duration(cfg.Checkout.LatencyMinMs)*time.Millisecond,
			time.Duration(cfg.Checkout.LatencyMaxMs)*time.Millisecond,
			checkoutadapter.UUIDTransactionIDs{},
		)
		l.Info("Using simulated payment gateway",
			zap.Float64("failure_rate", cfg.Checkout.FailureRate),
		)
	}

	shipping := checkoutdomain.ShippingPolicy{
		FreeThreshold: cfg.Checkout.FreeShippingThreshold,
		BaseFee:       cfg.Checkout.BaseShippingFee,
		PerItemFee:    cfg.Checkout.PerItemShippingFee,
		MaxFee:        cfg.Checkout.MaxShippingFee,
	}

	checkoutSvc := checkoutservice.NewCheckoutService(
		cartSvc,
		checkoutadapter.NewStaticPaymentMethods(),
		gateway,
		shipping,
		cfg.Checkout.TaxRate,
	)
	checkoutHdl := checkouthandler.NewCheckoutHandler(checkoutSvc, cartSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/products", catalogHdl.ListProducts)
	srv.App.Get("/products/:id", catalogHdl.GetProduct)
	srv.App.Get("/categories", catalogHdl.ListCategories)

	srv.App.Get("/cart", cartHdl.GetCart)
	srv.App.Delete("/cart", cartHdl.ClearCart)
	srv.App.Post("/cart/items", cartHdl.AddItem)
	srv.App.Delete("/cart/items/:id", cartHdl.RemoveItem)

	srv.App.Post("/wishlist/toggle", wishlistHdl.Toggle)
	srv.App.Get("/wishlist", wishlistHdl.List)

	srv.App.Post("/checkout", checkoutHdl.Initialize)
	srv.App.Get("/checkout", checkoutHdl.GetCheckout)
	srv.App.Post("/checkout/payment", checkoutHdl.GoToPayment)
	srv.App.Post("/checkout/summary", checkoutHdl.BackToSummary)
	srv.App.Post("/checkout/method", checkoutHdl.SelectMethod)
	srv.App.Post("/checkout/card", checkoutHdl.SelectSavedCard)
	srv.App.Patch("/checkout/new-card", checkoutHdl.UpdateNewCard)
	srv.App.Patch("/checkout/billing-address", checkoutHdl.UpdateBillingAddress)
	srv.App.Post("/checkout/validate", checkoutHdl.Validate)
	srv.App.Post("/checkout/process", checkoutHdl.ProcessPayment)
	srv.App.Post("/checkout/reset", checkoutHdl.Reset)
	srv.App.Delete("/checkout/error", checkoutHdl.ClearError)
	srv.App.Get("/checkout/methods", checkoutHdl.GetPaymentMethods)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
