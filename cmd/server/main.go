package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/novashop/novashop-backend/config"
	"github.com/novashop/novashop-backend/internal/app/catalog"
	"github.com/novashop/novashop-backend/internal/app/controller"
	"github.com/novashop/novashop-backend/internal/app/service"
	"github.com/novashop/novashop-backend/internal/app/session"
	"github.com/novashop/novashop-backend/internal/middleware"
	"github.com/novashop/novashop-backend/internal/router"
	"github.com/novashop/novashop-backend/internal/scheduler"
	"github.com/novashop/novashop-backend/internal/websocket"
	"github.com/novashop/novashop-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting NovaShop Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Build the immutable catalog
	catalogStore, err := catalog.NewStore(catalog.DefaultProducts())
	if err != nil {
		logger.Fatal("Failed to build catalog", err)
	}
	logger.Info("Catalog loaded", map[string]interface{}{
		"products": len(catalogStore.Products()),
	})

	// Session registry and event hub
	sessionStore := session.NewStore()
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize services
	catalogService := service.NewCatalogService(catalogStore)
	insightService := service.NewInsightService(cfg)
	storefrontService := service.NewStorefrontService(catalogService, insightService, hub)

	// Initialize controllers
	catalogController := controller.NewCatalogController(catalogService)
	cartController := controller.NewCartController(storefrontService)
	storefrontController := controller.NewStorefrontController(storefrontService)
	eventsController := controller.NewEventsController(hub, cfg)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore, cfg)

	// Start the idle-session janitor
	janitor := scheduler.NewSessionJanitor(sessionStore, cfg.Session.MaxIdle, cfg.Session.SweepSchedule)
	if err := janitor.Start(); err != nil {
		logger.Fatal("Failed to start session janitor", err)
	}
	defer janitor.Stop()

	// Setup router
	r := router.NewRouter(
		catalogController,
		cartController,
		storefrontController,
		eventsController,
		sessionMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
