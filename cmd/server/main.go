package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rajputarjun2947-afk/Vocano/internal/config"
	"github.com/rajputarjun2947-afk/Vocano/internal/events"
	"github.com/rajputarjun2947-afk/Vocano/internal/handlers"
	"github.com/rajputarjun2947-afk/Vocano/internal/kvstore"
	"github.com/rajputarjun2947-afk/Vocano/internal/logging"
	authmw "github.com/rajputarjun2947-afk/Vocano/internal/middleware/auth"
	loggingmw "github.com/rajputarjun2947-afk/Vocano/internal/middleware/logging"
	"github.com/rajputarjun2947-afk/Vocano/internal/storage"
	httpserver "github.com/rajputarjun2947-afk/Vocano/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if configuration.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET is required")
	}

	logger := logging.New(configuration.LOG_LEVEL)

	kv, err := kvstore.OpenSQLite(configuration.STORE_PATH, logger)
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	bus := events.NewBus()
	store := storage.New(kv, bus)
	store.EnsureAdmin()
	store.EnsureCoupons()
	if configuration.SEED_DEMO_DATA {
		store.SeedDemoCatalog()
	}

	bus.Subscribe(events.TopicOrders, func(topic string) {
		logger.Info("state changed", "topic", topic)
	})

	sessions := &authmw.Sessions{Store: store, JWTSecret: []byte(configuration.JWT_SECRET)}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler:         &handlers.AuthHandler{Store: store, Sessions: sessions},
		ProductHandler:      &handlers.ProductHandler{Store: store},
		CartHandler:         &handlers.CartHandler{Store: store},
		OrderHandler:        &handlers.OrderHandler{Store: store},
		AddressHandler:      &handlers.AddressHandler{Store: store},
		WishlistHandler:     &handlers.WishlistHandler{Store: store},
		NotificationHandler: &handlers.NotificationHandler{Store: store},
		CouponHandler:       &handlers.CouponHandler{Store: store},
		AdminHandler:        &handlers.AdminHandler{Store: store},
		Sessions:            sessions,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	log.Println("shutdown complete")
}
