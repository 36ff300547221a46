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

	"github.com/bigasanhub/bigasan_hub/internal/config"
	"github.com/bigasanhub/bigasan_hub/internal/events"
	"github.com/bigasanhub/bigasan_hub/internal/fixtures"
	"github.com/bigasanhub/bigasan_hub/internal/httpserver"
	"github.com/bigasanhub/bigasan_hub/internal/logging"
	"github.com/bigasanhub/bigasan_hub/internal/repo"
	"github.com/bigasanhub/bigasan_hub/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LOG_LEVEL)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	if err := fixtures.Seed(db); err != nil {
		log.Fatalf("fixture seed error: %v", err)
	}

	var producer *events.Producer
	if cfg.KAFKA_ADDRESS != "" {
		producer = events.NewProducer([]string{cfg.KAFKA_ADDRESS})
	}

	jwtSecret := []byte(cfg.JWT_SECRET)
	gormRepo := &repo.GormRepo{DB: db}

	userService := &service.UserService{Repo: gormRepo, Producer: producer}
	catalogService := &service.CatalogService{Repo: gormRepo, Producer: producer}
	cartService := &service.CartService{Repo: gormRepo, Producer: producer}
	inventoryService := &service.InventoryService{Repo: gormRepo}
	orderService := &service.OrderService{Repo: gormRepo, Producer: producer}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(logging.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: userService, JWTSecret: jwtSecret},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogService},
		CartHandler:    &httpserver.CartHTTP{Svc: cartService},
		OrderHandler:   &httpserver.OrderHTTP{Svc: orderService},
		SellerHandler:  &httpserver.SellerHTTP{Inventory: inventoryService, Catalog: catalogService},
		AdminHandler:   &httpserver.AdminHTTP{Users: userService, Catalog: catalogService},
		JWTSecret:      jwtSecret,
	})

	port := cfg.SERVER_PORT
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
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

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
