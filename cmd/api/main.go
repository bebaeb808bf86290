package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cantinhoapps/vendus-gateway/internal/config"
	"github.com/cantinhoapps/vendus-gateway/internal/modules/auth"
	"github.com/cantinhoapps/vendus-gateway/internal/modules/customer"
	"github.com/cantinhoapps/vendus-gateway/internal/modules/document"
	"github.com/cantinhoapps/vendus-gateway/internal/modules/health"
	"github.com/cantinhoapps/vendus-gateway/internal/modules/order"
	"github.com/cantinhoapps/vendus-gateway/internal/modules/product"
	"github.com/cantinhoapps/vendus-gateway/internal/observability"
	"github.com/cantinhoapps/vendus-gateway/internal/vendus"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Local runs load .env; in production the platform injects the
	// environment and the file is simply absent.
	_ = godotenv.Load()
	cfg := config.Load()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(observability.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", auth.HeaderName},
	}))

	// ── Public ──────────────────────────────────────────────
	health.RegisterRoutes(router)
	router.Method(http.MethodGet, "/metrics", observability.Handler())

	// ── Protected: everything behind the shared key ─────────
	client := vendus.NewClient(cfg)
	router.Group(func(r chi.Router) {
		r.Use(auth.RequireKey(cfg))

		product.NewHandler(product.NewService(client, product.DefaultRules)).RegisterRoutes(r)
		customer.NewHandler(customer.NewService(client)).RegisterRoutes(r)
		order.NewHandler(order.NewService(client, cfg.Strict())).RegisterRoutes(r)
		document.NewHandler(document.NewService(client)).RegisterRoutes(r)
	})

	// ── Start Server ────────────────────────────────────────
	fmt.Printf("Vendus gateway a escutar em :%s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
