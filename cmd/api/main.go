package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/oatpass/oatpass-go/internal/config"
	"github.com/oatpass/oatpass-go/internal/handler"
	"github.com/oatpass/oatpass-go/internal/middleware"
	"github.com/oatpass/oatpass-go/internal/repository"
	"github.com/oatpass/oatpass-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService())
	digestHandler := handler.NewDigestHandler(service.NewDigestService())

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/generate", genHandler.HandleGenerate)
	r.Post("/api/v1/digest", digestHandler.HandleDigest)

	// Accounts and saved entries require a database; the generator and
	// digest endpoints work without one.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — auth and entry routes disabled", "error", err)
	} else {
		authService := service.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		entryService := service.NewEntryService(repository.NewEntryRepository(db))
		entryHandler := handler.NewEntryHandler(entryService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.AuthRateRPS, cfg.AuthRateBurst))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/entries", entryHandler.HandleListEntries)
			r.Post("/api/v1/entries", entryHandler.HandleCreateEntry)
			r.Put("/api/v1/entries/{id}", entryHandler.HandleUpdateEntry)
			r.Delete("/api/v1/entries/{id}", entryHandler.HandleDeleteEntry)
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
