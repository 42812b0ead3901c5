package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/socialdots/site/internal/chat"
	"github.com/socialdots/site/internal/config"
	"github.com/socialdots/site/internal/db"
	"github.com/socialdots/site/internal/logging"
	"github.com/socialdots/site/internal/migrations"
	"github.com/socialdots/site/internal/pricing"
	"github.com/socialdots/site/internal/seed"
	"github.com/socialdots/site/internal/store"
)

type server struct {
	auth     *authService
	store    *store.Store
	catalog  *pricing.Catalog
	chat     *chat.Responder
	validate *validator.Validate
}

func newServer(database *sql.DB, sessionSecret string, catalog *pricing.Catalog) (*server, error) {
	validate, err := newValidator(catalog)
	if err != nil {
		return nil, err
	}
	return &server{
		auth:     newAuthService(database, sessionSecret),
		store:    store.New(database, catalog),
		catalog:  catalog,
		chat:     chat.DefaultResponder(),
		validate: validate,
	}, nil
}

func newValidator(catalog *pricing.Catalog) (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	err := v.RegisterValidation("catalog_service", func(fl validator.FieldLevel) bool {
		_, ok := catalog.Service(fl.Field().String())
		return ok
	})
	if err != nil {
		return nil, fmt.Errorf("register catalog_service validation: %w", err)
	}
	return v, nil
}

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		logging.Fatal("failed to open database", "error", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(ctx, database); err != nil {
			logging.Fatal("failed to run database migrations", "error", err)
		}
	}

	stats, err := seed.Run(ctx, database, seed.Config{AdminEmail: cfg.AdminEmail, AdminPassword: cfg.AdminPassword})
	if err != nil {
		logging.Fatal("failed to seed database", "error", err)
	}
	slog.Info("seed complete", "inserts", stats.Inserts)

	srv, err := newServer(database, cfg.SessionSecret, pricing.DefaultCatalog())
	if err != nil {
		logging.Fatal("failed to build server", "error", err)
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("listening", "addr", httpServer.Addr, "env", cfg.Env)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.RequestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/pricing/catalog", s.handlePricingCatalog)
		r.Post("/pricing/estimate", s.handleEstimate)
		r.Post("/chat", s.handleChat)
		r.Get("/testimonials", s.handlePublicTestimonials)
		r.Get("/resources", s.handlePublicResources)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Post("/logout", s.handleLogout)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Get("/dashboard", s.handleDashboard)

				r.Get("/testimonials", s.handleListTestimonials)
				r.Post("/testimonials", s.handleCreateTestimonial)
				r.Put("/testimonials/{id}", s.handleUpdateTestimonial)
				r.Delete("/testimonials/{id}", s.handleDeleteTestimonial)

				r.Get("/projects", s.handleListProjects)
				r.Post("/projects", s.handleCreateProject)
				r.Put("/projects/{id}", s.handleUpdateProject)
				r.Delete("/projects/{id}", s.handleDeleteProject)

				r.Get("/resources", s.handleListResources)
				r.Post("/resources", s.handleCreateResource)
				r.Put("/resources/{id}", s.handleUpdateResource)
				r.Delete("/resources/{id}", s.handleDeleteResource)
			})
		})
	})

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.auth.sessionEmail(r); !ok {
			writeError(w, errUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeValid(w, r, &req) {
		return
	}

	valid, err := s.auth.validateCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		slog.Error("authentication error", "error", err)
		writeError(w, errInternal)
		return
	}
	if !valid {
		writeError(w, apiError{Status: http.StatusUnauthorized, Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"})
		return
	}

	s.auth.setSessionCookie(w, req.Email)
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
