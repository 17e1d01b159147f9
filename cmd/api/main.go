// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/fieldworks/territory/internal/assist"
	"github.com/fieldworks/territory/internal/auth"
	"github.com/fieldworks/territory/internal/authz"
	"github.com/fieldworks/territory/internal/config"
	"github.com/fieldworks/territory/internal/email"
	"github.com/fieldworks/territory/internal/handler"
	"github.com/fieldworks/territory/internal/identity"
	"github.com/fieldworks/territory/internal/middleware"
	"github.com/fieldworks/territory/internal/model"
	"github.com/fieldworks/territory/internal/repository"
	"github.com/fieldworks/territory/internal/seed"
	"github.com/fieldworks/territory/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(log)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	identityStore := identity.NewStore(db)
	tenantRepo := repository.NewTenantRepository(db)
	backfillRepo := repository.NewBackfillRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	contactRepo := repository.NewContactRepository(db)
	productRepo := repository.NewProductRepository(db)
	accountProductRepo := repository.NewAccountProductRepository(db)
	shippingRepo := repository.NewShippingLocationRepository(db)
	callNoteRepo := repository.NewCallNoteRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Optional integrations: each one degrades to disabled when unconfigured.
	var emailService *email.Service
	if cfg.Sendgrid.APIKey != "" {
		emailService = email.NewService(cfg)
	} else {
		log.Warn("sendgrid not configured, transactional email disabled")
	}

	var authzService *authz.Service
	if cfg.Permify.Host != "" {
		authzService, err = authz.NewService(cfg.Permify.Host, authz.WithTenant(cfg.Permify.Tenant))
		if err != nil {
			return fmt.Errorf("connecting to permify: %w", err)
		}
	} else {
		log.Warn("permify not configured, authorization sync disabled")
	}

	var assistService *assist.Service
	if cfg.Gemini.APIKey != "" {
		generator, err := assist.NewGeminiGenerator(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return fmt.Errorf("creating gemini generator: %w", err)
		}
		assistService = assist.NewService(generator)
	} else {
		log.Warn("gemini not configured, assist endpoints disabled")
	}

	// Initialize services
	bootstrapService := service.NewBootstrapService(identityStore, tenantRepo, seed.DefaultBundle(), authzService)
	backfillService := service.NewBackfillService(identityStore, backfillRepo)
	userService := service.NewUserService(identityStore, tenantRepo, passwordHasher, tokenManager, bootstrapService, emailService, cfg)
	accountService := service.NewAccountService(accountRepo, accountProductRepo)
	contactService := service.NewContactService(contactRepo)
	productService := service.NewProductService(productRepo)
	callNoteService := service.NewCallNoteService(callNoteRepo, accountRepo)
	shippingService := service.NewShippingLocationService(shippingRepo, accountRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	accountHandler := handler.NewAccountHandler(accountService)
	contactHandler := handler.NewContactHandler(contactService)
	productHandler := handler.NewProductHandler(productService)
	callNoteHandler := handler.NewCallNoteHandler(callNoteService)
	shippingHandler := handler.NewShippingLocationHandler(shippingService)
	assistHandler := handler.NewAssistHandler(assistService, accountService, callNoteService)
	adminHandler := handler.NewAdminHandler(backfillService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	r.Use(middleware.MetricsMiddleware)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/signup", authHandler.SignupHandler)
			r.Post("/login", authHandler.LoginHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager, tenantRepo))

			r.Route("/accounts", func(r chi.Router) {
				r.Get("/", accountHandler.ListHandler)
				r.Post("/", accountHandler.CreateHandler)
				r.Get("/{id}", accountHandler.GetHandler)
				r.Put("/{id}", accountHandler.UpdateHandler)
				r.Delete("/{id}", accountHandler.DeleteHandler)

				r.Get("/{id}/products", accountHandler.ListProductsHandler)
				r.Post("/{id}/products", accountHandler.LinkProductHandler)
				r.Delete("/{id}/products/{linkID}", accountHandler.UnlinkProductHandler)

				r.Get("/{id}/call-notes", callNoteHandler.ListByAccountHandler)
				r.Get("/{id}/shipping-locations", shippingHandler.ListByAccountHandler)

				r.Post("/{id}/assist/summarize", assistHandler.SummarizeAccountHandler)
				r.Post("/{id}/assist/suggest", assistHandler.SuggestActionsHandler)
			})

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", contactHandler.ListHandler)
				r.Post("/", contactHandler.CreateHandler)
				r.Get("/{id}", contactHandler.GetHandler)
				r.Put("/{id}", contactHandler.UpdateHandler)
				r.Delete("/{id}", contactHandler.DeleteHandler)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", productHandler.ListHandler)
				r.Post("/", productHandler.CreateHandler)
				r.Get("/{id}", productHandler.GetHandler)
				r.Put("/{id}", productHandler.UpdateHandler)
				r.Delete("/{id}", productHandler.DeleteHandler)
			})

			r.Route("/call-notes", func(r chi.Router) {
				r.Post("/", callNoteHandler.CreateHandler)
				r.Get("/{id}", callNoteHandler.GetHandler)
				r.Put("/{id}", callNoteHandler.UpdateHandler)
				r.Delete("/{id}", callNoteHandler.DeleteHandler)
			})

			r.Route("/shipping-locations", func(r chi.Router) {
				r.Post("/", shippingHandler.CreateHandler)
				r.Get("/{id}", shippingHandler.GetHandler)
				r.Delete("/{id}", shippingHandler.DeleteHandler)
			})

			r.Post("/assist/transcribe", assistHandler.TranscribeHandler)
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminMiddleware(cfg.Admin.Token))

			r.Post("/admin/backfill", adminHandler.BackfillHandler)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := db.AutoMigrate(
		&identity.Principal{},
		&model.Company{},
		&model.UserProfile{},
		&model.Account{},
		&model.Contact{},
		&model.Product{},
		&model.AccountProduct{},
		&model.ShippingLocation{},
		&model.CallNote{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return db, nil
}

func loggingMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					log.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
