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

	"github.com/bitvara/backoffice/internal/audit"
	"github.com/bitvara/backoffice/internal/auth"
	"github.com/bitvara/backoffice/internal/authz"
	"github.com/bitvara/backoffice/internal/config"
	"github.com/bitvara/backoffice/internal/email"
	"github.com/bitvara/backoffice/internal/handler"
	"github.com/bitvara/backoffice/internal/middleware"
	"github.com/bitvara/backoffice/internal/repository"
	"github.com/bitvara/backoffice/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
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
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	memberRepo := repository.NewMembershipRepository(db)
	planRepo := repository.NewPlanRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	permissionRepo := repository.NewOrganizationPermissionRepository(db)
	clientRepo := repository.NewClientRepository(db)
	itemRepo := repository.NewItemRepository(db)

	// Auth primitives
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	emailService, err := email.NewEmailService(cfg, emailProvider(cfg))
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	// Authorization
	resolver := authz.NewResolver(orgRepo, memberRepo)
	policy := authz.NewPolicy(memberRepo)
	gate := authz.NewGate(subRepo, planRepo, memberRepo)
	gate.RegisterCounter(service.FeatureClientsLimit, func(ctx context.Context, orgID uuid.UUID) (int, error) {
		count, err := clientRepo.CountForOrganization(ctx, orgID)
		return int(count), err
	})

	// Services
	userService := service.NewUserService(userRepo, passwordHasher, tokenManager, emailService, cfg)
	orgService := service.NewOrganizationService(orgRepo, policy)
	memberService := service.NewMemberService(memberRepo, userRepo, policy, gate, passwordHasher, emailService, cfg)
	planService := service.NewPlanService(planRepo)
	subService := service.NewSubscriptionService(subRepo, planRepo, policy)
	permissionService := service.NewPermissionService(permissionRepo, policy)
	clientService := service.NewClientService(clientRepo, gate)
	inventoryService := service.NewInventoryService(itemRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(userService, orgService)
	orgHandler := handler.NewOrganizationHandler(orgService)
	memberHandler := handler.NewMemberHandler(memberService)
	planHandler := handler.NewPlanHandler(planService)
	subHandler := handler.NewSubscriptionHandler(subService)
	permissionHandler := handler.NewPermissionHandler(permissionService)
	clientHandler := handler.NewClientHandler(clientService)
	itemHandler := handler.NewItemHandler(inventoryService)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.OrganizationHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/auth/signup", authHandler.SignupHandler)
			r.Post("/auth/login", authHandler.LoginHandler)
		})

		r.Get("/plans", planHandler.ListHandler)
		r.Get("/plans/{plan}", planHandler.GetHandler)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager, userRepo))
			r.Use(middleware.OrganizationContext(resolver))
			r.Use(audit.Middleware(audit.NewGormLogger(db)))

			r.Get("/auth/me", authHandler.MeHandler)
			r.Put("/current-organization", orgHandler.SelectCurrentHandler)

			r.Route("/organizations", func(r chi.Router) {
				r.Get("/", orgHandler.ListHandler)
				r.Post("/", orgHandler.CreateHandler)
				r.Get("/current", orgHandler.CurrentHandler)

				r.Route("/{organization}", func(r chi.Router) {
					r.Get("/", orgHandler.GetHandler)
					r.Patch("/", orgHandler.UpdateHandler)
					r.Delete("/", orgHandler.DeleteHandler)
					r.Post("/select", orgHandler.SelectHandler)

					r.Route("/members", func(r chi.Router) {
						r.Get("/", memberHandler.ListHandler)
						r.Post("/", memberHandler.AddHandler)
						r.Patch("/{user}", memberHandler.UpdateRoleHandler)
						r.Delete("/{user}", memberHandler.RemoveHandler)
					})

					r.Route("/subscription", func(r chi.Router) {
						r.Get("/", subHandler.CurrentHandler)
						r.Get("/history", subHandler.HistoryHandler)
						r.Post("/", subHandler.SubscribeHandler)
						r.Post("/cancel", subHandler.CancelHandler)
						r.Post("/renew", subHandler.RenewHandler)
					})

					r.Route("/permissions", func(r chi.Router) {
						r.Get("/", permissionHandler.ListHandler)
						r.Post("/", permissionHandler.CreateHandler)
					})
				})
			})

			r.Route("/clients", func(r chi.Router) {
				r.Use(middleware.RequireModule(resolver, gate, service.ModuleClientManagement))

				r.Get("/", clientHandler.ListHandler)
				r.Post("/", clientHandler.CreateHandler)
				r.Get("/{client}", clientHandler.GetHandler)
				r.Patch("/{client}", clientHandler.UpdateHandler)
				r.Delete("/{client}", clientHandler.DeleteHandler)
			})

			r.Route("/items", func(r chi.Router) {
				r.Get("/", itemHandler.ListHandler)
				r.Post("/", itemHandler.CreateHandler)
				r.Get("/categories", itemHandler.ListCategoriesHandler)
				r.Get("/{item}", itemHandler.GetHandler)
				r.Patch("/{item}", itemHandler.UpdateHandler)
				r.Delete("/{item}", itemHandler.DeleteHandler)
				r.Get("/{item}/movements", itemHandler.ListMovementsHandler)
				r.Post("/{item}/movements", itemHandler.RecordMovementHandler)
			})
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func emailProvider(cfg *config.Config) email.Provider {
	if cfg.Sendgrid.APIKey != "" {
		return email.ProviderSendgrid
	}
	return email.ProviderSMTP
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
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

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
