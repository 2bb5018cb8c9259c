package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/acasal/gastos/internal/auth"
	"github.com/acasal/gastos/internal/category"
	categoryStore "github.com/acasal/gastos/internal/category/store"
	"github.com/acasal/gastos/internal/config"
	"github.com/acasal/gastos/internal/database"
	"github.com/acasal/gastos/internal/environment"
	environmentStore "github.com/acasal/gastos/internal/environment/store"
	"github.com/acasal/gastos/internal/expense"
	expenseStore "github.com/acasal/gastos/internal/expense/store"
	gastosHttp "github.com/acasal/gastos/internal/http"
	categoryHandler "github.com/acasal/gastos/internal/http/category"
	environmentHandler "github.com/acasal/gastos/internal/http/environment"
	expenseHandler "github.com/acasal/gastos/internal/http/expense"
	invitationHandler "github.com/acasal/gastos/internal/http/invitation"
	personHandler "github.com/acasal/gastos/internal/http/person"
	"github.com/acasal/gastos/internal/invitation"
	invitationStore "github.com/acasal/gastos/internal/invitation/store"
	"github.com/acasal/gastos/internal/logging"
	"github.com/acasal/gastos/internal/person"
	personStore "github.com/acasal/gastos/internal/person/store"
)

func main() {
	_ = godotenv.Load()

	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.PoolConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.DB.ConnMaxIdleTime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	var (
		personService      = person.NewService(personStore.New(db))
		environmentService = environment.NewService(environmentStore.New(db))
		invitationService  = invitation.NewService(invitationStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db))
		expenseService     = expense.NewService(expenseStore.New(db))
	)

	var (
		peopleH       = personHandler.NewHandler(personService, jwtManager)
		environmentsH = environmentHandler.NewHandler(environmentService)
		invitationsH  = invitationHandler.NewHandler(invitationService)
		categoriesH   = categoryHandler.NewHandler(categoryService)
		expensesH     = expenseHandler.NewHandler(expenseService)
	)

	router := gastosHttp.New(jwtManager, cfg.Server.AllowedOrigins,
		peopleH, environmentsH, invitationsH, categoriesH, expensesH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
