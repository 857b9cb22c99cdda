// Package app wires the collaborators together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payments-api/config"
	"payments-api/internal/controller/rest"
	"payments-api/internal/controller/rest/handlers"
	"payments-api/internal/domain/payment"
	"payments-api/internal/external/kafka"
	payment_repo "payments-api/internal/repo/payment"
	"payments-api/pkg/health"
	"payments-api/pkg/logger"
	"payments-api/pkg/postgres"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func Run(cfg config.Config) {
	l := logger.New(cfg.LogLevel, cfg.LogConsole)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := ApplyMigrations(cfg.PgURL, MigrationFS); err != nil {
		l.Fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	pg, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	publisher := kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaNotificationsTopic)
	defer publisher.Close()

	paymentRepo := payment_repo.NewPgPaymentRepo(pg)
	paymentService := payment.NewService(paymentRepo, publisher, l)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	checks := health.NewRegistry(
		health.NewPostgresChecker(pg.Pool),
		health.NewKafkaChecker(cfg.KafkaBrokers),
	)

	engine := NewGinEngine(l)
	rest.NewRouter(paymentHandler, checks).SetUp(engine)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l.Info("starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		l.Info("shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		l.Fatal(fmt.Errorf("app - Run: %w", err))
	}
}
