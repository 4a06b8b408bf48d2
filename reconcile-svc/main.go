package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tandoor-ordering/config"
	httpapi "tandoor-ordering/reconcile-svc/internal/api/http"
	"tandoor-ordering/reconcile-svc/internal/service"
	"tandoor-ordering/reconcile-svc/internal/storage"
)

const (
	checkoutEventsTopic = "checkout-events"
	consumerGroup       = "reconcile-svc-consumer"
)

func main() {
	logger := config.NewLogger("reconcile-svc")
	defer logger.Sync()

	db := config.MustInitPostgres(logger)
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	reconciler := service.NewReconciler(storage.NewPostgresRepository(db), logger)

	reader := config.NewKafkaReader(checkoutEventsTopic, consumerGroup)
	defer reader.Close()
	consumer := service.NewConsumer(reader, reconciler, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		consumer.Start(ctx)
	}()

	srv := &http.Server{
		Addr:              ":" + config.GetEnv("PORT", "8085"),
		Handler:           httpapi.NewRouter(httpapi.NewHandler(reconciler, logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("reconcile service starting", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
	wg.Wait()
}
