package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	httpapi "tandoor-ordering/checkout-svc/internal/api/http"
	"tandoor-ordering/checkout-svc/internal/backend"
	"tandoor-ordering/checkout-svc/internal/service"
	"tandoor-ordering/checkout-svc/internal/storage"
	"tandoor-ordering/config"
)

const checkoutEventsTopic = "checkout-events"

func main() {
	logger := config.NewLogger("checkout-svc")
	defer logger.Sync()

	settings := service.DefaultSettings()
	if path := os.Getenv("CHECKOUT_CONFIG"); path != "" {
		loaded, err := service.LoadSettings(path)
		if err != nil {
			logger.Fatal("failed to load checkout settings", zap.String("path", path), zap.Error(err))
		}
		settings = loaded
	}
	settingsStore := service.NewSettingsStore(settings)

	rdb := config.MustInitRedis(logger)
	defer rdb.Close()
	store := storage.NewRedisStore(rdb, config.GetEnvDuration("CART_TTL", 7*24*time.Hour))

	kafkaWriter := config.NewKafkaWriter(checkoutEventsTopic)
	defer kafkaWriter.Close()

	client := backend.NewClient(
		config.GetEnv("API_BASE", "http://localhost/api"),
		&http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		config.GetEnvDuration("BACKEND_TIMEOUT", 10*time.Second),
	)

	hours := service.NewHoursService(client, store, settingsStore, logger, config.GetEnvDuration("HOURS_CACHE_TTL", time.Minute))
	carts := service.NewCartService(store, settingsStore)
	controller := service.NewController(service.ControllerDeps{
		Backend:   client,
		Carts:     carts,
		Sessions:  store,
		Slots:     hours,
		Publisher: storage.NewKafkaPublisher(kafkaWriter),
		QR:        service.DefaultQRGenerator{BaseURL: settings.PublicBaseURL},
		Settings:  settingsStore,
		Logger:    logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go hours.Run(ctx, config.GetEnvDuration("HOURS_REFRESH_INTERVAL", 5*time.Minute))

	handler := httpapi.NewHandler(controller, carts, hours, settingsStore, logger)
	srv := &http.Server{
		Addr:              ":" + config.GetEnv("PORT", "8084"),
		Handler:           httpapi.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("checkout service starting", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
}
