package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"tandoor-ordering/api-gateway/internal/gateway"
	"tandoor-ordering/config"
)

func main() {
	logger := config.NewLogger("api-gateway")
	defer logger.Sync()

	cfg := gateway.Config{
		CheckoutSvcURL:  config.GetEnv("CHECKOUT_SVC_URL", "http://localhost:8084"),
		MailerSvcURL:    config.GetEnv("MAILER_SVC_URL", "http://localhost:8086"),
		ReconcileSvcURL: config.GetEnv("RECONCILE_SVC_URL", "http://localhost:8085"),
		FrontendDir:     config.GetEnv("FRONTEND_DIR", "./frontend"),
	}

	client := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   config.GetEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),
	}
	gw := gateway.NewGateway(cfg, client, logger)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := otelhttp.NewHandler(c.Handler(gw.SetupRoutes()), "api-gateway")

	srv := &http.Server{
		Addr:              ":" + config.GetEnv("PORT", "8080"),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("api gateway starting", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
}
