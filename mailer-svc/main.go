package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tandoor-ordering/config"
	httpapi "tandoor-ordering/mailer-svc/internal/api/http"
	"tandoor-ordering/mailer-svc/internal/service"
)

func main() {
	logger := config.NewLogger("mailer-svc")
	defer logger.Sync()

	user := config.GetEnv("SMTP_USER", "")
	sender := &service.SMTPSender{
		Host:     config.GetEnv("SMTP_HOST", "localhost"),
		Port:     config.GetEnvInt("SMTP_PORT", 587),
		Username: user,
		Password: config.GetEnv("SMTP_PASS", ""),
		Timeout:  config.GetEnvDuration("SMTP_TIMEOUT", 15*time.Second),
	}
	mailer := service.NewMailer(
		sender,
		config.GetEnv("SMTP_FROM", `"Tandoor Website" <`+user+`>`),
		config.GetEnv("SMTP_TO", "management@tandoorhayward.com"),
		logger,
	)

	srv := &http.Server{
		Addr:              ":" + config.GetEnv("PORT", "8086"),
		Handler:           httpapi.NewRouter(httpapi.NewHandler(mailer, logger)),
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

	logger.Info("mailer service starting", zap.String("addr", srv.Addr), zap.String("smtp_host", sender.Host))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
}
