// oncocli is a smoke client for the SDK: it signs in, pulls the user's
// profile, appointments and notifications, and signs out again. It exists to
// exercise the full pipeline against a live backend.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/oncoflow/mobilecore/internal/config"
	"github.com/oncoflow/mobilecore/internal/lifecycle"
	"github.com/oncoflow/mobilecore/internal/transport"
	"github.com/oncoflow/mobilecore/pkg/logger"
	"github.com/oncoflow/mobilecore/repository/boltdb"
	accountUC "github.com/oncoflow/mobilecore/usecase/account"
	clinicalUC "github.com/oncoflow/mobilecore/usecase/clinical"
	"github.com/oncoflow/mobilecore/usecase/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(10*time.Second, zapLogger)
	manager.Listen(cancel)

	keystore, err := boltdb.Open(cfg.Keystore.Path)
	if err != nil {
		zapLogger.Fatal("failed to open keystore", zap.Error(err))
	}
	manager.Register("keystore", func(ctx context.Context) error {
		return keystore.Close()
	})

	wire := transport.NewClient(transport.Config{
		BaseURL:        cfg.Origin(),
		RequestTimeout: cfg.API.RequestTimeout,
		UserAgent:      cfg.API.UserAgent,
	}, zapLogger)

	sess := session.New(keystore, wire, session.Config{
		LoginPath:      cfg.Auth.LoginPath,
		RefreshPath:    cfg.Auth.RefreshPath,
		LogoutPath:     cfg.Auth.LogoutPath,
		RefreshTimeout: cfg.Auth.RefreshTimeout,
		WaiterDeadline: cfg.Auth.WaiterDeadline,
	}, zapLogger)

	go func() {
		select {
		case err := <-sess.Terminated():
			zapLogger.Warn("session terminated", zap.Error(err))
			cancel()
		case <-appCtx.Done():
		}
	}()

	account := accountUC.New(sess, zapLogger)
	clinical := clinicalUC.New(sess, zapLogger)

	email := os.Getenv("ONCOFLOW_EMAIL")
	password := os.Getenv("ONCOFLOW_PASSWORD")
	if email != "" && password != "" {
		if _, err := account.Login(appCtx, email, password); err != nil {
			zapLogger.Fatal("login failed", zap.Error(err))
		}
	}

	user, err := account.Me(appCtx)
	if err != nil {
		zapLogger.Fatal("profile fetch failed", zap.Error(err))
	}
	zapLogger.Info("signed in",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role))

	appts, err := clinical.Appointments(appCtx, clinicalUC.AppointmentQuery{})
	if err != nil {
		zapLogger.Error("appointments fetch failed", zap.Error(err))
	} else {
		zapLogger.Info("appointments fetched", zap.Int("count", len(appts)))
	}

	notes, err := clinical.Notifications(appCtx, true)
	if err != nil {
		zapLogger.Error("notifications fetch failed", zap.Error(err))
	} else {
		zapLogger.Info("unread notifications", zap.Int("count", len(notes)))
	}

	if os.Getenv("ONCOFLOW_LOGOUT") == "true" {
		if err := account.Logout(appCtx); err != nil {
			zapLogger.Error("logout failed", zap.Error(err))
		}
	}

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
