package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/dtroode/newsletter-server/internal/api/http/context"
	"github.com/dtroode/newsletter-server/internal/api/http/router"
	httpServer "github.com/dtroode/newsletter-server/internal/api/http/server"
	"github.com/dtroode/newsletter-server/internal/config"
	"github.com/dtroode/newsletter-server/internal/logger"
	"github.com/dtroode/newsletter-server/internal/mailer"
	"github.com/dtroode/newsletter-server/internal/model"
	"github.com/dtroode/newsletter-server/internal/repository/postgres"
	"github.com/dtroode/newsletter-server/internal/server"
	"github.com/dtroode/newsletter-server/internal/service"
	storage "github.com/dtroode/newsletter-server/internal/storage/minio"
	"github.com/dtroode/newsletter-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, logger.WithFormat(cfg.LogFormat))

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()
	if err := db.Ping(ctx); err != nil {
		logger.Fatal("database is unreachable", "error", err)
	}
	logger.Info("database ready", "schema_version", db.SchemaVersion)

	subscriberRepo := postgres.NewSubscriberRepository(db)

	sender, err := model.ParseSubscriberEmail(cfg.Email.Sender)
	if err != nil {
		logger.Fatal("invalid sender email", "sender", cfg.Email.Sender, "error", err)
	}
	emailClient := mailer.NewClient(cfg.Email.BaseURL, sender, cfg.Email.AuthorizationToken, cfg.Email.Timeout)

	archive := newIssueArchive(ctx, cfg.Storage, logger)

	subscriptionService := service.NewSubscription(subscriberRepo, token.NewConfirmationGenerator(), emailClient, cfg.HTTP.BaseURL, logger)
	confirmationService := service.NewConfirmation(subscriberRepo, logger)
	newsletterService := service.NewNewsletter(subscriberRepo, emailClient, archive, logger)

	tokenManager := token.NewJWT(cfg.Publisher.Secret, cfg.Publisher.TokenTTL)
	r := router.New(subscriptionService, confirmationService, newsletterService, tokenManager, httpctx.NewManager(), logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// newIssueArchive returns nil when the archive is disabled.
func newIssueArchive(ctx context.Context, cfg config.Storage, logger *logger.Logger) model.IssueArchive {
	if !cfg.Enabled {
		logger.Info("issue archive disabled")
		return nil
	}

	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}

	archive, err := storage.NewClient(ctx, minioClient, cfg.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize issue archive", "error", err)
	}
	logger.Info("issue archive enabled", "bucket", cfg.Bucket)

	return archive
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
