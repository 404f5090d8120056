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

	"github.com/prometheus/client_golang/prometheus"

	restctx "github.com/shooping/list-server/internal/api/rest/context"
	"github.com/shooping/list-server/internal/api/rest/handler"
	"github.com/shooping/list-server/internal/api/rest/router"
	restServer "github.com/shooping/list-server/internal/api/rest/server"
	"github.com/shooping/list-server/internal/config"
	"github.com/shooping/list-server/internal/google"
	"github.com/shooping/list-server/internal/logger"
	"github.com/shooping/list-server/internal/metrics"
	"github.com/shooping/list-server/internal/model"
	"github.com/shooping/list-server/internal/repository/postgres"
	"github.com/shooping/list-server/internal/server"
	"github.com/shooping/list-server/internal/service"
	"github.com/shooping/list-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	listRepo := postgres.NewShoppingListRepository(db)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	codec := token.NewJWT(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTTL)
	engine := service.NewRotationEngine(codec, refreshTokenRepo, userRepo, cfg.JWT.RefreshTTL, logger, m)
	verifier := google.NewIDTokenVerifier(cfg.Google.ClientID)
	sessionService := service.NewSession(userRepo, roleRepo, codec, engine, verifier, cfg.JWT.AccessTTL, logger, m)
	listService := service.NewShoppingList(listRepo, logger)

	ctxMgr := restctx.NewManager()
	cookies := handler.NewCookies(cfg.Cookie)
	authHandler := handler.NewAuth(sessionService, cookies, ctxMgr, cfg.JWT.RefreshTTL, logger)
	listHandler := handler.NewShoppingList(listService, ctxMgr, logger)

	r := router.New(authHandler, listHandler, sessionService, ctxMgr, registry, logger)
	httpServer := restServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

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
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
