package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto-wallet-client/config"
	"crypto-wallet-client/internal/adapter/backend"
	"crypto-wallet-client/internal/adapter/credstore"
	httpHandler "crypto-wallet-client/internal/adapter/http/handler"
	"crypto-wallet-client/internal/service"
	"crypto-wallet-client/pkg/logger"

	"github.com/go-playground/validator/v10"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("backend", cfg.Backend.BaseURL).
		Str("ui_addr", cfg.UI.Addr()).
		Msg("Starting wallet client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Credential persistence (the client's only durable state)
	creds, err := credstore.NewFileStore(cfg.Session.CredentialFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize credential store")
	}

	// Backend adapters
	apiClient := backend.NewClient(cfg.Backend.BaseURL, creds, log)
	pushClient := backend.NewPushClient(cfg.Backend, log)

	// Controllers
	decoder := service.NewTokenDecoder()
	validate := validator.New()
	session := service.NewSessionService(apiClient, creds, decoder, validate, log)
	rate := service.NewRateService(cfg.Rate, log)
	rate.Start(ctx)
	wallet := service.NewWalletService(apiClient, creds, rate, log)
	live := service.NewLiveUpdateService(pushClient, wallet, log)
	defer live.Close()

	// A credential surviving from a prior run re-establishes the session:
	// refresh wallet state and resume the push subscription.
	if identity := session.Identity(); identity != nil {
		if err := wallet.LoadAccount(ctx); err != nil {
			log.Warn().Err(err).Msg("startup account load failed")
		}
		if err := wallet.LoadTransactions(ctx); err != nil {
			log.Warn().Err(err).Msg("startup transaction load failed")
		}
		live.Track(identity)
	}

	// Local UI server
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Session: session,
		Wallet:  wallet,
		Live:    live,
		Backend: apiClient,
		Logger:  log,
		Mode:    ginMode(cfg.UI.Mode),
	})

	srv := &http.Server{
		Addr:    cfg.UI.Addr(),
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.UI.Addr()).Msg("UI server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("UI server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("UI server shutdown failed")
	}
	log.Info().Msg("Bye")
}

func ginMode(mode string) string {
	switch mode {
	case "debug", "release", "test":
		return mode
	default:
		return "release"
	}
}
