package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/questlabs/voice-relay/internal/backend"
	"github.com/questlabs/voice-relay/internal/config"
	"github.com/questlabs/voice-relay/internal/db"
	"github.com/questlabs/voice-relay/internal/events"
	"github.com/questlabs/voice-relay/internal/httpapi"
	"github.com/questlabs/voice-relay/internal/httpapi/handlers"
	"github.com/questlabs/voice-relay/internal/profile"
	"github.com/questlabs/voice-relay/internal/relay"
	"github.com/questlabs/voice-relay/internal/store/redisstore"
	"github.com/questlabs/voice-relay/internal/vault"
	"github.com/questlabs/voice-relay/internal/voice"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	creds := vault.FromConfig(cfg)
	if err := creds.Validate(); err != nil {
		log.Error("startup aborted", "err", err)
		os.Exit(1)
	}

	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	sessions := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer sessions.Close()

	var pub *events.Publisher
	if cfg.RabbitURL != "" {
		pub, err = events.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
		if err != nil {
			log.Error("rabbit dial failed", "err", err)
			os.Exit(1)
		}
		defer pub.Close()
	}

	issuer := voice.NewIssuer(creds, cfg)
	be := backend.NewOpenAI(creds.BackendAPIKey, cfg.OpenAIModel, cfg.StreamFirstByteTimeout)
	hydrator := relay.NewHydrator(profile.NewGormStore(gdb), log)
	svc := relay.NewService(hydrator, be, log)

	h := handlers.NewHandler(cfg, issuer, svc, sessions, pub, log)
	r := httpapi.NewRouter(h, creds.SharedSecret)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		log.Info("listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "err", err)
	}
}
