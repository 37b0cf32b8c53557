package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"insurancebot/config"
	"insurancebot/dispatch"
	"insurancebot/flow"
	"insurancebot/handler"
	"insurancebot/health"
	"insurancebot/repo"
)

func main() {
	// Local development convenience; the environment wins in production.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	setupLogger(cfg)

	if err := flow.ValidateTable(); err != nil {
		log.Fatal().Err(err).Msg("transition table is inconsistent")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := newSessionStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing session store")
	}

	sender := handler.NewTelegramSender()
	dispatcher := dispatch.NewDispatcher(sender, cfg.ManagerChatID, log.Logger)
	engine := flow.NewEngine(store, dispatcher, log.Logger)
	h := handler.New(engine, log.Logger)

	opts := []bot.Option{
		bot.WithDefaultHandler(h.Handle),
	}
	b, err := bot.New(cfg.TelegramBotToken, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating bot")
	}
	sender.Bind(b)

	hs := health.New(cfg.Port)
	go func() {
		if err := hs.Run(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("health server stopped")
		}
	}()

	log.Info().
		Str("session_backend", cfg.SessionBackend).
		Bool("manager_channel", cfg.ManagerChatID != 0).
		Msg("bot starting")

	b.Start(ctx)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error shutting down health server")
	}
	log.Info().Msg("bot stopped")
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func newSessionStore(ctx context.Context, cfg *config.Config) (repo.SessionStore, error) {
	switch cfg.SessionBackend {
	case config.BackendRedis:
		return repo.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.SessionTTL)
	case config.BackendFirebase:
		return repo.NewFirebaseStore(ctx, cfg.FirebaseCredentialsPath, cfg.FirebaseDatabaseURL)
	default:
		return repo.NewMemoryStore(), nil
	}
}
