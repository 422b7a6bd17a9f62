package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsync/internal/common/clock"
	"github.com/KirkDiggler/roomsync/internal/engine"
	"github.com/KirkDiggler/roomsync/internal/models"
	identityRepo "github.com/KirkDiggler/roomsync/internal/repositories/identity"
	"github.com/KirkDiggler/roomsync/internal/repositories/localstore"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	"github.com/KirkDiggler/roomsync/internal/services/command"
	"github.com/KirkDiggler/roomsync/internal/services/session"
	"github.com/KirkDiggler/roomsync/internal/services/view"
)

type config struct {
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RoomID        string `env:"ROOM_ID" envDefault:"sala"`
	NATSURL       string `env:"NATS_URL"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	IdentityFile  string `env:"IDENTITY_FILE" envDefault:"roomclient.json"`
	Nickname      string `env:"NICKNAME"`
	IsGM          bool   `env:"IS_GM" envDefault:"false"`
}

// logObserver prints what a screen would show
type logObserver struct{}

func (logObserver) ViewChanged(v *view.View) {
	if v.Room == nil {
		return
	}
	log.Debug().
		Str("status", string(v.Room.Status)).
		Int("phase", v.Room.GamePhase).
		Int("players", len(v.Room.Players)).
		Strs("unread", v.Unread).
		Msg("view changed")
}

func (logObserver) ClockChanged(display string) {
	log.Debug().Str("clock", display).Msg("clock")
}

func (logObserver) Navigate(screen view.Screen) {
	log.Info().Str("screen", string(screen)).Msg("navigate")
}

func (logObserver) Unread(tabs []string) {
	log.Info().Str("tabs", strings.Join(tabs, ",")).Msg("new messages")
}

func (logObserver) IdentityChanged(identity *models.Identity) {
	if identity == nil {
		log.Info().Msg("logged out")
		return
	}
	log.Info().Str("player_id", identity.ID).Str("nickname", identity.Nickname).Msg("logged in")
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse environment")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	systemClock := clock.New()

	roomConfig := &roomRepo.Config{RedisClient: redisClient}
	if cfg.NATSURL != "" {
		natsConfig := roomRepo.DefaultNATSConfig()
		natsConfig.URL = cfg.NATSURL

		notifier, err := roomRepo.NewNATSNotifier(natsConfig)
		if err != nil {
			log.Fatal().Err(err).Str("url", cfg.NATSURL).Msg("failed to connect to NATS")
		}
		defer notifier.Close()
		roomConfig.Notifier = notifier
	}

	rooms, err := roomRepo.NewRedis(roomConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create room repository")
	}

	identities, err := identityRepo.NewRedis(&identityRepo.Config{
		RedisClient: redisClient,
		Clock:       systemClock,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create identity repository")
	}

	store, err := localstore.NewFile(cfg.IdentityFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.IdentityFile).Msg("failed to open identity file")
	}

	sessions, err := session.NewService(&session.Config{
		RoomRepository:     rooms,
		IdentityRepository: identities,
		LocalStore:         store,
		Clock:              systemClock,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session service")
	}

	client, err := engine.New(&engine.Config{
		RoomID:         cfg.RoomID,
		RoomRepository: rooms,
		SessionService: sessions,
		LocalStore:     store,
		Effects:        command.LogEffects{},
		Observer:       logObserver{},
		Clock:          systemClock,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create room client")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := client.Run(ctx); err != nil {
			log.Error().Err(err).Msg("room client stopped")
			cancel()
		}
	}()

	identity, err := client.Restore(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to restore session")
	}

	if identity == nil && cfg.Nickname != "" {
		if _, err := client.Login(ctx, cfg.Nickname, cfg.IsGM); err != nil {
			log.Fatal().Err(err).Msg("failed to log in")
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	case <-ctx.Done():
	}

	cancel()
	<-client.Done()

	log.Info().Msg("room client shutdown complete")
}
