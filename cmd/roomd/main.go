package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsync/internal/catalog"
	"github.com/KirkDiggler/roomsync/internal/common/clock"
	"github.com/KirkDiggler/roomsync/internal/common/uuid"
	"github.com/KirkDiggler/roomsync/internal/handlers/gateway"
	identityRepo "github.com/KirkDiggler/roomsync/internal/repositories/identity"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	"github.com/KirkDiggler/roomsync/internal/services/command"
	"github.com/KirkDiggler/roomsync/internal/services/messaging"
	"github.com/KirkDiggler/roomsync/internal/services/room"
	"github.com/KirkDiggler/roomsync/internal/services/vote"
)

type config struct {
	RedisAddr         string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword     string        `env:"REDIS_PASSWORD"`
	RedisDB           int           `env:"REDIS_DB" envDefault:"0"`
	RoomID            string        `env:"ROOM_ID" envDefault:"sala"`
	NATSURL           string        `env:"NATS_URL"`
	GatewayAddr       string        `env:"GATEWAY_ADDR" envDefault:":8080"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	CatalogPath       string        `env:"CATALOG_PATH"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL" envDefault:"30s"`
	PlayerRetention   time.Duration `env:"PLAYER_RETENTION" envDefault:"10m"`
}

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse environment")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect to Redis")
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	systemClock := clock.New()
	ids := uuid.New()

	roomConfig := &roomRepo.Config{
		RedisClient: redisClient,
		IDGenerator: ids,
	}

	// Change signals go over NATS when configured, Redis pub/sub otherwise
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

	// Initialize repositories
	rooms, err := roomRepo.NewRedis(roomConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create room repository")
	}

	identities, err := identityRepo.NewRedis(&identityRepo.Config{
		RedisClient: redisClient,
		IDGenerator: ids,
		Clock:       systemClock,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create identity repository")
	}

	// Initialize services
	votes, err := vote.NewService(&vote.Config{
		RoomRepository: rooms,
		Catalog:        cat,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create vote service")
	}

	roomService, err := room.NewService(&room.Config{
		RoomRepository: rooms,
		VoteService:    votes,
		Catalog:        cat,
		Clock:          systemClock,
		UUIDGenerator:  ids,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create room service")
	}

	commands, err := command.NewService(&command.Config{
		RoomRepository: rooms,
		Catalog:        cat,
		Clock:          systemClock,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create command service")
	}

	texts, err := messaging.NewService(&messaging.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create messaging service")
	}

	gatewayServer, err := gateway.NewServer(&gateway.Config{
		RoomID:             cfg.RoomID,
		RoomRepository:     rooms,
		IdentityRepository: identities,
		RoomService:        roomService,
		CommandService:     commands,
		MessagingService:   texts,
		Catalog:            cat,
		Clock:              systemClock,
		HeartbeatInterval:  cfg.HeartbeatInterval,
		Retention:          cfg.PlayerRetention,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create gateway")
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", gatewayServer)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:        cfg.GatewayAddr,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("room_id", cfg.RoomID).
			Bool("nats", cfg.NATSURL != "").
			Msg("room gateway starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	// Hijacked connections are not tracked by the HTTP server
	gatewayServer.Close()

	log.Info().Msg("room gateway shutdown complete")
}
