package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/roomsync/internal/common/clock"
	"github.com/KirkDiggler/roomsync/internal/common/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	subjectKeyPrefix = "identity:subject:"
)

// ErrSubjectRequired is returned when a sign-out names no subject
var ErrSubjectRequired = errors.New("subject cannot be empty")

// Config holds configuration for the Redis identity repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// IDGenerator creates new subjects; defaults to random UUIDs
	IDGenerator uuid.Generator

	// Clock stamps sign-ins; defaults to the system clock
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ids    uuid.Generator
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed identity repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ids := cfg.IDGenerator
	if ids == nil {
		ids = uuid.New()
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ids:    ids,
		clock:  clk,
	}, nil
}

// SignInAnonymously reuses a registered previous subject or registers a new one
func (r *redisRepository) SignInAnonymously(ctx context.Context, input *SignInInput) (*SignInOutput, error) {
	if input == nil {
		input = &SignInInput{}
	}

	now := r.clock.Now().UTC()

	if input.PreviousSubject != "" {
		key := subjectKeyPrefix + input.PreviousSubject
		recordJSON, err := r.client.Get(ctx, key).Result()
		switch {
		case err == nil:
			var record subjectRecord
			if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
				return nil, fmt.Errorf("failed to unmarshal subject: %w", err)
			}
			record.LastSignIn = now
			if err := r.save(ctx, &record); err != nil {
				return nil, err
			}
			return &SignInOutput{Subject: record.Subject, Restored: true}, nil
		case !errors.Is(err, redis.Nil):
			return nil, fmt.Errorf("failed to get subject: %w", err)
		}
	}

	record := &subjectRecord{
		Subject:    r.ids.NewSubject(),
		CreatedAt:  now,
		LastSignIn: now,
	}
	if err := r.save(ctx, record); err != nil {
		return nil, err
	}

	return &SignInOutput{Subject: record.Subject}, nil
}

// SignOut removes the subject from the registry
func (r *redisRepository) SignOut(ctx context.Context, input *SignOutInput) error {
	if input == nil || input.Subject == "" {
		return ErrSubjectRequired
	}

	if err := r.client.Del(ctx, subjectKeyPrefix+input.Subject).Err(); err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}

	return nil
}

func (r *redisRepository) save(ctx context.Context, record *subjectRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal subject: %w", err)
	}

	if err := r.client.Set(ctx, subjectKeyPrefix+record.Subject, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save subject: %w", err)
	}

	return nil
}
