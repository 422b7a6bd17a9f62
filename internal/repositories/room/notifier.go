package room

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Notifier fans out "room changed" signals carrying the new version. Signals
// may be coalesced: a subscriber only needs the latest version because it
// re-reads the whole document.
type Notifier interface {
	// Publish announces that the room reached a version
	Publish(ctx context.Context, roomID string, version int64) error

	// Subscribe returns a channel of versions that stays open until ctx is done
	Subscribe(ctx context.Context, roomID string) (<-chan int64, error)
}

// changeSubject is the pub/sub channel for a room's change signals
func changeSubject(roomID string) string {
	return "room." + roomID + ".changes"
}

// offerLatest hands a version to a single-slot channel, replacing a stale
// pending version instead of blocking
func offerLatest(ch chan int64, version int64) {
	for {
		select {
		case ch <- version:
			return
		default:
		}
		select {
		case pending := <-ch:
			if pending > version {
				version = pending
			}
		default:
		}
	}
}

// redisNotifier implements Notifier with Redis pub/sub
type redisNotifier struct {
	client *redis.Client
}

// NewRedisNotifier creates a Notifier on Redis pub/sub
func NewRedisNotifier(client *redis.Client) *redisNotifier {
	return &redisNotifier{client: client}
}

func (n *redisNotifier) Publish(ctx context.Context, roomID string, version int64) error {
	if err := n.client.Publish(ctx, changeSubject(roomID), version).Err(); err != nil {
		return fmt.Errorf("failed to publish change: %w", err)
	}
	return nil
}

func (n *redisNotifier) Subscribe(ctx context.Context, roomID string) (<-chan int64, error) {
	pubsub := n.client.Subscribe(ctx, changeSubject(roomID))

	// Wait for the subscription confirmation so no publish is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	out := make(chan int64, 1)
	messages := pubsub.Channel()

	go func() {
		defer pubsub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				version, err := strconv.ParseInt(msg.Payload, 10, 64)
				if err != nil {
					log.Warn().Err(err).Str("room_id", roomID).Msg("ignoring malformed change signal")
					continue
				}
				offerLatest(out, version)
			}
		}
	}()

	return out, nil
}

// NATSConfig holds configuration for the NATS notifier
type NATSConfig struct {
	URL           string
	MaxReconnects int
	ReconnectWait time.Duration
}

// DefaultNATSConfig returns default NATS notifier configuration
func DefaultNATSConfig() NATSConfig {
	return NATSConfig{
		URL:           nats.DefaultURL,
		MaxReconnects: -1, // Infinite
		ReconnectWait: 2 * time.Second,
	}
}

// natsNotifier implements Notifier with core NATS subjects
type natsNotifier struct {
	nc *nats.Conn
}

// NewNATSNotifier connects to NATS and returns a Notifier on it
func NewNATSNotifier(cfg NATSConfig) (*natsNotifier, error) {
	if cfg.URL == "" {
		return nil, errors.New("NATS URL cannot be empty")
	}

	opts := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	return &natsNotifier{nc: nc}, nil
}

func (n *natsNotifier) Publish(ctx context.Context, roomID string, version int64) error {
	if err := n.nc.Publish(changeSubject(roomID), []byte(strconv.FormatInt(version, 10))); err != nil {
		return fmt.Errorf("publish change: %w", err)
	}
	return nil
}

func (n *natsNotifier) Subscribe(ctx context.Context, roomID string) (<-chan int64, error) {
	out := make(chan int64, 1)

	sub, err := n.nc.Subscribe(changeSubject(roomID), func(msg *nats.Msg) {
		version, err := strconv.ParseInt(string(msg.Data), 10, 64)
		if err != nil {
			log.Warn().Err(err).Str("room_id", roomID).Msg("ignoring malformed change signal")
			return
		}
		offerLatest(out, version)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe to changes: %w", err)
	}

	// Make sure the server registered the interest before the caller reads
	if err := n.nc.Flush(); err != nil {
		sub.Unsubscribe()
		return nil, fmt.Errorf("flush subscription: %w", err)
	}

	go func() {
		<-ctx.Done()
		if err := sub.Unsubscribe(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
			log.Warn().Err(err).Str("room_id", roomID).Msg("failed to unsubscribe from changes")
		}
	}()

	return out, nil
}

// Close drains and closes the NATS connection
func (n *natsNotifier) Close() error {
	if n.nc == nil {
		return nil
	}
	return n.nc.Drain()
}
