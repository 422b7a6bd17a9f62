package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/roomsync/internal/common/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix     = "room:"
	versionKeySuffix  = ":version"
	defaultMaxRetries = 16
)

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Notifier fans out change signals; defaults to Redis pub/sub on RedisClient
	Notifier Notifier

	// IDGenerator creates push ids; defaults to time-ordered UUIDs
	IDGenerator uuid.Generator

	// MaxRetries bounds optimistic transaction attempts per write
	MaxRetries int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	notifier   Notifier
	ids        uuid.Generator
	maxRetries int
}

// NewRedis creates a new Redis-backed room repository
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

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NewRedisNotifier(cfg.RedisClient)
	}

	ids := cfg.IDGenerator
	if ids == nil {
		ids = uuid.New()
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		notifier:   notifier,
		ids:        ids,
		maxRetries: maxRetries,
	}, nil
}

func documentKey(roomID string) string {
	return roomKeyPrefix + roomID
}

func versionKey(roomID string) string {
	return roomKeyPrefix + roomID + versionKeySuffix
}

// Get reads the current document. A room that was never written yields an
// empty document at version 0.
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrRoomIDRequired
	}

	// MULTI/EXEC so the document and its version come from the same commit
	var docCmd, versionCmd *redis.StringCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		docCmd = pipe.Get(ctx, documentKey(input.RoomID))
		versionCmd = pipe.Get(ctx, versionKey(input.RoomID))
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	data, err := decodeDocument(docCmd)
	if err != nil {
		return nil, err
	}

	version, err := versionCmd.Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to parse room version: %w", err)
	}

	return &GetOutput{
		Document: &Document{
			RoomID:  input.RoomID,
			Version: version,
			Data:    data,
		},
	}, nil
}

// Replace swaps the whole document
func (r *redisRepository) Replace(ctx context.Context, input *ReplaceInput) error {
	if input == nil || input.RoomID == "" {
		return ErrRoomIDRequired
	}

	generic, err := toGeneric(input.Data)
	if err != nil {
		return err
	}

	data, _ := generic.(map[string]any)
	if data == nil {
		data = map[string]any{}
	}

	return r.write(ctx, input.RoomID, func(doc map[string]any) (map[string]any, bool, error) {
		return data, true, nil
	})
}

// Update patches several paths in one optimistic transaction
func (r *redisRepository) Update(ctx context.Context, input *UpdateInput) error {
	if input == nil || input.RoomID == "" {
		return ErrRoomIDRequired
	}

	if len(input.Values) == 0 {
		return nil
	}

	// Shorter paths first so a parent write never clobbers a child in the same batch
	paths := make([]string, 0, len(input.Values))
	for path := range input.Values {
		paths = append(paths, path)
	}
	sort.Slice(paths, func(i, j int) bool {
		di, dj := strings.Count(paths[i], "/"), strings.Count(paths[j], "/")
		if di != dj {
			return di < dj
		}
		return paths[i] < paths[j]
	})

	type change struct {
		segments []string
		value    any
	}
	changes := make([]change, 0, len(paths))
	for _, path := range paths {
		segments, err := splitPath(path)
		if err != nil {
			return err
		}
		value, err := toGeneric(input.Values[path])
		if err != nil {
			return err
		}
		changes = append(changes, change{segments: segments, value: value})
	}

	required, err := splitPaths(input.RequireExists)
	if err != nil {
		return err
	}
	guarded, err := splitPaths(input.SkipMissing)
	if err != nil {
		return err
	}

	return r.write(ctx, input.RoomID, func(doc map[string]any) (map[string]any, bool, error) {
		for i, segments := range required {
			if !hasPath(doc, segments) {
				return nil, false, fmt.Errorf("%w: %q", ErrPathNotFound, input.RequireExists[i])
			}
		}

		// Guards are checked before any change so a batch sees one snapshot
		var missing [][]string
		for _, segments := range guarded {
			if !hasPath(doc, segments) {
				missing = append(missing, segments)
			}
		}

		changed := false
		for _, c := range changes {
			if underAny(c.segments, missing) {
				continue
			}
			changed = true
			if c.value == nil {
				deletePath(doc, c.segments)
				continue
			}
			setPath(doc, c.segments, c.value)
		}
		return doc, changed, nil
	})
}

// Remove deletes a single path. Removing an absent path does not bump the version.
func (r *redisRepository) Remove(ctx context.Context, input *RemoveInput) error {
	if input == nil || input.RoomID == "" {
		return ErrRoomIDRequired
	}

	segments, err := splitPath(input.Path)
	if err != nil {
		return err
	}

	return r.write(ctx, input.RoomID, func(doc map[string]any) (map[string]any, bool, error) {
		return doc, deletePath(doc, segments), nil
	})
}

// Push appends a value under a generated id. Map values get the id stamped
// into their "id" field.
func (r *redisRepository) Push(ctx context.Context, input *PushInput) (*PushOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrRoomIDRequired
	}

	segments, err := splitPath(input.Path)
	if err != nil {
		return nil, err
	}

	value, err := toGeneric(input.Value)
	if err != nil {
		return nil, err
	}

	id := r.ids.NewPushID()
	if m, ok := value.(map[string]any); ok {
		m["id"] = id
	}

	segments = append(segments, id)
	err = r.write(ctx, input.RoomID, func(doc map[string]any) (map[string]any, bool, error) {
		setPath(doc, segments, value)
		return doc, true, nil
	})
	if err != nil {
		return nil, err
	}

	return &PushOutput{ID: id}, nil
}

// mutation edits the freshly read document and reports whether it changed
type mutation func(doc map[string]any) (map[string]any, bool, error)

// write runs a mutation inside a WATCH transaction, retrying when another
// writer committed in between, then signals subscribers
func (r *redisRepository) write(ctx context.Context, roomID string, mutate mutation) error {
	docKey := documentKey(roomID)

	var (
		version int64
		changed bool
	)

	txf := func(tx *redis.Tx) error {
		data, err := decodeDocument(tx.Get(ctx, docKey))
		if err != nil {
			return err
		}

		next, ok, err := mutate(data)
		if err != nil {
			return err
		}
		changed = ok
		if !changed {
			return nil
		}

		encoded, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to marshal room: %w", err)
		}

		var incr *redis.IntCmd
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, docKey, encoded, 0)
			incr = pipe.Incr(ctx, versionKey(roomID))
			return nil
		})
		if err != nil {
			return err
		}

		version = incr.Val()
		return nil
	}

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, docKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to write room: %w", err)
		}

		if changed {
			if err := r.notifier.Publish(ctx, roomID, version); err != nil {
				// The write is committed; subscribers catch up on the next change
				log.Warn().Err(err).Str("room_id", roomID).Int64("version", version).Msg("failed to publish room change")
			}
		}
		return nil
	}

	return ErrWriteConflict
}

// Subscribe delivers the current document, then a fresh document for every
// newer version, until ctx is done. Read failures are logged and retried on
// the next change signal.
func (r *redisRepository) Subscribe(ctx context.Context, input *SubscribeInput) error {
	if input == nil || input.RoomID == "" {
		return ErrRoomIDRequired
	}

	if input.Handler == nil {
		return errors.New("handler cannot be nil")
	}

	// Subscribe before the first read so no change slips between them
	changes, err := r.notifier.Subscribe(ctx, input.RoomID)
	if err != nil {
		return fmt.Errorf("failed to subscribe to room changes: %w", err)
	}

	last := int64(-1)
	deliver := func() {
		out, err := r.Get(ctx, &GetInput{RoomID: input.RoomID})
		if err != nil {
			if ctx.Err() == nil {
				log.Warn().Err(err).Str("room_id", input.RoomID).Msg("failed to read room snapshot")
			}
			return
		}
		if out.Document.Version <= last {
			return
		}
		last = out.Document.Version
		input.Handler(out.Document)
	}

	deliver()
	for {
		select {
		case <-ctx.Done():
			return nil
		case version := <-changes:
			if version > last {
				deliver()
			}
		}
	}
}

// decodeDocument parses a stored document; a missing key yields an empty document
func decodeDocument(cmd *redis.StringCmd) (map[string]any, error) {
	raw, err := cmd.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("failed to read room: %w", err)
	}

	data := map[string]any{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}
	if data == nil {
		data = map[string]any{}
	}

	return data, nil
}
