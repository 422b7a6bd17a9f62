// Package session manages a client's anonymous identity across reconnects.
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsync/internal/common/clock"
	"github.com/KirkDiggler/roomsync/internal/models"
	identityRepo "github.com/KirkDiggler/roomsync/internal/repositories/identity"
	"github.com/KirkDiggler/roomsync/internal/repositories/localstore"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	"github.com/KirkDiggler/roomsync/internal/services/snapshot"
)

const (
	// DefaultHeartbeatInterval is how often lastSeen is refreshed
	DefaultHeartbeatInterval = 30 * time.Second

	// DefaultRetention is how long a silent player is kept in the room
	DefaultRetention = 10 * time.Minute

	// offlineWriteTimeout bounds the final offline write after a heartbeat stops
	offlineWriteTimeout = 5 * time.Second
)

// Config holds configuration for the session service
type Config struct {
	RoomRepository     roomRepo.Repository
	IdentityRepository identityRepo.Repository

	// LocalStore persists the identity on this client
	LocalStore localstore.Store

	Clock clock.Clock

	// HeartbeatInterval defaults to DefaultHeartbeatInterval
	HeartbeatInterval time.Duration

	// Retention defaults to DefaultRetention
	Retention time.Duration
}

// service implements the Service interface
type service struct {
	roomRepo          roomRepo.Repository
	identityRepo      identityRepo.Repository
	store             localstore.Store
	clock             clock.Clock
	heartbeatInterval time.Duration
	retention         time.Duration
}

// NewService creates a new session service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepository == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.IdentityRepository == nil {
		return nil, ErrNilIdentityRepo
	}

	if cfg.LocalStore == nil {
		return nil, ErrNilLocalStore
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	interval := cfg.HeartbeatInterval
	if interval <= 0 {
		interval = DefaultHeartbeatInterval
	}

	retention := cfg.Retention
	if retention <= 0 {
		retention = DefaultRetention
	}

	return &service{
		roomRepo:          cfg.RoomRepository,
		identityRepo:      cfg.IdentityRepository,
		store:             cfg.LocalStore,
		clock:             cfg.Clock,
		heartbeatInterval: interval,
		retention:         retention,
	}, nil
}

// Restore re-establishes the persisted identity. A stale or absent identity
// clears local state and yields none. Transport errors are returned without
// touching local state.
func (s *service) Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrRoomIDRequired
	}

	local, err := s.store.LoadIdentity(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load local identity, starting a new session")
		return s.forget(ctx)
	}

	if local == nil || local.ID == "" {
		return s.forget(ctx)
	}

	logger := log.With().Str("room_id", input.RoomID).Str("player_id", local.ID).Logger()

	out, err := s.roomRepo.Get(ctx, &roomRepo.GetInput{RoomID: input.RoomID})
	if err != nil {
		return nil, err
	}

	player := snapshot.Normalize(out.Document).Player(local.ID)
	if player == nil {
		logger.Info().Msg("local identity has no player record, login required")
		return s.forget(ctx)
	}

	signIn, err := s.identityRepo.SignInAnonymously(ctx, &identityRepo.SignInInput{
		PreviousSubject: local.ID,
	})
	if err != nil {
		return nil, err
	}

	if signIn.Subject != local.ID {
		logger.Info().Msg("local identity was not recognised, login required")
		return s.forget(ctx)
	}

	present, err := s.touch(ctx, input.RoomID, local.ID, models.PlayerStatusOnline)
	if err != nil {
		return nil, err
	}
	if !present {
		logger.Info().Msg("player record removed during restore, login required")
		return s.forget(ctx)
	}

	identity := &models.Identity{
		ID:       local.ID,
		Nickname: player.Nickname,
		IsGM:     local.IsGM,
	}
	if identity.Nickname == "" {
		identity.Nickname = local.Nickname
	}

	logger.Info().Str("nickname", identity.Nickname).Bool("is_gm", identity.IsGM).Msg("session restored")

	return &RestoreOutput{Identity: identity}, nil
}

func (s *service) forget(ctx context.Context) (*RestoreOutput, error) {
	if err := s.store.ClearIdentity(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to clear local identity")
	}
	return &RestoreOutput{}, nil
}

// Login signs in, persists the identity locally and writes a fresh player
// record, overwriting any previous record under the same identity. The
// operator's login also purges stale players.
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrRoomIDRequired
	}

	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		return nil, ErrNicknameRequired
	}

	var previous string
	if local, err := s.store.LoadIdentity(ctx); err == nil && local != nil {
		previous = local.ID
	}

	signIn, err := s.identityRepo.SignInAnonymously(ctx, &identityRepo.SignInInput{
		PreviousSubject: previous,
	})
	if err != nil {
		return nil, err
	}

	identity := &models.Identity{
		ID:       signIn.Subject,
		Nickname: nickname,
		IsGM:     input.IsGM,
	}

	if err := s.store.SaveIdentity(ctx, identity); err != nil {
		return nil, err
	}

	player := &models.Player{
		ID:           identity.ID,
		Nickname:     identity.Nickname,
		IsGM:         identity.IsGM,
		Status:       models.PlayerStatusOnline,
		LastSeen:     s.clock.Now(),
		Roles:        []string{},
		PlayerStates: []string{},
		PublicStates: []string{},
	}

	err = s.roomRepo.Update(ctx, &roomRepo.UpdateInput{
		RoomID: input.RoomID,
		Values: map[string]any{
			"players/" + identity.ID: snapshot.EncodePlayer(player),
		},
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("room_id", input.RoomID).
		Str("player_id", identity.ID).
		Str("nickname", identity.Nickname).
		Bool("is_gm", identity.IsGM).
		Msg("player logged in")

	if identity.IsGM {
		if _, err := s.PurgeStale(ctx, &PurgeStaleInput{RoomID: input.RoomID, KeepID: identity.ID}); err != nil {
			log.Warn().Err(err).Str("room_id", input.RoomID).Msg("failed to purge stale players")
		}
	}

	return &LoginOutput{Identity: identity}, nil
}

// Logout marks the player offline, signs out and forgets the local identity.
// The player record stays until it is purged or the operator expels it.
func (s *service) Logout(ctx context.Context, input *LogoutInput) error {
	if input == nil || input.RoomID == "" {
		return ErrRoomIDRequired
	}

	if input.Identity == nil || input.Identity.ID == "" {
		return ErrIdentityRequired
	}

	if err := s.markOffline(ctx, input.RoomID, input.Identity.ID); err != nil {
		return err
	}

	err := s.identityRepo.SignOut(ctx, &identityRepo.SignOutInput{Subject: input.Identity.ID})
	if err != nil {
		log.Warn().Err(err).Str("player_id", input.Identity.ID).Msg("failed to sign out")
	}

	if err := s.store.ClearIdentity(ctx); err != nil {
		return err
	}

	log.Info().Str("room_id", input.RoomID).Str("player_id", input.Identity.ID).Msg("player logged out")
	return nil
}

// PurgeStale removes every player whose lastSeen is older than the retention
// window, in one write
func (s *service) PurgeStale(ctx context.Context, input *PurgeStaleInput) (*PurgeStaleOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrRoomIDRequired
	}

	out, err := s.roomRepo.Get(ctx, &roomRepo.GetInput{RoomID: input.RoomID})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	values := map[string]any{}
	removed := []string{}

	for _, p := range snapshot.Normalize(out.Document).Players {
		if p.ID == input.KeepID || now.Sub(p.LastSeen) <= s.retention {
			continue
		}
		values["players/"+p.ID] = nil
		removed = append(removed, p.ID)
	}

	if len(values) == 0 {
		return &PurgeStaleOutput{Removed: removed}, nil
	}

	if err := s.roomRepo.Update(ctx, &roomRepo.UpdateInput{RoomID: input.RoomID, Values: values}); err != nil {
		return nil, err
	}

	log.Info().Str("room_id", input.RoomID).Strs("player_ids", removed).Msg("purged stale players")

	return &PurgeStaleOutput{Removed: removed}, nil
}

func (s *service) markOffline(ctx context.Context, roomID, playerID string) error {
	_, err := s.touch(ctx, roomID, playerID, models.PlayerStatusOffline)
	return err
}

// touch sets the player's status and refreshes lastSeen. A player whose
// record is gone (expelled, purged or shut down) is not written back, even
// when the removal commits between our read and our write.
func (s *service) touch(ctx context.Context, roomID, playerID string, status models.PlayerStatus) (bool, error) {
	err := s.roomRepo.Update(ctx, &roomRepo.UpdateInput{
		RoomID: roomID,
		Values: map[string]any{
			playerPath(playerID, "status"):   string(status),
			playerPath(playerID, "lastSeen"): s.clock.Now().UnixMilli(),
		},
		RequireExists: []string{"players/" + playerID},
	})
	if errors.Is(err, roomRepo.ErrPathNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func playerPath(playerID, field string) string {
	return "players/" + playerID + "/" + field
}
