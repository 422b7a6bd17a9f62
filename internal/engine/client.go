// Package engine runs one client of a room. A single loop applies every
// snapshot, executes the commands addressed to the client and keeps the
// displayed clock moving; the client's identity and view are owned by that
// loop and never shared.
package engine

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsync/internal/common/clock"
	"github.com/KirkDiggler/roomsync/internal/models"
	"github.com/KirkDiggler/roomsync/internal/repositories/localstore"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	clockService "github.com/KirkDiggler/roomsync/internal/services/clock"
	"github.com/KirkDiggler/roomsync/internal/services/command"
	"github.com/KirkDiggler/roomsync/internal/services/session"
	"github.com/KirkDiggler/roomsync/internal/services/snapshot"
	"github.com/KirkDiggler/roomsync/internal/services/view"
)

// Config holds configuration for a room client
type Config struct {
	RoomID         string
	RoomRepository roomRepo.Repository
	SessionService session.Service

	// LocalStore must be the same store the session service persists to
	LocalStore localstore.Store

	Effects  command.Effects
	Observer Observer
	Clock    clock.Clock
}

// Client is one participant's connection to a room
type Client struct {
	roomID     string
	roomRepo   roomRepo.Repository
	sessions   session.Service
	store      localstore.Store
	observer   Observer
	clock      clock.Clock
	dispatcher *command.Dispatcher
	ticker     *clockService.Ticker

	requests chan request
	done     chan struct{}
	running  atomic.Bool

	// Owned by the loop
	identity  *models.Identity
	heartbeat *session.Heartbeat
	view      *view.View
	last      *models.Room
	activeTab string
	chatOpen  bool
	display   string
}

// request runs on the loop. runCtx lives as long as the loop.
type request struct {
	fn     func(runCtx context.Context) error
	result chan error
}

// New creates a client; nothing happens until Run
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomID == "" {
		return nil, ErrRoomIDRequired
	}

	if cfg.RoomRepository == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.SessionService == nil {
		return nil, ErrNilSessionService
	}

	if cfg.LocalStore == nil {
		return nil, ErrNilLocalStore
	}

	if cfg.Effects == nil {
		return nil, ErrNilEffects
	}

	if cfg.Observer == nil {
		return nil, ErrNilObserver
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	dispatcher, err := command.NewDispatcher(&command.DispatcherConfig{
		RoomRepository: cfg.RoomRepository,
		Effects:        cfg.Effects,
		LocalStore:     cfg.LocalStore,
		Clock:          cfg.Clock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatcher: %w", err)
	}

	return &Client{
		roomID:     cfg.RoomID,
		roomRepo:   cfg.RoomRepository,
		sessions:   cfg.SessionService,
		store:      cfg.LocalStore,
		observer:   cfg.Observer,
		clock:      cfg.Clock,
		dispatcher: dispatcher,
		ticker:     clockService.NewTicker(cfg.Clock),
		requests:   make(chan request),
		done:       make(chan struct{}),
		view:       &view.View{},
		activeTab:  view.TabGlobal,
	}, nil
}

// Run restores the persisted identity, subscribes to the room and processes
// snapshots, clock ticks and requests until ctx is done. On return the
// heartbeat is stopped, which marks the player offline.
func (c *Client) Run(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(c.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer c.stop()

	snapshots := make(chan *roomRepo.Document, 1)
	subscribed := make(chan error, 1)
	go func() {
		subscribed <- c.roomRepo.Subscribe(ctx, &roomRepo.SubscribeInput{
			RoomID: c.roomID,
			Handler: func(doc *roomRepo.Document) {
				select {
				case snapshots <- doc:
				case <-ctx.Done():
				}
			},
		})
	}()

	if err := c.restore(ctx, ctx); err != nil {
		log.Warn().Err(err).Str("room_id", c.roomID).Msg("failed to restore session")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-subscribed:
			if err != nil {
				return fmt.Errorf("room subscription ended: %w", err)
			}
			return nil
		case doc := <-snapshots:
			c.apply(ctx, snapshot.Normalize(doc), false)
		case <-c.ticker.C():
			c.tick()
		case req := <-c.requests:
			req.result <- req.fn(ctx)
		}
	}
}

// Done is closed once Run has returned
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// do runs fn on the loop and waits for its result
func (c *Client) do(ctx context.Context, fn func(runCtx context.Context) error) error {
	req := request{fn: fn, result: make(chan error, 1)}

	select {
	case c.requests <- req:
	case <-c.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Restore retries restoring the persisted identity, e.g. after a transport
// failure at startup. It returns the identity, or nil when the client must
// log in.
func (c *Client) Restore(ctx context.Context) (*models.Identity, error) {
	var identity *models.Identity
	err := c.do(ctx, func(runCtx context.Context) error {
		if c.identity == nil {
			if err := c.restore(ctx, runCtx); err != nil {
				return err
			}
		}
		identity = c.identity
		return nil
	})
	return identity, err
}

// Login signs in under a nickname and starts the heartbeat
func (c *Client) Login(ctx context.Context, nickname string, isGM bool) (*models.Identity, error) {
	var identity *models.Identity
	err := c.do(ctx, func(runCtx context.Context) error {
		if c.identity != nil {
			return ErrAlreadyLoggedIn
		}

		out, err := c.sessions.Login(ctx, &session.LoginInput{
			RoomID:   c.roomID,
			Nickname: nickname,
			IsGM:     isGM,
		})
		if err != nil {
			return err
		}

		c.signIn(runCtx, out.Identity)
		identity = out.Identity
		return nil
	})
	return identity, err
}

// Logout stops the heartbeat, signs out and returns to the login screen
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, func(runCtx context.Context) error {
		if c.identity == nil {
			return ErrNotLoggedIn
		}

		identity := c.identity
		c.signOut()

		err := c.sessions.Logout(ctx, &session.LogoutInput{
			RoomID:   c.roomID,
			Identity: identity,
		})
		if err != nil {
			return err
		}

		c.observer.Navigate(view.ScreenLogin)
		c.reapply(runCtx)
		return nil
	})
}

// Identity returns the signed-in identity, or nil
func (c *Client) Identity(ctx context.Context) (*models.Identity, error) {
	var identity *models.Identity
	err := c.do(ctx, func(runCtx context.Context) error {
		identity = c.identity
		return nil
	})
	return identity, err
}

// SetUIState tells the client which chat tab is displayed. Opening a tab
// marks it read.
func (c *Client) SetUIState(ctx context.Context, activeTab string, chatOpen bool) error {
	return c.do(ctx, func(runCtx context.Context) error {
		c.activeTab = activeTab
		c.chatOpen = chatOpen

		if chatOpen && activeTab != "" {
			before := len(c.view.Unread)
			c.view.MarkRead(activeTab)
			if len(c.view.Unread) != before {
				c.observer.ViewChanged(c.view)
			}
		}
		return nil
	})
}

// History returns the locally retained command history, newest first
func (c *Client) History(ctx context.Context) ([]*models.HistoryEntry, error) {
	return c.store.History(ctx)
}

func (c *Client) restore(ctx, runCtx context.Context) error {
	out, err := c.sessions.Restore(ctx, &session.RestoreInput{RoomID: c.roomID})
	if err != nil {
		return err
	}

	if out.Identity != nil {
		c.signIn(runCtx, out.Identity)
	}
	return nil
}

// signIn adopts an identity, starts its heartbeat and re-applies the last
// snapshot under it
func (c *Client) signIn(runCtx context.Context, identity *models.Identity) {
	c.stopHeartbeat()
	c.identity = identity

	hb, err := c.sessions.StartHeartbeat(runCtx, &session.HeartbeatInput{
		RoomID:   c.roomID,
		PlayerID: identity.ID,
	})
	if err != nil {
		log.Warn().Err(err).Str("room_id", c.roomID).Str("player_id", identity.ID).Msg("failed to start heartbeat")
	}
	c.heartbeat = hb

	log.Info().Str("room_id", c.roomID).Str("player_id", identity.ID).Bool("gm", identity.IsGM).Msg("signed in")

	c.observer.IdentityChanged(identity)
	c.reapply(runCtx)
}

// signOut drops the identity locally and stops its heartbeat
func (c *Client) signOut() {
	c.stopHeartbeat()
	c.identity = nil
	c.observer.IdentityChanged(nil)
}

func (c *Client) stopHeartbeat() {
	if c.heartbeat != nil {
		c.heartbeat.Stop()
		c.heartbeat = nil
	}
}

// reapply reduces the last snapshot again after the identity changed
func (c *Client) reapply(ctx context.Context) {
	if c.last != nil {
		c.apply(ctx, c.last, true)
	}
}

// apply reduces a snapshot into the view and carries out its side effects.
// Unread is not computed across an identity change since the visible
// channels change with it.
func (c *Client) apply(ctx context.Context, snap *models.Room, identityChanged bool) {
	var prevCounts map[string]int
	if c.view.Synced && !identityChanged {
		prevCounts = c.view.Counts
	}

	out := view.Reduce(&view.Input{
		Prev:       c.view,
		Snapshot:   snap,
		PrevCounts: prevCounts,
		Identity:   c.identity,
		ActiveTab:  c.activeTab,
		ChatOpen:   c.chatOpen,
	})
	c.last = snap
	c.view = out.View

	if out.Effects.ForceLogout {
		c.forceLogout(ctx, snap)
		c.observer.Navigate(out.Effects.Navigate)
		return
	}

	c.observer.ViewChanged(c.view)

	if len(out.Effects.NewUnread) > 0 {
		c.observer.Unread(out.Effects.NewUnread)
	}

	if out.Effects.Navigate != view.ScreenNone {
		c.observer.Navigate(out.Effects.Navigate)
	}

	// The operator issues commands and does not consume them
	if c.identity != nil && !c.identity.IsGM && len(snap.Notifications) > 0 {
		_, err := c.dispatcher.Dispatch(ctx, &command.DispatchInput{
			RoomID:        c.roomID,
			SelfID:        c.identity.ID,
			Notifications: snap.Notifications,
		})
		if err != nil {
			log.Warn().Err(err).Str("room_id", c.roomID).Msg("failed to dispatch commands")
		}
	}

	if c.ticker.Arm(snap.ClockConfig) {
		c.tick()
	}
}

// forceLogout handles a shutdown or expulsion: the persisted identity is
// forgotten and the snapshot is applied again without it
func (c *Client) forceLogout(ctx context.Context, snap *models.Room) {
	playerID := c.identity.ID
	c.signOut()

	if err := c.store.ClearIdentity(ctx); err != nil {
		log.Warn().Err(err).Str("room_id", c.roomID).Str("player_id", playerID).Msg("failed to clear identity")
	}

	log.Info().Str("room_id", c.roomID).Str("player_id", playerID).Str("status", string(snap.Status)).Msg("logged out by the room")

	c.apply(ctx, snap, true)
}

// tick recomputes the displayed clock and reports it when it changed
func (c *Client) tick() {
	display := c.ticker.Display()
	if display == c.display {
		return
	}
	c.display = display
	c.observer.ClockChanged(display)
}

// stop releases the loop's resources
func (c *Client) stop() {
	c.ticker.Stop()
	c.stopHeartbeat()
}
