package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsync/internal/engine"
	"github.com/KirkDiggler/roomsync/internal/models"
	"github.com/KirkDiggler/roomsync/internal/repositories/localstore"
	"github.com/KirkDiggler/roomsync/internal/services/messaging"
	"github.com/KirkDiggler/roomsync/internal/services/room"
	"github.com/KirkDiggler/roomsync/internal/services/session"
	"github.com/KirkDiggler/roomsync/internal/services/view"
)

// connection is one browser tab. It owns a room client and acts as both its
// Observer and its Effects, turning every callback into a message.
type connection struct {
	id     string
	server *Server
	ws     *websocket.Conn
	send   chan []byte
	store  *localstore.Memory
	client *engine.Client

	ctx    context.Context
	cancel context.CancelFunc

	// started is only touched by readPump
	started bool

	// closed is closed once the client stopped and the send channel is closed
	closed chan struct{}
}

func newConnection(s *Server, id string, ws *websocket.Conn) (*connection, error) {
	store := localstore.NewMemory()

	sessions, err := session.NewService(&session.Config{
		RoomRepository:     s.roomRepo,
		IdentityRepository: s.identityRepo,
		LocalStore:         store,
		Clock:              s.clock,
		HeartbeatInterval:  s.heartbeatInterval,
		Retention:          s.retention,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &connection{
		id:     id,
		server: s,
		ws:     ws,
		send:   make(chan []byte, s.config.SendBufferSize),
		store:  store,
		ctx:    ctx,
		cancel: cancel,
		closed: make(chan struct{}),
	}

	client, err := engine.New(&engine.Config{
		RoomID:         s.roomID,
		RoomRepository: s.roomRepo,
		SessionService: sessions,
		LocalStore:     store,
		Effects:        c,
		Observer:       c,
		Clock:          s.clock,
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create room client: %w", err)
	}
	c.client = client

	return c, nil
}

// writePump handles sending messages to the WebSocket connection
func (c *connection) writePump() {
	ticker := time.NewTicker(c.server.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(c.server.config.WriteTimeout))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Error().
					Err(err).
					Str("connection_id", c.id).
					Msg("failed to write message to WebSocket")
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(c.server.config.WriteTimeout))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Error().
					Err(err).
					Str("connection_id", c.id).
					Msg("failed to send ping")
				return
			}
		}
	}
}

// readPump handles reading messages from the WebSocket connection. It is the
// only goroutine that tears the connection down.
func (c *connection) readPump() {
	defer c.shutdown()

	c.ws.SetReadLimit(c.server.config.MaxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(c.server.config.ReadTimeout))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(c.server.config.ReadTimeout))
		return nil
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().
					Err(err).
					Str("connection_id", c.id).
					Msg("unexpected WebSocket close error")
			}
			break
		}

		c.handle(data)
		c.ws.SetReadDeadline(time.Now().Add(c.server.config.ReadTimeout))
	}
}

// shutdown stops the client before closing send, since the client's loop is
// the other writer to it
func (c *connection) shutdown() {
	c.cancel()
	if c.started {
		<-c.client.Done()
	}

	c.server.unregister(c)
	close(c.send)
	close(c.closed)
}

// start runs the client on first use so a hello can seed the identity first
func (c *connection) start() {
	if c.started {
		return
	}
	c.started = true

	go func() {
		if err := c.client.Run(c.ctx); err != nil {
			log.Error().Err(err).Str("connection_id", c.id).Msg("room client stopped")
			c.ws.Close()
		}
	}()
}

func (c *connection) handle(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError("", fmt.Errorf("%w: %v", ErrMalformedMessage, err))
		return
	}

	result, err := c.dispatch(&msg)
	if err != nil {
		c.sendError(msg.RequestID, err)
		return
	}

	if err := c.enqueue(&ServerMessage{Type: MessageTypeResult, RequestID: msg.RequestID, Result: result}); err != nil {
		log.Warn().Err(err).Str("connection_id", c.id).Msg("failed to send result")
	}
}

func (c *connection) dispatch(msg *ClientMessage) (any, error) {
	switch msg.Type {
	case MessageTypeHello:
		return c.hello(msg.Identity)
	case MessageTypeLogin:
		c.start()
		identity, err := c.client.Login(c.ctx, msg.Nickname, msg.IsGM)
		if err != nil {
			return nil, err
		}
		return toIdentityPayload(identity), nil
	case MessageTypeLogout:
		c.start()
		return nil, c.client.Logout(c.ctx)
	case MessageTypeUI:
		c.start()
		return nil, c.client.SetUIState(c.ctx, msg.ActiveTab, msg.ChatOpen)
	case MessageTypeAction:
		c.start()
		return c.action(msg.Action, msg.Args)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, msg.Type)
	}
}

// hello seeds the identity the browser persisted, then resumes it
func (c *connection) hello(payload *IdentityPayload) (any, error) {
	if identity := payload.toModel(); identity != nil {
		if err := c.store.SaveIdentity(c.ctx, identity); err != nil {
			return nil, err
		}
	}

	c.start()

	identity, err := c.client.Restore(c.ctx)
	if err != nil {
		return nil, err
	}

	return map[string]any{"identity": toIdentityPayload(identity)}, nil
}

func (c *connection) action(name string, args json.RawMessage) (any, error) {
	handler, ok := c.server.actions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}

	identity, err := c.client.Identity(c.ctx)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, engine.ErrNotLoggedIn
	}

	return handler.Handle(c.ctx, room.Scope{RoomID: c.server.roomID, Actor: identity}, args)
}

func (c *connection) sendError(requestID string, err error) {
	payload := &ErrorPayload{Code: string(messaging.ErrorCodeInternal), Message: err.Error()}

	out, mErr := c.server.messaging.GetErrorMessage(c.ctx, &messaging.GetErrorMessageInput{Err: err})
	if mErr == nil {
		payload = &ErrorPayload{Code: string(out.Code), Message: out.Message}
	}

	log.Debug().
		Err(err).
		Str("connection_id", c.id).
		Str("code", payload.Code).
		Msg("request failed")

	if err := c.enqueue(&ServerMessage{Type: MessageTypeError, RequestID: requestID, Error: payload}); err != nil {
		log.Warn().Err(err).Str("connection_id", c.id).Msg("failed to send error")
	}
}

// enqueue never blocks; a connection that cannot keep up is closed
func (c *connection) enqueue(msg *ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal %s message: %w", msg.Type, err)
	}

	select {
	case c.send <- data:
		return nil
	default:
		log.Warn().
			Str("connection_id", c.id).
			Str("type", string(msg.Type)).
			Msg("connection send buffer full, closing connection")
		c.ws.Close()
		return ErrSendBufferFull
	}
}

func (c *connection) notify(msg *ServerMessage) {
	if err := c.enqueue(msg); err != nil {
		log.Warn().Err(err).Str("connection_id", c.id).Str("type", string(msg.Type)).Msg("failed to notify browser")
	}
}

// ViewChanged implements engine.Observer
func (c *connection) ViewChanged(v *view.View) {
	status := ""
	if v.Room != nil {
		out, err := c.server.messaging.GetStatusMessage(c.ctx, &messaging.GetStatusMessageInput{
			Status:   v.Room.Status,
			GameName: c.server.gameName(v.Room.CurrentGame),
			Phase:    v.Room.GamePhase,
		})
		if err == nil {
			status = out.Message
		}
	}

	c.notify(&ServerMessage{Type: MessageTypeView, View: renderView(v, status)})
}

// ClockChanged implements engine.Observer
func (c *connection) ClockChanged(display string) {
	c.notify(&ServerMessage{Type: MessageTypeClock, Display: display})
}

// Navigate implements engine.Observer
func (c *connection) Navigate(screen view.Screen) {
	c.notify(&ServerMessage{Type: MessageTypeNavigate, Screen: string(screen)})
}

// Unread implements engine.Observer
func (c *connection) Unread(tabs []string) {
	c.notify(&ServerMessage{Type: MessageTypeUnread, Tabs: tabs})
}

// IdentityChanged implements engine.Observer. A message without an identity
// tells the browser to forget the one it stored.
func (c *connection) IdentityChanged(identity *models.Identity) {
	c.notify(&ServerMessage{Type: MessageTypeIdentity, Identity: toIdentityPayload(identity)})
}

// PlaySound implements command.Effects
func (c *connection) PlaySound(ctx context.Context, soundID string) error {
	return c.enqueue(&ServerMessage{Type: MessageTypeEffect, Effect: &EffectPayload{
		Kind:    models.NotificationTypeSound,
		SoundID: soundID,
	}})
}

// Vibrate implements command.Effects
func (c *connection) Vibrate(ctx context.Context, duration time.Duration) error {
	return c.enqueue(&ServerMessage{Type: MessageTypeEffect, Effect: &EffectPayload{
		Kind:       models.NotificationTypeVibration,
		DurationMs: duration.Milliseconds(),
	}})
}

// Speak implements command.Effects
func (c *connection) Speak(ctx context.Context, text string) error {
	return c.enqueue(&ServerMessage{Type: MessageTypeEffect, Effect: &EffectPayload{
		Kind: models.NotificationTypeDivineVoice,
		Text: text,
	}})
}

// ShowBanner implements command.Effects
func (c *connection) ShowBanner(ctx context.Context, text string) error {
	return c.enqueue(&ServerMessage{Type: MessageTypeEffect, Effect: &EffectPayload{
		Kind: models.NotificationTypeGlobalMessage,
		Text: text,
	}})
}
