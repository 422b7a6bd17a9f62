// Package gateway serves the room to browsers over WebSocket. Every
// connection runs its own room client; the browser only renders what the
// client reports and forwards what the user does.
package gateway

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsync/internal/catalog"
	"github.com/KirkDiggler/roomsync/internal/common/clock"
	identityRepo "github.com/KirkDiggler/roomsync/internal/repositories/identity"
	roomRepo "github.com/KirkDiggler/roomsync/internal/repositories/room"
	"github.com/KirkDiggler/roomsync/internal/services/command"
	"github.com/KirkDiggler/roomsync/internal/services/messaging"
	"github.com/KirkDiggler/roomsync/internal/services/room"
)

// ConnectionConfig holds configuration for WebSocket connections
type ConnectionConfig struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	SendBufferSize  int
	CheckOrigin     func(r *http.Request) bool
}

// DefaultConnectionConfig returns default WebSocket configuration
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  16 * 1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		SendBufferSize:  256,
		CheckOrigin: func(r *http.Request) bool {
			// The room is shared on a local network
			return true
		},
	}
}

// Config holds configuration for the gateway
type Config struct {
	RoomID             string
	RoomRepository     roomRepo.Repository
	IdentityRepository identityRepo.Repository
	RoomService        room.Service
	CommandService     command.Service
	MessagingService   messaging.Service
	Catalog            *catalog.Catalog
	Clock              clock.Clock

	// HeartbeatInterval and Retention are passed to each connection's session
	HeartbeatInterval time.Duration
	Retention         time.Duration

	// Connection defaults to DefaultConnectionConfig
	Connection *ConnectionConfig
}

// Server upgrades HTTP requests to room connections
type Server struct {
	roomID            string
	roomRepo          roomRepo.Repository
	identityRepo      identityRepo.Repository
	messaging         messaging.Service
	catalog           *catalog.Catalog
	clock             clock.Clock
	heartbeatInterval time.Duration
	retention         time.Duration
	config            ConnectionConfig
	upgrader          websocket.Upgrader
	actions           map[string]ActionHandler

	mu          sync.RWMutex
	connections map[*connection]bool
}

// NewServer creates a new gateway server
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomID == "" {
		return nil, ErrRoomIDRequired
	}

	if cfg.RoomRepository == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.IdentityRepository == nil {
		return nil, ErrNilIdentityRepo
	}

	if cfg.RoomService == nil {
		return nil, ErrNilRoomService
	}

	if cfg.CommandService == nil {
		return nil, ErrNilCommandService
	}

	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	config := DefaultConnectionConfig()
	if cfg.Connection != nil {
		config = *cfg.Connection
	}

	actions := make(map[string]ActionHandler)
	for _, a := range roomActions(cfg.RoomService, cfg.CommandService) {
		actions[a.GetName()] = a
	}

	return &Server{
		roomID:            cfg.RoomID,
		roomRepo:          cfg.RoomRepository,
		identityRepo:      cfg.IdentityRepository,
		messaging:         cfg.MessagingService,
		catalog:           cfg.Catalog,
		clock:             cfg.Clock,
		heartbeatInterval: cfg.HeartbeatInterval,
		retention:         cfg.Retention,
		config:            config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		actions:     actions,
		connections: make(map[*connection]bool),
	}, nil
}

// ServeHTTP upgrades the request and serves the connection until it closes
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade WebSocket connection")
		return
	}

	c, err := newConnection(s, uuid.New().String(), ws)
	if err != nil {
		log.Error().Err(err).Msg("failed to create room client")
		ws.Close()
		return
	}

	s.register(c)

	go c.writePump()
	go c.readPump()

	log.Info().
		Str("connection_id", c.id).
		Str("room_id", s.roomID).
		Str("remote_addr", r.RemoteAddr).
		Msg("WebSocket connection established")
}

// Connections returns the number of open connections
func (s *Server) Connections() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

// Close closes every open connection. Each one stops its room client, which
// marks its player offline.
func (s *Server) Close() {
	s.mu.RLock()
	open := make([]*connection, 0, len(s.connections))
	for c := range s.connections {
		open = append(open, c)
	}
	s.mu.RUnlock()

	for _, c := range open {
		c.ws.Close()
	}

	for _, c := range open {
		<-c.closed
	}
}

func (s *Server) register(c *connection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections[c] = true

	log.Debug().
		Str("connection_id", c.id).
		Int("total_connections", len(s.connections)).
		Msg("connection registered")
}

func (s *Server) unregister(c *connection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.connections[c]; ok {
		delete(s.connections, c)
		log.Info().Str("connection_id", c.id).Msg("connection unregistered")
	}
}

// gameName returns the display name of a catalog game
func (s *Server) gameName(id string) string {
	for _, g := range s.catalog.Games {
		if g.ID == id {
			return g.Name
		}
	}
	return id
}
