package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/status"
)

// Service streams game state to read-only spectators over HTTP and websockets
type Service struct {
	config  *Config
	session string
	grid    engine.Grid

	hub      *Hub
	upgrader websocket.Upgrader
	router   *gin.Engine
	metrics  *status.Registry

	// Latest state sync frame and its encoding, replayed to new clients
	latest     atomic.Pointer[Frame]
	latestData atomic.Pointer[[]byte]

	server   *http.Server
	listener net.Listener
	running  atomic.Bool
	mu       sync.Mutex
}

// NewService creates a spectator service for the grid
// reg may be nil, in which case client counts are not exported
func NewService(cfg *Config, grid engine.Grid, reg *status.Registry) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var statClients *atomic.Int64
	if reg != nil {
		statClients = reg.Ints.Get("spectate.clients")
	}

	s := &Service{
		config:  cfg,
		session: uuid.New().String(),
		grid:    grid,
		hub:     NewHub(statClients),
		metrics: reg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	s.router = s.buildRouter()
	return s
}

// Name returns the service name for logging
func (s *Service) Name() string {
	return "network"
}

// Session returns the id stamped on every frame of this run
func (s *Service) Session() string {
	return s.session
}

// Handler exposes the HTTP routes, used directly by tests
func (s *Service) Handler() http.Handler {
	return s.router
}

// Start binds the listener and serves in the background, no-op when disabled
func (s *Service) Start() error {
	if !s.config.Enabled {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.Load() {
		return fmt.Errorf("spectator service already running")
	}

	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("spectator listen %s: %w", s.config.Address, err)
	}

	s.listener = ln
	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.running.Store(true)

	srv := s.server
	core.Go(func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectator server stopped: %v", err)
		}
	})

	log.Printf("spectator stream listening on %s (session %s)", ln.Addr(), s.session)
	return nil
}

// Addr returns the bound address, empty when not running
func (s *Service) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts down the server and disconnects all clients
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	s.hub.CloseAll()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("spectator shutdown: %w", err)
	}
	return nil
}

// IsRunning reports whether the listener is active
func (s *Service) IsRunning() bool {
	return s.running.Load()
}

// ClientCount returns connected spectators
func (s *Service) ClientCount() int {
	return s.hub.Count()
}

// Publish records the latest state and fans it out to connected clients
func (s *Service) Publish(snap engine.Snapshot) {
	f := StateFrame(s.session, s.grid, snap)
	data, err := f.Encode()
	if err != nil {
		log.Printf("spectator publish: %v", err)
		return
	}
	s.latest.Store(f)
	s.latestData.Store(&data)
	s.hub.Broadcast(data)
}

// EventTypes returns the outcome events forwarded to spectators
func (s *Service) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventOrbConsumed,
		event.EventSnakeCrashed,
	}
}

// HandleEvent forwards outcome events; runs on the scheduler goroutine and never blocks
func (s *Service) HandleEvent(ev event.GameEvent) {
	f, ok := EventFrame(s.session, ev)
	if !ok {
		return
	}
	data, err := f.Encode()
	if err != nil {
		log.Printf("spectator event: %v", err)
		return
	}
	s.hub.Broadcast(data)
}
