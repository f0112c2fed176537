package stream

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/hillclimb/event"
	"github.com/lixenwraith/hillclimb/sim"
)

// Frame is one message sent to spectators
type Frame struct {
	Seq      uint64        `json:"seq"`
	Snapshot sim.Snapshot  `json:"snapshot"`
	Events   []event.Event `json:"events,omitempty"`
}

// Server broadcasts simulation snapshots to websocket spectators
// Publish never blocks the caller: slow peers are dropped
type Server struct {
	config   *Config
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	peers  map[PeerID]*Peer
	nextID atomic.Uint32
	latest []byte // Replayed to late joiners
	seq    atomic.Uint64

	httpServer *http.Server
	listener   net.Listener
	running    atomic.Bool
	wg         sync.WaitGroup
}

// NewServer creates a server; nil cfg uses DefaultConfig
func NewServer(cfg *Config) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Server{
		config: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		peers: make(map[PeerID]*Peer),
	}
}

// Handler returns the HTTP handler serving the websocket endpoint
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.config.Path, s.serveWS)
	return mux
}

// Start binds the configured address and serves in the background
func (s *Server) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return nil // Already running
	}

	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		s.running.Store(false)
		return err
	}
	s.listener = ln
	s.httpServer = &http.Server{Handler: s.Handler()}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("stream: serve: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound address, empty before Start
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop closes every peer and the listener
func (s *Server) Stop() error {
	s.mu.Lock()
	for id, p := range s.peers {
		p.Close()
		delete(s.peers, id)
	}
	s.mu.Unlock()

	if !s.running.CompareAndSwap(true, false) {
		return nil
	}
	err := s.httpServer.Shutdown(context.Background())
	s.wg.Wait()
	return err
}

// PeerCount returns connected spectator count
func (s *Server) PeerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.peers)
}

// Publish encodes a snapshot frame and queues it to every peer
// Returns false when the frame was skipped by FrameEvery
func (s *Server) Publish(snap sim.Snapshot, events []event.Event) (bool, error) {
	every := max(s.config.FrameEvery, 1)
	if snap.Tick%every != 0 && len(events) == 0 && snap.Terminal == nil {
		return false, nil
	}

	data, err := json.Marshal(Frame{Seq: s.seq.Add(1), Snapshot: snap, Events: events})
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	s.latest = data
	var slow []*Peer
	for id, p := range s.peers {
		if !p.Send(data) {
			slow = append(slow, p)
			delete(s.peers, id)
		}
	}
	s.mu.Unlock()

	for _, p := range slow {
		log.Printf("stream: dropping peer %d (%s): send queue full", p.ID, p.Addr)
		p.Close()
	}
	return true, nil
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream: upgrade: %v", err)
		return
	}

	s.mu.Lock()
	if len(s.peers) >= s.config.MaxPeers {
		s.mu.Unlock()
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "max peers reached"))
		conn.Close()
		return
	}
	p := newPeer(PeerID(s.nextID.Add(1)), r.RemoteAddr, conn, s.config.SendQueueSize)
	s.peers[p.ID] = p
	if s.latest != nil {
		p.Send(s.latest)
	}
	s.mu.Unlock()

	go p.writeLoop(s.config.WriteTimeout, s.config.HeartbeatInterval)
	p.readLoop(s.config.DisconnectTimeout)

	s.mu.Lock()
	if s.peers[p.ID] == p {
		delete(s.peers, p.ID)
	}
	s.mu.Unlock()
}
