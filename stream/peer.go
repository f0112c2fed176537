package stream

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// PeerID uniquely identifies a connected spectator
type PeerID uint32

// Peer is one websocket spectator
type Peer struct {
	ID       PeerID
	Addr     string
	LastSeen atomic.Int64 // UnixNano

	conn *websocket.Conn

	// Send queue of encoded frames
	sendCh chan []byte

	// Lifecycle
	closed    atomic.Bool
	closeCh   chan struct{}
	closeOnce sync.Once
}

// newPeer creates a peer around an upgraded connection
func newPeer(id PeerID, addr string, conn *websocket.Conn, sendQueueSize int) *Peer {
	p := &Peer{
		ID:      id,
		Addr:    addr,
		conn:    conn,
		sendCh:  make(chan []byte, sendQueueSize),
		closeCh: make(chan struct{}),
	}
	p.LastSeen.Store(time.Now().UnixNano())
	return p
}

// Send queues a frame for transmission
// Returns false if the peer is closed or its queue is full
func (p *Peer) Send(frame []byte) bool {
	if p.closed.Load() {
		return false
	}
	select {
	case p.sendCh <- frame:
		return true
	default:
		return false // Queue full
	}
}

// Close initiates shutdown
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.closeCh)
		if p.conn != nil {
			p.conn.Close()
		}
	})
}

// readLoop drains inbound control traffic; spectators send nothing else
func (p *Peer) readLoop(timeout time.Duration) {
	defer p.Close()

	p.conn.SetReadDeadline(time.Now().Add(timeout))
	p.conn.SetPongHandler(func(string) error {
		p.LastSeen.Store(time.Now().UnixNano())
		return p.conn.SetReadDeadline(time.Now().Add(timeout))
	})
	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
		p.LastSeen.Store(time.Now().UnixNano())
	}
}

// writeLoop sends queued frames and heartbeats
func (p *Peer) writeLoop(writeTimeout, heartbeat time.Duration) {
	defer p.Close()

	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-p.closeCh:
			p.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeTimeout))
			return
		case frame := <-p.sendCh:
			p.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := p.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			if err := p.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}
