package stream

import "time"

// Config holds spectator server configuration
type Config struct {
	// Address to bind
	Address string

	// Path the websocket endpoint is mounted on
	Path string

	// Connection limits
	MaxPeers int

	// Timing
	WriteTimeout      time.Duration
	HeartbeatInterval time.Duration
	DisconnectTimeout time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int

	// FrameEvery publishes one snapshot per this many ticks; event and terminal frames always go out
	FrameEvery uint64
}

// DefaultConfig returns local spectator defaults
func DefaultConfig() *Config {
	return &Config{
		Address:           "127.0.0.1:7777",
		Path:              "/ws",
		MaxPeers:          16,
		WriteTimeout:      2 * time.Second,
		HeartbeatInterval: 10 * time.Second,
		DisconnectTimeout: 30 * time.Second,
		ReadBufferSize:    1024,
		WriteBufferSize:   16 * 1024,
		SendQueueSize:     64,
		FrameEvery:        2,
	}
}
