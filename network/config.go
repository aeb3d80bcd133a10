package network

import (
	"time"

	"github.com/lixenwraith/vi-snake/parameter"
)

// Config holds spectator stream configuration
type Config struct {
	// Enabled starts the HTTP listener
	Enabled bool

	// Address to bind, port 0 picks a free port
	Address string

	// Connection limits
	MaxClients int

	// Timing
	WriteTimeout time.Duration
	PingInterval time.Duration

	// SendQueueSize is per-client frame backlog before frames are dropped
	SendQueueSize int
}

// DefaultConfig returns a disabled loopback config
func DefaultConfig() *Config {
	return &Config{
		Enabled:       false,
		Address:       parameter.SpectateDefaultAddr,
		MaxClients:    16,
		WriteTimeout:  parameter.SpectateWriteTimeout,
		PingInterval:  parameter.SpectatePingInterval,
		SendQueueSize: parameter.SpectateSendBuffer,
	}
}
