package parameter

import "time"

// Spectator stream
const (
	// SpectateDefaultAddr is used when spectating is enabled without an explicit address
	SpectateDefaultAddr = "127.0.0.1:7420"

	// SpectateSendBuffer is per-client frame backlog before frames are dropped
	SpectateSendBuffer = 8

	// SpectateWriteTimeout bounds a single websocket write
	SpectateWriteTimeout = 2 * time.Second

	// SpectatePingInterval keeps idle connections alive
	SpectatePingInterval = 15 * time.Second
)
