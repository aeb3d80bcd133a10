package network

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/vi-snake/core"
)

// buildRouter wires the HTTP routes
// gin output goes through the standard logger so nothing reaches the terminal UI
func (s *Service) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = log.Writer()
	gin.DefaultErrorWriter = log.Writer()

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.handleHealth)
	r.GET("/snapshot", s.handleSnapshot)
	r.GET("/metrics", s.handleMetrics)
	r.GET("/stream", s.handleStream)

	return r
}

func (s *Service) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"session": s.session,
		"clients": s.hub.Count(),
	})
}

func (s *Service) handleSnapshot(c *gin.Context) {
	f := s.latest.Load()
	if f == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot yet"})
		return
	}
	c.JSON(http.StatusOK, f)
}

func (s *Service) handleMetrics(c *gin.Context) {
	if s.metrics == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, s.metrics.Values())
}

func (s *Service) handleStream(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrader already replied with an HTTP error
		log.Printf("spectator upgrade: %v", err)
		return
	}

	client := newClient(conn, s.config.SendQueueSize)
	if !s.hub.Add(client, s.config.MaxClients) {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "spectator limit reached"))
		conn.Close()
		return
	}

	log.Printf("spectator %s connected from %s", client.ID, client.Addr)

	if data := s.latestData.Load(); data != nil {
		client.Send(*data)
	}

	core.Go(func() {
		client.writeLoop(s.config.WriteTimeout, s.config.PingInterval)
	})
	core.Go(func() {
		client.readLoop()
		s.hub.Remove(client)
		log.Printf("spectator %s disconnected, %d frames dropped", client.ID, client.Dropped.Load())
	})
}
