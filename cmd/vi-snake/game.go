package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/network"
	"github.com/lixenwraith/vi-snake/render"
)

// game is the terminal host around the simulation
type game struct {
	screen    tcell.Screen
	ctx       *engine.GameContext
	scheduler *engine.ClockScheduler
	renderer  *render.Renderer
	keys      *input.KeyTable
	player    engine.AudioPlayer // nil without audio
	spectator *network.Service // nil unless spectating

	updateDone <-chan struct{}
	frame      time.Duration
}

// loop multiplexes input, tick completion and frame rendering until quit
func (g *game) loop() {
	frameTicker := time.NewTicker(g.frame)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	g.draw()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}

		case <-g.updateDone:
			if g.spectator != nil {
				g.spectator.Publish(g.ctx.Snapshot())
			}

		case <-frameTicker.C:
			g.draw()
		}
	}
}

// handleEvent applies one terminal event, false to quit
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := g.keys.Resolve(ev)
		switch intent.Type {
		case input.IntentQuit:
			return false

		case input.IntentTurn:
			g.ctx.PushDirection(intent.Heading)
			// Apply the turn now rather than at the next tick
			g.scheduler.DispatchEventsImmediately()

		case input.IntentToggleMute:
			if g.player != nil {
				muted := g.player.ToggleMute()
				log.Printf("audio muted: %v", muted)
			}
		}

	case *tcell.EventResize:
		g.screen.Sync()
		g.draw()
	}

	return true
}

func (g *game) draw() {
	info := render.StatusInfo{}
	if g.player != nil {
		info.Muted = g.player.IsMuted()
	}
	if g.spectator != nil {
		info.Spectators = g.spectator.ClientCount()
	}
	g.renderer.Draw(g.ctx.Snapshot(), info)
}
