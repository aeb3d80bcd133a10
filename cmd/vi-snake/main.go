package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/network"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/system"
	"github.com/lixenwraith/vi-snake/vmath"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML config file")
	tickFlag     = flag.Duration("tick", 0, "Simulation tick period, overrides config (e.g. 150ms)")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/vi-snake.log")
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
	spectateFlag = flag.String("spectate", "", "Serve the spectator stream on this address")
	seedFlag     = flag.Uint64("seed", 0, "Orb placement seed, 0 seeds from the clock")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("exit: %v", err)
		if logFile != nil {
			logFile.Close()
		}
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	if *tickFlag != 0 {
		cfg.Clock.Tick = *tickFlag
	}
	if *spectateFlag != "" {
		cfg.Spectate.Enabled = true
		cfg.Spectate.Addr = *spectateFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Engine goroutines restore the terminal before the crash report is printed
	core.SetCrashHandler(func(r any) {
		screen.Fini()
	})
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting: grid %dx%d, tick %v, seed %d", cfg.Grid.Width, cfg.Grid.Height, cfg.Clock.Tick, seed)

	clock := engine.NewTimeProvider()
	world := engine.NewWorld()
	ctx := engine.NewGameContext(world, cfg.Engine(), vmath.NewFastRand(seed), clock)

	// Audio is optional, the game runs silently when the device is unavailable
	var player engine.AudioPlayer
	if cfg.Audio.Enabled {
		p := audio.NewPlayer(cfg.AudioSettings())
		if err := p.Start(); err != nil {
			log.Printf("audio unavailable: %v (continuing without audio)", err)
		} else {
			defer p.Stop()
			if *muteFlag {
				p.ToggleMute()
			}
			player = p
			world.Resources.Audio = &engine.AudioResource{Player: p}
		}
	}

	world.RunSafe(ctx.Setup)

	world.AddSystem(system.NewDirectionSystem(ctx))
	world.AddSystem(system.NewMovementSystem(ctx))
	world.AddSystem(system.NewCollisionSystem(ctx))
	world.AddSystem(system.NewAudioSystem(world))

	scheduler, updateDone := engine.NewClockScheduler(ctx, clock, cfg.Clock.Tick)
	scheduler.RegisterSystems()

	var spectator *network.Service
	if cfg.Spectate.Enabled {
		spectator = network.NewService(cfg.NetworkSettings(), cfg.GridSpec(), world.Resources.Status)
		scheduler.RegisterEventHandler(spectator)
		if err := spectator.Start(); err != nil {
			return err
		}
		defer spectator.Stop()
		spectator.Publish(ctx.Snapshot())
	}

	scheduler.Start()
	defer scheduler.Stop()

	g := &game{
		screen:     screen,
		ctx:        ctx,
		scheduler:  scheduler,
		renderer:   render.NewRenderer(screen, cfg.GridSpec()),
		keys:       keys,
		player:     player,
		spectator:  spectator,
		updateDone: updateDone,
		frame:      cfg.Clock.Frame,
	}
	g.loop()

	log.Printf("quit after %d ticks", scheduler.TickCount())
	return nil
}
