package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
)

// ClockScheduler runs game logic on a fixed tick
// Ticks and event dispatch both execute under the world update lock
type ClockScheduler struct {
	ctx     *GameContext
	world   *World
	timeRes *TimeResource
	clock   TimeSource

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction

	tickCount atomic.Uint64
	mu        sync.RWMutex

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Non-blocking signal that a tick completed
	updateDone chan<- struct{}

	eventRouter *event.Router

	// Cached metric pointers
	statTicks   *atomic.Int64
	statDropped *atomic.Int64
}

// NewClockScheduler creates a scheduler for ctx with the given tick interval
// Returns the scheduler and a channel signalled after every tick
func NewClockScheduler(ctx *GameContext, clock TimeSource, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		ctx:          ctx,
		world:        ctx.World,
		timeRes:      ctx.World.Resources.Time,
		clock:        clock,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   updateDone,
		eventRouter:  event.NewRouter(ctx.World.Resources.Event.Queue),
		statTicks:    ctx.World.Resources.Status.Ints.Get("engine.ticks"),
		statDropped:  ctx.World.Resources.Status.Ints.Get("event.dropped"),
	}

	return cs, updateDone
}

// RegisterEventHandler adds an event handler to router, must be called before Start()
func (cs *ClockScheduler) RegisterEventHandler(handler event.Handler) {
	cs.eventRouter.Register(handler)
}

// RegisterSystems registers every world system that also handles events
func (cs *ClockScheduler) RegisterSystems() {
	for _, sys := range cs.world.Systems() {
		if h, ok := sys.(event.Handler); ok {
			cs.eventRouter.Register(h)
		}
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the running tick to finish
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// IsRunning reports whether the loop goroutine is active
func (cs *ClockScheduler) IsRunning() bool {
	return cs.running.Load()
}

// TickCount returns the number of ticks processed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop sleeps until each deadline and processes one tick per deadline
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		now := cs.clock.Now()

		cs.mu.RLock()
		deadline := cs.nextTickDeadline
		cs.mu.RUnlock()

		if !now.Before(deadline) {
			cs.Step()

			cs.mu.Lock()
			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

			// Skip missed ticks instead of bursting to catch up
			maxBehind := cs.tickInterval * parameter.MaxTickLag
			if now.Sub(cs.nextTickDeadline) > maxBehind {
				cs.nextTickDeadline = now.Add(cs.tickInterval)
			}
			deadline = cs.nextTickDeadline
			cs.mu.Unlock()

			select {
			case cs.updateDone <- struct{}{}:
			default:
			}
		}

		sleepDuration := deadline.Sub(cs.clock.Now())
		if sleepDuration <= 0 {
			continue
		}

		timer.Reset(sleepDuration)
		select {
		case <-timer.C:
		case <-cs.stopChan:
			return
		}
	}
}

// DispatchEventsImmediately processes all pending events synchronously
// Used by the host after pushing input so turns apply before the next tick
func (cs *ClockScheduler) DispatchEventsImmediately() {
	cs.world.RunSafe(func() {
		cs.eventRouter.DispatchAll()
	})
}

// Step executes one tick synchronously
// Pending events are routed before the systems run, events emitted by systems are routed after
func (cs *ClockScheduler) Step() {
	cs.world.RunSafe(func() {
		frame := cs.ctx.TickNumber.Add(1)
		cs.timeRes.Update(cs.clock.Now(), cs.tickInterval, frame)

		cs.eventRouter.DispatchAll()
		cs.world.UpdateLocked()
		cs.eventRouter.DispatchAll()
	})

	ticks := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(ticks))
	cs.statDropped.Store(int64(cs.world.Resources.Event.Queue.Dropped()))
}
