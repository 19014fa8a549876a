package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/turmite/core"
	"github.com/lixenwraith/turmite/parameter"
	"github.com/lixenwraith/turmite/status"
)

// ClockScheduler drives the simulation on a fixed tick without
// busy-wait. The loop goroutine is the only writer of the Sim; the
// pause gate is evaluated before each tick and never interrupts a
// tick in progress. Deadlines are measured against the pausable
// clock so pause accumulates no tick debt
type ClockScheduler struct {
	sim           *Sim
	pausableClock *PausableClock
	isPaused      atomic.Bool

	// Tick configuration
	tickInterval     time.Duration
	maxTicks         uint64 // 0 = run until Stop
	nextTickDeadline time.Time
	mu               sync.Mutex

	tickCount atomic.Uint64

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	doneChan chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool

	// First step error, set before doneChan closes
	errMu sync.Mutex
	err   error

	// Cached metric pointer
	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler ticking sim every tickInterval.
// maxTicks of 0 runs until Stop. A nil registry gets a private one
func NewClockScheduler(sim *Sim, tickInterval time.Duration, maxTicks uint64, reg *status.Registry) (*ClockScheduler, error) {
	if tickInterval < parameter.MinTickInterval {
		return nil, fmt.Errorf("engine: tick interval %v below minimum %v", tickInterval, parameter.MinTickInterval)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	return &ClockScheduler{
		sim:           sim,
		pausableClock: NewPausableClock(),
		tickInterval:  tickInterval,
		maxTicks:      maxTicks,
		stopChan:      make(chan struct{}),
		doneChan:      make(chan struct{}),
		statTicks:     reg.Ints.Get("engine.ticks"),
	}, nil
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit. Idempotent
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// Done is closed when the loop exits: tick limit reached, step error,
// or external Stop
func (cs *ClockScheduler) Done() <-chan struct{} {
	return cs.doneChan
}

// Err returns the step error that terminated the loop, if any.
// Valid after Done is closed
func (cs *ClockScheduler) Err() error {
	cs.errMu.Lock()
	defer cs.errMu.Unlock()
	return cs.err
}

// TickCount returns completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Pause gates future ticks and freezes simulation time.
// A tick already in progress completes normally
func (cs *ClockScheduler) Pause() {
	if cs.isPaused.CompareAndSwap(false, true) {
		cs.pausableClock.Pause()
	}
}

// Resume reopens the tick gate
func (cs *ClockScheduler) Resume() {
	if cs.isPaused.CompareAndSwap(true, false) {
		cs.pausableClock.Resume()
	}
}

// IsPaused returns the current gate state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.isPaused.Load()
}

func (cs *ClockScheduler) setErr(err error) {
	cs.errMu.Lock()
	cs.err = err
	cs.errMu.Unlock()
}

// schedulerLoop runs ticks against drift-corrected deadlines
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()
	defer close(cs.doneChan)

	cs.mu.Lock()
	cs.nextTickDeadline = cs.pausableClock.Now().Add(cs.tickInterval)
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

		var sleepDuration time.Duration

		if cs.isPaused.Load() {
			// Longer sleep while paused to save CPU; the gate is
			// re-checked each wakeup
			sleepDuration = cs.tickInterval * 2
		} else {
			gameNow := cs.pausableClock.Now()

			cs.mu.Lock()
			deadline := cs.nextTickDeadline
			cs.mu.Unlock()

			if !gameNow.Before(deadline) {
				if err := cs.sim.Step(); err != nil {
					cs.setErr(err)
					return
				}
				cs.statTicks.Store(int64(cs.tickCount.Add(1)))

				if cs.maxTicks > 0 && cs.tickCount.Load() >= cs.maxTicks {
					return
				}

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

				// Re-anchor when far behind instead of bursting to catch up
				if gameNow.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
					cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()

				sleepDuration = deadline.Sub(cs.pausableClock.Now())
				if sleepDuration < 0 {
					sleepDuration = 0
				}
			} else {
				sleepDuration = deadline.Sub(gameNow)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}
