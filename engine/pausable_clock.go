package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides simulation time that freezes while paused.
// The scheduler measures tick deadlines against it so a paused
// simulation accumulates no tick debt
type PausableClock struct {
	mu sync.RWMutex

	realStartTime time.Time // when the clock was created (real time)
	gameStartTime time.Time // simulation time epoch

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // when the current pause started (real time)
	totalPausedTime time.Duration // cumulative pause duration
}

// NewPausableClock creates a running clock
func NewPausableClock() *PausableClock {
	now := time.Now()
	return &PausableClock{
		realStartTime: now,
		gameStartTime: now,
	}
}

// Now returns current simulation time, frozen during pause
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	realElapsed := time.Since(pc.realStartTime)
	return pc.gameStartTime.Add(realElapsed - pc.totalPausedTime)
}

// Pause stops simulation time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = time.Now()
	}
}

// Resume continues simulation time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()

		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += time.Since(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including the
// current pause if one is in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += time.Since(pc.pauseStartTime)
	}
	return total
}
