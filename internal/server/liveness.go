package server

import (
	"log/slog"
	"sync"
	"time"
)

// LivenessScheduler owns the single periodic probe timer. Every interval it
// asks the registry to probe members on the coordinator's behalf. Re-arming
// cancels any pending firing and schedules a fresh one, so at most one firing
// is ever pending. The probe is advisory: nothing is kicked or timed out on
// non-response.
type LivenessScheduler struct {
	mu       sync.Mutex
	timer    *time.Timer
	interval time.Duration
	registry *Registry
	logger   *slog.Logger
	stopped  bool
}

// NewLivenessScheduler creates a scheduler probing through the given
// registry. It is inert until Start.
func NewLivenessScheduler(interval time.Duration, registry *Registry, logger *slog.Logger) *LivenessScheduler {
	return &LivenessScheduler{
		interval: interval,
		registry: registry,
		logger:   logger.With("component", "liveness"),
	}
}

// Interval returns the probe period.
func (l *LivenessScheduler) Interval() time.Duration {
	return l.interval
}

// Start arms the first firing.
func (l *LivenessScheduler) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopped = false
	l.armLocked()
}

// Rearm cancels the pending firing and schedules a fresh one a full interval
// out.
func (l *LivenessScheduler) Rearm() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.armLocked()
}

func (l *LivenessScheduler) armLocked() {
	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(l.interval, l.fire)
}

// fire probes and re-arms, giving the fixed-rate cadence.
func (l *LivenessScheduler) fire() {
	if l.registry.ProbeMembers() {
		l.logger.Debug("liveness probe sent")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.stopped {
		l.armLocked()
	}
}

// Stop cancels the pending firing. A stopped scheduler ignores Rearm until
// Start is called again.
func (l *LivenessScheduler) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopped = true
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}
