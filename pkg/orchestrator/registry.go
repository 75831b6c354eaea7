package orchestrator

import (
	"sync"

	"github.com/cryoflow/cryoflow/pkg/metrics"
)

// sessionEntry is the in-memory record for one live session. busy is the
// single-flight lock on "a pipeline pass is in flight"; pendingRerun records
// that new work arrived while busy.
type sessionEntry struct {
	running      bool
	busy         bool
	pendingRerun bool

	// evalMu serializes completion evaluation for this session; Class2D
	// completions arriving concurrently must not both observe "no other
	// live jobs" and complete the session twice.
	evalMu sync.Mutex
}

// liveRegistry tracks all sessions the orchestrator currently owns. All flag
// access goes through the registry mutex; busy acquisition is a
// compare-and-set so two concurrent passes can never both proceed.
type liveRegistry struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
}

func newLiveRegistry() *liveRegistry {
	return &liveRegistry{entries: make(map[string]*sessionEntry)}
}

// register adds a session as running with busy clear. Re-registering an
// existing session resets its flags.
func (r *liveRegistry) register(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[sessionID]; !exists {
		metrics.ActiveSessions.Inc()
	}
	r.entries[sessionID] = &sessionEntry{running: true}
}

// remove drops the session from the registry.
func (r *liveRegistry) remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[sessionID]; exists {
		delete(r.entries, sessionID)
		metrics.ActiveSessions.Dec()
	}
}

// registered reports whether the session is in the registry at all.
func (r *liveRegistry) registered(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[sessionID]
	return ok
}

// isRunning reports whether the session is registered and running.
func (r *liveRegistry) isRunning(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	return ok && e.running
}

// setRunning flips the running flag; a no-op for unregistered sessions.
func (r *liveRegistry) setRunning(sessionID string, running bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[sessionID]; ok {
		e.running = running
	}
}

// tryAcquireBusy attempts the busy compare-and-set. It fails when the
// session is not registered or a pass is already in flight.
func (r *liveRegistry) tryAcquireBusy(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	if !ok || e.busy {
		return false
	}
	e.busy = true
	return true
}

// releaseBusy clears the busy flag. Safe to call for sessions that were
// removed while a pass was in flight.
func (r *liveRegistry) releaseBusy(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[sessionID]; ok {
		e.busy = false
	}
}

// isBusy reports whether a pass is in flight.
func (r *liveRegistry) isBusy(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	return ok && e.busy
}

// setPendingRerun records that new work arrived while busy.
func (r *liveRegistry) setPendingRerun(sessionID string, v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[sessionID]; ok {
		e.pendingRerun = v
	}
}

// takePendingRerun reads and clears the pendingRerun flag atomically.
func (r *liveRegistry) takePendingRerun(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	if !ok {
		return false
	}
	v := e.pendingRerun
	e.pendingRerun = false
	return v
}

// lockEval acquires the session's completion-evaluation mutex and returns
// the unlock func, or nil when the session is not registered.
func (r *liveRegistry) lockEval(sessionID string) func() {
	r.mu.Lock()
	e, ok := r.entries[sessionID]
	r.mu.Unlock()
	if !ok {
		return nil
	}
	e.evalMu.Lock()
	return e.evalMu.Unlock
}
