package aigen

import "sync"

// RequestState tags the lifecycle of a generation request site.
type RequestState string

const (
	StateIdle      RequestState = "idle"
	StateInFlight  RequestState = "in_flight"
	StateSucceeded RequestState = "succeeded"
	StateFailed    RequestState = "failed"
)

// Snapshot is the observable state of a request site.
type Snapshot struct {
	State  RequestState `json:"state"`
	Result string       `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// RequestTracker tracks one generation request site. Each Begin issues a
// monotonically increasing request number; a completion carrying a stale
// number (a newer request has started since) is discarded instead of
// overwriting the latest state.
type RequestTracker struct {
	mu     sync.Mutex
	seq    uint64
	state  RequestState
	result string
	err    string
}

// NewRequestTracker creates a tracker in the Idle state.
func NewRequestTracker() *RequestTracker {
	return &RequestTracker{state: StateIdle}
}

// Begin marks a new request in flight and returns its request number.
func (t *RequestTracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	t.state = StateInFlight
	t.result = ""
	t.err = ""
	return t.seq
}

// Succeed records a successful completion for the given request number.
// It reports whether the result was applied; a stale number is discarded.
func (t *RequestTracker) Succeed(seq uint64, result string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.seq {
		return false
	}
	t.state = StateSucceeded
	t.result = result
	t.err = ""
	return true
}

// Fail records a failed completion for the given request number. It
// reports whether the failure was applied; a stale number is discarded.
func (t *RequestTracker) Fail(seq uint64, reason string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.seq {
		return false
	}
	t.state = StateFailed
	t.result = ""
	t.err = reason
	return true
}

// State returns the current observable state.
func (t *RequestTracker) State() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{
		State:  t.state,
		Result: t.result,
		Error:  t.err,
	}
}
