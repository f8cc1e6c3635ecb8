package aigen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestTracker_Lifecycle(t *testing.T) {
	tr := NewRequestTracker()
	assert.Equal(t, StateIdle, tr.State().State)

	seq := tr.Begin()
	assert.Equal(t, StateInFlight, tr.State().State)

	assert.True(t, tr.Succeed(seq, "generated steps"))
	snapshot := tr.State()
	assert.Equal(t, StateSucceeded, snapshot.State)
	assert.Equal(t, "generated steps", snapshot.Result)
	assert.Empty(t, snapshot.Error)
}

func TestRequestTracker_Failure(t *testing.T) {
	tr := NewRequestTracker()
	seq := tr.Begin()

	assert.True(t, tr.Fail(seq, "model unavailable"))
	snapshot := tr.State()
	assert.Equal(t, StateFailed, snapshot.State)
	assert.Equal(t, "model unavailable", snapshot.Error)
	assert.Empty(t, snapshot.Result)
}

func TestRequestTracker_StaleCompletionDiscarded(t *testing.T) {
	tr := NewRequestTracker()
	first := tr.Begin()
	second := tr.Begin()

	// the older request finishing late must not clobber the newer one
	assert.False(t, tr.Succeed(first, "stale result"))
	assert.Equal(t, StateInFlight, tr.State().State)

	assert.False(t, tr.Fail(first, "stale failure"))
	assert.Equal(t, StateInFlight, tr.State().State)

	assert.True(t, tr.Succeed(second, "fresh result"))
	assert.Equal(t, "fresh result", tr.State().Result)
}

func TestRequestTracker_BeginClearsPreviousResult(t *testing.T) {
	tr := NewRequestTracker()
	seq := tr.Begin()
	tr.Succeed(seq, "old result")

	tr.Begin()
	snapshot := tr.State()
	assert.Equal(t, StateInFlight, snapshot.State)
	assert.Empty(t, snapshot.Result)
}
