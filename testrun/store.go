package testrun

import (
	"sort"
	"strings"
	"time"

	"github.com/hairizuanbinnoorazman/qa-dashboard/internal/batchid"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
)

// Store is an ordered collection of test run snapshots. Runs are kept in
// insertion order; ListByDateDesc provides the display ordering. Store is
// not safe for concurrent use; the reconciliation engine serializes access.
type Store struct {
	runs []TestRun
	now  func() time.Time
}

// NewStore creates an empty run store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// SetClock overrides the store's clock. Intended for tests that need a
// fixed batch date.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// CreateBatch snapshots the given catalog test cases into a new run for the
// project. Every snapshot starts as Not Run. The run id is
// "{YYYYMMDD}-{N}" where N counts the runs already created for this project
// today, plus one.
func (s *Store) CreateBatch(project, executedBy string, catalogCases []testcase.TestCase) TestRun {
	today := s.now()
	todayStr := today.Format(testcase.DateLayout)

	countForToday := 0
	for _, r := range s.runs {
		if r.Name == project && r.Date == todayStr {
			countForToday++
		}
	}

	snapshots := testcase.CloneAll(catalogCases)
	for i := range snapshots {
		snapshots[i].Status = testcase.StatusNotRun
	}

	run := TestRun{
		ID:         batchid.New(today, countForToday+1),
		Name:       project,
		Date:       todayStr,
		ExecutedBy: executedBy,
		Stats:      testcase.ComputeStats(snapshots),
		TestCases:  snapshots,
	}

	s.runs = append(s.runs, run)
	return run.Clone()
}

// Import appends an existing run to the store, recomputing its stats so a
// hand-built fixture can never carry stale counts.
func (s *Store) Import(run TestRun) {
	r := run.Clone()
	r.refreshStats()
	s.runs = append(s.runs, r)
}

// ApplyTestCaseUpdate replaces the test case matching updated.ID inside
// runs and recomputes their stats. With a targetRunID, only that run is
// patched, and only if it already contains the id; with an empty
// targetRunID every run containing the id is patched. Runs not containing
// the id are untouched. Returns the number of runs patched.
func (s *Store) ApplyTestCaseUpdate(updated testcase.TestCase, targetRunID string) int {
	patched := 0
	for i := range s.runs {
		run := &s.runs[i]
		if targetRunID != "" && run.ID != targetRunID {
			continue
		}
		if !run.Contains(updated.ID) {
			continue
		}
		for j, tc := range run.TestCases {
			if tc.ID == updated.ID {
				run.TestCases[j] = updated.Clone()
			}
		}
		run.refreshStats()
		patched++
	}
	return patched
}

// ApplyTestCaseRemoval filters the test case with the given id out of every
// run containing it, recomputing stats. Returns the number of runs changed.
func (s *Store) ApplyTestCaseRemoval(testCaseID string) int {
	changed := 0
	for i := range s.runs {
		run := &s.runs[i]
		if !run.Contains(testCaseID) {
			continue
		}
		filtered := run.TestCases[:0]
		for _, tc := range run.TestCases {
			if tc.ID != testCaseID {
				filtered = append(filtered, tc)
			}
		}
		run.TestCases = filtered
		run.refreshStats()
		changed++
	}
	return changed
}

// Remove deletes the run with the given id. It reports whether a run was
// removed.
func (s *Store) Remove(id string) bool {
	for i, r := range s.runs {
		if r.ID == id {
			s.runs = append(s.runs[:i], s.runs[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveByProjectName deletes every run whose name contains the given
// project name as a case-insensitive substring. This is the cascade rule
// on project deactivation; note it can catch runs of another project
// whose name is a superstring (e.g. "AI" also matches "AI Academy").
// Strict equality has deliberately not been substituted. Returns the
// number of runs removed.
func (s *Store) RemoveByProjectName(project string) int {
	needle := strings.ToLower(project)
	kept := s.runs[:0]
	removed := 0
	for _, r := range s.runs {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.runs = kept
	return removed
}

// Get returns a deep copy of the run with the given id.
func (s *Store) Get(id string) (TestRun, bool) {
	for _, r := range s.runs {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return TestRun{}, false
}

// List returns deep copies of all runs in insertion order.
func (s *Store) List() []TestRun {
	out := make([]TestRun, len(s.runs))
	for i, r := range s.runs {
		out[i] = r.Clone()
	}
	return out
}

// ListByDateDesc returns deep copies of all runs sorted most recent first.
// Runs sharing a date are ordered by descending batch id, so the highest
// same-day sequence comes first.
func (s *Store) ListByDateDesc() []TestRun {
	out := s.List()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return batchid.Less(out[j].ID, out[i].ID)
	})
	return out
}

// Len returns the number of runs in the store.
func (s *Store) Len() int {
	return len(s.runs)
}
