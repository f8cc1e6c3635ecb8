package testrun

import (
	"errors"

	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
)

var (
	// ErrTestRunNotFound is returned when a test run is not found.
	ErrTestRunNotFound = errors.New("test run not found")

	// ErrProjectNotFound is returned when a batch is requested for a
	// project with no catalog entry.
	ErrProjectNotFound = errors.New("project not found")
)

// TestRun is a frozen snapshot of a project's test cases taken when a batch
// was created. The embedded test cases are independent copies; edits to the
// catalog reach them only through the reconciliation engine. The embedded
// Stats must always agree with TestCases; every mutation in this package
// recomputes it.
type TestRun struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	ExecutedBy string `json:"executed_by"`
	testcase.Stats
	TestCases []testcase.TestCase `json:"test_cases"`
}

// Clone returns a deep copy of the test run.
func (r TestRun) Clone() TestRun {
	out := r
	out.TestCases = testcase.CloneAll(r.TestCases)
	return out
}

// Contains reports whether the run holds a test case with the given id.
func (r *TestRun) Contains(testCaseID string) bool {
	for _, tc := range r.TestCases {
		if tc.ID == testCaseID {
			return true
		}
	}
	return false
}

func (r *TestRun) refreshStats() {
	r.Stats = testcase.ComputeStats(r.TestCases)
}
