// Package execution derives the flat list of per-run, per-test-case rows
// used for quick pass/fail recording. The projection is never stored or
// patched in place; it is recomputed from the run store whenever the store
// changes.
package execution

import (
	"errors"
	"fmt"

	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testrun"
)

// ErrTestCaseNotFound is returned when an execution no longer resolves to a
// test case inside a run. The message is shown to the user as-is.
var ErrTestCaseNotFound = errors.New("could not find test case details to update")

// Execution is one derived row per test case per run.
type Execution struct {
	ID          string          `json:"id"`
	Project     string          `json:"project"`
	BatchNumber string          `json:"batch_number"`
	TestCaseID  string          `json:"test_case_id"`
	Title       string          `json:"title"`
	Status      testcase.Status `json:"status"`
}

// ExecutionID builds the composite id for a run/test case pair.
func ExecutionID(runID, testCaseID string) string {
	return fmt.Sprintf("TCE-%s-%s", runID, testCaseID)
}

// Derive flattens every run's test cases into execution records. Calling it
// twice on an unchanged run store yields equal content.
func Derive(runs []testrun.TestRun) []Execution {
	executions := make([]Execution, 0, len(runs))
	for _, run := range runs {
		for _, tc := range run.TestCases {
			executions = append(executions, Execution{
				ID:          ExecutionID(run.ID, tc.ID),
				Project:     run.Name,
				BatchNumber: run.ID,
				TestCaseID:  tc.ID,
				Title:       tc.Title,
				Status:      tc.Status,
			})
		}
	}
	return executions
}

// Resolve joins an execution back to the test case inside its run.
func Resolve(store *testrun.Store, exec Execution) (testcase.TestCase, error) {
	run, ok := store.Get(exec.BatchNumber)
	if !ok {
		return testcase.TestCase{}, ErrTestCaseNotFound
	}
	for _, tc := range run.TestCases {
		if tc.ID == exec.TestCaseID {
			return tc, nil
		}
	}
	return testcase.TestCase{}, ErrTestCaseNotFound
}
