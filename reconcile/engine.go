// Package reconcile ties the catalog, the run store and the derived
// execution projection together. Every composite operation mutates the
// three under one lock so a reader never observes the catalog and the run
// store disagreeing, and recomputes run stats in the same operation.
package reconcile

import (
	"context"
	"sync"
	"time"

	"github.com/hairizuanbinnoorazman/qa-dashboard/catalog"
	"github.com/hairizuanbinnoorazman/qa-dashboard/dashboard"
	"github.com/hairizuanbinnoorazman/qa-dashboard/execution"
	"github.com/hairizuanbinnoorazman/qa-dashboard/logger"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testrun"
)

// DefaultExecutedBy is recorded on batches created without an explicit
// executor.
const DefaultExecutedBy = "System"

// FailureDetails carries the extra fields captured when a test case is
// marked failed from the execution surface.
type FailureDetails struct {
	Description  string                `json:"description"`
	IssueNumber  int                   `json:"issue_number,omitempty"`
	GithubStatus testcase.GithubStatus `json:"github_status,omitempty"`
}

// Engine owns the catalog and run store and keeps the execution projection
// fresh. All reads hand out deep copies, so a previously fetched run or
// test case is refreshed by reading it again.
type Engine struct {
	mu         sync.Mutex
	catalog    *catalog.Catalog
	runs       *testrun.Store
	executions []execution.Execution
	logger     logger.Logger
}

// NewEngine creates an engine with an empty catalog and run store.
func NewEngine(log logger.Logger) *Engine {
	return &Engine{
		catalog: catalog.New(),
		runs:    testrun.NewStore(),
		logger:  log,
	}
}

// reproject recomputes the execution projection. Callers must hold mu.
func (e *Engine) reproject() {
	e.executions = execution.Derive(e.runs.List())
}

// RunStoreClock overrides the run store's clock for deterministic batch
// ids in tests.
func (e *Engine) RunStoreClock(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.runs.SetClock(now)
}

// UpdateTestCase propagates an edited test case. The catalog's copy is
// replaced in every project. With an empty targetRunID every run containing
// the id is patched; with a targetRunID only that run is patched, and only
// if it already contains the id. Patched runs get their stats recomputed.
// Returns the number of runs patched.
func (e *Engine) UpdateTestCase(ctx context.Context, updated testcase.TestCase, targetRunID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.catalog.UpdateTestCase(updated)
	patched := e.runs.ApplyTestCaseUpdate(updated, targetRunID)
	e.reproject()

	e.logger.Info(ctx, "test case updated", map[string]interface{}{
		"test_case_id": updated.ID,
		"target_run":   targetRunID,
		"runs_patched": patched,
	})
	return patched
}

// DeactivateTestCase removes the test case from the catalog, from every
// run (recomputing stats) and from the execution projection.
func (e *Engine) DeactivateTestCase(ctx context.Context, testCaseID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.catalog.RemoveTestCase(testCaseID)
	changed := e.runs.ApplyTestCaseRemoval(testCaseID)
	e.reproject()

	e.logger.Info(ctx, "test case deactivated", map[string]interface{}{
		"test_case_id": testCaseID,
		"runs_changed": changed,
	})
}

// AddProject creates or overwrites a catalog entry with the given test
// cases. Runs are untouched. Returns whether an existing entry was
// replaced.
func (e *Engine) AddProject(ctx context.Context, name string, testCases []testcase.TestCase) (replaced bool, err error) {
	if name == "" {
		return false, catalog.ErrInvalidProjectName
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	replaced = e.catalog.AddProject(name, testCases)
	e.logger.Info(ctx, "project added", map[string]interface{}{
		"project":    name,
		"test_cases": len(testCases),
		"replaced":   replaced,
	})
	return replaced, nil
}

// AddTestCase prepends a new test case to the named project. New test
// cases are Not Run and join no run until the next batch.
func (e *Engine) AddTestCase(ctx context.Context, project string, tc testcase.TestCase) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.catalog.AddTestCase(project, tc); err != nil {
		return err
	}
	e.logger.Info(ctx, "test case added", map[string]interface{}{
		"project":      project,
		"test_case_id": tc.ID,
	})
	return nil
}

// DeactivateProject deletes the catalog entry and cascades to every run
// whose name contains the project name as a case-insensitive substring.
// Returns the number of runs removed and whether the project existed. An
// unknown name touches nothing: the run cascade only fires once the
// catalog entry has been confirmed.
func (e *Engine) DeactivateProject(ctx context.Context, name string) (removedRuns int, existed bool) {
	if name == "" {
		return 0, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	existed = e.catalog.RemoveProject(name)
	if !existed {
		e.logger.Warn(ctx, "deactivate requested for unknown project", map[string]interface{}{
			"project": name,
		})
		return 0, false
	}
	removedRuns = e.runs.RemoveByProjectName(name)
	e.reproject()

	e.logger.Info(ctx, "project deactivated", map[string]interface{}{
		"project":      name,
		"existed":      existed,
		"runs_removed": removedRuns,
	})
	return removedRuns, existed
}

// AddBatch snapshots the project's current catalog test cases into a new
// run with every status reset to Not Run. Fails with
// testrun.ErrProjectNotFound if the project has no catalog entry.
func (e *Engine) AddBatch(ctx context.Context, project, executedBy string) (testrun.TestRun, error) {
	if executedBy == "" {
		executedBy = DefaultExecutedBy
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	catalogCases, ok := e.catalog.TestCases(project)
	if !ok {
		e.logger.Warn(ctx, "batch requested for unknown project", map[string]interface{}{
			"project": project,
		})
		return testrun.TestRun{}, testrun.ErrProjectNotFound
	}

	run := e.runs.CreateBatch(project, executedBy, catalogCases)
	e.reproject()

	e.logger.Info(ctx, "batch created", map[string]interface{}{
		"project":     project,
		"run_id":      run.ID,
		"total_tests": run.TotalTests,
	})
	return run, nil
}

// RemoveRun deletes a single run by id.
func (e *Engine) RemoveRun(ctx context.Context, runID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed := e.runs.Remove(runID)
	if removed {
		e.reproject()
	}
	e.logger.Info(ctx, "run removed", map[string]interface{}{
		"run_id":  runID,
		"removed": removed,
	})
	return removed
}

// ImportRun seeds a historical run, recomputing its stats. Intended for
// fixture loading.
func (e *Engine) ImportRun(run testrun.TestRun) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.runs.Import(run)
	e.reproject()
}

// RecordPass marks the test case behind an execution row as passed, scoped
// to that execution's run. The catalog copy is updated as well. Fails with
// execution.ErrTestCaseNotFound when the row no longer resolves; no state
// changes in that case.
func (e *Engine) RecordPass(ctx context.Context, executionID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	exec, tc, err := e.resolveExecution(executionID)
	if err != nil {
		e.logger.Warn(ctx, "pass recorded against missing test case", map[string]interface{}{
			"execution_id": executionID,
		})
		return err
	}

	tc.Status = testcase.StatusPass
	e.applyScopedUpdate(tc, exec.BatchNumber)

	e.logger.Info(ctx, "execution passed", map[string]interface{}{
		"execution_id": executionID,
		"run_id":       exec.BatchNumber,
	})
	return nil
}

// RecordFail marks the test case behind an execution row as failed with the
// captured failure details merged in, scoped to that execution's run.
func (e *Engine) RecordFail(ctx context.Context, executionID string, details FailureDetails) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	exec, tc, err := e.resolveExecution(executionID)
	if err != nil {
		e.logger.Warn(ctx, "failure recorded against missing test case", map[string]interface{}{
			"execution_id": executionID,
		})
		return err
	}

	tc.Status = testcase.StatusFail
	tc.Description = details.Description
	tc.IssueNumber = details.IssueNumber
	tc.GithubStatus = details.GithubStatus
	e.applyScopedUpdate(tc, exec.BatchNumber)

	e.logger.Info(ctx, "execution failed", map[string]interface{}{
		"execution_id": executionID,
		"run_id":       exec.BatchNumber,
		"issue_number": details.IssueNumber,
	})
	return nil
}

// resolveExecution joins an execution id back to its row and the test case
// inside the underlying run. Callers must hold mu.
func (e *Engine) resolveExecution(executionID string) (execution.Execution, testcase.TestCase, error) {
	for _, exec := range e.executions {
		if exec.ID == executionID {
			tc, err := execution.Resolve(e.runs, exec)
			if err != nil {
				return execution.Execution{}, testcase.TestCase{}, err
			}
			return exec, tc, nil
		}
	}
	return execution.Execution{}, testcase.TestCase{}, execution.ErrTestCaseNotFound
}

// applyScopedUpdate is UpdateTestCase without the lock, for callers that
// already hold mu.
func (e *Engine) applyScopedUpdate(tc testcase.TestCase, runID string) {
	e.catalog.UpdateTestCase(tc)
	e.runs.ApplyTestCaseUpdate(tc, runID)
	e.reproject()
}

// ProjectNames returns the catalog's project names in insertion order.
func (e *Engine) ProjectNames() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.ProjectNames()
}

// TestCases returns deep copies of a project's catalog test cases.
func (e *Engine) TestCases(project string) ([]testcase.TestCase, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.TestCases(project)
}

// Runs returns all runs most recent first.
func (e *Engine) Runs() []testrun.TestRun {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runs.ListByDateDesc()
}

// Run returns a deep copy of a single run.
func (e *Engine) Run(id string) (testrun.TestRun, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runs.Get(id)
}

// Executions returns a copy of the current execution projection.
func (e *Engine) Executions() []execution.Execution {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]execution.Execution, len(e.executions))
	copy(out, e.executions)
	return out
}

// Summary builds the dashboard summary from the current catalog and runs.
func (e *Engine) Summary() dashboard.Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return dashboard.BuildSummary(e.catalog, e.runs.List())
}
