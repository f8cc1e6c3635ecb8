package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/hairizuanbinnoorazman/qa-dashboard/catalog"
	"github.com/hairizuanbinnoorazman/qa-dashboard/execution"
	"github.com/hairizuanbinnoorazman/qa-dashboard/logger"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testrun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEngine(t *testing.T) *Engine {
	e := NewEngine(logger.NewTestLogger())
	e.RunStoreClock(func() time.Time {
		return time.Date(2025, 8, 21, 10, 0, 0, 0, time.UTC)
	})
	return e
}

func makeTestCase(id, title string) testcase.TestCase {
	return testcase.TestCase{
		ID:       id,
		Suite:    "Authentication",
		Title:    title,
		Priority: testcase.PriorityHigh,
		Status:   testcase.StatusNotRun,
	}
}

func TestEngine_AddProject(t *testing.T) {
	ctx := context.Background()

	t.Run("new project", func(t *testing.T) {
		e := setupEngine(t)
		replaced, err := e.AddProject(ctx, "Authentication", []testcase.TestCase{makeTestCase("TC-1.1", "Login")})
		require.NoError(t, err)
		assert.False(t, replaced)
		assert.Equal(t, []string{"Authentication"}, e.ProjectNames())
	})

	t.Run("overwrite reports replaced", func(t *testing.T) {
		e := setupEngine(t)
		_, err := e.AddProject(ctx, "Authentication", nil)
		require.NoError(t, err)
		replaced, err := e.AddProject(ctx, "Authentication", []testcase.TestCase{makeTestCase("TC-1.1", "Login")})
		require.NoError(t, err)
		assert.True(t, replaced)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		e := setupEngine(t)
		_, err := e.AddProject(ctx, "", nil)
		assert.ErrorIs(t, err, catalog.ErrInvalidProjectName)
	})
}

func TestEngine_AddBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots catalog and projects executions", func(t *testing.T) {
		e := setupEngine(t)
		tc := makeTestCase("TC-1.1", "Login")
		tc.Status = testcase.StatusPass
		_, err := e.AddProject(ctx, "Authentication", []testcase.TestCase{tc})
		require.NoError(t, err)

		run, err := e.AddBatch(ctx, "Authentication", "")
		require.NoError(t, err)
		assert.Equal(t, "20250821-1", run.ID)
		assert.Equal(t, DefaultExecutedBy, run.ExecutedBy)
		require.Len(t, run.TestCases, 1)
		assert.Equal(t, testcase.StatusNotRun, run.TestCases[0].Status)

		executions := e.Executions()
		require.Len(t, executions, 1)
		assert.Equal(t, "TCE-20250821-1-TC-1.1", executions[0].ID)
	})

	t.Run("unknown project", func(t *testing.T) {
		e := setupEngine(t)
		_, err := e.AddBatch(ctx, "Nope", "")
		assert.ErrorIs(t, err, testrun.ErrProjectNotFound)
	})
}

func TestEngine_UpdateTestCase(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *Engine {
		e := setupEngine(t)
		_, err := e.AddProject(ctx, "Authentication", []testcase.TestCase{
			makeTestCase("TC-1.1", "Login"),
			makeTestCase("TC-1.2", "Logout"),
		})
		require.NoError(t, err)
		_, err = e.AddBatch(ctx, "Authentication", "")
		require.NoError(t, err)
		_, err = e.AddBatch(ctx, "Authentication", "")
		require.NoError(t, err)
		return e
	}

	t.Run("global update reaches catalog and every run", func(t *testing.T) {
		e := setup(t)
		updated := makeTestCase("TC-1.1", "Login via SSO")
		updated.Status = testcase.StatusPass

		patched := e.UpdateTestCase(ctx, updated, "")
		assert.Equal(t, 2, patched)

		catalogCases, _ := e.TestCases("Authentication")
		assert.Equal(t, "Login via SSO", catalogCases[0].Title)

		for _, run := range e.Runs() {
			assert.Equal(t, 1, run.Passed, "run %s", run.ID)
			assert.Equal(t, "Login via SSO", run.TestCases[0].Title)
		}
	})

	t.Run("scoped update leaves other runs alone", func(t *testing.T) {
		e := setup(t)
		updated := makeTestCase("TC-1.1", "Login")
		updated.Status = testcase.StatusFail

		patched := e.UpdateTestCase(ctx, updated, "20250821-2")
		assert.Equal(t, 1, patched)

		scoped, _ := e.Run("20250821-2")
		assert.Equal(t, 1, scoped.Failed)

		other, _ := e.Run("20250821-1")
		assert.Equal(t, 0, other.Failed)

		// catalog copy still takes the edit
		catalogCases, _ := e.TestCases("Authentication")
		assert.Equal(t, testcase.StatusFail, catalogCases[0].Status)
	})

	t.Run("projection reflects the update", func(t *testing.T) {
		e := setup(t)
		updated := makeTestCase("TC-1.2", "Logout")
		updated.Status = testcase.StatusBlocked
		e.UpdateTestCase(ctx, updated, "")

		for _, exec := range e.Executions() {
			if exec.TestCaseID == "TC-1.2" {
				assert.Equal(t, testcase.StatusBlocked, exec.Status)
			}
		}
	})
}

func TestEngine_DeactivateTestCase(t *testing.T) {
	ctx := context.Background()
	e := setupEngine(t)
	_, err := e.AddProject(ctx, "Authentication", []testcase.TestCase{
		makeTestCase("TC-1.1", "Login"),
		makeTestCase("TC-1.2", "Logout"),
	})
	require.NoError(t, err)
	_, err = e.AddBatch(ctx, "Authentication", "")
	require.NoError(t, err)

	e.DeactivateTestCase(ctx, "TC-1.1")

	catalogCases, _ := e.TestCases("Authentication")
	require.Len(t, catalogCases, 1)
	assert.Equal(t, "TC-1.2", catalogCases[0].ID)

	run, _ := e.Run("20250821-1")
	assert.Equal(t, 1, run.TotalTests)
	assert.Len(t, e.Executions(), 1)
}

func TestEngine_DeactivateProject(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades to runs and executions", func(t *testing.T) {
		e := setupEngine(t)
		_, err := e.AddProject(ctx, "Authentication", []testcase.TestCase{makeTestCase("TC-1.1", "Login")})
		require.NoError(t, err)
		_, err = e.AddBatch(ctx, "Authentication", "")
		require.NoError(t, err)

		removedRuns, existed := e.DeactivateProject(ctx, "Authentication")
		assert.True(t, existed)
		assert.Equal(t, 1, removedRuns)
		assert.Empty(t, e.ProjectNames())
		assert.Empty(t, e.Runs())
		assert.Empty(t, e.Executions())
	})

	t.Run("unknown project", func(t *testing.T) {
		e := setupEngine(t)
		removedRuns, existed := e.DeactivateProject(ctx, "Nope")
		assert.False(t, existed)
		assert.Equal(t, 0, removedRuns)
	})

	t.Run("unknown substring of an existing project leaves runs intact", func(t *testing.T) {
		e := setupEngine(t)
		_, err := e.AddProject(ctx, "Authentication", []testcase.TestCase{makeTestCase("TC-1.1", "Login")})
		require.NoError(t, err)
		_, err = e.AddBatch(ctx, "Authentication", "")
		require.NoError(t, err)

		removedRuns, existed := e.DeactivateProject(ctx, "Auth")
		assert.False(t, existed)
		assert.Equal(t, 0, removedRuns)
		assert.Len(t, e.Runs(), 1)
		assert.Len(t, e.Executions(), 1)
		assert.Equal(t, []string{"Authentication"}, e.ProjectNames())
	})

	t.Run("empty name touches nothing", func(t *testing.T) {
		e := setupEngine(t)
		_, err := e.AddProject(ctx, "Authentication", []testcase.TestCase{makeTestCase("TC-1.1", "Login")})
		require.NoError(t, err)
		_, err = e.AddBatch(ctx, "Authentication", "")
		require.NoError(t, err)

		removedRuns, existed := e.DeactivateProject(ctx, "")
		assert.False(t, existed)
		assert.Equal(t, 0, removedRuns)
		assert.Len(t, e.Runs(), 1)
	})
}

func TestEngine_RecordPass(t *testing.T) {
	ctx := context.Background()

	t.Run("marks pass scoped to the execution's run", func(t *testing.T) {
		e := setupEngine(t)
		_, err := e.AddProject(ctx, "Authentication", []testcase.TestCase{makeTestCase("TC-1.1", "Login")})
		require.NoError(t, err)
		_, err = e.AddBatch(ctx, "Authentication", "")
		require.NoError(t, err)
		_, err = e.AddBatch(ctx, "Authentication", "")
		require.NoError(t, err)

		err = e.RecordPass(ctx, "TCE-20250821-1-TC-1.1")
		require.NoError(t, err)

		first, _ := e.Run("20250821-1")
		assert.Equal(t, 1, first.Passed)

		second, _ := e.Run("20250821-2")
		assert.Equal(t, 0, second.Passed)

		catalogCases, _ := e.TestCases("Authentication")
		assert.Equal(t, testcase.StatusPass, catalogCases[0].Status)
	})

	t.Run("unknown execution is a no-op", func(t *testing.T) {
		e := setupEngine(t)
		_, err := e.AddProject(ctx, "Authentication", []testcase.TestCase{makeTestCase("TC-1.1", "Login")})
		require.NoError(t, err)
		_, err = e.AddBatch(ctx, "Authentication", "")
		require.NoError(t, err)

		before, _ := e.Run("20250821-1")
		err = e.RecordPass(ctx, "TCE-20250821-1-TC-404")
		assert.ErrorIs(t, err, execution.ErrTestCaseNotFound)

		after, _ := e.Run("20250821-1")
		assert.Equal(t, before, after)
	})
}

func TestEngine_RecordFail(t *testing.T) {
	ctx := context.Background()
	e := setupEngine(t)
	_, err := e.AddProject(ctx, "Authentication", []testcase.TestCase{makeTestCase("TC-1.1", "Login")})
	require.NoError(t, err)
	_, err = e.AddBatch(ctx, "Authentication", "")
	require.NoError(t, err)

	err = e.RecordFail(ctx, "TCE-20250821-1-TC-1.1", FailureDetails{
		Description:  "Login button unresponsive on Safari",
		IssueNumber:  842,
		GithubStatus: testcase.GithubStatusOpen,
	})
	require.NoError(t, err)

	run, _ := e.Run("20250821-1")
	require.Len(t, run.TestCases, 1)
	failed := run.TestCases[0]
	assert.Equal(t, testcase.StatusFail, failed.Status)
	assert.Equal(t, "Login button unresponsive on Safari", failed.Description)
	assert.Equal(t, 842, failed.IssueNumber)
	assert.Equal(t, testcase.GithubStatusOpen, failed.GithubStatus)
	assert.Equal(t, 1, run.Failed)
}

func TestEngine_AddTestCase(t *testing.T) {
	ctx := context.Background()

	t.Run("joins no run until the next batch", func(t *testing.T) {
		e := setupEngine(t)
		_, err := e.AddProject(ctx, "Authentication", []testcase.TestCase{makeTestCase("TC-1.1", "Login")})
		require.NoError(t, err)
		_, err = e.AddBatch(ctx, "Authentication", "")
		require.NoError(t, err)

		err = e.AddTestCase(ctx, "Authentication", makeTestCase("TC-1.2", "Logout"))
		require.NoError(t, err)

		existing, _ := e.Run("20250821-1")
		assert.Equal(t, 1, existing.TotalTests)

		next, err := e.AddBatch(ctx, "Authentication", "")
		require.NoError(t, err)
		assert.Equal(t, 2, next.TotalTests)
		assert.Equal(t, "TC-1.2", next.TestCases[0].ID)
	})

	t.Run("unknown project", func(t *testing.T) {
		e := setupEngine(t)
		err := e.AddTestCase(ctx, "Nope", makeTestCase("TC-1.1", "Login"))
		assert.ErrorIs(t, err, catalog.ErrProjectNotFound)
	})
}

func TestEngine_RunLifecycle(t *testing.T) {
	ctx := context.Background()
	e := setupEngine(t)

	_, err := e.AddProject(ctx, "Auth", []testcase.TestCase{
		makeTestCase("TC-A", "A"),
		makeTestCase("TC-B", "B"),
	})
	require.NoError(t, err)

	run, err := e.AddBatch(ctx, "Auth", "")
	require.NoError(t, err)
	assert.Equal(t, testcase.Stats{NotRun: 2, TotalTests: 2}, run.Stats)

	passed := makeTestCase("TC-A", "A")
	passed.Status = testcase.StatusPass
	e.UpdateTestCase(ctx, passed, run.ID)

	after, _ := e.Run(run.ID)
	assert.Equal(t, testcase.Stats{Passed: 1, NotRun: 1, TotalTests: 2}, after.Stats)

	e.DeactivateTestCase(ctx, "TC-B")

	catalogCases, _ := e.TestCases("Auth")
	require.Len(t, catalogCases, 1)
	assert.Equal(t, "TC-A", catalogCases[0].ID)

	final, _ := e.Run(run.ID)
	require.Len(t, final.TestCases, 1)
	assert.Equal(t, testcase.Stats{Passed: 1, TotalTests: 1}, final.Stats)
}

func TestEngine_Summary(t *testing.T) {
	ctx := context.Background()
	e := setupEngine(t)
	_, err := e.AddProject(ctx, "Authentication", []testcase.TestCase{
		makeTestCase("TC-1.1", "Login"),
		makeTestCase("TC-1.2", "Logout"),
	})
	require.NoError(t, err)
	_, err = e.AddBatch(ctx, "Authentication", "")
	require.NoError(t, err)
	require.NoError(t, e.RecordPass(ctx, "TCE-20250821-1-TC-1.1"))

	summary := e.Summary()
	assert.Equal(t, 1, summary.TotalProjects)
	assert.Equal(t, 2, summary.TotalTestCases)
	assert.Equal(t, testcase.Stats{Passed: 1, NotRun: 1, TotalTests: 2}, summary.Stats)
	assert.Equal(t, "2025-08-21", summary.LastExecutionDate)
}

func TestEngine_ImportRun(t *testing.T) {
	e := setupEngine(t)
	e.ImportRun(testrun.TestRun{
		ID: "20250804-1", Name: "Authentication", Date: "2025-08-04",
		TestCases: []testcase.TestCase{makeTestCase("TC-1.1", "Login")},
	})

	run, ok := e.Run("20250804-1")
	require.True(t, ok)
	assert.Equal(t, 1, run.TotalTests)
	assert.Len(t, e.Executions(), 1)
}

func TestEngine_RemoveRun(t *testing.T) {
	ctx := context.Background()
	e := setupEngine(t)
	_, err := e.AddProject(ctx, "Authentication", []testcase.TestCase{makeTestCase("TC-1.1", "Login")})
	require.NoError(t, err)
	_, err = e.AddBatch(ctx, "Authentication", "")
	require.NoError(t, err)

	assert.True(t, e.RemoveRun(ctx, "20250821-1"))
	assert.Empty(t, e.Executions())
	assert.False(t, e.RemoveRun(ctx, "20250821-1"))

	// catalog untouched
	assert.Equal(t, []string{"Authentication"}, e.ProjectNames())
}
