package dashboard

import (
	"testing"

	"github.com/hairizuanbinnoorazman/qa-dashboard/catalog"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testrun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRun(id, name, date string, statuses ...testcase.Status) testrun.TestRun {
	testCases := make([]testcase.TestCase, len(statuses))
	for i, s := range statuses {
		testCases[i] = testcase.TestCase{ID: "tc", Status: s}
	}
	return testrun.TestRun{
		ID: id, Name: name, Date: date,
		Stats:     testcase.ComputeStats(testCases),
		TestCases: testCases,
	}
}

func TestLatestRunsByProject(t *testing.T) {
	t.Run("later date wins", func(t *testing.T) {
		latest := LatestRunsByProject([]testrun.TestRun{
			makeRun("20250821-1", "Authentication", "2025-08-21"),
			makeRun("20250804-1", "Authentication", "2025-08-04"),
		})
		require.Len(t, latest, 1)
		assert.Equal(t, "20250821-1", latest["Authentication"].ID)
	})

	t.Run("equal dates pick greater batch id", func(t *testing.T) {
		latest := LatestRunsByProject([]testrun.TestRun{
			makeRun("20250821-2", "Authentication", "2025-08-21"),
			makeRun("20250821-1", "Authentication", "2025-08-21"),
		})
		assert.Equal(t, "20250821-2", latest["Authentication"].ID)

		// independent of input order
		latest = LatestRunsByProject([]testrun.TestRun{
			makeRun("20250821-1", "Authentication", "2025-08-21"),
			makeRun("20250821-2", "Authentication", "2025-08-21"),
		})
		assert.Equal(t, "20250821-2", latest["Authentication"].ID)
	})

	t.Run("projects do not mix", func(t *testing.T) {
		latest := LatestRunsByProject([]testrun.TestRun{
			makeRun("20250821-1", "Authentication", "2025-08-21"),
			makeRun("20250822-1", "Regression", "2025-08-22"),
		})
		require.Len(t, latest, 2)
		assert.Equal(t, "20250821-1", latest["Authentication"].ID)
		assert.Equal(t, "20250822-1", latest["Regression"].ID)
	})
}

func TestBuildSummary(t *testing.T) {
	t.Run("uses most recent run per project", func(t *testing.T) {
		cat := catalog.New()
		cat.AddProject("Authentication", []testcase.TestCase{
			{ID: "TC-1.1", Status: testcase.StatusNotRun},
			{ID: "TC-1.2", Status: testcase.StatusNotRun},
		})

		runs := []testrun.TestRun{
			makeRun("20250804-1", "Authentication", "2025-08-04", testcase.StatusFail, testcase.StatusFail),
			makeRun("20250821-1", "Authentication", "2025-08-21", testcase.StatusPass, testcase.StatusFail),
		}

		summary := BuildSummary(cat, runs)
		assert.Equal(t, testcase.Stats{Passed: 1, Failed: 1, TotalTests: 2}, summary.Stats)
		assert.Equal(t, 1, summary.TotalProjects)
		assert.Equal(t, 2, summary.TotalTestCases)
	})

	t.Run("runless project counts everything as not run", func(t *testing.T) {
		cat := catalog.New()
		cat.AddProject("Authentication", []testcase.TestCase{
			{ID: "TC-1.1", Status: testcase.StatusPass},
		})
		cat.AddProject("Regression", []testcase.TestCase{
			{ID: "TC-2.1", Status: testcase.StatusFail},
			{ID: "TC-2.2", Status: testcase.StatusBlocked},
		})

		runs := []testrun.TestRun{
			makeRun("20250821-1", "Authentication", "2025-08-21", testcase.StatusPass),
		}

		summary := BuildSummary(cat, runs)
		assert.Equal(t, testcase.Stats{Passed: 1, NotRun: 2, TotalTests: 3}, summary.Stats)
	})

	t.Run("execution totals and last date", func(t *testing.T) {
		cat := catalog.New()
		cat.AddProject("Authentication", nil)

		runs := []testrun.TestRun{
			makeRun("20250804-1", "Authentication", "2025-08-04", testcase.StatusPass, testcase.StatusPass),
			makeRun("20250821-1", "Authentication", "2025-08-21", testcase.StatusFail),
			makeRun("20250821-1", "Regression", "2025-08-21", testcase.StatusPass),
		}

		summary := BuildSummary(cat, runs)
		assert.Equal(t, 4, summary.TotalExecutions)
		assert.Equal(t, "2025-08-21", summary.LastExecutionDate)
		assert.Equal(t, 2, summary.ExecutionsOnLastDate)
	})

	t.Run("empty state", func(t *testing.T) {
		summary := BuildSummary(catalog.New(), nil)
		assert.Equal(t, testcase.Stats{}, summary.Stats)
		assert.Equal(t, 0, summary.TotalProjects)
		assert.Empty(t, summary.LastExecutionDate)
	})
}
