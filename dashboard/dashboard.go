// Package dashboard derives the summary view: per-project status mixes from
// the most recent runs, with a Not Run fallback for projects that have
// never been run. It reads the catalog and run store and mutates nothing.
package dashboard

import (
	"github.com/hairizuanbinnoorazman/qa-dashboard/catalog"
	"github.com/hairizuanbinnoorazman/qa-dashboard/internal/batchid"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testrun"
)

// Summary is the aggregate state shown on the dashboard.
type Summary struct {
	// Stats aggregates the effective current status mix across all
	// projects: most-recent-run statuses where a project has runs,
	// everything Not Run where it does not.
	Stats testcase.Stats `json:"stats"`

	TotalProjects  int `json:"total_projects"`
	TotalTestCases int `json:"total_test_cases"`

	// TotalExecutions is the cumulative number of test case executions
	// across all historical runs.
	TotalExecutions int `json:"total_executions"`

	// LastExecutionDate is the most recent calendar date present in the
	// run store, empty when there are no runs.
	LastExecutionDate string `json:"last_execution_date,omitempty"`

	// ExecutionsOnLastDate is the number of executions recorded on
	// LastExecutionDate.
	ExecutionsOnLastDate int `json:"executions_on_last_date"`
}

// LatestRunsByProject picks the most recent run per project name. A later
// date wins; on equal dates the greater batch id wins, so the highest
// same-day sequence is deterministic regardless of store order.
func LatestRunsByProject(runs []testrun.TestRun) map[string]testrun.TestRun {
	latest := make(map[string]testrun.TestRun)
	for _, run := range runs {
		existing, ok := latest[run.Name]
		if !ok {
			latest[run.Name] = run
			continue
		}
		if run.Date > existing.Date || (run.Date == existing.Date && batchid.Less(existing.ID, run.ID)) {
			latest[run.Name] = run
		}
	}
	return latest
}

// BuildSummary computes the dashboard summary from the catalog and run
// store contents.
func BuildSummary(cat *catalog.Catalog, runs []testrun.TestRun) Summary {
	latest := LatestRunsByProject(runs)

	var effective []testcase.TestCase
	for _, project := range cat.ProjectNames() {
		if run, ok := latest[project]; ok {
			effective = append(effective, run.TestCases...)
			continue
		}
		catalogCases, _ := cat.TestCases(project)
		for i := range catalogCases {
			catalogCases[i].Status = testcase.StatusNotRun
		}
		effective = append(effective, catalogCases...)
	}

	summary := Summary{
		Stats:          testcase.ComputeStats(effective),
		TotalProjects:  cat.Len(),
		TotalTestCases: cat.TotalTestCases(),
	}

	for _, run := range runs {
		summary.TotalExecutions += run.TotalTests
		if run.Date > summary.LastExecutionDate {
			summary.LastExecutionDate = run.Date
		}
	}
	if summary.LastExecutionDate != "" {
		for _, run := range runs {
			if run.Date == summary.LastExecutionDate {
				summary.ExecutionsOnLastDate += run.TotalTests
			}
		}
	}

	return summary
}
