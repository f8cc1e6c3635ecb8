// Package fixtures seeds the dashboard with the mock dataset used for
// local development and demos. All of it is plain in-code data; nothing
// here survives a restart.
package fixtures

import (
	"context"
	"errors"
	"time"

	"github.com/hairizuanbinnoorazman/qa-dashboard/environment"
	"github.com/hairizuanbinnoorazman/qa-dashboard/reconcile"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testrun"
)

// Project pairs a project name with its seed test cases.
type Project struct {
	Name      string
	TestCases []testcase.TestCase
}

// Projects returns the seed catalog content.
func Projects() []Project {
	return []Project{
		{
			Name: "Authentication",
			TestCases: []testcase.TestCase{
				{
					ID:          "TC1.1",
					Suite:       "Authentication",
					Title:       "Valid SSO login",
					Priority:    testcase.PriorityHigh,
					Status:      testcase.StatusPass,
					Assignee:    "Anubha",
					LastUpdated: "2025-08-21",
					Runs:        1,
					Description: "Verifies a whitelisted-domain user can log in via SSO.",
					Preconditions: []string{
						"SSO is configured.",
					},
					Steps: []testcase.Step{
						{Step: 1, Action: "Login with SSO using a whitelisted email", ExpectedResult: "Redirected to workspace, session cookie set"},
					},
				},
				{
					ID:          "TC1.2",
					Suite:       "Authentication",
					Title:       "Invalid SSO domain rejected",
					Priority:    testcase.PriorityHigh,
					Status:      testcase.StatusPass,
					Assignee:    "Anubha",
					LastUpdated: "2025-08-21",
					Runs:        1,
					Description: "Ensures users from non-whitelisted domains cannot log in.",
					Preconditions: []string{
						"SSO is configured.",
					},
					Steps: []testcase.Step{
						{Step: 1, Action: "Login with SSO using an unknown domain", ExpectedResult: "Login rejected with an error message"},
					},
				},
				{
					ID:          "TC1.3",
					Suite:       "Authentication",
					Title:       "Session expiry forces re-login",
					Priority:    testcase.PriorityMedium,
					Status:      testcase.StatusNotRun,
					Assignee:    "Anubha",
					LastUpdated: "2025-08-22",
					Description: "Checks an expired session redirects back to the login page.",
					Preconditions: []string{
						"A logged-in session exists.",
					},
					Steps: []testcase.Step{
						{Step: 1, Action: "Wait for the session to expire, then reload", ExpectedResult: "Redirected to the login page"},
					},
				},
			},
		},
		{
			Name: "Executive Dashboard",
			TestCases: []testcase.TestCase{
				{
					ID:          "TC2.1",
					Suite:       "Executive Dashboard",
					Title:       "KPI tiles render on load",
					Priority:    testcase.PriorityHigh,
					Status:      testcase.StatusPass,
					Assignee:    "Anubha",
					LastUpdated: "2025-08-04",
					Runs:        1,
					Description: "Verifies the dashboard landing page shows all KPI tiles.",
					Preconditions: []string{
						"User has dashboard access.",
					},
					Steps: []testcase.Step{
						{Step: 1, Action: "Open the executive dashboard", ExpectedResult: "All KPI tiles render with current values"},
					},
				},
				{
					ID:              "TC2.2",
					Suite:           "Executive Dashboard",
					Title:           "Date range filter updates charts",
					Priority:        testcase.PriorityMedium,
					Status:          testcase.StatusFail,
					Assignee:        "Anubha",
					LastUpdated:     "2025-08-04",
					Runs:            1,
					Description:     "Charts should refresh when the date range changes.",
					GithubStatus:    testcase.GithubStatusOpen,
					IssueNumber:     20,
					GithubIssueLink: "https://github.com/example/dashboard/issues/20",
					Preconditions: []string{
						"Dashboard has data for multiple months.",
					},
					Steps: []testcase.Step{
						{Step: 1, Action: "Select a custom date range", ExpectedResult: "Charts reload scoped to the selected range"},
					},
				},
			},
		},
	}
}

// Runs returns the seed historical test runs.
func Runs() []testrun.TestRun {
	projects := Projects()
	auth := projects[0].TestCases
	dash := projects[1].TestCases

	authPassed := testcase.CloneAll(auth)
	for i := range authPassed {
		authPassed[i].Status = testcase.StatusPass
	}
	authPassed[2].Status = testcase.StatusNotRun

	dashMixed := testcase.CloneAll(dash)
	dashMixed[0].Status = testcase.StatusPass
	dashMixed[1].Status = testcase.StatusFail

	return []testrun.TestRun{
		{
			ID:         "20250821-1",
			Name:       "Authentication",
			Date:       "2025-08-21",
			ExecutedBy: "Anubha",
			TestCases:  authPassed,
		},
		{
			ID:         "20250804-1",
			Name:       "Executive Dashboard",
			Date:       "2025-08-04",
			ExecutedBy: "Anubha",
			TestCases:  dashMixed,
		},
	}
}

// Environments returns the seed environment records.
func Environments() []environment.Environment {
	checked := time.Date(2025, 7, 29, 10, 0, 0, 0, time.UTC)
	return []environment.Environment{
		{Name: "Production", Status: environment.StatusUp, URL: "app.example.com", LastChecked: checked},
		{Name: "Staging", Status: environment.StatusUp, URL: "staging.example.com", LastChecked: checked.Add(time.Minute)},
		{Name: "QA", Status: environment.StatusMaintenance, URL: "qa.example.com", LastChecked: checked.Add(2 * time.Minute)},
	}
}

// SeedEngine loads the seed catalog and runs into the engine. Run stats
// are recomputed on import, so the fixtures can never carry stale counts.
func SeedEngine(ctx context.Context, engine *reconcile.Engine) error {
	for _, p := range Projects() {
		if _, err := engine.AddProject(ctx, p.Name, p.TestCases); err != nil {
			return err
		}
	}
	for _, r := range Runs() {
		engine.ImportRun(r)
	}
	return nil
}

// SeedEnvironments loads the seed environments into the store, skipping
// any that already exist.
func SeedEnvironments(ctx context.Context, store environment.Store) error {
	for _, env := range Environments() {
		env := env
		if err := store.Create(ctx, &env); err != nil {
			if errors.Is(err, environment.ErrDuplicateEnvironmentName) {
				continue
			}
			return err
		}
	}
	return nil
}
