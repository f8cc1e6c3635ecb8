package aigen

import (
	"testing"

	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testrun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStepsPrompt(t *testing.T) {
	t.Run("embeds sanitized description", func(t *testing.T) {
		prompt, err := BuildStepsPrompt("User can reset <their> password")
		require.NoError(t, err)
		assert.Contains(t, prompt, "<feature_description>\nUser can reset (their) password\n</feature_description>")
		assert.Contains(t, prompt, `"expected_result"`)
	})

	t.Run("empty description rejected", func(t *testing.T) {
		_, err := BuildStepsPrompt("   ")
		assert.ErrorIs(t, err, ErrEmptyFeatureDescription)
	})
}

func TestBuildSummaryPrompt(t *testing.T) {
	run := testrun.TestRun{
		ID: "20250821-1", Name: "Authentication", Date: "2025-08-21",
		Stats: testcase.Stats{Passed: 1, Failed: 1, NotRun: 1, TotalTests: 3},
		TestCases: []testcase.TestCase{
			{ID: "TC-1.1", Title: "Login works", Status: testcase.StatusPass},
			{ID: "TC-1.2", Title: "Logout works", Status: testcase.StatusFail},
			{ID: "TC-1.3", Title: "Session expiry", Status: testcase.StatusNotRun},
		},
	}

	prompt := BuildSummaryPrompt(run)
	assert.Contains(t, prompt, "Project: Authentication")
	assert.Contains(t, prompt, "Execution Date: 2025-08-21")
	assert.Contains(t, prompt, "PASSED TEST CASES (1/3)")
	assert.Contains(t, prompt, "- Login works")
	assert.Contains(t, prompt, "FAILED TEST CASES (1/3)")
	assert.Contains(t, prompt, "- Logout works")
	assert.NotContains(t, prompt, "Session expiry")
}

func TestBuildSummaryPrompt_NoResults(t *testing.T) {
	run := testrun.TestRun{ID: "20250821-1", Name: "Authentication", Date: "2025-08-21"}
	prompt := BuildSummaryPrompt(run)
	assert.Contains(t, prompt, "PASSED TEST CASES (0/0)")
	assert.Contains(t, prompt, "None")
}
