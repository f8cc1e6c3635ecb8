package aigen

import (
	"fmt"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testrun"
)

// BuildStepsPrompt constructs the prompt for test case step generation.
// The feature description is sanitized before embedding and wrapped in
// XML-style tags so instructions and user data stay clearly separated.
func BuildStepsPrompt(featureDescription string) (string, error) {
	sanitized := SanitizeText(featureDescription)
	if sanitized == "" {
		return "", ErrEmptyFeatureDescription
	}

	prompt := fmt.Sprintf(`Based on the following feature description, generate a list of detailed, step-by-step test cases with expected results.

<feature_description>
%s
</feature_description>

<requirements>
- Format the output as a JSON array where each object has "step", "action" and "expected_result" keys
- "step" is a 1-based integer; number the steps consecutively
- Return ONLY the JSON array without markdown formatting or code blocks
- Do not include any explanatory text before or after the JSON
</requirements>`, sanitized)

	return prompt, nil
}

// BuildSummaryPrompt constructs the prompt for a test run summary. It
// enumerates passed and failed test case titles plus counts.
func BuildSummaryPrompt(run testrun.TestRun) string {
	var passedTitles, failedTitles []string
	for _, tc := range run.TestCases {
		switch tc.Status {
		case testcase.StatusPass:
			passedTitles = append(passedTitles, "- "+SanitizeText(tc.Title))
		case testcase.StatusFail:
			failedTitles = append(failedTitles, "- "+SanitizeText(tc.Title))
		}
	}

	passed := "None"
	if len(passedTitles) > 0 {
		passed = strings.Join(passedTitles, "\n")
	}
	failed := "None"
	if len(failedTitles) > 0 {
		failed = strings.Join(failedTitles, "\n")
	}

	return fmt.Sprintf(`Generate a concise summary report for the following test run.
Focus on what passed and what failed.
The report should be suitable for a project manager.

Project: %s
Execution Date: %s

--- PASSED TEST CASES (%d/%d) ---
%s

--- FAILED TEST CASES (%d/%d) ---
%s

--- SUMMARY ---
Based on the results above, provide a brief summary of the test run's outcome.`,
		SanitizeText(run.Name),
		run.Date,
		len(passedTitles), run.TotalTests,
		passed,
		len(failedTitles), run.TotalTests,
		failed,
	)
}
