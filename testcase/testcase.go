package testcase

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var (
	// ErrInvalidTestCaseID is returned when a test case id is empty.
	ErrInvalidTestCaseID = errors.New("test case id is required")

	// ErrInvalidTestCaseTitle is returned when a test case title is empty.
	ErrInvalidTestCaseTitle = errors.New("test case title is required")

	// ErrInvalidStatus is returned when a test case status is not recognized.
	ErrInvalidStatus = errors.New("invalid test case status")

	// ErrInvalidPriority is returned when a test case priority is not recognized.
	ErrInvalidPriority = errors.New("invalid test case priority")

	// ErrInvalidGithubStatus is returned when a github issue status is not recognized.
	ErrInvalidGithubStatus = errors.New("invalid github status")
)

// DateLayout is the calendar date format used throughout the domain.
const DateLayout = "2006-01-02"

// Status represents the execution status of a test case.
type Status string

const (
	StatusPass    Status = "Pass"
	StatusFail    Status = "Fail"
	StatusBlocked Status = "Blocked"
	StatusNotRun  Status = "Not Run"
)

// IsValid checks if the status is valid.
func (s Status) IsValid() bool {
	switch s {
	case StatusPass, StatusFail, StatusBlocked, StatusNotRun:
		return true
	default:
		return false
	}
}

// Priority represents how important a test case is.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// IsValid checks if the priority is valid.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// GithubStatus represents the state of a linked github issue.
type GithubStatus string

const (
	GithubStatusOpen       GithubStatus = "Open"
	GithubStatusClosed     GithubStatus = "Closed"
	GithubStatusInProgress GithubStatus = "In Progress"
)

// IsValid checks if the github status is valid.
func (g GithubStatus) IsValid() bool {
	switch g {
	case GithubStatusOpen, GithubStatusClosed, GithubStatusInProgress:
		return true
	default:
		return false
	}
}

// Step is a single numbered action within a test case. Steps are 1-based
// and contiguous; use RenumberSteps after inserting or removing entries.
type Step struct {
	Step           int    `json:"step"`
	Action         string `json:"action"`
	ExpectedResult string `json:"expected_result"`
}

// TestCase is the definition of a single test case. The catalog holds the
// authoritative copy; every test run embeds its own independent copies.
type TestCase struct {
	ID              string       `json:"id"`
	Suite           string       `json:"suite"`
	Title           string       `json:"title"`
	Priority        Priority     `json:"priority"`
	Status          Status       `json:"status"`
	Assignee        string       `json:"assignee"`
	LastUpdated     string       `json:"last_updated"`
	Description     string       `json:"description"`
	Preconditions   []string     `json:"preconditions"`
	Steps           []Step       `json:"steps"`
	DocumentLink    string       `json:"document_link,omitempty"`
	GithubIssueLink string       `json:"github_issue_link,omitempty"`
	GithubStatus    GithubStatus `json:"github_status,omitempty"`
	IssueNumber     int          `json:"issue_number,omitempty"`
	Runs            int          `json:"runs,omitempty"`
}

// Validate checks if the test case has valid required fields.
func (tc *TestCase) Validate() error {
	if tc.ID == "" {
		return ErrInvalidTestCaseID
	}
	if tc.Title == "" {
		return ErrInvalidTestCaseTitle
	}
	if !tc.Status.IsValid() {
		return ErrInvalidStatus
	}
	if !tc.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if tc.GithubStatus != "" && !tc.GithubStatus.IsValid() {
		return ErrInvalidGithubStatus
	}
	return nil
}

// Clone returns a deep copy of the test case. Preconditions and steps are
// copied so run snapshots never alias catalog slices.
func (tc TestCase) Clone() TestCase {
	out := tc
	if tc.Preconditions != nil {
		out.Preconditions = make([]string, len(tc.Preconditions))
		copy(out.Preconditions, tc.Preconditions)
	}
	if tc.Steps != nil {
		out.Steps = make([]Step, len(tc.Steps))
		copy(out.Steps, tc.Steps)
	}
	return out
}

// CloneAll deep-copies a slice of test cases.
func CloneAll(testCases []TestCase) []TestCase {
	out := make([]TestCase, len(testCases))
	for i, tc := range testCases {
		out[i] = tc.Clone()
	}
	return out
}

// RenumberSteps rewrites step numbers so they are 1-based and contiguous.
func RenumberSteps(steps []Step) {
	for i := range steps {
		steps[i].Step = i + 1
	}
}

// NewID generates a test case id of the form "TC-<initials>-<n>" where the
// initials come from the project name.
func NewID(project string) string {
	var initials strings.Builder
	for _, word := range strings.Fields(project) {
		initials.WriteString(strings.ToUpper(string([]rune(word)[0])))
	}
	return fmt.Sprintf("TC-%s-%d", initials.String(), 100+rand.Intn(900))
}

// New creates a test case for the given project with the standard defaults:
// status Not Run, a placeholder precondition and a single placeholder step.
func New(project, title, description string, priority Priority, assignee string) TestCase {
	return TestCase{
		ID:            NewID(project),
		Suite:         project,
		Title:         title,
		Priority:      priority,
		Status:        StatusNotRun,
		Assignee:      assignee,
		LastUpdated:   time.Now().Format(DateLayout),
		Description:   description,
		Preconditions: []string{"Precondition to be defined."},
		Steps: []Step{
			{Step: 1, Action: "Action to be defined.", ExpectedResult: "Expected result to be defined."},
		},
	}
}
