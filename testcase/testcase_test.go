package testcase

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestCase() TestCase {
	return TestCase{
		ID:       "TC-1.1",
		Suite:    "Authentication",
		Title:    "Verify login with valid credentials",
		Priority: PriorityHigh,
		Status:   StatusNotRun,
	}
}

func TestTestCase_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TestCase)
		wantErr error
	}{
		{
			name:    "valid test case",
			mutate:  func(tc *TestCase) {},
			wantErr: nil,
		},
		{
			name:    "valid with github status",
			mutate:  func(tc *TestCase) { tc.GithubStatus = GithubStatusOpen },
			wantErr: nil,
		},
		{
			name:    "missing id",
			mutate:  func(tc *TestCase) { tc.ID = "" },
			wantErr: ErrInvalidTestCaseID,
		},
		{
			name:    "missing title",
			mutate:  func(tc *TestCase) { tc.Title = "" },
			wantErr: ErrInvalidTestCaseTitle,
		},
		{
			name:    "unknown status",
			mutate:  func(tc *TestCase) { tc.Status = "Skipped" },
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "unknown priority",
			mutate:  func(tc *TestCase) { tc.Priority = "Critical" },
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "unknown github status",
			mutate:  func(tc *TestCase) { tc.GithubStatus = "Merged" },
			wantErr: ErrInvalidGithubStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := validTestCase()
			tt.mutate(&tc)
			err := tc.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPass.IsValid())
	assert.True(t, StatusFail.IsValid())
	assert.True(t, StatusBlocked.IsValid())
	assert.True(t, StatusNotRun.IsValid())
	assert.False(t, Status("NotRun").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestTestCase_Clone(t *testing.T) {
	original := validTestCase()
	original.Preconditions = []string{"User account exists"}
	original.Steps = []Step{
		{Step: 1, Action: "Open the login page", ExpectedResult: "Login page is displayed"},
	}

	clone := original.Clone()
	clone.Preconditions[0] = "changed"
	clone.Steps[0].Action = "changed"
	clone.Status = StatusFail

	assert.Equal(t, "User account exists", original.Preconditions[0])
	assert.Equal(t, "Open the login page", original.Steps[0].Action)
	assert.Equal(t, StatusNotRun, original.Status)
}

func TestCloneAll(t *testing.T) {
	originals := []TestCase{validTestCase(), validTestCase()}
	originals[1].ID = "TC-1.2"
	originals[1].Steps = []Step{{Step: 1, Action: "a", ExpectedResult: "b"}}

	clones := CloneAll(originals)
	require.Len(t, clones, 2)
	clones[1].Steps[0].Action = "changed"
	assert.Equal(t, "a", originals[1].Steps[0].Action)
}

func TestRenumberSteps(t *testing.T) {
	steps := []Step{
		{Step: 5, Action: "first"},
		{Step: 0, Action: "second"},
		{Step: 2, Action: "third"},
	}
	RenumberSteps(steps)
	for i, s := range steps {
		assert.Equal(t, i+1, s.Step)
	}
}

func TestNewID(t *testing.T) {
	pattern := regexp.MustCompile(`^TC-ED-\d{3}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, pattern, NewID("Executive Dashboard"))
	}
	assert.Regexp(t, regexp.MustCompile(`^TC-A-\d{3}$`), NewID("Authentication"))
}

func TestNew(t *testing.T) {
	tc := New("Authentication", "Verify session timeout", "Session should expire", PriorityMedium, "alex")

	assert.NoError(t, tc.Validate())
	assert.Equal(t, "Authentication", tc.Suite)
	assert.Equal(t, "Verify session timeout", tc.Title)
	assert.Equal(t, PriorityMedium, tc.Priority)
	assert.Equal(t, StatusNotRun, tc.Status)
	assert.Equal(t, "alex", tc.Assignee)
	assert.NotEmpty(t, tc.LastUpdated)
	require.Len(t, tc.Preconditions, 1)
	require.Len(t, tc.Steps, 1)
	assert.Equal(t, 1, tc.Steps[0].Step)
}
