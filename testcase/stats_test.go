package testcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Stats
	}{
		{
			name:     "empty input yields zeros",
			statuses: nil,
			want:     Stats{},
		},
		{
			name:     "mixed statuses",
			statuses: []Status{StatusPass, StatusPass, StatusFail, StatusBlocked, StatusNotRun},
			want:     Stats{Passed: 2, Failed: 1, Blocked: 1, NotRun: 1, TotalTests: 5},
		},
		{
			name:     "all not run",
			statuses: []Status{StatusNotRun, StatusNotRun},
			want:     Stats{NotRun: 2, TotalTests: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testCases := make([]TestCase, len(tt.statuses))
			for i, s := range tt.statuses {
				testCases[i] = TestCase{ID: "tc", Status: s}
			}

			got := ComputeStats(testCases)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.TotalTests, got.Passed+got.Failed+got.Blocked+got.NotRun)
		})
	}
}
