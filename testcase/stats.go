package testcase

// Stats is the aggregate count of test cases by status. Every test run
// carries a Stats that must always agree with its embedded test cases:
// Passed+Failed+Blocked+NotRun == TotalTests == len(testCases).
type Stats struct {
	Passed     int `json:"passed"`
	Failed     int `json:"failed"`
	Blocked    int `json:"blocked"`
	NotRun     int `json:"not_run"`
	TotalTests int `json:"total_tests"`
}

// ComputeStats counts test cases by status. Empty input yields all zeros.
func ComputeStats(testCases []TestCase) Stats {
	stats := Stats{TotalTests: len(testCases)}
	for _, tc := range testCases {
		switch tc.Status {
		case StatusPass:
			stats.Passed++
		case StatusFail:
			stats.Failed++
		case StatusBlocked:
			stats.Blocked++
		case StatusNotRun:
			stats.NotRun++
		}
	}
	return stats
}
