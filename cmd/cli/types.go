package main

// ListResponse mirrors the API's list envelope.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// ProjectSummary mirrors the API's project listing row.
type ProjectSummary struct {
	Name      string `json:"name"`
	TestCases int    `json:"test_cases"`
}

// CreateProjectResponse mirrors the API's project creation response.
type CreateProjectResponse struct {
	Name     string `json:"name"`
	Replaced bool   `json:"replaced"`
}

// SummarizeRunResponse mirrors the API's run summary response.
type SummarizeRunResponse struct {
	Summary string `json:"summary"`
}
