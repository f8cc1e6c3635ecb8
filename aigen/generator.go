// Package aigen is the external text-generation collaborator: it turns a
// feature description into draft test case steps and a test run into a
// prose summary. Calls are user-triggered, never retried, and a failed call
// mutates no state.
package aigen

import (
	"context"
	"errors"

	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testrun"
)

var (
	// ErrEmptyFeatureDescription is returned when step generation is
	// requested without a feature description.
	ErrEmptyFeatureDescription = errors.New("feature description is required")

	// ErrEmptyResponse is returned when the model returns no usable text.
	ErrEmptyResponse = errors.New("model returned no content")

	// ErrUnparseableSteps is returned when the model's output cannot be
	// parsed into test case steps.
	ErrUnparseableSteps = errors.New("failed to parse generated steps")
)

// Generator defines the text-generation operations the dashboard uses.
type Generator interface {
	// GenerateSteps returns a list of detailed test case steps for the
	// given feature description.
	GenerateSteps(ctx context.Context, featureDescription string) ([]testcase.Step, error)

	// SummarizeRun returns a concise prose summary of a test run,
	// suitable for a project manager.
	SummarizeRun(ctx context.Context, run testrun.TestRun) (string, error)
}
