package aigen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testcase"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testrun"
)

// BedrockGenerator implements Generator using AWS Bedrock.
type BedrockGenerator struct {
	client    *bedrockruntime.Client
	modelID   string
	maxTokens int
}

// NewBedrockGenerator creates a new Bedrock-based generator.
func NewBedrockGenerator(region, modelID string, maxTokens int) (*BedrockGenerator, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &BedrockGenerator{
		client:    bedrockruntime.NewFromConfig(cfg),
		modelID:   modelID,
		maxTokens: maxTokens,
	}, nil
}

// GenerateSteps asks the model for a JSON array of test case steps based on
// a feature description. Steps are renumbered so they come back 1-based and
// contiguous regardless of what the model emitted.
func (g *BedrockGenerator) GenerateSteps(ctx context.Context, featureDescription string) ([]testcase.Step, error) {
	prompt, err := BuildStepsPrompt(featureDescription)
	if err != nil {
		return nil, err
	}

	text, err := g.invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var steps []testcase.Step
	if err := json.Unmarshal([]byte(text), &steps); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableSteps, err)
	}
	if len(steps) == 0 {
		return nil, ErrUnparseableSteps
	}

	testcase.RenumberSteps(steps)
	return steps, nil
}

// SummarizeRun asks the model for a prose summary of the run.
func (g *BedrockGenerator) SummarizeRun(ctx context.Context, run testrun.TestRun) (string, error) {
	return g.invoke(ctx, BuildSummaryPrompt(run))
}

// invoke calls the model with a single user message and returns the
// trimmed text content.
func (g *BedrockGenerator) invoke(ctx context.Context, prompt string) (string, error) {
	requestBody := map[string]interface{}{
		"anthropic_version": "bedrock-2023-05-31",
		"max_tokens":        g.maxTokens,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "text",
						"text": prompt,
					},
				},
			},
		},
	}

	payloadBytes, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	output, err := g.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        payloadBytes,
	})
	if err != nil {
		return "", fmt.Errorf("failed to invoke Bedrock model: %w", err)
	}

	var response struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		StopReason string `json:"stop_reason"`
	}
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(response.Content) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(response.Content[0].Text)
	if text == "" {
		return "", ErrEmptyResponse
	}

	return stripCodeFences(text), nil
}

// stripCodeFences removes a surrounding markdown code fence. LLMs often
// include these despite prompt instructions.
func stripCodeFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if idx := strings.Index(text, "\n"); idx != -1 {
		text = text[idx+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
