package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// SuggestService proposes skill names for a job description via Gemini.
// It is optional: when no API key is configured the endpoint is simply not
// registered. Suggestions feed the same catalog resolution as hand-typed
// skills, so the model never writes anywhere.
type SuggestService struct {
	Client llms.Model
}

func NewSuggestService(ctx context.Context, apiKey string) (*SuggestService, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		return nil, err
	}
	return &SuggestService{Client: llm}, nil
}

const suggestPrompt = `You are helping a recruiter tag a job posting with skills.
Read the job description below and list the concrete skills it asks for.

### INSTRUCTIONS:
1. Prefer short canonical names ("Go", "SQL", "React"), not sentences.
2. Skip soft skills and generic phrases ("team player", "fast learner").
3. Output a valid JSON array of strings only. No markdown, no commentary.
4. At most 10 entries. If the description names no concrete skill, output [].

### JOB DESCRIPTION:
%s
`

// SuggestSkills returns suggested skill names for the description.
func (s *SuggestService) SuggestSkills(ctx context.Context, description string) ([]string, error) {
	if len(description) > 20000 {
		description = description[:20000]
	}

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, fmt.Sprintf(suggestPrompt, description))
	if err != nil {
		return nil, err
	}

	// The model occasionally wraps the array in a markdown fence anyway.
	resp = strings.TrimSpace(resp)
	resp = strings.TrimPrefix(resp, "```json")
	resp = strings.TrimPrefix(resp, "```")
	resp = strings.TrimSuffix(resp, "```")

	var skills []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp)), &skills); err != nil {
		return nil, fmt.Errorf("unexpected model output: %w", err)
	}
	return skills, nil
}
