// Package flows wraps the generative model behind the recruiting operations
// that need it: resume-to-job matching, resume parsing, interview question
// generation, and the chat assistant. Each flow owns its prompt, its response
// contract, and its failure policy.
package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Anandkumae/recruit-track-sub000/internal/llm"
	"github.com/Anandkumae/recruit-track-sub000/internal/prompts"
	"github.com/Anandkumae/recruit-track-sub000/internal/schemas"
)

// MinAnalyzeLength is the minimum character count for a resume or job
// description to be worth sending to the model at all.
const MinAnalyzeLength = 10

// InsufficientInfoReasoning is the fixed reasoning returned when either input
// is too short to analyze. The match short-circuits to score 0 without a
// model call.
const InsufficientInfoReasoning = "Not enough information to analyze this application. The resume or job description is too short."

// MatchResult is the outcome of comparing a resume against a job description.
type MatchResult struct {
	MatchScore int    `json:"match_score"`
	Reasoning  string `json:"reasoning"`
}

// matchResponse mirrors the JSON contract declared in the prompt. The score
// arrives as a number because models are inconsistent about integer output.
type matchResponse struct {
	MatchScore float64 `json:"match_score"`
	Reasoning  string  `json:"reasoning"`
}

// MatchResumeToJob scores how well a resume fits a job description.
// Inputs shorter than MinAnalyzeLength produce a zero score with the fixed
// insufficient-information reasoning and never reach the model.
func MatchResumeToJob(ctx context.Context, client llm.Client, resumeText, jobDescription string) (*MatchResult, error) {
	resumeText = strings.TrimSpace(resumeText)
	jobDescription = strings.TrimSpace(jobDescription)

	if len(resumeText) < MinAnalyzeLength || len(jobDescription) < MinAnalyzeLength {
		return &MatchResult{MatchScore: 0, Reasoning: InsufficientInfoReasoning}, nil
	}

	template, err := prompts.Get("flows.json", "match-resume-to-job")
	if err != nil {
		return nil, fmt.Errorf("failed to load match prompt: %w", err)
	}
	prompt := prompts.Format(template, map[string]string{
		"JobDescription": jobDescription,
		"ResumeText":     resumeText,
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("match generation failed: %w", err)
	}

	raw = llm.CleanJSONBlock(raw)
	if strings.TrimSpace(raw) == "" {
		return nil, &NoResultError{Flow: "match-resume-to-job"}
	}

	if err := schemas.Validate("match_result", raw); err != nil {
		return nil, &ResponseFormatError{Flow: "match-resume-to-job", Cause: err}
	}

	var resp matchResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, &ResponseFormatError{Flow: "match-resume-to-job", Cause: err}
	}

	score := int(resp.MatchScore)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &MatchResult{MatchScore: score, Reasoning: resp.Reasoning}, nil
}
