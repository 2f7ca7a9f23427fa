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

// QuestionCount is the number of interview questions every generation returns.
const QuestionCount = 10

type questionsResponse struct {
	Questions []string `json:"questions"`
}

// GenerateInterviewQuestions produces exactly QuestionCount questions for a
// job title. Unlike matching, there is no degraded fallback here: a bad model
// response is an error the caller sees.
func GenerateInterviewQuestions(ctx context.Context, client llm.Client, jobTitle string) ([]string, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		return nil, fmt.Errorf("job title is required")
	}

	template, err := prompts.Get("flows.json", "interview-questions")
	if err != nil {
		return nil, fmt.Errorf("failed to load questions prompt: %w", err)
	}
	prompt := prompts.Format(template, map[string]string{"JobTitle": jobTitle})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	raw = llm.CleanJSONBlock(raw)
	if strings.TrimSpace(raw) == "" {
		return nil, &NoResultError{Flow: "interview-questions"}
	}

	if err := schemas.Validate("interview_questions", raw); err != nil {
		return nil, &ResponseFormatError{Flow: "interview-questions", Cause: err}
	}

	var resp questionsResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, &ResponseFormatError{Flow: "interview-questions", Cause: err}
	}

	if len(resp.Questions) != QuestionCount {
		return nil, &ResponseFormatError{
			Flow:  "interview-questions",
			Cause: fmt.Errorf("expected %d questions, got %d", QuestionCount, len(resp.Questions)),
		}
	}

	return resp.Questions, nil
}
