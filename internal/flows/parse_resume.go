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

// ResumeFields holds whatever the parser could read from a resume image.
// Every field may be empty; partial extraction is the contract, not an error.
type ResumeFields struct {
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Skills        []string `json:"skills"`
	Qualification string   `json:"qualification"`
}

// ParseResume extracts contact details and skills from a resume image.
// Format is the image subtype ("png", "jpeg"). Fields the model cannot read
// come back empty rather than failing the call.
func ParseResume(ctx context.Context, client llm.Client, format string, image []byte) (*ResumeFields, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("resume image is empty")
	}

	prompt, err := prompts.Get("flows.json", "parse-resume-image")
	if err != nil {
		return nil, fmt.Errorf("failed to load parse prompt: %w", err)
	}

	raw, err := client.GenerateJSONFromImage(ctx, prompt, format, image, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("resume parsing failed: %w", err)
	}

	raw = llm.CleanJSONBlock(raw)
	if strings.TrimSpace(raw) == "" {
		return nil, &NoResultError{Flow: "parse-resume-image"}
	}

	if err := schemas.Validate("resume_fields", raw); err != nil {
		return nil, &ResponseFormatError{Flow: "parse-resume-image", Cause: err}
	}

	var fields ResumeFields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, &ResponseFormatError{Flow: "parse-resume-image", Cause: err}
	}

	if fields.Skills == nil {
		fields.Skills = []string{}
	}

	return &fields, nil
}
