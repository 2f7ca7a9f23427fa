package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_MatchResult(t *testing.T) {
	err := Validate("match_result", `{"match_score": 85, "reasoning": "Strong overlap on Go and Postgres."}`)
	assert.NoError(t, err)
}

func TestValidate_MatchResult_MissingField(t *testing.T) {
	err := Validate("match_result", `{"match_score": 85}`)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidate_MatchResult_ExtraFieldRejected(t *testing.T) {
	err := Validate("match_result", `{"match_score": 85, "reasoning": "ok", "extra": true}`)
	assert.Error(t, err)
}

func TestValidate_MatchResult_ScoreOutOfRange(t *testing.T) {
	err := Validate("match_result", `{"match_score": 150, "reasoning": "ok"}`)
	assert.Error(t, err)

	err = Validate("match_result", `{"match_score": -5, "reasoning": "ok"}`)
	assert.Error(t, err)
}

func TestValidate_ResumeFields_AllOptional(t *testing.T) {
	// Partial extraction is the designed behavior; an empty object conforms.
	assert.NoError(t, Validate("resume_fields", `{}`))
	assert.NoError(t, Validate("resume_fields", `{"name": "", "phone": "", "skills": [], "qualification": ""}`))
}

func TestValidate_InterviewQuestions_ExactlyTen(t *testing.T) {
	ten := `{"questions": ["a","b","c","d","e","f","g","h","i","j"]}`
	assert.NoError(t, Validate("interview_questions", ten))

	nine := `{"questions": ["a","b","c","d","e","f","g","h","i"]}`
	assert.Error(t, Validate("interview_questions", nine))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("no_such_schema", `{}`)
	require.Error(t, err)

	var se *SchemaLoadError
	assert.ErrorAs(t, err, &se)
}

func TestValidateJSONString_InvalidDocument(t *testing.T) {
	err := ValidateJSONString(`{"type": "object"}`, `not json at all`)
	assert.Error(t, err)
}
