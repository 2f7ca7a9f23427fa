package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKeys(t *testing.T) {
	ClearCache()

	for _, key := range []string{"match-resume-to-job", "parse-resume-image", "interview-questions", "assistant-persona"} {
		prompt, err := Get("flows.json", key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("flows.json", "no-such-prompt")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "anything")
	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	template := MustGet("flows.json", "match-resume-to-job")
	result := Format(template, map[string]string{
		"ResumeText":     "ten years of Go",
		"JobDescription": "backend engineer",
	})

	assert.Contains(t, result, "ten years of Go")
	assert.Contains(t, result, "backend engineer")
	assert.False(t, strings.Contains(result, "{{.ResumeText}}"))
	assert.False(t, strings.Contains(result, "{{.JobDescription}}"))
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "hello {{.Name}}", result)
}

func TestList(t *testing.T) {
	keys, err := List("flows.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "assistant-persona")
	assert.GreaterOrEqual(t, len(keys), 4)
}
