package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeKey(t *testing.T) {
	userID := uuid.MustParse("3f2e8a4c-6c1d-4f7a-9b2e-1a8d5c3e7f90")

	key := ResumeKey(userID, "resume.pdf")
	assert.Equal(t, "resumes/3f2e8a4c-6c1d-4f7a-9b2e-1a8d5c3e7f90/resume.pdf", key)
}

func TestAvatarKey(t *testing.T) {
	userID := uuid.New()

	key := AvatarKey(userID, "photo.png")
	assert.True(t, strings.HasPrefix(key, "profile-images/"+userID.String()+"/"))
}

func TestKeys_FilenameCannotEscapePrefix(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		filename string
	}{
		{"parent traversal", "../../etc/passwd"},
		{"absolute path", "/etc/passwd"},
		{"windows separators", "..\\..\\secret.docx"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := ResumeKey(userID, tt.filename)
			assert.True(t, strings.HasPrefix(key, "resumes/"+userID.String()+"/"))
			assert.NotContains(t, key, "..")
		})
	}
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket")
}
