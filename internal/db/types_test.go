package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ForwardPipeline(t *testing.T) {
	assert.True(t, CanTransition(StatusApplied, StatusShortlisted))
	assert.True(t, CanTransition(StatusShortlisted, StatusInterviewed))
	assert.True(t, CanTransition(StatusInterviewed, StatusHired))
}

func TestCanTransition_RejectedFromAnyNonTerminal(t *testing.T) {
	assert.True(t, CanTransition(StatusApplied, StatusRejected))
	assert.True(t, CanTransition(StatusShortlisted, StatusRejected))
	assert.True(t, CanTransition(StatusInterviewed, StatusRejected))
}

func TestCanTransition_NoBackwardMoves(t *testing.T) {
	assert.False(t, CanTransition(StatusShortlisted, StatusApplied))
	assert.False(t, CanTransition(StatusInterviewed, StatusShortlisted))
	assert.False(t, CanTransition(StatusHired, StatusInterviewed))
}

func TestCanTransition_TerminalStatesImmutable(t *testing.T) {
	for _, to := range []string{StatusApplied, StatusShortlisted, StatusInterviewed, StatusHired, StatusRejected} {
		assert.False(t, CanTransition(StatusHired, to), "Hired -> %s", to)
		assert.False(t, CanTransition(StatusRejected, to), "Rejected -> %s", to)
	}
}

func TestCanTransition_SkippingShortlistAllowed(t *testing.T) {
	// Scheduling an interview directly from Applied is a valid recruiter flow.
	assert.True(t, CanTransition(StatusApplied, StatusInterviewed))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusApplied))
	assert.True(t, ValidStatus(StatusHired))
	assert.False(t, ValidStatus("Pending"))
	assert.False(t, ValidStatus(""))
}

func TestActivityForStatus(t *testing.T) {
	assert.Equal(t, ActivityShortlisted, ActivityForStatus(StatusShortlisted))
	assert.Equal(t, ActivityHired, ActivityForStatus(StatusHired))
	assert.Equal(t, ActivityRejected, ActivityForStatus(StatusRejected))
	assert.Equal(t, "", ActivityForStatus(StatusApplied))
}

func TestRecruiterRole(t *testing.T) {
	assert.True(t, RecruiterRole(RoleAdmin))
	assert.True(t, RecruiterRole(RoleHR))
	assert.True(t, RecruiterRole(RoleManager))
	assert.False(t, RecruiterRole(RoleCandidate))
}
