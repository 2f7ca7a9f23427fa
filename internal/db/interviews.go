package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateInterview schedules an interview and returns its ID
func (db *DB) CreateInterview(ctx context.Context, input *InterviewCreateInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO interviews (candidate_id, job_id, scheduled_at, scheduled_by,
		                         location, meeting_link, notes, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		input.CandidateID, input.JobID, input.ScheduledAt, input.ScheduledBy,
		nullIfEmpty(input.Location), nullIfEmpty(input.MeetingLink),
		nullIfEmpty(input.Notes), InterviewScheduled,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create interview: %w", err)
	}
	return id, nil
}

// GetInterview retrieves an interview by ID
func (db *DB) GetInterview(ctx context.Context, id uuid.UUID) (*Interview, error) {
	var iv Interview
	var location, meetingLink, notes *string

	err := db.pool.QueryRow(ctx,
		`SELECT id, candidate_id, job_id, scheduled_at, scheduled_by,
		        location, meeting_link, notes, status, created_at, updated_at
		 FROM interviews WHERE id = $1`,
		id,
	).Scan(&iv.ID, &iv.CandidateID, &iv.JobID, &iv.ScheduledAt, &iv.ScheduledBy,
		&location, &meetingLink, &notes, &iv.Status, &iv.CreatedAt, &iv.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}

	if location != nil {
		iv.Location = *location
	}
	if meetingLink != nil {
		iv.MeetingLink = *meetingLink
	}
	if notes != nil {
		iv.Notes = *notes
	}

	return &iv, nil
}

// ListInterviewsByCandidate retrieves interviews for a candidate, newest first
func (db *DB) ListInterviewsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Interview, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_id, job_id, scheduled_at, scheduled_by,
		        COALESCE(location, ''), COALESCE(meeting_link, ''), COALESCE(notes, ''),
		        status, created_at, updated_at
		 FROM interviews WHERE candidate_id = $1
		 ORDER BY scheduled_at DESC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	var interviews []Interview
	for rows.Next() {
		var iv Interview
		if err := rows.Scan(&iv.ID, &iv.CandidateID, &iv.JobID, &iv.ScheduledAt,
			&iv.ScheduledBy, &iv.Location, &iv.MeetingLink, &iv.Notes,
			&iv.Status, &iv.CreatedAt, &iv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, iv)
	}
	return interviews, nil
}

// UpdateInterviewStatus changes an interview's status
func (db *DB) UpdateInterviewStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE interviews SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update interview status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("interview not found: %s", id)
	}
	return nil
}
