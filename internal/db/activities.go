package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// AppendActivity appends a record to the activity log. The log is
// append-only; there are no update or delete paths.
func (db *DB) AppendActivity(ctx context.Context, input *ActivityCreateInput) (uuid.UUID, error) {
	var metadataJSON []byte
	var err error
	if input.Metadata != nil {
		metadataJSON, err = json.Marshal(input.Metadata)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal activity metadata: %w", err)
		}
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO activities (type, candidate_id, job_id, actor_id, actor_name, metadata)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		input.Type, input.CandidateID, input.JobID, input.ActorID,
		nullIfEmpty(input.ActorName), metadataJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to append activity: %w", err)
	}
	return id, nil
}

// ListActivitiesByCandidate retrieves the activity feed for a candidate,
// newest first
func (db *DB) ListActivitiesByCandidate(ctx context.Context, candidateID uuid.UUID, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, type, candidate_id, job_id, actor_id, COALESCE(actor_name, ''),
		        metadata, created_at
		 FROM activities WHERE candidate_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		candidateID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		var a Activity
		var metadataJSON []byte
		if err := rows.Scan(&a.ID, &a.Type, &a.CandidateID, &a.JobID,
			&a.ActorID, &a.ActorName, &metadataJSON, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		if metadataJSON != nil {
			_ = json.Unmarshal(metadataJSON, &a.Metadata)
		}
		activities = append(activities, a)
	}
	return activities, nil
}

// CountActivities counts activities of a type for a candidate
func (db *DB) CountActivities(ctx context.Context, candidateID uuid.UUID, activityType string) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM activities WHERE candidate_id = $1 AND type = $2`,
		candidateID, activityType,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}
