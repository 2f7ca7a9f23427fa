package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateJob creates a new job posting and returns its ID
func (db *DB) CreateJob(ctx context.Context, input *JobCreateInput) (uuid.UUID, error) {
	reqsJSON, err := json.Marshal(input.Requirements)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal requirements: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, department, description, requirements, status, posted_at, posted_by, source_url)
		 VALUES ($1, $2, $3, $4, $5, NOW(), $6, $7)
		 RETURNING id`,
		input.Title, input.Department, input.Description, reqsJSON,
		JobStatusOpen, input.PostedBy, nullIfEmpty(input.SourceURL),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a job posting by ID
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	var j Job
	var reqsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, title, department, description, requirements, status,
		        posted_at, posted_by, source_url, created_at, updated_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&j.ID, &j.Title, &j.Department, &j.Description, &reqsJSON, &j.Status,
		&j.PostedAt, &j.PostedBy, &j.SourceURL, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if reqsJSON != nil {
		_ = json.Unmarshal(reqsJSON, &j.Requirements)
	}

	return &j, nil
}

// UpdateJob updates a job posting's editable fields
func (db *DB) UpdateJob(ctx context.Context, j *Job) error {
	reqsJSON, err := json.Marshal(j.Requirements)
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE jobs SET title = $1, department = $2, description = $3,
		        requirements = $4, updated_at = NOW()
		 WHERE id = $5`,
		j.Title, j.Department, j.Description, reqsJSON, j.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", j.ID)
	}
	return nil
}

// SetJobStatus changes a job's status (Open/Closed). Jobs are never deleted.
func (db *DB) SetJobStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE jobs SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set job status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}

// ListJobsOptions contains filters for listing jobs
type ListJobsOptions struct {
	Status     *string
	Department *string
	Limit      int
	Offset     int
}

// ListJobs lists job postings with optional filters and pagination
func (db *DB) ListJobs(ctx context.Context, opts ListJobsOptions) ([]Job, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if opts.Status != nil && *opts.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *opts.Status)
		argIndex++
	}
	if opts.Department != nil && *opts.Department != "" {
		conditions = append(conditions, fmt.Sprintf("department = $%d", argIndex))
		args = append(args, *opts.Department)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM jobs %s", whereClause)
	var total int
	if err := db.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT id, title, department, description, requirements, status,
		        posted_at, posted_by, source_url, created_at, updated_at
		 FROM jobs %s
		 ORDER BY posted_at DESC
		 LIMIT $%d OFFSET $%d`,
		whereClause, argIndex, argIndex+1,
	)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var j Job
		var reqsJSON []byte
		if err := rows.Scan(&j.ID, &j.Title, &j.Department, &j.Description, &reqsJSON,
			&j.Status, &j.PostedAt, &j.PostedBy, &j.SourceURL, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan job: %w", err)
		}
		if reqsJSON != nil {
			_ = json.Unmarshal(reqsJSON, &j.Requirements)
		}
		jobs = append(jobs, j)
	}
	return jobs, total, nil
}
