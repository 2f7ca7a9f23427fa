package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateCandidate records a new application and returns its ID
func (db *DB) CreateCandidate(ctx context.Context, input *CandidateCreateInput) (uuid.UUID, error) {
	skillsJSON, err := json.Marshal(input.Skills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, email, phone, skills, resume_text, resume_url,
		                         job_id, status, applied_at, match_score, match_reasoning)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), $9, $10)
		 RETURNING id`,
		input.Name, input.Email, input.Phone, skillsJSON, input.ResumeText,
		nullIfEmpty(input.ResumeURL), input.JobID, StatusApplied,
		input.MatchScore, input.MatchReasoning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return id, nil
}

// GetCandidate retrieves a candidate by ID
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*Candidate, error) {
	var c Candidate
	var skillsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, skills, resume_text, resume_url, job_id,
		        status, applied_at, match_score, match_reasoning, avatar_url,
		        created_at, updated_at
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &skillsJSON, &c.ResumeText,
		&c.ResumeURL, &c.JobID, &c.Status, &c.AppliedAt, &c.MatchScore,
		&c.MatchReasoning, &c.AvatarURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &c.Skills)
	}

	return &c, nil
}

// UpdateCandidateStatus mutates a candidate's pipeline status.
// Single-row atomic update; last write wins on concurrent mutations.
func (db *DB) UpdateCandidateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE candidates SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}

// UpdateCandidateMatch stores a recomputed match score and reasoning
func (db *DB) UpdateCandidateMatch(ctx context.Context, id uuid.UUID, score int, reasoning string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE candidates SET match_score = $1, match_reasoning = $2, updated_at = NOW()
		 WHERE id = $3`,
		score, reasoning, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate match: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}

// UpdateCandidateAvatar stores the avatar object reference
func (db *DB) UpdateCandidateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE candidates SET avatar_url = $1, updated_at = NOW() WHERE id = $2`,
		avatarURL, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate avatar: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}

// ListCandidates lists candidates with optional filters and pagination
func (db *DB) ListCandidates(ctx context.Context, opts ListCandidatesOptions) ([]Candidate, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if opts.JobID != nil {
		conditions = append(conditions, fmt.Sprintf("job_id = $%d", argIndex))
		args = append(args, *opts.JobID)
		argIndex++
	}
	if opts.Status != nil && *opts.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *opts.Status)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM candidates %s", whereClause)
	var total int
	if err := db.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
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
		`SELECT id, name, email, phone, skills, resume_text, resume_url, job_id,
		        status, applied_at, match_score, match_reasoning, avatar_url,
		        created_at, updated_at
		 FROM candidates %s
		 ORDER BY applied_at DESC
		 LIMIT $%d OFFSET $%d`,
		whereClause, argIndex, argIndex+1,
	)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		var skillsJSON []byte
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &skillsJSON,
			&c.ResumeText, &c.ResumeURL, &c.JobID, &c.Status, &c.AppliedAt,
			&c.MatchScore, &c.MatchReasoning, &c.AvatarURL,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if skillsJSON != nil {
			_ = json.Unmarshal(skillsJSON, &c.Skills)
		}
		candidates = append(candidates, c)
	}
	return candidates, total, nil
}

// ListCandidatesByJob retrieves every candidate for a job (no pagination).
// Used by bulk re-match.
func (db *DB) ListCandidatesByJob(ctx context.Context, jobID uuid.UUID) ([]Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, phone, skills, resume_text, resume_url, job_id,
		        status, applied_at, match_score, match_reasoning, avatar_url,
		        created_at, updated_at
		 FROM candidates WHERE job_id = $1
		 ORDER BY applied_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates for job: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		var skillsJSON []byte
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &skillsJSON,
			&c.ResumeText, &c.ResumeURL, &c.JobID, &c.Status, &c.AppliedAt,
			&c.MatchScore, &c.MatchReasoning, &c.AvatarURL,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if skillsJSON != nil {
			_ = json.Unmarshal(skillsJSON, &c.Skills)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
