package ingest

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Anandkumae/recruit-track-sub000/internal/db"
)

// JobStore is the slice of the database layer the importer writes to.
type JobStore interface {
	CreateJob(ctx context.Context, input *db.JobCreateInput) (uuid.UUID, error)
	GetJob(ctx context.Context, id uuid.UUID) (*db.Job, error)
}

// Importer turns external posting URLs into draft jobs.
type Importer struct {
	store JobStore
}

// NewImporter creates an Importer backed by the given store.
func NewImporter(store JobStore) *Importer {
	return &Importer{store: store}
}

// ImportFromURL fetches a posting page, extracts its content, and stores it
// as an Open job attributed to the importing recruiter. SPA boards that
// return a near-empty page over plain HTTP are retried through a headless
// browser.
func (im *Importer) ImportFromURL(ctx context.Context, urlStr, department string, postedBy *uuid.UUID) (*db.Job, error) {
	html, err := fetchHTML(ctx, urlStr)
	if err != nil {
		return nil, err
	}

	posting, err := extractPosting(html)
	if err != nil {
		return nil, err
	}

	if needsBrowser(posting.Description) {
		log.Printf("[ingest] thin content from %s, retrying with browser", urlStr)
		rendered, berr := renderWithBrowser(ctx, urlStr)
		if berr != nil {
			log.Printf("[ingest] browser fallback failed: %v", berr)
		} else if p, perr := extractPosting(rendered); perr == nil && len(p.Description) > len(posting.Description) {
			posting = p
		}
	}

	if posting.Title == "" && posting.Description == "" {
		return nil, &FetchError{URL: urlStr, Message: "no posting content found"}
	}
	if posting.Title == "" {
		posting.Title = "Imported posting"
	}

	jobID, err := im.store.CreateJob(ctx, &db.JobCreateInput{
		Title:       posting.Title,
		Department:  department,
		Description: posting.Description,
		PostedBy:    postedBy,
		SourceURL:   urlStr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store imported job: %w", err)
	}

	job, err := im.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load imported job: %w", err)
	}
	return job, nil
}
