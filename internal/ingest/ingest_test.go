package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anandkumae/recruit-track-sub000/internal/db"
)

const postingHTML = `<html>
<head><title>Acme Careers</title></head>
<body>
<nav>Home | Jobs | About</nav>
<h1>Senior Backend Engineer</h1>
<div class="job-description">
We are hiring a backend engineer to build our recruiting platform.
You will work with Go, PostgreSQL, and RabbitMQ, own services end to end,
and collaborate with a small product team. Five or more years of experience
building networked services is expected, along with working knowledge of
cloud object storage and message brokers. We value clear written
communication and a habit of testing.
</div>
<footer>Copyright Acme</footer>
</body>
</html>`

func TestExtractPosting(t *testing.T) {
	posting, err := extractPosting(postingHTML)
	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", posting.Title)
	assert.Contains(t, posting.Description, "backend engineer")
	assert.NotContains(t, posting.Description, "Copyright Acme", "footer boilerplate must be stripped")
	assert.NotContains(t, posting.Description, "Home | Jobs", "nav must be stripped")
}

func TestExtractPosting_TitleFallsBackToDocumentTitle(t *testing.T) {
	posting, err := extractPosting(`<html><head><title>Data Engineer - Acme</title></head><body><p>Body text.</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer - Acme", posting.Title)
}

func TestCleanWhitespace(t *testing.T) {
	in := "  line one   has\t\tspaces  \n\n\n\n  line two  "
	out := cleanWhitespace(in)
	assert.Equal(t, "line one has spaces\n\nline two", out)
}

func TestFetchHTML_InvalidURL(t *testing.T) {
	_, err := fetchHTML(context.Background(), "not a url")
	require.Error(t, err)

	var fe *FetchError
	assert.ErrorAs(t, err, &fe)
}

func TestFetchHTML_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := fetchHTML(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestNeedsBrowser(t *testing.T) {
	assert.True(t, needsBrowser("thin"))
	assert.False(t, needsBrowser(strings.Repeat("job posting text ", 50)))
}

type fakeJobStore struct {
	created *db.JobCreateInput
	jobs    map[uuid.UUID]*db.Job
}

func (f *fakeJobStore) CreateJob(ctx context.Context, input *db.JobCreateInput) (uuid.UUID, error) {
	f.created = input
	id := uuid.New()
	if f.jobs == nil {
		f.jobs = map[uuid.UUID]*db.Job{}
	}
	src := input.SourceURL
	f.jobs[id] = &db.Job{
		ID:          id,
		Title:       input.Title,
		Department:  input.Department,
		Description: input.Description,
		Status:      db.JobStatusOpen,
		PostedBy:    input.PostedBy,
		SourceURL:   &src,
	}
	return id, nil
}

func (f *fakeJobStore) GetJob(ctx context.Context, id uuid.UUID) (*db.Job, error) {
	return f.jobs[id], nil
}

func TestImportFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Pad the description past the SPA threshold so no browser fallback runs.
		padded := strings.Replace(postingHTML, "a habit of testing.",
			"a habit of testing. "+strings.Repeat("More detail about the role. ", 20), 1)
		_, _ = w.Write([]byte(padded))
	}))
	defer srv.Close()

	store := &fakeJobStore{}
	importer := NewImporter(store)
	recruiterID := uuid.New()

	job, err := importer.ImportFromURL(context.Background(), srv.URL, "Engineering", &recruiterID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", job.Title)
	assert.Equal(t, "Engineering", job.Department)
	assert.Equal(t, db.JobStatusOpen, job.Status)
	require.NotNil(t, job.SourceURL)
	assert.Equal(t, srv.URL, *job.SourceURL)
	require.NotNil(t, store.created)
	assert.Equal(t, &recruiterID, store.created.PostedBy)
}

func TestImportFromURL_FetchFailure(t *testing.T) {
	store := &fakeJobStore{}
	importer := NewImporter(store)

	_, err := importer.ImportFromURL(context.Background(), "http://127.0.0.1:1/nothing", "", nil)
	require.Error(t, err)
	assert.Nil(t, store.created)
}
