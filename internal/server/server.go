package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/Anandkumae/recruit-track-sub000/internal/actions"
	"github.com/Anandkumae/recruit-track-sub000/internal/config"
	"github.com/Anandkumae/recruit-track-sub000/internal/db"
	"github.com/Anandkumae/recruit-track-sub000/internal/events"
	"github.com/Anandkumae/recruit-track-sub000/internal/ingest"
	"github.com/Anandkumae/recruit-track-sub000/internal/llm"
	"github.com/Anandkumae/recruit-track-sub000/internal/server/middleware"
	"github.com/Anandkumae/recruit-track-sub000/internal/server/ratelimit"
	"github.com/Anandkumae/recruit-track-sub000/internal/storage"
)

// Store is the database surface the handlers use. *db.DB satisfies it.
type Store interface {
	actions.Store

	CreateJob(ctx context.Context, input *db.JobCreateInput) (uuid.UUID, error)
	UpdateJob(ctx context.Context, j *db.Job) error
	SetJobStatus(ctx context.Context, id uuid.UUID, status string) error
	ListJobs(ctx context.Context, opts db.ListJobsOptions) ([]db.Job, int, error)
	ListCandidates(ctx context.Context, opts db.ListCandidatesOptions) ([]db.Candidate, int, error)
	ListActivitiesByCandidate(ctx context.Context, candidateID uuid.UUID, limit int) ([]db.Activity, error)
	ListInterviewsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]db.Interview, error)
	UpdateInterviewStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateCandidateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error
}

// BlobStore is the object store surface the upload handlers use.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      Store
	dbHandle   *db.DB
	llm        llm.Client
	blobs      BlobStore
	actions    *actions.Service
	importer   *ingest.Importer
	publisher  *events.Publisher
	limiter    *ratelimit.Limiter
	verifier   *middleware.Verifier
	listenAddr string
}

// New constructs the server and every handle it depends on: database pool,
// LLM client, object store, and the optional event broker.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	llmClient, err := llm.NewClient(ctx, nil, cfg.GeminiAPIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	var blobs BlobStore
	if cfg.Storage.Bucket != "" {
		blobs, err = storage.New(ctx, storage.Config{
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Endpoint:  cfg.Storage.Endpoint,
		})
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create object store: %w", err)
		}
	} else {
		log.Printf("no storage bucket configured, file uploads disabled")
	}

	publisher, err := events.Connect(cfg.AMQPURL)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to connect event broker: %w", err)
	}

	s := newServer(cfg, database, llmClient, blobs, publisher)
	s.dbHandle = database
	return s, nil
}

// newServer wires handlers onto already-constructed dependencies. Tests call
// this directly with fakes.
func newServer(cfg *config.Config, store Store, llmClient llm.Client, blobs BlobStore, publisher *events.Publisher) *Server {
	s := &Server{
		store:      store,
		llm:        llmClient,
		blobs:      blobs,
		publisher:  publisher,
		actions:    actions.New(store, llmClient, publisher),
		importer:   ingest.NewImporter(store),
		limiter:    ratelimit.NewLimiter(cfg.RateLimitPerMinute),
		verifier:   middleware.NewVerifier(cfg.JWTSecret),
		listenAddr: cfg.ListenAddr,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// routes builds the request mux. Recruiter-only routes are gated on role;
// everything except the health check requires a verified token.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	auth := middleware.Auth(s.verifier)
	authed := func(h http.HandlerFunc) http.Handler { return auth(h) }
	recruiter := func(h http.HandlerFunc) http.Handler { return auth(middleware.RequireRecruiter(h)) }

	mux.HandleFunc("GET /health", s.handleHealth)

	// Jobs
	mux.Handle("GET /jobs", authed(s.handleListJobs))
	mux.Handle("GET /jobs/{id}", authed(s.handleGetJob))
	mux.Handle("POST /jobs", recruiter(s.handleCreateJob))
	mux.Handle("PUT /jobs/{id}", recruiter(s.handleUpdateJob))
	mux.Handle("POST /jobs/{id}/close", recruiter(s.handleCloseJob))
	mux.Handle("POST /jobs/import", recruiter(s.handleImportJob))
	mux.Handle("POST /jobs/{id}/interview-questions", recruiter(s.handleInterviewQuestions))
	mux.Handle("POST /jobs/{id}/rerun-matches", recruiter(s.handleRerunMatchForJob))

	// Candidates
	mux.Handle("GET /candidates", recruiter(s.handleListCandidates))
	mux.Handle("GET /candidates/{id}", authed(s.handleGetCandidate))
	mux.Handle("POST /candidates/apply", authed(s.handleApply))
	mux.Handle("PATCH /candidates/{id}/status", recruiter(s.handleUpdateStatus))
	mux.Handle("POST /candidates/{id}/rerun-match", recruiter(s.handleRerunMatch))
	mux.Handle("GET /candidates/{id}/activities", recruiter(s.handleListActivities))

	// Interviews
	mux.Handle("POST /interviews", recruiter(s.handleScheduleInterview))
	mux.Handle("GET /candidates/{id}/interviews", authed(s.handleListInterviews))
	mux.Handle("PATCH /interviews/{id}/status", recruiter(s.handleUpdateInterviewStatus))

	// Users
	mux.Handle("GET /users/me", authed(s.handleGetMe))
	mux.Handle("GET /users/{id}", authed(s.handleGetUser))
	mux.Handle("PUT /users/{id}", authed(s.handleUpdateUser))
	mux.Handle("POST /users/me/complete-profile", authed(s.handleCompleteProfile))

	// AI tools
	mux.Handle("POST /flows/match", recruiter(s.handleMatchTool))
	mux.Handle("POST /flows/parse-resume", authed(s.handleParseResume))
	mux.Handle("POST /assistant/chat", authed(s.handleAssistantChat))

	// Uploads
	mux.Handle("POST /uploads/resume", authed(s.handleUploadResume))
	mux.Handle("POST /uploads/avatar", authed(s.handleUploadAvatar))
	mux.Handle("GET /uploads/{key...}", recruiter(s.handleDownload))

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.limiter != nil {
		s.limiter.Stop()
	}
	if s.publisher != nil {
		_ = s.publisher.Close()
	}
	if s.llm != nil {
		_ = s.llm.Close()
	}
	if s.dbHandle != nil {
		s.dbHandle.Close()
	}
	log.Println("Server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit throttles requests per client IP
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := clientIP(r)
		allowed, info := s.limiter.Allow(clientID)

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		if !allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())+1))
			log.Printf("[rate-limit] throttled %s", clientID)
			writeErrorMessage(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s in %v", r.Method, r.URL.Path, r.RemoteAddr, time.Since(start))
	})
}

// clientIP picks the rate-limit bucket key. Only the rightmost
// X-Forwarded-For entry is used: it is the one appended by the nearest
// proxy, so a caller cannot mint fresh buckets by stuffing the header.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		hops := strings.Split(fwd, ",")
		if ip := strings.TrimSpace(hops[len(hops)-1]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// writeError maps an error to its HTTP status. Internal errors get a generic
// message; everything else surfaces its own text.
func writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		writeErrorMessage(w, status, "internal server error")
		return
	}
	writeErrorMessage(w, status, err.Error())
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// pathUUID parses the named path segment as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, &actions.ErrValidation{Field: name, Message: "must be a valid UUID"}
	}
	return id, nil
}
