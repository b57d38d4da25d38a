package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/claude/endurely/internal/models"
	"github.com/claude/endurely/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ProgramGenerator produces training programs. Satisfied by
// *generator.Generator; handlers are tested against a fake.
type ProgramGenerator interface {
	GenerateProgram(ctx context.Context, req *models.ProgramRequest) (*models.TrainingProgram, error)
	GenerateSingleWeek(ctx context.Context, req *models.ProgramRequest, weekNumber int, phase string) (*models.WeekPlan, error)
}

// Store is the persistence surface the handlers need. Satisfied by *storage.DB.
type Store interface {
	SaveProgram(ctx context.Context, req *models.ProgramRequest, program *models.TrainingProgram) (uuid.UUID, error)
	GetProgram(ctx context.Context, id uuid.UUID) (*storage.ProgramRecord, error)
	ListPrograms(ctx context.Context, limit int) ([]storage.ProgramSummary, error)
	DeleteProgram(ctx context.Context, id uuid.UUID) error
	LogWorkout(ctx context.Context, e storage.HistoryEntry) (uuid.UUID, error)
	QueryHistory(ctx context.Context, start, end time.Time, limit int) ([]storage.HistoryEntry, error)
	GetTrainingStats(ctx context.Context) (*storage.TrainingStats, error)
	Ping(ctx context.Context) error
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     Store
	gen    ProgramGenerator
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db Store, gen ProgramGenerator, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		gen:    gen,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/health/live", s.handleHealth)
	s.router.Get("/health/ready", s.handleReady)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Read endpoints (no auth)
		r.Get("/programs", s.handleListPrograms)
		r.Get("/programs/{id}", s.handleGetProgram)
		r.Get("/history", s.handleQueryHistory)
		r.Get("/stats", s.handleTrainingStats)

		// Mutating endpoints (API key required)
		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/programs", s.handleGenerateProgram)
			r.Post("/programs/week", s.handleGenerateWeek)
			r.Delete("/programs/{id}", s.handleDeleteProgram)
			r.Post("/history", s.handleLogWorkout)
		})
	})
}
