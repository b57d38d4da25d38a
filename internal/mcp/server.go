package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/claude/endurely/internal/models"
	"github.com/claude/endurely/internal/storage"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Generator produces training programs. Satisfied by *generator.Generator.
type Generator interface {
	GenerateProgram(ctx context.Context, req *models.ProgramRequest) (*models.TrainingProgram, error)
	GenerateSingleWeek(ctx context.Context, req *models.ProgramRequest, weekNumber int, phase string) (*models.WeekPlan, error)
}

// Store is the persistence surface the MCP handlers need. Satisfied by
// *storage.DB.
type Store interface {
	SaveProgram(ctx context.Context, req *models.ProgramRequest, program *models.TrainingProgram) (uuid.UUID, error)
	GetProgram(ctx context.Context, id uuid.UUID) (*storage.ProgramRecord, error)
	ListPrograms(ctx context.Context, limit int) ([]storage.ProgramSummary, error)
	QueryHistory(ctx context.Context, start, end time.Time, limit int) ([]storage.HistoryEntry, error)
	GetTrainingStats(ctx context.Context) (*storage.TrainingStats, error)
}

// New creates an MCP server with all tools and resources registered.
func New(db Store, gen Generator, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Endurely", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Endurely endurance training server. Generate periodized swim/bike/run training programs, retrieve stored programs, and query workout history and training statistics."),
	)

	h := &handlers{db: db, gen: gen, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGenerateProgram, Handler: h.generateProgram},
		server.ServerTool{Tool: toolGenerateWeek, Handler: h.generateWeek},
		server.ServerTool{Tool: toolListPrograms, Handler: h.listPrograms},
		server.ServerTool{Tool: toolGetProgram, Handler: h.getProgram},
		server.ServerTool{Tool: toolGetWorkoutHistory, Handler: h.getWorkoutHistory},
		server.ServerTool{Tool: toolGetTrainingStats, Handler: h.getTrainingStats},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resRecentPrograms, Handler: h.recentPrograms},
		server.ServerResource{Resource: resRaceCatalog, Handler: h.raceCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	db  Store
	gen Generator
	log *slog.Logger
}

// --- Resource definitions ---

var resRecentPrograms = mcp.NewResource(
	"endurely://recent_programs",
	"Recent Programs",
	mcp.WithResourceDescription("The 10 most recently generated training programs (summaries without the full plan body)"),
	mcp.WithMIMEType("application/json"),
)

var resRaceCatalog = mcp.NewResource(
	"endurely://race_catalog",
	"Race Catalog",
	mcp.WithResourceDescription("All supported sport types with their goal race distances and fitness levels"),
	mcp.WithMIMEType("application/json"),
)
