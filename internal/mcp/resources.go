package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/endurely/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) recentPrograms(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	programs, err := h.db.ListPrograms(ctx, 10)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(programs)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// raceDistancesBySport groups the goal vocabulary by event type for the
// catalog resource.
var raceDistancesBySport = map[models.SportType][]models.RaceDistance{
	models.SportTypeTriathlon: {models.RaceSprint, models.RaceOlympic, models.RaceHalfIronman, models.RaceFullIronman},
	models.SportTypeRunning:   {models.Race5K, models.Race10K, models.RaceHalfMara, models.RaceMarathon, models.RaceUltra50K, models.RaceUltra100K},
	models.SportTypeCycling:   {models.RaceCentury, models.RaceGranFondo, models.RaceDoubleCentury},
	models.SportTypeDuathlon:  {models.RaceDuathlonSprint, models.RaceDuathlonStandard, models.RaceDuathlonLong},
	models.SportTypeAquathlon: {models.RaceAquathlonSprint, models.RaceAquathlonStandard},
}

func (h *handlers) raceCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	catalog := map[string]any{
		"sport_types":    raceDistancesBySport,
		"fitness_levels": []models.FitnessLevel{models.FitnessBeginner, models.FitnessIntermediate, models.FitnessAdvanced},
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
