package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/endurely/internal/models"
	"github.com/google/uuid"
)

// HistoryEntry is one completed (or skipped) workout logged against a program.
type HistoryEntry struct {
	ID              uuid.UUID    `json:"id"`
	ProgramID       *uuid.UUID   `json:"program_id,omitempty"`
	Sport           models.Sport `json:"sport"`
	Title           string       `json:"title"`
	CompletedAt     time.Time    `json:"completed_at"`
	DurationMinutes int          `json:"duration_minutes"`
	DistanceKm      *float64     `json:"distance_km,omitempty"`
	PerceivedEffort *int         `json:"perceived_effort,omitempty"`
	Skipped         bool         `json:"skipped"`
	Notes           string       `json:"notes,omitempty"`
}

// LogWorkout inserts a history entry and returns its ID. CompletedAt defaults
// to now when unset.
func (db *DB) LogWorkout(ctx context.Context, e HistoryEntry) (uuid.UUID, error) {
	if e.CompletedAt.IsZero() {
		e.CompletedAt = time.Now().UTC()
	}
	id := uuid.New()
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO workout_history (id, program_id, sport, title, completed_at, duration_minutes, distance_km, perceived_effort, skipped, notes)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		id, e.ProgramID, e.Sport, e.Title, e.CompletedAt, e.DurationMinutes,
		e.DistanceKm, e.PerceivedEffort, e.Skipped, e.Notes)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting history entry: %w", err)
	}
	return id, nil
}

// QueryHistory retrieves history entries in a time range, newest first.
func (db *DB) QueryHistory(ctx context.Context, start, end time.Time, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, program_id, sport, title, completed_at, duration_minutes, distance_km, perceived_effort, skipped, notes
		 FROM workout_history
		 WHERE completed_at >= $1 AND completed_at < $2
		 ORDER BY completed_at DESC
		 LIMIT $3`,
		start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var result []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.ProgramID, &e.Sport, &e.Title, &e.CompletedAt,
			&e.DurationMinutes, &e.DistanceKm, &e.PerceivedEffort, &e.Skipped, &e.Notes); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// TrainingStats holds aggregate statistics over logged workouts.
type TrainingStats struct {
	TotalWorkouts   int64          `json:"total_workouts"`
	TotalSkipped    int64          `json:"total_skipped"`
	TotalHours      float64        `json:"total_hours"`
	TotalDistanceKm float64        `json:"total_distance_km"`
	EarliestEntry   *time.Time     `json:"earliest_entry"`
	LatestEntry     *time.Time     `json:"latest_entry"`
	BySport         []SportStat    `json:"by_sport"`
}

// SportStat holds summary stats for a single sport.
type SportStat struct {
	Sport           models.Sport `json:"sport"`
	Count           int64        `json:"count"`
	TotalHours      float64      `json:"total_hours"`
	TotalDistanceKm *float64     `json:"total_distance_km,omitempty"`
}

// GetTrainingStats returns aggregate statistics over the workout history.
func (db *DB) GetTrainingStats(ctx context.Context) (*TrainingStats, error) {
	stats := &TrainingStats{}

	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FILTER (WHERE NOT skipped),
		        COUNT(*) FILTER (WHERE skipped),
		        COALESCE(SUM(duration_minutes) FILTER (WHERE NOT skipped), 0) / 60.0,
		        COALESCE(SUM(distance_km) FILTER (WHERE NOT skipped), 0),
		        MIN(completed_at), MAX(completed_at)
		 FROM workout_history`,
	).Scan(&stats.TotalWorkouts, &stats.TotalSkipped, &stats.TotalHours,
		&stats.TotalDistanceKm, &stats.EarliestEntry, &stats.LatestEntry)
	if err != nil {
		return nil, fmt.Errorf("querying history totals: %w", err)
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT sport, COUNT(*), COALESCE(SUM(duration_minutes), 0) / 60.0, SUM(distance_km)
		 FROM workout_history
		 WHERE NOT skipped
		 GROUP BY sport
		 ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying stats by sport: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s SportStat
		if err := rows.Scan(&s.Sport, &s.Count, &s.TotalHours, &s.TotalDistanceKm); err != nil {
			return nil, fmt.Errorf("scanning sport stat: %w", err)
		}
		stats.BySport = append(stats.BySport, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
