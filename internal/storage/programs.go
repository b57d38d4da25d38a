package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/claude/endurely/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ProgramRecord is a stored training program with its generation parameters.
// The program itself is kept as JSON: callers always consume it whole, and the
// schema can evolve without migrations.
type ProgramRecord struct {
	ID            uuid.UUID               `json:"id"`
	SportType     models.SportType        `json:"sport_type"`
	Goal          models.RaceDistance     `json:"goal"`
	FitnessLevel  models.FitnessLevel     `json:"fitness_level"`
	DurationWeeks int                     `json:"duration_weeks"`
	HoursPerWeek  int                     `json:"hours_per_week"`
	Program       *models.TrainingProgram `json:"program,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}

// ProgramSummary is the listing view of a stored program, without the plan body.
type ProgramSummary struct {
	ID            uuid.UUID           `json:"id"`
	SportType     models.SportType    `json:"sport_type"`
	Goal          models.RaceDistance `json:"goal"`
	FitnessLevel  models.FitnessLevel `json:"fitness_level"`
	DurationWeeks int                 `json:"duration_weeks"`
	CreatedAt     time.Time           `json:"created_at"`
}

// SaveProgram stores a generated program with the request that produced it
// and returns the new row's ID.
func (db *DB) SaveProgram(ctx context.Context, req *models.ProgramRequest, program *models.TrainingProgram) (uuid.UUID, error) {
	body, err := json.Marshal(program)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshaling program: %w", err)
	}

	id := uuid.New()
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO training_programs (id, sport_type, goal, fitness_level, duration_weeks, hours_per_week, program_json)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		id, req.SportType, req.Goal, req.FitnessLevel, req.DurationWeeks, req.AvailableHoursPerWeek, body)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting program: %w", err)
	}
	return id, nil
}

// GetProgram retrieves a stored program by ID, including the plan body.
func (db *DB) GetProgram(ctx context.Context, id uuid.UUID) (*ProgramRecord, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, sport_type, goal, fitness_level, duration_weeks, hours_per_week, program_json, created_at
		 FROM training_programs
		 WHERE id = $1`, id)

	var rec ProgramRecord
	var body []byte
	err := row.Scan(&rec.ID, &rec.SportType, &rec.Goal, &rec.FitnessLevel,
		&rec.DurationWeeks, &rec.HoursPerWeek, &body, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying program: %w", err)
	}

	rec.Program = &models.TrainingProgram{}
	if err := json.Unmarshal(body, rec.Program); err != nil {
		return nil, fmt.Errorf("unmarshaling program %s: %w", id, err)
	}
	return &rec, nil
}

// ListPrograms retrieves program summaries, newest first.
func (db *DB) ListPrograms(ctx context.Context, limit int) ([]ProgramSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, sport_type, goal, fitness_level, duration_weeks, created_at
		 FROM training_programs
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer rows.Close()

	var result []ProgramSummary
	for rows.Next() {
		var s ProgramSummary
		if err := rows.Scan(&s.ID, &s.SportType, &s.Goal, &s.FitnessLevel, &s.DurationWeeks, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning program summary: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// DeleteProgram removes a stored program and its logged workouts.
func (db *DB) DeleteProgram(ctx context.Context, id uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM training_programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
