package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/endurely/internal/config"
	"github.com/claude/endurely/internal/generator"
	"github.com/claude/endurely/internal/models"
	"github.com/joho/godotenv"
)

// endurely-gen generates a single program from the command line and prints it
// as JSON, without touching the database. Useful for prompt iteration and for
// smoke-testing a model deployment.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	sportType := flag.String("sport", "triathlon", "sport type (triathlon, running, cycling, duathlon, aquathlon)")
	goal := flag.String("goal", "", "goal race distance (required, e.g. sprint, olympic, 70.3, marathon)")
	fitness := flag.String("fitness", "", "fitness level (required: beginner, intermediate, advanced)")
	hours := flag.Int("hours", 8, "available training hours per week")
	weeks := flag.Int("weeks", 12, "program duration in weeks")
	temperature := flag.Float64("temperature", -1, "sampling temperature (unset by default; some models only accept their default)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *goal == "" || *fitness == "" {
		fmt.Fprintf(os.Stderr, "Usage: endurely-gen -goal sprint -fitness beginner [-sport triathlon] [-hours 8] [-weeks 12]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	req := &models.ProgramRequest{
		SportType:             models.SportType(*sportType),
		Goal:                  models.NormalizeRaceDistance(*goal),
		FitnessLevel:          models.NormalizeFitnessLevel(*fitness),
		AvailableHoursPerWeek: *hours,
		DurationWeeks:         *weeks,
	}
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		log.Error("invalid request", "error", err)
		os.Exit(1)
	}

	client, err := generator.NewClient(generator.ClientConfig{
		Provider:   cfg.LLM.Provider,
		Endpoint:   cfg.LLM.Endpoint,
		APIVersion: cfg.LLM.APIVersion,
		BaseURL:    cfg.LLM.BaseURL,
		APIKey:     cfg.LLM.APIKey,
		Model:      cfg.LLM.ModelName(),
	}, log)
	if err != nil {
		log.Error("failed to create llm client", "error", err)
		os.Exit(1)
	}

	gen := generator.New(client, log)
	if *temperature >= 0 {
		gen.Temperature = temperature
	}

	log.Info("generating", "goal", req.Goal, "fitness", req.FitnessLevel, "weeks", req.DurationWeeks)
	program, err := gen.GenerateProgram(context.Background(), req)
	if err != nil {
		log.Error("generation failed", "kind", string(generator.KindOf(err)), "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(program); err != nil {
		log.Error("encoding program", "error", err)
		os.Exit(1)
	}
}
