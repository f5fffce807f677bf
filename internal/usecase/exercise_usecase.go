package usecase

import (
	"context"

	"fitbot/internal/domain/entity"
)

// ExerciseSearchInput represents a semantic search over the exercise collection
type ExerciseSearchInput struct {
	Query string
	// Limit defaults to 5 when zero
	Limit     int
	Level     string
	BodyPart  string
	Equipment string
}

// ExerciseUsecase defines the interface for exercise lookups
type ExerciseUsecase interface {
	// SearchExercises returns the exercises most similar to the query, best first
	SearchExercises(ctx context.Context, input *ExerciseSearchInput) ([]entity.Snippet, error)
}
