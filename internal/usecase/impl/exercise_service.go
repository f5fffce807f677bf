package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "fitbot/internal/delivery/context"
	"fitbot/internal/domain/entity"
	domainerrors "fitbot/internal/domain/errors"
	"fitbot/internal/domain/service"
	"fitbot/internal/errors"
	"fitbot/internal/usecase"
)

const (
	defaultSearchLimit = 5
	maxSearchLimit     = 20
)

var searchLevels = []string{"beginner", "intermediate", "expert"}

type exerciseService struct {
	logger *slog.Logger
	index  service.VectorIndex
}

// NewExerciseService creates the exercise search service
func NewExerciseService(logger *slog.Logger, index service.VectorIndex) usecase.ExerciseUsecase {
	return &exerciseService{
		logger: logger,
		index:  index,
	}
}

// SearchExercises steers the query with the optional filters and searches the exercise collection
func (s *exerciseService) SearchExercises(ctx context.Context, input *usecase.ExerciseSearchInput) ([]entity.Snippet, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if verr := validateSearchInput(input); verr != nil {
		return nil, domainerrors.NewValidationError(verr)
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultSearchLimit
	}

	query := BuildExerciseSearchQuery(input)
	snippets, err := s.index.Search(ctx, entity.CollectionExercises, query, limit)
	if err != nil {
		appErr := domainerrors.ErrRetrievalFailed
		if errors.Is(err, service.ErrIndexNotReady) {
			appErr = domainerrors.ErrKnowledgeBaseUnavailable
		}

		return nil, logAppError(logger, "search exercises", err, appErr)
	}

	logger.Debug("Exercise search",
		slog.String("query", query),
		slog.Int("limit", limit),
		slog.Int("hits", len(snippets)),
	)

	return snippets, nil
}

// BuildExerciseSearchQuery appends the filters to the free-text query.
// The index has no metadata filters, so they only steer the embedding.
func BuildExerciseSearchQuery(input *usecase.ExerciseSearchInput) string {
	return joinNonEmpty([]string{
		input.Query,
		strings.ToLower(input.Level),
		strings.ToLower(input.BodyPart),
		strings.ToLower(input.Equipment),
	})
}

func validateSearchInput(input *usecase.ExerciseSearchInput) *entity.ValidationError {
	verr := &entity.ValidationError{}

	if strings.TrimSpace(input.Query) == "" {
		verr.Add("query", "must not be empty")
	}
	if input.Limit < 0 || input.Limit > maxSearchLimit {
		verr.Add("limit", fmt.Sprintf("must be between 1 and %d", maxSearchLimit))
	}
	if input.Level != "" && !slices.Contains(searchLevels, strings.ToLower(input.Level)) {
		verr.Add("level", fmt.Sprintf("must be one of [%s], got %q", strings.Join(searchLevels, " "), input.Level))
	}

	if verr.HasErrors() {
		return verr
	}

	return nil
}
