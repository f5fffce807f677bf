package impl

import (
	"context"
	"log/slog"
	"strings"

	"fitbot/config"
	deliverycontext "fitbot/internal/delivery/context"
	"fitbot/internal/domain/entity"
	"fitbot/internal/domain/service"
	"fitbot/internal/errors"
	"fitbot/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const defaultTopK = 5

var exerciseEmphasis = map[entity.Goal]string{
	entity.GoalLose:           "fat loss cardio calorie burn",
	entity.GoalAggressiveLose: "fat loss high intensity calorie burn",
	entity.GoalMaintain:       "general fitness maintenance",
	entity.GoalRecomp:         "strength training muscle building maintenance",
	entity.GoalLeanBulk:       "muscle building hypertrophy strength",
	entity.GoalBulk:           "mass building heavy compound strength",
}

var nutritionEmphasis = map[entity.Goal]string{
	entity.GoalLose:           "low calorie high protein",
	entity.GoalAggressiveLose: "low calorie high protein low fat",
	entity.GoalMaintain:       "balanced nutrition moderate calories",
	entity.GoalRecomp:         "high protein moderate carbs",
	entity.GoalLeanBulk:       "high protein high calorie",
	entity.GoalBulk:           "high calorie high protein high carbs",
}

// experienceLevels maps activity to the Level column of the exercise dataset.
var experienceLevels = map[entity.ActivityLevel]string{
	entity.ActivitySedentary:  "beginner",
	entity.ActivityLight:      "beginner",
	entity.ActivityModerate:   "intermediate",
	entity.ActivityActive:     "expert",
	entity.ActivityVeryActive: "expert",
}

var durationHints = map[entity.PlanDuration]string{
	entity.PlanDaily:  "single session full body",
	entity.PlanWeekly: "weekly split routine",
}

// restrictionSteering expands known restrictions into phrases that pull the
// embedding query toward compliant foods. Unknown restrictions pass through as-is.
var restrictionSteering = map[string]string{
	"vegetarian":   "vegetarian meatless no meat no fish",
	"vegan":        "vegan plant based no meat no dairy no eggs",
	"pescatarian":  "pescatarian fish seafood no meat",
	"gluten-free":  "gluten free no wheat no barley",
	"gluten free":  "gluten free no wheat no barley",
	"dairy-free":   "dairy free no milk no cheese",
	"dairy free":   "dairy free no milk no cheese",
	"lactose-free": "lactose free no milk",
	"nut-free":     "nut free no peanuts no almonds",
	"keto":         "low carb high fat ketogenic",
	"low-carb":     "low carb",
	"halal":        "halal no pork",
	"kosher":       "kosher no pork no shellfish",
}

type contextRetriever struct {
	logger *slog.Logger
	index  service.VectorIndex
	topK   int
}

// NewContextRetriever creates a retriever over the exercise and food collections
func NewContextRetriever(logger *slog.Logger, cfg *config.Config, index service.VectorIndex) usecase.ContextRetriever {
	topK := defaultTopK
	if cfg != nil && cfg.Retrieval != nil && cfg.Retrieval.TopK > 0 {
		topK = cfg.Retrieval.TopK
	}

	return &contextRetriever{
		logger: logger,
		index:  index,
		topK:   topK,
	}
}

// Retrieve searches both collections concurrently
func (r *contextRetriever) Retrieve(
	ctx context.Context,
	profile *entity.UserProfile,
	_ *entity.CalorieResult,
) (*entity.RetrievedContext, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
	retrieved := &entity.RetrievedContext{}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		snippets, err := r.index.Search(groupCtx, entity.CollectionExercises, BuildExerciseQuery(profile), r.topK)
		if err != nil {
			return errors.Wrap(err, "search exercises")
		}
		retrieved.Exercises = snippets

		return nil
	})
	group.Go(func() error {
		snippets, err := r.index.Search(groupCtx, entity.CollectionFoods, BuildNutritionQuery(profile), r.topK)
		if err != nil {
			return errors.Wrap(err, "search foods")
		}
		retrieved.Foods = snippets

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, collection := range entity.Collections {
		if retrieved.Empty(collection) {
			logger.Warn("Retrieval degraded: no snippets found",
				slog.String("collection", collection.String()),
				slog.String("goal", profile.Goal().String()),
			)
		}
	}

	return retrieved, nil
}

// BuildExerciseQuery builds the exercise search text for a profile
func BuildExerciseQuery(profile *entity.UserProfile) string {
	parts := []string{
		exerciseEmphasis[profile.Goal()],
		profile.ActivityLevel().String(),
		experienceLevels[profile.ActivityLevel()],
		durationHints[profile.PlanDuration()],
	}

	return joinNonEmpty(parts)
}

// BuildNutritionQuery builds the food search text for a profile
func BuildNutritionQuery(profile *entity.UserProfile) string {
	parts := []string{nutritionEmphasis[profile.Goal()]}
	for _, restriction := range profile.DietaryRestrictions() {
		if phrase, ok := restrictionSteering[restriction]; ok {
			parts = append(parts, phrase)
			continue
		}
		parts = append(parts, restriction)
	}

	return joinNonEmpty(parts)
}

func joinNonEmpty(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, " ")
}
