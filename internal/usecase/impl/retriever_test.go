package impl

import (
	"context"
	"testing"

	"fitbot/config"
	"fitbot/internal/domain/entity"
	"fitbot/internal/domain/service"
	"fitbot/internal/errors"
	mockSvc "fitbot/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBuildExerciseQuery(t *testing.T) {
	profile := mustProfile(t, entity.ProfileParams{
		WeightKG: 80, HeightCM: 180, Age: 30,
		Sex: entity.SexMale, ActivityLevel: entity.ActivitySedentary, Goal: entity.GoalLeanBulk,
		PlanDuration: entity.PlanDaily,
	})

	query := BuildExerciseQuery(profile)

	assert.Equal(t, "muscle building hypertrophy strength sedentary beginner single session full body", query)
}

func TestBuildNutritionQuery_SteersRestrictions(t *testing.T) {
	profile := mustProfile(t, entity.ProfileParams{
		WeightKG: 70, HeightCM: 170, Age: 25,
		Sex: entity.SexFemale, ActivityLevel: entity.ActivityModerate, Goal: entity.GoalLose,
		DietaryRestrictions: []string{"Vegetarian", "no mushrooms"},
	})

	query := BuildNutritionQuery(profile)

	assert.Equal(t, "low calorie high protein vegetarian meatless no meat no fish no mushrooms", query)
}

func TestContextRetriever_Retrieve(t *testing.T) {
	index := mockSvc.NewMockVectorIndex(t)
	retriever := NewContextRetriever(testLogger(), &config.Config{Retrieval: &config.RetrievalConfig{TopK: 3}}, index)
	profile := chainProfile(t)

	exercises := []entity.Snippet{{Collection: entity.CollectionExercises, Text: "Burpee", Score: 0.9}}
	foods := []entity.Snippet{{Collection: entity.CollectionFoods, Text: "Tofu", Score: 0.8}}

	index.EXPECT().Search(mock.Anything, entity.CollectionExercises, BuildExerciseQuery(profile), 3).Return(exercises, nil).Once()
	index.EXPECT().Search(mock.Anything, entity.CollectionFoods, BuildNutritionQuery(profile), 3).Return(foods, nil).Once()

	retrieved, err := retriever.Retrieve(context.Background(), profile, okCalories())

	require.NoError(t, err)
	assert.Equal(t, exercises, retrieved.Exercises)
	assert.Equal(t, foods, retrieved.Foods)
	assert.False(t, retrieved.IsDegraded())
}

func TestContextRetriever_Retrieve_EmptySideIsNotAnError(t *testing.T) {
	index := mockSvc.NewMockVectorIndex(t)
	retriever := NewContextRetriever(testLogger(), nil, index)
	profile := chainProfile(t)

	index.EXPECT().Search(mock.Anything, entity.CollectionExercises, mock.Anything, defaultTopK).
		Return([]entity.Snippet{{Text: "Plank"}}, nil).Once()
	index.EXPECT().Search(mock.Anything, entity.CollectionFoods, mock.Anything, defaultTopK).
		Return(nil, nil).Once()

	retrieved, err := retriever.Retrieve(context.Background(), profile, okCalories())

	require.NoError(t, err)
	assert.True(t, retrieved.IsDegraded())
	assert.True(t, retrieved.Empty(entity.CollectionFoods))
	assert.Len(t, retrieved.Exercises, 1)
}

func TestContextRetriever_Retrieve_SearchError(t *testing.T) {
	index := mockSvc.NewMockVectorIndex(t)
	retriever := NewContextRetriever(testLogger(), nil, index)

	index.EXPECT().Search(mock.Anything, entity.CollectionExercises, mock.Anything, mock.Anything).
		Return(nil, service.ErrIndexNotReady).Maybe()
	index.EXPECT().Search(mock.Anything, entity.CollectionFoods, mock.Anything, mock.Anything).
		Return(nil, service.ErrIndexNotReady).Maybe()

	retrieved, err := retriever.Retrieve(context.Background(), chainProfile(t), okCalories())

	assert.Nil(t, retrieved)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrIndexNotReady))
}
