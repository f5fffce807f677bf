package usecase

import (
	"context"

	"fitbot/internal/domain/entity"
)

// ProfileInput carries the raw profile fields of a request
type ProfileInput struct {
	WeightKG            float64
	HeightCM            float64
	Age                 int
	Sex                 string
	ActivityLevel       string
	Goal                string
	DietaryRestrictions []string
	PlanDuration        string
	History             []entity.ChatMessage
}

// GeneratePlanInput represents a plan generation request
type GeneratePlanInput struct {
	Profile ProfileInput
}

// CalorieSummary is the subset of the calculator output returned with a plan
type CalorieSummary struct {
	BMR    int `json:"bmr"`
	TDEE   int `json:"tdee"`
	Target int `json:"target"`
}

// PlanOutput is the result of a plan generation request
type PlanOutput struct {
	Plan     string
	Calories CalorieSummary
	// Warning is empty when the calorie verdict is OK
	Warning string
}

// ChatInput represents a follow-up question about an existing plan
type ChatInput struct {
	Message     string
	PlanContext string
	History     []entity.ChatMessage
}

// ChatOutput is the answer to a follow-up question
type ChatOutput struct {
	Reply string
}

// PlanUsecase defines the interface for plan generation use cases
type PlanUsecase interface {
	// GeneratePlan validates the profile, applies the calorie safety gate and generates a grounded plan
	GeneratePlan(ctx context.Context, input *GeneratePlanInput) (*PlanOutput, error)

	// CalculateCalories validates the profile and returns the full calorie result without generation
	CalculateCalories(ctx context.Context, input *ProfileInput) (*entity.CalorieResult, error)

	// Chat answers a follow-up question using the plan text and prior turns as context
	Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error)
}

// CalorieCalculator computes energy needs and the safety verdict of a profile
type CalorieCalculator interface {
	Compute(profile *entity.UserProfile) (*entity.CalorieResult, error)
}

// ContextRetriever fetches grounding snippets for a profile
type ContextRetriever interface {
	Retrieve(ctx context.Context, profile *entity.UserProfile, calories *entity.CalorieResult) (*entity.RetrievedContext, error)
}

// PlanChain turns a profile, its calorie result and the retrieved context into plan text
type PlanChain interface {
	Generate(
		ctx context.Context,
		profile *entity.UserProfile,
		calories *entity.CalorieResult,
		retrieved *entity.RetrievedContext,
	) (*entity.GeneratedPlan, error)

	// Answer runs a single follow-up completion outside of the plan format
	Answer(ctx context.Context, input *ChatInput) (string, error)
}

// ToParams converts raw input fields into entity profile params
func (in *ProfileInput) ToParams() entity.ProfileParams {
	return entity.ProfileParams{
		WeightKG:            in.WeightKG,
		HeightCM:            in.HeightCM,
		Age:                 in.Age,
		Sex:                 entity.Sex(in.Sex),
		ActivityLevel:       entity.ActivityLevel(in.ActivityLevel),
		Goal:                entity.Goal(in.Goal),
		DietaryRestrictions: in.DietaryRestrictions,
		PlanDuration:        entity.PlanDuration(in.PlanDuration),
		History:             in.History,
	}
}
