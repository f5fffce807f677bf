package entity

import (
	"fmt"
	"slices"
	"strings"
)

// UserProfile is the validated input of a single plan generation request.
// It is immutable once constructed: accessors return copies of the slices.
type UserProfile struct {
	weightKG            float64
	heightCM            float64
	age                 int
	sex                 Sex
	activityLevel       ActivityLevel
	goal                Goal
	dietaryRestrictions []string
	planDuration        PlanDuration
	history             []ChatMessage
}

// ProfileParams carries the raw fields used to build a UserProfile.
type ProfileParams struct {
	WeightKG            float64
	HeightCM            float64
	Age                 int
	Sex                 Sex
	ActivityLevel       ActivityLevel
	Goal                Goal
	DietaryRestrictions []string
	PlanDuration        PlanDuration
	History             []ChatMessage
}

// NewUserProfile validates params and returns an immutable profile.
// An empty plan duration defaults to weekly; blank and duplicate restrictions are dropped.
func NewUserProfile(params ProfileParams) (*UserProfile, error) {
	if params.PlanDuration == "" {
		params.PlanDuration = PlanWeekly
	}

	if err := validateProfileParams(params); err != nil {
		return nil, err
	}

	return &UserProfile{
		weightKG:            params.WeightKG,
		heightCM:            params.HeightCM,
		age:                 params.Age,
		sex:                 params.Sex,
		activityLevel:       params.ActivityLevel,
		goal:                params.Goal,
		dietaryRestrictions: normalizeRestrictions(params.DietaryRestrictions),
		planDuration:        params.PlanDuration,
		history:             slices.Clone(params.History),
	}, nil
}

// Upper bounds on body metrics. Values past these are typos, and they would
// overflow the integer energy figures.
const (
	MaxWeightKG = 300
	MaxHeightCM = 250
	MaxAge      = 120
)

func validateProfileParams(p ProfileParams) error {
	verr := &ValidationError{}

	switch {
	case !(p.WeightKG > 0):
		verr.Add("weight_kg", "must be greater than 0")
	case p.WeightKG > MaxWeightKG:
		verr.Add("weight_kg", fmt.Sprintf("must be at most %d", MaxWeightKG))
	}
	switch {
	case !(p.HeightCM > 0):
		verr.Add("height_cm", "must be greater than 0")
	case p.HeightCM > MaxHeightCM:
		verr.Add("height_cm", fmt.Sprintf("must be at most %d", MaxHeightCM))
	}
	switch {
	case p.Age <= 0:
		verr.Add("age", "must be greater than 0")
	case p.Age > MaxAge:
		verr.Add("age", fmt.Sprintf("must be at most %d", MaxAge))
	}
	if !p.Sex.IsValid() {
		verr.Add("sex", fmt.Sprintf("must be one of [male female], got %q", p.Sex))
	}
	if !p.ActivityLevel.IsValid() {
		verr.Add("activity_level", fmt.Sprintf("must be one of [sedentary light moderate active very_active], got %q", p.ActivityLevel))
	}
	if !p.Goal.IsValid() {
		verr.Add("goal", fmt.Sprintf("must be one of [lose aggressive_lose maintain recomp lean_bulk bulk], got %q", p.Goal))
	}
	if !p.PlanDuration.IsValid() {
		verr.Add("plan_duration", fmt.Sprintf("must be one of [daily weekly], got %q", p.PlanDuration))
	}
	for i, msg := range p.History {
		if !msg.Role.IsValid() {
			verr.Add(fmt.Sprintf("history[%d].role", i), fmt.Sprintf("must be one of [user assistant], got %q", msg.Role))
		}
	}

	if verr.HasErrors() {
		return verr
	}

	return nil
}

func normalizeRestrictions(in []string) []string {
	out := make([]string, 0, len(in))
	for _, r := range in {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "" || r == "none" || slices.Contains(out, r) {
			continue
		}
		out = append(out, r)
	}

	return out
}

func (p *UserProfile) WeightKG() float64             { return p.weightKG }
func (p *UserProfile) HeightCM() float64             { return p.heightCM }
func (p *UserProfile) Age() int                      { return p.age }
func (p *UserProfile) Sex() Sex                      { return p.sex }
func (p *UserProfile) ActivityLevel() ActivityLevel  { return p.activityLevel }
func (p *UserProfile) Goal() Goal                    { return p.goal }
func (p *UserProfile) PlanDuration() PlanDuration    { return p.planDuration }
func (p *UserProfile) DietaryRestrictions() []string { return slices.Clone(p.dietaryRestrictions) }
func (p *UserProfile) History() []ChatMessage        { return slices.Clone(p.history) }

// RestrictionsText renders the dietary restrictions for prompts, "None" when empty.
func (p *UserProfile) RestrictionsText() string {
	if len(p.dietaryRestrictions) == 0 {
		return "None"
	}

	return strings.Join(p.dietaryRestrictions, ", ")
}
