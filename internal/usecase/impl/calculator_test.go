package impl

import (
	"testing"

	"fitbot/config"
	"fitbot/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProfile(t *testing.T, params entity.ProfileParams) *entity.UserProfile {
	t.Helper()

	profile, err := entity.NewUserProfile(params)
	require.NoError(t, err)

	return profile
}

func TestCalculator_Compute_StandardLose(t *testing.T) {
	calc := NewCalculator(nil)
	profile := mustProfile(t, entity.ProfileParams{
		WeightKG: 70, HeightCM: 170, Age: 25,
		Sex: entity.SexFemale, ActivityLevel: entity.ActivityModerate, Goal: entity.GoalLose,
	})

	result, err := calc.Compute(profile)

	require.NoError(t, err)
	assert.Equal(t, 1477, result.BMR)
	assert.Equal(t, 2289, result.TDEE)
	assert.Equal(t, 1789, result.Target)
	assert.Equal(t, 1789, result.RequestedTarget)
	assert.Equal(t, -500, result.Adjustment)
	assert.InDelta(t, 24.22, result.BMI, 0.001)
	assert.Equal(t, entity.VerdictOK, result.Verdict)
	assert.Empty(t, result.Warning)
	assert.Equal(t, entity.Macros{ProteinG: 157, CarbsG: 179, FatG: 50}, result.Macros)
}

func TestCalculator_Compute_Floored(t *testing.T) {
	calc := NewCalculator(nil)
	profile := mustProfile(t, entity.ProfileParams{
		WeightKG: 80, HeightCM: 150, Age: 80,
		Sex: entity.SexFemale, ActivityLevel: entity.ActivitySedentary, Goal: entity.GoalLose,
	})

	result, err := calc.Compute(profile)

	require.NoError(t, err)
	assert.Equal(t, 1177, result.BMR)
	assert.Equal(t, 1412, result.TDEE)
	assert.Equal(t, 912, result.RequestedTarget)
	assert.Equal(t, 1200, result.Target, "reported target never falls below the floor")
	assert.Equal(t, entity.VerdictFloored, result.Verdict)
	assert.True(t, result.Verdict.IsGated())
	assert.Contains(t, result.Warning, "912 kcal/day")
	assert.Contains(t, result.Warning, "1200 kcal/day")
}

func TestCalculator_Compute_AggressiveLoseFloored(t *testing.T) {
	calc := NewCalculator(nil)
	profile := mustProfile(t, entity.ProfileParams{
		WeightKG: 60, HeightCM: 150, Age: 90,
		Sex: entity.SexFemale, ActivityLevel: entity.ActivitySedentary, Goal: entity.GoalAggressiveLose,
	})

	result, err := calc.Compute(profile)

	require.NoError(t, err)
	assert.InDelta(t, 26.67, result.BMI, 0.001)
	assert.Equal(t, 927, result.BMR)
	assert.Equal(t, 1112, result.TDEE)
	assert.Equal(t, -500, result.Adjustment)
	assert.Equal(t, 612, result.RequestedTarget)
	assert.Equal(t, 1200, result.Target)
	assert.Equal(t, entity.VerdictFloored, result.Verdict)

	rejected, err := calc.Compute(mustProfile(t, entity.ProfileParams{
		WeightKG: 55, HeightCM: 165, Age: 30,
		Sex: entity.SexFemale, ActivityLevel: entity.ActivityModerate, Goal: entity.GoalAggressiveLose,
	}))
	require.NoError(t, err)
	require.Equal(t, entity.VerdictRejected, rejected.Verdict)

	assert.NotEqual(t, rejected.Warning, result.Warning)
	assert.Contains(t, result.Warning, "612 kcal/day")
	assert.NotContains(t, result.Warning, "BMI")
	assert.Contains(t, rejected.Warning, "BMI")
}

func TestCalculator_Compute_AggressiveWithNormalBMIRejected(t *testing.T) {
	calc := NewCalculator(nil)
	profile := mustProfile(t, entity.ProfileParams{
		WeightKG: 70, HeightCM: 175, Age: 30,
		Sex: entity.SexMale, ActivityLevel: entity.ActivityModerate, Goal: entity.GoalAggressiveLose,
	})

	result, err := calc.Compute(profile)

	require.NoError(t, err)
	assert.InDelta(t, 22.86, result.BMI, 0.001)
	assert.Equal(t, entity.VerdictRejected, result.Verdict)
	assert.Contains(t, result.Warning, "'lose' goal")
	assert.Equal(t, 1649, result.BMR)
	assert.Equal(t, 2556, result.TDEE)
	assert.Equal(t, 2056, result.Target)
}

func TestCalculator_Compute_AggressiveWithHighBMIClampedToCeiling(t *testing.T) {
	calc := NewCalculator(nil)
	profile := mustProfile(t, entity.ProfileParams{
		WeightKG: 110, HeightCM: 175, Age: 40,
		Sex: entity.SexMale, ActivityLevel: entity.ActivityActive, Goal: entity.GoalAggressiveLose,
	})

	result, err := calc.Compute(profile)

	require.NoError(t, err)
	assert.Equal(t, entity.VerdictOK, result.Verdict)
	assert.Equal(t, -500, result.Adjustment)
	assert.Equal(t, 3448, result.TDEE)
	assert.Equal(t, 2948, result.Target)
}

func TestCalculator_Compute_UnderweightLoseRejected(t *testing.T) {
	calc := NewCalculator(nil)
	profile := mustProfile(t, entity.ProfileParams{
		WeightKG: 45, HeightCM: 170, Age: 25,
		Sex: entity.SexFemale, ActivityLevel: entity.ActivityLight, Goal: entity.GoalLose,
	})

	result, err := calc.Compute(profile)

	require.NoError(t, err)
	assert.Equal(t, entity.VerdictRejected, result.Verdict)
	assert.Contains(t, result.Warning, "underweight")
	assert.Contains(t, result.Warning, "1-866-662-1235")
}

func TestCalculator_Compute_Bulk(t *testing.T) {
	calc := NewCalculator(nil)
	profile := mustProfile(t, entity.ProfileParams{
		WeightKG: 80, HeightCM: 180, Age: 30,
		Sex: entity.SexMale, ActivityLevel: entity.ActivityModerate, Goal: entity.GoalBulk,
	})

	result, err := calc.Compute(profile)

	require.NoError(t, err)
	assert.Equal(t, 1780, result.BMR)
	assert.Equal(t, 2759, result.TDEE)
	assert.Equal(t, 3259, result.Target)
	assert.Equal(t, entity.VerdictOK, result.Verdict)
}

func TestCalculator_Compute_Properties(t *testing.T) {
	calc := NewCalculator(nil)
	levels := []entity.ActivityLevel{
		entity.ActivitySedentary, entity.ActivityLight, entity.ActivityModerate,
		entity.ActivityActive, entity.ActivityVeryActive,
	}
	weights := []float64{42, 60, 75.5, 95, 140}
	heights := []float64{150, 165, 182}

	for _, goal := range entity.Goals {
		for _, level := range levels {
			for _, weight := range weights {
				for _, height := range heights {
					for _, sex := range []entity.Sex{entity.SexMale, entity.SexFemale} {
						profile := mustProfile(t, entity.ProfileParams{
							WeightKG: weight, HeightCM: height, Age: 35,
							Sex: sex, ActivityLevel: level, Goal: goal,
						})

						first, err := calc.Compute(profile)
						require.NoError(t, err)
						second, err := calc.Compute(profile)
						require.NoError(t, err)

						assert.Equal(t, first, second, "compute must be deterministic")
						assert.GreaterOrEqual(t, first.TDEE-first.RequestedTarget, -500)
						assert.LessOrEqual(t, first.TDEE-first.RequestedTarget, 500, "deficit exceeds ceiling")
						assert.Equal(t, first.TDEE+first.Adjustment, first.RequestedTarget)

						if first.Verdict == entity.VerdictOK {
							assert.Equal(t, first.RequestedTarget, first.Target)
							assert.Empty(t, first.Warning)
						} else {
							assert.NotEmpty(t, first.Warning)
							assert.GreaterOrEqual(t, first.Target, 1200)
						}

						if first.RequestedTarget < 1200 {
							assert.True(t, first.Verdict.IsGated())
						}

						kcal := first.Macros.ProteinG*4 + first.Macros.CarbsG*4 + first.Macros.FatG*9
						assert.InDelta(t, first.Target, kcal, 15, "macros must add up to the target")
					}
				}
			}
		}
	}
}

func TestCalculator_ConfigOverridesAreClamped(t *testing.T) {
	cfg := &config.Config{Safety: &config.SafetyConfig{
		CalorieFloor: 1500,
		GoalAdjustments: map[string]int{
			"lose":      -900,
			"lean_bulk": 1000,
			"unknown":   42,
		},
	}}
	calc := NewCalculator(cfg)

	lose, err := calc.Compute(mustProfile(t, entity.ProfileParams{
		WeightKG: 90, HeightCM: 180, Age: 30,
		Sex: entity.SexMale, ActivityLevel: entity.ActivityModerate, Goal: entity.GoalLose,
	}))
	require.NoError(t, err)
	assert.Equal(t, -500, lose.Adjustment)

	bulk, err := calc.Compute(mustProfile(t, entity.ProfileParams{
		WeightKG: 90, HeightCM: 180, Age: 30,
		Sex: entity.SexMale, ActivityLevel: entity.ActivityModerate, Goal: entity.GoalLeanBulk,
	}))
	require.NoError(t, err)
	assert.Equal(t, 300, bulk.Adjustment)

	floored, err := calc.Compute(mustProfile(t, entity.ProfileParams{
		WeightKG: 60, HeightCM: 160, Age: 60,
		Sex: entity.SexFemale, ActivityLevel: entity.ActivitySedentary, Goal: entity.GoalMaintain,
	}))
	require.NoError(t, err)
	assert.Equal(t, entity.VerdictFloored, floored.Verdict)
	assert.Equal(t, 1500, floored.Target)
}

func TestCalculator_ConfigOverridesKeepGoalDirection(t *testing.T) {
	cfg := &config.Config{Safety: &config.SafetyConfig{
		GoalAdjustments: map[string]int{
			"lose":            200,
			"aggressive_lose": 50,
			"maintain":        -400,
			"recomp":          -450,
			"bulk":            -100,
		},
	}}
	calc := NewCalculator(cfg)

	tests := []struct {
		goal     entity.Goal
		expected int
	}{
		{entity.GoalLose, 0},
		{entity.GoalAggressiveLose, 0},
		{entity.GoalMaintain, 0},
		{entity.GoalRecomp, -200},
		{entity.GoalBulk, 300},
	}

	for _, tt := range tests {
		t.Run(tt.goal.String(), func(t *testing.T) {
			result, err := calc.Compute(mustProfile(t, entity.ProfileParams{
				WeightKG: 90, HeightCM: 180, Age: 30,
				Sex: entity.SexMale, ActivityLevel: entity.ActivityModerate, Goal: tt.goal,
			}))

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Adjustment)
			assert.Equal(t, result.TDEE+tt.expected, result.RequestedTarget)
		})
	}
}

func TestCalculator_RecompRespectsSmallerDeficitCeiling(t *testing.T) {
	calc := NewCalculator(&config.Config{Safety: &config.SafetyConfig{
		MaxDeficit:      100,
		GoalAdjustments: map[string]int{"recomp": -200},
	}})

	result, err := calc.Compute(mustProfile(t, entity.ProfileParams{
		WeightKG: 90, HeightCM: 180, Age: 30,
		Sex: entity.SexMale, ActivityLevel: entity.ActivityModerate, Goal: entity.GoalRecomp,
	}))

	require.NoError(t, err)
	assert.Equal(t, -100, result.Adjustment)
}
