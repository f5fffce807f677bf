package impl

import (
	"fmt"
	"math"

	"fitbot/config"
	"fitbot/internal/domain/entity"
	"fitbot/internal/usecase"
)

const (
	defaultCalorieFloor = 1200
	defaultMaxDeficit   = 500

	bmiUnderweight  = 18.5
	bmiNormalUpper  = 24.9
	kcalPerGramProt = 4
	kcalPerGramCarb = 4
	kcalPerGramFat  = 9
)

var activityMultipliers = map[entity.ActivityLevel]float64{
	entity.ActivitySedentary:  1.2,
	entity.ActivityLight:      1.375,
	entity.ActivityModerate:   1.55,
	entity.ActivityActive:     1.725,
	entity.ActivityVeryActive: 1.9,
}

var defaultGoalAdjustments = map[entity.Goal]int{
	entity.GoalLose:           -500,
	entity.GoalAggressiveLose: -750,
	entity.GoalMaintain:       0,
	entity.GoalRecomp:         0,
	entity.GoalLeanBulk:       300,
	entity.GoalBulk:           500,
}

// adjustmentRanges bounds configured adjustments of goals without a deficit
// ceiling. Losing goals are bounded by the deficit ceiling and zero instead.
var adjustmentRanges = map[entity.Goal][2]int{
	entity.GoalMaintain: {0, 0},
	entity.GoalRecomp:   {-200, 0},
	entity.GoalLeanBulk: {150, 300},
	entity.GoalBulk:     {300, 500},
}

// macroSplit is the protein/carbs/fat share of the target, in percent.
type macroSplit struct {
	protein, carbs, fat int
}

var macroSplits = map[entity.Goal]macroSplit{
	entity.GoalLose:           {35, 40, 25},
	entity.GoalAggressiveLose: {35, 40, 25},
	entity.GoalMaintain:       {30, 40, 30},
	entity.GoalRecomp:         {30, 40, 30},
	entity.GoalLeanBulk:       {30, 45, 25},
	entity.GoalBulk:           {30, 45, 25},
}

type calculator struct {
	floor       int
	maxDeficit  int
	adjustments map[entity.Goal]int
}

// NewCalculator creates the metabolic and safety calculator
func NewCalculator(cfg *config.Config) usecase.CalorieCalculator {
	calc := &calculator{
		floor:       defaultCalorieFloor,
		maxDeficit:  defaultMaxDeficit,
		adjustments: make(map[entity.Goal]int, len(defaultGoalAdjustments)),
	}
	for goal, adj := range defaultGoalAdjustments {
		calc.adjustments[goal] = adj
	}

	if cfg == nil || cfg.Safety == nil {
		return calc
	}

	if cfg.Safety.CalorieFloor > 0 {
		calc.floor = cfg.Safety.CalorieFloor
	}
	if cfg.Safety.MaxDeficit > 0 {
		calc.maxDeficit = cfg.Safety.MaxDeficit
	}
	for name, adj := range cfg.Safety.GoalAdjustments {
		if goal := entity.Goal(name); goal.IsValid() {
			calc.adjustments[goal] = adj
		}
	}

	return calc
}

// Compute returns the energy needs and safety verdict of the profile
func (c *calculator) Compute(profile *entity.UserProfile) (*entity.CalorieResult, error) {
	multiplier, ok := activityMultipliers[profile.ActivityLevel()]
	if !ok {
		verr := &entity.ValidationError{}
		verr.Add("activity_level", fmt.Sprintf("unsupported value %q", profile.ActivityLevel()))

		return nil, verr
	}

	rawBMR := mifflinStJeor(profile.WeightKG(), profile.HeightCM(), profile.Age(), profile.Sex())
	bmr := int(math.Round(rawBMR))
	tdee := int(math.Round(rawBMR * multiplier))
	adjustment := c.adjustmentFor(profile.Goal())
	requested := tdee + adjustment
	bmi := bodyMassIndex(profile.WeightKG(), profile.HeightCM())

	verdict, warning := c.gate(profile.Goal(), bmi, requested)

	target := requested
	if verdict.IsGated() && target < c.floor {
		target = c.floor
	}

	return &entity.CalorieResult{
		BMR:             bmr,
		TDEE:            tdee,
		Target:          target,
		RequestedTarget: requested,
		Adjustment:      adjustment,
		BMI:             bmi,
		Verdict:         verdict,
		Warning:         warning,
		Macros:          macrosFor(profile.Goal(), target),
	}, nil
}

func (c *calculator) adjustmentFor(goal entity.Goal) int {
	adj := c.adjustments[goal]

	if bounds, ok := adjustmentRanges[goal]; ok {
		adj = max(bounds[0], min(adj, bounds[1]))
	} else {
		adj = min(adj, 0)
	}

	return max(adj, -c.maxDeficit)
}

// gate applies the safety rules in precedence order.
func (c *calculator) gate(goal entity.Goal, bmi float64, requested int) (entity.Verdict, string) {
	switch {
	case goal == entity.GoalAggressiveLose && bmi <= bmiNormalUpper:
		return entity.VerdictRejected, fmt.Sprintf(
			"Your BMI is %.2f, which is within or below the normal range. "+
				"An aggressive caloric deficit is not recommended and may lead to disordered eating patterns "+
				"or nutrient deficiencies. Please consider the standard 'lose' goal instead, and consult "+
				"a healthcare professional if you are struggling with body image.", bmi)
	case goal == entity.GoalLose && bmi < bmiUnderweight:
		return entity.VerdictRejected, fmt.Sprintf(
			"Your BMI is %.2f, which is classified as underweight. A caloric deficit is not recommended. "+
				"If you are experiencing pressure to lose weight or concerns about your body, please reach out "+
				"to a healthcare professional or contact the National Alliance for Eating Disorders helpline "+
				"at 1-866-662-1235.", bmi)
	case requested < c.floor:
		return entity.VerdictFloored, fmt.Sprintf(
			"Calculated target of %d kcal/day is below the safety floor of %d kcal/day. "+
				"This may be unsafe and could contribute to disordered eating. "+
				"Please consult a healthcare professional before proceeding.", requested, c.floor)
	default:
		return entity.VerdictOK, ""
	}
}

func mifflinStJeor(weightKG, heightCM float64, age int, sex entity.Sex) float64 {
	base := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if sex == entity.SexMale {
		return base + 5
	}

	return base - 161
}

func bodyMassIndex(weightKG, heightCM float64) float64 {
	heightM := heightCM / 100

	return math.Round(weightKG/(heightM*heightM)*100) / 100
}

func macrosFor(goal entity.Goal, target int) entity.Macros {
	split := macroSplits[goal]
	kcal := float64(target)

	return entity.Macros{
		ProteinG: int(math.Round(kcal * float64(split.protein) / 100 / kcalPerGramProt)),
		CarbsG:   int(math.Round(kcal * float64(split.carbs) / 100 / kcalPerGramCarb)),
		FatG:     int(math.Round(kcal * float64(split.fat) / 100 / kcalPerGramFat)),
	}
}
