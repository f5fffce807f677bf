package entity

// Verdict is the outcome of the calorie safety gate.
type Verdict string

const (
	// VerdictOK means the target is safe and a plan may be generated.
	VerdictOK Verdict = "OK"
	// VerdictFloored means the goal-derived target fell below the safety floor.
	VerdictFloored Verdict = "FLOORED"
	// VerdictRejected means the goal is unsafe for the user's BMI regardless of the floor.
	VerdictRejected Verdict = "REJECTED"
)

// String returns the string representation of the Verdict.
func (v Verdict) String() string {
	return string(v)
}

// IsGated reports whether plan generation must be replaced by a refusal.
func (v Verdict) IsGated() bool {
	return v == VerdictFloored || v == VerdictRejected
}

// Macros is a daily macronutrient split in grams.
type Macros struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// CalorieResult is the output of the metabolic calculator. It is never mutated after creation.
//
// Target is the actionable daily intake and never falls below the safety floor;
// RequestedTarget is the raw TDEE + Adjustment before the gate was applied.
type CalorieResult struct {
	BMR             int     `json:"bmr"`
	TDEE            int     `json:"tdee"`
	Target          int     `json:"target"`
	RequestedTarget int     `json:"requested_target"`
	Adjustment      int     `json:"adjustment"`
	BMI             float64 `json:"bmi"`
	Verdict         Verdict `json:"verdict"`
	Warning         string  `json:"warning,omitempty"`
	Macros          Macros  `json:"macros"`
}
