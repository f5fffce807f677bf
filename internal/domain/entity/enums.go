// Package entity contains the core business objects of the project.
package entity

// Sex represents the biological sex used by the metabolic formulas.
type Sex string

const (
	// SexMale selects the male Mifflin-St Jeor constant.
	SexMale Sex = "male"
	// SexFemale selects the female Mifflin-St Jeor constant.
	SexFemale Sex = "female"
)

// String returns the string representation of the Sex.
func (s Sex) String() string {
	return string(s)
}

// IsValid checks if the Sex is a valid value.
func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	default:
		return false
	}
}

// ActivityLevel represents how active a user is during a typical week.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// String returns the string representation of the ActivityLevel.
func (a ActivityLevel) String() string {
	return string(a)
}

// IsValid checks if the ActivityLevel is a valid value.
func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	default:
		return false
	}
}

// Goal represents the body composition goal a plan is built for.
type Goal string

const (
	GoalLose           Goal = "lose"
	GoalAggressiveLose Goal = "aggressive_lose"
	GoalMaintain       Goal = "maintain"
	GoalRecomp         Goal = "recomp"
	GoalLeanBulk       Goal = "lean_bulk"
	GoalBulk           Goal = "bulk"
)

// Goals lists every supported goal in display order.
var Goals = []Goal{GoalLose, GoalAggressiveLose, GoalMaintain, GoalRecomp, GoalLeanBulk, GoalBulk}

// String returns the string representation of the Goal.
func (g Goal) String() string {
	return string(g)
}

// IsValid checks if the Goal is a valid value.
func (g Goal) IsValid() bool {
	switch g {
	case GoalLose, GoalAggressiveLose, GoalMaintain, GoalRecomp, GoalLeanBulk, GoalBulk:
		return true
	default:
		return false
	}
}

// PlanDuration represents the span a generated plan covers.
type PlanDuration string

const (
	PlanDaily  PlanDuration = "daily"
	PlanWeekly PlanDuration = "weekly"
)

// String returns the string representation of the PlanDuration.
func (p PlanDuration) String() string {
	return string(p)
}

// IsValid checks if the PlanDuration is a valid value.
func (p PlanDuration) IsValid() bool {
	switch p {
	case PlanDaily, PlanWeekly:
		return true
	default:
		return false
	}
}

// ChatRole tags a prior conversation turn.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// IsValid checks if the ChatRole is a valid value.
func (r ChatRole) IsValid() bool {
	return r == ChatRoleUser || r == ChatRoleAssistant
}

// ChatMessage is one role-tagged turn of a prior conversation.
type ChatMessage struct {
	Role    ChatRole
	Content string
}
