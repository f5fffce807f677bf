package impl

import (
	"fmt"
	"strings"

	"fitbot/internal/domain/entity"
	"fitbot/internal/usecase"
)

// Mandatory labels of a generated plan, in order.
const (
	SectionCalorieSummary = "## CALORIE SUMMARY"
	SectionWorkoutPlan    = "## WORKOUT PLAN"
	SectionMealPlan       = "## MEAL PLAN"
)

var planSections = []string{SectionCalorieSummary, SectionWorkoutPlan, SectionMealPlan}

const systemPolicyTemplate = `You are FitBot, a certified fitness and nutrition assistant. You provide
evidence-based workout plans, meal suggestions, and calorie guidance
tailored to each user's profile and goals.

# SCOPE LIMITATIONS
- You are NOT a doctor, physiotherapist, or licensed dietitian.
- NEVER diagnose injuries, medical conditions, or eating disorders.
- NEVER prescribe medication or specific supplements for medical purposes.
- If a user describes pain, injury symptoms, or a medical concern, advise
  them to consult a qualified healthcare professional immediately.

# SAFETY RULES
- NEVER suggest a caloric deficit greater than %d kcal/day.
- NEVER suggest a daily intake below %d kcal/day.
- Use the daily calorie target given in the user message exactly; do not recompute it.
- End every plan with a reminder to consult a doctor before starting any new
  fitness or nutrition program.

# OUTPUT FORMAT
Always structure your response with these clearly labeled sections:

%s
- BMR, TDEE, and daily calorie target
- Goal and activity level acknowledged

%s
- Exercises with sets, reps, and rest periods
- Tailored to the user's fitness level and available equipment

%s
- Meals and snacks that hit the calorie and macro targets
- Include approximate calories and protein per meal

# GROUNDING
- Prefer the exercises and foods listed under RETRIEVED CONTEXT and refer to them by name.
- When a context block says no entries were found, do not claim that part of the plan
  is based on the database.

# GENERAL GUIDELINES
- Be encouraging but honest.
- Adapt your language to the user's fitness level.
- Keep plans realistic and sustainable.
- Remind the user that consistency matters more than perfection.`

const chatPolicyTemplate = `You are FitBot, a certified fitness and nutrition assistant answering a follow-up
question about a plan you already produced. Keep answers short and practical.
You are NOT a doctor: never diagnose injuries or medical conditions, and refer the user
to a healthcare professional for pain, injury, or medical concerns.
Never suggest a daily intake below %d kcal/day or a deficit greater than %d kcal/day.`

// refusalTemplate is returned in place of a plan when the safety gate blocks generation.
const refusalTemplate = `Your calculated calorie target is below the recommended safe minimum, or your goal is not
safe for your current body mass index. For your safety, I cannot provide a plan at this level.

%s

Please consult a healthcare professional or registered dietitian who can create a supervised
plan for you. If you are struggling with body image or disordered eating, please contact the
National Alliance for Eating Disorders helpline at 1-866-662-1235.`

func buildSystemPolicy(ceiling, floor int) string {
	return fmt.Sprintf(systemPolicyTemplate, ceiling, floor, SectionCalorieSummary, SectionWorkoutPlan, SectionMealPlan)
}

func buildChatPolicy(ceiling, floor int) string {
	return fmt.Sprintf(chatPolicyTemplate, floor, ceiling)
}

func buildRefusal(calories *entity.CalorieResult) string {
	return fmt.Sprintf(refusalTemplate, calories.Warning)
}

func buildPlanPrompt(
	profile *entity.UserProfile,
	calories *entity.CalorieResult,
	retrieved *entity.RetrievedContext,
) string {
	var b strings.Builder

	b.WriteString("USER PROFILE\n")
	fmt.Fprintf(&b, "- Weight: %g kg\n", profile.WeightKG())
	fmt.Fprintf(&b, "- Height: %g cm\n", profile.HeightCM())
	fmt.Fprintf(&b, "- Age: %d\n", profile.Age())
	fmt.Fprintf(&b, "- Sex: %s\n", profile.Sex())
	fmt.Fprintf(&b, "- Activity Level: %s\n", profile.ActivityLevel())
	fmt.Fprintf(&b, "- Goal: %s\n", profile.Goal())
	fmt.Fprintf(&b, "- Dietary Restrictions: %s\n", profile.RestrictionsText())
	fmt.Fprintf(&b, "- Plan Duration: %s\n\n", profile.PlanDuration())

	b.WriteString("COMPUTED NUMBERS\n")
	fmt.Fprintf(&b, "- BMR: %d kcal/day\n", calories.BMR)
	fmt.Fprintf(&b, "- TDEE: %d kcal/day\n", calories.TDEE)
	fmt.Fprintf(&b, "- Daily Calorie Target: %d kcal/day\n", calories.Target)
	fmt.Fprintf(&b, "- BMI: %.2f\n", calories.BMI)
	fmt.Fprintf(&b, "- Macros: %dg protein, %dg carbs, %dg fat\n\n",
		calories.Macros.ProteinG, calories.Macros.CarbsG, calories.Macros.FatG)

	b.WriteString("RETRIEVED CONTEXT\n")
	writeSnippets(&b, "EXERCISE", "exercises", retrieved.Exercises)
	b.WriteString("\n")
	writeSnippets(&b, "FOOD", "foods", retrieved.Foods)

	fmt.Fprintf(&b, "\nGenerate a personalized %s fitness and nutrition plan using the sections %s, %s and %s.",
		profile.PlanDuration(), SectionCalorieSummary, SectionWorkoutPlan, SectionMealPlan)

	return b.String()
}

func writeSnippets(b *strings.Builder, tag, noun string, snippets []entity.Snippet) {
	if len(snippets) == 0 {
		fmt.Fprintf(b, "No relevant %s were found in the database. Use general knowledge for this part "+
			"and do not claim it is based on the database.\n", noun)

		return
	}

	for i, s := range snippets {
		fmt.Fprintf(b, "[%s %d] (score %.2f) %s\n", tag, i+1, s.Score, s.Text)
	}
}

func buildChatPrompt(input *usecase.ChatInput) string {
	var b strings.Builder

	if strings.TrimSpace(input.PlanContext) != "" {
		b.WriteString("CURRENT PLAN\n")
		b.WriteString(input.PlanContext)
		b.WriteString("\n\n")
	}
	b.WriteString("QUESTION\n")
	b.WriteString(input.Message)

	return b.String()
}

// missingSections returns the mandatory labels absent from text.
func missingSections(text string) []string {
	var missing []string
	for _, section := range planSections {
		if !strings.Contains(text, section) {
			missing = append(missing, section)
		}
	}

	return missing
}
