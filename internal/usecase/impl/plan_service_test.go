package impl

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"fitbot/internal/domain/entity"
	domainerrors "fitbot/internal/domain/errors"
	"fitbot/internal/domain/service"
	"fitbot/internal/errors"
	mockService "fitbot/internal/mocks/service"
	mockUsecase "fitbot/internal/mocks/usecase"
	"fitbot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func createTestPlanService(t *testing.T) (usecase.PlanUsecase, *mockUsecase.MockContextRetriever, *mockUsecase.MockPlanChain) {
	retriever := mockUsecase.NewMockContextRetriever(t)
	chain := mockUsecase.NewMockPlanChain(t)

	svc := NewPlanService(PlanServiceParams{
		Logger:     testLogger(),
		Calculator: NewCalculator(nil),
		Retriever:  retriever,
		Chain:      chain,
	})

	return svc, retriever, chain
}

func standardInput() *usecase.GeneratePlanInput {
	return &usecase.GeneratePlanInput{Profile: usecase.ProfileInput{
		WeightKG: 70, HeightCM: 170, Age: 25,
		Sex: "female", ActivityLevel: "moderate", Goal: "lose",
		DietaryRestrictions: []string{"vegetarian"}, PlanDuration: "weekly",
	}}
}

func requireAppError(t *testing.T, err error, expected *domainerrors.BaseError) domainerrors.AppError {
	t.Helper()

	require.Error(t, err)
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, expected.ErrorCode(), appErr.ErrorCode())

	return appErr
}

func TestPlanService_GeneratePlan_Success(t *testing.T) {
	svc, retriever, chain := createTestPlanService(t)
	ctx := context.Background()
	retrieved := sampleRetrieved()

	retriever.EXPECT().Retrieve(ctx, mock.Anything, mock.Anything).Return(retrieved, nil).Once()
	chain.EXPECT().Generate(ctx, mock.Anything, mock.MatchedBy(func(c *entity.CalorieResult) bool {
		return c.Target == 1789 && c.Verdict == entity.VerdictOK
	}), retrieved).Return(&entity.GeneratedPlan{Text: wellFormedPlan}, nil).Once()

	out, err := svc.GeneratePlan(ctx, standardInput())

	require.NoError(t, err)
	assert.Equal(t, wellFormedPlan, out.Plan)
	assert.Equal(t, usecase.CalorieSummary{BMR: 1477, TDEE: 2289, Target: 1789}, out.Calories)
	assert.Empty(t, out.Warning)
}

func TestPlanService_GeneratePlan_GatedSkipsRetrieval(t *testing.T) {
	svc, retriever, chain := createTestPlanService(t)
	ctx := context.Background()
	input := &usecase.GeneratePlanInput{Profile: usecase.ProfileInput{
		WeightKG: 80, HeightCM: 150, Age: 80,
		Sex: "female", ActivityLevel: "sedentary", Goal: "lose",
	}}

	chain.EXPECT().Generate(ctx, mock.Anything, mock.Anything, (*entity.RetrievedContext)(nil)).
		Return(&entity.GeneratedPlan{Text: "refusal", Gated: true, Warning: "below floor"}, nil).Once()

	out, err := svc.GeneratePlan(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "refusal", out.Plan)
	assert.Equal(t, "below floor", out.Warning)
	assert.Equal(t, 1200, out.Calories.Target)
	retriever.AssertNotCalled(t, "Retrieve", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlanService_GeneratePlan_ValidationError(t *testing.T) {
	svc, _, _ := createTestPlanService(t)
	input := standardInput()
	input.Profile.WeightKG = -3
	input.Profile.Goal = "shred"

	out, err := svc.GeneratePlan(context.Background(), input)

	assert.Nil(t, out)
	appErr := requireAppError(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	fields, ok := appErr.Details().([]entity.FieldError)
	require.True(t, ok)
	assert.Len(t, fields, 2)
}

func TestPlanService_GeneratePlan_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		chainErr error
		expected *domainerrors.BaseError
	}{
		{"timeout", errors.Wrap(service.ErrModelTimeout, "60s"), domainerrors.ErrGenerationTimeout},
		{"unavailable", errors.Wrap(service.ErrModelUnavailable, "boom"), domainerrors.ErrPlanGenerationFailed},
		{"malformed", errors.Wrap(ErrMalformedOutput, "missing"), domainerrors.ErrPlanGenerationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, retriever, chain := createTestPlanService(t)
			ctx := context.Background()

			retriever.EXPECT().Retrieve(ctx, mock.Anything, mock.Anything).Return(sampleRetrieved(), nil).Once()
			chain.EXPECT().Generate(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.chainErr).Once()

			_, err := svc.GeneratePlan(ctx, standardInput())

			appErr := requireAppError(t, err, tt.expected)
			assert.NotContains(t, appErr.Message(), "boom")
		})
	}
}

func TestPlanService_GeneratePlan_IndexNotReady(t *testing.T) {
	svc, retriever, _ := createTestPlanService(t)
	ctx := context.Background()

	retriever.EXPECT().Retrieve(ctx, mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(service.ErrIndexNotReady, "search exercises")).Once()

	_, err := svc.GeneratePlan(ctx, standardInput())

	appErr := requireAppError(t, err, domainerrors.ErrKnowledgeBaseUnavailable)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
}

func TestPlanService_CalculateCalories(t *testing.T) {
	svc, _, _ := createTestPlanService(t)
	input := standardInput().Profile

	result, err := svc.CalculateCalories(context.Background(), &input)

	require.NoError(t, err)
	assert.Equal(t, 1789, result.Target)
	assert.Equal(t, entity.VerdictOK, result.Verdict)
}

func TestPlanService_Chat(t *testing.T) {
	svc, _, chain := createTestPlanService(t)
	ctx := context.Background()
	input := &usecase.ChatInput{Message: "More protein?", PlanContext: wellFormedPlan}

	chain.EXPECT().Answer(ctx, input).Return("Add Greek yogurt.", nil).Once()

	out, err := svc.Chat(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Add Greek yogurt.", out.Reply)
}

func TestPlanService_Chat_Validation(t *testing.T) {
	svc, _, _ := createTestPlanService(t)

	_, err := svc.Chat(context.Background(), &usecase.ChatInput{
		Message: "  ",
		History: []entity.ChatMessage{{Role: "system", Content: "x"}},
	})

	appErr := requireAppError(t, err, domainerrors.ErrValidationFailed)
	fields, ok := appErr.Details().([]entity.FieldError)
	require.True(t, ok)
	assert.Equal(t, "message", fields[0].Field)
	assert.Equal(t, "history[0].role", fields[1].Field)
}

func TestPlanService_Chat_Timeout(t *testing.T) {
	svc, _, chain := createTestPlanService(t)
	ctx := context.Background()
	input := &usecase.ChatInput{Message: "More protein?"}

	chain.EXPECT().Answer(ctx, input).Return("", errors.WithStack(service.ErrModelTimeout)).Once()

	_, err := svc.Chat(ctx, input)

	requireAppError(t, err, domainerrors.ErrGenerationTimeout)
}

func TestPlanService_GeneratePlan_AggressiveLoseFlooredHasNoPlanSections(t *testing.T) {
	retriever := mockUsecase.NewMockContextRetriever(t)
	model := mockService.NewMockChatModel(t)
	svc := NewPlanService(PlanServiceParams{
		Logger:     testLogger(),
		Calculator: NewCalculator(nil),
		Retriever:  retriever,
		Chain:      createTestPlanChain(t, model, testChainConfig()),
	})

	out, err := svc.GeneratePlan(context.Background(), &usecase.GeneratePlanInput{Profile: usecase.ProfileInput{
		WeightKG: 60, HeightCM: 150, Age: 90,
		Sex: "female", ActivityLevel: "sedentary", Goal: "aggressive_lose",
	}})

	require.NoError(t, err)
	assert.Equal(t, 1200, out.Calories.Target)
	assert.Contains(t, out.Warning, "612 kcal/day")
	assert.NotContains(t, out.Plan, SectionWorkoutPlan)
	assert.NotContains(t, out.Plan, SectionMealPlan)
	retriever.AssertNotCalled(t, "Retrieve", mock.Anything, mock.Anything, mock.Anything)
	model.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestPlanService_GeneratePlan_RetrievalTimeoutIsNotGenerationTimeout(t *testing.T) {
	svc, retriever, _ := createTestPlanService(t)
	ctx := context.Background()

	retriever.EXPECT().Retrieve(ctx, mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(service.ErrModelTimeout, "search exercises: embed query")).Once()

	_, err := svc.GeneratePlan(ctx, standardInput())

	appErr := requireAppError(t, err, domainerrors.ErrRetrievalFailed)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.False(t, errors.Is(err, domainerrors.ErrGenerationTimeout))
}

// slowMalformedModel answers the first call late with a plan missing its
// sections, then blocks every later call until its context ends.
type slowMalformedModel struct {
	delay time.Duration
	calls atomic.Int32
}

func (m *slowMalformedModel) Complete(ctx context.Context, _ *service.CompletionRequest) (string, error) {
	if m.calls.Add(1) == 1 {
		time.Sleep(m.delay)

		return "Here is a plan without any headings.", nil
	}
	<-ctx.Done()

	return "", ctx.Err()
}

func TestPlanService_GeneratePlan_RequestBudgetCutsRetry(t *testing.T) {
	retriever := mockUsecase.NewMockContextRetriever(t)
	model := &slowMalformedModel{delay: 80 * time.Millisecond}

	cfg := testChainConfig()
	cfg.LLM.GenerationTimeout = 200 * time.Millisecond
	cfg.LLM.RequestTimeout = 150 * time.Millisecond

	svc := NewPlanService(PlanServiceParams{
		Logger:     testLogger(),
		Config:     cfg,
		Calculator: NewCalculator(nil),
		Retriever:  retriever,
		Chain: NewPlanChain(PlanChainParams{
			Logger: testLogger(),
			Config: cfg,
			Model:  model,
			Tracer: noop.NewTracerProvider().Tracer("test"),
		}),
	})

	retriever.EXPECT().Retrieve(mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()

		return ok
	}), mock.Anything, mock.Anything).Return(sampleRetrieved(), nil).Once()

	start := time.Now()
	out, err := svc.GeneratePlan(context.Background(), standardInput())
	elapsed := time.Since(start)

	assert.Nil(t, out)
	appErr := requireAppError(t, err, domainerrors.ErrGenerationTimeout)
	assert.Equal(t, http.StatusGatewayTimeout, appErr.HTTPCode())
	assert.Equal(t, int32(2), model.calls.Load())
	assert.Less(t, elapsed, time.Second, "two full attempts would take 280ms, the budget stops at 150ms")
}
