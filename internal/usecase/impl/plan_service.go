package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fitbot/config"
	deliverycontext "fitbot/internal/delivery/context"
	"fitbot/internal/domain/entity"
	domainerrors "fitbot/internal/domain/errors"
	"fitbot/internal/domain/service"
	"fitbot/internal/errors"
	"fitbot/internal/usecase"

	"go.uber.org/fx"
)

// PlanServiceParams holds dependencies for the plan service
type PlanServiceParams struct {
	fx.In

	Logger     *slog.Logger
	Config     *config.Config `optional:"true"`
	Calculator usecase.CalorieCalculator
	Retriever  usecase.ContextRetriever
	Chain      usecase.PlanChain
}

type planService struct {
	logger     *slog.Logger
	calculator usecase.CalorieCalculator
	retriever  usecase.ContextRetriever
	chain      usecase.PlanChain

	// budget bounds a whole plan or chat request, zero means unbounded
	budget time.Duration
}

// NewPlanService creates a new plan service instance
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	svc := &planService{
		logger:     params.Logger,
		calculator: params.Calculator,
		retriever:  params.Retriever,
		chain:      params.Chain,
	}

	if params.Config != nil && params.Config.LLM != nil {
		svc.budget = params.Config.LLM.RequestTimeout
	}

	return svc
}

func (s *planService) withBudget(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.budget <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, s.budget)
}

// GeneratePlan runs calculator, retriever and chain in order
func (s *planService) GeneratePlan(ctx context.Context, input *usecase.GeneratePlanInput) (*usecase.PlanOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	profile, calories, err := s.compute(&input.Profile)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withBudget(ctx)
	defer cancel()

	var retrieved *entity.RetrievedContext
	if calories.Verdict.IsGated() {
		logger.Info("Plan generation gated",
			slog.String("verdict", calories.Verdict.String()),
			slog.String("goal", profile.Goal().String()),
			slog.Int("requested_target", calories.RequestedTarget),
		)
	} else {
		retrieved, err = s.retriever.Retrieve(ctx, profile, calories)
		if err != nil {
			return nil, s.mapRetrievalError(logger, err)
		}
	}

	plan, err := s.chain.Generate(ctx, profile, calories, retrieved)
	if err != nil {
		return nil, s.mapExternalError(logger, "generate plan", err, domainerrors.ErrPlanGenerationFailed)
	}

	return &usecase.PlanOutput{
		Plan: plan.Text,
		Calories: usecase.CalorieSummary{
			BMR:    calories.BMR,
			TDEE:   calories.TDEE,
			Target: calories.Target,
		},
		Warning: plan.Warning,
	}, nil
}

// CalculateCalories validates the profile and returns the calculator output
func (s *planService) CalculateCalories(_ context.Context, input *usecase.ProfileInput) (*entity.CalorieResult, error) {
	_, calories, err := s.compute(input)
	if err != nil {
		return nil, err
	}

	return calories, nil
}

// Chat answers a follow-up question about an existing plan
func (s *planService) Chat(ctx context.Context, input *usecase.ChatInput) (*usecase.ChatOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if err := validateChatInput(input); err != nil {
		return nil, domainerrors.NewValidationError(err)
	}

	ctx, cancel := s.withBudget(ctx)
	defer cancel()

	reply, err := s.chain.Answer(ctx, input)
	if err != nil {
		return nil, s.mapExternalError(logger, "answer question", err, domainerrors.ErrChatFailed)
	}

	return &usecase.ChatOutput{Reply: reply}, nil
}

func (s *planService) compute(input *usecase.ProfileInput) (*entity.UserProfile, *entity.CalorieResult, error) {
	profile, err := entity.NewUserProfile(input.ToParams())
	if err != nil {
		return nil, nil, toAppError(err)
	}

	calories, err := s.calculator.Compute(profile)
	if err != nil {
		return nil, nil, toAppError(err)
	}

	return profile, calories, nil
}

// mapExternalError logs the cause of a generation failure and returns a generic AppError.
func (s *planService) mapExternalError(logger *slog.Logger, op string, err error, fallback *domainerrors.BaseError) error {
	appErr := fallback
	switch {
	case errors.Is(err, service.ErrModelTimeout), errors.Is(err, context.DeadlineExceeded):
		appErr = domainerrors.ErrGenerationTimeout
	case errors.Is(err, service.ErrIndexNotReady):
		appErr = domainerrors.ErrKnowledgeBaseUnavailable
	}

	return logAppError(logger, op, err, appErr)
}

// mapRetrievalError keeps embedding timeouts apart from generation timeouts.
func (s *planService) mapRetrievalError(logger *slog.Logger, err error) error {
	appErr := domainerrors.ErrRetrievalFailed
	if errors.Is(err, service.ErrIndexNotReady) {
		appErr = domainerrors.ErrKnowledgeBaseUnavailable
	}

	return logAppError(logger, "retrieve context", err, appErr)
}

func logAppError(logger *slog.Logger, op string, err error, appErr *domainerrors.BaseError) error {
	logger.Error("Failed to "+op,
		slog.String("error_code", appErr.ErrorCode()),
		slog.Any("error", err),
	)

	return appErr.WrapMessage(op)
}

func toAppError(err error) error {
	if verr, ok := errors.AsType[*entity.ValidationError](err); ok {
		return domainerrors.NewValidationError(verr)
	}

	return errors.Wrap(err, "compute calories")
}

func validateChatInput(input *usecase.ChatInput) *entity.ValidationError {
	verr := &entity.ValidationError{}

	if strings.TrimSpace(input.Message) == "" {
		verr.Add("message", "must not be empty")
	}
	for i, msg := range input.History {
		if !msg.Role.IsValid() {
			verr.Add(fmt.Sprintf("history[%d].role", i), fmt.Sprintf("must be one of [user assistant], got %q", msg.Role))
		}
	}

	if verr.HasErrors() {
		return verr
	}

	return nil
}
