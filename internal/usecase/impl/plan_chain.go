package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fitbot/config"
	deliverycontext "fitbot/internal/delivery/context"
	"fitbot/internal/domain/entity"
	"fitbot/internal/domain/service"
	"fitbot/internal/errors"
	"fitbot/internal/usecase"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// ErrMalformedOutput is returned when a completion is missing a mandatory section.
var ErrMalformedOutput = errors.New("generated plan is missing mandatory sections")

const (
	defaultMaxTokens         = 1500
	defaultTemperature       = 0.3
	defaultGenerationTimeout = 60 * time.Second
	defaultMaxAttempts       = 2
	defaultRetryBackoff      = 500 * time.Millisecond
)

// PlanChainParams holds dependencies for the plan chain
type PlanChainParams struct {
	fx.In

	Logger *slog.Logger
	Config *config.Config
	Model  service.ChatModel
	Tracer trace.Tracer
}

type planChain struct {
	logger *slog.Logger
	model  service.ChatModel
	tracer trace.Tracer

	maxTokens       int
	temperature     float64
	timeout         time.Duration
	maxAttempts     int
	backoff         time.Duration
	requireSections bool
	floor           int
	ceiling         int
}

// NewPlanChain creates the generation chain
func NewPlanChain(params PlanChainParams) usecase.PlanChain {
	chain := &planChain{
		logger:          params.Logger,
		model:           params.Model,
		tracer:          params.Tracer,
		maxTokens:       defaultMaxTokens,
		temperature:     defaultTemperature,
		timeout:         defaultGenerationTimeout,
		maxAttempts:     defaultMaxAttempts,
		backoff:         defaultRetryBackoff,
		requireSections: true,
		floor:           defaultCalorieFloor,
		ceiling:         defaultMaxDeficit,
	}

	if params.Config == nil {
		return chain
	}

	if llm := params.Config.LLM; llm != nil {
		if llm.MaxTokens > 0 {
			chain.maxTokens = llm.MaxTokens
		}
		if llm.Temperature > 0 {
			chain.temperature = llm.Temperature
		}
		if llm.GenerationTimeout > 0 {
			chain.timeout = llm.GenerationTimeout
		}
	}

	if safety := params.Config.Safety; safety != nil {
		if safety.MaxGenerationAttempts > 0 {
			chain.maxAttempts = safety.MaxGenerationAttempts
		}
		if safety.RetryBackoff > 0 {
			chain.backoff = safety.RetryBackoff
		}
		if safety.CalorieFloor > 0 {
			chain.floor = safety.CalorieFloor
		}
		if safety.MaxDeficit > 0 {
			chain.ceiling = safety.MaxDeficit
		}
		chain.requireSections = safety.RequireSections
	}

	return chain
}

// Generate produces the plan text, or a refusal when the calorie verdict is gated
func (c *planChain) Generate(
	ctx context.Context,
	profile *entity.UserProfile,
	calories *entity.CalorieResult,
	retrieved *entity.RetrievedContext,
) (*entity.GeneratedPlan, error) {
	ctx, span := c.tracer.Start(ctx, "PlanChain.Generate", trace.WithAttributes(
		attribute.String("goal", profile.Goal().String()),
		attribute.String("verdict", calories.Verdict.String()),
	))
	defer span.End()

	if calories.Verdict.IsGated() {
		span.AddEvent("Generation gated")

		return &entity.GeneratedPlan{
			Text:    buildRefusal(calories),
			Gated:   true,
			Warning: calories.Warning,
		}, nil
	}

	if retrieved == nil {
		retrieved = &entity.RetrievedContext{}
	}

	req := &service.CompletionRequest{
		SystemPrompt: buildSystemPolicy(c.ceiling, c.floor),
		UserPrompt:   buildPlanPrompt(profile, calories, retrieved),
		History:      profile.History(),
		MaxTokens:    c.maxTokens,
		Temperature:  c.temperature,
	}
	span.SetAttributes(
		attribute.Int("exercise_snippets", len(retrieved.Exercises)),
		attribute.Int("food_snippets", len(retrieved.Foods)),
		attribute.Int("prompt_size_bytes", len(req.SystemPrompt)+len(req.UserPrompt)),
	)

	text, err := c.completeWithRetry(ctx, span, req, c.checkSections)
	if err != nil {
		span.SetStatus(codes.Error, "plan generation failed")
		span.RecordError(err)

		return nil, err
	}

	return &entity.GeneratedPlan{Text: text, Warning: calories.Warning}, nil
}

// Answer runs a follow-up completion with the plan text as context
func (c *planChain) Answer(ctx context.Context, input *usecase.ChatInput) (string, error) {
	ctx, span := c.tracer.Start(ctx, "PlanChain.Answer")
	defer span.End()

	req := &service.CompletionRequest{
		SystemPrompt: buildChatPolicy(c.ceiling, c.floor),
		UserPrompt:   buildChatPrompt(input),
		History:      input.History,
		MaxTokens:    c.maxTokens,
		Temperature:  c.temperature,
	}

	text, err := c.completeWithRetry(ctx, span, req, nil)
	if err != nil {
		span.SetStatus(codes.Error, "chat completion failed")
		span.RecordError(err)

		return "", err
	}

	return text, nil
}

func (c *planChain) checkSections(text string) error {
	if !c.requireSections {
		return nil
	}

	if missing := missingSections(text); len(missing) > 0 {
		return errors.Wrapf(ErrMalformedOutput, "missing %s", strings.Join(missing, ", "))
	}

	return nil
}

// completeWithRetry retries transient failures and malformed output only.
func (c *planChain) completeWithRetry(
	ctx context.Context,
	span trace.Span,
	req *service.CompletionRequest,
	check func(string) error,
) (string, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) <= c.backoff {
				return "", errors.Wrapf(lastErr, "no time left to retry after %d attempts", attempt-1)
			}

			select {
			case <-ctx.Done():
				return "", errors.Wrap(ctx.Err(), "generation cancelled")
			case <-time.After(c.backoff):
			}
		}

		start := time.Now()
		text, err := c.completeOnce(ctx, req)
		if err == nil && check != nil {
			err = check(text)
		}

		span.AddEvent("Completion attempt", trace.WithAttributes(
			attribute.Int("attempt", attempt),
			attribute.Bool("ok", err == nil),
			attribute.Int("response_length", len(text)),
			attribute.Float64("duration_seconds", time.Since(start).Seconds()),
		))

		if err == nil {
			return text, nil
		}

		lastErr = err
		if !isRetryable(err) {
			return "", err
		}

		logger.Warn("Completion attempt failed",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", c.maxAttempts),
			slog.Any("error", err),
		)
	}

	return "", errors.Wrapf(lastErr, "generation failed after %d attempts", c.maxAttempts)
}

func (c *planChain) completeOnce(ctx context.Context, req *service.CompletionRequest) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.model.Complete(attemptCtx, req)
	if err != nil {
		switch {
		case ctx.Err() != nil:
			return "", errors.Wrap(ctx.Err(), "generation cancelled")
		case errors.Is(err, context.DeadlineExceeded), errors.Is(attemptCtx.Err(), context.DeadlineExceeded):
			return "", errors.Wrapf(service.ErrModelTimeout, "no completion within %s", c.timeout)
		default:
			return "", err
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", errors.WithStack(service.ErrEmptyCompletion)
	}

	return text, nil
}

func isRetryable(err error) bool {
	if errors.Is(err, service.ErrModelTimeout) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	return errors.Is(err, service.ErrModelUnavailable) ||
		errors.Is(err, service.ErrEmptyCompletion) ||
		errors.Is(err, ErrMalformedOutput)
}
