// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"fitbot/internal/delivery/http/response"
	"fitbot/internal/domain/entity"
	domainerrors "fitbot/internal/domain/errors"
	"fitbot/internal/errors"
	"fitbot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlanHandlerParams holds dependencies for PlanHandler, injected by Fx.
type PlanHandlerParams struct {
	fx.In

	PlanUC usecase.PlanUsecase
	Logger *slog.Logger
}

// PlanHandler holds dependencies for plan-related handlers
type PlanHandler struct {
	planUC usecase.PlanUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler
func NewPlanHandler(params PlanHandlerParams) *PlanHandler {
	return &PlanHandler{
		planUC: params.PlanUC,
		logger: params.Logger,
	}
}

// ChatTurn is one prior message of a conversation
type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ProfileRequest represents the profile fields shared by the plan and calorie endpoints
type ProfileRequest struct {
	WeightKG            float64    `json:"weight_kg" validate:"required,lte=300"`
	HeightCM            float64    `json:"height_cm" validate:"required,lte=250"`
	Age                 int        `json:"age" validate:"required,lte=120"`
	Sex                 string     `json:"sex" validate:"required"`
	Goal                string     `json:"goal" validate:"required"`
	ActivityLevel       string     `json:"activity_level" validate:"required"`
	DietaryRestrictions []string   `json:"dietary_restrictions" validate:"max=20,dive,max=64"`
	PlanDuration        string     `json:"plan_duration"`
	History             []ChatTurn `json:"history" validate:"max=50,dive"`
}

// ChatRequest represents the request body of a follow-up question
type ChatRequest struct {
	Message     string     `json:"message" validate:"required,max=2000"`
	PlanContext string     `json:"plan_context" validate:"max=20000"`
	History     []ChatTurn `json:"history" validate:"max=50,dive"`
}

// PlanResponse is the body returned by the plan endpoint
type PlanResponse struct {
	Plan     string                 `json:"plan"`
	Calories usecase.CalorieSummary `json:"calories"`
	Warning  *string                `json:"warning"`
}

// ChatResponse is the data returned by the chat endpoint
type ChatResponse struct {
	Reply string `json:"reply"`
}

// GeneratePlan handles plan generation
func (h *PlanHandler) GeneratePlan(c echo.Context) error {
	var req ProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.planUC.GeneratePlan(c.Request().Context(), &usecase.GeneratePlanInput{
		Profile: req.toInput(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := PlanResponse{
		Plan:     output.Plan,
		Calories: output.Calories,
	}
	if output.Warning != "" {
		resp.Warning = &output.Warning
	}

	return c.JSON(http.StatusOK, resp)
}

// CalculateCalories handles the calorie calculation without plan generation
func (h *PlanHandler) CalculateCalories(c echo.Context) error {
	var req ProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := req.toInput()
	result, err := h.planUC.CalculateCalories(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Calories calculated")
}

// Chat handles a follow-up question about an existing plan
func (h *PlanHandler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.planUC.Chat(c.Request().Context(), &usecase.ChatInput{
		Message:     req.Message,
		PlanContext: req.PlanContext,
		History:     toMessages(req.History),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ChatResponse{Reply: output.Reply}, "")
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidRequestBody.WrapMessage(err.Error())
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (r *ProfileRequest) toInput() usecase.ProfileInput {
	return usecase.ProfileInput{
		WeightKG:            r.WeightKG,
		HeightCM:            r.HeightCM,
		Age:                 r.Age,
		Sex:                 r.Sex,
		ActivityLevel:       r.ActivityLevel,
		Goal:                r.Goal,
		DietaryRestrictions: r.DietaryRestrictions,
		PlanDuration:        r.PlanDuration,
		History:             toMessages(r.History),
	}
}

func toMessages(turns []ChatTurn) []entity.ChatMessage {
	if len(turns) == 0 {
		return nil
	}

	messages := make([]entity.ChatMessage, len(turns))
	for i, turn := range turns {
		messages[i] = entity.ChatMessage{
			Role:    entity.ChatRole(turn.Role),
			Content: turn.Content,
		}
	}

	return messages
}
