package handler

import (
	"net/http"

	"fitbot/internal/delivery/http/response"
	"fitbot/internal/domain/entity"
	"fitbot/internal/errors"
	"fitbot/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ExerciseHandler serves read-only lookups over the exercise collection
type ExerciseHandler struct {
	exerciseUC usecase.ExerciseUsecase
}

// ExerciseSearchRequest holds the query parameters of an exercise search
type ExerciseSearchRequest struct {
	Query     string `query:"query" json:"query" validate:"required,max=200"`
	Limit     int    `query:"limit" json:"limit" validate:"omitempty,gte=1,lte=20"`
	Level     string `query:"level" json:"level" validate:"omitempty,oneof=beginner intermediate expert"`
	BodyPart  string `query:"body_part" json:"body_part" validate:"max=64"`
	Equipment string `query:"equipment" json:"equipment" validate:"max=64"`
}

// ExerciseSearchFilters echoes the filters applied to a search
type ExerciseSearchFilters struct {
	Level     *string `json:"level"`
	BodyPart  *string `json:"body_part"`
	Equipment *string `json:"equipment"`
}

// ExerciseSearchResponse is the data returned by the exercise search endpoint
type ExerciseSearchResponse struct {
	Query     string                `json:"query"`
	Filters   ExerciseSearchFilters `json:"filters"`
	Count     int                   `json:"count"`
	Exercises []entity.Snippet      `json:"exercises"`
}

// NewExerciseHandler is the constructor for ExerciseHandler
func NewExerciseHandler(exerciseUC usecase.ExerciseUsecase) *ExerciseHandler {
	return &ExerciseHandler{exerciseUC: exerciseUC}
}

// SearchExercises handles semantic exercise search
func (h *ExerciseHandler) SearchExercises(c echo.Context) error {
	var req ExerciseSearchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	exercises, err := h.exerciseUC.SearchExercises(c.Request().Context(), &usecase.ExerciseSearchInput{
		Query:     req.Query,
		Limit:     req.Limit,
		Level:     req.Level,
		BodyPart:  req.BodyPart,
		Equipment: req.Equipment,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if exercises == nil {
		exercises = []entity.Snippet{}
	}

	return response.Success(c, http.StatusOK, ExerciseSearchResponse{
		Query: req.Query,
		Filters: ExerciseSearchFilters{
			Level:     optional(req.Level),
			BodyPart:  optional(req.BodyPart),
			Equipment: optional(req.Equipment),
		},
		Count:     len(exercises),
		Exercises: exercises,
	}, "")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
