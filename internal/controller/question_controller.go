package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hamzahq/turath/internal/dto"
	"github.com/hamzahq/turath/internal/middleware"
	"github.com/hamzahq/turath/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService   service.QuestionService
	submissionService service.SubmissionService
	userService       service.UserService
}

func NewQuestionController(
	questionService service.QuestionService,
	submissionService service.SubmissionService,
	userService service.UserService,
) *QuestionController {
	return &QuestionController{
		questionService:   questionService,
		submissionService: submissionService,
		userService:       userService,
	}
}

// GetInfo godoc
// @Summary Get informational questions
// @Description Paginated cultural questions filtered by language (defaults to Arabic) and optionally by category, region and search term. Search looks across question text, answer, term and term meaning.
// @Tags Quiz
// @Produce json
// @Param language query string false "Content language" default(Arabic)
// @Param category query string false "Category filter"
// @Param region query string false "Region filter (WEST, EAST, NORTH, SOUTH, CENTRAL, GENERAL)"
// @Param search query string false "Search term"
// @Param page query int false "Page number (zero-indexed)" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.QuestionPageDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /info [get]
func (c *QuestionController) GetInfo(ctx *gin.Context) {
	language := ctx.DefaultQuery("language", "Arabic")
	page, err := parseIntQuery(ctx, "page", 0)
	if err != nil {
		writeBadRequest(ctx, err.Error())
		return
	}
	size, err := parseIntQuery(ctx, "size", 20)
	if err != nil {
		writeBadRequest(ctx, err.Error())
		return
	}
	if page < 0 || size < 1 {
		writeBadRequest(ctx, "page must be >= 0 and size must be >= 1")
		return
	}

	infoPage, err := c.questionService.GetInfo(
		language,
		optionalQuery(ctx, "category"),
		optionalQuery(ctx, "region"),
		optionalQuery(ctx, "search"),
		page, size,
	)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, infoPage)
}

// GetQuizzes godoc
// @Summary Get random quiz questions
// @Description Random sample of quiz questions, optionally filtered by category, region, language and type. Type "all" mixes every question type.
// @Tags Quiz
// @Produce json
// @Param category query string false "Category filter"
// @Param region query string false "Region filter"
// @Param language query string false "Content language filter"
// @Param type query string false "Question type or 'all'"
// @Param size query int false "Number of questions" default(20)
// @Success 200 {array} dto.QuizQuestionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /quiz [get]
func (c *QuestionController) GetQuizzes(ctx *gin.Context) {
	size, err := parseIntQuery(ctx, "size", 20)
	if err != nil {
		writeBadRequest(ctx, err.Error())
		return
	}
	if size < 1 {
		writeBadRequest(ctx, "size must be >= 1")
		return
	}

	quizzes, err := c.questionService.GetQuizzes(
		optionalQuery(ctx, "category"),
		optionalQuery(ctx, "region"),
		optionalQuery(ctx, "language"),
		optionalQuery(ctx, "type"),
		size,
	)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Scores a completed quiz for the authenticated user and returns detailed results with correct answers.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param submission body dto.SubmissionRequestDTO true "Answers in quiz order"
// @Success 201 {object} dto.SubmissionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown question id, or identity not synced"
// @Security BearerAuth
// @Router /quiz-submissions [post]
func (c *QuestionController) SubmitQuiz(ctx *gin.Context) {
	user, err := c.userService.GetByExternalID(ctx.GetString(middleware.ContextExternalID))
	if err != nil {
		writeError(ctx, err)
		return
	}

	var req dto.SubmissionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitQuiz: failed to bind request body")
		writeBadRequest(ctx, "invalid request body", err.Error())
		return
	}

	submission, err := c.submissionService.SubmitQuiz(user.ID, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, submission)
}

// GetSubmissions godoc
// @Summary Get my quiz submissions
// @Description All quiz submissions of the authenticated user, most recent first.
// @Tags Quiz
// @Produce json
// @Success 200 {array} dto.SubmissionResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Identity not synced"
// @Security BearerAuth
// @Router /quiz-submissions [get]
func (c *QuestionController) GetSubmissions(ctx *gin.Context) {
	user, err := c.userService.GetByExternalID(ctx.GetString(middleware.ContextExternalID))
	if err != nil {
		writeError(ctx, err)
		return
	}

	submissions, err := c.submissionService.GetSubmissions(user.ID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

func optionalQuery(ctx *gin.Context, name string) *string {
	if value, ok := ctx.GetQuery(name); ok && value != "" {
		return &value
	}
	return nil
}

func parseIntQuery(ctx *gin.Context, name string, fallback int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &queryError{name: name, value: raw}
	}
	return value, nil
}

type queryError struct {
	name  string
	value string
}

func (e *queryError) Error() string {
	return "invalid value '" + e.value + "' for parameter '" + e.name + "'"
}
