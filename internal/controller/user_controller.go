package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hamzahq/turath/internal/middleware"
	"github.com/hamzahq/turath/internal/service"
)

type UserController struct {
	userService  service.UserService
	statsService service.StatsService
}

func NewUserController(userService service.UserService, statsService service.StatsService) *UserController {
	return &UserController{userService: userService, statsService: statsService}
}

// GetCurrentUser godoc
// @Summary Get current user profile
// @Description Creates or refreshes the local user record from the verified identity claims and returns it.
// @Tags User
// @Produce json
// @Success 200 {object} dto.UserDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Conflicting user record, retry"
// @Security BearerAuth
// @Router /users/me [get]
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	user, err := c.userService.SyncUser(
		ctx.GetString(middleware.ContextExternalID),
		ctx.GetString(middleware.ContextEmail),
		ctx.GetString(middleware.ContextUsername),
	)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// GetUserStats godoc
// @Summary Get user quiz statistics
// @Description Aggregate quiz performance: overall totals, accuracy by question type, region and language, recent submissions and identified strengths and weaknesses.
// @Tags User
// @Produce json
// @Success 200 {object} dto.UserStatsDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Identity not synced"
// @Security BearerAuth
// @Router /users/me/stats [get]
func (c *UserController) GetUserStats(ctx *gin.Context) {
	user, err := c.userService.GetByExternalID(ctx.GetString(middleware.ContextExternalID))
	if err != nil {
		writeError(ctx, err)
		return
	}

	stats, err := c.statsService.GetUserStats(user.ID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
