package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService  services.UserService
	statsService services.StatsService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, statsService services.StatsService) *UserHandler {
	return &UserHandler{
		BaseHandler:  base,
		userService:  userService,
		statsService: statsService,
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.AuthorizedUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.AuthorizedUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ListMentors(c *gin.Context) {
	page, pageSize := h.ParsePagination(c)

	mentors, err := h.userService.ListMentors(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mentors)
}

// GetStreak returns the weekly learning streak for a mentee.
func (h *UserHandler) GetStreak(c *gin.Context) {
	streak, err := h.statsService.Streak(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, streak)
}
