package api

import (
	"errors"
	"net/http"

	reqdto "hotelhub/internal/handler/dto/request"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/handler/httperr"
	"hotelhub/internal/handler/middleware"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	cmds commands.ProfileCommands
	q    queries.UserQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.UserQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, q: q}
}

// @Summary Update profile
// @Description Update the authenticated user's display name
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Update profile request"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateProfile(c.Request.Context(), userID, req.ToCommand()); err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid display name", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update failed", nil)
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuthorizedUserView(view))
}

// @Summary Complete onboarding
// @Description Mark the intro flow as seen; idempotent and one-way
// @Tags profile
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /profile/onboarding [post]
func (h *ProfileHandler) CompleteOnboarding(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := h.cmds.CompleteOnboarding(c.Request.Context(), userID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to complete onboarding", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
