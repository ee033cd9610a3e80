package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "hotelhub/internal/handler/dto/request"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/handler/httperr"
	"hotelhub/internal/handler/middleware"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Post a review for a hotel; rating stats update in the same transaction
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateReview(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		if errors.Is(err, commands.ErrHotelNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create review failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.ReviewID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

// @Summary Update review
// @Description Update own review; unset fields keep their current value
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	existing, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
		return
	}
	if err = h.cmds.UpdateReview(c.Request.Context(), id, req.ToCommand(existing), actorID); err != nil {
		switch {
		case errors.Is(err, commands.ErrReviewNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
		case errors.Is(err, commands.ErrReviewNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Update failed", nil)
		}
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Delete review
// @Description Delete own review (admins can delete any)
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)
	if err := h.cmds.DeleteReview(c.Request.Context(), id, actorID, string(role)); err != nil {
		switch {
		case errors.Is(err, commands.ErrReviewNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
		case errors.Is(err, commands.ErrReviewNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List hotel reviews
// @Description List reviews for a hotel with optional rating filters and keyset pagination
// @Tags reviews
// @Produce json
// @Param id path string true "Hotel ID"
// @Param min_rating query int false "Minimum rating (1-5)"
// @Param max_rating query int false "Maximum rating (1-5)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /hotels/{id}/reviews [get]
func (h *ReviewHandler) ListByHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel id", nil)
		return
	}
	var minPtr, maxPtr *int
	if v := c.Query("min_rating"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			minPtr = &iv
		}
	}
	if v := c.Query("max_rating"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			maxPtr = &iv
		}
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.ListByHotel(c.Request.Context(), hotelID, queries.ReviewFilters{MinRating: minPtr, MaxRating: maxPtr}, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(items, next))
}

// @Summary Hotel rating summary
// @Description Get the hotel's rating average and distribution; falls back to the catalog rating when no reviews exist
// @Tags reviews
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.RatingSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id}/rating-summary [get]
func (h *ReviewHandler) RatingSummary(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel id", nil)
		return
	}
	summary, err := h.q.GetHotelRatingSummary(c.Request.Context(), hotelID)
	if err != nil {
		if errors.Is(err, queries.ErrHotelNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get summary", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingSummary(summary))
}
