package api

import (
	"errors"
	"net/http"

	reqdto "hotelhub/internal/handler/dto/request"
	resdto "hotelhub/internal/handler/dto/response"
	"hotelhub/internal/handler/httperr"
	"hotelhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelHandler struct {
	q queries.HotelQueries
}

func NewHotelHandler(q queries.HotelQueries) *HotelHandler {
	return &HotelHandler{q: q}
}

// @Summary Search hotels
// @Description Search the catalog with optional text query, price and rating filters
// @Tags hotels
// @Produce json
// @Param q query string false "Text search on name and location"
// @Param min_price query number false "Minimum nightly rate"
// @Param max_price query number false "Maximum nightly rate"
// @Param min_rating query number false "Minimum display rating (0-5)"
// @Param sort query string false "Sort key: rating, price_asc, price_desc, name"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.HotelListResponse
// @Failure 400 {object} map[string]string
// @Router /hotels [get]
func (h *HotelHandler) Search(c *gin.Context) {
	var q reqdto.SearchHotelsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sort key", nil)
		return
	}
	items, err := h.q.Search(c.Request.Context(), filter, q.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Search failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelList(items))
}

// @Summary Hotel detail
// @Description Get a hotel with amenities, live rating and current weather
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [get]
func (h *HotelHandler) GetDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrHotelNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load hotel", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelDetail(view))
}
