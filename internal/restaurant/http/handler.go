package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/response"
	"github.com/nekogravitycat/dineflex-backend/internal/restaurant"
)

type Handler struct {
	service restaurant.Service
}

func NewHandler(service restaurant.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListRestaurantsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "query", err.Error())
		return
	}

	deal, err := restaurant.ParseDeal(req.Deal)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.service.List(c.Request.Context(), restaurant.Filter{Deal: deal, Query: req.Query})
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]RestaurantResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewRestaurantResponse(r))
	}
	c.JSON(http.StatusOK, response.NewListResponse(out))
}

func (h *Handler) Get(c *gin.Context) {
	d, err := h.service.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewRestaurantDetailResponse(d))
}
