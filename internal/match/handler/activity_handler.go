package handler

import (
	"net/http"

	"github.com/bitfantasy/ecomatch/internal/match/service"
	"github.com/gin-gonic/gin"
)

// ActivityHandler 动态信息流处理器
type ActivityHandler struct {
	svc *service.ActivityService
}

func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ListActivities 最近20条动态，最新在前
// GET /api/activities
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	items, err := h.svc.Recent(c.Request.Context())
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateActivity 追加一条动态
// POST /api/activities
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req service.ActivityDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		BadPayload(c, err)
		return
	}

	if err := h.svc.Append(c.Request.Context(), &req); err != nil {
		ServiceError(c, err, "")
		return
	}
	OK(c)
}
