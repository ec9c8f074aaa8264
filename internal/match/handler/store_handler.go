package handler

import (
	"net/http"

	"github.com/bitfantasy/ecomatch/internal/match/service"
	"github.com/gin-gonic/gin"
)

// StoreHandler 全量快照处理器
type StoreHandler struct {
	svc *service.StoreService
}

func NewStoreHandler(svc *service.StoreService) *StoreHandler {
	return &StoreHandler{svc: svc}
}

// GetStore 前端启动时一次拉取全部状态
// GET /api/store
func (h *StoreHandler) GetStore(c *gin.Context) {
	data, err := h.svc.SnapshotJSON(c.Request.Context())
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
