package handler

import (
	"net/http"

	"github.com/bitfantasy/ecomatch/internal/match/service"
	"github.com/gin-gonic/gin"
)

// DemandHandler 需求处理器
type DemandHandler struct {
	svc *service.DemandService
}

func NewDemandHandler(svc *service.DemandService) *DemandHandler {
	return &DemandHandler{svc: svc}
}

// ListDemands 需求列表
// GET /api/demands
func (h *DemandHandler) ListDemands(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetDemand 需求详情
// GET /api/demands/:id
func (h *DemandHandler) GetDemand(c *gin.Context) {
	demand, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		ServiceError(c, err, "Demand not found")
		return
	}
	c.JSON(http.StatusOK, demand)
}

// CreateDemand 创建需求
// POST /api/demands
func (h *DemandHandler) CreateDemand(c *gin.Context) {
	var req service.DemandDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		BadPayload(c, err)
		return
	}

	demand, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, demand)
}

// UpdateDemand 全量更新需求
// PUT /api/demands/:id
func (h *DemandHandler) UpdateDemand(c *gin.Context) {
	id := c.Param("id")
	var req service.DemandDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		BadPayload(c, err)
		return
	}

	demand, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		ServiceError(c, err, "Demand not found")
		return
	}
	c.JSON(http.StatusOK, demand)
}

// DeleteDemand 删除需求并级联清理分析与匹配记录，幂等
// DELETE /api/demands/:id
func (h *DemandHandler) DeleteDemand(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		ServiceError(c, err, "")
		return
	}
	OK(c)
}
