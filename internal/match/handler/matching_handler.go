package handler

import (
	"net/http"

	"github.com/bitfantasy/ecomatch/internal/match/service"
	"github.com/gin-gonic/gin"
)

// MatchingHandler 匹配记录处理器
type MatchingHandler struct {
	svc       *service.MatchingService
	exportSvc *service.ExportService
}

func NewMatchingHandler(svc *service.MatchingService, exportSvc *service.ExportService) *MatchingHandler {
	return &MatchingHandler{svc: svc, exportSvc: exportSvc}
}

// ListMatchings 匹配记录列表，支持按group_id过滤
// GET /api/matchings?group_id=xxx
func (h *MatchingHandler) ListMatchings(c *gin.Context) {
	ctx := c.Request.Context()
	if groupID := c.Query("group_id"); groupID != "" {
		items, err := h.svc.ListByGroup(ctx, groupID)
		if err != nil {
			ServiceError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	items, err := h.svc.List(ctx)
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMatching 匹配记录详情
// GET /api/matchings/:id
func (h *MatchingHandler) GetMatching(c *gin.Context) {
	matching, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		ServiceError(c, err, "Matching not found")
		return
	}
	c.JSON(http.StatusOK, matching)
}

// ListDemandMatchings 某需求的全部匹配记录，按批次与rank排序
// GET /api/demands/:id/matchings
func (h *MatchingHandler) ListDemandMatchings(c *gin.Context) {
	items, err := h.svc.ListByDemand(c.Request.Context(), c.Param("id"))
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateMatching 创建匹配记录
// POST /api/matchings
func (h *MatchingHandler) CreateMatching(c *gin.Context) {
	var req service.MatchingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		BadPayload(c, err)
		return
	}

	matching, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, matching)
}

// UpdateMatching 更新可变字段：状态、两个评审四元组、
// 合作方式/理由/风险。其余字段创建后不可变。
// PUT /api/matchings/:id
func (h *MatchingHandler) UpdateMatching(c *gin.Context) {
	id := c.Param("id")
	var req service.UpdateMatchingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadPayload(c, err)
		return
	}

	matching, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		ServiceError(c, err, "Matching not found")
		return
	}
	c.JSON(http.StatusOK, matching)
}

// DeleteMatching 直接删除匹配记录，幂等
// DELETE /api/matchings/:id
func (h *MatchingHandler) DeleteMatching(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		ServiceError(c, err, "")
		return
	}
	OK(c)
}

// ExportMatchings 导出匹配台账xlsx
// GET /api/matchings/export
func (h *MatchingHandler) ExportMatchings(c *gin.Context) {
	f, err := h.exportSvc.ExportMatchings(c.Request.Context())
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+service.ExportFileName()+`"`)
	if err := f.Write(c.Writer); err != nil {
		Detail(c, http.StatusInternalServerError, err.Error())
	}
}
