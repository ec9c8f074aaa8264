package handler

import (
	"net/http"

	"github.com/bitfantasy/ecomatch/internal/match/service"
	"github.com/gin-gonic/gin"
)

// AnalysisHandler 需求分析处理器
type AnalysisHandler struct {
	svc *service.AnalysisService
}

func NewAnalysisHandler(svc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

// ListAnalyses 分析列表
// GET /api/analyses
func (h *AnalysisHandler) ListAnalyses(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListDemandAnalyses 某需求的分析历史，按插入序
// GET /api/demands/:id/analyses
func (h *AnalysisHandler) ListDemandAnalyses(c *gin.Context) {
	items, err := h.svc.ListByDemand(c.Request.Context(), c.Param("id"))
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateAnalysis 创建分析
// POST /api/analyses
func (h *AnalysisHandler) CreateAnalysis(c *gin.Context) {
	var req service.AnalysisDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		BadPayload(c, err)
		return
	}

	analysis, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// UpdateAnalysis 全量更新分析
// PUT /api/analyses/:id
func (h *AnalysisHandler) UpdateAnalysis(c *gin.Context) {
	id := c.Param("id")
	var req service.AnalysisDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		BadPayload(c, err)
		return
	}

	analysis, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		ServiceError(c, err, "Not found")
		return
	}
	c.JSON(http.StatusOK, analysis)
}
