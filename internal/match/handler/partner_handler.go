package handler

import (
	"net/http"

	"github.com/bitfantasy/ecomatch/internal/match/service"
	"github.com/gin-gonic/gin"
)

// PartnerHandler 合作伙伴处理器
type PartnerHandler struct {
	svc *service.PartnerService
}

func NewPartnerHandler(svc *service.PartnerService) *PartnerHandler {
	return &PartnerHandler{svc: svc}
}

// ListPartners 伙伴列表
// GET /api/partners
func (h *PartnerHandler) ListPartners(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetPartner 伙伴详情
// GET /api/partners/:id
func (h *PartnerHandler) GetPartner(c *gin.Context) {
	partner, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		ServiceError(c, err, "Partner not found")
		return
	}
	c.JSON(http.StatusOK, partner)
}

// CreatePartner 创建伙伴
// POST /api/partners
func (h *PartnerHandler) CreatePartner(c *gin.Context) {
	var req service.PartnerDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		BadPayload(c, err)
		return
	}

	partner, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		ServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, partner)
}

// UpdatePartner 全量更新伙伴
// PUT /api/partners/:id
func (h *PartnerHandler) UpdatePartner(c *gin.Context) {
	id := c.Param("id")
	var req service.PartnerDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		BadPayload(c, err)
		return
	}

	partner, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		ServiceError(c, err, "Partner not found")
		return
	}
	c.JSON(http.StatusOK, partner)
}
