package handler

import (
	"errors"
	"net/http"

	"github.com/bitfantasy/ecomatch/internal/match/repository"
	"github.com/bitfantasy/ecomatch/internal/match/service"
	"github.com/gin-gonic/gin"
)

// Handlers 处理器集合
type Handlers struct {
	Demand   *DemandHandler
	Analysis *AnalysisHandler
	Partner  *PartnerHandler
	Matching *MatchingHandler
	Activity *ActivityHandler
	Store    *StoreHandler
	SSE      *SSEHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Demand:   NewDemandHandler(services.Demand),
		Analysis: NewAnalysisHandler(services.Analysis),
		Partner:  NewPartnerHandler(services.Partner),
		Matching: NewMatchingHandler(services.Matching, services.Export),
		Activity: NewActivityHandler(services.Activity),
		Store:    NewStoreHandler(services.Store),
		SSE:      NewSSEHandler(),
	}
}

// === 响应辅助函数 ===
// 对外载荷形状沿用既有前端约定：列表为裸数组，错误为
// {"detail": ...}，删除/追加为{"ok": true}。

func Detail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

func OK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func BadPayload(c *gin.Context, err error) {
	Detail(c, http.StatusUnprocessableEntity, "invalid payload: "+err.Error())
}

// ServiceError 按错误分类映射HTTP状态
func ServiceError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		Detail(c, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, repository.ErrDuplicateKey):
		Detail(c, http.StatusConflict, "id already exists")
	case errors.Is(err, service.ErrStagePartial):
		Detail(c, http.StatusUnprocessableEntity, "review stage must be set or cleared as a whole")
	default:
		Detail(c, http.StatusInternalServerError, err.Error())
	}
}
