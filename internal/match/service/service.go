package service

import (
	"errors"

	"github.com/bitfantasy/ecomatch/internal/match/repository"
	"github.com/redis/go-redis/v9"
)

// ErrStagePartial 评审四元组非法的半填充更新
var ErrStagePartial = errors.New("review stage must be set or cleared as a whole")

// Services 服务集合
type Services struct {
	Demand   *DemandService
	Analysis *AnalysisService
	Partner  *PartnerService
	Matching *MatchingService
	Activity *ActivityService
	Store    *StoreService
	Export   *ExportService
}

// NewServices 创建服务集合。rdb可为nil（不启用快照缓存）。
func NewServices(repos *repository.Repositories, rdb *redis.Client) *Services {
	activitySvc := NewActivityService(repos.Activity)
	return &Services{
		Demand:   NewDemandService(repos.Demand),
		Analysis: NewAnalysisService(repos.Analysis),
		Partner:  NewPartnerService(repos.Partner),
		Matching: NewMatchingService(repos.Matching),
		Activity: activitySvc,
		Store:    NewStoreService(repos, rdb),
		Export:   NewExportService(repos.Matching, repos.Demand, repos.Partner),
	}
}
