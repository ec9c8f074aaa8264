package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bitfantasy/ecomatch/internal/match/entity"
	"github.com/bitfantasy/ecomatch/internal/match/repository"
	"github.com/redis/go-redis/v9"
)

const (
	snapshotCacheKey = "ecomatch:store:snapshot"
	snapshotCacheTTL = 3 * time.Second
)

// StoreService 全量快照投影：客户端启动时一次拉取五个列表。
// 五次读取各自独立反映调用时刻的存储状态，不做跨表锁。
type StoreService struct {
	repos *repository.Repositories
	rdb   *redis.Client
}

func NewStoreService(repos *repository.Repositories, rdb *redis.Client) *StoreService {
	return &StoreService{repos: repos, rdb: rdb}
}

// StoreSnapshot 与前端Store兼容的全量状态
type StoreSnapshot struct {
	Demands    []DemandDTO   `json:"demands"`
	Analyses   []AnalysisDTO `json:"analyses"`
	Partners   []PartnerDTO  `json:"partners"`
	Matchings  []MatchingDTO `json:"matchings"`
	Activities []ActivityDTO `json:"activities"`
}

// Snapshot 组装全量快照
func (s *StoreService) Snapshot(ctx context.Context) (*StoreSnapshot, error) {
	demands, err := s.repos.Demand.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	analyses, err := s.repos.Analysis.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	partners, err := s.repos.Partner.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	matchings, err := s.repos.Matching.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := s.repos.Activity.FindRecent(ctx, entity.ActivityFeedLimit)
	if err != nil {
		return nil, err
	}

	snapshot := &StoreSnapshot{
		Demands:    make([]DemandDTO, 0, len(demands)),
		Analyses:   make([]AnalysisDTO, 0, len(analyses)),
		Partners:   make([]PartnerDTO, 0, len(partners)),
		Matchings:  make([]MatchingDTO, 0, len(matchings)),
		Activities: make([]ActivityDTO, 0, len(activities)),
	}
	for i := range demands {
		snapshot.Demands = append(snapshot.Demands, DemandToDTO(&demands[i]))
	}
	for i := range analyses {
		snapshot.Analyses = append(snapshot.Analyses, AnalysisToDTO(&analyses[i]))
	}
	for i := range partners {
		snapshot.Partners = append(snapshot.Partners, PartnerToDTO(&partners[i]))
	}
	for i := range matchings {
		snapshot.Matchings = append(snapshot.Matchings, MatchingToDTO(&matchings[i]))
	}
	for i := range activities {
		snapshot.Activities = append(snapshot.Activities, ActivityToDTO(&activities[i]))
	}
	return snapshot, nil
}

// SnapshotJSON 序列化后的快照。配置了Redis时做短TTL字节缓存，
// 快照本身只承诺建议性一致，短缓存不会削弱该承诺。
func (s *StoreService) SnapshotJSON(ctx context.Context) ([]byte, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, snapshotCacheKey).Bytes(); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		// 缓存写失败不影响响应
		s.rdb.Set(ctx, snapshotCacheKey, data, snapshotCacheTTL)
	}
	return data, nil
}
