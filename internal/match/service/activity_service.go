package service

import (
	"context"

	"github.com/bitfantasy/ecomatch/internal/match/entity"
	"github.com/bitfantasy/ecomatch/internal/match/repository"
	"github.com/bitfantasy/ecomatch/internal/match/sse"
)

// ActivityService 动态信息流服务
type ActivityService struct {
	repo *repository.ActivityRepository
}

func NewActivityService(repo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// Recent 最近20条动态，最新在前
func (s *ActivityService) Recent(ctx context.Context) ([]ActivityDTO, error) {
	items, err := s.repo.FindRecent(ctx, entity.ActivityFeedLimit)
	if err != nil {
		return nil, err
	}
	out := make([]ActivityDTO, 0, len(items))
	for i := range items {
		out = append(out, ActivityToDTO(&items[i]))
	}
	return out, nil
}

// Append 追加一条动态并广播给在线客户端
func (s *ActivityService) Append(ctx context.Context, req *ActivityDTO) error {
	activity := &entity.Activity{
		Text:      req.Text,
		Color:     req.Color,
		CreatedAt: req.Time,
	}
	if activity.CreatedAt == "" {
		activity.CreatedAt = entity.NowISO()
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return err
	}
	sse.PublishActivity(activity.Text, activity.Color, activity.CreatedAt)
	return nil
}
