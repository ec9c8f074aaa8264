package service

import (
	"context"

	"github.com/bitfantasy/ecomatch/internal/match/entity"
	"github.com/bitfantasy/ecomatch/internal/match/repository"
	"github.com/bitfantasy/ecomatch/internal/match/sse"
)

// DemandService 需求服务
type DemandService struct {
	repo *repository.DemandRepository
}

func NewDemandService(repo *repository.DemandRepository) *DemandService {
	return &DemandService{repo: repo}
}

// List 按插入序获取全部需求
func (s *DemandService) List(ctx context.Context) ([]DemandDTO, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DemandDTO, 0, len(items))
	for i := range items {
		out = append(out, DemandToDTO(&items[i]))
	}
	return out, nil
}

// Get 获取需求详情
func (s *DemandService) Get(ctx context.Context, id string) (*DemandDTO, error) {
	demand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := DemandToDTO(demand)
	return &dto, nil
}

// Create 创建需求。ID由调用方指定，时间戳缺省时取当前时间。
func (s *DemandService) Create(ctx context.Context, req *DemandDTO) (*DemandDTO, error) {
	now := entity.NowISO()
	demand := &entity.Demand{
		ID:           req.ID,
		Category:     req.Category,
		CustomerName: req.CustomerName,
		Industry:     req.Industry,
		ProjectName:  req.ProjectName,
		ProjectTypes: req.ProjectTypes,
		Budget:       req.Budget,
		Deadline:     req.Deadline,
		Source:       req.Source,
		Description:  req.Description,
		Painpoints:   req.Painpoints,
		Status:       req.Status,
		Owner:        req.Owner,
		CreatedAt:    req.CreatedAt,
		UpdatedAt:    req.UpdatedAt,
	}
	if demand.CreatedAt == "" {
		demand.CreatedAt = now
	}
	if demand.UpdatedAt == "" {
		demand.UpdatedAt = now
	}

	if err := s.repo.Create(ctx, demand); err != nil {
		return nil, err
	}
	sse.PublishEntityUpdate("demand", demand.ID, "create")
	dto := DemandToDTO(demand)
	return &dto, nil
}

// Update 全量更新需求。updated_at由服务端刷新，忽略请求中的值。
func (s *DemandService) Update(ctx context.Context, id string, req *DemandDTO) (*DemandDTO, error) {
	demand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	demand.Category = req.Category
	demand.CustomerName = req.CustomerName
	demand.Industry = req.Industry
	demand.ProjectName = req.ProjectName
	demand.ProjectTypes = req.ProjectTypes
	demand.Budget = req.Budget
	demand.Deadline = req.Deadline
	demand.Source = req.Source
	demand.Description = req.Description
	demand.Painpoints = req.Painpoints
	demand.Status = req.Status
	demand.Owner = req.Owner
	demand.Touch()

	if err := s.repo.Update(ctx, demand); err != nil {
		return nil, err
	}
	sse.PublishEntityUpdate("demand", demand.ID, "update")
	dto := DemandToDTO(demand)
	return &dto, nil
}

// Delete 删除需求并级联清理其分析与匹配记录，幂等
func (s *DemandService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return err
	}
	sse.PublishEntityUpdate("demand", id, "delete")
	return nil
}
