package service

import (
	"context"

	"github.com/bitfantasy/ecomatch/internal/match/entity"
	"github.com/bitfantasy/ecomatch/internal/match/repository"
	"github.com/bitfantasy/ecomatch/internal/match/sse"
)

// AnalysisService 需求分析服务
type AnalysisService struct {
	repo *repository.AnalysisRepository
}

func NewAnalysisService(repo *repository.AnalysisRepository) *AnalysisService {
	return &AnalysisService{repo: repo}
}

// List 按插入序获取全部分析
func (s *AnalysisService) List(ctx context.Context) ([]AnalysisDTO, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AnalysisDTO, 0, len(items))
	for i := range items {
		out = append(out, AnalysisToDTO(&items[i]))
	}
	return out, nil
}

// ListByDemand 获取某需求的分析历史
func (s *AnalysisService) ListByDemand(ctx context.Context, demandID string) ([]AnalysisDTO, error) {
	items, err := s.repo.FindByDemand(ctx, demandID)
	if err != nil {
		return nil, err
	}
	out := make([]AnalysisDTO, 0, len(items))
	for i := range items {
		out = append(out, AnalysisToDTO(&items[i]))
	}
	return out, nil
}

// Create 创建分析。demand_id为软引用，不校验需求是否存在。
func (s *AnalysisService) Create(ctx context.Context, req *AnalysisDTO) (*AnalysisDTO, error) {
	analysis := &entity.Analysis{
		ID:            req.ID,
		DemandID:      req.DemandID,
		Clarity:       req.Clarity,
		Complexity:    req.Complexity,
		ProductForm:   req.ProductForm,
		EstimatedDays: req.EstimatedDays,
		Analyst:       req.Analyst,
		CoreFunctions: req.CoreFunctions,
		Conclusion:    req.Conclusion,
		Status:        req.Status,
		CreatedAt:     req.CreatedAt,
	}
	if analysis.CreatedAt == "" {
		analysis.CreatedAt = entity.NowISO()
	}

	if err := s.repo.Create(ctx, analysis); err != nil {
		return nil, err
	}
	sse.PublishEntityUpdate("analysis", analysis.ID, "create")
	dto := AnalysisToDTO(analysis)
	return &dto, nil
}

// Update 全量更新分析。demand_id在创建后不可变。
func (s *AnalysisService) Update(ctx context.Context, id string, req *AnalysisDTO) (*AnalysisDTO, error) {
	analysis, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	analysis.Clarity = req.Clarity
	analysis.Complexity = req.Complexity
	analysis.ProductForm = req.ProductForm
	analysis.EstimatedDays = req.EstimatedDays
	analysis.Analyst = req.Analyst
	analysis.CoreFunctions = req.CoreFunctions
	analysis.Conclusion = req.Conclusion
	analysis.Status = req.Status

	if err := s.repo.Update(ctx, analysis); err != nil {
		return nil, err
	}
	sse.PublishEntityUpdate("analysis", analysis.ID, "update")
	dto := AnalysisToDTO(analysis)
	return &dto, nil
}
