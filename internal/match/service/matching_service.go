package service

import (
	"context"

	"github.com/bitfantasy/ecomatch/internal/match/entity"
	"github.com/bitfantasy/ecomatch/internal/match/repository"
	"github.com/bitfantasy/ecomatch/internal/match/sse"
)

// MatchingService 匹配台账服务。打分与总分由调用方给定，
// 这里只校验形状与工作流转换的合法性。
type MatchingService struct {
	repo *repository.MatchingRepository
}

func NewMatchingService(repo *repository.MatchingRepository) *MatchingService {
	return &MatchingService{repo: repo}
}

// UpdateMatchingRequest 更新请求体。创建后仅状态、两个评审
// 四元组与cooperation_mode/reason/risks可变，其余字段不可变，
// 因此更新请求只收这些字段（全量替换语义）。
type UpdateMatchingRequest struct {
	Status          string `json:"status" binding:"required"`
	CooperationMode string `json:"cooperationMode"`
	Reason          string `json:"reason"`
	Risks           string `json:"risks"`

	ProductScore     *int    `json:"productScore"`
	ProductComment   *string `json:"productComment"`
	ProductScoreBy   *string `json:"productScoreBy"`
	ProductScoreTime *string `json:"productScoreTime"`

	PresalesScore     *int    `json:"presalesScore"`
	PresalesComment   *string `json:"presalesComment"`
	PresalesScoreBy   *string `json:"presalesScoreBy"`
	PresalesScoreTime *string `json:"presalesScoreTime"`
}

// validateStage 评审四元组要么整体设置（score/by/time齐全，
// comment可空），要么整体为空。半填充返回ErrStagePartial。
func validateStage(score *int, comment, by, at *string) error {
	if score == nil {
		if comment != nil || by != nil || at != nil {
			return ErrStagePartial
		}
		return nil
	}
	if by == nil || at == nil {
		return ErrStagePartial
	}
	return nil
}

// List 按插入序获取全部匹配记录
func (s *MatchingService) List(ctx context.Context) ([]MatchingDTO, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MatchingDTO, 0, len(items))
	for i := range items {
		out = append(out, MatchingToDTO(&items[i]))
	}
	return out, nil
}

// Get 获取匹配记录详情
func (s *MatchingService) Get(ctx context.Context, id string) (*MatchingDTO, error) {
	matching, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := MatchingToDTO(matching)
	return &dto, nil
}

// ListByDemand 获取某需求的全部匹配记录，按批次与rank排序
func (s *MatchingService) ListByDemand(ctx context.Context, demandID string) ([]MatchingDTO, error) {
	items, err := s.repo.FindByDemand(ctx, demandID)
	if err != nil {
		return nil, err
	}
	out := make([]MatchingDTO, 0, len(items))
	for i := range items {
		out = append(out, MatchingToDTO(&items[i]))
	}
	return out, nil
}

// ListByGroup 获取一次匹配运行的全部候选，按rank排序
func (s *MatchingService) ListByGroup(ctx context.Context, groupID string) ([]MatchingDTO, error) {
	items, err := s.repo.FindByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	out := make([]MatchingDTO, 0, len(items))
	for i := range items {
		out = append(out, MatchingToDTO(&items[i]))
	}
	return out, nil
}

// Create 创建匹配记录。demand_id/partner_id/group_id为软引用，
// 允许悬空。评审四元组若在创建时就给出，同样做完整性校验。
func (s *MatchingService) Create(ctx context.Context, req *MatchingDTO) (*MatchingDTO, error) {
	if err := validateStage(req.ProductScore, req.ProductComment, req.ProductScoreBy, req.ProductScoreTime); err != nil {
		return nil, err
	}
	if err := validateStage(req.PresalesScore, req.PresalesComment, req.PresalesScoreBy, req.PresalesScoreTime); err != nil {
		return nil, err
	}

	matching := &entity.Matching{
		ID:                req.ID,
		GroupID:           req.GroupID,
		DemandID:          req.DemandID,
		PartnerID:         req.PartnerID,
		Rank:              req.Rank,
		TechScore:         req.TechScore,
		IndustryScore:     req.IndustryScore,
		ScaleScore:        req.ScaleScore,
		ScheduleScore:     req.ScheduleScore,
		TotalScore:        req.TotalScore,
		CooperationMode:   req.CooperationMode,
		Reason:            req.Reason,
		Risks:             req.Risks,
		ProductScore:      req.ProductScore,
		ProductComment:    req.ProductComment,
		ProductScoreBy:    req.ProductScoreBy,
		ProductScoreTime:  req.ProductScoreTime,
		PresalesScore:     req.PresalesScore,
		PresalesComment:   req.PresalesComment,
		PresalesScoreBy:   req.PresalesScoreBy,
		PresalesScoreTime: req.PresalesScoreTime,
		Status:            req.Status,
		MatchDate:         req.MatchDate,
	}
	if matching.MatchDate == "" {
		matching.MatchDate = entity.NowISO()
	}

	if err := s.repo.Create(ctx, matching); err != nil {
		return nil, err
	}
	sse.PublishEntityUpdate("matching", matching.ID, "create")
	dto := MatchingToDTO(matching)
	return &dto, nil
}

// Update 更新匹配记录的可变字段。状态为调用方给定的自由文本，
// 不由打分推导。
func (s *MatchingService) Update(ctx context.Context, id string, req *UpdateMatchingRequest) (*MatchingDTO, error) {
	if err := validateStage(req.ProductScore, req.ProductComment, req.ProductScoreBy, req.ProductScoreTime); err != nil {
		return nil, err
	}
	if err := validateStage(req.PresalesScore, req.PresalesComment, req.PresalesScoreBy, req.PresalesScoreTime); err != nil {
		return nil, err
	}

	matching, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	matching.Status = req.Status
	matching.CooperationMode = req.CooperationMode
	matching.Reason = req.Reason
	matching.Risks = req.Risks
	matching.ProductScore = req.ProductScore
	matching.ProductComment = req.ProductComment
	matching.ProductScoreBy = req.ProductScoreBy
	matching.ProductScoreTime = req.ProductScoreTime
	matching.PresalesScore = req.PresalesScore
	matching.PresalesComment = req.PresalesComment
	matching.PresalesScoreBy = req.PresalesScoreBy
	matching.PresalesScoreTime = req.PresalesScoreTime

	if err := s.repo.Update(ctx, matching); err != nil {
		return nil, err
	}
	sse.PublishEntityUpdate("matching", matching.ID, "update")
	dto := MatchingToDTO(matching)
	return &dto, nil
}

// Delete 直接删除匹配记录，幂等。常规路径是需求删除时级联。
func (s *MatchingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	sse.PublishEntityUpdate("matching", id, "delete")
	return nil
}
