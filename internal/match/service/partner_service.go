package service

import (
	"context"

	"github.com/bitfantasy/ecomatch/internal/match/entity"
	"github.com/bitfantasy/ecomatch/internal/match/repository"
	"github.com/bitfantasy/ecomatch/internal/match/sse"
)

// PartnerService 合作伙伴服务
type PartnerService struct {
	repo *repository.PartnerRepository
}

func NewPartnerService(repo *repository.PartnerRepository) *PartnerService {
	return &PartnerService{repo: repo}
}

// List 按插入序获取全部伙伴
func (s *PartnerService) List(ctx context.Context) ([]PartnerDTO, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PartnerDTO, 0, len(items))
	for i := range items {
		out = append(out, PartnerToDTO(&items[i]))
	}
	return out, nil
}

// Get 获取伙伴详情
func (s *PartnerService) Get(ctx context.Context, id string) (*PartnerDTO, error) {
	partner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := PartnerToDTO(partner)
	return &dto, nil
}

// Create 创建伙伴
func (s *PartnerService) Create(ctx context.Context, req *PartnerDTO) (*PartnerDTO, error) {
	now := entity.NowISO()
	partner := &entity.Partner{
		ID:                req.ID,
		CompanyName:       req.CompanyName,
		CompanySize:       req.CompanySize,
		Industries:        req.Industries,
		Skills:            req.Skills,
		ProjectTypes:      req.ProjectTypes,
		HistoryCount:      req.HistoryCount,
		QualityScore:      req.QualityScore,
		AvailableStaff:    req.AvailableStaff,
		Schedule:          req.Schedule,
		CooperationStatus: req.CooperationStatus,
		Contact:           req.Contact,
		Phone:             req.Phone,
		Notes:             req.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, partner); err != nil {
		return nil, err
	}
	sse.PublishEntityUpdate("partner", partner.ID, "create")
	dto := PartnerToDTO(partner)
	return &dto, nil
}

// Update 全量更新伙伴
func (s *PartnerService) Update(ctx context.Context, id string, req *PartnerDTO) (*PartnerDTO, error) {
	partner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	partner.CompanyName = req.CompanyName
	partner.CompanySize = req.CompanySize
	partner.Industries = req.Industries
	partner.Skills = req.Skills
	partner.ProjectTypes = req.ProjectTypes
	partner.HistoryCount = req.HistoryCount
	partner.QualityScore = req.QualityScore
	partner.AvailableStaff = req.AvailableStaff
	partner.Schedule = req.Schedule
	partner.CooperationStatus = req.CooperationStatus
	partner.Contact = req.Contact
	partner.Phone = req.Phone
	partner.Notes = req.Notes
	if now := entity.NowISO(); now > partner.UpdatedAt {
		partner.UpdatedAt = now
	}

	if err := s.repo.Update(ctx, partner); err != nil {
		return nil, err
	}
	sse.PublishEntityUpdate("partner", partner.ID, "update")
	dto := PartnerToDTO(partner)
	return &dto, nil
}
