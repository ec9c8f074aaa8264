package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/ecomatch/internal/match/entity"
	"gorm.io/gorm"
)

// AnalysisRepository 需求分析仓库
type AnalysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// FindAll 按插入序返回全部分析
func (r *AnalysisRepository) FindAll(ctx context.Context) ([]entity.Analysis, error) {
	var items []entity.Analysis
	err := r.db.WithContext(ctx).
		Order("seq ASC, id ASC").
		Find(&items).Error
	return items, err
}

// FindByID 根据ID查找分析
func (r *AnalysisRepository) FindByID(ctx context.Context, id string) (*entity.Analysis, error) {
	var analysis entity.Analysis
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &analysis, nil
}

// FindByDemand 查找某需求的全部分析（历史记录）
func (r *AnalysisRepository) FindByDemand(ctx context.Context, demandID string) ([]entity.Analysis, error) {
	var items []entity.Analysis
	err := r.db.WithContext(ctx).
		Where("demand_id = ?", demandID).
		Order("seq ASC, id ASC").
		Find(&items).Error
	return items, err
}

// Create 创建分析，ID已存在时返回ErrDuplicateKey
func (r *AnalysisRepository) Create(ctx context.Context, analysis *entity.Analysis) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Analysis{}).
		Where("id = ?", analysis.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateKey
	}
	analysis.Seq = entity.NextSeq()
	if err := r.db.WithContext(ctx).Create(analysis).Error; err != nil {
		// 并发创建同ID时预检查可能双双通过，兜底翻译驱动层的唯一键冲突
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

// Update 更新分析
func (r *AnalysisRepository) Update(ctx context.Context, analysis *entity.Analysis) error {
	return r.db.WithContext(ctx).Save(analysis).Error
}
