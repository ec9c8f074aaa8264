package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/ecomatch/internal/match/entity"
	"gorm.io/gorm"
)

// MatchingRepository 匹配记录仓库
type MatchingRepository struct {
	db *gorm.DB
}

func NewMatchingRepository(db *gorm.DB) *MatchingRepository {
	return &MatchingRepository{db: db}
}

// FindAll 按插入序返回全部匹配记录。match_date可由调用方指定，
// 不参与排序。
func (r *MatchingRepository) FindAll(ctx context.Context) ([]entity.Matching, error) {
	var items []entity.Matching
	err := r.db.WithContext(ctx).
		Order("seq ASC, id ASC").
		Find(&items).Error
	return items, err
}

// FindByID 根据ID查找匹配记录
func (r *MatchingRepository) FindByID(ctx context.Context, id string) (*entity.Matching, error) {
	var matching entity.Matching
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&matching).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &matching, nil
}

// FindByDemand 查找某需求的全部匹配记录
func (r *MatchingRepository) FindByDemand(ctx context.Context, demandID string) ([]entity.Matching, error) {
	var items []entity.Matching
	err := r.db.WithContext(ctx).
		Where("demand_id = ?", demandID).
		Order("group_id ASC, rank ASC").
		Find(&items).Error
	return items, err
}

// FindByGroup 查找同一次匹配运行产生的记录，按rank排序
func (r *MatchingRepository) FindByGroup(ctx context.Context, groupID string) ([]entity.Matching, error) {
	var items []entity.Matching
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("rank ASC, id ASC").
		Find(&items).Error
	return items, err
}

// Create 创建匹配记录，ID已存在时返回ErrDuplicateKey
func (r *MatchingRepository) Create(ctx context.Context, matching *entity.Matching) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Matching{}).
		Where("id = ?", matching.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateKey
	}
	matching.Seq = entity.NextSeq()
	if err := r.db.WithContext(ctx).Create(matching).Error; err != nil {
		// 并发创建同ID时预检查可能双双通过，兜底翻译驱动层的唯一键冲突
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

// Update 更新匹配记录。Save会跳过nil指针字段的清空，
// 因此评审四元组的清空通过Select强制写入。
func (r *MatchingRepository) Update(ctx context.Context, matching *entity.Matching) error {
	return r.db.WithContext(ctx).
		Model(&entity.Matching{}).
		Where("id = ?", matching.ID).
		Select("status", "cooperation_mode", "reason", "risks",
			"product_score", "product_comment", "product_score_by", "product_score_time",
			"presales_score", "presales_comment", "presales_score_by", "presales_score_time").
		Updates(matching).Error
}

// Delete 删除匹配记录，幂等。常规级联走DemandRepository，
// 直接删除仅为完整性保留。
func (r *MatchingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Matching{}).Error
}
