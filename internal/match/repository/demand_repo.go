package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/ecomatch/internal/match/entity"
	"gorm.io/gorm"
)

// DemandRepository 需求仓库
type DemandRepository struct {
	db *gorm.DB
}

func NewDemandRepository(db *gorm.DB) *DemandRepository {
	return &DemandRepository{db: db}
}

// FindAll 按插入序返回全部需求。排序依据是服务端序号，
// 调用方回填的created_at不参与排序。
func (r *DemandRepository) FindAll(ctx context.Context) ([]entity.Demand, error) {
	var items []entity.Demand
	err := r.db.WithContext(ctx).
		Order("seq ASC, id ASC").
		Find(&items).Error
	return items, err
}

// FindByID 根据ID查找需求
func (r *DemandRepository) FindByID(ctx context.Context, id string) (*entity.Demand, error) {
	var demand entity.Demand
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&demand).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &demand, nil
}

// Create 创建需求，ID已存在时返回ErrDuplicateKey
func (r *DemandRepository) Create(ctx context.Context, demand *entity.Demand) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Demand{}).
		Where("id = ?", demand.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateKey
	}
	demand.Seq = entity.NextSeq()
	if err := r.db.WithContext(ctx).Create(demand).Error; err != nil {
		// 并发创建同ID时预检查可能双双通过，兜底翻译驱动层的唯一键冲突
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

// Update 更新需求
func (r *DemandRepository) Update(ctx context.Context, demand *entity.Demand) error {
	return r.db.WithContext(ctx).Save(demand).Error
}

// DeleteCascade 删除需求并级联清理其分析与匹配记录（软引用清理，单事务）。
// 删除不存在的ID不是错误。
func (r *DemandRepository) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Delete(&entity.Demand{}).Error; err != nil {
			return err
		}
		if err := tx.Where("demand_id = ?", id).Delete(&entity.Analysis{}).Error; err != nil {
			return err
		}
		return tx.Where("demand_id = ?", id).Delete(&entity.Matching{}).Error
	})
}
