package repository

import (
	"context"
	"errors"

	"github.com/bitfantasy/ecomatch/internal/match/entity"
	"gorm.io/gorm"
)

// PartnerRepository 合作伙伴仓库
type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

// FindAll 按插入序返回全部伙伴
func (r *PartnerRepository) FindAll(ctx context.Context) ([]entity.Partner, error) {
	var items []entity.Partner
	err := r.db.WithContext(ctx).
		Order("seq ASC, id ASC").
		Find(&items).Error
	return items, err
}

// FindByID 根据ID查找伙伴
func (r *PartnerRepository) FindByID(ctx context.Context, id string) (*entity.Partner, error) {
	var partner entity.Partner
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&partner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &partner, nil
}

// Create 创建伙伴，ID已存在时返回ErrDuplicateKey
func (r *PartnerRepository) Create(ctx context.Context, partner *entity.Partner) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Partner{}).
		Where("id = ?", partner.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateKey
	}
	partner.Seq = entity.NextSeq()
	if err := r.db.WithContext(ctx).Create(partner).Error; err != nil {
		// 并发创建同ID时预检查可能双双通过，兜底翻译驱动层的唯一键冲突
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

// Update 更新伙伴
func (r *PartnerRepository) Update(ctx context.Context, partner *entity.Partner) error {
	return r.db.WithContext(ctx).Save(partner).Error
}
