package repository

import (
	"context"

	"github.com/bitfantasy/ecomatch/internal/match/entity"
	"gorm.io/gorm"
)

// ActivityRepository 动态信息流仓库
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create 追加一条动态
func (r *ActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// FindRecent 最近N条，按ID倒序（最新在前）
func (r *ActivityRepository) FindRecent(ctx context.Context, limit int) ([]entity.Activity, error) {
	var items []entity.Activity
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
