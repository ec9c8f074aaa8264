package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Repositories 仓库集合
type Repositories struct {
	Demand   *DemandRepository
	Analysis *AnalysisRepository
	Partner  *PartnerRepository
	Matching *MatchingRepository
	Activity *ActivityRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Demand:   NewDemandRepository(db),
		Analysis: NewAnalysisRepository(db),
		Partner:  NewPartnerRepository(db),
		Matching: NewMatchingRepository(db),
		Activity: NewActivityRepository(db),
	}
}
