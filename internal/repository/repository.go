package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Team     TeamRepository
	Season   SeasonRepository
	Group    GroupRepository
	Facility FacilityRepository
	Event    EventRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:       db,
		Team:     NewTeamRepo(db),
		Season:   NewSeasonRepo(db),
		Group:    NewGroupRepo(db),
		Facility: NewFacilityRepo(db),
		Event:    NewEventRepo(db),
	}
}

// BeginTx 开启事务，返回事务连接
// 聚合未绑定数据库连接时（如测试中直接注入 mock）返回 nil 事务，
// 调用方需以 tx != nil 判断后再 Commit/Rollback
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx 返回绑定到指定事务连接的 Repository 聚合
// 调用方负责 Commit/Rollback；tx 为 nil 时原样返回自身
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
