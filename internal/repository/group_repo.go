package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/subaru7958/sports-team-manager/internal/model"
)

// GroupRepository 训练组数据访问接口
// 核心仅消费存在性校验与按赛季列表，不做组内成员管理
type GroupRepository interface {
	GetByID(ctx context.Context, id string) (*model.Group, error)
	ListBySeason(ctx context.Context, seasonID string) ([]model.Group, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type groupRepo struct {
	db *gorm.DB
}

// NewGroupRepo 创建 GroupRepository 实例
func NewGroupRepo(db *gorm.DB) GroupRepository {
	return &groupRepo{db: db}
}

func (r *groupRepo) GetByID(ctx context.Context, id string) (*model.Group, error) {
	var group model.Group
	err := r.db.WithContext(ctx).
		Where("group_id = ?", id).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepo) ListBySeason(ctx context.Context, seasonID string) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Order("name ASC").
		Find(&groups).Error
	return groups, err
}

func (r *groupRepo) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Group{}).
		Where("group_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
