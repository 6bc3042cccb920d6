package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/subaru7958/sports-team-manager/internal/model"
)

// TeamRepository 球队数据访问接口
type TeamRepository interface {
	GetByID(ctx context.Context, id string) (*model.Team, error)
	GetByUserID(ctx context.Context, userID string) (*model.Team, error)
}

type teamRepo struct {
	db *gorm.DB
}

// NewTeamRepo 创建 TeamRepository 实例
func NewTeamRepo(db *gorm.DB) TeamRepository {
	return &teamRepo{db: db}
}

func (r *teamRepo) GetByID(ctx context.Context, id string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("team_id = ?", id).
		First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByUserID 按管理员登录邮箱查询球队（大小写不敏感）
func (r *teamRepo) GetByUserID(ctx context.Context, userID string) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Where("LOWER(user_id) = ?", strings.ToLower(userID)).
		First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}
