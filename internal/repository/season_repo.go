package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/subaru7958/sports-team-manager/internal/model"
)

// SeasonRepository 赛季数据访问接口
type SeasonRepository interface {
	Create(ctx context.Context, season *model.Season) error
	GetByID(ctx context.Context, id string) (*model.Season, error)
	ListByTeam(ctx context.Context, teamID string) ([]model.Season, error)
	Delete(ctx context.Context, id string) error
}

type seasonRepo struct {
	db *gorm.DB
}

// NewSeasonRepo 创建 SeasonRepository 实例
func NewSeasonRepo(db *gorm.DB) SeasonRepository {
	return &seasonRepo{db: db}
}

func (r *seasonRepo) Create(ctx context.Context, season *model.Season) error {
	return r.db.WithContext(ctx).Create(season).Error
}

func (r *seasonRepo) GetByID(ctx context.Context, id string) (*model.Season, error) {
	var season model.Season
	err := r.db.WithContext(ctx).
		Where("season_id = ?", id).
		First(&season).Error
	if err != nil {
		return nil, err
	}
	return &season, nil
}

func (r *seasonRepo) ListByTeam(ctx context.Context, teamID string) ([]model.Season, error) {
	var seasons []model.Season
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("start_date DESC").
		Find(&seasons).Error
	return seasons, err
}

func (r *seasonRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("season_id = ?", id).
		Delete(&model.Season{}).Error
}
