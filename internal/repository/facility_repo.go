package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/subaru7958/sports-team-manager/internal/model"
)

// FacilityRepository 场地数据访问接口
type FacilityRepository interface {
	Create(ctx context.Context, facility *model.Facility) error
	GetByID(ctx context.Context, id string) (*model.Facility, error)
	ListByTeam(ctx context.Context, teamID string, discipline string) ([]model.Facility, error)
	ExistsName(ctx context.Context, teamID, discipline, name string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type facilityRepo struct {
	db *gorm.DB
}

// NewFacilityRepo 创建 FacilityRepository 实例
func NewFacilityRepo(db *gorm.DB) FacilityRepository {
	return &facilityRepo{db: db}
}

func (r *facilityRepo) Create(ctx context.Context, facility *model.Facility) error {
	return r.db.WithContext(ctx).Create(facility).Error
}

func (r *facilityRepo) GetByID(ctx context.Context, id string) (*model.Facility, error) {
	var facility model.Facility
	err := r.db.WithContext(ctx).
		Where("facility_id = ?", id).
		First(&facility).Error
	if err != nil {
		return nil, err
	}
	return &facility, nil
}

// ListByTeam 列出球队场地；discipline 非空时按项目过滤（已小写化）
// 按名称排序，保证泳道次序稳定
func (r *facilityRepo) ListByTeam(ctx context.Context, teamID string, discipline string) ([]model.Facility, error) {
	q := r.db.WithContext(ctx).Where("team_id = ?", teamID)
	if discipline != "" {
		q = q.Where("discipline = ?", strings.ToLower(strings.TrimSpace(discipline)))
	}
	var facilities []model.Facility
	err := q.Order("name ASC").Find(&facilities).Error
	return facilities, err
}

// ExistsName 检查同球队同项目下是否已有同名场地（大小写不敏感）
func (r *facilityRepo) ExistsName(ctx context.Context, teamID, discipline, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Facility{}).
		Where("team_id = ? AND discipline = ? AND LOWER(name) = ?",
			teamID, strings.ToLower(discipline), strings.ToLower(name)).
		Count(&count).Error
	return count > 0, err
}

func (r *facilityRepo) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Facility{}).
		Where("facility_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *facilityRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("facility_id = ?", id).
		Delete(&model.Facility{}).Error
}
