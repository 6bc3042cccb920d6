package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/subaru7958/sports-team-manager/internal/model"
)

// EventRepository 日程事件数据访问接口
type EventRepository interface {
	// BatchCreate 批量插入事件实例（单条 INSERT，底层保证整体成败）
	BatchCreate(ctx context.Context, events []model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	// ListByRange 按赛季查询事件；start/end 同时提供时按
	// start <= start_time <= end 闭区间过滤，均为空时返回赛季全集，按开始时间升序
	ListByRange(ctx context.Context, seasonID string, start, end *time.Time) ([]model.Event, error)
	ListBySeries(ctx context.Context, seriesID string) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string) error
	// DeleteBySeries 删除整个系列，返回删除的实例数
	DeleteBySeries(ctx context.Context, seriesID string) (int64, error)
}

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo 创建 EventRepository 实例
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) BatchCreate(ctx context.Context, events []model.Event) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&events).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Preload("Group").
		Preload("Facility").
		Where("event_id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) ListByRange(ctx context.Context, seasonID string, start, end *time.Time) ([]model.Event, error) {
	q := r.db.WithContext(ctx).
		Preload("Group").
		Preload("Facility").
		Where("season_id = ?", seasonID)
	if start != nil && end != nil {
		q = q.Where("start_time >= ? AND start_time <= ?", *start, *end)
	}
	var events []model.Event
	err := q.Order("start_time ASC").Find(&events).Error
	return events, err
}

func (r *eventRepo) ListBySeries(ctx context.Context, seriesID string) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Where("series_id = ?", seriesID).
		Order("start_time ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepo) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("event_id = ?", id).
		Delete(&model.Event{}).Error
}

func (r *eventRepo) DeleteBySeries(ctx context.Context, seriesID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("series_id = ?", seriesID).
		Delete(&model.Event{})
	return result.RowsAffected, result.Error
}
