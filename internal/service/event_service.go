package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/subaru7958/sports-team-manager/internal/dto"
	"github.com/subaru7958/sports-team-manager/internal/model"
	"github.com/subaru7958/sports-team-manager/internal/repository"
)

// ── 事件模块业务错误 ──

var (
	ErrEventTitleRequired    = errors.New("事件标题不能为空")
	ErrEventGroupNotFound    = errors.New("训练组不存在")
	ErrEventFacilityNotFound = errors.New("场地不存在")
	ErrEventSeasonNotFound   = errors.New("赛季不存在")
	ErrEventTimeInvalid      = errors.New("时间格式无效")
	ErrEventTimeOrder        = errors.New("结束时间必须晚于开始时间")
	ErrEventNotFound         = errors.New("事件不存在")
	ErrEventBatchInsert      = errors.New("训练日程写入失败")
)

// EventService 日程事件业务接口
//
// 设计说明：
//   - Create 是循环展开的唯一入口：校验 → 展开 → 单事务批量写入。
//     事务保证批量失败时零实例落库（整体成败，不存在部分成功）。
//   - Update/Delay/Delete 均以实例身份为作用域；Delay 只影响目标实例，
//     系列中的兄弟实例永不受牵连。级联删除整个系列需要调用方显式声明意图。
type EventService interface {
	Create(ctx context.Context, teamID string, req *dto.CreateEventRequest) (*dto.CreateEventResponse, error)
	List(ctx context.Context, seasonID string, start, end string) ([]dto.EventResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	Delay(ctx context.Context, id string, req *dto.DelayEventRequest) (*dto.EventResponse, error)
	// Delete 删除单个实例；deleteSeries 为 true 且实例属于系列时级联删除全系列
	Delete(ctx context.Context, id string, deleteSeries bool) (*dto.DeleteEventResponse, error)
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService 创建 EventService 实例
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *eventService) Create(ctx context.Context, teamID string, req *dto.CreateEventRequest) (*dto.CreateEventResponse, error) {
	// 1. 解析并校验时间
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, ErrEventTimeInvalid
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, ErrEventTimeInvalid
	}
	if !start.Before(end) {
		return nil, ErrEventTimeOrder
	}

	// 2. 校验目录引用（训练组 / 场地 / 赛季）
	facility, err := s.repo.Facility.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventFacilityNotFound
		}
		s.logger.Error("查询场地失败", zap.String("id", req.FacilityID), zap.Error(err))
		return nil, err
	}

	exists, err := s.repo.Group.Exists(ctx, req.GroupID)
	if err != nil {
		s.logger.Error("查询训练组失败", zap.String("id", req.GroupID), zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, ErrEventGroupNotFound
	}

	season, err := s.repo.Season.GetByID(ctx, req.SeasonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventSeasonNotFound
		}
		s.logger.Error("查询赛季失败", zap.String("id", req.SeasonID), zap.Error(err))
		return nil, err
	}

	// 3. 标题为空时回退为场地名
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = facility.Name
	}
	if title == "" {
		return nil, ErrEventTitleRequired
	}

	// 4. 展开实例序列；每周系列分配一个全新的 series_id
	eventType := req.Type
	if eventType == "" {
		eventType = model.EventTypeRegular
	}

	var seriesID *string
	occurrences := []Occurrence{{Start: start, End: end}}
	if eventType == model.EventTypeWeekly {
		sid := uuid.New().String()
		seriesID = &sid
		occurrences = ExpandWeekly(start, end, model.EndOfDay(season.EndDate))
	}

	events := make([]model.Event, 0, len(occurrences))
	for _, occ := range occurrences {
		events = append(events, model.Event{
			TeamID:     teamID,
			SeasonID:   season.SeasonID,
			GroupID:    req.GroupID,
			FacilityID: facility.FacilityID,
			Title:      title,
			StartTime:  occ.Start,
			EndTime:    occ.End,
			Type:       eventType,
			SeriesID:   seriesID,
			Status:     model.EventStatusScheduled,
		})
	}

	// 5. 单事务批量写入：全部成功或零实例落库
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, err
	}

	if err := s.repo.WithTx(tx).Event.BatchCreate(ctx, events); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("批量插入事件失败", zap.Int("count", len(events)), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrEventBatchInsert, err)
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrEventBatchInsert, err)
		}
	}

	s.logger.Info("事件创建成功",
		zap.String("season_id", season.SeasonID),
		zap.String("type", eventType),
		zap.Int("count", len(events)),
	)

	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *toEventResponse(&events[i]))
	}

	return &dto.CreateEventResponse{Count: len(result), Events: result}, nil
}

// ────────────────────── List ──────────────────────

func (s *eventService) List(ctx context.Context, seasonID string, start, end string) ([]dto.EventResponse, error) {
	if _, err := s.repo.Season.GetByID(ctx, seasonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventSeasonNotFound
		}
		s.logger.Error("查询赛季失败", zap.String("id", seasonID), zap.Error(err))
		return nil, err
	}

	// start/end 必须成对出现才构成范围过滤，否则返回赛季全集
	var startPtr, endPtr *time.Time
	if start != "" && end != "" {
		st, err := time.Parse(time.RFC3339, start)
		if err != nil {
			return nil, ErrEventTimeInvalid
		}
		et, err := time.Parse(time.RFC3339, end)
		if err != nil {
			return nil, ErrEventTimeInvalid
		}
		startPtr, endPtr = &st, &et
	}

	events, err := s.repo.Event.ListByRange(ctx, seasonID, startPtr, endPtr)
	if err != nil {
		s.logger.Error("查询事件失败", zap.String("season_id", seasonID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *toEventResponse(&events[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

// Update 更新单个事件实例（部分字段补丁）
// 只更新请求中出现的字段；补丁合并后重新校验 start < end
func (s *eventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = strings.TrimSpace(*req.Title)
		if event.Title == "" {
			return nil, ErrEventTitleRequired
		}
	}
	if req.FacilityID != nil {
		exists, err := s.repo.Facility.Exists(ctx, *req.FacilityID)
		if err != nil {
			s.logger.Error("查询场地失败", zap.String("id", *req.FacilityID), zap.Error(err))
			return nil, err
		}
		if !exists {
			return nil, ErrEventFacilityNotFound
		}
		event.FacilityID = *req.FacilityID
		event.Facility = nil
	}
	if req.StartTime != nil {
		st, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			return nil, ErrEventTimeInvalid
		}
		event.StartTime = st
	}
	if req.EndTime != nil {
		et, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			return nil, ErrEventTimeInvalid
		}
		event.EndTime = et
	}
	if !event.StartTime.Before(event.EndTime) {
		return nil, ErrEventTimeOrder
	}
	if req.Status != nil {
		event.Status = *req.Status
	}

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.logger.Error("更新事件失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toEventResponse(event), nil
}

// ────────────────────── Delay ──────────────────────

// Delay 延期单个事件实例：改写起止时间并强制状态为 delayed
// 不重新校验赛季日期上界（补课可以排在赛季窗口之外），兄弟实例不受影响
func (s *eventService) Delay(ctx context.Context, id string, req *dto.DelayEventRequest) (*dto.EventResponse, error) {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, ErrEventTimeInvalid
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, ErrEventTimeInvalid
	}
	if !start.Before(end) {
		return nil, ErrEventTimeOrder
	}

	event.StartTime = start
	event.EndTime = end
	event.Status = model.EventStatusDelayed

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.logger.Error("延期事件失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toEventResponse(event), nil
}

// ────────────────────── Delete ──────────────────────

func (s *eventService) Delete(ctx context.Context, id string, deleteSeries bool) (*dto.DeleteEventResponse, error) {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	// 级联删除需要调用方显式声明；单次事件的 series 标记被忽略
	if deleteSeries && event.IsSeries() {
		count, err := s.repo.Event.DeleteBySeries(ctx, *event.SeriesID)
		if err != nil {
			s.logger.Error("删除系列失败", zap.String("series_id", *event.SeriesID), zap.Error(err))
			return nil, err
		}
		s.logger.Info("系列删除成功", zap.String("series_id", *event.SeriesID), zap.Int64("count", count))
		return &dto.DeleteEventResponse{Deleted: count}, nil
	}

	if err := s.repo.Event.Delete(ctx, id); err != nil {
		s.logger.Error("删除事件失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &dto.DeleteEventResponse{Deleted: 1}, nil
}

// ── 内部辅助方法 ──

func (s *eventService) getEvent(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("查询事件失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return event, nil
}

func toEventResponse(event *model.Event) *dto.EventResponse {
	resp := &dto.EventResponse{
		ID:         event.EventID,
		SeasonID:   event.SeasonID,
		GroupID:    event.GroupID,
		FacilityID: event.FacilityID,
		Title:      event.Title,
		StartTime:  event.StartTime.Format(time.RFC3339),
		EndTime:    event.EndTime.Format(time.RFC3339),
		Type:       event.Type,
		Status:     event.Status,
	}
	if event.SeriesID != nil {
		resp.SeriesID = *event.SeriesID
	}
	return resp
}
