package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/subaru7958/sports-team-manager/config"
	"github.com/subaru7958/sports-team-manager/internal/dto"
	"github.com/subaru7958/sports-team-manager/internal/model"
	"github.com/subaru7958/sports-team-manager/internal/repository"
)

// ── 日历模块业务错误 ──

var (
	ErrCalendarDayInvalid    = errors.New("日期格式无效")
	ErrCalendarWindowInvalid = errors.New("视图窗口无效")
	ErrCalendarTeamNotFound  = errors.New("球队不存在")
)

// 状态强调色；scheduled 取球队主色
const (
	colorDelayed   = "#f59e0b"
	colorCancelled = "#ef4444"
	colorCompleted = "#10b981"
	fallbackColor  = "#0df2f2"
)

// CalendarService 日历泳道视图业务接口
//
// ProjectDay 是纯投影：读取事件后推导展示状态并计算像素几何，
// 不写回任何持久化字段。completed 永远不因时间流逝落库。
type CalendarService interface {
	ProjectDay(ctx context.Context, teamID, seasonID string, req *dto.CalendarDayRequest) (*dto.CalendarDayResponse, error)
}

type calendarService struct {
	cfg    *config.CalendarConfig
	repo   *repository.Repository
	logger *zap.Logger

	// 可替换的时钟，测试中固定 now
	nowFn func() time.Time
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(cfg *config.CalendarConfig, repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{cfg: cfg, repo: repo, logger: logger, nowFn: time.Now}
}

// ────────────────────── ProjectDay ──────────────────────

func (s *calendarService) ProjectDay(ctx context.Context, teamID, seasonID string, req *dto.CalendarDayRequest) (*dto.CalendarDayResponse, error) {
	day, err := time.Parse("2006-01-02", req.Day)
	if err != nil {
		return nil, ErrCalendarDayInvalid
	}

	// 窗口与比例：请求覆盖 → 服务端配置兜底
	startHour := s.cfg.StartHour
	endHour := s.cfg.EndHour
	pixelsPerHour := s.cfg.PixelsPerHour
	if req.StartHour != nil {
		startHour = *req.StartHour
	}
	if req.EndHour != nil {
		endHour = *req.EndHour
	}
	if req.PixelsPerHour != nil {
		pixelsPerHour = *req.PixelsPerHour
	}
	if endHour <= startHour || pixelsPerHour <= 0 {
		return nil, ErrCalendarWindowInvalid
	}

	team, err := s.repo.Team.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCalendarTeamNotFound
		}
		s.logger.Error("查询球队失败", zap.String("id", teamID), zap.Error(err))
		return nil, err
	}
	brandColor := team.PrimaryColor
	if brandColor == "" {
		brandColor = s.cfg.BrandColor
	}
	if brandColor == "" {
		brandColor = fallbackColor
	}

	facilities, err := s.repo.Facility.ListByTeam(ctx, teamID, "")
	if err != nil {
		s.logger.Error("查询场地失败", zap.String("team_id", teamID), zap.Error(err))
		return nil, err
	}

	// facility_ids 非空时只保留指定场地（保持存储顺序）
	if len(req.FacilityIDs) > 0 {
		visible := make(map[string]struct{}, len(req.FacilityIDs))
		for _, id := range req.FacilityIDs {
			visible[id] = struct{}{}
		}
		filtered := facilities[:0]
		for _, f := range facilities {
			if _, ok := visible[f.FacilityID]; ok {
				filtered = append(filtered, f)
			}
		}
		facilities = filtered
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := model.EndOfDay(dayStart)
	events, err := s.repo.Event.ListByRange(ctx, seasonID, &dayStart, &dayEnd)
	if err != nil {
		s.logger.Error("查询事件失败", zap.String("season_id", seasonID), zap.Error(err))
		return nil, err
	}

	// 按场地分桶；无事件的场地仍保留一条空泳道
	byFacility := make(map[string][]model.Event, len(facilities))
	for _, e := range events {
		byFacility[e.FacilityID] = append(byFacility[e.FacilityID], e)
	}

	now := s.nowFn()
	lanes := make([]dto.CalendarLane, 0, len(facilities))
	for _, f := range facilities {
		lane := dto.CalendarLane{
			FacilityID:   f.FacilityID,
			FacilityName: f.Name,
			Events:       []dto.CalendarEvent{},
		}
		for i := range byFacility[f.FacilityID] {
			e := &byFacility[f.FacilityID][i]
			lane.Events = append(lane.Events, projectEvent(e, now, startHour, pixelsPerHour, brandColor))
		}
		lanes = append(lanes, lane)
	}

	return &dto.CalendarDayResponse{
		Day:           req.Day,
		StartHour:     startHour,
		EndHour:       endHour,
		PixelsPerHour: pixelsPerHour,
		Lanes:         lanes,
	}, nil
}

// ── 纯投影辅助函数 ──

func projectEvent(e *model.Event, now time.Time, startHour, pixelsPerHour int, brandColor string) dto.CalendarEvent {
	display := DeriveDisplayStatus(e.Status, e.EndTime, now)
	top, height := EventGeometry(e.StartTime, e.EndTime, startHour, pixelsPerHour)

	ce := dto.CalendarEvent{
		ID:            e.EventID,
		Title:         e.Title,
		GroupID:       e.GroupID,
		StartTime:     e.StartTime.Format(time.RFC3339),
		EndTime:       e.EndTime.Format(time.RFC3339),
		Status:        e.Status,
		DisplayStatus: display,
		Color:         StatusColor(display, brandColor),
		Top:           top,
		Height:        height,
	}
	if e.SeriesID != nil {
		ce.SeriesID = *e.SeriesID
	}
	return ce
}

// DeriveDisplayStatus 推导展示状态
// 显式标记（cancelled/delayed/completed）优先；否则已结束的事件展示为 completed
func DeriveDisplayStatus(status string, endTime, now time.Time) string {
	if status != model.EventStatusScheduled && status != "" {
		return status
	}
	if endTime.Before(now) {
		return model.EventStatusCompleted
	}
	return model.EventStatusScheduled
}

// StatusColor 展示状态对应的强调色；scheduled 取球队主色
func StatusColor(displayStatus, brandColor string) string {
	switch displayStatus {
	case model.EventStatusDelayed:
		return colorDelayed
	case model.EventStatusCancelled:
		return colorCancelled
	case model.EventStatusCompleted:
		return colorCompleted
	default:
		return brandColor
	}
}

// EventGeometry 计算事件块相对视图窗口顶部的像素偏移与高度
// 偏移按距窗口起始小时的分钟数换算，早于窗口的部分截断为 0；
// 高度按事件时长换算，不随偏移截断而缩减
func EventGeometry(start, end time.Time, startHour, pixelsPerHour int) (top, height int) {
	windowStart := time.Date(start.Year(), start.Month(), start.Day(), startHour, 0, 0, 0, start.Location())

	offsetMinutes := int(start.Sub(windowStart).Minutes())
	if offsetMinutes < 0 {
		offsetMinutes = 0
	}
	top = offsetMinutes * pixelsPerHour / 60

	durationMinutes := int(end.Sub(start).Minutes())
	height = durationMinutes * pixelsPerHour / 60
	return top, height
}
