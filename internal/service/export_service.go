package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/subaru7958/sports-team-manager/internal/model"
	"github.com/subaru7958/sports-team-manager/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportSeasonNotFound = errors.New("赛季不存在")
	ErrExportNoEvents       = errors.New("该赛季暂无训练日程")
	ErrExportGenerateFail   = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - Excel 格式：单 Sheet，一行一个事件实例，按开始时间升序
//   - ICS 格式：每个事件实例一条 VEVENT（展开后的实例，不写 RRULE）
type ExportService interface {
	// ExportScheduleXLSX 导出赛季训练日程为 Excel
	ExportScheduleXLSX(ctx context.Context, seasonID string) (*bytes.Buffer, string, error)
	// ExportScheduleICS 导出赛季训练日程为 iCalendar
	ExportScheduleICS(ctx context.Context, seasonID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) loadSchedule(ctx context.Context, seasonID string) (*model.Season, []model.Event, error) {
	season, err := s.repo.Season.GetByID(ctx, seasonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrExportSeasonNotFound
		}
		s.logger.Error("查询赛季失败", zap.String("id", seasonID), zap.Error(err))
		return nil, nil, err
	}

	events, err := s.repo.Event.ListByRange(ctx, seasonID, nil, nil)
	if err != nil {
		s.logger.Error("查询事件失败", zap.String("season_id", seasonID), zap.Error(err))
		return nil, nil, err
	}
	if len(events) == 0 {
		return nil, nil, ErrExportNoEvents
	}
	return season, events, nil
}

// ═══════════════════════════════════════════════════════════
// ExportScheduleXLSX — 导出训练日程为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet"训练日程"
//   - 表头: | 日期 | 开始 | 结束 | 标题 | 训练组 | 场地 | 类型 | 状态 |
//   - 数据行按开始时间升序（仓储层已排序）

func (s *exportService) ExportScheduleXLSX(ctx context.Context, seasonID string) (*bytes.Buffer, string, error) {
	season, events, err := s.loadSchedule(ctx, seasonID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "训练日程"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "C", 8)
	f.SetColWidth(sheetName, "D", "D", 24)
	f.SetColWidth(sheetName, "E", "F", 16)
	f.SetColWidth(sheetName, "G", "H", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — 训练日程", season.Name))
	f.MergeCell(sheetName, "A1", "H1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	headers := []string{"日期", "开始", "结束", "标题", "训练组", "场地", "类型", "状态"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, fmt.Sprintf("%s2", col), h)
	}

	statusNames := map[string]string{
		model.EventStatusScheduled: "已排期",
		model.EventStatusCompleted: "已完成",
		model.EventStatusCancelled: "已取消",
		model.EventStatusDelayed:   "已延期",
	}
	typeNames := map[string]string{
		model.EventTypeRegular: "单次",
		model.EventTypeWeekly:  "每周",
	}

	row := 3
	for i := range events {
		e := &events[i]

		groupName := e.GroupID
		if e.Group != nil {
			groupName = e.Group.Name
		}
		facilityName := e.FacilityID
		if e.Facility != nil {
			facilityName = e.Facility.Name
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.StartTime.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.StartTime.Format("15:04"))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), e.EndTime.Format("15:04"))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), e.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), groupName)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), facilityName)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), typeNames[e.Type])
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), statusNames[e.Status])
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("训练日程_%s.xlsx", season.Name)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportScheduleICS — 导出训练日程为 iCalendar (RFC 5545)
// ═══════════════════════════════════════════════════════════
//
// 每个事件实例输出一条独立 VEVENT：循环已在创建时展开成实例，
// 导出端不再合成 RRULE，改期/取消的单个实例因此天然正确。

func (s *exportService) ExportScheduleICS(ctx context.Context, seasonID string) (*bytes.Buffer, string, error) {
	season, events, err := s.loadSchedule(ctx, seasonID)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//sports-team-manager//schedule//ZH")
	cal.SetName(fmt.Sprintf("%s 训练日程", season.Name))

	for i := range events {
		e := &events[i]
		if e.Status == model.EventStatusCancelled {
			continue // 已取消的实例不进入订阅日历
		}

		evt := cal.AddEvent(fmt.Sprintf("%s@sports-team-manager", e.EventID))
		evt.SetCreatedTime(e.CreatedAt)
		evt.SetDtStampTime(e.UpdatedAt)
		evt.SetStartAt(e.StartTime)
		evt.SetEndAt(e.EndTime)
		evt.SetSummary(e.Title)
		if e.Facility != nil {
			evt.SetLocation(e.Facility.Name)
		}
		if e.Group != nil {
			evt.SetDescription(fmt.Sprintf("训练组: %s", e.Group.Name))
		}
	}

	buf := new(bytes.Buffer)
	if err := cal.SerializeTo(buf); err != nil {
		s.logger.Error("序列化 ICS 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("训练日程_%s.ics", season.Name)
	return buf, filename, nil
}
