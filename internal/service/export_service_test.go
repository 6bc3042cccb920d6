package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/subaru7958/sports-team-manager/internal/model"
	"github.com/subaru7958/sports-team-manager/internal/repository"
)

func setupTestExportService(t *testing.T) (ExportService, *mockSeasonRepo, *mockEventRepo) {
	t.Helper()

	seasonR := newMockSeasonRepo()
	eventR := newMockEventRepo()
	repo := &repository.Repository{
		Team:     newMockTeamRepo(),
		Season:   seasonR,
		Group:    newMockGroupRepo(),
		Facility: newMockFacilityRepo(),
		Event:    eventR,
	}

	seasonR.seasons["season-1"] = &model.Season{
		SeasonID:  "season-1",
		TeamID:    "team-1",
		Name:      "2024春季",
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	return NewExportService(repo, zap.NewNop()), seasonR, eventR
}

func addExportEvent(eventR *mockEventRepo, id, status string, start time.Time) {
	eventR.events[id] = &model.Event{
		EventID:    id,
		TeamID:     "team-1",
		SeasonID:   "season-1",
		GroupID:    "group-1",
		FacilityID: "fac-1",
		Title:      "周中训练",
		StartTime:  start,
		EndTime:    start.Add(90 * time.Minute),
		Type:       model.EventTypeWeekly,
		Status:     status,
	}
}

func TestExportService_XLSX_Success(t *testing.T) {
	svc, _, eventR := setupTestExportService(t)
	addExportEvent(eventR, "evt-1", model.EventStatusScheduled, time.Date(2024, 2, 5, 18, 0, 0, 0, time.UTC))

	buf, filename, err := svc.ExportScheduleXLSX(context.Background(), "season-1")
	if err != nil {
		t.Fatalf("ExportScheduleXLSX 应成功: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Excel 内容不应为空")
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名应以 .xlsx 结尾，实际=%s", filename)
	}
	if !strings.Contains(filename, "2024春季") {
		t.Errorf("文件名应包含赛季名，实际=%s", filename)
	}
}

func TestExportService_XLSX_NoEvents(t *testing.T) {
	svc, _, _ := setupTestExportService(t)

	_, _, err := svc.ExportScheduleXLSX(context.Background(), "season-1")
	if !errors.Is(err, ErrExportNoEvents) {
		t.Errorf("期望 ErrExportNoEvents，实际: %v", err)
	}
}

func TestExportService_XLSX_SeasonNotFound(t *testing.T) {
	svc, _, _ := setupTestExportService(t)

	_, _, err := svc.ExportScheduleXLSX(context.Background(), "season-miss")
	if !errors.Is(err, ErrExportSeasonNotFound) {
		t.Errorf("期望 ErrExportSeasonNotFound，实际: %v", err)
	}
}

func TestExportService_ICS_SkipsCancelled(t *testing.T) {
	svc, _, eventR := setupTestExportService(t)
	addExportEvent(eventR, "evt-keep", model.EventStatusScheduled, time.Date(2024, 2, 5, 18, 0, 0, 0, time.UTC))
	addExportEvent(eventR, "evt-skip", model.EventStatusCancelled, time.Date(2024, 2, 12, 18, 0, 0, 0, time.UTC))

	buf, filename, err := svc.ExportScheduleICS(context.Background(), "season-1")
	if err != nil {
		t.Fatalf("ExportScheduleICS 应成功: %v", err)
	}
	content := buf.String()
	if !strings.Contains(content, "BEGIN:VCALENDAR") {
		t.Error("输出应为 iCalendar 格式")
	}
	if !strings.Contains(content, "evt-keep@sports-team-manager") {
		t.Error("已排期事件应出现在日历中")
	}
	if strings.Contains(content, "evt-skip@sports-team-manager") {
		t.Error("已取消事件不应进入订阅日历")
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("文件名应以 .ics 结尾，实际=%s", filename)
	}
}
