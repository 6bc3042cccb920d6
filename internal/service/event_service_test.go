package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/subaru7958/sports-team-manager/internal/dto"
	"github.com/subaru7958/sports-team-manager/internal/model"
	"github.com/subaru7958/sports-team-manager/internal/repository"
)

// ── 测试辅助 ──

type eventTestEnv struct {
	svc     EventService
	eventR  *mockEventRepo
	seasonR *mockSeasonRepo
	groupR  *mockGroupRepo
	facR    *mockFacilityRepo
}

func setupTestEventService(t *testing.T) *eventTestEnv {
	t.Helper()

	eventR := newMockEventRepo()
	seasonR := newMockSeasonRepo()
	groupR := newMockGroupRepo()
	facR := newMockFacilityRepo()

	repo := &repository.Repository{
		Team:     newMockTeamRepo(),
		Season:   seasonR,
		Group:    groupR,
		Facility: facR,
		Event:    eventR,
	}

	// 通用测试目录：赛季 2024-01-01 ~ 2024-01-28
	seasonR.seasons["season-1"] = &model.Season{
		SeasonID:  "season-1",
		TeamID:    "team-1",
		Name:      "2024冬季赛季",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC),
	}
	groupR.groups["group-1"] = &model.Group{
		GroupID:  "group-1",
		TeamID:   "team-1",
		SeasonID: "season-1",
		Name:     "U15",
	}
	facR.facilities["fac-1"] = &model.Facility{
		FacilityID: "fac-1",
		TeamID:     "team-1",
		Name:       "1号场",
		Discipline: "football",
	}
	facR.order = append(facR.order, "fac-1")

	return &eventTestEnv{
		svc:     NewEventService(repo, zap.NewNop()),
		eventR:  eventR,
		seasonR: seasonR,
		groupR:  groupR,
		facR:    facR,
	}
}

func weeklyCreateReq() *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Title:      "周一训练",
		GroupID:    "group-1",
		FacilityID: "fac-1",
		SeasonID:   "season-1",
		StartTime:  "2024-01-01T18:00:00Z",
		EndTime:    "2024-01-01T19:30:00Z",
		Type:       model.EventTypeWeekly,
	}
}

// ── Create 测试 ──

func TestEventService_Create_WeeklySeries(t *testing.T) {
	env := setupTestEventService(t)

	result, err := env.svc.Create(context.Background(), "team-1", weeklyCreateReq())
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	// 赛季止于1月28日 → 1/1, 1/8, 1/15, 1/22 共 4 节
	if result.Count != 4 {
		t.Fatalf("期望4个实例，实际=%d", result.Count)
	}
	seriesID := result.Events[0].SeriesID
	if seriesID == "" {
		t.Fatal("每周系列应分配 series_id")
	}
	for i, e := range result.Events {
		if e.SeriesID != seriesID {
			t.Errorf("实例%d series_id 不一致", i)
		}
		if e.Status != model.EventStatusScheduled {
			t.Errorf("实例%d 期望状态scheduled，实际=%s", i, e.Status)
		}
	}
	if len(env.eventR.events) != 4 {
		t.Errorf("期望落库4条，实际=%d", len(env.eventR.events))
	}
}

func TestEventService_Create_Regular(t *testing.T) {
	env := setupTestEventService(t)

	req := weeklyCreateReq()
	req.Type = model.EventTypeRegular

	result, err := env.svc.Create(context.Background(), "team-1", req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("单次事件期望1个实例，实际=%d", result.Count)
	}
	if result.Events[0].SeriesID != "" {
		t.Error("单次事件不应分配 series_id")
	}
}

func TestEventService_Create_EqualTimesRejected(t *testing.T) {
	env := setupTestEventService(t)

	req := weeklyCreateReq()
	req.EndTime = req.StartTime

	_, err := env.svc.Create(context.Background(), "team-1", req)
	if !errors.Is(err, ErrEventTimeOrder) {
		t.Errorf("期望 ErrEventTimeOrder，实际: %v", err)
	}
	if len(env.eventR.events) != 0 {
		t.Errorf("校验失败不应落库，实际=%d", len(env.eventR.events))
	}
}

func TestEventService_Create_TitleFallsBackToFacility(t *testing.T) {
	env := setupTestEventService(t)

	req := weeklyCreateReq()
	req.Title = "   "
	req.Type = model.EventTypeRegular

	result, err := env.svc.Create(context.Background(), "team-1", req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Events[0].Title != "1号场" {
		t.Errorf("空标题应回退为场地名，实际=%s", result.Events[0].Title)
	}
}

func TestEventService_Create_UnknownGroup(t *testing.T) {
	env := setupTestEventService(t)

	req := weeklyCreateReq()
	req.GroupID = "group-miss"

	_, err := env.svc.Create(context.Background(), "team-1", req)
	if !errors.Is(err, ErrEventGroupNotFound) {
		t.Errorf("期望 ErrEventGroupNotFound，实际: %v", err)
	}
}

func TestEventService_Create_BatchFailureLeavesNothing(t *testing.T) {
	env := setupTestEventService(t)
	env.eventR.batchCreateErr = errors.New("插入冲突")

	_, err := env.svc.Create(context.Background(), "team-1", weeklyCreateReq())
	if !errors.Is(err, ErrEventBatchInsert) {
		t.Errorf("期望 ErrEventBatchInsert，实际: %v", err)
	}
	if len(env.eventR.events) != 0 {
		t.Errorf("批量失败应零实例落库，实际=%d", len(env.eventR.events))
	}
}

// ── Delay 测试 ──

func TestEventService_Delay_OnlyTargetInstance(t *testing.T) {
	env := setupTestEventService(t)

	created, err := env.svc.Create(context.Background(), "team-1", weeklyCreateReq())
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	target := created.Events[1] // 1月8日实例
	_, err = env.svc.Delay(context.Background(), target.ID, &dto.DelayEventRequest{
		StartTime: "2024-01-09T18:00:00Z",
		EndTime:   "2024-01-09T19:30:00Z",
	})
	if err != nil {
		t.Fatalf("Delay 应成功: %v", err)
	}

	delayed, _ := env.eventR.GetByID(context.Background(), target.ID)
	if delayed.Status != model.EventStatusDelayed {
		t.Errorf("目标实例状态应为delayed，实际=%s", delayed.Status)
	}
	if delayed.StartTime.Day() != 9 {
		t.Errorf("目标实例应改为1月9日，实际=%s", delayed.StartTime.Format("2006-01-02"))
	}

	// 兄弟实例完全不受影响
	for _, e := range created.Events {
		if e.ID == target.ID {
			continue
		}
		sibling, _ := env.eventR.GetByID(context.Background(), e.ID)
		if sibling.Status != model.EventStatusScheduled {
			t.Errorf("兄弟实例 %s 状态不应改变，实际=%s", e.ID, sibling.Status)
		}
		if sibling.StartTime.Format(time.RFC3339) != e.StartTime {
			t.Errorf("兄弟实例 %s 时间不应改变", e.ID)
		}
	}
}

func TestEventService_Delay_BeyondSeasonEndAllowed(t *testing.T) {
	env := setupTestEventService(t)

	created, _ := env.svc.Create(context.Background(), "team-1", weeklyCreateReq())
	target := created.Events[3]

	// 补课排在赛季窗口之外：不做上界校验
	resp, err := env.svc.Delay(context.Background(), target.ID, &dto.DelayEventRequest{
		StartTime: "2024-02-10T18:00:00Z",
		EndTime:   "2024-02-10T19:30:00Z",
	})
	if err != nil {
		t.Fatalf("赛季外延期应允许: %v", err)
	}
	if resp.Status != model.EventStatusDelayed {
		t.Errorf("期望状态delayed，实际=%s", resp.Status)
	}
}

func TestEventService_Delay_EqualTimesRejected(t *testing.T) {
	env := setupTestEventService(t)

	created, _ := env.svc.Create(context.Background(), "team-1", weeklyCreateReq())
	_, err := env.svc.Delay(context.Background(), created.Events[0].ID, &dto.DelayEventRequest{
		StartTime: "2024-01-09T18:00:00Z",
		EndTime:   "2024-01-09T18:00:00Z",
	})
	if !errors.Is(err, ErrEventTimeOrder) {
		t.Errorf("期望 ErrEventTimeOrder，实际: %v", err)
	}
}

// ── Update 测试 ──

func TestEventService_Update_PartialPatch(t *testing.T) {
	env := setupTestEventService(t)

	created, _ := env.svc.Create(context.Background(), "team-1", weeklyCreateReq())
	target := created.Events[0]

	newTitle := "改名训练"
	resp, err := env.svc.Update(context.Background(), target.ID, &dto.UpdateEventRequest{
		Title: &newTitle,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if resp.Title != "改名训练" {
		t.Errorf("期望Title=改名训练，实际=%s", resp.Title)
	}
	// 未提供的字段保持原值
	if resp.StartTime != target.StartTime {
		t.Errorf("未提供的开始时间不应改变，实际=%s", resp.StartTime)
	}
	if resp.Status != model.EventStatusScheduled {
		t.Errorf("未提供的状态不应改变，实际=%s", resp.Status)
	}
}

func TestEventService_Update_MergedTimeValidated(t *testing.T) {
	env := setupTestEventService(t)

	created, _ := env.svc.Create(context.Background(), "team-1", weeklyCreateReq())

	// 仅更新开始时间，使其晚于原结束时间 → 补丁合并后校验失败
	badStart := "2024-01-01T20:00:00Z"
	_, err := env.svc.Update(context.Background(), created.Events[0].ID, &dto.UpdateEventRequest{
		StartTime: &badStart,
	})
	if !errors.Is(err, ErrEventTimeOrder) {
		t.Errorf("期望 ErrEventTimeOrder，实际: %v", err)
	}
}

func TestEventService_Update_UnknownFacility(t *testing.T) {
	env := setupTestEventService(t)

	created, _ := env.svc.Create(context.Background(), "team-1", weeklyCreateReq())
	missing := "fac-miss"
	_, err := env.svc.Update(context.Background(), created.Events[0].ID, &dto.UpdateEventRequest{
		FacilityID: &missing,
	})
	if !errors.Is(err, ErrEventFacilityNotFound) {
		t.Errorf("期望 ErrEventFacilityNotFound，实际: %v", err)
	}
}

// ── Delete 测试 ──

func TestEventService_Delete_SingleInstance(t *testing.T) {
	env := setupTestEventService(t)

	created, _ := env.svc.Create(context.Background(), "team-1", weeklyCreateReq())

	resp, err := env.svc.Delete(context.Background(), created.Events[1].ID, false)
	if err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if resp.Deleted != 1 {
		t.Errorf("期望删除1条，实际=%d", resp.Deleted)
	}
	if len(env.eventR.events) != 3 {
		t.Errorf("期望剩余3条，实际=%d", len(env.eventR.events))
	}
}

func TestEventService_Delete_SeriesCascade(t *testing.T) {
	env := setupTestEventService(t)

	// 两个独立系列 + 一个单次事件
	first, _ := env.svc.Create(context.Background(), "team-1", weeklyCreateReq())

	otherReq := weeklyCreateReq()
	otherReq.StartTime = "2024-01-03T18:00:00Z"
	otherReq.EndTime = "2024-01-03T19:00:00Z"
	env.svc.Create(context.Background(), "team-1", otherReq)

	singleReq := weeklyCreateReq()
	singleReq.Type = model.EventTypeRegular
	env.svc.Create(context.Background(), "team-1", singleReq)

	total := len(env.eventR.events)

	resp, err := env.svc.Delete(context.Background(), first.Events[0].ID, true)
	if err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if resp.Deleted != int64(first.Count) {
		t.Errorf("期望级联删除%d条，实际=%d", first.Count, resp.Deleted)
	}
	if len(env.eventR.events) != total-first.Count {
		t.Errorf("其他系列与单次事件不应受影响，剩余=%d", len(env.eventR.events))
	}
}

func TestEventService_Delete_SeriesFlagIgnoredForRegular(t *testing.T) {
	env := setupTestEventService(t)

	req := weeklyCreateReq()
	req.Type = model.EventTypeRegular
	created, _ := env.svc.Create(context.Background(), "team-1", req)

	// 单次事件带 series 标记：仅删除自身
	resp, err := env.svc.Delete(context.Background(), created.Events[0].ID, true)
	if err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if resp.Deleted != 1 {
		t.Errorf("期望删除1条，实际=%d", resp.Deleted)
	}
}

func TestEventService_Delete_NotFound(t *testing.T) {
	env := setupTestEventService(t)

	_, err := env.svc.Delete(context.Background(), "evt-miss", false)
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("期望 ErrEventNotFound，实际: %v", err)
	}
}
