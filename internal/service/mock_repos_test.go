package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/subaru7958/sports-team-manager/internal/model"
)

// ── Mock TeamRepository ──

type mockTeamRepo struct {
	teams map[string]*model.Team
}

func newMockTeamRepo() *mockTeamRepo {
	return &mockTeamRepo{teams: make(map[string]*model.Team)}
}

func (m *mockTeamRepo) GetByID(_ context.Context, id string) (*model.Team, error) {
	if t, ok := m.teams[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeamRepo) GetByUserID(_ context.Context, userID string) (*model.Team, error) {
	for _, t := range m.teams {
		if strings.EqualFold(t.UserID, userID) {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock SeasonRepository ──

type mockSeasonRepo struct {
	seasons map[string]*model.Season
}

func newMockSeasonRepo() *mockSeasonRepo {
	return &mockSeasonRepo{seasons: make(map[string]*model.Season)}
}

func (m *mockSeasonRepo) Create(_ context.Context, season *model.Season) error {
	if season.SeasonID == "" {
		season.SeasonID = "season-" + season.Name
	}
	m.seasons[season.SeasonID] = season
	return nil
}

func (m *mockSeasonRepo) GetByID(_ context.Context, id string) (*model.Season, error) {
	if s, ok := m.seasons[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSeasonRepo) ListByTeam(_ context.Context, teamID string) ([]model.Season, error) {
	var result []model.Season
	for _, s := range m.seasons {
		if s.TeamID == teamID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartDate.After(result[j].StartDate)
	})
	return result, nil
}

func (m *mockSeasonRepo) Delete(_ context.Context, id string) error {
	delete(m.seasons, id)
	return nil
}

// ── Mock GroupRepository ──

type mockGroupRepo struct {
	groups map[string]*model.Group
}

func newMockGroupRepo() *mockGroupRepo {
	return &mockGroupRepo{groups: make(map[string]*model.Group)}
}

func (m *mockGroupRepo) GetByID(_ context.Context, id string) (*model.Group, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) ListBySeason(_ context.Context, seasonID string) ([]model.Group, error) {
	var result []model.Group
	for _, g := range m.groups {
		if g.SeasonID == seasonID {
			result = append(result, *g)
		}
	}
	return result, nil
}

func (m *mockGroupRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m.groups[id]
	return ok, nil
}

// ── Mock FacilityRepository ──

type mockFacilityRepo struct {
	facilities map[string]*model.Facility
	order      []string // 保持插入顺序，模拟 name ASC 需要时由测试自行命名
}

func newMockFacilityRepo() *mockFacilityRepo {
	return &mockFacilityRepo{facilities: make(map[string]*model.Facility)}
}

func (m *mockFacilityRepo) Create(_ context.Context, facility *model.Facility) error {
	if facility.FacilityID == "" {
		facility.FacilityID = "fac-" + facility.Name
	}
	m.facilities[facility.FacilityID] = facility
	m.order = append(m.order, facility.FacilityID)
	return nil
}

func (m *mockFacilityRepo) GetByID(_ context.Context, id string) (*model.Facility, error) {
	if f, ok := m.facilities[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacilityRepo) ListByTeam(_ context.Context, teamID string, discipline string) ([]model.Facility, error) {
	var result []model.Facility
	for _, id := range m.order {
		f, ok := m.facilities[id]
		if !ok || f.TeamID != teamID {
			continue
		}
		if discipline != "" && f.Discipline != discipline {
			continue
		}
		result = append(result, *f)
	}
	return result, nil
}

func (m *mockFacilityRepo) ExistsName(_ context.Context, teamID, discipline, name string) (bool, error) {
	for _, f := range m.facilities {
		if f.TeamID == teamID && f.Discipline == discipline && strings.EqualFold(f.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockFacilityRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m.facilities[id]
	return ok, nil
}

func (m *mockFacilityRepo) Delete(_ context.Context, id string) error {
	delete(m.facilities, id)
	return nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events map[string]*model.Event
	nextID int

	// 测试注入的批量插入失败
	batchCreateErr error
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*model.Event)}
}

func (m *mockEventRepo) BatchCreate(_ context.Context, events []model.Event) error {
	if m.batchCreateErr != nil {
		return m.batchCreateErr
	}
	for i := range events {
		if events[i].EventID == "" {
			m.nextID++
			events[i].EventID = fmt.Sprintf("evt-%03d", m.nextID)
		}
		cp := events[i]
		m.events[cp.EventID] = &cp
	}
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id string) (*model.Event, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) ListByRange(_ context.Context, seasonID string, start, end *time.Time) ([]model.Event, error) {
	var result []model.Event
	for _, e := range m.events {
		if e.SeasonID != seasonID {
			continue
		}
		if start != nil && end != nil {
			if e.StartTime.Before(*start) || e.StartTime.After(*end) {
				continue
			}
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result, nil
}

func (m *mockEventRepo) ListBySeries(_ context.Context, seriesID string) ([]model.Event, error) {
	var result []model.Event
	for _, e := range m.events {
		if e.SeriesID != nil && *e.SeriesID == seriesID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result, nil
}

func (m *mockEventRepo) Update(_ context.Context, event *model.Event) error {
	m.events[event.EventID] = event
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, id string) error {
	delete(m.events, id)
	return nil
}

func (m *mockEventRepo) DeleteBySeries(_ context.Context, seriesID string) (int64, error) {
	var count int64
	for id, e := range m.events {
		if e.SeriesID != nil && *e.SeriesID == seriesID {
			delete(m.events, id)
			count++
		}
	}
	return count, nil
}
