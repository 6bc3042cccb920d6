package model

import "time"

// ── 赛季状态 ──
const (
	SeasonStatusUpcoming = "upcoming"
	SeasonStatusActive   = "active"
	SeasonStatusArchived = "archived"
)

// Season 赛季表 — 对应 seasons
// end_date 是每周循环展开的硬上界；展示状态由当前日期动态推导，核心不回写
type Season struct {
	SeasonID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"season_id"`
	TeamID      string    `gorm:"type:uuid;not null"                             json:"team_id"`
	Name        string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Discipline  string    `gorm:"type:varchar(50);not null"                      json:"discipline"`
	Description string    `gorm:"type:varchar(500)"                              json:"description,omitempty"`
	StartDate   time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null"                             json:"end_date"`
	Status      string    `gorm:"type:varchar(20);not null;default:'upcoming'"   json:"status"`
	BaseModel
}

// TableName 指定表名
func (Season) TableName() string { return "seasons" }

// DisplayStatus 按当前日期推导赛季展示状态
// 开始日期之前为 upcoming，结束日期（含当日）之前为 active，之后为 archived
func (s *Season) DisplayStatus(now time.Time) string {
	if now.Before(s.StartDate) {
		return SeasonStatusUpcoming
	}
	if now.After(EndOfDay(s.EndDate)) {
		return SeasonStatusArchived
	}
	return SeasonStatusActive
}

// EndOfDay 返回日期所在自然日的最后一刻（23:59:59.999999999）
// 赛季上界按"含当日"语义处理时使用
func EndOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999999999, d.Location())
}
