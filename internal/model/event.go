package model

import "time"

// ── 事件类型 ──
const (
	EventTypeRegular = "regular" // 单次训练
	EventTypeWeekly  = "weekly"  // 每周循环系列中的一次
)

// ── 事件持久化状态 ──
// completed 通常由读取侧按 end_time < now 推导，仅在人工标记时落库
const (
	EventStatusScheduled = "scheduled"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
	EventStatusDelayed   = "delayed"
)

// Event 训练日程事件表 — 对应 events
// 一次每周循环请求生成的全部实例共享同一 series_id；单次事件 series_id 为 NULL
type Event struct {
	EventID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	TeamID     string    `gorm:"type:uuid;not null"                             json:"team_id"`
	SeasonID   string    `gorm:"type:uuid;not null;index:idx_events_season_start,priority:1" json:"season_id"`
	GroupID    string    `gorm:"type:uuid;not null"                             json:"group_id"`
	FacilityID string    `gorm:"type:uuid;not null"                             json:"facility_id"`
	Title      string    `gorm:"type:varchar(200);not null"                     json:"title"`
	StartTime  time.Time `gorm:"not null;index:idx_events_season_start,priority:2" json:"start_time"`
	EndTime    time.Time `gorm:"not null"                                       json:"end_time"`
	Type       string    `gorm:"type:varchar(20);not null;default:'regular'"    json:"type"`
	SeriesID   *string   `gorm:"type:uuid;index"                                json:"series_id,omitempty"`
	Status     string    `gorm:"type:varchar(20);not null;default:'scheduled'"  json:"status"`
	BaseModel

	// 关联
	Group    *Group    `gorm:"foreignKey:GroupID;references:GroupID"       json:"group,omitempty"`
	Facility *Facility `gorm:"foreignKey:FacilityID;references:FacilityID" json:"facility,omitempty"`
}

// TableName 指定表名
func (Event) TableName() string { return "events" }

// IsSeries 事件是否属于某个每周循环系列
func (e *Event) IsSeries() bool {
	return e.SeriesID != nil && *e.SeriesID != ""
}
