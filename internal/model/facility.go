package model

// Facility 场地表 — 对应 facilities
// 日历视图中每个场地对应一条竖直泳道
type Facility struct {
	FacilityID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"facility_id"`
	TeamID     string `gorm:"type:uuid;not null"                             json:"team_id"`
	Name       string `gorm:"type:varchar(100);not null"                     json:"name"`
	Discipline string `gorm:"type:varchar(50);not null"                      json:"discipline"`
	BaseModel
}

// TableName 指定表名
func (Facility) TableName() string { return "facilities" }
