package model

// Group 训练组表 — 对应 groups
// 核心仅做存在性校验，组员/教练管理属于外部协作方
type Group struct {
	GroupID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"group_id"`
	TeamID   string `gorm:"type:uuid;not null"                             json:"team_id"`
	SeasonID string `gorm:"type:uuid;not null"                             json:"season_id"`
	Name     string `gorm:"type:varchar(100);not null"                     json:"name"`
	Category string `gorm:"type:varchar(50)"                               json:"category,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Group) TableName() string { return "groups" }
