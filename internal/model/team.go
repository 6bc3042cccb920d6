package model

// Team 球队（运动俱乐部）表 — 对应 teams
// 单管理员模式：user_id 为管理员登录邮箱
type Team struct {
	TeamID       string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"team_id"`
	Name         string      `gorm:"type:varchar(100);not null"                     json:"name"`
	UserID       string      `gorm:"type:varchar(254);not null;uniqueIndex"         json:"user_id"`
	PasswordHash string      `gorm:"type:varchar(100);not null"                     json:"-"`
	PrimaryColor string      `gorm:"type:varchar(20);not null;default:'#0df2f2'"    json:"primary_color"`
	Disciplines  StringArray `gorm:"type:text[];not null;default:'{}'"              json:"disciplines"`
	BaseModel
}

// TableName 指定表名
func (Team) TableName() string { return "teams" }
