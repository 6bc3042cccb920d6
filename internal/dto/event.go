package dto

// ── 事件模块 DTO ──

// CreateEventRequest 创建事件请求
// type=weekly 时按 7 天步长展开至赛季结束日（含当日）；title 为空时回退为场地名
type CreateEventRequest struct {
	Title      string `json:"title"       binding:"omitempty,max=200"`
	GroupID    string `json:"group_id"    binding:"required,uuid"`
	FacilityID string `json:"facility_id" binding:"required,uuid"`
	SeasonID   string `json:"season_id"   binding:"required,uuid"`
	StartTime  string `json:"start_time"  binding:"required"` // RFC 3339
	EndTime    string `json:"end_time"    binding:"required"` // RFC 3339
	Type       string `json:"type"        binding:"omitempty,oneof=regular weekly"`
}

// UpdateEventRequest 更新单个事件实例请求（部分字段补丁）
// 仅更新提供的字段；系列中的兄弟实例不受影响
type UpdateEventRequest struct {
	Title      *string `json:"title"       binding:"omitempty,min=1,max=200"`
	FacilityID *string `json:"facility_id" binding:"omitempty,uuid"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	Status     *string `json:"status"      binding:"omitempty,oneof=scheduled completed cancelled delayed"`
}

// DelayEventRequest 延期（改期）请求
// 仅作用于目标实例，状态强制置为 delayed
type DelayEventRequest struct {
	StartTime string `json:"start_time" binding:"required"` // RFC 3339
	EndTime   string `json:"end_time"   binding:"required"` // RFC 3339
}

// EventResponse 事件信息响应
type EventResponse struct {
	ID         string `json:"id"`
	SeasonID   string `json:"season_id"`
	GroupID    string `json:"group_id"`
	FacilityID string `json:"facility_id"`
	Title      string `json:"title"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Type       string `json:"type"`
	SeriesID   string `json:"series_id,omitempty"`
	Status     string `json:"status"`
}

// CreateEventResponse 创建事件响应
// 每周系列返回全部生成实例（按开始时间升序，首个为请求原始时间）
type CreateEventResponse struct {
	Count  int             `json:"count"`
	Events []EventResponse `json:"events"`
}

// DeleteEventResponse 删除事件响应
type DeleteEventResponse struct {
	Deleted int64 `json:"deleted"`
}
