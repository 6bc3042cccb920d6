package dto

// ── 赛季模块 DTO ──

// CreateSeasonRequest 创建赛季请求
type CreateSeasonRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=100"`
	Discipline  string `json:"discipline"  binding:"required,min=2,max=50"`
	Description string `json:"description" binding:"omitempty,max=500"`
	StartDate   string `json:"start_date"  binding:"required"` // "2024-01-01"
	EndDate     string `json:"end_date"    binding:"required"` // "2024-06-30"
}

// SeasonResponse 赛季信息响应
// status 为按当前日期推导的展示状态（upcoming/active/archived）
type SeasonResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Discipline  string `json:"discipline"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}
