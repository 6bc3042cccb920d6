package dto

// ── 训练组模块 DTO ──

// GroupResponse 训练组信息响应
type GroupResponse struct {
	ID       string `json:"id"`
	SeasonID string `json:"season_id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}
