package dto

// ── 场地模块 DTO ──

// CreateFacilityRequest 创建场地请求
type CreateFacilityRequest struct {
	Name       string `json:"name"       binding:"required,min=1,max=100"`
	Discipline string `json:"discipline" binding:"required,min=2,max=50"`
}

// FacilityResponse 场地信息响应
type FacilityResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Discipline string `json:"discipline"`
}
