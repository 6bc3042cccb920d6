package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 有效期（秒）
	Team         TeamResponse `json:"team"`
}

// TeamResponse 球队信息响应（脱敏）
type TeamResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PrimaryColor string   `json:"primary_color"`
	Disciplines  []string `json:"disciplines"`
}
