package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/subaru7958/sports-team-manager/internal/dto"
	"github.com/subaru7958/sports-team-manager/internal/service"
	"github.com/subaru7958/sports-team-manager/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// Logout 登出（当前 Token 加入黑名单）
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "登出成功", nil)
}

// GetCurrentTeam 获取当前登录球队信息
// GET /api/v1/auth/me
func (h *AuthHandler) GetCurrentTeam(c *gin.Context) {
	teamID, ok := MustGetTeamID(c)
	if !ok {
		return
	}

	team, err := h.authSvc.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, team)
}

// handleAuthError 统一处理认证模块业务错误
func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, 11001, "邮箱或密码错误")
	case errors.Is(err, service.ErrTeamNotFound):
		response.NotFound(c, 11002, "球队不存在")
	default:
		response.InternalError(c)
	}
}
