package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/subaru7958/sports-team-manager/internal/dto"
	"github.com/subaru7958/sports-team-manager/internal/service"
	"github.com/subaru7958/sports-team-manager/pkg/response"
)

// SeasonHandler 赛季模块 HTTP 处理器
type SeasonHandler struct {
	seasonSvc service.SeasonService
}

// NewSeasonHandler 创建 SeasonHandler
func NewSeasonHandler(seasonSvc service.SeasonService) *SeasonHandler {
	return &SeasonHandler{seasonSvc: seasonSvc}
}

// ListSeasons 获取赛季列表
// GET /api/v1/seasons
func (h *SeasonHandler) ListSeasons(c *gin.Context) {
	teamID, ok := MustGetTeamID(c)
	if !ok {
		return
	}

	seasons, err := h.seasonSvc.List(c.Request.Context(), teamID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": seasons})
}

// GetSeason 获取赛季详情
// GET /api/v1/seasons/:id
func (h *SeasonHandler) GetSeason(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "赛季ID不能为空")
		return
	}

	season, err := h.seasonSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleSeasonError(c, err)
		return
	}

	response.OK(c, season)
}

// CreateSeason 创建赛季
// POST /api/v1/seasons
func (h *SeasonHandler) CreateSeason(c *gin.Context) {
	var req dto.CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	teamID, ok := MustGetTeamID(c)
	if !ok {
		return
	}

	season, err := h.seasonSvc.Create(c.Request.Context(), teamID, &req)
	if err != nil {
		h.handleSeasonError(c, err)
		return
	}

	response.Created(c, season)
}

// DeleteSeason 删除赛季
// DELETE /api/v1/seasons/:id
func (h *SeasonHandler) DeleteSeason(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "赛季ID不能为空")
		return
	}

	if err := h.seasonSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleSeasonError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleSeasonError 统一处理赛季模块业务错误
func (h *SeasonHandler) handleSeasonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSeasonNotFound):
		response.NotFound(c, 14001, "赛季不存在")
	case errors.Is(err, service.ErrSeasonDateInvalid):
		response.BadRequest(c, 14002, "赛季日期格式无效")
	case errors.Is(err, service.ErrSeasonDateOrder):
		response.BadRequest(c, 14003, "结束日期必须不早于开始日期")
	default:
		response.InternalError(c)
	}
}
