package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/subaru7958/sports-team-manager/internal/service"
	"github.com/subaru7958/sports-team-manager/pkg/response"
)

// GroupHandler 训练组模块 HTTP 处理器
type GroupHandler struct {
	groupSvc service.GroupService
}

// NewGroupHandler 创建 GroupHandler
func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

// ListGroups 获取赛季下的训练组列表
// GET /api/v1/groups?season_id=xxx
func (h *GroupHandler) ListGroups(c *gin.Context) {
	seasonID := c.Query("season_id")
	if seasonID == "" {
		response.BadRequest(c, 10001, "season_id 不能为空")
		return
	}

	groups, err := h.groupSvc.ListBySeason(c.Request.Context(), seasonID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": groups})
}

// GetGroup 获取训练组详情
// GET /api/v1/groups/:id
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "训练组ID不能为空")
		return
	}

	group, err := h.groupSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			response.NotFound(c, 13001, "训练组不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, group)
}
