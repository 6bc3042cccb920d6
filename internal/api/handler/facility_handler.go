package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/subaru7958/sports-team-manager/internal/dto"
	"github.com/subaru7958/sports-team-manager/internal/service"
	"github.com/subaru7958/sports-team-manager/pkg/response"
)

// FacilityHandler 场地模块 HTTP 处理器
type FacilityHandler struct {
	facilitySvc service.FacilityService
}

// NewFacilityHandler 创建 FacilityHandler
func NewFacilityHandler(facilitySvc service.FacilityService) *FacilityHandler {
	return &FacilityHandler{facilitySvc: facilitySvc}
}

// ListFacilities 获取场地列表
// GET /api/v1/facilities?discipline=football
func (h *FacilityHandler) ListFacilities(c *gin.Context) {
	teamID, ok := MustGetTeamID(c)
	if !ok {
		return
	}

	facilities, err := h.facilitySvc.List(c.Request.Context(), teamID, c.Query("discipline"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": facilities})
}

// CreateFacility 创建场地
// POST /api/v1/facilities
func (h *FacilityHandler) CreateFacility(c *gin.Context) {
	var req dto.CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	teamID, ok := MustGetTeamID(c)
	if !ok {
		return
	}

	facility, err := h.facilitySvc.Create(c.Request.Context(), teamID, &req)
	if err != nil {
		h.handleFacilityError(c, err)
		return
	}

	response.Created(c, facility)
}

// DeleteFacility 删除场地
// DELETE /api/v1/facilities/:id
func (h *FacilityHandler) DeleteFacility(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "场地ID不能为空")
		return
	}

	if err := h.facilitySvc.Delete(c.Request.Context(), id); err != nil {
		h.handleFacilityError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleFacilityError 统一处理场地模块业务错误
func (h *FacilityHandler) handleFacilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFacilityNotFound):
		response.NotFound(c, 15001, "场地不存在")
	case errors.Is(err, service.ErrFacilityNameTaken):
		response.BadRequest(c, 15002, "同项目下已存在同名场地")
	default:
		response.InternalError(c)
	}
}
