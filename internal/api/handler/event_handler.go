package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subaru7958/sports-team-manager/internal/dto"
	"github.com/subaru7958/sports-team-manager/internal/model"
	"github.com/subaru7958/sports-team-manager/internal/service"
	"github.com/subaru7958/sports-team-manager/pkg/response"
)

// EventHandler 日程事件模块 HTTP 处理器
type EventHandler struct {
	eventSvc service.EventService
}

// NewEventHandler 创建 EventHandler
func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// CreateEvent 创建事件（单次或每周系列）
// POST /api/v1/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	teamID, ok := MustGetTeamID(c)
	if !ok {
		return
	}

	result, err := h.eventSvc.Create(c.Request.Context(), teamID, &req)
	if err != nil {
		h.handleEventError(c, err)
		return
	}

	if req.Type == model.EventTypeWeekly {
		response.CreatedMessage(c, fmt.Sprintf("已创建 %d 节每周训练", result.Count), result)
		return
	}
	response.Created(c, result)
}

// ListEvents 查询赛季事件（可选时间范围）
// GET /api/v1/events?season_id=xxx&start=...&end=...
func (h *EventHandler) ListEvents(c *gin.Context) {
	seasonID := c.Query("season_id")
	if seasonID == "" {
		response.BadRequest(c, 10001, "season_id 不能为空")
		return
	}

	events, err := h.eventSvc.List(c.Request.Context(), seasonID, c.Query("start"), c.Query("end"))
	if err != nil {
		h.handleEventError(c, err)
		return
	}

	response.OK(c, gin.H{"list": events})
}

// UpdateEvent 更新单个事件实例（部分字段补丁）
// PUT /api/v1/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "事件ID不能为空")
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	event, err := h.eventSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleEventError(c, err)
		return
	}

	response.OK(c, event)
}

// DelayEvent 延期单个事件实例
// PUT /api/v1/events/:id/delay
func (h *EventHandler) DelayEvent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "事件ID不能为空")
		return
	}

	var req dto.DelayEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	event, err := h.eventSvc.Delay(c.Request.Context(), id, &req)
	if err != nil {
		h.handleEventError(c, err)
		return
	}

	response.OKMessage(c, "训练已延期", event)
}

// DeleteEvent 删除事件（series=true 时级联删除整个系列）
// DELETE /api/v1/events/:id?series=true
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "事件ID不能为空")
		return
	}

	deleteSeries := c.Query("series") == "true"

	result, err := h.eventSvc.Delete(c.Request.Context(), id, deleteSeries)
	if err != nil {
		h.handleEventError(c, err)
		return
	}

	if result.Deleted > 1 {
		response.OKMessage(c, fmt.Sprintf("已删除 %d 节训练", result.Deleted), result)
		return
	}
	response.OK(c, result)
}

// handleEventError 统一处理事件模块业务错误
func (h *EventHandler) handleEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.NotFound(c, 12001, "事件不存在")
	case errors.Is(err, service.ErrEventTimeInvalid):
		response.BadRequest(c, 12002, "时间格式无效")
	case errors.Is(err, service.ErrEventTimeOrder):
		response.BadRequest(c, 12003, "结束时间必须晚于开始时间")
	case errors.Is(err, service.ErrEventTitleRequired):
		response.BadRequest(c, 12004, "事件标题不能为空")
	case errors.Is(err, service.ErrEventGroupNotFound):
		response.BadRequest(c, 12005, "训练组不存在")
	case errors.Is(err, service.ErrEventFacilityNotFound):
		response.BadRequest(c, 12006, "场地不存在")
	case errors.Is(err, service.ErrEventSeasonNotFound):
		response.BadRequest(c, 12007, "赛季不存在")
	case errors.Is(err, service.ErrEventBatchInsert):
		response.ErrorWithDetails(c, http.StatusBadRequest, 12008, "训练日程写入失败", err.Error())
	default:
		response.InternalError(c)
	}
}
