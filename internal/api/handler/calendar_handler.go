package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/subaru7958/sports-team-manager/internal/dto"
	"github.com/subaru7958/sports-team-manager/internal/service"
	"github.com/subaru7958/sports-team-manager/pkg/response"
)

// CalendarHandler 日历泳道视图 HTTP 处理器
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler 创建 CalendarHandler
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// GetDayView 获取单日泳道视图
// GET /api/v1/calendar/day?season_id=xxx&day=2024-01-15&facility_ids=a&facility_ids=b
func (h *CalendarHandler) GetDayView(c *gin.Context) {
	seasonID := c.Query("season_id")
	if seasonID == "" {
		response.BadRequest(c, 10001, "season_id 不能为空")
		return
	}

	var req dto.CalendarDayRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	teamID, ok := MustGetTeamID(c)
	if !ok {
		return
	}

	view, err := h.calendarSvc.ProjectDay(c.Request.Context(), teamID, seasonID, &req)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.OK(c, view)
}

// handleCalendarError 统一处理日历模块业务错误
func (h *CalendarHandler) handleCalendarError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCalendarDayInvalid):
		response.BadRequest(c, 16001, "日期格式无效")
	case errors.Is(err, service.ErrCalendarWindowInvalid):
		response.BadRequest(c, 16002, "视图窗口无效")
	case errors.Is(err, service.ErrCalendarTeamNotFound):
		response.NotFound(c, 16003, "球队不存在")
	default:
		response.InternalError(c)
	}
}
