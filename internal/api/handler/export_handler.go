package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/subaru7958/sports-team-manager/internal/service"
	"github.com/subaru7958/sports-team-manager/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportScheduleXLSX 导出训练日程为 Excel
// GET /api/v1/export/schedule?season_id=xxx
func (h *ExportHandler) ExportScheduleXLSX(c *gin.Context) {
	seasonID := c.Query("season_id")
	if seasonID == "" {
		response.BadRequest(c, 10001, "season_id 不能为空")
		return
	}

	buf, filename, err := h.exportSvc.ExportScheduleXLSX(c.Request.Context(), seasonID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeAttachment(c, filename, xlsxContentType)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportScheduleICS 导出训练日程为 iCalendar
// GET /api/v1/export/calendar?season_id=xxx
func (h *ExportHandler) ExportScheduleICS(c *gin.Context) {
	seasonID := c.Query("season_id")
	if seasonID == "" {
		response.BadRequest(c, 10001, "season_id 不能为空")
		return
	}

	buf, filename, err := h.exportSvc.ExportScheduleICS(c.Request.Context(), seasonID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeAttachment(c, filename, "text/calendar; charset=utf-8")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

// writeAttachment 设置文件下载响应头
func writeAttachment(c *gin.Context, filename, contentType string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", contentType)
}

// handleExportError 统一处理导出模块业务错误
func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportSeasonNotFound):
		response.NotFound(c, 17001, "赛季不存在")
	case errors.Is(err, service.ErrExportNoEvents):
		response.BadRequest(c, 17002, "该赛季暂无训练日程")
	default:
		response.InternalError(c)
	}
}
