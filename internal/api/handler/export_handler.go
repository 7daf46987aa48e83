package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fouadlamrini/School-Attendance/internal/service"
	"github.com/fouadlamrini/School-Attendance/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// SessionsICS 将全部课次导出为 iCalendar 文件
// GET /export/sessions.ics
func (h *ExportHandler) SessionsICS(c *gin.Context) {
	ics, err := h.exportSvc.SessionsCalendar(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=sessions.ics")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}
