package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fouadlamrini/School-Attendance/internal/dto"
	"github.com/fouadlamrini/School-Attendance/internal/service"
	"github.com/fouadlamrini/School-Attendance/pkg/response"
)

// SessionHandler 课次模块 HTTP 处理器
type SessionHandler struct {
	sessionSvc service.SessionService
}

// NewSessionHandler 创建 SessionHandler
func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// List 列出所有课次
// GET /sessions
func (h *SessionHandler) List(c *gin.Context) {
	result, err := h.sessionSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Get 查询单个课次
// GET /sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	result, err := h.sessionSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.NotFound(c, 15001, "课次不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Create 创建课次。
// 未显式指定 teacherName 且请求者是教师时，课次归属请求者本人
// POST /sessions
func (h *SessionHandler) Create(c *gin.Context) {
	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	requester, ok := currentRequester(c)
	if !ok {
		return
	}

	result, err := h.sessionSvc.Create(c.Request.Context(), &req, requester)
	if err != nil {
		h.writeRefError(c, err)
		return
	}
	response.Created(c, result)
}

// Update 更新课次
// PUT /sessions/:id
func (h *SessionHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	requester, ok := currentRequester(c)
	if !ok {
		return
	}

	result, err := h.sessionSvc.Update(c.Request.Context(), id, &req, requester)
	if err != nil {
		h.writeRefError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete 删除课次，级联删除其点名记录
// DELETE /sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.sessionSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.NotFound(c, 15001, "课次不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// writeRefError 课次创建 / 更新共享的引用解析错误分发
func (h *SessionHandler) writeRefError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(c, 15001, "课次不存在")
	case errors.Is(err, service.ErrInvalidClassName):
		response.BadRequest(c, 15002, "invalid className")
	case errors.Is(err, service.ErrInvalidSubjectName):
		response.BadRequest(c, 15003, "invalid subjectName")
	case errors.Is(err, service.ErrInvalidTeacherName):
		response.BadRequest(c, 15004, "invalid teacherName")
	default:
		response.InternalError(c)
	}
}

// currentRequester 从上下文装配请求者身份
func currentRequester(c *gin.Context) (service.Requester, bool) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return service.Requester{}, false
	}
	role, ok := MustGetRole(c)
	if !ok {
		return service.Requester{}, false
	}
	return service.Requester{UserID: userID, Role: role}, true
}
