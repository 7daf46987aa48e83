package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fouadlamrini/School-Attendance/internal/dto"
	"github.com/fouadlamrini/School-Attendance/internal/service"
	"github.com/fouadlamrini/School-Attendance/pkg/response"
)

// SubjectHandler 科目模块 HTTP 处理器
type SubjectHandler struct {
	subjectSvc service.SubjectService
}

// NewSubjectHandler 创建 SubjectHandler
func NewSubjectHandler(subjectSvc service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectSvc: subjectSvc}
}

// List 列出所有科目
// GET /subjects
func (h *SubjectHandler) List(c *gin.Context) {
	result, err := h.subjectSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Get 查询单个科目
// GET /subjects/:id
func (h *SubjectHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	result, err := h.subjectSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			response.NotFound(c, 13001, "科目不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Create 创建科目，名称全局唯一
// POST /subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req dto.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.subjectSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSubjectExists) {
			response.Conflict(c, 13002, "科目名称已存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// Update 更新科目
// PUT /subjects/:id
func (h *SubjectHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.subjectSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubjectNotFound):
			response.NotFound(c, 13001, "科目不存在")
		case errors.Is(err, service.ErrSubjectExists):
			response.Conflict(c, 13002, "科目名称已存在")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// Delete 删除科目
// DELETE /subjects/:id
func (h *SubjectHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.subjectSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			response.NotFound(c, 13001, "科目不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
