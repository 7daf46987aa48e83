package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fouadlamrini/School-Attendance/internal/dto"
	"github.com/fouadlamrini/School-Attendance/internal/service"
	"github.com/fouadlamrini/School-Attendance/pkg/response"
)

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// List 列出所有学生
// GET /students
func (h *StudentHandler) List(c *gin.Context) {
	result, err := h.studentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Get 查询单个学生
// GET /students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	result, err := h.studentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, 14001, "学生不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Create 创建学生，className 必须指向已存在的班级
// POST /students
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidClassName):
			response.BadRequest(c, 14003, "invalid className")
		case errors.Is(err, service.ErrStudentEmailInUse):
			response.Conflict(c, 14002, "学生邮箱已被使用")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, result)
}

// Update 更新学生
// PUT /students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.studentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, 14001, "学生不存在")
		case errors.Is(err, service.ErrInvalidClassName):
			response.BadRequest(c, 14003, "invalid className")
		case errors.Is(err, service.ErrStudentEmailInUse):
			response.Conflict(c, 14002, "学生邮箱已被使用")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// Delete 删除学生，级联删除其点名记录
// DELETE /students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.studentSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, 14001, "学生不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
