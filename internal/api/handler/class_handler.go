package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fouadlamrini/School-Attendance/internal/dto"
	"github.com/fouadlamrini/School-Attendance/internal/service"
	"github.com/fouadlamrini/School-Attendance/pkg/response"
)

// ClassHandler 班级模块 HTTP 处理器
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler 创建 ClassHandler
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// List 列出所有班级
// GET /classes
func (h *ClassHandler) List(c *gin.Context) {
	result, err := h.classSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Get 查询单个班级
// GET /classes/:id
func (h *ClassHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	result, err := h.classSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			response.NotFound(c, 12001, "班级不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Create 创建班级
// POST /classes
func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.classSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// Update 更新班级
// PUT /classes/:id
func (h *ClassHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.classSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			response.NotFound(c, 12001, "班级不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Delete 删除班级，级联删除其学生与课次
// DELETE /classes/:id
func (h *ClassHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.classSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			response.NotFound(c, 12001, "班级不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
