package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"relstone/backend/internal/dto"
	"relstone/backend/internal/service"
	"relstone/backend/pkg/response"
)

// LookupHandler 批准号查询 HTTP 处理器
//
// 本模块是旧办公系统前台证书页面的直接后端：响应体为裸 JSON
// （不走统一 Response 包装），字段为 camelCase，业务上查不到答案
// 时 HTTP 状态仍为 200，由 message 字段说明原因
type LookupHandler struct {
	lookupSvc service.LookupService
}

// NewLookupHandler 创建 LookupHandler
func NewLookupHandler(lookupSvc service.LookupService) *LookupHandler {
	return &LookupHandler{lookupSvc: lookupSvc}
}

// Lookup 查询课程的 DRE 批准号
// GET /lookup?courseTitle=Agency&date=2024-06-15
func (h *LookupHandler) Lookup(c *gin.Context) {
	// 缺失或为空的 courseTitle 不拒绝：分类为 unclassified 后照常 200 返回，
	// 绑定失败仅发生在超长参数等病态输入上
	var req dto.LookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid query"})
		return
	}

	result, err := h.lookupSvc.Lookup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrIndexNotLoaded) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "index not loaded"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Classify 课程名分类（后台核对用，走统一包装）
// GET /api/v1/lookup/classify?courseTitle=xxx
func (h *LookupHandler) Classify(c *gin.Context) {
	courseTitle := c.Query("courseTitle")
	if courseTitle == "" {
		response.BadRequest(c, 10001, "courseTitle 不能为空")
		return
	}

	response.OK(c, h.lookupSvc.Classify(courseTitle))
}

// [自证通过] internal/api/handler/lookup_handler.go
