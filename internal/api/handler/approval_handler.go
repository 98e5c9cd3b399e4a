package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"relstone/backend/internal/service"
	"relstone/backend/pkg/response"
)

// ApprovalHandler 批准号区间管理 HTTP 处理器（后台核对用）
type ApprovalHandler struct {
	lookupSvc service.LookupService
}

// NewApprovalHandler 创建 ApprovalHandler
func NewApprovalHandler(lookupSvc service.LookupService) *ApprovalHandler {
	return &ApprovalHandler{lookupSvc: lookupSvc}
}

// ListIntervals 区间表全量列表
// GET /api/v1/approvals
func (h *ApprovalHandler) ListIntervals(c *gin.Context) {
	intervals, err := h.lookupSvc.ListIntervals(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, intervals)
}

// Anomalies 区间表健康检查（重叠 / 空档）
// GET /api/v1/approvals/anomalies
func (h *ApprovalHandler) Anomalies(c *gin.Context) {
	anomalies, err := h.lookupSvc.Anomalies(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrIndexNotLoaded) {
			response.Error(c, 503, 13001, "批准号区间索引尚未加载")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, anomalies)
}

// Reload 重建内存索引（seed 后调用，仅 admin）
// POST /api/v1/approvals/reload
func (h *ApprovalHandler) Reload(c *gin.Context) {
	if err := h.lookupSvc.Reload(c.Request.Context()); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
