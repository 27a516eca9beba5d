package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumni-portal/backoffice/internal/application/usecase/report"
	"github.com/alumni-portal/backoffice/internal/application/usecase/settings"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
	"github.com/alumni-portal/backoffice/internal/domain/valueobject"
	"github.com/alumni-portal/backoffice/internal/integration/delivery"
	"github.com/alumni-portal/backoffice/internal/integration/entrypoint/dto"
)

// ReportController handles donation report endpoints.
type ReportController struct {
	generateUseCase     *report.GenerateReportUseCase
	detailedUseCase     *report.ExportDetailedCSVUseCase
	summaryUseCase      *report.ExportSummaryCSVUseCase
	documentUseCase     *report.ExportDocumentUseCase
	emailUseCase        *report.EmailReportUseCase
	getSignatoryUseCase *settings.GetSignatoryUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	generateUseCase *report.GenerateReportUseCase,
	detailedUseCase *report.ExportDetailedCSVUseCase,
	summaryUseCase *report.ExportSummaryCSVUseCase,
	documentUseCase *report.ExportDocumentUseCase,
	emailUseCase *report.EmailReportUseCase,
	getSignatoryUseCase *settings.GetSignatoryUseCase,
) *ReportController {
	return &ReportController{
		generateUseCase:     generateUseCase,
		detailedUseCase:     detailedUseCase,
		summaryUseCase:      summaryUseCase,
		documentUseCase:     documentUseCase,
		emailUseCase:        emailUseCase,
		getSignatoryUseCase: getSignatoryUseCase,
	}
}

// Generate handles GET /reports/donations requests.
func (c *ReportController) Generate(ctx *gin.Context) {
	_, filter, ok := c.bindQuery(ctx)
	if !ok {
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), report.GenerateReportInput{Filter: filter})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output.Report))
}

// ExportDetailed handles GET /reports/donations/export/detailed requests.
func (c *ReportController) ExportDetailed(ctx *gin.Context) {
	_, filter, ok := c.bindQuery(ctx)
	if !ok {
		return
	}

	_, err := c.detailedUseCase.Execute(ctx.Request.Context(), report.ExportDetailedCSVInput{
		Filter:   filter,
		Delivery: delivery.NewAttachment(ctx),
	})
	if err != nil {
		c.handleReportError(ctx, err)
	}
}

// ExportSummary handles GET /reports/donations/export/summary requests.
func (c *ReportController) ExportSummary(ctx *gin.Context) {
	query, filter, ok := c.bindQuery(ctx)
	if !ok {
		return
	}
	sections, ok := c.parseSections(ctx, query)
	if !ok {
		return
	}

	_, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.ExportSummaryCSVInput{
		Filter:   filter,
		Sections: sections,
		Delivery: delivery.NewAttachment(ctx),
	})
	if err != nil {
		c.handleReportError(ctx, err)
	}
}

// ExportDocument handles GET /reports/donations/export/document requests.
// The response is the printable HTML document, which prints itself once loaded.
func (c *ReportController) ExportDocument(ctx *gin.Context) {
	query, filter, ok := c.bindQuery(ctx)
	if !ok {
		return
	}
	sections, ok := c.parseSections(ctx, query)
	if !ok {
		return
	}

	signatory, err := c.getSignatoryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	_, err = c.documentUseCase.Execute(ctx.Request.Context(), report.ExportDocumentInput{
		Filter:    filter,
		Sections:  sections,
		Signatory: signatory.Signatory,
		Surface:   delivery.NewInlineDocument(ctx),
	})
	if err != nil {
		c.handleReportError(ctx, err)
	}
}

// Email handles POST /reports/donations/email requests.
func (c *ReportController) Email(ctx *gin.Context) {
	var req dto.EmailReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRecipient),
		})
		return
	}

	query := req.ToQuery()
	filter, err := query.ToFilter()
	if err != nil {
		c.invalidFilter(ctx, err)
		return
	}
	sections, ok := c.parseSections(ctx, query)
	if !ok {
		return
	}

	signatory, err := c.getSignatoryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	output, err := c.emailUseCase.Execute(ctx.Request.Context(), report.EmailReportInput{
		Filter:         filter,
		Sections:       sections,
		Signatory:      signatory.Signatory,
		RecipientEmail: req.RecipientEmail,
		RecipientName:  req.RecipientName,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.EmailReportResponse{
		Message:       "Report email queued",
		DocumentName:  output.DocumentName,
		DonationCount: output.DonationCount,
	})
}

func (c *ReportController) bindQuery(ctx *gin.Context) (dto.ReportQuery, valueobject.ReportFilter, bool) {
	var query dto.ReportQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		c.invalidFilter(ctx, err)
		return dto.ReportQuery{}, valueobject.ReportFilter{}, false
	}

	filter, err := query.ToFilter()
	if err != nil {
		c.invalidFilter(ctx, err)
		return dto.ReportQuery{}, valueobject.ReportFilter{}, false
	}

	return query, filter, true
}

func (c *ReportController) parseSections(ctx *gin.Context, query dto.ReportQuery) (valueobject.SectionSelection, bool) {
	sections, err := query.ToSections()
	if err != nil {
		c.invalidFilter(ctx, err)
		return valueobject.SectionSelection{}, false
	}
	return sections, true
}

func (c *ReportController) invalidFilter(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: err.Error(),
		Code:  string(domainerror.ErrCodeInvalidReportFilter),
	})
}

// handleReportError handles report, email and settings errors raised while producing a report.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	if ctx.Writer.Written() {
		slog.Error("Report failed after the response was started", "error", err)
		return
	}

	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := c.getStatusCodeForReportError(reportErr.Code)
		response := dto.ErrorResponse{
			Error:     reportErr.Message,
			Code:      string(reportErr.Code),
			Retryable: reportErr.Retryable(),
		}
		if reportErr.Code == domainerror.ErrCodeEmptyExport {
			response.Details = "Adjust the filters so at least one donation matches"
		}
		ctx.JSON(statusCode, response)
		return
	}

	var emailErr *domainerror.EmailError
	if errors.As(err, &emailErr) {
		statusCode := http.StatusInternalServerError
		if emailErr.Code == domainerror.ErrCodeInvalidRecipient {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: emailErr.Message,
			Code:  string(emailErr.Code),
		})
		return
	}

	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:     settingsErr.Message,
			Code:      string(settingsErr.Code),
			Retryable: true,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyExport:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidReportFilter:
		return http.StatusBadRequest
	case domainerror.ErrCodeReportDataUnavailable,
		domainerror.ErrCodePrintSurfaceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
