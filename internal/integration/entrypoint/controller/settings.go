package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumni-portal/backoffice/internal/application/usecase/settings"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
	"github.com/alumni-portal/backoffice/internal/integration/entrypoint/dto"
)

// SettingsController handles back-office settings endpoints.
type SettingsController struct {
	getSignatoryUseCase    *settings.GetSignatoryUseCase
	updateSignatoryUseCase *settings.UpdateSignatoryUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getSignatoryUseCase *settings.GetSignatoryUseCase,
	updateSignatoryUseCase *settings.UpdateSignatoryUseCase,
) *SettingsController {
	return &SettingsController{
		getSignatoryUseCase:    getSignatoryUseCase,
		updateSignatoryUseCase: updateSignatoryUseCase,
	}
}

// GetSignatory handles GET /settings/signatory requests.
func (c *SettingsController) GetSignatory(ctx *gin.Context) {
	output, err := c.getSignatoryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSignatoryResponse(output.Signatory, output.IsDefault))
}

// UpdateSignatory handles PUT /settings/signatory requests.
func (c *SettingsController) UpdateSignatory(ctx *gin.Context) {
	var req dto.SignatoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeSignatoryNameRequired),
		})
		return
	}

	output, err := c.updateSignatoryUseCase.Execute(ctx.Request.Context(), settings.UpdateSignatoryInput{
		Signatory: req.ToEntity(),
	})
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSignatoryResponse(output.Signatory, false))
}

// handleSettingsError handles settings errors and returns appropriate HTTP responses.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		statusCode := http.StatusInternalServerError
		switch settingsErr.Code {
		case domainerror.ErrCodeSignatoryNameRequired:
			statusCode = http.StatusBadRequest
		case domainerror.ErrCodeSettingsStoreFailure:
			statusCode = http.StatusServiceUnavailable
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error:     settingsErr.Message,
			Code:      string(settingsErr.Code),
			Retryable: statusCode == http.StatusServiceUnavailable,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
