package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alumni-portal/backoffice/internal/application/usecase/donation"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
	"github.com/alumni-portal/backoffice/internal/integration/entrypoint/dto"
)

// DonationController handles donation endpoints.
type DonationController struct {
	listUseCase   *donation.ListDonationsUseCase
	createUseCase *donation.CreateDonationUseCase
	getUseCase    *donation.GetDonationUseCase
	updateUseCase *donation.UpdateDonationUseCase
	deleteUseCase *donation.DeleteDonationUseCase
	toggleUseCase *donation.ToggleVisibilityUseCase
	resyncUseCase *donation.ResyncArchiveUseCase
}

// NewDonationController creates a new donation controller instance.
func NewDonationController(
	listUseCase *donation.ListDonationsUseCase,
	createUseCase *donation.CreateDonationUseCase,
	getUseCase *donation.GetDonationUseCase,
	updateUseCase *donation.UpdateDonationUseCase,
	deleteUseCase *donation.DeleteDonationUseCase,
	toggleUseCase *donation.ToggleVisibilityUseCase,
	resyncUseCase *donation.ResyncArchiveUseCase,
) *DonationController {
	return &DonationController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		toggleUseCase: toggleUseCase,
		resyncUseCase: resyncUseCase,
	}
}

// List handles GET /donations requests.
func (c *DonationController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDonationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDonationListResponse(output.Donations))
}

// Create handles POST /donations requests.
func (c *DonationController) Create(ctx *gin.Context) {
	var req dto.CreateDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDonationFields),
		})
		return
	}

	donationDate, err := dto.ParseDate(req.DonationDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeDonationDateRequired),
		})
		return
	}

	input := donation.CreateDonationInput{
		DonorName:    req.DonorName,
		DonorEmail:   req.DonorEmail,
		Amount:       *req.Amount,
		Currency:     req.Currency,
		Purpose:      req.Purpose,
		Category:     entity.DonationCategory(req.Category),
		Description:  req.Description,
		IsPublic:     req.IsPublic,
		IsAnonymous:  req.IsAnonymous,
		DonationDate: donationDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDonationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDonationResponse(output.Donation))
}

// Get handles GET /donations/:id requests.
func (c *DonationController) Get(ctx *gin.Context) {
	donationID, ok := c.parseDonationID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), donation.GetDonationInput{DonationID: donationID})
	if err != nil {
		c.handleDonationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDonationResponse(output.Donation))
}

// Update handles PATCH /donations/:id requests.
func (c *DonationController) Update(ctx *gin.Context) {
	donationID, ok := c.parseDonationID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := donation.UpdateDonationInput{
		DonationID:       donationID,
		DonorName:        req.DonorName,
		DonorEmail:       req.DonorEmail,
		Amount:           req.Amount,
		Currency:         req.Currency,
		Purpose:          req.Purpose,
		Description:      req.Description,
		IsPublic:         req.IsPublic,
		IsAnonymous:      req.IsAnonymous,
		ClearDonorEmail:  req.ClearDonorEmail,
		ClearDescription: req.ClearDescription,
	}

	if req.Category != nil {
		category := entity.DonationCategory(*req.Category)
		input.Category = &category
	}

	if req.DonationDate != nil {
		donationDate, err := dto.ParseDate(*req.DonationDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: err.Error(),
				Code:  string(domainerror.ErrCodeDonationDateRequired),
			})
			return
		}
		input.DonationDate = &donationDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDonationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDonationResponse(output.Donation))
}

// Delete handles DELETE /donations/:id requests.
func (c *DonationController) Delete(ctx *gin.Context) {
	donationID, ok := c.parseDonationID(ctx)
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), donation.DeleteDonationInput{DonationID: donationID}); err != nil {
		c.handleDonationError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ToggleVisibility handles PATCH /donations/:id/visibility requests.
func (c *DonationController) ToggleVisibility(ctx *gin.Context) {
	donationID, ok := c.parseDonationID(ctx)
	if !ok {
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), donation.ToggleVisibilityInput{DonationID: donationID})
	if err != nil {
		c.handleDonationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDonationResponse(output.Donation))
}

// ResyncArchive handles POST /donations/archive/resync requests.
func (c *DonationController) ResyncArchive(ctx *gin.Context) {
	output, err := c.resyncUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDonationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResyncArchiveResponse{
		Checked:  output.Checked,
		Repaired: output.Repaired,
	})
}

func (c *DonationController) parseDonationID(ctx *gin.Context) (uuid.UUID, bool) {
	donationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid donation ID format",
		})
		return uuid.Nil, false
	}
	return donationID, true
}

// handleDonationError handles donation errors and returns appropriate HTTP responses.
func (c *DonationController) handleDonationError(ctx *gin.Context, err error) {
	var donationErr *domainerror.DonationError
	if errors.As(err, &donationErr) {
		statusCode := c.getStatusCodeForDonationError(donationErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error:     donationErr.Message,
			Code:      string(donationErr.Code),
			Retryable: statusCode == http.StatusServiceUnavailable,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForDonationError maps donation error codes to HTTP status codes.
func (c *DonationController) getStatusCodeForDonationError(code domainerror.DonationErrorCode) int {
	switch code {
	case domainerror.ErrCodeDonationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidDonationAmount,
		domainerror.ErrCodeInvalidDonationCategory,
		domainerror.ErrCodeDonorNameRequired,
		domainerror.ErrCodeInvalidCurrency,
		domainerror.ErrCodeDonationDateRequired,
		domainerror.ErrCodeMissingDonationFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeDonationStoreFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
