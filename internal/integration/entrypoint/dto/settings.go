package dto

import "github.com/alumni-portal/backoffice/internal/domain/entity"

// SignatoryRequest represents the request body for saving the report signatory.
type SignatoryRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Title        string `json:"title" binding:"max=255"`
	Organization string `json:"organization" binding:"max=255"`
	Address      string `json:"address" binding:"max=500"`
}

// SignatoryResponse represents the report signatory in API responses.
type SignatoryResponse struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Address      string `json:"address"`
	IsDefault    bool   `json:"is_default"`
}

// ToEntity converts the request to a Signatory entity.
func (r SignatoryRequest) ToEntity() entity.Signatory {
	return entity.Signatory{
		Name:         r.Name,
		Title:        r.Title,
		Organization: r.Organization,
		Address:      r.Address,
	}
}

// ToSignatoryResponse converts a Signatory entity to a SignatoryResponse DTO.
func ToSignatoryResponse(s entity.Signatory, isDefault bool) SignatoryResponse {
	return SignatoryResponse{
		Name:         s.Name,
		Title:        s.Title,
		Organization: s.Organization,
		Address:      s.Address,
		IsDefault:    isDefault,
	}
}
