package dto

import (
	"kisahsukses_backend/internals/features/clients/model"
	"time"
)

// ============================
// Response DTO
// ============================

type ClientDTO struct {
	ClientID        uint      `json:"client_id"`
	ClientName      string    `json:"client_name"`
	ClientSlug      string    `json:"client_slug"`
	ClientIsCompany bool      `json:"client_is_company"`
	ClientWebsite   string    `json:"client_website"`
	ClientCreatedAt time.Time `json:"client_created_at"`
	ClientUpdatedAt time.Time `json:"client_updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateClientRequest struct {
	ClientName      string `json:"client_name" validate:"required,min=2"`
	ClientIsCompany bool   `json:"client_is_company"`
	ClientWebsite   string `json:"client_website" validate:"omitempty,url"`
}

type UpdateClientRequest struct {
	ClientName      string `json:"client_name" validate:"required,min=2"`
	ClientIsCompany bool   `json:"client_is_company"`
	ClientWebsite   string `json:"client_website" validate:"omitempty,url"`
}

// ============================
// Converter
// ============================

func ToClientDTO(m model.ClientModel) ClientDTO {
	return ClientDTO{
		ClientID:        m.ClientID,
		ClientName:      m.ClientName,
		ClientSlug:      m.ClientSlug,
		ClientIsCompany: m.ClientIsCompany,
		ClientWebsite:   m.ClientWebsite,
		ClientCreatedAt: m.ClientCreatedAt,
		ClientUpdatedAt: m.ClientUpdatedAt,
	}
}
