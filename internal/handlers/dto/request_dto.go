package dto

import (
	"time"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
)

// CreateRequestRequest representa a requisição para solicitar um serviço
type CreateRequestRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Message   string `json:"message"`
}

// UpdateRequestStatusRequest representa a mudança de status de uma solicitação
type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RequestResponse representa uma solicitação na resposta
type RequestResponse struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"serviceId"`
	RequesterID string    `json:"requesterId,omitempty"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToRequestResponse converte uma entidade Request para RequestResponse
func ToRequestResponse(request *entities.Request) RequestResponse {
	return RequestResponse{
		ID:          request.ID,
		ServiceID:   request.ServiceID,
		RequesterID: request.RequesterID,
		Message:     request.Message,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}
