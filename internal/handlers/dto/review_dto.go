package dto

import (
	"time"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
)

// CreateReviewRequest representa a requisição para avaliar um serviço
type CreateReviewRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required"`
}

// ReviewResponse representa uma avaliação na resposta
type ReviewResponse struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"serviceId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ToReviewResponse converte uma entidade Review para ReviewResponse
func ToReviewResponse(review *entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		ServiceID: review.ServiceID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

// ToReviewResponses converte uma lista de entidades Review
func ToReviewResponses(reviews []*entities.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ToReviewResponse(review)
	}
	return responses
}
