package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conectabairro/conecta-bairro-backend/internal/handlers/dto"
	"github.com/conectabairro/conecta-bairro-backend/internal/services"
)

// ReviewHandler lida com avaliações de serviços
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler cria um novo ReviewHandler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Create registra uma avaliação
// @Summary      Avalia um serviço (rota protegida)
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateReviewRequest true "Dados da avaliação"
// @Success      201 {object} dto.ReviewResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErrorResponseI18n(c, err))
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), services.CreateReviewInput{
		ServiceID: req.ServiceID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

// ListByService lista as avaliações de um serviço
// @Summary      Lista avaliações de um serviço
// @Tags         reviews
// @Produce      json
// @Param        serviceId path string true "ID do serviço"
// @Success      200 {array} dto.ReviewResponse
// @Router       /reviews/service/{serviceId} [get]
func (h *ReviewHandler) ListByService(c *gin.Context) {
	reviews, err := h.reviewService.ListByService(c.Request.Context(), c.Param("serviceId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponses(reviews))
}
