package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	"github.com/conectabairro/conecta-bairro-backend/internal/handlers/dto"
	"github.com/conectabairro/conecta-bairro-backend/internal/handlers/middleware"
	"github.com/conectabairro/conecta-bairro-backend/internal/services"
)

// RequestHandler lida com solicitações de serviço
type RequestHandler struct {
	requestService *services.RequestService
}

// NewRequestHandler cria um novo RequestHandler
func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// Create cria uma solicitação de serviço
// @Summary      Solicita um serviço (rota protegida)
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateRequestRequest true "Dados da solicitação"
// @Success      201 {object} dto.RequestResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	var req dto.CreateRequestRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErrorResponseI18n(c, err))
		return
	}

	request, err := h.requestService.CreateRequest(c.Request.Context(), services.CreateRequestInput{
		ServiceID:   req.ServiceID,
		RequesterID: c.GetString(middleware.UserIDContextKey),
		Message:     req.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestResponse(request))
}

// GetByID busca uma solicitação por ID
// @Summary      Busca uma solicitação (rota protegida)
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID da solicitação"
// @Success      200 {object} dto.RequestResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /requests/{id} [get]
func (h *RequestHandler) GetByID(c *gin.Context) {
	request, err := h.requestService.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponse(request))
}

// UpdateStatus muda o status de uma solicitação
// @Summary      Atualiza o status de uma solicitação (rota protegida)
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID da solicitação"
// @Param        request body dto.UpdateRequestStatusRequest true "Novo status"
// @Success      200 {object} dto.RequestResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /requests/{id}/status [put]
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateRequestStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErrorResponseI18n(c, err))
		return
	}

	request, err := h.requestService.UpdateStatus(
		c.Request.Context(),
		c.Param("id"),
		entities.RequestStatus(req.Status),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponse(request))
}
