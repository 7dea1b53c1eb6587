package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/repositories"
	"github.com/conectabairro/conecta-bairro-backend/internal/handlers/dto"
	"github.com/conectabairro/conecta-bairro-backend/internal/handlers/middleware"
	"github.com/conectabairro/conecta-bairro-backend/internal/services"
)

// ServiceHandler lida com o diretório de serviços
type ServiceHandler struct {
	serviceService *services.ServiceService
}

// NewServiceHandler cria um novo ServiceHandler
func NewServiceHandler(serviceService *services.ServiceService) *ServiceHandler {
	return &ServiceHandler{
		serviceService: serviceService,
	}
}

// List lista serviços com filtros opcionais
// @Summary      Lista serviços por categoria e/ou bairro (match exato)
// @Tags         services
// @Produce      json
// @Param        category query string false "Nome exato da categoria"
// @Param        bairro query string false "Bairro exato de alguma área de atendimento"
// @Success      200 {array} dto.ServiceResponse
// @Router       /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	filters := repositories.ServiceFilters{
		Category: c.Query("category"),
		Bairro:   c.Query("bairro"),
	}

	result, err := h.serviceService.ListServices(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponses(result))
}

// GetByID busca um serviço por ID
// @Summary      Busca um serviço com prestador, categoria e áreas
// @Tags         services
// @Produce      json
// @Param        id path string true "ID do serviço"
// @Success      200 {object} dto.ServiceResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /services/{id} [get]
func (h *ServiceHandler) GetByID(c *gin.Context) {
	service, err := h.serviceService.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

// Create anuncia um novo serviço para o usuário autenticado
// @Summary      Anuncia um serviço (rota protegida)
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateServiceRequest true "Dados do serviço"
// @Success      201 {object} dto.ServiceResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Router       /services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	// Anunciar serviços é exclusivo de prestadores
	role := entities.Role(c.GetString(middleware.RoleContextKey))
	if !role.HasPermission(entities.PermissionServiceWrite) {
		respondError(c, errors.ErrForbidden)
		return
	}

	var req dto.CreateServiceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErrorResponseI18n(c, err))
		return
	}

	areas := make([]entities.ServiceArea, 0, len(req.Areas))
	for _, area := range req.Areas {
		areas = append(areas, entities.ServiceArea{
			City:         area.City,
			Neighborhood: area.Neighborhood,
		})
	}

	service, err := h.serviceService.CreateService(c.Request.Context(), services.CreateServiceInput{
		Title:        req.Title,
		Description:  req.Description,
		PriceRange:   req.PriceRange,
		ProviderID:   c.GetString(middleware.UserIDContextKey),
		CategoryName: req.Category,
		Areas:        areas,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToServiceResponse(service))
}

// Update atualiza um serviço existente
// @Summary      Atualiza um serviço (rota protegida)
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID do serviço"
// @Param        request body dto.UpdateServiceRequest true "Campos a atualizar"
// @Success      200 {object} dto.ServiceResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	var req dto.UpdateServiceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BindingErrorResponseI18n(c, err))
		return
	}

	service, err := h.serviceService.UpdateService(c.Request.Context(), c.Param("id"), services.UpdateServiceInput{
		Title:       req.Title,
		Description: req.Description,
		PriceRange:  req.PriceRange,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

// Delete remove um serviço do diretório
// @Summary      Remove um serviço (rota protegida)
// @Tags         services
// @Security     BearerAuth
// @Param        id path string true "ID do serviço"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Router       /services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.serviceService.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
