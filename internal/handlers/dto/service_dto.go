package dto

import (
	"time"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
)

// AreaPayload representa uma área de atendimento na criação de serviços
type AreaPayload struct {
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
}

// CreateServiceRequest representa a requisição para anunciar um serviço
type CreateServiceRequest struct {
	Title       string        `json:"title" binding:"required,min=2,max=200"`
	Description string        `json:"description"`
	PriceRange  string        `json:"priceRange"`
	Category    string        `json:"category" binding:"required"`
	Areas       []AreaPayload `json:"areas"`
}

// UpdateServiceRequest representa a requisição de atualização de um serviço
type UpdateServiceRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description"`
	PriceRange  *string `json:"priceRange"`
}

// CategoryResponse representa uma categoria na resposta
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AreaResponse representa uma área de atendimento na resposta
type AreaResponse struct {
	ID           string `json:"id"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
}

// ProviderResponse é o resumo do prestador embutido na listagem.
// Sem email nem contato: a listagem é pública.
type ProviderResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ServiceResponse representa um serviço enriquecido com prestador,
// categoria e áreas — o suficiente para renderizar um card sem novas
// chamadas à API
type ServiceResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	PriceRange  string            `json:"priceRange"`
	Provider    *ProviderResponse `json:"provider,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Areas       []AreaResponse    `json:"areas"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ToServiceResponse converte uma entidade Service para ServiceResponse
func ToServiceResponse(service *entities.Service) ServiceResponse {
	response := ServiceResponse{
		ID:          service.ID,
		Title:       service.Title,
		Description: service.Description,
		PriceRange:  service.PriceRange,
		Areas:       make([]AreaResponse, 0, len(service.Areas)),
		CreatedAt:   service.CreatedAt,
	}

	if service.Provider != nil {
		response.Provider = &ProviderResponse{
			ID:   service.Provider.ID,
			Name: service.Provider.Name,
		}
	}

	if service.Category != nil {
		response.Category = &CategoryResponse{
			ID:   service.Category.ID,
			Name: service.Category.Name,
		}
	}

	for _, area := range service.Areas {
		response.Areas = append(response.Areas, AreaResponse{
			ID:           area.ID,
			City:         area.City,
			Neighborhood: area.Neighborhood,
		})
	}

	return response
}

// ToServiceResponses converte uma lista de entidades Service
func ToServiceResponses(services []*entities.Service) []ServiceResponse {
	responses := make([]ServiceResponse, len(services))
	for i, service := range services {
		responses[i] = ToServiceResponse(service)
	}
	return responses
}
