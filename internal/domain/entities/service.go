package entities

import (
	"errors"
	"time"
)

const (
	// PriceNegotiable é o valor exibido quando o prestador não informa preço
	PriceNegotiable = "A combinar"
	// NeighborhoodNotInformed é usado quando o endereço não traz bairro
	NeighborhoodNotInformed = "Não informado"
)

// Service representa um serviço anunciado por um prestador
type Service struct {
	ID          string
	Title       string
	Description string
	PriceRange  string
	ProviderID  string
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relações carregadas em leituras enriquecidas (listagem do diretório).
	// Podem ser nil em escritas.
	Provider *User
	Category *Category
	Areas    []ServiceArea
}

// ServiceArea representa um bairro/cidade onde o serviço é oferecido
type ServiceArea struct {
	ID           string
	ServiceID    string
	City         string
	Neighborhood string
}

// Validate valida regras de negócio da entidade Service
func (s *Service) Validate() error {
	if s.Title == "" {
		return errors.New("title is required")
	}

	if s.ProviderID == "" {
		return errors.New("provider is required")
	}

	if s.CategoryID == "" {
		return errors.New("category is required")
	}

	return nil
}

// ServedIn verifica se o serviço atende o bairro informado (comparação exata)
func (s *Service) ServedIn(neighborhood string) bool {
	for _, area := range s.Areas {
		if area.Neighborhood == neighborhood {
			return true
		}
	}
	return false
}
