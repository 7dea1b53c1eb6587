package dto

import "github.com/conectabairro/conecta-bairro-backend/internal/services"

// AddressPayload é o endereço opcional enviado no registro de prestadores
type AddressPayload struct {
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Bairro       string `json:"bairro"`
}

// ProfessionalPayload é o descritor profissional opcional de prestadores
type ProfessionalPayload struct {
	Categories  []string `json:"categories"`
	Description string   `json:"description"`
	HourlyRate  *float64 `json:"hourlyRate"`
}

// RegisterRequest representa a requisição de registro
type RegisterRequest struct {
	Name         string               `json:"name" binding:"required,min=2,max=100"`
	Email        string               `json:"email" binding:"required,email"`
	Password     string               `json:"password" binding:"required,min=6,max=72"`
	Whatsapp     string               `json:"whatsapp"`
	CEP          string               `json:"cep"`
	Role         string               `json:"role"`
	Address      *AddressPayload      `json:"address"`
	Professional *ProfessionalPayload `json:"professional"`
}

// ToRegisterInput converte a requisição para o input do serviço
func (r *RegisterRequest) ToRegisterInput() services.RegisterInput {
	input := services.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Whatsapp: r.Whatsapp,
		CEP:      r.CEP,
		Role:     r.Role,
	}

	if r.Address != nil {
		input.Address = &services.AddressInput{
			City:         r.Address.City,
			Neighborhood: r.Address.Neighborhood,
			Bairro:       r.Address.Bairro,
		}
	}

	if r.Professional != nil {
		input.Professional = &services.ProfessionalInput{
			Categories:  r.Professional.Categories,
			Description: r.Professional.Description,
			HourlyRate:  r.Professional.HourlyRate,
		}
	}

	return input
}

// RegisterResponse representa a resposta do registro
type RegisterResponse struct {
	User UserResponse `json:"user"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta do login
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
