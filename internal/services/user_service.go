package services

import (
	"context"
	"fmt"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/ports"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/repositories"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/valueobjects"
)

// UserService contém o workflow de registro de usuários e prestadores
type UserService struct {
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
	serviceRepo  repositories.ServiceRepository
	hasher       ports.PasswordHasher
	uow          ports.UnitOfWork
	logger       ports.Logger

	// atomic liga o modo transacional de registro: criação do usuário e
	// provisionamento do perfil de prestador passam a falhar juntos.
	// O padrão (false) preserva o comportamento best-effort: falhas de
	// provisionamento são logadas e absorvidas.
	atomic bool
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
	serviceRepo repositories.ServiceRepository,
	hasher ports.PasswordHasher,
	uow ports.UnitOfWork,
	logger ports.Logger,
	atomicProvisioning bool,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		serviceRepo:  serviceRepo,
		hasher:       hasher,
		uow:          uow,
		logger:       logger,
		atomic:       atomicProvisioning,
	}
}

// AddressInput é o endereço opcional enviado por prestadores
type AddressInput struct {
	City         string
	Neighborhood string
	// Bairro é o campo alternativo usado por clientes antigos quando
	// Neighborhood não vem preenchido
	Bairro string
}

// ProfessionalInput é o descritor profissional opcional de prestadores
type ProfessionalInput struct {
	Categories  []string
	Description string
	HourlyRate  *float64
}

// RegisterInput representa os dados para registrar um usuário
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Whatsapp     string
	CEP          string
	Role         string
	Address      *AddressInput
	Professional *ProfessionalInput
}

// Register registra um novo usuário. Se o role for de prestador e o descritor
// profissional estiver presente, provisiona categoria, serviço e área de
// atendimento padrão. O provisionamento é best-effort: falhas não desfazem a
// criação do usuário (exceto no modo atômico).
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, errors.ErrMissingRequiredFields
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	// Pré-checagem de duplicidade. Não é atômica: o índice único em
	// users.email cobre a corrida e o repositório traduz a violação
	// para ErrEmailAlreadyExists.
	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         entities.NormalizeRole(input.Role),
		Whatsapp:     input.Whatsapp,
		CEP:          input.CEP,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if s.atomic {
		return s.registerAtomic(ctx, user, input)
	}

	s.logger.Info("creating user", "email", user.Email.String(), "role", string(user.Role))

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if user.IsProvider() && input.Professional != nil {
		if err := s.provisionProviderProfile(ctx, user, input); err != nil {
			// Não interromper o registro do usuário se falhar a criação
			// das entidades relacionadas.
			s.logger.Error("failed to provision provider profile",
				"user_id", user.ID,
				"error", err,
			)
		}
	}

	return user, nil
}

// registerAtomic é o modo transacional explícito (REGISTRATION_ATOMIC=true):
// usuário e perfil de prestador são criados em uma única transação.
func (s *UserService) registerAtomic(ctx context.Context, user *entities.User, input RegisterInput) (*entities.User, error) {
	s.logger.Info("creating user (atomic mode)", "email", user.Email.String(), "role", string(user.Role))

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		if user.IsProvider() && input.Professional != nil {
			return s.provisionProviderProfile(txCtx, user, input)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// provisionProviderProfile cria categoria, serviço e área padrão do prestador
func (s *UserService) provisionProviderProfile(ctx context.Context, user *entities.User, input RegisterInput) error {
	categoryName := entities.DefaultCategoryName
	if len(input.Professional.Categories) > 0 {
		categoryName = input.Professional.Categories[0]
	}

	category, err := s.categoryRepo.FindOrCreateByName(ctx, categoryName)
	if err != nil {
		return &errors.ProvisioningError{Step: "category", Err: err}
	}

	priceRange := entities.PriceNegotiable
	if input.Professional.HourlyRate != nil {
		priceRange = formatHourlyRate(*input.Professional.HourlyRate)
	}

	service := &entities.Service{
		Title:       user.Name + " - " + category.Name,
		Description: input.Professional.Description,
		PriceRange:  priceRange,
		ProviderID:  user.ID,
		CategoryID:  category.ID,
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return &errors.ProvisioningError{Step: "service", Err: err}
	}

	area := &entities.ServiceArea{
		ServiceID:    service.ID,
		City:         "",
		Neighborhood: entities.NeighborhoodNotInformed,
	}
	if input.Address != nil {
		area.City = input.Address.City
		if input.Address.Neighborhood != "" {
			area.Neighborhood = input.Address.Neighborhood
		} else if input.Address.Bairro != "" {
			area.Neighborhood = input.Address.Bairro
		}
	}

	if err := s.serviceRepo.CreateArea(ctx, area); err != nil {
		return &errors.ProvisioningError{Step: "area", Err: err}
	}

	s.logger.Info("provider profile provisioned",
		"user_id", user.ID,
		"service_id", service.ID,
		"category", category.Name,
	)

	return nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// formatHourlyRate formata o valor/hora para o campo textual priceRange,
// sem casas decimais supérfluas (80 -> "80", 79.9 -> "79.9")
func formatHourlyRate(rate float64) string {
	return fmt.Sprintf("%g", rate)
}
