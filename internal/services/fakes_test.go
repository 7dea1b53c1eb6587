package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/entities"
	domainerrors "github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/ports"
	"github.com/conectabairro/conecta-bairro-backend/internal/domain/repositories"
)

// Fakes em memória para o teste da camada de serviços.

type fakeUserRepo struct {
	users      []*entities.User
	nextID     int
	failCreate error
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	for _, u := range r.users {
		if u.Email.String() == user.Email.String() {
			return domainerrors.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	stored := *user
	r.users = append(r.users, &stored)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email.String() == email {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

type fakeCategoryRepo struct {
	categories []*entities.Category
	nextID     int
	failUpsert error
}

func (r *fakeCategoryRepo) FindOrCreateByName(_ context.Context, name string) (*entities.Category, error) {
	if r.failUpsert != nil {
		return nil, r.failUpsert
	}
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	r.nextID++
	category := &entities.Category{
		ID:   fmt.Sprintf("category-%d", r.nextID),
		Name: name,
	}
	r.categories = append(r.categories, category)
	return category, nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id string) (*entities.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

type fakeServiceRepo struct {
	services   []*entities.Service
	areas      []*entities.ServiceArea
	nextID     int
	failCreate error
	failArea   error
}

func (r *fakeServiceRepo) Create(_ context.Context, service *entities.Service) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.nextID++
	service.ID = fmt.Sprintf("service-%d", r.nextID)
	stored := *service
	r.services = append(r.services, &stored)
	return nil
}

func (r *fakeServiceRepo) CreateArea(_ context.Context, area *entities.ServiceArea) error {
	if r.failArea != nil {
		return r.failArea
	}
	r.nextID++
	area.ID = fmt.Sprintf("area-%d", r.nextID)
	stored := *area
	r.areas = append(r.areas, &stored)
	return nil
}

func (r *fakeServiceRepo) FindByID(_ context.Context, id string) (*entities.Service, error) {
	for _, s := range r.services {
		if s.ID == id {
			found := *s
			found.Areas = r.areasOf(id)
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeServiceRepo) List(_ context.Context, filters repositories.ServiceFilters) ([]*entities.Service, error) {
	var result []*entities.Service
	for _, s := range r.services {
		enriched := *s
		enriched.Areas = r.areasOf(s.ID)
		if filters.Category != "" && (enriched.Category == nil || enriched.Category.Name != filters.Category) {
			continue
		}
		if filters.Bairro != "" && !enriched.ServedIn(filters.Bairro) {
			continue
		}
		result = append(result, &enriched)
	}
	return result, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, service *entities.Service) error {
	for i, s := range r.services {
		if s.ID == service.ID {
			stored := *service
			r.services[i] = &stored
			return nil
		}
	}
	return errors.New("service not found")
}

func (r *fakeServiceRepo) Delete(_ context.Context, id string) error {
	for i, s := range r.services {
		if s.ID == id {
			r.services = append(r.services[:i], r.services[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeServiceRepo) areasOf(serviceID string) []entities.ServiceArea {
	var areas []entities.ServiceArea
	for _, a := range r.areas {
		if a.ServiceID == serviceID {
			areas = append(areas, *a)
		}
	}
	return areas
}

type fakeRequestRepo struct {
	requests []*entities.Request
	nextID   int
}

func (r *fakeRequestRepo) Create(_ context.Context, request *entities.Request) error {
	r.nextID++
	request.ID = fmt.Sprintf("request-%d", r.nextID)
	stored := *request
	r.requests = append(r.requests, &stored)
	return nil
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id string) (*entities.Request, error) {
	for _, req := range r.requests {
		if req.ID == id {
			found := *req
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeRequestRepo) Update(_ context.Context, request *entities.Request) error {
	for i, req := range r.requests {
		if req.ID == request.ID {
			stored := *request
			r.requests[i] = &stored
			return nil
		}
	}
	return errors.New("request not found")
}

type fakeReviewRepo struct {
	reviews []*entities.Review
	nextID  int
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entities.Review) error {
	r.nextID++
	review.ID = fmt.Sprintf("review-%d", r.nextID)
	stored := *review
	r.reviews = append(r.reviews, &stored)
	return nil
}

func (r *fakeReviewRepo) ListByService(_ context.Context, serviceID string) ([]*entities.Review, error) {
	var result []*entities.Review
	for _, rev := range r.reviews {
		if rev.ServiceID == serviceID {
			found := *rev
			result = append(result, &found)
		}
	}
	return result, nil
}

// fakeUnitOfWork executa a função diretamente; registra se houve rollback
type fakeUnitOfWork struct {
	rolledBack bool
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (u *fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (u *fakeUnitOfWork) Rollback(context.Context) error                     { return nil }

func (u *fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		u.rolledBack = true
		return err
	}
	return nil
}

// plainHasher marca o hash de forma reconhecível, sem custo de bcrypt
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (plainHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenManager emite tokens determinísticos para inspeção nos testes
type fakeTokenManager struct{}

func (fakeTokenManager) Sign(claims ports.TokenClaims, _ time.Duration) (string, error) {
	return "token:" + claims.UserID + ":" + claims.Role, nil
}

func (fakeTokenManager) Verify(token string) (*ports.TokenClaims, error) {
	parts := strings.SplitN(token, ":", 3)
	if len(parts) != 3 || parts[0] != "token" {
		return nil, errors.New("invalid token")
	}
	return &ports.TokenClaims{UserID: parts[1], Role: parts[2]}, nil
}

// nopLogger descarta tudo
type nopLogger struct{}

func (l nopLogger) Info(string, ...any)      {}
func (l nopLogger) Error(string, ...any)     {}
func (l nopLogger) Debug(string, ...any)     {}
func (l nopLogger) Warn(string, ...any)      {}
func (l nopLogger) With(...any) ports.Logger { return l }
