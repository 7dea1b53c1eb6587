package entities

import (
	"time"

	"github.com/conectabairro/conecta-bairro-backend/internal/domain/errors"
)

// RequestStatus representa o estado de uma solicitação de serviço
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusAccepted   RequestStatus = "accepted"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
	StatusCancelled  RequestStatus = "cancelled"
)

// StatusTransitions mapeia cada estado para os estados permitidos a seguir.
// Estados finais (completed, cancelled) não têm saída.
var StatusTransitions = map[RequestStatus][]RequestStatus{
	StatusPending:    {StatusAccepted, StatusCancelled},
	StatusAccepted:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// IsValid verifica se o status é conhecido
func (s RequestStatus) IsValid() bool {
	_, ok := StatusTransitions[s]
	return ok
}

// CanTransitionTo verifica se a transição de estado é permitida
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range StatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Request representa uma solicitação de contratação de um serviço
type Request struct {
	ID          string
	ServiceID   string
	RequesterID string
	Message     string
	Status      RequestStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Transition aplica uma mudança de status validada pela tabela de transições
func (r *Request) Transition(next RequestStatus) error {
	if !next.IsValid() {
		return errors.ErrInvalidStatus
	}
	if !r.Status.CanTransitionTo(next) {
		return errors.ErrInvalidStatusTransition
	}
	r.Status = next
	return nil
}
