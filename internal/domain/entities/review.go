package entities

import (
	"errors"
	"time"
)

// Review representa uma avaliação deixada para um serviço
type Review struct {
	ID        string
	ServiceID string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// Validate valida regras de negócio da entidade Review
func (r *Review) Validate() error {
	if r.ServiceID == "" {
		return errors.New("service is required")
	}

	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}

	if r.Comment == "" {
		return errors.New("comment is required")
	}

	return nil
}
