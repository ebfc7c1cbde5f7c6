package storage

import (
	"context"

	"github.com/iudanet/depotsync/internal/models"
)

//go:generate moq -out deadletter_mock.go . DeadLetterStorage

// DeadLetterStorage archive of entries dropped after a permanent failure
type DeadLetterStorage interface {
	// AddDeadLetter stores dl and returns its assigned id
	AddDeadLetter(ctx context.Context, dl *models.DeadLetter) (uint64, error)

	// ListDeadLetters returns dead letters, oldest first
	ListDeadLetters(ctx context.Context) ([]*models.DeadLetter, error)

	// GetDeadLetter returns ErrDeadLetterNotFound if id doesn't exist
	GetDeadLetter(ctx context.Context, id uint64) (*models.DeadLetter, error)

	DeleteDeadLetter(ctx context.Context, id uint64) error
}
