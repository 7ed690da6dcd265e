package spinlog

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/wheelbot/wheelie/internal/repositories/spinlog Repository

import (
	"context"
)

// Repository defines the interface for spin history persistence
type Repository interface {
	// AddSpinRecord appends a spin record to a wheel's history
	AddSpinRecord(ctx context.Context, input *AddSpinRecordInput) error

	// GetRecentSpins retrieves the most recent spin records for a wheel,
	// newest first
	GetRecentSpins(ctx context.Context, input *GetRecentSpinsInput) (*GetRecentSpinsOutput, error)

	// CountSpins returns the number of recorded spins for a wheel
	CountSpins(ctx context.Context, input *CountSpinsInput) (*CountSpinsOutput, error)

	// DeleteSpinsForWheel removes all spin records for a wheel
	DeleteSpinsForWheel(ctx context.Context, input *DeleteSpinsForWheelInput) error
}
