package wheel

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/wheelbot/wheelie/internal/repositories/wheel Repository

import (
	"context"
)

// Repository defines the interface for wheel data persistence
type Repository interface {
	// SaveWheel persists a wheel
	SaveWheel(ctx context.Context, input *SaveWheelInput) error

	// GetWheel retrieves a wheel by ID
	GetWheel(ctx context.Context, input *GetWheelInput) (*GetWheelOutput, error)

	// GetWheelByChannel retrieves the wheel owned by a Discord channel
	GetWheelByChannel(ctx context.Context, input *GetWheelByChannelInput) (*GetWheelByChannelOutput, error)

	// DeleteWheel removes a wheel and its channel mapping
	DeleteWheel(ctx context.Context, input *DeleteWheelInput) error
}
