package spin

import "context"

// Service defines the interface for wheel operations
type Service interface {
	// CreateWheel creates a new wheel for a Discord channel
	CreateWheel(ctx context.Context, input *CreateWheelInput) (*CreateWheelOutput, error)

	// GetWheel retrieves a wheel and its angular partition by ID
	GetWheel(ctx context.Context, input *GetWheelInput) (*GetWheelOutput, error)

	// GetWheelByChannel retrieves the wheel owned by a Discord channel
	GetWheelByChannel(ctx context.Context, input *GetWheelByChannelInput) (*GetWheelByChannelOutput, error)

	// AddOption appends an option to a wheel
	AddOption(ctx context.Context, input *AddOptionInput) (*AddOptionOutput, error)

	// RemoveOption removes an option from a wheel by label
	RemoveOption(ctx context.Context, input *RemoveOptionInput) (*RemoveOptionOutput, error)

	// ReplaceOptions swaps a wheel's option set wholesale
	ReplaceOptions(ctx context.Context, input *ReplaceOptionsInput) (*ReplaceOptionsOutput, error)

	// DeleteWheel removes a wheel and its spin history
	DeleteWheel(ctx context.Context, input *DeleteWheelInput) (*DeleteWheelOutput, error)

	// Spin spins a wheel and records the outcome
	Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error)

	// GetHistory returns recent spin outcomes for a wheel
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
