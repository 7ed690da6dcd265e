package spin

import (
	"github.com/wheelbot/wheelie/internal/common/clock"
	"github.com/wheelbot/wheelie/internal/common/uuid"
	"github.com/wheelbot/wheelie/internal/models"
	spinlogRepo "github.com/wheelbot/wheelie/internal/repositories/spinlog"
	wheelRepo "github.com/wheelbot/wheelie/internal/repositories/wheel"
	"github.com/wheelbot/wheelie/internal/rng"
	"github.com/wheelbot/wheelie/internal/wheel"
)

// Config holds configuration for the spin service
type Config struct {
	// Wheel repository
	WheelRepo wheelRepo.Repository

	// Spin log repository
	SpinLogRepo spinlogRepo.Repository

	// Random source feeding spins
	RandomSource rng.Source

	// Clock for timestamps
	Clock clock.Clock

	// UUID generator for record IDs
	UUIDGenerator uuid.UUID

	// Maximum number of options per wheel
	MaxOptions int

	// Default number of records returned by GetHistory
	DefaultHistoryLimit int
}

// CreateWheelInput contains parameters for creating a wheel
type CreateWheelInput struct {
	ChannelID string
	CreatorID string

	// Options for the new wheel; when empty a default Yes/No wheel is
	// created
	Options []models.Option
}

// CreateWheelOutput contains the result of creating a wheel
type CreateWheelOutput struct {
	WheelID string
	Wheel   *models.Wheel
}

// GetWheelInput contains parameters for retrieving a wheel
type GetWheelInput struct {
	WheelID string
}

// GetWheelOutput contains the retrieved wheel and its angular partition
type GetWheelOutput struct {
	Wheel    *models.Wheel
	Segments []wheel.Segment
}

// GetWheelByChannelInput contains parameters for retrieving a channel's wheel
type GetWheelByChannelInput struct {
	ChannelID string
}

// GetWheelByChannelOutput contains the retrieved wheel and its angular partition
type GetWheelByChannelOutput struct {
	Wheel    *models.Wheel
	Segments []wheel.Segment
}

// AddOptionInput contains parameters for appending an option
type AddOptionInput struct {
	WheelID string
	Option  models.Option
}

// AddOptionOutput contains the updated wheel
type AddOptionOutput struct {
	Wheel *models.Wheel
}

// RemoveOptionInput contains parameters for removing an option by label
type RemoveOptionInput struct {
	WheelID string
	Label   string
}

// RemoveOptionOutput contains the updated wheel
type RemoveOptionOutput struct {
	Wheel *models.Wheel
}

// ReplaceOptionsInput contains parameters for swapping a wheel's options
type ReplaceOptionsInput struct {
	WheelID string
	Options []models.Option
}

// ReplaceOptionsOutput contains the updated wheel
type ReplaceOptionsOutput struct {
	Wheel *models.Wheel
}

// DeleteWheelInput contains parameters for deleting a wheel
type DeleteWheelInput struct {
	WheelID string
}

// DeleteWheelOutput contains the result of deleting a wheel
type DeleteWheelOutput struct {
	Success bool
}

// SpinInput contains parameters for spinning a wheel
type SpinInput struct {
	WheelID    string
	PlayerID   string
	PlayerName string
}

// SpinOutput contains the outcome of a spin
type SpinOutput struct {
	// Record is the persisted spin outcome
	Record *models.SpinRecord

	// Option is the wedge the wheel landed on
	Option models.Option

	// Angle is the absolute rotation angle that produced the result
	Angle float64
}

// GetHistoryInput contains parameters for retrieving spin history
type GetHistoryInput struct {
	WheelID string

	// Limit caps the number of records returned; 0 uses the service default
	Limit int
}

// GetHistoryOutput contains recent spin records, newest first
type GetHistoryOutput struct {
	Records    []*models.SpinRecord
	TotalSpins int64
}
