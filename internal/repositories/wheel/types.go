package wheel

import "github.com/wheelbot/wheelie/internal/models"

// SaveWheelInput contains parameters for persisting a wheel
type SaveWheelInput struct {
	Wheel *models.Wheel
}

// GetWheelInput contains parameters for retrieving a wheel by ID
type GetWheelInput struct {
	WheelID string
}

// GetWheelOutput contains the retrieved wheel
type GetWheelOutput struct {
	Wheel *models.Wheel
}

// GetWheelByChannelInput contains parameters for retrieving a channel's wheel
type GetWheelByChannelInput struct {
	ChannelID string
}

// GetWheelByChannelOutput contains the retrieved wheel
type GetWheelByChannelOutput struct {
	Wheel *models.Wheel
}

// DeleteWheelInput contains parameters for deleting a wheel
type DeleteWheelInput struct {
	WheelID string
}
