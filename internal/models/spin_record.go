package models

import (
	"time"
)

// SpinRecord represents the outcome of one spin of a wheel
type SpinRecord struct {
	// ID is the unique identifier for the record
	ID string

	// WheelID is the wheel that was spun
	WheelID string

	// ChannelID is the Discord channel the spin happened in
	ChannelID string

	// PlayerID is the Discord user who spun the wheel
	PlayerID string

	// PlayerName is the display name of the user who spun the wheel
	PlayerName string

	// Label is the label of the option the wheel landed on
	Label string

	// Color is the color of the option the wheel landed on
	Color string

	// Angle is the absolute rotation angle that produced the result,
	// in degrees (unbounded, e.g. 1730)
	Angle float64

	// Timestamp is when the spin happened
	Timestamp time.Time
}
