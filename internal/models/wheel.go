package models

import (
	"time"
)

// WheelStatus represents the current state of a wheel
type WheelStatus string

const (
	// WheelStatusIdle indicates the wheel is at rest and may be spun
	WheelStatusIdle WheelStatus = "idle"

	// WheelStatusSpinning indicates a spin is in flight; further spin
	// requests are rejected until the wheel returns to idle
	WheelStatusSpinning WheelStatus = "spinning"
)

// Wheel represents a decision wheel owned by a Discord channel
type Wheel struct {
	// ID is the unique identifier for the wheel
	ID string

	// ChannelID is the Discord channel the wheel belongs to
	ChannelID string

	// CreatorID is the Discord user who created the wheel
	CreatorID string

	// Status is the current state of the wheel
	Status WheelStatus

	// Options are the wedges in their fixed angular order; the first
	// option starts at 0 degrees
	Options []Option

	// LastAngle is the absolute rotation angle the wheel came to rest
	// at after its most recent spin, in degrees
	LastAngle float64

	// CreatedAt is when the wheel was created
	CreatedAt time.Time

	// UpdatedAt is when the wheel was last updated
	UpdatedAt time.Time
}
