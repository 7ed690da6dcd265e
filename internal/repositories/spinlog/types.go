package spinlog

import "github.com/wheelbot/wheelie/internal/models"

// AddSpinRecordInput contains parameters for appending a spin record
type AddSpinRecordInput struct {
	Record *models.SpinRecord
}

// GetRecentSpinsInput contains parameters for retrieving recent spins
type GetRecentSpinsInput struct {
	WheelID string

	// Limit caps the number of records returned; 0 means all
	Limit int
}

// GetRecentSpinsOutput contains the retrieved spin records, newest first
type GetRecentSpinsOutput struct {
	Records []*models.SpinRecord
}

// CountSpinsInput contains parameters for counting a wheel's spins
type CountSpinsInput struct {
	WheelID string
}

// CountSpinsOutput contains the spin count
type CountSpinsOutput struct {
	Count int64
}

// DeleteSpinsForWheelInput contains parameters for deleting a wheel's history
type DeleteSpinsForWheelInput struct {
	WheelID string
}
