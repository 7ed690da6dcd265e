package models

// Option represents one wedge of a wheel
type Option struct {
	// Label is the text displayed on the wedge
	Label string

	// Color is the display color of the wedge (e.g. "#e74c3c"); the
	// selection math never looks at it
	Color string

	// Weight controls the wedge's proportional share of the circle
	Weight float64
}
