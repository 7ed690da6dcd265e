package wheel

import (
	"fmt"
	"strings"

	"github.com/wheelbot/wheelie/internal/models"
)

const (
	// FullCircle is the angular span of the wheel in degrees
	FullCircle = 360.0

	// MinWeight is the smallest weight an option may carry
	MinWeight = 0.1

	// MinOptions is the smallest option set that forms a meaningful wheel
	MinOptions = 2
)

// Segment is the angular range [Start, End) in degrees assigned to the
// option at the same index in the option set
type Segment struct {
	Start float64
	End   float64
}

// BuildPartition divides the circle among the options in proportion to
// their weights, in option order, with the first option starting at 0
// degrees. The segments are contiguous and cover [0, 360) exactly once.
func BuildPartition(options []models.Option) ([]Segment, error) {
	if len(options) < MinOptions {
		return nil, fmt.Errorf("%w: need at least %d options, got %d", ErrInvalidConfiguration, MinOptions, len(options))
	}

	var totalWeight float64
	for _, opt := range options {
		if strings.TrimSpace(opt.Label) == "" {
			return nil, fmt.Errorf("%w: option labels cannot be empty", ErrInvalidConfiguration)
		}

		if opt.Weight < MinWeight {
			return nil, fmt.Errorf("%w: option %q has weight %g, minimum is %g", ErrInvalidConfiguration, opt.Label, opt.Weight, MinWeight)
		}

		totalWeight += opt.Weight
	}

	if totalWeight <= 0 {
		return nil, fmt.Errorf("%w: total weight must be positive", ErrInvalidConfiguration)
	}

	segments := make([]Segment, len(options))

	var running float64
	var cursor float64

	for i, opt := range options {
		running += opt.Weight
		end := FullCircle * running / totalWeight

		segments[i] = Segment{
			Start: cursor,
			End:   end,
		}

		cursor = end
	}

	// Prefix sums can leave the final edge a hair off 360; snap it so the
	// partition closes the circle exactly.
	segments[len(segments)-1].End = FullCircle

	return segments, nil
}
