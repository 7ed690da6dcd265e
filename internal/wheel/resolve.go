package wheel

import (
	"math"

	"github.com/wheelbot/wheelie/internal/models"
)

// pointerAngle is the fixed reference point the result is read at. The
// winning option is whichever segment sits at this mark once the wheel
// has been rotated.
const pointerAngle = 0.0

// Normalize maps any rotation angle, including negative values and values
// beyond a full turn, onto [0, 360).
func Normalize(angle float64) float64 {
	return math.Mod(math.Mod(angle, FullCircle)+FullCircle, FullCircle)
}

// Resolve returns the option whose segment sits at the pointer after the
// wheel has been rotated by the given angle. The rotation may be any real
// number of degrees.
//
// The partition covers the circle exactly, so exactly one segment contains
// the pointer for any rotation away from a seam. A rotation that lands a
// segment edge exactly on the pointer satisfies two segments, the one
// ending there (its rotated end normalizes to 0, which is the 360 mark)
// and the one starting there; iteration order picks the winner, so the
// outcome is deterministic. If floating-point error at a seam still leaves
// no match, the first option is returned; the fallback is deterministic on
// purpose so a seam landing never fails a spin.
func Resolve(rotation float64, segments []Segment, options []models.Option) models.Option {
	rot := Normalize(rotation)

	for i, seg := range segments {
		rotatedStart := Normalize(seg.Start + rot)
		rotatedEnd := Normalize(seg.End + rot)

		// A rotated end of exactly 0 is the 360 edge: the segment ends
		// right on the pointer seam and claims it.
		if rotatedEnd == pointerAngle {
			return options[i]
		}

		if rotatedStart < rotatedEnd {
			// Segment does not wrap; it contains the pointer only when
			// it starts exactly on it.
			if rotatedStart <= pointerAngle && pointerAngle < rotatedEnd {
				return options[i]
			}
		} else {
			// Segment wraps across the 0/360 boundary.
			if pointerAngle >= rotatedStart || pointerAngle < rotatedEnd {
				return options[i]
			}
		}
	}

	return options[0]
}
