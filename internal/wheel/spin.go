package wheel

import (
	"github.com/wheelbot/wheelie/internal/models"
	"github.com/wheelbot/wheelie/internal/rng"
)

const (
	// MinRevolutions is the smallest number of full turns a spin makes
	MinRevolutions = 5

	// MaxRevolutions is the largest number of full turns a spin makes
	MaxRevolutions = 10
)

// Result carries the outcome of one spin
type Result struct {
	// Option is the wedge the wheel landed on
	Option models.Option

	// Angle is the absolute rotation angle that produced the result, in
	// degrees; always at least MinRevolutions full turns
	Angle float64
}

// Spin picks a random target angle of between MinRevolutions and
// MaxRevolutions full turns plus a uniformly random extra angle, then
// resolves the option sitting at the pointer for that target. Each spin
// starts from a fresh baseline; callers that animate a continuous wheel
// keep their own running angle.
//
// Spin is deterministic for a fixed source and fails only when the option
// set cannot form a valid partition.
func Spin(options []models.Option, source rng.Source) (*Result, error) {
	segments, err := BuildPartition(options)
	if err != nil {
		return nil, err
	}

	revolutions := MinRevolutions + source.Intn(MaxRevolutions-MinRevolutions+1)
	angle := float64(revolutions)*FullCircle + source.Float64()*FullCircle

	return &Result{
		Option: Resolve(angle, segments, options),
		Angle:  angle,
	}, nil
}
