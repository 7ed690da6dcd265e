package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelbot/wheelie/internal/rng"
)

// scriptedSource returns canned values so spin targets are exact
type scriptedSource struct {
	revolutions int
	fraction    float64
}

func (s *scriptedSource) Intn(n int) int   { return s.revolutions }
func (s *scriptedSource) Float64() float64 { return s.fraction }

func TestSpinUsesMinimumRevolutionsPlusRandomAngle(t *testing.T) {
	options := testOptions()

	// Zero extra revolutions, zero extra angle: exactly 5 full turns,
	// which leaves the first option at the pointer
	result, err := Spin(options, &scriptedSource{revolutions: 0, fraction: 0})
	require.NoError(t, err)
	assert.Equal(t, float64(MinRevolutions)*FullCircle, result.Angle)
	assert.Equal(t, "A", result.Option.Label)

	// Half a turn extra lands B's far seam exactly on the pointer
	result, err = Spin(options, &scriptedSource{revolutions: 0, fraction: 0.5})
	require.NoError(t, err)
	assert.Equal(t, float64(MinRevolutions)*FullCircle+180, result.Angle)
	assert.Equal(t, "B", result.Option.Label)

	// Three quarters extra: A's segment ends on the pointer and claims it
	result, err = Spin(options, &scriptedSource{revolutions: 0, fraction: 0.75})
	require.NoError(t, err)
	assert.Equal(t, float64(MinRevolutions)*FullCircle+270, result.Angle)
	assert.Equal(t, "A", result.Option.Label)
}

func TestSpinAngleStaysWithinRevolutionBounds(t *testing.T) {
	options := testOptions()
	source := rng.New(&rng.Config{Seed: 99})

	for i := 0; i < 200; i++ {
		result, err := Spin(options, source)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, result.Angle, float64(MinRevolutions)*FullCircle)
		assert.Less(t, result.Angle, float64(MaxRevolutions+1)*FullCircle)
	}
}

func TestSpinIsDeterministicForAFixedSeed(t *testing.T) {
	options := testOptions()

	first := rng.New(&rng.Config{Seed: 42})
	second := rng.New(&rng.Config{Seed: 42})

	for i := 0; i < 50; i++ {
		a, err := Spin(options, first)
		require.NoError(t, err)

		b, err := Spin(options, second)
		require.NoError(t, err)

		assert.Equal(t, a.Angle, b.Angle)
		assert.Equal(t, a.Option.Label, b.Option.Label)
	}
}

func TestSpinResultMatchesResolverForItsAngle(t *testing.T) {
	options := testOptions()
	segments, err := BuildPartition(options)
	require.NoError(t, err)

	source := rng.New(&rng.Config{Seed: 7})

	for i := 0; i < 100; i++ {
		result, err := Spin(options, source)
		require.NoError(t, err)

		assert.Equal(t, Resolve(result.Angle, segments, options).Label, result.Option.Label)
	}
}

func TestSpinRejectsInvalidConfigurations(t *testing.T) {
	source := rng.New(&rng.Config{Seed: 1})

	result, err := Spin(testOptions()[:1], source)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
