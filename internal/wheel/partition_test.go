package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelbot/wheelie/internal/models"
)

const angleTolerance = 1e-6

func TestBuildPartitionCoversTheCircle(t *testing.T) {
	cases := []struct {
		name    string
		options []models.Option
	}{
		{
			name: "equal weights",
			options: []models.Option{
				{Label: "A", Weight: 1},
				{Label: "B", Weight: 1},
				{Label: "C", Weight: 1},
			},
		},
		{
			name: "uneven weights",
			options: []models.Option{
				{Label: "A", Weight: 0.1},
				{Label: "B", Weight: 2.5},
				{Label: "C", Weight: 7},
				{Label: "D", Weight: 0.4},
			},
		},
		{
			name: "many options",
			options: []models.Option{
				{Label: "A", Weight: 1}, {Label: "B", Weight: 2},
				{Label: "C", Weight: 3}, {Label: "D", Weight: 4},
				{Label: "E", Weight: 5}, {Label: "F", Weight: 6},
				{Label: "G", Weight: 7}, {Label: "H", Weight: 8},
				{Label: "I", Weight: 9}, {Label: "J", Weight: 10},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segments, err := BuildPartition(tc.options)
			require.NoError(t, err)
			require.Len(t, segments, len(tc.options))

			// First segment starts at 0, last ends at 360
			assert.Equal(t, 0.0, segments[0].Start)
			assert.InDelta(t, FullCircle, segments[len(segments)-1].End, angleTolerance)

			// Segments are contiguous
			for i := 1; i < len(segments); i++ {
				assert.InDelta(t, segments[i-1].End, segments[i].Start, angleTolerance,
					"segment %d should start where segment %d ends", i, i-1)
			}

			// Total span is the full circle
			var span float64
			for _, seg := range segments {
				span += seg.End - seg.Start
			}
			assert.InDelta(t, FullCircle, span, angleTolerance)
		})
	}
}

func TestBuildPartitionIsWeightProportional(t *testing.T) {
	options := []models.Option{
		{Label: "A", Weight: 0.5},
		{Label: "B", Weight: 1.5},
		{Label: "C", Weight: 3},
		{Label: "D", Weight: 5},
	}

	var totalWeight float64
	for _, opt := range options {
		totalWeight += opt.Weight
	}

	segments, err := BuildPartition(options)
	require.NoError(t, err)

	for i, seg := range segments {
		share := (seg.End - seg.Start) / FullCircle
		assert.InDelta(t, options[i].Weight/totalWeight, share, angleTolerance,
			"option %q angular share should match its weight share", options[i].Label)
	}
}

func TestBuildPartitionConcreteScenario(t *testing.T) {
	options := []models.Option{
		{Label: "A", Weight: 1},
		{Label: "B", Weight: 1},
		{Label: "C", Weight: 2},
	}

	segments, err := BuildPartition(options)
	require.NoError(t, err)
	require.Len(t, segments, 3)

	assert.InDelta(t, 0, segments[0].Start, angleTolerance)
	assert.InDelta(t, 90, segments[0].End, angleTolerance)
	assert.InDelta(t, 90, segments[1].Start, angleTolerance)
	assert.InDelta(t, 180, segments[1].End, angleTolerance)
	assert.InDelta(t, 180, segments[2].Start, angleTolerance)
	assert.InDelta(t, 360, segments[2].End, angleTolerance)
}

func TestBuildPartitionRejectsInvalidConfigurations(t *testing.T) {
	cases := []struct {
		name    string
		options []models.Option
	}{
		{
			name:    "no options",
			options: []models.Option{},
		},
		{
			name: "single option",
			options: []models.Option{
				{Label: "A", Weight: 1},
			},
		},
		{
			name: "zero weight",
			options: []models.Option{
				{Label: "A", Weight: 0},
				{Label: "B", Weight: 1},
			},
		},
		{
			name: "negative weight",
			options: []models.Option{
				{Label: "A", Weight: -1},
				{Label: "B", Weight: 1},
			},
		},
		{
			name: "weight below minimum",
			options: []models.Option{
				{Label: "A", Weight: 0.05},
				{Label: "B", Weight: 1},
			},
		},
		{
			name: "blank label",
			options: []models.Option{
				{Label: "   ", Weight: 1},
				{Label: "B", Weight: 1},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segments, err := BuildPartition(tc.options)
			assert.Nil(t, segments)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}
