package zone

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMixMode(t *testing.T) {
	mode, err := ParseMixMode("Consumption")
	require.NoError(t, err)
	assert.Equal(t, MixModeConsumption, mode)
	assert.True(t, mode.IsConsumption())

	mode, err = ParseMixMode(" production ")
	require.NoError(t, err)
	assert.Equal(t, MixModeProduction, mode)
	assert.False(t, mode.IsConsumption())

	_, err = ParseMixMode("hourly")
	require.ErrorIs(t, err, ErrUnknownMixMode)
	assert.Contains(t, err.Error(), `"hourly"`)
}

func TestMixModeZeroValueIsProduction(t *testing.T) {
	var mode MixMode
	assert.False(t, mode.IsConsumption())
}

func TestValue(t *testing.T) {
	assert.True(t, math.IsNaN(Value(nil)))
	assert.InDelta(t, 3.5, Value(Float(3.5)), 0)
}

func TestSnapshotNilSafety(t *testing.T) {
	var s *Snapshot
	assert.Nil(t, s.Country("DE"))
	assert.Nil(t, s.ZoneNames())
}
