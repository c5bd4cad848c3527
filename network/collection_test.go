package network_test

import (
	"testing"

	"github.com/mdwhitten/microwave-networks/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSweep builds a collection of matched attenuators keyed by the
// given frequencies, one loss value per frequency.
func newSweep(t *testing.T, freqs []float64, lossesDB []float64) *network.Collection {
	t.Helper()
	require.Equal(t, len(freqs), len(lossesDB))
	c, err := network.NewCollection(2, network.Scattering)
	require.NoError(t, err)
	for i, f := range freqs {
		require.NoError(t, c.Set(f, attenuator(t, lossesDB[i])))
	}

	return c
}

// TestCollection_SetGetRemove exercises the basic keyed operations and
// their sentinels.
func TestCollection_SetGetRemove(t *testing.T) {
	c, err := network.NewCollection(2, network.Scattering)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	m := attenuator(t, 3)
	require.NoError(t, c.Set(1e9, m))
	assert.True(t, c.Contains(1e9))

	got, err := c.Get(1e9)
	require.NoError(t, err)
	assert.Same(t, m, got)

	_, err = c.Get(2e9)
	assert.ErrorIs(t, err, network.ErrFrequencyNotFound)

	_, ok := c.TryGet(2e9)
	assert.False(t, ok)

	require.NoError(t, c.Remove(1e9))
	assert.ErrorIs(t, c.Remove(1e9), network.ErrFrequencyNotFound)
	assert.Equal(t, 0, c.Len())
}

// TestCollection_AddDuplicate verifies Add refuses to replace while Set
// upserts.
func TestCollection_AddDuplicate(t *testing.T) {
	c := newSweep(t, []float64{1e9}, []float64{3})

	err := c.Add(1e9, attenuator(t, 5))
	assert.ErrorIs(t, err, network.ErrDuplicateFrequency)

	require.NoError(t, c.Set(1e9, attenuator(t, 5)))
	m, err := c.Get(1e9)
	require.NoError(t, err)
	s21, err := m.At(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, -5, s21.MagnitudeDB(), 1e-9)
}

// TestCollection_Validation rejects matrices that do not share the
// collection's port count or variant.
func TestCollection_Validation(t *testing.T) {
	c, err := network.NewCollection(2, network.Scattering)
	require.NoError(t, err)

	one := mustMatrix(t, 1, network.Scattering, []complex128{0.5})
	assert.ErrorIs(t, c.Set(1e9, one), network.ErrPortCountMismatch)

	tm, err := network.NewMatrix(2, network.Transfer)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Set(1e9, tm), network.ErrVariantMismatch)
}

// TestCollection_FrequenciesSorted verifies ascending iteration order
// regardless of insertion order.
func TestCollection_FrequenciesSorted(t *testing.T) {
	c := newSweep(t,
		[]float64{3e9, 1e9, 2e9, 5e8},
		[]float64{1, 2, 3, 4})

	assert.Equal(t, []float64{5e8, 1e9, 2e9, 3e9}, c.Frequencies())
}

// TestCollection_Nearest covers the whole lookup law: exact hit,
// boundary clamping, strictly closer neighbor and the successor
// winning an exact tie.
func TestCollection_Nearest(t *testing.T) {
	c := newSweep(t,
		[]float64{1e9, 2e9, 4e9},
		[]float64{1, 2, 3})

	// Exact hit.
	f, _, err := c.Nearest(2e9)
	require.NoError(t, err)
	assert.Equal(t, 2e9, f)

	// Below the minimum clamps to the first entry.
	f, _, err = c.Nearest(1e3)
	require.NoError(t, err)
	assert.Equal(t, 1e9, f)

	// Above the maximum clamps to the last entry.
	f, _, err = c.Nearest(9e9)
	require.NoError(t, err)
	assert.Equal(t, 4e9, f)

	// Strictly closer predecessor.
	f, _, err = c.Nearest(1.2e9)
	require.NoError(t, err)
	assert.Equal(t, 1e9, f)

	// Strictly closer successor.
	f, _, err = c.Nearest(3.5e9)
	require.NoError(t, err)
	assert.Equal(t, 4e9, f)

	// Exact midpoint: successor wins.
	f, _, err = c.Nearest(3e9)
	require.NoError(t, err)
	assert.Equal(t, 4e9, f)
}

// TestCollection_NearestEmpty reports ErrEmptyCollection.
func TestCollection_NearestEmpty(t *testing.T) {
	c, err := network.NewCollection(2, network.Scattering)
	require.NoError(t, err)

	_, _, err = c.Nearest(1e9)
	assert.ErrorIs(t, err, network.ErrEmptyCollection)
}

// TestCollection_CascadeWith cascades two sweeps: common frequencies
// combine, frequencies missing from either operand are excluded.
func TestCollection_CascadeWith(t *testing.T) {
	a := newSweep(t,
		[]float64{1e9, 2e9, 3e9},
		[]float64{3, 3, 3})
	b := newSweep(t,
		[]float64{2e9, 3e9, 4e9},
		[]float64{5, 5, 5})

	got, err := a.CascadeWith(b)
	require.NoError(t, err)

	assert.Equal(t, []float64{2e9, 3e9}, got.Frequencies(),
		"only frequencies present in every operand survive")
	assert.Equal(t, network.Scattering, got.Variant())

	m, err := got.Get(2e9)
	require.NoError(t, err)
	s21, err := m.At(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, -8, s21.MagnitudeDB(), 1e-6)
}

// TestCollection_CascadeWithMismatch rejects operands of a different
// port count.
func TestCollection_CascadeWithMismatch(t *testing.T) {
	a := newSweep(t, []float64{1e9}, []float64{3})
	b, err := network.NewCollection(4, network.Scattering)
	require.NoError(t, err)

	_, err = a.CascadeWith(b)
	assert.ErrorIs(t, err, network.ErrPortCountMismatch)
}
