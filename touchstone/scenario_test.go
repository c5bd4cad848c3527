package touchstone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdwhitten/microwave-networks/network"
)

// TestScenario_OnePortSweep: a one-port reflection sweep with a 75 Ω
// reference decodes to the expected polar values.
func TestScenario_OnePortSweep(t *testing.T) {
	src := `! one-port reflection sweep
# MHz S MA R 75
100 0.99 -4
200 0.98 -8
300 0.97 -12
400 0.96 -16
500 0.95 -20
`
	doc := decodeAll(t, src)
	assert.InDelta(t, 75.0, doc.Options.Resistance, eps)
	assert.Equal(t, 1, doc.Networks.Ports())
	assert.Equal(t, 5, doc.Networks.Len())

	m, err := doc.Networks.Get(100e6)
	require.NoError(t, err)
	got, err := m.At(1, 1)
	require.NoError(t, err)
	want := network.FromPolarDeg(0.99, -4)
	assert.InDelta(t, want.Real(), got.Real(), eps)
	assert.InDelta(t, want.Imag(), got.Imag(), eps)
}

// TestScenario_TwoPortInsertion: small rectangular S21 values survive
// decoding exactly.
func TestScenario_TwoPortInsertion(t *testing.T) {
	src := `# GHz S RI R 50
1 0.9 0.1 -0.0003 -0.0021 -0.0003 -0.0021 0.9 -0.1
`
	doc := decodeAll(t, src)
	m, err := doc.Networks.Get(1e9)
	require.NoError(t, err)
	s21, err := m.At(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, -0.0003, s21.Real(), eps)
	assert.InDelta(t, -0.0021, s21.Imag(), eps)
}

// TestScenario_FourPortLower: a four-port Version-2.0 file with Lower
// storage and a mixed reference list reconstructs the full symmetric
// matrix.
func TestScenario_FourPortLower(t *testing.T) {
	src := `[Version] 2.0
# GHz S RI R 50
[Number of Ports] 4
[Reference] 50 75 0.01 0.01
[Matrix Format] Lower
[Network Data]
1 0.11 0 0.21 0 0.31 0 0.41 0
  0.22 0 0.32 0 0.42 0
  0.33 0 0.43 0
  0.44 0
[End]
`
	doc := decodeAll(t, src)
	assert.Equal(t, []float64{50, 75, 0.01, 0.01}, doc.Keywords.Reference)
	m, err := doc.Networks.Get(1e9)
	require.NoError(t, err)

	for dest := 1; dest <= 4; dest++ {
		for from := 1; from <= 4; from++ {
			lo, hi := dest, from
			if lo < hi {
				lo, hi = hi, lo
			}
			assertCell(t, m, dest, from, float64(10*lo+hi)/100, 0)
		}
	}
}
