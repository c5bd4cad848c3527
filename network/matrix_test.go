package network_test

import (
	"testing"

	"github.com/mdwhitten/microwave-networks/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a ports×ports matrix from row-major cells, failing
// the test on any error.
func mustMatrix(t *testing.T, ports int, variant network.Variant, cells []complex128) *network.Matrix {
	t.Helper()
	require.Len(t, cells, ports*ports)
	m, err := network.NewMatrix(ports, variant)
	require.NoError(t, err)
	for d := 1; d <= ports; d++ {
		for s := 1; s <= ports; s++ {
			c := cells[(d-1)*ports+(s-1)]
			require.NoError(t, m.Set(d, s, network.NewParameter(real(c), imag(c))))
		}
	}

	return m
}

// assertCellsInDelta compares two matrices cell by cell within tol.
func assertCellsInDelta(t *testing.T, want, got *network.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Ports(), got.Ports())
	for d := 1; d <= want.Ports(); d++ {
		for s := 1; s <= want.Ports(); s++ {
			w, err := want.At(d, s)
			require.NoError(t, err)
			g, err := got.At(d, s)
			require.NoError(t, err)
			assert.InDelta(t, w.Real(), g.Real(), tol, "cell (%d,%d) real", d, s)
			assert.InDelta(t, w.Imag(), g.Imag(), tol, "cell (%d,%d) imag", d, s)
		}
	}
}

// TestNewMatrix_InvalidPortCount rejects non-positive port counts.
func TestNewMatrix_InvalidPortCount(t *testing.T) {
	_, err := network.NewMatrix(0, network.Scattering)
	assert.ErrorIs(t, err, network.ErrInvalidPortCount)

	_, err = network.NewMatrix(-2, network.Transfer)
	assert.ErrorIs(t, err, network.ErrInvalidPortCount)
}

// TestMatrix_IndexBounds verifies At/Set reject indices outside
// [1, Ports()] with ErrIndexOutOfRange.
func TestMatrix_IndexBounds(t *testing.T) {
	m, err := network.NewMatrix(2, network.Scattering)
	require.NoError(t, err)

	_, err = m.At(0, 1)
	assert.ErrorIs(t, err, network.ErrIndexOutOfRange)
	_, err = m.At(1, 3)
	assert.ErrorIs(t, err, network.ErrIndexOutOfRange)
	err = m.Set(3, 1, network.NewParameter(1, 0))
	assert.ErrorIs(t, err, network.ErrIndexOutOfRange)

	// Full valid range round trips.
	p := network.NewParameter(0.25, -0.5)
	require.NoError(t, m.Set(2, 1, p))
	got, err := m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

// TestMatrix_Clone verifies deep copy semantics.
func TestMatrix_Clone(t *testing.T) {
	m := mustMatrix(t, 2, network.Scattering, []complex128{1, 2, 3, 4})
	c := m.Clone()

	require.NoError(t, c.Set(1, 1, network.NewParameter(9, 9)))
	orig, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, network.NewParameter(1, 0), orig, "clone must not alias the original")
	assert.Equal(t, m.Variant(), c.Variant())
}

// TestMatrix_Determinant checks the closed 2×2 form and the LU path on
// a 3×3 complex matrix with a hand-computed determinant.
func TestMatrix_Determinant(t *testing.T) {
	m2 := mustMatrix(t, 2, network.Scattering, []complex128{
		1 + 1i, 2,
		3, 4 - 2i,
	})
	// (1+i)(4-2i) - 2*3 = 6+2i - 6 = 2i
	det := m2.Determinant()
	assert.InDelta(t, 0, det.Real(), eps)
	assert.InDelta(t, 2, det.Imag(), eps)

	m3 := mustMatrix(t, 3, network.Scattering, []complex128{
		2, 0, 1,
		1, 1i, 0,
		0, 3, 1,
	})
	// Expansion along the first row: 2(i·1-0·3) + 1(1·3-i·0)·(+1) = 3+2i
	det = m3.Determinant()
	assert.InDelta(t, 3, det.Real(), eps)
	assert.InDelta(t, 2, det.Imag(), eps)
}

// TestMatrix_DeterminantSingular confirms a rank-deficient matrix
// yields a zero determinant through the LU path.
func TestMatrix_DeterminantSingular(t *testing.T) {
	m := mustMatrix(t, 3, network.Scattering, []complex128{
		1, 2, 3,
		2, 4, 6,
		0, 1, 1,
	})
	det := m.Determinant()
	assert.InDelta(t, 0, det.Real(), eps)
	assert.InDelta(t, 0, det.Imag(), eps)
}

// TestMatrix_Inverse verifies A·A⁻¹ ≈ I for a complex matrix, and that
// the inverse carries the receiver's variant.
func TestMatrix_Inverse(t *testing.T) {
	m := mustMatrix(t, 3, network.Transfer, []complex128{
		2 + 1i, 1, 0,
		0, 1 - 1i, 2,
		1, 0, 3,
	})
	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.Equal(t, network.Transfer, inv.Variant())

	prod, err := network.Cascade(m, inv)
	require.NoError(t, err)
	identity := mustMatrix(t, 3, network.Transfer, []complex128{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	assertCellsInDelta(t, identity, prod, 1e-9)
}

// TestMatrix_InverseSingular confirms a singular matrix reports
// ErrSingularMatrix.
func TestMatrix_InverseSingular(t *testing.T) {
	m := mustMatrix(t, 2, network.Transfer, []complex128{
		1, 2,
		2, 4,
	})
	_, err := m.Inverse()
	assert.ErrorIs(t, err, network.ErrSingularMatrix)
}
