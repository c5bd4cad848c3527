package network_test

import (
	"math"
	"testing"

	"github.com/mdwhitten/microwave-networks/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// attenuator builds a matched 2-port scattering matrix with infinite
// return loss (S11 = S22 = 0) and the given insertion loss in dB at
// zero phase.
func attenuator(t *testing.T, lossDB float64) *network.Matrix {
	t.Helper()
	m, err := network.NewMatrix(2, network.Scattering)
	require.NoError(t, err)
	through := network.FromMagnitudeDB(-lossDB, 0)
	require.NoError(t, m.Set(2, 1, through))
	require.NoError(t, m.Set(1, 2, through))

	return m
}

// TestCascade_Empty rejects an empty operand list.
func TestCascade_Empty(t *testing.T) {
	_, err := network.Cascade()
	assert.ErrorIs(t, err, network.ErrNoOperands)
}

// TestCascade_Identity verifies cascade([A]) == A numerically and in
// variant.
func TestCascade_Identity(t *testing.T) {
	a := mustMatrix(t, 2, network.Scattering, []complex128{
		0.1 + 0.05i, 0.9,
		0.85 - 0.1i, 0.2i,
	})
	got, err := network.Cascade(a)
	require.NoError(t, err)

	assert.Equal(t, network.Scattering, got.Variant())
	assertCellsInDelta(t, a, got, 1e-12)
}

// TestCascade_PortCountMismatch rejects operands with differing port
// counts.
func TestCascade_PortCountMismatch(t *testing.T) {
	two := attenuator(t, 3)
	one := mustMatrix(t, 1, network.Scattering, []complex128{0.5})

	_, err := network.Cascade(two, one)
	assert.ErrorIs(t, err, network.ErrPortCountMismatch)
}

// TestCascade_InsertionLossAdds cascades a 3 dB and a 5 dB matched
// attenuator: composite |S21| must be 8 dB down at zero phase.
func TestCascade_InsertionLossAdds(t *testing.T) {
	composite, err := network.Cascade(attenuator(t, 3), attenuator(t, 5))
	require.NoError(t, err)

	s21, err := composite.At(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, -8, s21.MagnitudeDB(), 1e-6)
	assert.InDelta(t, 0, s21.PhaseDeg(), 1e-6)

	s11, err := composite.At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0, s11.Magnitude(), 1e-9, "matched cascade stays matched")
}

// TestDeembed_RecoversDUT cascades leadIn(3 dB) · dut(1 dB) ·
// leadOut(5 dB) and de-embeds both fixtures; the device under test
// must come back within 1e-6.
func TestDeembed_RecoversDUT(t *testing.T) {
	leadIn := attenuator(t, 3)
	dut := attenuator(t, 1)
	leadOut := attenuator(t, 5)

	measured, err := network.Cascade(leadIn, dut, leadOut)
	require.NoError(t, err)

	recovered, err := measured.Deembed(leadIn, leadOut)
	require.NoError(t, err)
	assert.Equal(t, network.Scattering, recovered.Variant())
	assertCellsInDelta(t, dut, recovered, 1e-6)
}

// TestDeembed_InverseLaw checks deembed(cascade(L,D,R), L, R) ≈ D for
// non-trivial complex-valued 2-ports, in magnitude and phase.
func TestDeembed_InverseLaw(t *testing.T) {
	l := mustMatrix(t, 2, network.Scattering, []complex128{
		0.12 + 0.03i, 0.92 - 0.05i,
		0.90 + 0.08i, 0.07 - 0.11i,
	})
	d := mustMatrix(t, 2, network.Scattering, []complex128{
		0.21 - 0.04i, 0.77 + 0.10i,
		0.75 - 0.02i, 0.18 + 0.06i,
	})
	r := mustMatrix(t, 2, network.Scattering, []complex128{
		0.05 + 0.09i, 0.88 + 0.02i,
		0.87 - 0.07i, 0.14 + 0.01i,
	})

	measured, err := network.Cascade(l, d, r)
	require.NoError(t, err)
	recovered, err := measured.Deembed(l, r)
	require.NoError(t, err)

	for dest := 1; dest <= 2; dest++ {
		for src := 1; src <= 2; src++ {
			want, err := d.At(dest, src)
			require.NoError(t, err)
			got, err := recovered.At(dest, src)
			require.NoError(t, err)
			assert.InDelta(t, want.Magnitude(), got.Magnitude(), 1e-6)
			assert.InDelta(t, want.Phase(), got.Phase(), 1e-6)
		}
	}
}

// TestDeembed_SingleSided verifies DeembedLeft and DeembedRight undo
// exactly one fixture each.
func TestDeembed_SingleSided(t *testing.T) {
	fixture := attenuator(t, 2)
	dut := attenuator(t, 4)

	leftMeasured, err := network.Cascade(fixture, dut)
	require.NoError(t, err)
	got, err := leftMeasured.DeembedLeft(fixture)
	require.NoError(t, err)
	assertCellsInDelta(t, dut, got, 1e-6)

	rightMeasured, err := network.Cascade(dut, fixture)
	require.NoError(t, err)
	got, err = rightMeasured.DeembedRight(fixture)
	require.NoError(t, err)
	assertCellsInDelta(t, dut, got, 1e-6)
}

// TestCascade_TransferOperands cascades matrices already in Transfer
// form; no conversion happens and any port count works.
func TestCascade_TransferOperands(t *testing.T) {
	a := mustMatrix(t, 3, network.Transfer, []complex128{
		1, 0, 1i,
		0, 2, 0,
		0, 0, 1,
	})
	b := mustMatrix(t, 3, network.Transfer, []complex128{
		1, 1, 0,
		0, 1, 0,
		2, 0, 1,
	})
	got, err := network.Cascade(a, b)
	require.NoError(t, err)
	assert.Equal(t, network.Transfer, got.Variant())

	// Spot-check a couple of product cells: (1,1) = 1·1+0·0+i·2 = 1+2i.
	c11, err := got.At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1, c11.Real(), eps)
	assert.InDelta(t, 2, c11.Imag(), eps)

	// Attenuation sanity: |det| multiplies under cascade.
	wantDet := a.Determinant().Complex() * b.Determinant().Complex()
	gotDet := got.Determinant().Complex()
	assert.InDelta(t, real(wantDet), real(gotDet), eps)
	assert.InDelta(t, imag(wantDet), imag(gotDet), eps)
}

// TestAttenuatorHelper keeps the fixture honest: a 3 dB pad really is
// 3 dB down.
func TestAttenuatorHelper(t *testing.T) {
	m := attenuator(t, 3)
	s21, err := m.At(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(10, -3.0/20), s21.Magnitude(), eps)
}
