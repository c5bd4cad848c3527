// SPDX-License-Identifier: MIT

package network

// convertFunc transforms a matrix into another representation. Every
// entry returns a fresh matrix; inputs are never mutated.
type convertFunc func(*Matrix) (*Matrix, error)

// conversions is the exhaustive dispatch table keyed by (source,
// target) variant. Identity pairs are handled before lookup, so the
// table only carries genuine transformations.
var conversions = map[[2]Variant]convertFunc{
	{Scattering, Transfer}: scatteringToTransfer,
	{Transfer, Scattering}: transferToScattering,
}

// ConvertTo returns the matrix expressed in the target variant. When
// the receiver already is in the target variant it is returned
// unchanged (no copy). Conversion is defined in closed form for 2-port
// matrices only; 1-port and N>2-port conversion return
// ErrUnsupportedConversion.
func (m *Matrix) ConvertTo(target Variant) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.variant == target {
		return m, nil
	}
	fn, ok := conversions[[2]Variant{m.variant, target}]
	if !ok {
		return nil, ErrUnsupportedConversion
	}

	return fn(m)
}

// scatteringToTransfer applies the 2-port closed form:
//
//	T11 = -det(S)/S21   T12 = S11/S21
//	T21 = -S22/S21      T22 = 1/S21
//
// A zero S21 (no transmission) is singular.
func scatteringToTransfer(m *Matrix) (*Matrix, error) {
	if m.ports != 2 {
		return nil, ErrUnsupportedConversion
	}
	s11 := scalar(m.at(1, 1))
	s12 := scalar(m.at(1, 2))
	s21 := scalar(m.at(2, 1))
	s22 := scalar(m.at(2, 2))

	t11, t12, t21, t22, err := blockScatteringToTransfer(s11, s12, s21, s22)
	if err != nil {
		return nil, err
	}

	return assemble2(Transfer, t11, t12, t21, t22), nil
}

// transferToScattering applies the 2-port closed form:
//
//	S11 = T12/T22       S12 = det(T)/T22
//	S21 = 1/T22         S22 = -T21/T22
//
// A zero T22 is singular.
func transferToScattering(m *Matrix) (*Matrix, error) {
	if m.ports != 2 {
		return nil, ErrUnsupportedConversion
	}
	t11 := scalar(m.at(1, 1))
	t12 := scalar(m.at(1, 2))
	t21 := scalar(m.at(2, 1))
	t22 := scalar(m.at(2, 2))

	s11, s12, s21, s22, err := blockTransferToScattering(t11, t12, t21, t22)
	if err != nil {
		return nil, err
	}

	return assemble2(Scattering, s11, s12, s21, s22), nil
}

// blockScatteringToTransfer evaluates the S→T closed form over the
// element algebra. Written against element rather than complex128 so
// that a block-matrix element can reuse it for the N-port
// symmetry-extension technique.
func blockScatteringToTransfer(s11, s12, s21, s22 element) (t11, t12, t21, t22 element, err error) {
	inv21, err := s21.inv()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	det := s11.mul(s22).sub(s12.mul(s21))

	t11 = det.neg().mul(inv21)
	t12 = s11.mul(inv21)
	t21 = s22.neg().mul(inv21)
	t22 = inv21

	return t11, t12, t21, t22, nil
}

// blockTransferToScattering evaluates the T→S closed form over the
// element algebra; see blockScatteringToTransfer.
func blockTransferToScattering(t11, t12, t21, t22 element) (s11, s12, s21, s22 element, err error) {
	inv22, err := t22.inv()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	det := t11.mul(t22).sub(t12.mul(t21))

	s11 = t12.mul(inv22)
	s12 = det.mul(inv22)
	s21 = inv22
	s22 = t21.neg().mul(inv22)

	return s11, s12, s21, s22, nil
}

// assemble2 packs four scalar elements into a fresh 2-port matrix in
// (destination, source) order: e11 e12 / e21 e22.
func assemble2(variant Variant, e11, e12, e21, e22 element) *Matrix {
	out := &Matrix{
		ports:   2,
		variant: variant,
		cells:   make([]Parameter, 4),
	}
	out.cells[0] = Parameter(e11.(scalar))
	out.cells[1] = Parameter(e12.(scalar))
	out.cells[2] = Parameter(e21.(scalar))
	out.cells[3] = Parameter(e22.(scalar))

	return out
}
