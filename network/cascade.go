// SPDX-License-Identifier: MIT

package network

// Cascade combines networks connected port-to-port into one equivalent
// network. Every operand is converted to the Transfer representation,
// the T-matrices are left-multiplied in argument order
// (T = T₁·T₂·…·Tₙ), and the product is converted back to the first
// operand's original variant.
//
// Errors:
//   - ErrNoOperands          — empty argument list.
//   - ErrNilMatrix           — any nil operand.
//   - ErrPortCountMismatch   — operands with differing port counts.
//   - ErrUnsupportedConversion, ErrSingularMatrix — from conversion.
func Cascade(matrices ...*Matrix) (*Matrix, error) {
	if len(matrices) == 0 {
		return nil, ErrNoOperands
	}
	for _, m := range matrices {
		if m == nil {
			return nil, ErrNilMatrix
		}
		if m.Ports() != matrices[0].Ports() {
			return nil, ErrPortCountMismatch
		}
	}

	origin := matrices[0].Variant()
	acc, err := matrices[0].ConvertTo(Transfer)
	if err != nil {
		return nil, err
	}
	for _, m := range matrices[1:] {
		t, err := m.ConvertTo(Transfer)
		if err != nil {
			return nil, err
		}
		acc = mul(acc, t)
	}

	return acc.ConvertTo(origin)
}

// DeembedLeft removes a known left-hand network from the receiver:
// T_result = T_left⁻¹ · T_self, returned in the receiver's variant.
// A singular left T-matrix (zero transmission) returns
// ErrSingularMatrix.
func (m *Matrix) DeembedLeft(left *Matrix) (*Matrix, error) {
	return m.deembed(left, nil)
}

// DeembedRight removes a known right-hand network from the receiver:
// T_result = T_self · T_right⁻¹, returned in the receiver's variant.
func (m *Matrix) DeembedRight(right *Matrix) (*Matrix, error) {
	return m.deembed(nil, right)
}

// Deembed removes known networks from both sides, left first:
// T_result = T_left⁻¹ · T_self · T_right⁻¹.
func (m *Matrix) Deembed(left, right *Matrix) (*Matrix, error) {
	return m.deembed(left, right)
}

// deembed is the shared kernel; a nil fixture on either side is a
// no-op for that side.
func (m *Matrix) deembed(left, right *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	acc, err := m.ConvertTo(Transfer)
	if err != nil {
		return nil, err
	}
	if left != nil {
		if left.Ports() != m.Ports() {
			return nil, ErrPortCountMismatch
		}
		tl, err := left.ConvertTo(Transfer)
		if err != nil {
			return nil, err
		}
		invL, err := tl.Inverse()
		if err != nil {
			return nil, err
		}
		acc = mul(invL, acc)
	}
	if right != nil {
		if right.Ports() != m.Ports() {
			return nil, ErrPortCountMismatch
		}
		tr, err := right.ConvertTo(Transfer)
		if err != nil {
			return nil, err
		}
		invR, err := tr.Inverse()
		if err != nil {
			return nil, err
		}
		acc = mul(acc, invR)
	}

	return acc.ConvertTo(m.variant)
}
