// SPDX-License-Identifier: MIT

package network

// element is the minimal algebra the closed-form S↔T formulas are
// written against: add, subtract, multiply, negate, invert. A complex
// scalar implements it today; a 2×2 block-matrix wrapper implementing
// the same five operations is all the symmetry-extension technique
// needs to generalize the formulas to N>2 ports, without reshaping
// Matrix. Inversion is the only fallible operation.
type element interface {
	add(element) element
	sub(element) element
	mul(element) element
	neg() element
	inv() (element, error)
}

// scalar is the complex-number element backing 2-port conversion.
type scalar complex128

func (s scalar) add(o element) element { return s + o.(scalar) }
func (s scalar) sub(o element) element { return s - o.(scalar) }
func (s scalar) mul(o element) element { return s * o.(scalar) }
func (s scalar) neg() element          { return -s }

// inv returns the multiplicative inverse; a zero scalar corresponds to
// a network with zero transmission and is reported as singular.
func (s scalar) inv() (element, error) {
	if s == 0 {
		return nil, ErrSingularMatrix
	}

	return scalar(1) / s, nil
}
