// SPDX-License-Identifier: MIT

package network

// Matrix is a dense, square, 1-indexed matrix of complex network
// parameters tagged with its representation Variant. The port count is
// fixed at construction; every cell is always present (zero value until
// set). Cells are addressed by (destination, source) port: the
// transmission from port 1 into port 2 of a scattering matrix, S21,
// lives at At(2, 1).
//
// Matrix is an ordinary mutable value with no internal locking.
type Matrix struct {
	ports   int
	variant Variant
	cells   []Parameter // row-major over destination; len == ports*ports
}

// NewMatrix allocates a ports×ports matrix of the given variant with
// all cells zero. A non-positive port count returns
// ErrInvalidPortCount.
func NewMatrix(ports int, variant Variant) (*Matrix, error) {
	if ports < 1 {
		return nil, ErrInvalidPortCount
	}

	return &Matrix{
		ports:   ports,
		variant: variant,
		cells:   make([]Parameter, ports*ports),
	}, nil
}

// Ports returns the port count fixed at construction.
func (m *Matrix) Ports() int { return m.ports }

// Variant returns the representation the matrix is expressed in.
func (m *Matrix) Variant() Variant { return m.variant }

// index maps a validated 1-based (destination, source) pair onto the
// flat backing slice.
func (m *Matrix) index(dest, src int) int {
	return (dest-1)*m.ports + (src - 1)
}

// inRange reports whether both 1-based indices address a valid cell.
func (m *Matrix) inRange(dest, src int) bool {
	return dest >= 1 && dest <= m.ports && src >= 1 && src <= m.ports
}

// At returns the cell at (destination, source), both 1-based.
// Returns ErrIndexOutOfRange when either index is outside [1, Ports()].
func (m *Matrix) At(dest, src int) (Parameter, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if !m.inRange(dest, src) {
		return 0, ErrIndexOutOfRange
	}

	return m.cells[m.index(dest, src)], nil
}

// Set assigns the cell at (destination, source), both 1-based.
// Returns ErrIndexOutOfRange when either index is outside [1, Ports()].
func (m *Matrix) Set(dest, src int, p Parameter) error {
	if m == nil {
		return ErrNilMatrix
	}
	if !m.inRange(dest, src) {
		return ErrIndexOutOfRange
	}
	m.cells[m.index(dest, src)] = p

	return nil
}

// at reads a cell without bounds checks; callers guarantee validated
// indices. Internal kernels use this to keep hot loops branch-free.
func (m *Matrix) at(dest, src int) Parameter {
	return m.cells[m.index(dest, src)]
}

// set writes a cell without bounds checks; see at.
func (m *Matrix) set(dest, src int, p Parameter) {
	m.cells[m.index(dest, src)] = p
}

// Clone returns a deep copy sharing nothing with the receiver.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	out := &Matrix{
		ports:   m.ports,
		variant: m.variant,
		cells:   make([]Parameter, len(m.cells)),
	}
	copy(out.cells, m.cells)

	return out
}

// mul returns the matrix product a·b. Both operands must share a port
// count (validated by callers); the result carries a's variant.
func mul(a, b *Matrix) *Matrix {
	n := a.ports
	out := &Matrix{
		ports:   n,
		variant: a.variant,
		cells:   make([]Parameter, n*n),
	}
	var i, j, k int
	var acc complex128
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			acc = 0
			for k = 0; k < n; k++ {
				acc += complex128(a.cells[i*n+k]) * complex128(b.cells[k*n+j])
			}
			out.cells[i*n+j] = Parameter(acc)
		}
	}

	return out
}
