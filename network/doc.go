// Package network models frequency-dependent multi-port electrical
// networks as square matrices of complex parameters and implements the
// algebra RF engineering needs on top of them.
//
// 🚀 What is in the box?
//
//   - Parameter — an immutable complex value with polar, degree and dB
//     accessors (the cell type of every matrix)
//   - Matrix — a dense, 1-indexed port×port matrix tagged with its
//     representation Variant (Scattering or Transfer)
//   - Conversion — closed-form 2-port S↔T conversion; determinant and
//     inversion via complex LU factorization
//   - Cascade / Deembed — combine networks connected port-to-port, or
//     strip known fixtures from a measured composite
//   - Collection — an ordered frequency → Matrix map with
//     nearest-frequency lookup and multi-collection cascade
//
// Conventions:
//
//   - Cells are addressed by (destination, source) port, both 1-based:
//     S21 is At(2, 1), the transmission from port 1 into port 2.
//   - All operations are fail-fast and return package sentinels from
//     errors.go; check them with errors.Is.
//   - A Matrix is an ordinary mutable value with no internal locking;
//     concurrent use must be serialized by the caller.
//
// ⚙️ Usage:
//
//	m, _ := network.NewMatrix(2, network.Scattering)
//	_ = m.Set(1, 1, network.FromPolarDeg(0.1, -12))
//	_ = m.Set(2, 1, network.FromMagnitudeDB(-3, 0))
//	...
//	t, err := m.ConvertTo(network.Transfer)
//
// One-port and N>2-port S↔T conversion have no closed form here and
// report ErrUnsupportedConversion; see element.go for the algebraic
// seam an N-port block implementation would slot into.
package network
