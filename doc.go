// Package microwavenetworks is a toolkit for frequency-dependent
// multi-port electrical network data: reading and writing Touchstone
// files (versions 1.0 and 2.0) and the network-parameter matrix algebra
// that makes such data useful — representation conversion, cascading
// and de-embedding.
//
// 🚀 What does it cover?
//
//   - Scattering (S) and Transfer (T) parameter matrices of any port
//     count, with closed-form 2-port S↔T conversion
//   - Cascading networks via T-matrix multiplication and de-embedding
//     fixtures via T-matrix inversion
//   - Frequency-indexed collections with nearest-frequency lookup and
//     multi-collection cascade at common frequencies
//   - A streaming Touchstone decoder/encoder covering both header
//     dialects, triangular matrix storage and noise parameter data
//
// Everything is organized under two subpackages plus a small CLI:
//
//	network/    — Parameter, Matrix (S/T), Collection and the algebra
//	touchstone/ — Document, Decoder, Encoder and the *.sNp grammar
//	cmd/snptool — inspect, convert, cascade and de-embed *.sNp files
//
// Quick sketch: a 2-port measurement de-embedded from its test fixtures:
//
//	lead-in ── DUT ── lead-out        measured = cascade(L, DUT, R)
//	                                  DUT      = measured.Deembed(L, R)
//
// See network/doc.go and touchstone/doc.go for package-level detail.
package microwavenetworks
