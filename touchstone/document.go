package touchstone

import "github.com/mdwhitten/microwave-networks/network"

// NoiseRecord is one frequency's noise parameter set from a
// Version-2.0 [Noise Data] section.
type NoiseRecord struct {
	// MinNoiseFigureDB is the minimum noise figure in dB.
	MinNoiseFigureDB float64

	// OptimalReflection is the source reflection coefficient producing
	// the minimum noise figure.
	OptimalReflection network.Parameter

	// NoiseResistance is the effective noise resistance, normalized to
	// the reference resistance.
	NoiseResistance float64
}

// Document is a fully materialized Touchstone file: the
// frequency-indexed network data plus everything else the header and
// trailer carry.
type Document struct {
	// Networks holds one matrix per frequency, ascending.
	Networks *network.Collection

	// Options is the decoded option-line state (unit, format,
	// reference resistance/reactance, declared parameter type).
	Options Options

	// Keywords is the Version-2.0 keyword state, including the
	// per-port Reference list and free-text Information block; zero
	// for Version-1.0 documents.
	Keywords Keywords

	// NoiseData maps frequency (Hz) to its noise parameters; nil when
	// the file carries none.
	NoiseData map[float64]NoiseRecord
}
