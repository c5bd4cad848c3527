package touchstone

// Version selects the header dialect.
type Version int

const (
	Version1 Version = 1
	Version2 Version = 2
)

// String returns the dialect's version literal.
func (v Version) String() string {
	if v == Version2 {
		return "2.0"
	}

	return "1.0"
}

// DefaultResistance is the reference resistance assumed when the
// option line carries no R token.
const DefaultResistance = 50.0

// Options is the option-line and formatting state shared by the
// decoder and encoder. The decoder fills it from the source header;
// the encoder consumes it as its write settings.
//
// Fields:
//   - Version    — header dialect (Version1 or Version2).
//   - Unit       — frequency unit; data values scale to Hz by its
//     power-of-ten multiplier.
//   - Parameter  — declared parameter family (only Scattering data is
//     decodable; see ErrUnsupportedParameterType).
//   - Format     — complex data-pair encoding (MA, DB or RI).
//   - Resistance — reference resistance in Ω (default 50).
//   - Reactance  — optional reference reactance from the complex
//     `(r±xj)` resistance form; nil when absent.
//   - FieldWidth — encoder only: minimum character width numeric
//     fields are right-aligned to; 0 disables padding. Padding never
//     changes a value.
type Options struct {
	Version    Version
	Unit       FrequencyUnit
	Parameter  ParameterType
	Format     FormatType
	Resistance float64
	Reactance  *float64
	FieldWidth int
}

// DefaultOptions returns the documented option-line defaults:
// Version-1.0, GHz, S-parameters, magnitude-angle, R 50.
func DefaultOptions() Options {
	return Options{
		Version:    Version1,
		Unit:       GHz,
		Parameter:  ParameterScattering,
		Format:     MagnitudeAngle,
		Resistance: DefaultResistance,
	}
}

// Keywords is the Version-2.0 keyword state. The decoder fills it from
// the header; the encoder emits the populated fields in the canonical
// order. All fields are ignored for Version-1.0.
type Keywords struct {
	NumberOfPorts            int
	TwoPortDataOrder         TwoPortDataOrder
	NumberOfFrequencies      int
	NumberOfNoiseFrequencies int
	Reference                []float64
	MatrixFormat             MatrixFormat
	MixedModeOrder           string
	Information              string
}
