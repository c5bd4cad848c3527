// Package touchstone: keyword↔enum lookup tables.
//
// Every enum that appears as Touchstone text gets an explicit,
// declarative table here — one map per direction, built once at
// package init, with case-insensitive lookup and no runtime
// introspection. Parse helpers return (zero, false) on unknown text;
// String methods return the canonical spelling the encoder emits.

package touchstone

import "strings"

// FrequencyUnit is the unit frequencies are expressed in on the option
// line; each is a power-of-ten multiplier over Hz.
type FrequencyUnit int

const (
	Hz FrequencyUnit = iota
	KHz
	MHz
	GHz
)

var frequencyUnitKeywords = map[string]FrequencyUnit{
	"hz":  Hz,
	"khz": KHz,
	"mhz": MHz,
	"ghz": GHz,
}

var frequencyUnitNames = map[FrequencyUnit]string{
	Hz:  "Hz",
	KHz: "kHz",
	MHz: "MHz",
	GHz: "GHz",
}

// Multiplier returns the factor converting a value in this unit to Hz.
func (u FrequencyUnit) Multiplier() float64 {
	switch u {
	case KHz:
		return 1e3
	case MHz:
		return 1e6
	case GHz:
		return 1e9
	default:
		return 1
	}
}

// String returns the canonical keyword, e.g. "GHz".
func (u FrequencyUnit) String() string { return frequencyUnitNames[u] }

// ParseFrequencyUnit resolves a case-insensitive option-line token.
func ParseFrequencyUnit(token string) (FrequencyUnit, bool) {
	u, ok := frequencyUnitKeywords[strings.ToLower(token)]

	return u, ok
}

// ParameterType is the network-parameter family declared on the option
// line. Decoding data is implemented for Scattering parameters;
// declaring any other family is recorded faithfully and reported as
// ErrUnsupportedParameterType when data is read.
type ParameterType int

const (
	ParameterScattering ParameterType = iota
	ParameterAdmittance
	ParameterImpedance
	ParameterHybridH
	ParameterHybridG
)

var parameterTypeKeywords = map[string]ParameterType{
	"s": ParameterScattering,
	"y": ParameterAdmittance,
	"z": ParameterImpedance,
	"h": ParameterHybridH,
	"g": ParameterHybridG,
}

var parameterTypeNames = map[ParameterType]string{
	ParameterScattering: "S",
	ParameterAdmittance: "Y",
	ParameterImpedance:  "Z",
	ParameterHybridH:    "H",
	ParameterHybridG:    "G",
}

// String returns the canonical keyword, e.g. "S".
func (p ParameterType) String() string { return parameterTypeNames[p] }

// ParseParameterType resolves a case-insensitive option-line token.
func ParseParameterType(token string) (ParameterType, bool) {
	p, ok := parameterTypeKeywords[strings.ToLower(token)]

	return p, ok
}

// FormatType is the encoding of each complex data pair.
type FormatType int

const (
	// MagnitudeAngle — linear magnitude and angle in degrees (MA).
	MagnitudeAngle FormatType = iota
	// DecibelAngle — magnitude in dB (20·log10) and angle in degrees (DB).
	DecibelAngle
	// RealImaginary — rectangular components (RI).
	RealImaginary
)

var formatTypeKeywords = map[string]FormatType{
	"ma": MagnitudeAngle,
	"db": DecibelAngle,
	"ri": RealImaginary,
}

var formatTypeNames = map[FormatType]string{
	MagnitudeAngle: "MA",
	DecibelAngle:   "DB",
	RealImaginary:  "RI",
}

// String returns the canonical keyword, e.g. "MA".
func (f FormatType) String() string { return formatTypeNames[f] }

// ParseFormatType resolves a case-insensitive option-line token.
func ParseFormatType(token string) (FormatType, bool) {
	f, ok := formatTypeKeywords[strings.ToLower(token)]

	return f, ok
}

// TwoPortDataOrder governs whether S21 or S12 follows S11 in 2-port
// data: source-port-major ("21_12", the Version-1.0 convention) or
// destination-port-major ("12_21").
type TwoPortDataOrder int

const (
	SourcePortMajor TwoPortDataOrder = iota
	DestinationPortMajor
)

var twoPortDataOrderKeywords = map[string]TwoPortDataOrder{
	"21_12": SourcePortMajor,
	"12_21": DestinationPortMajor,
}

var twoPortDataOrderNames = map[TwoPortDataOrder]string{
	SourcePortMajor:      "21_12",
	DestinationPortMajor: "12_21",
}

// String returns the canonical keyword, e.g. "21_12".
func (o TwoPortDataOrder) String() string { return twoPortDataOrderNames[o] }

// ParseTwoPortDataOrder resolves a case-insensitive keyword value.
func ParseTwoPortDataOrder(token string) (TwoPortDataOrder, bool) {
	o, ok := twoPortDataOrderKeywords[strings.ToLower(token)]

	return o, ok
}

// MatrixFormat is the Version-2.0 storage layout: the full matrix, or
// one triangular half of a reciprocal network's symmetric matrix.
type MatrixFormat int

const (
	FullFormat MatrixFormat = iota
	UpperFormat
	LowerFormat
)

var matrixFormatKeywords = map[string]MatrixFormat{
	"full":  FullFormat,
	"upper": UpperFormat,
	"lower": LowerFormat,
}

var matrixFormatNames = map[MatrixFormat]string{
	FullFormat:  "Full",
	UpperFormat: "Upper",
	LowerFormat: "Lower",
}

// String returns the canonical keyword, e.g. "Lower".
func (f MatrixFormat) String() string { return matrixFormatNames[f] }

// ParseMatrixFormat resolves a case-insensitive keyword value.
func ParseMatrixFormat(token string) (MatrixFormat, bool) {
	f, ok := matrixFormatKeywords[strings.ToLower(token)]

	return f, ok
}

// Version-2.0 bracketed keyword names, normalized to lower case with
// single internal spaces (see normalizeKeyword).
const (
	kwVersion              = "version"
	kwNumberOfPorts        = "number of ports"
	kwTwoPortDataOrder     = "two-port data order"
	kwNumberOfFrequencies  = "number of frequencies"
	kwNumberOfNoiseFreqs   = "number of noise frequencies"
	kwReference            = "reference"
	kwMatrixFormat         = "matrix format"
	kwMixedModeOrder       = "mixed-mode order"
	kwBeginInformation     = "begin information"
	kwEndInformation       = "end information"
	kwNetworkData          = "network data"
	kwNoiseData            = "noise data"
	kwEnd                  = "end"
)

// Canonical keyword spellings emitted by the encoder, in the fixed
// header order.
const (
	nameVersion             = "[Version]"
	nameNumberOfPorts       = "[Number of Ports]"
	nameTwoPortDataOrder    = "[Two-Port Data Order]"
	nameNumberOfFrequencies = "[Number of Frequencies]"
	nameNumberOfNoiseFreqs  = "[Number of Noise Frequencies]"
	nameReference           = "[Reference]"
	nameMatrixFormat        = "[Matrix Format]"
	nameNetworkData         = "[Network Data]"
	nameNoiseData           = "[Noise Data]"
	nameEnd                 = "[End]"
)

// normalizeKeyword folds a bracketed keyword name for table lookup:
// lower case, runs of whitespace collapsed to single spaces.
func normalizeKeyword(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// splitKeyword splits a `[Name] value` line into the normalized name
// and the raw remainder. ok is false when the line is not a complete
// bracketed keyword.
func splitKeyword(line string) (name, value string, ok bool) {
	if !strings.HasPrefix(line, "[") {
		return "", "", false
	}
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return "", "", false
	}

	return normalizeKeyword(line[1:end]), strings.TrimSpace(line[end+1:]), true
}
