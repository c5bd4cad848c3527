package touchstone

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/mdwhitten/microwave-networks/network"
)

// v1PairsPerLine caps how many data pairs share a physical line in
// Version-1.0 output before the record wraps onto continuation lines.
const v1PairsPerLine = 4

// Encoder is a push-based Touchstone writer. Options fix the dialect,
// unit and data format; Keywords supplies the Version-2.0 header
// fields. The header is written once — either explicitly via
// WriteHeader or implicitly on the first Write — and the port count is
// locked by whichever comes first: Keywords.NumberOfPorts or the first
// matrix.
type Encoder struct {
	dst io.Writer

	opts Options
	kw   Keywords

	ports      int
	headerDone bool
	closed     bool
}

// NewEncoder wraps the destination with the given write settings. A
// zero Options is replaced by DefaultOptions.
func NewEncoder(w io.Writer, opts Options, kw Keywords) *Encoder {
	if opts == (Options{}) {
		opts = DefaultOptions()
	}
	if opts.Version == 0 {
		opts.Version = Version1
	}

	return &Encoder{dst: w, opts: opts, kw: kw, ports: kw.NumberOfPorts}
}

// WriteHeader emits the header immediately. It is optional — the first
// Write emits it on demand — and idempotent. A Version-2.0 header
// needs the port count up front, so calling WriteHeader before any
// matrix requires Keywords.NumberOfPorts; otherwise
// ErrUnknownPortCount.
func (e *Encoder) WriteHeader() error {
	if e.closed {
		return ErrEncoderClosed
	}
	if e.headerDone {
		return nil
	}
	if e.opts.Version == Version2 && e.ports == 0 {
		return ErrUnknownPortCount
	}

	return e.writeHeader()
}

func (e *Encoder) writeHeader() error {
	if e.opts.Parameter != ParameterScattering {
		return ErrUnsupportedParameterType
	}

	var b strings.Builder
	if e.opts.Version == Version2 {
		fmt.Fprintf(&b, "%s 2.0\n", nameVersion)
	}
	e.writeOptionLine(&b)
	if e.opts.Version == Version2 {
		e.writeKeywords(&b)
	}
	e.headerDone = true
	_, err := io.WriteString(e.dst, b.String())

	return err
}

// writeOptionLine emits the `#` line in the canonical token order:
// unit, parameter, format, resistance.
func (e *Encoder) writeOptionLine(b *strings.Builder) {
	fmt.Fprintf(b, "# %s %s %s R %s",
		e.opts.Unit, e.opts.Parameter, e.opts.Format, formatFloat(e.opts.Resistance))
	if e.opts.Reactance != nil {
		// Rewrite the R token in the complex (r±xj) form.
		line := b.String()
		b.Reset()
		b.WriteString(line[:strings.LastIndex(line, "R ")+2])
		fmt.Fprintf(b, "(%s%+gj)", formatFloat(e.opts.Resistance), *e.opts.Reactance)
	}
	b.WriteByte('\n')
}

// writeKeywords emits the populated Version-2.0 keywords in the fixed
// canonical order, ending with [Network Data].
func (e *Encoder) writeKeywords(b *strings.Builder) {
	fmt.Fprintf(b, "%s %d\n", nameNumberOfPorts, e.ports)
	if e.ports == 2 {
		fmt.Fprintf(b, "%s %s\n", nameTwoPortDataOrder, e.kw.TwoPortDataOrder)
	}
	if e.kw.NumberOfFrequencies > 0 {
		fmt.Fprintf(b, "%s %d\n", nameNumberOfFrequencies, e.kw.NumberOfFrequencies)
	}
	if e.kw.NumberOfNoiseFrequencies > 0 {
		fmt.Fprintf(b, "%s %d\n", nameNumberOfNoiseFreqs, e.kw.NumberOfNoiseFrequencies)
	}
	if len(e.kw.Reference) > 0 {
		refs := make([]string, len(e.kw.Reference))
		for i, r := range e.kw.Reference {
			refs[i] = formatFloat(r)
		}
		fmt.Fprintf(b, "%s %s\n", nameReference, strings.Join(refs, " "))
	}
	if e.kw.MatrixFormat != FullFormat {
		fmt.Fprintf(b, "%s %s\n", nameMatrixFormat, e.kw.MatrixFormat)
	}
	fmt.Fprintf(b, "%s\n", nameNetworkData)
}

// Write emits one record. The first Write locks the port count and, if
// needed, writes the header. Frequency is in Hz and is rescaled to the
// configured unit on output.
func (e *Encoder) Write(freq float64, m *network.Matrix) error {
	if e.closed {
		return ErrEncoderClosed
	}
	if m == nil {
		return network.ErrNilMatrix
	}
	if e.ports == 0 {
		e.ports = m.Ports()
	}
	if m.Ports() != e.ports {
		return network.ErrPortCountMismatch
	}
	if !e.headerDone {
		if err := e.writeHeader(); err != nil {
			return err
		}
	}

	var b strings.Builder
	if e.opts.Version == Version2 {
		e.writeRecordV2(&b, freq, m)
	} else {
		e.writeRecordV1(&b, freq, m)
	}
	_, err := io.WriteString(e.dst, b.String())

	return err
}

// writeRecordV1 lays the record out in the classic style: the
// frequency and up to v1PairsPerLine pairs on the first line,
// continuation lines indented under the first pair.
func (e *Encoder) writeRecordV1(b *strings.Builder, freq float64, m *network.Matrix) {
	b.WriteString(e.pad(formatFloat(freq / e.opts.Unit.Multiplier())))
	pairs := e.ports * e.ports
	for k := 0; k < pairs; k++ {
		if k > 0 && k%v1PairsPerLine == 0 {
			b.WriteByte('\n')
		}
		dest, src := pairAt(k, e.ports, SourcePortMajor)
		e.writePair(b, mustAt(m, dest, src))
	}
	b.WriteByte('\n')
}

// writeRecordV2 emits the frequency and the matrix, one source row per
// line, honoring the keyword element order and suppressing the
// redundant half under a triangular format.
func (e *Encoder) writeRecordV2(b *strings.Builder, freq float64, m *network.Matrix) {
	b.WriteString(e.pad(formatFloat(freq / e.opts.Unit.Multiplier())))
	order := SourcePortMajor
	if e.ports == 2 {
		order = e.kw.TwoPortDataOrder
	}
	pairs := e.ports * e.ports
	row := -1
	for k := 0; k < pairs; k++ {
		dest, src := pairAt(k, e.ports, order)
		if !triangularStored(dest, src, e.kw.MatrixFormat) {
			continue
		}
		if r := k / e.ports; r != row {
			if row >= 0 {
				b.WriteByte('\n')
			}
			row = r
		}
		e.writePair(b, mustAt(m, dest, src))
	}
	b.WriteByte('\n')
}

// writePair appends one complex value in the configured data format.
func (e *Encoder) writePair(b *strings.Builder, p network.Parameter) {
	var a, v float64
	switch e.opts.Format {
	case DecibelAngle:
		a, v = p.MagnitudeDB(), p.PhaseDeg()
	case RealImaginary:
		a, v = p.Real(), p.Imag()
	default:
		a, v = p.Magnitude(), p.PhaseDeg()
	}
	b.WriteByte(' ')
	b.WriteString(e.pad(formatFloat(a)))
	b.WriteByte(' ')
	b.WriteString(e.pad(formatFloat(v)))
}

// pad right-aligns a numeric field to Options.FieldWidth.
func (e *Encoder) pad(s string) string {
	if w := e.opts.FieldWidth; w > len(s) {
		return strings.Repeat(" ", w-len(s)) + s
	}

	return s
}

// formatFloat renders a float the shortest way that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// mustAt reads a cell whose indices are produced by the encoder's own
// enumeration and therefore always in range.
func mustAt(m *network.Matrix, dest, src int) network.Parameter {
	p, err := m.At(dest, src)
	if err != nil {
		panic(err)
	}

	return p
}

// WriteNoiseData emits a Version-2.0 [Noise Data] section, records in
// ascending frequency. Γopt is always written magnitude-angle. No-op
// for an empty map; Version-1.0 encoders reject the call.
func (e *Encoder) WriteNoiseData(records map[float64]NoiseRecord) error {
	if e.closed {
		return ErrEncoderClosed
	}
	if len(records) == 0 {
		return nil
	}
	if e.opts.Version != Version2 {
		return fmt.Errorf("noise data needs a Version-2.0 encoder: %w", ErrMalformedData)
	}
	if !e.headerDone {
		if err := e.WriteHeader(); err != nil {
			return err
		}
	}

	freqs := make([]float64, 0, len(records))
	for f := range records {
		freqs = append(freqs, f)
	}
	sort.Float64s(freqs)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", nameNoiseData)
	for _, f := range freqs {
		r := records[f]
		fmt.Fprintf(&b, "%s %s %s %s %s\n",
			e.pad(formatFloat(f/e.opts.Unit.Multiplier())),
			e.pad(formatFloat(r.MinNoiseFigureDB)),
			e.pad(formatFloat(r.OptimalReflection.Magnitude())),
			e.pad(formatFloat(r.OptimalReflection.PhaseDeg())),
			e.pad(formatFloat(r.NoiseResistance)))
	}
	_, err := io.WriteString(e.dst, b.String())

	return err
}

// Close finalizes the stream: a Version-2.0 document gets its [End]
// terminator, and the destination is closed when it is an io.Closer.
// Close is idempotent; writes after Close return ErrEncoderClosed.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if e.headerDone && e.opts.Version == Version2 {
		if _, err := io.WriteString(e.dst, nameEnd+"\n"); err != nil {
			return err
		}
	}
	if c, ok := e.dst.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// WriteDocument renders a whole Document in one call: keyword counts
// are derived from the document itself, every record is written in
// ascending frequency, and the noise section follows for Version-2.0.
// The encoder remains open afterwards; Close still terminates the
// stream.
func WriteDocument(w io.Writer, doc *Document) error {
	if doc == nil || doc.Networks == nil {
		return ErrNilDocument
	}

	opts := doc.Options
	kw := doc.Keywords
	kw.NumberOfPorts = doc.Networks.Ports()
	kw.NumberOfFrequencies = doc.Networks.Len()
	kw.NumberOfNoiseFrequencies = len(doc.NoiseData)

	e := NewEncoder(w, opts, kw)
	for _, f := range doc.Networks.Frequencies() {
		m, err := doc.Networks.Get(f)
		if err != nil {
			return err
		}
		if err = e.Write(f, m); err != nil {
			return err
		}
	}
	if opts.Version == Version2 {
		if err := e.WriteNoiseData(doc.NoiseData); err != nil {
			return err
		}
	}

	return e.Close()
}
