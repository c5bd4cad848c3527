package touchstone

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mdwhitten/microwave-networks/network"
)

// maxLineBytes bounds a single physical line; Touchstone lines are
// short, but a generous cap keeps pathological inputs from growing the
// scanner buffer unbounded.
const maxLineBytes = 1 << 20

// rawLine is one physical line with comments stripped and surrounding
// whitespace trimmed, tagged with its 1-based line number.
type rawLine struct {
	text string
	num  int
}

// token is one whitespace-delimited field tagged with the line it came
// from, for diagnostics.
type token struct {
	text string
	line int
}

// Decoder is a pull-based Touchstone parser. Construction eagerly
// consumes the header (dialect selection, option line and, for
// Version-2.0, the keyword sequence through [Network Data]); records
// are then yielded one at a time by Read or materialized by ReadAll.
//
// The decoder owns its source for its lifetime: Close disposes the
// source when it is an io.Closer, and any read after Close returns
// ErrDecoderClosed.
type Decoder struct {
	src     io.Reader
	scanner *bufio.Scanner
	line    int       // number of the last physically scanned line
	pending []rawLine // pushback FIFO, consumed before the scanner

	opts  Options
	kw    Keywords
	ports int // 0 until inferred (Version-1.0) or declared (2.0)
	order TwoPortDataOrder

	tokens   []token // Version-2.0 cross-line token queue
	dataDone bool    // Version-2.0 network-data body fully consumed
	closed   bool
}

// NewDecoder wraps the source and parses its header. The returned
// decoder is positioned at the first data record.
func NewDecoder(r io.Reader) (*Decoder, error) {
	d := &Decoder{
		src:     r,
		scanner: bufio.NewScanner(r),
		opts:    DefaultOptions(),
	}
	d.scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	if err := d.parseHeader(); err != nil {
		return nil, err
	}

	return d, nil
}

// Options returns the decoded option-line state.
func (d *Decoder) Options() Options { return d.opts }

// Keywords returns the decoded Version-2.0 keyword state; zero for
// Version-1.0 sources.
func (d *Decoder) Keywords() Keywords { return d.kw }

// Ports returns the port count, or 0 for a Version-1.0 source before
// the first record has been read.
func (d *Decoder) Ports() int { return d.ports }

// Close disposes the underlying source (when it is an io.Closer).
// Subsequent reads return ErrDecoderClosed. Close is idempotent.
func (d *Decoder) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if c, ok := d.src.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// ---------------------------------------------------------------------------
// line scanning

// nextRaw returns the next physical line, comment-stripped and
// trimmed: first from the pushback FIFO, then from the scanner.
// io.EOF after the last line.
func (d *Decoder) nextRaw() (rawLine, error) {
	if len(d.pending) > 0 {
		l := d.pending[0]
		d.pending = d.pending[1:]

		return l, nil
	}
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			return rawLine{}, err
		}

		return rawLine{}, io.EOF
	}
	d.line++
	text := d.scanner.Text()
	if i := strings.IndexByte(text, '!'); i >= 0 {
		text = text[:i]
	}

	return rawLine{text: strings.TrimSpace(text), num: d.line}, nil
}

// nextSignificant skips blank and comment-only lines.
func (d *Decoder) nextSignificant() (rawLine, error) {
	for {
		l, err := d.nextRaw()
		if err != nil {
			return rawLine{}, err
		}
		if l.text != "" {
			return l, nil
		}
	}
}

// pushBack returns a line to the head of the FIFO so the next read
// sees it again.
func (d *Decoder) pushBack(l rawLine) {
	d.pending = append([]rawLine{l}, d.pending...)
}

// ---------------------------------------------------------------------------
// header

// parseHeader selects the dialect from the first significant character
// and consumes the dialect's header.
func (d *Decoder) parseHeader() error {
	first, err := d.nextSignificant()
	if errors.Is(err, io.EOF) {
		return parseError(d.line, SectionHeader, ErrMalformedHeader)
	}
	if err != nil {
		return err
	}

	switch {
	case strings.HasPrefix(first.text, "#"):
		d.opts.Version = Version1

		return d.parseOptionLine(first)
	case strings.HasPrefix(first.text, "["):
		d.opts.Version = Version2

		return d.parseHeaderV2(first)
	default:
		return parseError(first.num, SectionHeader, ErrMalformedHeader)
	}
}

// parseOptionLine consumes `# <tokens>`: frequency unit, parameter
// type, data format and `R <value>`, in any order, case-insensitive.
func (d *Decoder) parseOptionLine(l rawLine) error {
	tokens := strings.Fields(l.text[1:])
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if u, ok := ParseFrequencyUnit(tok); ok {
			d.opts.Unit = u
			i++

			continue
		}
		if p, ok := ParseParameterType(tok); ok {
			d.opts.Parameter = p
			i++

			continue
		}
		if f, ok := ParseFormatType(tok); ok {
			d.opts.Format = f
			i++

			continue
		}
		if strings.EqualFold(tok, "r") {
			if i+1 >= len(tokens) {
				return parseError(l.num, SectionOptions,
					fmt.Errorf("missing resistance value: %w", ErrMalformedOption))
			}
			if err := d.parseResistance(tokens[i+1], l.num); err != nil {
				return err
			}
			i += 2

			continue
		}

		return parseError(l.num, SectionOptions,
			fmt.Errorf("unrecognized token %q: %w", tok, ErrMalformedOption))
	}

	return nil
}

// parseResistance accepts a plain real resistance or the complex form
// `(r±xj)` supplying resistance and reactance.
func (d *Decoder) parseResistance(value string, line int) error {
	if strings.HasPrefix(value, "(") {
		r, x, ok := parseComplexResistance(value)
		if !ok {
			return parseError(line, SectionOptions,
				fmt.Errorf("resistance %q: %w", value, ErrMalformedOption))
		}
		d.opts.Resistance = r
		d.opts.Reactance = &x

		return nil
	}
	r, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return parseError(line, SectionOptions,
			fmt.Errorf("resistance %q: %w", value, ErrMalformedOption))
	}
	d.opts.Resistance = r

	return nil
}

// parseComplexResistance splits `(r±xj)` into its parts. The sign of
// the reactance is the separator between the two components; an
// exponent sign (e.g. 1e-3) is not a separator.
func parseComplexResistance(value string) (r, x float64, ok bool) {
	if !strings.HasSuffix(value, ")") {
		return 0, 0, false
	}
	inner := value[1 : len(value)-1]
	if len(inner) == 0 || (inner[len(inner)-1] != 'j' && inner[len(inner)-1] != 'J') {
		return 0, 0, false
	}
	inner = inner[:len(inner)-1]

	split := -1
	for i := len(inner) - 1; i > 0; i-- {
		c := inner[i]
		if (c == '+' || c == '-') && inner[i-1] != 'e' && inner[i-1] != 'E' {
			split = i

			break
		}
	}
	if split < 0 {
		return 0, 0, false
	}

	var err error
	if r, err = strconv.ParseFloat(inner[:split], 64); err != nil {
		return 0, 0, false
	}
	if x, err = strconv.ParseFloat(inner[split:], 64); err != nil {
		return 0, 0, false
	}

	return r, x, true
}

// parseHeaderV2 consumes `[Version] 2.0`, the option line, the
// mandatory [Number of Ports] and the remaining keyword sequence
// through [Network Data].
func (d *Decoder) parseHeaderV2(first rawLine) error {
	name, value, ok := splitKeyword(first.text)
	if !ok || name != kwVersion || strings.TrimSpace(value) != "2.0" {
		return parseError(first.num, SectionHeader, ErrMalformedHeader)
	}

	opt, err := d.nextSignificant()
	if errors.Is(err, io.EOF) || (err == nil && !strings.HasPrefix(opt.text, "#")) {
		return parseError(d.line, SectionHeader, ErrMalformedHeader)
	}
	if err != nil {
		return err
	}
	if err = d.parseOptionLine(opt); err != nil {
		return err
	}

	// [Number of Ports] must immediately follow the option line.
	l, err := d.nextSignificant()
	if errors.Is(err, io.EOF) {
		return parseError(d.line, SectionHeader, ErrMalformedHeader)
	}
	if err != nil {
		return err
	}
	name, value, ok = splitKeyword(l.text)
	if !ok || name != kwNumberOfPorts {
		return parseError(l.num, SectionHeader,
			fmt.Errorf("expected %s: %w", nameNumberOfPorts, ErrMalformedHeader))
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(value))
	if convErr != nil || n < 1 {
		return parseError(l.num, SectionKeywords,
			fmt.Errorf("port count %q: %w", value, ErrMalformedKeyword))
	}
	d.kw.NumberOfPorts = n
	d.ports = n

	return d.parseKeywords()
}

// parseKeywords walks the optional Version-2.0 keywords until
// [Network Data], validating the 2-port data-order requirement at the
// end.
func (d *Decoder) parseKeywords() error {
	seenOrder := false
	for {
		l, err := d.nextSignificant()
		if errors.Is(err, io.EOF) {
			return parseError(d.line, SectionKeywords,
				fmt.Errorf("missing %s: %w", nameNetworkData, ErrMalformedHeader))
		}
		if err != nil {
			return err
		}
		name, value, ok := splitKeyword(l.text)
		if !ok {
			return parseError(l.num, SectionKeywords, ErrMalformedKeyword)
		}

		switch name {
		case kwTwoPortDataOrder:
			order, valid := ParseTwoPortDataOrder(value)
			if !valid {
				return parseError(l.num, SectionKeywords,
					fmt.Errorf("data order %q: %w", value, ErrMalformedKeyword))
			}
			d.kw.TwoPortDataOrder = order
			seenOrder = true

		case kwNumberOfFrequencies:
			n, convErr := strconv.Atoi(value)
			if convErr != nil || n < 0 {
				return parseError(l.num, SectionKeywords,
					fmt.Errorf("frequency count %q: %w", value, ErrMalformedKeyword))
			}
			d.kw.NumberOfFrequencies = n

		case kwNumberOfNoiseFreqs:
			n, convErr := strconv.Atoi(value)
			if convErr != nil || n < 0 {
				return parseError(l.num, SectionKeywords,
					fmt.Errorf("noise frequency count %q: %w", value, ErrMalformedKeyword))
			}
			d.kw.NumberOfNoiseFrequencies = n

		case kwReference:
			if err = d.parseReference(value, l.num); err != nil {
				return err
			}

		case kwMatrixFormat:
			format, valid := ParseMatrixFormat(value)
			if !valid {
				return parseError(l.num, SectionKeywords,
					fmt.Errorf("matrix format %q: %w", value, ErrMalformedKeyword))
			}
			d.kw.MatrixFormat = format

		case kwMixedModeOrder:
			if err = d.parseMixedModeOrder(value); err != nil {
				return err
			}

		case kwBeginInformation:
			if err = d.parseInformation(); err != nil {
				return err
			}

		case kwNetworkData:
			if d.ports == 2 {
				if !seenOrder {
					return parseError(l.num, SectionKeywords,
						fmt.Errorf("missing %s: %w", nameTwoPortDataOrder, ErrMalformedHeader))
				}
				d.order = d.kw.TwoPortDataOrder
			}

			return nil

		default:
			return parseError(l.num, SectionKeywords,
				fmt.Errorf("unrecognized keyword %q: %w", name, ErrMalformedKeyword))
		}
	}
}

// parseReference collects one float per port, starting on the keyword
// line and continuing over following lines until the next `[`.
func (d *Decoder) parseReference(first string, line int) error {
	fields := strings.Fields(first)
	for {
		l, err := d.nextSignificant()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if strings.HasPrefix(l.text, "[") {
			d.pushBack(l)

			break
		}
		line = l.num
		fields = append(fields, strings.Fields(l.text)...)
	}

	if len(fields) != d.ports {
		return parseError(line, SectionKeywords,
			fmt.Errorf("reference needs %d entries, got %d: %w",
				d.ports, len(fields), ErrMalformedKeyword))
	}
	refs := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return parseError(line, SectionKeywords,
				fmt.Errorf("reference %q: %w", f, ErrMalformedKeyword))
		}
		refs[i] = v
	}
	d.kw.Reference = refs

	return nil
}

// parseMixedModeOrder stores the free-text value, which may continue
// over following lines until the next keyword.
func (d *Decoder) parseMixedModeOrder(first string) error {
	parts := []string{}
	if first != "" {
		parts = append(parts, first)
	}
	for {
		l, err := d.nextSignificant()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if strings.HasPrefix(l.text, "[") {
			d.pushBack(l)

			break
		}
		parts = append(parts, l.text)
	}
	d.kw.MixedModeOrder = strings.Join(parts, " ")

	return nil
}

// parseInformation stores the free-text block between
// [Begin Information] and [End Information].
func (d *Decoder) parseInformation() error {
	var lines []string
	for {
		l, err := d.nextSignificant()
		if errors.Is(err, io.EOF) {
			return parseError(d.line, SectionKeywords,
				fmt.Errorf("unterminated information block: %w", ErrMalformedKeyword))
		}
		if err != nil {
			return err
		}
		if name, _, ok := splitKeyword(l.text); ok && name == kwEndInformation {
			break
		}
		lines = append(lines, l.text)
	}
	d.kw.Information = strings.Join(lines, "\n")

	return nil
}

// ---------------------------------------------------------------------------
// records

// Read returns the next (frequency in Hz, scattering matrix) record,
// or io.EOF after the last one. Reading from a closed decoder returns
// ErrDecoderClosed; a declared non-S parameter type returns
// ErrUnsupportedParameterType.
func (d *Decoder) Read() (float64, *network.Matrix, error) {
	if d.closed {
		return 0, nil, ErrDecoderClosed
	}
	if d.opts.Parameter != ParameterScattering {
		return 0, nil, ErrUnsupportedParameterType
	}
	if d.opts.Version == Version2 {
		return d.readRecordV2()
	}

	return d.readRecordV1()
}

// readRecordV1 assembles one record using token-count parity with one
// line of lookahead: even-count lines continue the current record, an
// odd-count line starts the next record and is pushed back.
func (d *Decoder) readRecordV1() (float64, *network.Matrix, error) {
	first, err := d.nextSignificant()
	if errors.Is(err, io.EOF) {
		return 0, nil, io.EOF
	}
	if err != nil {
		return 0, nil, err
	}
	fields := strings.Fields(first.text)
	if len(fields)%2 == 0 {
		return 0, nil, parseError(first.num, SectionNetworkData,
			fmt.Errorf("record must open with a frequency: %w", ErrMalformedData))
	}

	for {
		l, lookErr := d.nextSignificant()
		if errors.Is(lookErr, io.EOF) {
			break
		}
		if lookErr != nil {
			return 0, nil, lookErr
		}
		cont := strings.Fields(l.text)
		if len(cont)%2 != 0 {
			d.pushBack(l)

			break
		}
		fields = append(fields, cont...)
	}

	if d.ports == 0 {
		pairs := (len(fields) - 1) / 2
		n := int(math.Round(math.Sqrt(float64(pairs))))
		if n < 1 || n*n != pairs {
			return 0, nil, parseError(first.num, SectionNetworkData,
				fmt.Errorf("%d data pairs fit no square matrix: %w", pairs, ErrMalformedData))
		}
		d.ports = n
	}
	if want := 1 + 2*d.ports*d.ports; len(fields) != want {
		return 0, nil, parseError(first.num, SectionNetworkData,
			fmt.Errorf("got %d tokens, want %d: %w", len(fields), want, ErrMalformedData))
	}

	return d.buildMatrix(fields, first.num, FullFormat)
}

// tokensPerRecordV2 derives the record length from the keyword state:
// the full matrix, or one triangular half including the diagonal.
func (d *Decoder) tokensPerRecordV2() int {
	n := d.ports
	if d.kw.MatrixFormat == FullFormat {
		return 1 + 2*n*n
	}

	return 1 + n*(n+1)
}

// readRecordV2 pulls exactly the keyword-determined number of tokens,
// spanning physical lines as needed; a keyword line ends the data body
// and is pushed back for the trailer.
func (d *Decoder) readRecordV2() (float64, *network.Matrix, error) {
	if d.dataDone {
		return 0, nil, io.EOF
	}
	need := d.tokensPerRecordV2()
	for len(d.tokens) < need {
		l, err := d.nextSignificant()
		if errors.Is(err, io.EOF) {
			if len(d.tokens) == 0 {
				d.dataDone = true

				return 0, nil, io.EOF
			}

			return 0, nil, parseError(d.line, SectionNetworkData,
				fmt.Errorf("truncated record: %w", ErrMalformedData))
		}
		if err != nil {
			return 0, nil, err
		}
		if strings.HasPrefix(l.text, "[") {
			d.pushBack(l)
			if len(d.tokens) == 0 {
				d.dataDone = true

				return 0, nil, io.EOF
			}

			return 0, nil, parseError(l.num, SectionNetworkData,
				fmt.Errorf("truncated record: %w", ErrMalformedData))
		}
		for _, f := range strings.Fields(l.text) {
			d.tokens = append(d.tokens, token{text: f, line: l.num})
		}
	}

	fields := make([]string, need)
	for i := 0; i < need; i++ {
		fields[i] = d.tokens[i].text
	}
	recLine := d.tokens[0].line
	d.tokens = d.tokens[need:]

	return d.buildMatrix(fields, recLine, d.kw.MatrixFormat)
}

// pairAt maps the k-th data pair of a record onto its (destination,
// source) ports under the active element ordering.
func (d *Decoder) pairAt(k int) (dest, src int) {
	return pairAt(k, d.ports, d.order)
}

// pairAt is the shared enumeration: source-port-major by default, with
// the destination index varying fastest; destination-port-major swaps
// the roles.
func pairAt(k, ports int, order TwoPortDataOrder) (dest, src int) {
	if order == DestinationPortMajor {
		return k/ports + 1, k%ports + 1
	}

	return k%ports + 1, k/ports + 1
}

// triangularStored reports whether the (dest, src) cell is present in
// the stored half under the given triangular format.
func triangularStored(dest, src int, format MatrixFormat) bool {
	switch format {
	case UpperFormat:
		return dest <= src
	case LowerFormat:
		return dest >= src
	default:
		return true
	}
}

// buildMatrix converts one record's tokens into a scattering matrix:
// frequency scaling, pair decoding per the declared data format,
// element ordering, and — for triangular storage — zero-placeholder
// insertion followed by mirroring so that cell[i,j] == cell[j,i].
func (d *Decoder) buildMatrix(fields []string, line int, format MatrixFormat) (float64, *network.Matrix, error) {
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, nil, parseError(line, SectionNetworkData,
				fmt.Errorf("value %q: %w", f, ErrMalformedData))
		}
		values[i] = v
	}
	freq := values[0] * d.opts.Unit.Multiplier()

	m, err := network.NewMatrix(d.ports, network.Scattering)
	if err != nil {
		return 0, nil, err
	}
	pair := 0
	for k := 0; k < d.ports*d.ports; k++ {
		dest, src := d.pairAt(k)
		if !triangularStored(dest, src, format) {
			continue // zero placeholder; mirrored below
		}
		p := decodePair(values[1+2*pair], values[2+2*pair], d.opts.Format)
		if err = m.Set(dest, src, p); err != nil {
			return 0, nil, err
		}
		pair++
	}

	if format != FullFormat {
		if err = mirror(m, format); err != nil {
			return 0, nil, err
		}
	}

	return freq, m, nil
}

// mirror copies the stored triangular half onto the redundant one:
// reciprocal-network symmetry is what licenses the storage format.
func mirror(m *network.Matrix, format MatrixFormat) error {
	n := m.Ports()
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			var from, to [2]int
			if format == UpperFormat {
				from, to = [2]int{i, j}, [2]int{j, i}
			} else {
				from, to = [2]int{j, i}, [2]int{i, j}
			}
			p, err := m.At(from[0], from[1])
			if err != nil {
				return err
			}
			if err = m.Set(to[0], to[1], p); err != nil {
				return err
			}
		}
	}

	return nil
}

// decodePair converts one (a, b) data pair into a complex parameter
// per the declared data format.
func decodePair(a, b float64, format FormatType) network.Parameter {
	switch format {
	case DecibelAngle:
		return network.FromMagnitudeDB(a, b)
	case RealImaginary:
		return network.NewParameter(a, b)
	default:
		return network.FromPolarDeg(a, b)
	}
}

// ---------------------------------------------------------------------------
// materialization

// ReadAll drains the decoder into a Document: every record, and — for
// Version-2.0 — the [Noise Data] section and [End] terminator.
// Cancellation is cooperative and checked between whole records.
func (d *Decoder) ReadAll(ctx context.Context) (*Document, error) {
	var col *network.Collection
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		freq, m, err := d.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if col == nil {
			if col, err = network.NewCollection(d.ports, network.Scattering); err != nil {
				return nil, err
			}
		}
		if err = col.Set(freq, m); err != nil {
			return nil, err
		}
	}
	if col == nil {
		// A Version-1.0 source with no records never reveals its port
		// count; a Version-2.0 one declared it in the header.
		if d.ports == 0 {
			return nil, parseError(d.line, SectionNetworkData, ErrMalformedData)
		}
		var err error
		if col, err = network.NewCollection(d.ports, network.Scattering); err != nil {
			return nil, err
		}
	}

	doc := &Document{Networks: col, Options: d.opts, Keywords: d.kw}
	if d.opts.Version == Version2 {
		if err := d.readTrailer(ctx, doc); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// readTrailer consumes everything after the Version-2.0 network data:
// an optional [Noise Data] section and the [End] terminator.
func (d *Decoder) readTrailer(ctx context.Context, doc *Document) error {
	for {
		l, err := d.nextSignificant()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		name, _, ok := splitKeyword(l.text)
		if !ok {
			return parseError(l.num, SectionKeywords, ErrMalformedKeyword)
		}
		switch name {
		case kwNoiseData:
			if err = d.readNoiseData(ctx, doc); err != nil {
				return err
			}
		case kwEnd:
			return nil
		default:
			return parseError(l.num, SectionKeywords,
				fmt.Errorf("unexpected keyword %q: %w", name, ErrMalformedKeyword))
		}
	}
}

// noiseRecordTokens is the fixed shape of one noise record: frequency,
// minimum noise figure (dB), |Γopt|, ∠Γopt (degrees), normalized noise
// resistance.
const noiseRecordTokens = 5

// readNoiseData collects noise records until the next keyword or EOF.
// Γopt is always magnitude-angle, independent of the data format.
func (d *Decoder) readNoiseData(ctx context.Context, doc *Document) error {
	var fields []token
	for {
		l, err := d.nextSignificant()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if strings.HasPrefix(l.text, "[") {
			d.pushBack(l)

			break
		}
		for _, f := range strings.Fields(l.text) {
			fields = append(fields, token{text: f, line: l.num})
		}
	}
	if len(fields)%noiseRecordTokens != 0 {
		return parseError(d.line, SectionNoiseData,
			fmt.Errorf("got %d tokens, want a multiple of %d: %w",
				len(fields), noiseRecordTokens, ErrMalformedData))
	}

	doc.NoiseData = make(map[float64]NoiseRecord, len(fields)/noiseRecordTokens)
	for i := 0; i < len(fields); i += noiseRecordTokens {
		if err := ctx.Err(); err != nil {
			return err
		}
		values := make([]float64, noiseRecordTokens)
		for j := 0; j < noiseRecordTokens; j++ {
			v, err := strconv.ParseFloat(fields[i+j].text, 64)
			if err != nil {
				return parseError(fields[i+j].line, SectionNoiseData,
					fmt.Errorf("value %q: %w", fields[i+j].text, ErrMalformedData))
			}
			values[j] = v
		}
		doc.NoiseData[values[0]*d.opts.Unit.Multiplier()] = NoiseRecord{
			MinNoiseFigureDB:  values[1],
			OptimalReflection: network.FromPolarDeg(values[2], values[3]),
			NoiseResistance:   values[4],
		}
	}

	return nil
}
