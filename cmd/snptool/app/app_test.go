package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdwhitten/microwave-networks/touchstone"
)

// discard is a logger for tests that only care about command results.
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// writeFile drops Touchstone text into the test's temp directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// attenuatorFile renders a matched 2-port attenuator sweep in dB-angle
// format.
func attenuatorFile(t *testing.T, lossDB float64) string {
	t.Helper()
	loss := strconv.FormatFloat(-lossDB, 'g', -1, 64)
	var sb strings.Builder
	sb.WriteString("# GHz S DB R 50\n")
	for _, f := range []string{"1", "2"} {
		fmt.Fprintf(&sb, "%s -Inf 0 %s 0 %s 0 -Inf 0\n", f, loss, loss)
	}

	return writeFile(t, fmt.Sprintf("att%s.s2p", loss), sb.String())
}

// TestRun_UnknownCommand rejects commands outside the dispatch table.
func TestRun_UnknownCommand(t *testing.T) {
	err := Run(context.Background(), DefaultConfig(), discard, "frobnicate", nil, io.Discard)
	assert.ErrorContains(t, err, "unknown command")
}

// TestRun_Info decodes a file and succeeds; missing files fail.
func TestRun_Info(t *testing.T) {
	path := writeFile(t, "a.s2p", "# GHz S RI R 50\n1 0.1 0 0.5 0 0.5 0 0.2 0\n")
	require.NoError(t, Run(context.Background(), DefaultConfig(), discard, "info", []string{path}, io.Discard))

	err := Run(context.Background(), DefaultConfig(), discard, "info", []string{"/does/not/exist.s2p"}, io.Discard)
	assert.Error(t, err)
	err = Run(context.Background(), DefaultConfig(), discard, "info", nil, io.Discard)
	assert.ErrorContains(t, err, "no input files")
}

// TestRun_Convert re-encodes a Version-1.0 file as Version-2.0 with
// the configured unit and format.
func TestRun_Convert(t *testing.T) {
	path := writeFile(t, "a.s2p", "# MHz S MA R 50\n100 0.1 0 0.5 -90 0.5 90 0.2 0\n")

	config := DefaultConfig()
	config.Output = OutputConfig{Version: "2.0", Unit: "MHz", Format: "RI"}

	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), config, discard, "convert", []string{path}, &buf))

	d, err := touchstone.NewDecoder(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, touchstone.Version2, d.Options().Version)
	assert.Equal(t, touchstone.RealImaginary, d.Options().Format)

	freq, m, err := d.Read()
	require.NoError(t, err)
	assert.InDelta(t, 100e6, freq, 1)
	p, err := m.At(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, p.Imag(), 1e-6)
}

// TestRun_Cascade combines two attenuator files into the summed loss.
func TestRun_Cascade(t *testing.T) {
	a := attenuatorFile(t, 3)
	b := attenuatorFile(t, 5)

	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), DefaultConfig(), discard, "cascade", []string{a, b}, &buf))

	d, err := touchstone.NewDecoder(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	_, m, err := d.Read()
	require.NoError(t, err)
	p, err := m.At(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, -8, p.MagnitudeDB(), 1e-6)

	err = Run(context.Background(), DefaultConfig(), discard, "cascade", []string{a}, io.Discard)
	assert.ErrorContains(t, err, "at least two")
}

// TestRun_Deembed strips identical fixtures from a three-stage
// composite, leaving the middle stage.
func TestRun_Deembed(t *testing.T) {
	fixture := attenuatorFile(t, 3)
	dut := attenuatorFile(t, 5)

	// Build the composite by cascading fixture·dut·fixture first.
	var composite bytes.Buffer
	require.NoError(t, Run(context.Background(), DefaultConfig(), discard, "cascade",
		[]string{fixture, dut, fixture}, &composite))
	compositePath := writeFile(t, "composite.s2p", composite.String())

	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), DefaultConfig(), discard, "deembed",
		[]string{fixture, compositePath, fixture}, &buf))

	d, err := touchstone.NewDecoder(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	_, m, err := d.Read()
	require.NoError(t, err)
	p, err := m.At(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, -5, p.MagnitudeDB(), 1e-6)

	err = Run(context.Background(), DefaultConfig(), discard, "deembed", []string{fixture}, io.Discard)
	assert.ErrorContains(t, err, "fixture")
}
