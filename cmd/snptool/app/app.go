// Package app implements the snptool commands: inspecting, converting
// and combining Touchstone files on top of the network and touchstone
// packages.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/mdwhitten/microwave-networks/network"
	"github.com/mdwhitten/microwave-networks/touchstone"
)

// Run dispatches one command: info, convert, cascade or deembed.
// Output for the re-encoding commands goes to w.
func Run(ctx context.Context, config *Config, logger *slog.Logger, command string, files []string, w io.Writer) error {
	switch command {
	case "info":
		if len(files) == 0 {
			return errors.New("info: no input files")
		}

		return runInfo(ctx, logger, files)

	case "convert":
		if len(files) != 1 {
			return errors.New("convert: exactly one input file required")
		}

		return runConvert(ctx, config, files[0], w)

	case "cascade":
		if len(files) < 2 {
			return errors.New("cascade: at least two input files required")
		}

		return runCascade(ctx, config, logger, files, w)

	case "deembed":
		if len(files) != 3 {
			return errors.New("deembed: left fixture, composite and right fixture files required")
		}

		return runDeembed(ctx, config, logger, files, w)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// decodeFile materializes one Touchstone file.
func decodeFile(ctx context.Context, path string) (*touchstone.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	d, err := touchstone.NewDecoder(f)
	if err != nil {
		f.Close()

		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer d.Close()

	doc, err := d.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return doc, nil
}

// siHz renders a frequency with an SI prefix, e.g. "2.40 GHz".
func siHz(hz float64) string {
	fract, suffix := humanize.ComputeSI(hz)

	return fmt.Sprintf("%0.2f %sHz", fract, suffix)
}

func runInfo(ctx context.Context, logger *slog.Logger, files []string) error {
	for _, path := range files {
		doc, err := decodeFile(ctx, path)
		if err != nil {
			return err
		}

		attrs := []any{
			slog.String("file", path),
			slog.String("version", doc.Options.Version.String()),
			slog.String("format", doc.Options.Format.String()),
			slog.Int("ports", doc.Networks.Ports()),
			slog.Int("points", doc.Networks.Len()),
		}
		if freqs := doc.Networks.Frequencies(); len(freqs) > 0 {
			attrs = append(attrs,
				slog.String("from", siHz(freqs[0])),
				slog.String("to", siHz(freqs[len(freqs)-1])))
		}
		if len(doc.NoiseData) > 0 {
			attrs = append(attrs, slog.Int("noisePoints", len(doc.NoiseData)))
		}
		logger.Info("network file", attrs...)
	}

	return nil
}

// encodeResult writes a collection with the configured output settings.
func encodeResult(config *Config, col *network.Collection, noise map[float64]touchstone.NoiseRecord, w io.Writer) error {
	opts, kw, err := config.Output.EncoderSettings()
	if err != nil {
		return err
	}

	return touchstone.WriteDocument(w, &touchstone.Document{
		Networks:  col,
		Options:   opts,
		Keywords:  kw,
		NoiseData: noise,
	})
}

func runConvert(ctx context.Context, config *Config, path string, w io.Writer) error {
	doc, err := decodeFile(ctx, path)
	if err != nil {
		return err
	}

	return encodeResult(config, doc.Networks, doc.NoiseData, w)
}

func runCascade(ctx context.Context, config *Config, logger *slog.Logger, files []string, w io.Writer) error {
	first, err := decodeFile(ctx, files[0])
	if err != nil {
		return err
	}
	rest := make([]*network.Collection, 0, len(files)-1)
	for _, path := range files[1:] {
		doc, dErr := decodeFile(ctx, path)
		if dErr != nil {
			return dErr
		}
		rest = append(rest, doc.Networks)
	}

	total, err := first.Networks.CascadeWith(rest...)
	if err != nil {
		return fmt.Errorf("cascading: %w", err)
	}
	if dropped := first.Networks.Len() - total.Len(); dropped > 0 {
		logger.Warn("frequencies without data in every stage were dropped",
			slog.Int("dropped", dropped))
	}
	logger.Info("cascaded", slog.Int("stages", len(files)), slog.Int("points", total.Len()))

	return encodeResult(config, total, nil, w)
}

func runDeembed(ctx context.Context, config *Config, logger *slog.Logger, files []string, w io.Writer) error {
	left, err := decodeFile(ctx, files[0])
	if err != nil {
		return err
	}
	composite, err := decodeFile(ctx, files[1])
	if err != nil {
		return err
	}
	right, err := decodeFile(ctx, files[2])
	if err != nil {
		return err
	}

	result, err := network.NewCollection(composite.Networks.Ports(), composite.Networks.Variant())
	if err != nil {
		return err
	}
	skipped := 0
	for _, f := range composite.Networks.Frequencies() {
		if !left.Networks.Contains(f) || !right.Networks.Contains(f) {
			skipped++

			continue
		}
		cm, gErr := composite.Networks.Get(f)
		if gErr != nil {
			return gErr
		}
		lm, gErr := left.Networks.Get(f)
		if gErr != nil {
			return gErr
		}
		rm, gErr := right.Networks.Get(f)
		if gErr != nil {
			return gErr
		}
		dut, dErr := cm.Deembed(lm, rm)
		if dErr != nil {
			return fmt.Errorf("de-embedding at %s: %w", siHz(f), dErr)
		}
		if err = result.Set(f, dut); err != nil {
			return err
		}
	}
	if skipped > 0 {
		logger.Warn("frequencies missing fixture data were dropped", slog.Int("dropped", skipped))
	}
	logger.Info("de-embedded", slog.Int("points", result.Len()))

	return encodeResult(config, result, nil, w)
}
