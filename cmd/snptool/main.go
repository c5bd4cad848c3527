// snptool inspects, converts and combines Touchstone network files.
//
// Usage:
//
//	snptool [-c config.yaml] [-o out.s2p] <info|convert|cascade|deembed> files...
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mdwhitten/microwave-networks/cmd/snptool/app"
)

func main() {
	var logLevel slog.LevelVar
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &logLevel}))

	var configPath, outputPath string
	flag.StringVar(&configPath, "c", "", "Path to the configuration file")
	flag.StringVar(&outputPath, "o", "", "Output file (default standard output)")
	flag.Parse()

	if flag.NArg() == 0 {
		logger.Error("no command given; want info, convert, cascade or deembed")
		os.Exit(1)
	}

	config := app.DefaultConfig()
	if configPath != "" {
		var err error
		if config, err = app.LoadConfig(configPath); err != nil {
			logger.Error(fmt.Sprintf("failed to load configuration file: %s", err.Error()), slog.String("path", configPath))
			os.Exit(1)
		}
	}
	logLevel.Set(config.Level())

	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create output file: %s", err.Error()), slog.String("path", outputPath))
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, config, logger, flag.Arg(0), flag.Args()[1:], out); err != nil {
		logger.Error(err.Error())

		cancel()
		os.Exit(1)
	}
}
