// Command hilbertenv runs the Hilbert envelope follower over WAV files or a
// live duplex audio device.
//
// Usage:
//
//	hilbertenv process [flags] <in.wav> <out.wav>
//	hilbertenv kernel [flags]
//	hilbertenv live [flags]
//	hilbertenv params [name ...]
//
// Examples:
//
//	hilbertenv process --mode smoothed --mix 0.8 vocal.wav out.wav
//	hilbertenv kernel --preset balanced
//	hilbertenv kernel --taps 31 --window hann --fft-size 1024
//	hilbertenv live --channels 1 --period 128
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

var version = "0.1.0"

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FF5555"))

// CLI defines the command-line interface.
type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version information."`
	LogLevel  string           `default:"info" enum:"debug,info,warn,error" env:"HILBERTENV_LOG_LEVEL" help:"Log level (${enum})."`
	LogFormat string           `default:"text" enum:"text,json" env:"HILBERTENV_LOG_FORMAT" help:"Log format (${enum})."`

	Process ProcessCmd `cmd:"" help:"Run a WAV file through the envelope follower."`
	Kernel  KernelCmd  `cmd:"" help:"Print a quadrature kernel and its magnitude response."`
	Live    LiveCmd    `cmd:"" help:"Process the default audio input live with a terminal meter."`
	Params  ParamsCmd  `cmd:"" help:"List parameter ranges and defaults."`
}

// appContext is bound into every command's Run method.
type appContext struct {
	logger *logrus.Logger
	out    io.Writer
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hilbertenv"),
		kong.Description("Hilbert FIR envelope follower and modulator"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	logger, err := newLogger(os.Stderr, cli.LogLevel, cli.LogFormat)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if err := ctx.Run(&appContext{logger: logger, out: os.Stdout}); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return logger, nil
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
}
