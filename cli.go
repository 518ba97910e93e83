package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/soocke/radial-select-go/config"
)

// ErrUsage marks malformed command-line arguments.
var ErrUsage = errors.New("usage")

const usageLine = "usage: radial-select [flags] [window-size] [segments]"

// options holds parsed command-line input. Zero positional values mean "not given".
type options struct {
	ConfigPath  string
	WriteConfig string
	Snapshot    string
	Debug       bool
	WindowSize  int
	Segments    int
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("radial-select", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageLine)
		fs.PrintDefaults()
	}
	fs.StringVar(&o.ConfigPath, "config", "", "path to a JSON config file")
	fs.StringVar(&o.WriteConfig, "write-config", "", "write the effective config to this path and continue")
	fs.StringVar(&o.Snapshot, "snapshot", "", "render the ring to this PNG file and exit without opening a window")
	fs.BoolVar(&o.Debug, "debug", false, "enable debug logging and frame stats")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	rest := fs.Args()
	if len(rest) > 2 {
		return o, fmt.Errorf("%w: too many arguments: %v", ErrUsage, rest)
	}
	if len(rest) > 0 {
		n, err := strconv.Atoi(rest[0])
		if err != nil || n <= 0 {
			return o, fmt.Errorf("%w: window size must be a positive integer, got %q", ErrUsage, rest[0])
		}
		o.WindowSize = n
	}
	if len(rest) > 1 {
		n, err := strconv.Atoi(rest[1])
		if err != nil || n < 1 {
			return o, fmt.Errorf("%w: segment count must be an integer >= 1, got %q", ErrUsage, rest[1])
		}
		o.Segments = n
	}
	return o, nil
}

// apply overlays command-line values on cfg.
func (o options) apply(cfg *config.Config) {
	if o.WindowSize > 0 {
		cfg.WindowSize = o.WindowSize
	}
	if o.Segments > 0 {
		cfg.Segments = o.Segments
	}
	if o.Debug {
		cfg.Debug = true
	}
}
