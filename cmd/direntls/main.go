// Command direntls lists a single directory through the fixed-layout
// directory reader and prints the platform facts.
package main

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/desertwitch/direntry/dirent"
	"github.com/desertwitch/direntry/internal/configuration"
	"github.com/desertwitch/direntry/platform"
)

const defaultConfigFile = "/etc/direntls.env"

type options struct {
	configFile string
	digest     bool
	raw        bool
	facts      bool
	all        bool
	debug      bool
	path       string
}

func parseFlags(args []string) (*options, *flag.FlagSet, error) {
	opts := &options{}

	fs := flag.NewFlagSet("direntls", flag.ContinueOnError)
	fs.StringVar(&opts.configFile, "config", defaultConfigFile, "configuration file")
	fs.BoolVar(&opts.digest, "digest", false, "print the BLAKE3 fingerprint of the listing")
	fs.BoolVar(&opts.raw, "raw", false, "hex-dump the fixed-layout records")
	fs.BoolVar(&opts.facts, "facts", false, "print the platform facts")
	fs.BoolVar(&opts.all, "a", false, "include the . and .. entries")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	opts.path = "."
	if fs.NArg() > 0 {
		opts.path = fs.Arg(0)
	}

	return opts, fs, nil
}

func loadConfig(opts *options, set *flag.FlagSet) (*configuration.AppConfiguration, error) {
	cfg := configuration.NewAppConfiguration()

	provider := &configuration.ConfigProviderImpl{
		GenericConfigReader: &configuration.GodotenvProvider{},
	}
	if err := cfg.Load(provider, opts.configFile); err != nil {
		return nil, err
	}

	set.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "digest":
			cfg.Digest = opts.digest
		case "raw":
			cfg.Raw = opts.raw
		case "debug":
			if opts.debug {
				cfg.LogLevel = slog.LevelDebug
			}
		}
	})

	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, set, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2 //nolint:mnd
	}

	setupLogging(stderr, slogLevelFromFlag(opts.debug))

	cfg, err := loadConfig(opts, set)
	if err != nil {
		slog.Error("Failed to load configuration", "err", err, "path", opts.configFile)

		return 1
	}
	setupLogging(stderr, cfg.LogLevel)

	if opts.facts {
		renderFacts(stdout, platform.Current())
	}

	entries, err := dirent.ReadAll(opts.path, !opts.all)
	if err != nil {
		slog.Error("Failed to list directory", "err", err, "path", opts.path)

		return 1
	}

	if err := renderListing(stdout, opts.path, entries, cfg); err != nil {
		slog.Error("Failed to render listing", "err", err, "path", opts.path)

		return 1
	}

	return 0
}

func slogLevelFromFlag(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
