package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/metaperl/mcg/config"
)

type commandlineArgs struct {
	configFile string
	envFile    string
	inputFile  string
	overrides  map[string]string
}

func usage() {
	out := flag.CommandLine.Output()

	fmt.Fprintln(out, "Usage: mcg [OPTIONS] <input-file> [mode]")
	fmt.Fprintln(out, "       mcg [OPTIONS] -serve <addr>")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "For each command in <input-file>, print the floors the elevator visits")
	fmt.Fprintln(out, "followed by the total distance in parentheses. Mode A visits every")
	fmt.Fprintln(out, "requested floor in order, mode B compresses same-direction requests.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	flag.PrintDefaults()
}

/*
 * Parse command line arguments.
 * Only flags given explicitly override the config file and environment.
 */
func parseCommandlineFlags() commandlineArgs {
	configFile := flag.String("config", config.DEFAULT_CONFIG_FILE, "YAML config file, skipped when missing")
	envFile := flag.String("env", config.DEFAULT_ENV_FILE, "dotenv file, skipped when missing")
	flag.String("mode", config.DEFAULT_MODE, "Navigation mode: A (naive) or B (optimized)")
	flag.String("log-level", config.DEFAULT_LOG_LEVEL, "Log level: trace, debug, info, warn, error or disabled")
	flag.String("serve", "", "Run the UDP path service on this address instead of reading a file")
	flag.String("remote", "", "Compute paths with the UDP path service at this address")

	flag.Usage = usage
	flag.Parse()

	args := commandlineArgs{
		configFile: *configFile,
		envFile:    *envFile,
		overrides:  map[string]string{},
	}

	flag.Visit(func(f *flag.Flag) {
		args.overrides[f.Name] = f.Value.String()
	})

	switch flag.NArg() {
	case 0:
	case 2:
		args.overrides["mode"] = flag.Arg(1)
		fallthrough
	case 1:
		args.inputFile = flag.Arg(0)
	default:
		fmt.Fprintln(os.Stderr, "Too many arguments, use flag -h to see usage")
		os.Exit(2)
	}

	return args
}

func applyOverrides(cfg *config.Config, overrides map[string]string) {
	fields := map[string]*string{
		"mode":      &cfg.Mode,
		"log-level": &cfg.LogLevel,
		"serve":     &cfg.Listen,
		"remote":    &cfg.Remote,
	}

	for name, value := range overrides {
		if field, found := fields[name]; found {
			*field = value
		}
	}
}
