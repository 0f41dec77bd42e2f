package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/metaperl/mcg/batch"
	"github.com/metaperl/mcg/config"
	"github.com/metaperl/mcg/logger"
	"github.com/metaperl/mcg/network"
	"github.com/metaperl/mcg/types"
)

var Log = logger.GetLogger()

func main() {
	args := parseCommandlineFlags()

	/*
	 * Load config: defaults, YAML file, env, then flags
	 */
	cfg, err := config.Load(args.configFile, args.envFile)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	applyOverrides(cfg, args.overrides)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, _ := cfg.Level()
	logger.GetLoggerConfigured(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	/*
	 * Path service
	 */
	if cfg.Listen != "" {
		if err := serve(ctx, cfg.Listen); err != nil {
			Log.Error().Err(err).Msg("Path service failed")
			os.Exit(1)
		}
		return
	}

	if args.inputFile == "" {
		fmt.Fprintln(os.Stderr, "Missing input file, use flag -h to see usage")
		os.Exit(2)
	}

	/*
	 * Batch, locally or through a remote path service
	 */
	if cfg.Remote != "" {
		err = runRemote(ctx, args.inputFile, os.Stdout, cfg.Remote, cfg.Mode)
	} else {
		err = batch.RunFile(args.inputFile, os.Stdout, cfg.Mode)
	}

	if err != nil {
		Log.Error().Err(err).Msg("Run aborted")
		os.Exit(1)
	}
}

func serve(ctx context.Context, addr string) error {
	conn, err := network.Listen(addr)

	if err != nil {
		return err
	}
	defer conn.Close()

	Log.Info().Str("addr", network.ServiceAddr(conn.LocalAddr())).Msg("Serving path requests")

	return network.Serve(ctx, conn, network.PathHandler)
}

/*
 * Same output and error policy as a local run: the first malformed
 * line stops the run.
 */
func runRemote(ctx context.Context, filename string, w io.Writer, addr string, mode string) error {
	file, err := os.Open(filename)

	if err != nil {
		return &types.ResourceError{Resource: filename, Err: err}
	}
	defer file.Close()

	return batch.ForEachLine(file, func(lineNumber int, line string) error {
		reply, err := network.Request(ctx, addr, types.PathRequest{Mode: mode, Line: line})

		if err != nil {
			return err
		}

		if reply.Error != "" {
			return &types.ParseError{Line: lineNumber, Text: line, Reason: reply.Error}
		}

		_, err = fmt.Fprintln(w, reply.Output)
		return err
	})
}
