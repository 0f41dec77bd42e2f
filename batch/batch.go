package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/metaperl/mcg/logger"
	"github.com/metaperl/mcg/parser"
	"github.com/metaperl/mcg/route"
	"github.com/metaperl/mcg/types"
)

var Log = logger.GetLogger()

const MAX_LINE_LENGTH = 1024 * 1024

/*
 * Call fn for every non-blank line of r, numbered from 1.
 * Stops at the first error returned by fn.
 */
func ForEachLine(r io.Reader, fn func(lineNumber int, line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MAX_LINE_LENGTH)

	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := fn(lineNumber, line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return &types.ResourceError{Resource: "input", Err: err}
	}

	return nil
}

/*
 * Parse every line of r and write one path per command to w.
 *
 * A malformed line aborts the run with a ParseError; paths for the lines
 * before it have already been written. An unknown mode is reported on
 * every line and the run continues.
 */
func Run(r io.Reader, w io.Writer, mode string) error {
	return ForEachLine(r, func(lineNumber int, line string) error {
		Log.Debug().Int("line", lineNumber).Msg(line)

		output, err := ComputeLine(line, mode)

		var parseError *types.ParseError
		if errors.As(err, &parseError) {
			parseError.Line = lineNumber
			return parseError
		}

		if _, err := fmt.Fprintln(w, output); err != nil {
			return &types.ResourceError{Resource: "output", Err: err}
		}

		return nil
	})
}

/*
 * Output line for a single command: the formatted path, or the mode
 * diagnostic when mode is not recognized. Only parse errors are returned.
 */
func ComputeLine(line string, mode string) (string, error) {
	cmd, err := parser.ParseCommand(line)

	if err != nil {
		return "", err
	}

	path, err := route.Compute(mode, cmd)

	var configurationError *types.ConfigurationError
	if errors.As(err, &configurationError) {
		return configurationError.Error(), nil
	}

	Log.Debug().Str("command", cmd.String()).Str("path", path.String()).Msg("Computed path")

	return path.String(), nil
}

func RunFile(filename string, w io.Writer, mode string) error {
	file, err := os.Open(filename)

	if err != nil {
		return &types.ResourceError{Resource: filename, Err: err}
	}
	defer file.Close()

	err = Run(file, w, mode)

	var resourceError *types.ResourceError
	if errors.As(err, &resourceError) {
		resourceError.Resource = filename
	}

	return err
}
