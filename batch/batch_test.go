package batch

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/metaperl/mcg/types"
)

const INPUT = "0:3-3\n0:5-2,2-8\n\n10:8-1\r\n"

func TestRun(t *testing.T) {
	testCases := []struct {
		mode     string
		expected string
	}{
		{"A", "0 3 3 (3)\n0 5 2 2 8 (14)\n10 8 1 (9)\n"},
		{"b", "0 3 (3)\n0 5 2 8 (14)\n10 8 1 (9)\n"},
		{"X", "Mode 'X' not recognized\nMode 'X' not recognized\nMode 'X' not recognized\n"},
	}

	for _, testCase := range testCases {
		var out bytes.Buffer

		if err := Run(strings.NewReader(INPUT), &out, testCase.mode); err != nil {
			t.Errorf("Run(mode %q) returned error %v", testCase.mode, err)
			continue
		}

		if out.String() != testCase.expected {
			t.Errorf("Run(mode %q) wrote %q, expected %q", testCase.mode, out.String(), testCase.expected)
		}
	}
}

func TestRunAbortsOnParseError(t *testing.T) {
	var out bytes.Buffer

	err := Run(strings.NewReader("0:3-3\nabc:1-2\n0:5-2\n"), &out, "A")

	var parseError *types.ParseError
	if !errors.As(err, &parseError) {
		t.Fatalf("Run() error = %v, expected a ParseError", err)
	}

	if parseError.Line != 2 {
		t.Errorf("ParseError.Line = %d, expected 2", parseError.Line)
	}

	if out.String() != "0 3 3 (3)\n" {
		t.Errorf("Run() wrote %q, expected only the line before the error", out.String())
	}
}

func TestRunParseErrorWithUnknownMode(t *testing.T) {
	err := Run(strings.NewReader("abc:1-2\n"), &bytes.Buffer{}, "X")

	var parseError *types.ParseError
	if !errors.As(err, &parseError) {
		t.Errorf("Run() error = %v, expected a ParseError", err)
	}
}

func TestForEachLine(t *testing.T) {
	var lineNumbers []int
	var lines []string

	err := ForEachLine(strings.NewReader("a\n  \nb\r\n\nc"), func(lineNumber int, line string) error {
		lineNumbers = append(lineNumbers, lineNumber)
		lines = append(lines, line)
		return nil
	})

	if err != nil {
		t.Fatalf("ForEachLine() returned error %v", err)
	}

	if strings.Join(lines, ",") != "a,b,c" {
		t.Errorf("ForEachLine() lines = %v, expected [a b c]", lines)
	}

	if len(lineNumbers) != 3 || lineNumbers[0] != 1 || lineNumbers[1] != 3 || lineNumbers[2] != 5 {
		t.Errorf("ForEachLine() line numbers = %v, expected [1 3 5]", lineNumbers)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestForEachLineReadError(t *testing.T) {
	err := ForEachLine(failingReader{}, func(int, string) error { return nil })

	var resourceError *types.ResourceError
	if !errors.As(err, &resourceError) {
		t.Errorf("ForEachLine() error = %v, expected a ResourceError", err)
	}
}

func TestRunFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "commands.txt")

	if err := os.WriteFile(filename, []byte(INPUT), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer

	if err := RunFile(filename, &out, "B"); err != nil {
		t.Fatalf("RunFile() returned error %v", err)
	}

	if out.String() != "0 3 (3)\n0 5 2 8 (14)\n10 8 1 (9)\n" {
		t.Errorf("RunFile() wrote %q", out.String())
	}
}

func TestRunFileMissing(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "missing.txt")

	err := RunFile(filename, &bytes.Buffer{}, "A")

	var resourceError *types.ResourceError
	if !errors.As(err, &resourceError) {
		t.Fatalf("RunFile() error = %v, expected a ResourceError", err)
	}

	if resourceError.Resource != filename {
		t.Errorf("ResourceError.Resource = %s, expected %s", resourceError.Resource, filename)
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("RunFile() error = %v, expected to wrap os.ErrNotExist", err)
	}
}

func TestComputeLine(t *testing.T) {
	output, err := ComputeLine("0:5-2,2-8", "B")

	if err != nil || output != "0 5 2 8 (14)" {
		t.Errorf("ComputeLine() = %q, %v, expected \"0 5 2 8 (14)\", nil", output, err)
	}
}
