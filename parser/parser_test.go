package parser

import (
	"errors"
	"strconv"
	"testing"

	"github.com/metaperl/mcg/types"
)

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		line     string
		expected types.Command
	}{
		{"0:3-3", types.Command{StartFloor: 0, Transitions: []types.Transition{{Origin: 3, Destination: 3}}}},
		{"0:5-2,2-8", types.Command{StartFloor: 0, Transitions: []types.Transition{{Origin: 5, Destination: 2}, {Origin: 2, Destination: 8}}}},
		{"10:8-1", types.Command{StartFloor: 10, Transitions: []types.Transition{{Origin: 8, Destination: 1}}}},
		{"9:1-5,1-6,1-5", types.Command{StartFloor: 9, Transitions: []types.Transition{{Origin: 1, Destination: 5}, {Origin: 1, Destination: 6}, {Origin: 1, Destination: 5}}}},
		{"-1:-2--3,4--1", types.Command{StartFloor: -1, Transitions: []types.Transition{{Origin: -2, Destination: -3}, {Origin: 4, Destination: -1}}}},
		{" 2 : 1 - 4 , 4-2 ", types.Command{StartFloor: 2, Transitions: []types.Transition{{Origin: 1, Destination: 4}, {Origin: 4, Destination: 2}}}},
	}

	for _, testCase := range testCases {
		cmd, err := ParseCommand(testCase.line)

		if err != nil {
			t.Errorf("ParseCommand(%q) returned error %v", testCase.line, err)
			continue
		}

		if !cmd.Equal(testCase.expected) {
			t.Errorf("ParseCommand(%q) = %v, expected %v", testCase.line, cmd, testCase.expected)
		}
	}
}

func TestParseCommandErrors(t *testing.T) {
	lines := []string{
		"abc:1-2",
		"",
		"0",
		"0:1-2:3",
		"0:",
		"0:1",
		"0:1-",
		"0:-1",
		"0:1-2,",
		"0:1-2-3",
		"0:x-2",
		"0:1-y",
		"0:1-2,3",
	}

	for _, line := range lines {
		_, err := ParseCommand(line)

		var parseError *types.ParseError
		if !errors.As(err, &parseError) {
			t.Errorf("ParseCommand(%q) error = %v, expected a ParseError", line, err)
			continue
		}

		if parseError.Text != line {
			t.Errorf("ParseError.Text = %q, expected %q", parseError.Text, line)
		}
	}
}

func TestParseCommandWrapsNumError(t *testing.T) {
	_, err := ParseCommand("abc:1-2")

	var numError *strconv.NumError
	if !errors.As(err, &numError) {
		t.Errorf("ParseCommand(\"abc:1-2\") error = %v, expected to wrap a strconv.NumError", err)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	commands := []types.Command{
		{StartFloor: 0, Transitions: []types.Transition{{Origin: 3, Destination: 3}}},
		{StartFloor: 7, Transitions: []types.Transition{{Origin: 11, Destination: 6}, {Origin: 10, Destination: 8}, {Origin: 9, Destination: 7}}},
		{StartFloor: -4, Transitions: []types.Transition{{Origin: -2, Destination: -9}, {Origin: 0, Destination: -1}, {Origin: -1, Destination: 0}}},
		{StartFloor: 12, Transitions: []types.Transition{{Origin: 12, Destination: 12}, {Origin: 1, Destination: 1}}},
	}

	for _, cmd := range commands {
		formatted := FormatCommand(cmd)
		parsed, err := ParseCommand(formatted)

		if err != nil {
			t.Errorf("ParseCommand(%q) returned error %v", formatted, err)
			continue
		}

		if !parsed.Equal(cmd) {
			t.Errorf("ParseCommand(FormatCommand(%v)) = %v, expected %v", cmd, parsed, cmd)
		}
	}
}

func TestFormatCommand(t *testing.T) {
	cmd := types.Command{StartFloor: 0, Transitions: []types.Transition{{Origin: 5, Destination: 2}, {Origin: 2, Destination: 8}}}

	if FormatCommand(cmd) != "0:5-2,2-8" {
		t.Errorf("FormatCommand() = %s, expected 0:5-2,2-8", FormatCommand(cmd))
	}
}
