package parser

import (
	"strconv"
	"strings"

	"github.com/metaperl/mcg/logger"
	"github.com/metaperl/mcg/types"
)

var Log = logger.GetLogger()

const FLOOR_SEPARATOR = ":"
const TRANSITION_SEPARATOR = ","
const ORIGIN_DESTINATION_SEPARATOR = "-"

/*
 * Parse a line of the form START:O1-D1,O2-D2,... into a Command.
 * Floors may be negative, e.g. -1:-1--3.
 */
func ParseCommand(line string) (types.Command, error) {
	fields := strings.Split(line, FLOOR_SEPARATOR)

	if len(fields) != 2 {
		return types.Command{}, &types.ParseError{
			Text:   line,
			Reason: "expected exactly one '" + FLOOR_SEPARATOR + "'",
		}
	}

	startFloor, err := parseFloor(line, fields[0])

	if err != nil {
		return types.Command{}, err
	}

	cmd := types.Command{StartFloor: startFloor}

	for _, token := range strings.Split(fields[1], TRANSITION_SEPARATOR) {
		transition, err := parseTransition(line, token)

		if err != nil {
			return types.Command{}, err
		}

		Log.Debug().Msgf("%d:%d->%d", startFloor, transition.Origin, transition.Destination)
		cmd.Transitions = append(cmd.Transitions, transition)
	}

	return cmd, nil
}

/*
 * Inverse of ParseCommand.
 */
func FormatCommand(cmd types.Command) string {
	return cmd.String()
}

func parseFloor(line string, token string) (int, error) {
	floor, err := strconv.Atoi(strings.TrimSpace(token))

	if err != nil {
		return 0, &types.ParseError{
			Text:   line,
			Reason: "floor " + strconv.Quote(token) + " is not an integer",
			Err:    err,
		}
	}

	return floor, nil
}

/*
 * The separator is the first '-' after the origin's optional sign.
 */
func parseTransition(line string, token string) (types.Transition, error) {
	token = strings.TrimSpace(token)

	separator := -1
	if len(token) > 1 {
		if i := strings.Index(token[1:], ORIGIN_DESTINATION_SEPARATOR); i >= 0 {
			separator = i + 1
		}
	}

	if separator < 0 {
		return types.Transition{}, &types.ParseError{
			Text:   line,
			Reason: "transition " + strconv.Quote(token) + " has no '" + ORIGIN_DESTINATION_SEPARATOR + "'",
		}
	}

	origin, err := parseFloor(line, token[:separator])

	if err != nil {
		return types.Transition{}, err
	}

	destination, err := parseFloor(line, token[separator+1:])

	if err != nil {
		return types.Transition{}, err
	}

	return types.Transition{Origin: origin, Destination: destination}, nil
}
