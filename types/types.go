package types

import (
	"fmt"
	"strings"
)

type Dirn int

const (
	D_Sideways Dirn = iota
	D_Up
	D_Down
)

func (d Dirn) String() string {
	switch d {
	case D_Up:
		return "up"
	case D_Down:
		return "down"
	case D_Sideways:
		return "sideways"
	default:
		return "undefined"
	}
}

/*
 * A request to move from one floor to another.
 * The direction is always derived, never stored.
 */
type Transition struct {
	Origin      int
	Destination int
}

func (t Transition) Dirn() Dirn {
	switch {
	case t.Origin < t.Destination:
		return D_Up
	case t.Origin > t.Destination:
		return D_Down
	default:
		return D_Sideways
	}
}

func (t Transition) String() string {
	return fmt.Sprintf("%d-%d", t.Origin, t.Destination)
}

/*
 * One parsed input line: a start floor and the requested transitions in order.
 */
type Command struct {
	StartFloor  int
	Transitions []Transition
}

/*
 * Canonical form START:O1-D1,O2-D2,...
 */
func (cmd Command) String() string {
	transitions := make([]string, len(cmd.Transitions))

	for i, transition := range cmd.Transitions {
		transitions[i] = transition.String()
	}

	return fmt.Sprintf("%d:%s", cmd.StartFloor, strings.Join(transitions, ","))
}

func (cmd Command) Equal(other Command) bool {
	if cmd.StartFloor != other.StartFloor || len(cmd.Transitions) != len(other.Transitions) {
		return false
	}

	for i := range cmd.Transitions {
		if cmd.Transitions[i] != other.Transitions[i] {
			return false
		}
	}

	return true
}

/*
 * Floors in visiting order and the total distance traveled.
 * Distance is always the sum of absolute differences between consecutive floors.
 */
type Path struct {
	Floors   []int
	Distance int
}

func (p Path) String() string {
	floors := make([]string, len(p.Floors))

	for i, floor := range p.Floors {
		floors[i] = fmt.Sprint(floor)
	}

	return fmt.Sprintf("%s (%d)", strings.Join(floors, " "), p.Distance)
}

type Mode int

const (
	M_Naive Mode = iota
	M_Optimized
)

func (m Mode) String() string {
	switch m {
	case M_Naive:
		return "A"
	case M_Optimized:
		return "B"
	default:
		return "?"
	}
}

/*
 * Case-insensitive: "a"/"A" is naive, "b"/"B" is optimized.
 */
func ParseMode(value string) (Mode, error) {
	switch strings.ToUpper(value) {
	case "A":
		return M_Naive, nil
	case "B":
		return M_Optimized, nil
	default:
		return -1, &ConfigurationError{Value: value}
	}
}
