package requests

import (
	"github.com/metaperl/mcg/types"
)

/*
 * Floors touched by one maximal run of transitions sharing a direction.
 */
type DirnGroup struct {
	Dirn   types.Dirn
	Floors *FloorSet
}

/*
 * The move from the start floor to the first origin, which is travelled
 * before any request is served.
 */
func startTransition(cmd types.Command) types.Transition {
	return types.Transition{
		Origin:      cmd.StartFloor,
		Destination: cmd.Transitions[0].Origin,
	}
}

/*
 * Partition the command's transitions, prefixed by the move to the first
 * origin, into maximal runs with the same direction.
 * Sideways transitions only group with neighbouring sideways transitions.
 */
func GroupByDirection(cmd types.Command) []DirnGroup {
	if len(cmd.Transitions) == 0 {
		return nil
	}

	transitions := append([]types.Transition{startTransition(cmd)}, cmd.Transitions...)

	var groups []DirnGroup

	for i, transition := range transitions {
		dirn := transition.Dirn()

		if i == 0 || groups[len(groups)-1].Dirn != dirn {
			groups = append(groups, DirnGroup{Dirn: dirn, Floors: NewFloorSet()})
		}

		group := groups[len(groups)-1]
		group.Floors.Insert(transition.Origin)
		group.Floors.Insert(transition.Destination)
	}

	return groups
}
