package route

import (
	"github.com/metaperl/mcg/logger"
	"github.com/metaperl/mcg/requests"
	"github.com/metaperl/mcg/types"
)

var Log = logger.GetLogger()

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

/*
 * Sum of the distances between consecutive floors.
 */
func Distance(floors []int) int {
	distance := 0

	for i := 1; i < len(floors); i++ {
		distance += abs(floors[i] - floors[i-1])
	}

	return distance
}

func RemoveConsecutiveDuplicates(floors []int) []int {
	result := make([]int, 0, len(floors))

	for i, floor := range floors {
		if i > 0 && floor == floors[i-1] {
			continue
		}
		result = append(result, floor)
	}

	return result
}

/*
 * Mode A: visit every origin and destination exactly as requested.
 */
func NaivePath(cmd types.Command) types.Path {
	path := types.Path{Floors: []int{cmd.StartFloor}}

	currentFloor := cmd.StartFloor

	for _, transition := range cmd.Transitions {
		path.Distance += abs(currentFloor - transition.Origin)
		path.Distance += abs(transition.Origin - transition.Destination)
		path.Floors = append(path.Floors, transition.Origin, transition.Destination)

		currentFloor = transition.Destination
	}

	return path
}

/*
 * Mode B: within each run of same-direction transitions, pass every
 * requested floor once in the direction of travel.
 */
func OptimalPath(cmd types.Command) types.Path {
	groups := requests.GroupByDirection(cmd)

	if len(groups) == 0 {
		return types.Path{Floors: []int{cmd.StartFloor}}
	}

	var floors []int

	for _, group := range groups {
		floors = append(floors, group.Floors.Sorted(group.Dirn)...)
	}

	floors = RemoveConsecutiveDuplicates(floors)

	Log.Debug().Ints("floors", floors).Int("groups", len(groups)).Msg("Compressed transitions")

	return types.Path{
		Floors:   floors,
		Distance: Distance(floors),
	}
}

/*
 * Compute the path for cmd in the mode named by modeValue ("A" or "B",
 * any case). Unknown modes give a ConfigurationError.
 */
func Compute(modeValue string, cmd types.Command) (types.Path, error) {
	mode, err := types.ParseMode(modeValue)

	if err != nil {
		return types.Path{}, err
	}

	switch mode {
	case types.M_Optimized:
		return OptimalPath(cmd), nil

	default:
		return NaivePath(cmd), nil
	}
}
