package requests

import (
	"slices"

	"github.com/metaperl/mcg/types"
)

/*
 * Distinct floors touched by one direction run.
 * Floors may be negative, so a map is used instead of a bool per floor.
 */
type FloorSet struct {
	floors map[int]struct{}
}

func NewFloorSet(floors ...int) *FloorSet {
	fs := &FloorSet{floors: make(map[int]struct{}, len(floors))}

	for _, floor := range floors {
		fs.Insert(floor)
	}

	return fs
}

// Insert reports whether the floor was already in the set.
func (fs *FloorSet) Insert(floor int) bool {
	_, found := fs.floors[floor]
	fs.floors[floor] = struct{}{}
	return found
}

func (fs *FloorSet) Contains(floor int) bool {
	_, found := fs.floors[floor]
	return found
}

func (fs *FloorSet) Len() int {
	return len(fs.floors)
}

/*
 * Floors in the order an elevator moving in dirn passes them:
 * descending when going down, ascending otherwise.
 */
func (fs *FloorSet) Sorted(dirn types.Dirn) []int {
	floors := make([]int, 0, len(fs.floors))

	for floor := range fs.floors {
		floors = append(floors, floor)
	}

	slices.Sort(floors)

	if dirn == types.D_Down {
		slices.Reverse(floors)
	}

	return floors
}
