package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gridmdp/utils/intutils"
)

// Action is one of the four cardinal moves. Actions are ordered
// cyclically so that an action's two neighbours in that cycle are the
// directions perpendicular to it.
type Action int

// Actions available in a gridworld
const (
	Left Action = iota
	Down
	Right
	Up
)

// NumActions is the number of actions in a gridworld
const NumActions int = 4

// Actions returns all actions in their cyclic order
func Actions() []Action {
	return []Action{Left, Down, Right, Up}
}

// Valid returns whether the action is one of the four moves
func (a Action) Valid() bool {
	return a >= 0 && int(a) < NumActions
}

// Neighbours returns the actions preceding and following a in the
// cyclic action order, (a-1) mod 4 and (a+1) mod 4
func (a Action) Neighbours() (prev, next Action) {
	prev = Action(intutils.Mod(int(a)-1, NumActions))
	next = Action(intutils.Mod(int(a)+1, NumActions))
	return prev, next
}

// Displacement returns the (row, col) offset of a single move
func (a Action) Displacement() (dRow, dCol int) {
	switch a {
	case Left:
		return 0, -1
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	case Up:
		return -1, 0
	}
	panic(fmt.Sprintf("displacement: no such action %d", int(a)))
}

func (a Action) String() string {
	switch a {
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Right:
		return "Right"
	case Up:
		return "Up"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}
