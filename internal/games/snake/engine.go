package snake

import "slices"

// TickEvent is the outcome of one movement tick.
type TickEvent int

const (
	EventMoved            TickEvent = iota // Head advanced, tail popped
	EventAte                               // Head advanced onto food, tail kept
	EventObstacleConsumed                  // Obstacle removed, snake held in place
	EventBlocked                           // Collision suppressed by immunity, snake held in place
	EventCollision                         // Lethal collision, snake unchanged
)

func (e TickEvent) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventObstacleConsumed:
		return "obstacle_consumed"
	case EventBlocked:
		return "blocked"
	case EventCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// CollisionCause says what a lethal (or suppressed) move ran into.
type CollisionCause int

const (
	CauseNone CollisionCause = iota
	CauseWall
	CauseSelf
	CauseObstacle
)

func (c CollisionCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// StepInput is everything a movement tick reads. Nothing in it is mutated.
type StepInput struct {
	Board     Board
	Snake     []int // Head first
	Current   Direction
	Pending   Direction
	Food      int
	Obstacles []int
	// ObstaclesEdible makes obstacles consumable instead of lethal.
	ObstaclesEdible bool
	// Immune suppresses self and obstacle collisions. Walls stay lethal.
	Immune bool
}

// StepResult describes the move decided by Step.
type StepResult struct {
	Snake     []int     // New body; same as the input body unless the snake advanced
	Direction Direction // Committed direction
	Event     TickEvent
	Cause     CollisionCause
	Cell      int // Target cell of the move, NoCell for wall collisions
}

// Step advances the snake by one cell. Collision is decided before any
// state is built, so a lethal or aborted move returns the input body as is.
//
// Self collision ignores the tail cell: the tail vacates this tick (food is
// never placed on the body, so the snake cannot grow into its own tail).
func Step(in StepInput) StepResult {
	dir := Commit(in.Current, in.Pending)
	res := StepResult{Snake: in.Snake, Direction: dir, Cell: NoCell}

	if len(in.Snake) == 0 {
		res.Event = EventCollision
		res.Cause = CauseWall
		return res
	}

	next, ok := in.Board.Neighbor(in.Snake[0], dir)
	if !ok {
		res.Event = EventCollision
		res.Cause = CauseWall
		return res
	}
	res.Cell = next

	body := in.Snake[:len(in.Snake)-1]
	if slices.Contains(body, next) {
		res.Cause = CauseSelf
		if in.Immune {
			res.Event = EventBlocked
		} else {
			res.Event = EventCollision
		}
		return res
	}

	if slices.Contains(in.Obstacles, next) {
		res.Cause = CauseObstacle
		switch {
		case in.ObstaclesEdible:
			res.Event = EventObstacleConsumed
		case in.Immune:
			res.Event = EventBlocked
		default:
			res.Event = EventCollision
		}
		return res
	}

	grown := next == in.Food
	size := len(in.Snake)
	if grown {
		size++
	}
	moved := make([]int, 0, size)
	moved = append(moved, next)
	if grown {
		moved = append(moved, in.Snake...)
		res.Event = EventAte
	} else {
		moved = append(moved, body...)
		res.Event = EventMoved
	}
	res.Snake = moved
	return res
}
