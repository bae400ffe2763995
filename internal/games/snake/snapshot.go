package snake

import "time"

// Snapshot captures the session state for determinism testing and logs.
type Snapshot struct {
	Generation uint64
	Tick       uint64
	State      RunState
	Phase      int
	Score      int
	HighScore  int
	FoodEaten  int
	SnakeLen   int
	Head       int
	Dir        Direction
	Food       int
	Obstacles  int
	Interval   time.Duration
	Modifier   Modifier
	Immune     bool
	Pending    int // Scheduled effects not yet fired
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	head := NoCell
	if len(s.snake) > 0 {
		head = s.snake[0]
	}
	return Snapshot{
		Generation: s.generation,
		Tick:       s.ticks,
		State:      s.state,
		Phase:      s.prog.Index(),
		Score:      s.score,
		HighScore:  s.highScore,
		FoodEaten:  s.foodEaten,
		SnakeLen:   len(s.snake),
		Head:       head,
		Dir:        s.current,
		Food:       s.food,
		Obstacles:  len(s.obstacles),
		Interval:   s.prog.Interval(),
		Modifier:   s.prog.Modifier(),
		Immune:     s.immune,
		Pending:    s.sched.Pending(),
	}
}
