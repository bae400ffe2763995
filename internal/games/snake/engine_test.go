package snake

import (
	"math/rand"
	"slices"
	"testing"
)

func TestBoardStartSnake(t *testing.T) {
	b := NewBoard(20)
	if got, want := b.StartSnake(), []int{45, 44, 43}; !slices.Equal(got, want) {
		t.Errorf("StartSnake() = %v, want %v", got, want)
	}
}

func TestBoardNeighbor(t *testing.T) {
	b := NewBoard(20)
	tests := []struct {
		name   string
		cell   int
		dir    Direction
		want   int
		wantOK bool
	}{
		{"right inside", 45, DirRight, 46, true},
		{"right edge", 19, DirRight, NoCell, false},
		{"right edge no wrap", 39, DirRight, NoCell, false},
		{"left edge no wrap", 40, DirLeft, NoCell, false},
		{"up top row", 5, DirUp, NoCell, false},
		{"up inside", 45, DirUp, 25, true},
		{"down bottom row", 399, DirDown, NoCell, false},
		{"down inside", 45, DirDown, 65, true},
		{"outside board", 400, DirLeft, NoCell, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.Neighbor(tt.cell, tt.dir)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Neighbor(%d, %v) = %d, %v; want %d, %v", tt.cell, tt.dir, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCommitNeverReverses(t *testing.T) {
	dirs := []Direction{DirRight, DirDown, DirLeft, DirUp}
	for _, cur := range dirs {
		for _, pend := range dirs {
			got := Commit(cur, pend)
			if got == cur.Opposite() {
				t.Errorf("Commit(%v, %v) = %v, reverses current", cur, pend, got)
			}
			if !pend.IsOpposite(cur) && got != pend {
				t.Errorf("Commit(%v, %v) = %v, want pending", cur, pend, got)
			}
		}
	}
}

func TestStep(t *testing.T) {
	b := NewBoard(20)
	tests := []struct {
		name      string
		in        StepInput
		wantEvent TickEvent
		wantCause CollisionCause
		wantSnake []int
		wantDir   Direction
	}{
		{
			name:      "moves right",
			in:        StepInput{Snake: []int{45, 44, 43}, Current: DirRight, Pending: DirRight, Food: 0},
			wantEvent: EventMoved,
			wantSnake: []int{46, 45, 44},
			wantDir:   DirRight,
		},
		{
			name:      "reversal ignored",
			in:        StepInput{Snake: []int{45, 44, 43}, Current: DirRight, Pending: DirLeft, Food: 0},
			wantEvent: EventMoved,
			wantSnake: []int{46, 45, 44},
			wantDir:   DirRight,
		},
		{
			name:      "turn applied",
			in:        StepInput{Snake: []int{45, 44, 43}, Current: DirRight, Pending: DirDown, Food: 0},
			wantEvent: EventMoved,
			wantSnake: []int{65, 45, 44},
			wantDir:   DirDown,
		},
		{
			name:      "eats and grows",
			in:        StepInput{Snake: []int{45, 44, 43}, Current: DirRight, Pending: DirRight, Food: 46},
			wantEvent: EventAte,
			wantSnake: []int{46, 45, 44, 43},
			wantDir:   DirRight,
		},
		{
			name:      "right wall",
			in:        StepInput{Snake: []int{19, 18, 17}, Current: DirRight, Pending: DirRight, Food: 0},
			wantEvent: EventCollision,
			wantCause: CauseWall,
			wantSnake: []int{19, 18, 17},
			wantDir:   DirRight,
		},
		{
			name:      "wall stays lethal while immune",
			in:        StepInput{Snake: []int{39, 38, 37}, Current: DirRight, Pending: DirRight, Food: 0, Immune: true},
			wantEvent: EventCollision,
			wantCause: CauseWall,
			wantSnake: []int{39, 38, 37},
			wantDir:   DirRight,
		},
		{
			name:      "self collision",
			in:        StepInput{Snake: []int{45, 46, 26, 25, 24}, Current: DirLeft, Pending: DirUp, Food: 0},
			wantEvent: EventCollision,
			wantCause: CauseSelf,
			wantSnake: []int{45, 46, 26, 25, 24},
			wantDir:   DirUp,
		},
		{
			name:      "self collision blocked while immune",
			in:        StepInput{Snake: []int{45, 46, 26, 25, 24}, Current: DirLeft, Pending: DirUp, Food: 0, Immune: true},
			wantEvent: EventBlocked,
			wantCause: CauseSelf,
			wantSnake: []int{45, 46, 26, 25, 24},
			wantDir:   DirUp,
		},
		{
			name:      "chasing the tail",
			in:        StepInput{Snake: []int{45, 46, 26, 25}, Current: DirLeft, Pending: DirUp, Food: 0},
			wantEvent: EventMoved,
			wantSnake: []int{25, 45, 46, 26},
			wantDir:   DirUp,
		},
		{
			name:      "lethal obstacle",
			in:        StepInput{Snake: []int{45, 44, 43}, Current: DirRight, Pending: DirRight, Food: 0, Obstacles: []int{46}},
			wantEvent: EventCollision,
			wantCause: CauseObstacle,
			wantSnake: []int{45, 44, 43},
			wantDir:   DirRight,
		},
		{
			name:      "edible obstacle",
			in:        StepInput{Snake: []int{45, 44, 43}, Current: DirRight, Pending: DirRight, Food: 0, Obstacles: []int{46}, ObstaclesEdible: true},
			wantEvent: EventObstacleConsumed,
			wantCause: CauseObstacle,
			wantSnake: []int{45, 44, 43},
			wantDir:   DirRight,
		},
		{
			name:      "obstacle blocked while immune",
			in:        StepInput{Snake: []int{45, 44, 43}, Current: DirRight, Pending: DirRight, Food: 0, Obstacles: []int{46}, Immune: true},
			wantEvent: EventBlocked,
			wantCause: CauseObstacle,
			wantSnake: []int{45, 44, 43},
			wantDir:   DirRight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Board = b
			before := slices.Clone(tt.in.Snake)

			res := Step(tt.in)

			if res.Event != tt.wantEvent {
				t.Errorf("Event = %v, want %v", res.Event, tt.wantEvent)
			}
			if res.Cause != tt.wantCause {
				t.Errorf("Cause = %v, want %v", res.Cause, tt.wantCause)
			}
			if !slices.Equal(res.Snake, tt.wantSnake) {
				t.Errorf("Snake = %v, want %v", res.Snake, tt.wantSnake)
			}
			if res.Direction != tt.wantDir {
				t.Errorf("Direction = %v, want %v", res.Direction, tt.wantDir)
			}
			if !slices.Equal(tt.in.Snake, before) {
				t.Errorf("input snake mutated: %v, was %v", tt.in.Snake, before)
			}
		})
	}
}

func TestStepWallCellIsNoCell(t *testing.T) {
	res := Step(StepInput{Board: NewBoard(20), Snake: []int{19, 18, 17}, Current: DirRight, Pending: DirRight})
	if res.Cell != NoCell {
		t.Errorf("Cell = %d, want NoCell", res.Cell)
	}
}

// A random walk keeps the body free of duplicates and grows it only on food.
func TestStepRandomWalkInvariants(t *testing.T) {
	b := NewBoard(10)
	rng := rand.New(rand.NewSource(7))
	placer := NewPlacer(rand.New(rand.NewSource(8)))

	snake := b.StartSnake()
	dir := DirRight
	food := placer.PlaceFood(b, snake)
	dirs := []Direction{DirRight, DirDown, DirLeft, DirUp}

	for i := range 5000 {
		pending := dirs[rng.Intn(len(dirs))]
		res := Step(StepInput{Board: b, Snake: snake, Current: dir, Pending: pending, Food: food})

		if res.Direction == dir.Opposite() {
			t.Fatalf("step %d: committed reverse direction %v from %v", i, res.Direction, dir)
		}

		switch res.Event {
		case EventCollision:
			snake = b.StartSnake()
			dir = DirRight
			food = placer.PlaceFood(b, snake)
			continue
		case EventAte:
			if len(res.Snake) != len(snake)+1 {
				t.Fatalf("step %d: ate but length %d -> %d", i, len(snake), len(res.Snake))
			}
			food = placer.PlaceFood(b, res.Snake)
		case EventMoved:
			if len(res.Snake) != len(snake) {
				t.Fatalf("step %d: moved but length %d -> %d", i, len(snake), len(res.Snake))
			}
		default:
			t.Fatalf("step %d: unexpected event %v", i, res.Event)
		}

		seen := make(map[int]bool, len(res.Snake))
		for _, c := range res.Snake {
			if seen[c] {
				t.Fatalf("step %d: duplicate cell %d in %v", i, c, res.Snake)
			}
			seen[c] = true
		}
		if food != NoCell && seen[food] {
			t.Fatalf("step %d: food %d on snake", i, food)
		}
		snake = res.Snake
		dir = res.Direction
	}
}
