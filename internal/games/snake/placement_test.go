package snake

import (
	"math/rand"
	"slices"
	"testing"
)

func TestPlaceFoodAvoidsOccupied(t *testing.T) {
	b := NewBoard(20)
	snake := []int{45, 44, 43, 42, 41}
	obstacles := []int{0, 1, 2, 100, 399}

	for seed := range int64(200) {
		p := NewPlacer(rand.New(rand.NewSource(seed)))
		food := p.PlaceFood(b, snake, obstacles)
		if !b.Contains(food) {
			t.Fatalf("seed %d: food %d outside board", seed, food)
		}
		if slices.Contains(snake, food) || slices.Contains(obstacles, food) {
			t.Fatalf("seed %d: food %d on occupied cell", seed, food)
		}
	}
}

func TestPlaceFoodFullBoard(t *testing.T) {
	b := NewBoard(6)
	all := make([]int, b.Cells())
	for i := range all {
		all[i] = i
	}
	p := NewPlacer(rand.New(rand.NewSource(1)))
	if got := p.PlaceFood(b, all); got != NoCell {
		t.Errorf("PlaceFood on full board = %d, want NoCell", got)
	}
}

func TestPlaceFoodLastFreeCell(t *testing.T) {
	b := NewBoard(6)
	var occupied []int
	for i := range b.Cells() {
		if i != 17 {
			occupied = append(occupied, i)
		}
	}
	for seed := range int64(20) {
		p := NewPlacer(rand.New(rand.NewSource(seed)))
		if got := p.PlaceFood(b, occupied); got != 17 {
			t.Fatalf("seed %d: PlaceFood = %d, want 17", seed, got)
		}
	}
}

func TestPlaceFoodDeterministic(t *testing.T) {
	b := NewBoard(20)
	snake := b.StartSnake()
	p1 := NewPlacer(rand.New(rand.NewSource(99)))
	p2 := NewPlacer(rand.New(rand.NewSource(99)))
	for i := range 50 {
		f1, f2 := p1.PlaceFood(b, snake), p2.PlaceFood(b, snake)
		if f1 != f2 {
			t.Fatalf("draw %d: %d != %d", i, f1, f2)
		}
	}
}

func TestPlaceObstacles(t *testing.T) {
	b := NewBoard(20)
	snake := b.StartSnake()
	p := NewPlacer(rand.New(rand.NewSource(3)))

	obstacles := p.PlaceObstacles(b, snake, 6)
	if len(obstacles) != 6 {
		t.Fatalf("got %d obstacles, want 6", len(obstacles))
	}
	seen := make(map[int]bool)
	for _, o := range obstacles {
		if slices.Contains(snake, o) {
			t.Errorf("obstacle %d on snake", o)
		}
		if seen[o] {
			t.Errorf("duplicate obstacle %d", o)
		}
		seen[o] = true
	}
}

func TestPlaceObstaclesStopsWhenFull(t *testing.T) {
	b := NewBoard(6)
	snake := make([]int, 30)
	for i := range snake {
		snake[i] = i
	}
	p := NewPlacer(rand.New(rand.NewSource(5)))

	obstacles := p.PlaceObstacles(b, snake, 10)
	if len(obstacles) != 6 {
		t.Fatalf("got %d obstacles, want 6", len(obstacles))
	}
	slices.Sort(obstacles)
	if want := []int{30, 31, 32, 33, 34, 35}; !slices.Equal(obstacles, want) {
		t.Errorf("obstacles = %v, want %v", obstacles, want)
	}
}
