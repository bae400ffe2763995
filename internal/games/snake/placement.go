package snake

import "math/rand"

const (
	// maxRejections bounds rejection sampling before falling back to
	// enumerating free cells.
	maxRejections = 64
	// denseOccupancy is the occupied fraction above which sampling goes
	// straight to the free-cell list.
	denseOccupancy = 0.75
)

// Placer picks random free cells for food and obstacles.
type Placer struct {
	rng *rand.Rand
}

// NewPlacer creates a placer drawing from rng.
func NewPlacer(rng *rand.Rand) *Placer {
	return &Placer{rng: rng}
}

// PlaceFood returns a cell chosen uniformly among the cells not listed in
// any of the occupied groups, or NoCell if the board is full.
func (p *Placer) PlaceFood(b Board, occupied ...[]int) int {
	taken := make([]bool, b.Cells())
	count := 0
	for _, group := range occupied {
		for _, i := range group {
			if b.Contains(i) && !taken[i] {
				taken[i] = true
				count++
			}
		}
	}
	return p.pick(b, taken, count)
}

// PlaceObstacles draws count obstacle cells disjoint from the snake and from
// each other. Fewer are returned if the board runs out of room.
func (p *Placer) PlaceObstacles(b Board, snake []int, count int) []int {
	taken := make([]bool, b.Cells())
	used := 0
	for _, i := range snake {
		if b.Contains(i) && !taken[i] {
			taken[i] = true
			used++
		}
	}

	obstacles := make([]int, 0, count)
	for len(obstacles) < count {
		cell := p.pick(b, taken, used)
		if cell == NoCell {
			break
		}
		taken[cell] = true
		used++
		obstacles = append(obstacles, cell)
	}
	return obstacles
}

func (p *Placer) pick(b Board, taken []bool, count int) int {
	cells := b.Cells()
	if count >= cells {
		return NoCell
	}

	if float64(count)/float64(cells) < denseOccupancy {
		for range maxRejections {
			cell := p.rng.Intn(cells)
			if !taken[cell] {
				return cell
			}
		}
	}

	free := make([]int, 0, cells-count)
	for i, t := range taken {
		if !t {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return NoCell
	}
	return free[p.rng.Intn(len(free))]
}
