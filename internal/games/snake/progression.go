package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Phase is one chapter of a session.
type Phase struct {
	Name      string
	Theme     string
	Threshold int           // Score that unlocks the phase
	Interval  time.Duration // Base tick interval
}

// Modifier is a temporary change to the tick interval applied after a freeze.
type Modifier int

const (
	ModifierNone Modifier = iota
	ModifierSpeedUp
	ModifierSlowDown
)

func (m Modifier) String() string {
	switch m {
	case ModifierSpeedUp:
		return "speed_up"
	case ModifierSlowDown:
		return "slow_down"
	default:
		return "none"
	}
}

// Progression tracks the phase index and the active speed modifier.
// The phase index only moves forward, one step per Advance call.
type Progression struct {
	phases      []Phase
	index       int
	modifier    Modifier
	fastFactor  float64
	slowFactor  float64
	minInterval time.Duration
}

// PhasesFromConfig converts the configured chapter table.
func PhasesFromConfig(cfg []config.PhaseConfig) []Phase {
	phases := make([]Phase, len(cfg))
	for i, p := range cfg {
		phases[i] = Phase{
			Name:      p.Name,
			Theme:     p.Theme,
			Threshold: p.Threshold,
			Interval:  p.Interval,
		}
	}
	return phases
}

// NewProgression creates a progression over the given phase table.
func NewProgression(phases []Phase, effects config.EffectsConfig) *Progression {
	return &Progression{
		phases:      phases,
		fastFactor:  effects.FastFactor,
		slowFactor:  effects.SlowFactor,
		minInterval: effects.MinInterval,
	}
}

// Reset returns to phase 0 with no modifier.
func (p *Progression) Reset() {
	p.index = 0
	p.modifier = ModifierNone
}

// Index returns the current phase index.
func (p *Progression) Index() int {
	return p.index
}

// Phase returns the current phase.
func (p *Progression) Phase() Phase {
	return p.phases[p.index]
}

// Count returns the number of phases.
func (p *Progression) Count() int {
	return len(p.phases)
}

// Advance moves to the next phase if score has reached its threshold.
// At most one phase is unlocked per call; a score that jumps past several
// thresholds catches up over the following calls.
func (p *Progression) Advance(score int) bool {
	next := p.index + 1
	if next >= len(p.phases) || score < p.phases[next].Threshold {
		return false
	}
	p.index = next
	return true
}

// SetModifier replaces the active modifier.
func (p *Progression) SetModifier(m Modifier) {
	p.modifier = m
}

// Modifier returns the active modifier.
func (p *Progression) Modifier() Modifier {
	return p.modifier
}

// Interval returns the tick interval: the phase base, adjusted by the
// active modifier.
func (p *Progression) Interval() time.Duration {
	base := p.Phase().Interval
	switch p.modifier {
	case ModifierSpeedUp:
		return max(p.minInterval, scale(base, p.fastFactor))
	case ModifierSlowDown:
		return scale(base, p.slowFactor)
	default:
		return base
	}
}

func scale(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}
