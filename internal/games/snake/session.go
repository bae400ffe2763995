package snake

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// RunState is the session lifecycle state. Exactly one is active.
type RunState int

const (
	StateNotStarted RunState = iota
	StateRunning
	StatePaused
	StateFrozen
	StateGameOver
)

func (s RunState) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateFrozen:
		return "frozen"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Suspended reports whether ticks are held in this state.
func (s RunState) Suspended() bool {
	return s != StateRunning
}

// Options configures a Session.
type Options struct {
	GameID   string
	Config   config.SnakeConfig
	Seed     int64
	Services core.Services
}

// Session owns all state of one snake game: board, snake, food, obstacles,
// score, phase and timed effects. It is driven by Frame calls from a single
// goroutine and needs no locking.
type Session struct {
	gameID   string
	cfg      config.SnakeConfig
	board    Board
	rng      *rand.Rand
	placer   *Placer
	driver   *Driver
	sched    *Scheduler
	prog     *Progression
	store    core.HighScoreStore
	listener core.Listener
	logger   core.Logger

	// generation changes on every start and game over; effects scheduled
	// under an older generation are ignored.
	generation uint64
	state      RunState
	now        time.Duration

	snake     []int
	current   Direction
	pending   Direction
	food      int
	obstacles []int

	score     int
	highScore int
	foodEaten int
	ticks     uint64

	immune      bool
	frozenUntil time.Duration
	banner      string
	bannerUntil time.Duration
	lastCause   CollisionCause

	modifierTimer TimerID
	immuneTimer   TimerID
	bannerTimer   TimerID
}

// NewSession creates a session in the not-started state and reads the
// persisted high score once.
func NewSession(opts Options) *Session {
	s := &Session{
		gameID:   opts.GameID,
		cfg:      opts.Config,
		board:    NewBoard(opts.Config.Board.Size),
		rng:      rand.New(rand.NewSource(opts.Seed)),
		driver:   NewDriver(opts.Config.Timing.MaxTicksPerFrame),
		sched:    NewScheduler(),
		store:    opts.Services.Scores,
		listener: opts.Services.Listener,
		logger:   opts.Services.Logger,
		food:     NoCell,
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.placer = NewPlacer(s.rng)
	s.prog = NewProgression(PhasesFromConfig(opts.Config.Phases), opts.Config.Effects)

	if s.store != nil {
		high, err := s.store.HighScore(s.gameID)
		if err != nil {
			s.logger.Warn("could not read high score", "game", s.gameID, "error", err)
		} else {
			s.highScore = high
		}
	}
	return s
}

// Start begins a fresh session at time now. Calling it on a running,
// frozen or finished session is a restart: every pending effect of the old
// session is cancelled first.
func (s *Session) Start(now time.Duration) {
	s.invalidate()
	s.now = now
	s.driver.Reset()
	s.prog.Reset()

	s.snake = s.board.StartSnake()
	s.current = DirRight
	s.pending = DirRight
	s.score = 0
	s.foodEaten = 0
	s.ticks = 0
	s.immune = false
	s.frozenUntil = 0
	s.banner = ""
	s.bannerUntil = 0
	s.lastCause = CauseNone

	s.obstacles = s.placer.PlaceObstacles(s.board, s.snake, s.cfg.Obstacles.Count)
	s.food = s.placer.PlaceFood(s.board, s.snake, s.obstacles)
	s.state = StateRunning

	s.showBanner(s.prog.Phase().Name)
	s.logger.Debug("session started", "game", s.gameID, "generation", s.generation,
		"obstacles", len(s.obstacles), "food", s.food)
	s.emit(core.EventSessionStarted)
}

// invalidate cancels every pending effect and retires the current generation.
func (s *Session) invalidate() {
	s.sched.CancelAll()
	s.generation++
	s.modifierTimer = 0
	s.immuneTimer = 0
	s.bannerTimer = 0
}

// after schedules action d from now, bound to the current generation.
func (s *Session) after(d time.Duration, action func()) TimerID {
	gen := s.generation
	return s.sched.At(s.now+d, func() {
		if gen != s.generation {
			return
		}
		action()
	})
}

// Steer buffers a direction for the next tick. The reversal filter is
// applied when the tick commits it.
func (s *Session) Steer(d Direction) {
	s.pending = d
}

// TogglePause switches between running and paused. It is ignored in any
// other state; a freeze already suspends ticks.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
		s.emit(core.EventPaused)
	case StatePaused:
		s.state = StateRunning
		s.emit(core.EventResumed)
	}
}

// Frame processes one frame at wall-clock time now: due effects first,
// then as many ticks as the accumulated time allows. It returns the number
// of ticks run.
func (s *Session) Frame(now time.Duration) int {
	if now < s.now {
		now = s.now
	}
	s.now = now
	if s.state == StateNotStarted {
		return 0
	}

	s.sched.Advance(now)

	if s.state == StateGameOver {
		return 0
	}
	return s.driver.Advance(now, s.state.Suspended(), s.prog.Interval, s.tick)
}

// tick runs one movement step. It returns false when ticking must stop for
// the rest of the frame.
func (s *Session) tick() bool {
	s.ticks++
	res := Step(StepInput{
		Board:           s.board,
		Snake:           s.snake,
		Current:         s.current,
		Pending:         s.pending,
		Food:            s.food,
		Obstacles:       s.obstacles,
		ObstaclesEdible: s.obstaclesEdible(),
		Immune:          s.immune,
	})
	s.current = res.Direction
	s.pending = res.Direction

	switch res.Event {
	case EventCollision:
		s.endGame(res.Cause)
		return false
	case EventBlocked:
		s.logger.Debug("collision suppressed", "cause", res.Cause, "cell", res.Cell)
	case EventObstacleConsumed:
		s.obstacles = slices.DeleteFunc(s.obstacles, func(c int) bool { return c == res.Cell })
		s.freeze()
	case EventMoved:
		s.snake = res.Snake
	case EventAte:
		s.snake = res.Snake
		s.eat()
	}

	if s.prog.Advance(s.score) {
		phase := s.prog.Phase()
		s.showBanner(phase.Name)
		s.logger.Debug("phase advanced", "phase", s.prog.Index(), "theme", phase.Theme, "score", s.score)
		s.emit(core.EventPhaseChanged)
	}

	return s.state == StateRunning
}

func (s *Session) obstaclesEdible() bool {
	from := s.cfg.Obstacles.EdibleFromPhase
	return from >= 0 && s.prog.Index() >= from
}

func (s *Session) eat() {
	s.score++
	s.foodEaten++
	if s.score > s.highScore {
		s.highScore = s.score
		s.persistHighScore()
	}
	s.food = s.placer.PlaceFood(s.board, s.snake, s.obstacles)

	if k := s.cfg.Effects.FreezeEvery; k > 0 && s.foodEaten%k == 0 {
		s.freeze()
	}
}

func (s *Session) persistHighScore() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveHighScore(s.gameID, s.highScore); err != nil {
		s.logger.Warn("could not save high score", "game", s.gameID, "score", s.highScore, "error", err)
	}
}

// freeze suspends ticks for the configured duration. A freeze while frozen
// is ignored.
func (s *Session) freeze() {
	if s.state != StateRunning {
		return
	}
	s.state = StateFrozen
	s.frozenUntil = s.now + s.cfg.Effects.FreezeDuration
	s.logger.Debug("frozen", "until", s.frozenUntil)
	s.after(s.cfg.Effects.FreezeDuration, s.thaw)
}

// thaw ends a freeze, rolls a speed modifier and grants a short immunity.
func (s *Session) thaw() {
	if s.state != StateFrozen {
		return
	}
	s.state = StateRunning
	s.frozenUntil = 0

	modifier := ModifierSlowDown
	if s.rng.Intn(2) == 0 {
		modifier = ModifierSpeedUp
	}
	s.prog.SetModifier(modifier)
	s.logger.Debug("thawed", "modifier", modifier, "interval", s.prog.Interval())

	if s.modifierTimer != 0 {
		s.sched.Cancel(s.modifierTimer)
	}
	s.modifierTimer = s.after(s.cfg.Effects.ModifierDuration, func() {
		s.prog.SetModifier(ModifierNone)
		s.modifierTimer = 0
	})

	s.immune = true
	if s.immuneTimer != 0 {
		s.sched.Cancel(s.immuneTimer)
	}
	s.immuneTimer = s.after(s.cfg.Effects.ImmunityDuration, func() {
		s.immune = false
		s.immuneTimer = 0
	})
}

func (s *Session) showBanner(text string) {
	s.banner = text
	s.bannerUntil = s.now + s.cfg.Effects.BannerDuration
	if s.bannerTimer != 0 {
		s.sched.Cancel(s.bannerTimer)
	}
	s.bannerTimer = s.after(s.cfg.Effects.BannerDuration, func() {
		s.banner = ""
		s.bannerTimer = 0
	})
}

func (s *Session) endGame(cause CollisionCause) {
	s.invalidate()
	s.state = StateGameOver
	s.lastCause = cause
	s.immune = false
	s.frozenUntil = 0
	s.prog.SetModifier(ModifierNone)
	s.banner = ""
	s.logger.Info("game over", "game", s.gameID, "score", s.score, "cause", cause, "ticks", s.ticks)
	s.emit(core.EventSessionEnded)
}

func (s *Session) emit(kind core.EventKind) {
	if s.listener == nil {
		return
	}
	phase := s.prog.Phase()
	s.listener.OnEvent(core.Event{
		Kind:  kind,
		Phase: s.prog.Index(),
		Theme: phase.Theme,
		Score: s.score,
	})
}

// State returns the run state.
func (s *Session) State() RunState {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best known score, including this session.
func (s *Session) HighScore() int {
	return s.highScore
}

// Board returns the session board.
func (s *Session) Board() Board {
	return s.board
}

// View is a read-only copy of everything a renderer needs.
type View struct {
	Size            int
	Snake           []int
	Food            int
	Obstacles       []int
	ObstaclesEdible bool
	Direction       Direction
	Frozen          bool
	FreezeRemaining time.Duration
	Immune          bool
	Modifier        Modifier
	Interval        time.Duration
	Score           int
	HighScore       int
	Phase           int
	PhaseCount      int
	PhaseName       string
	Theme           string
	Banner          string
	State           RunState
	GameOver        bool
	Cause           CollisionCause
}

// View returns a snapshot for rendering. Slices are copies.
func (s *Session) View() View {
	phase := s.prog.Phase()
	v := View{
		Size:            s.board.Size(),
		Snake:           slices.Clone(s.snake),
		Food:            s.food,
		Obstacles:       slices.Clone(s.obstacles),
		ObstaclesEdible: s.obstaclesEdible(),
		Direction:       s.current,
		Frozen:          s.state == StateFrozen,
		Immune:          s.immune,
		Modifier:        s.prog.Modifier(),
		Interval:        s.prog.Interval(),
		Score:           s.score,
		HighScore:       s.highScore,
		Phase:           s.prog.Index(),
		PhaseCount:      s.prog.Count(),
		PhaseName:       phase.Name,
		Theme:           phase.Theme,
		State:           s.state,
		GameOver:        s.state == StateGameOver,
		Cause:           s.lastCause,
	}
	if v.Frozen {
		v.FreezeRemaining = max(0, s.frozenUntil-s.now)
	}
	v.Banner = s.bannerText(v)
	return v
}

// bannerText picks the status line: freeze countdown, game over, pause,
// a phase intro, then the active modifier.
func (s *Session) bannerText(v View) string {
	switch {
	case v.State == StateNotStarted:
		return "Press Enter to start"
	case v.Frozen:
		secs := int(math.Ceil(v.FreezeRemaining.Seconds()))
		return fmt.Sprintf("Frozen: %d", secs)
	case v.GameOver:
		return "Game Over"
	case v.State == StatePaused:
		return "Paused"
	case s.banner != "" && s.now < s.bannerUntil:
		return s.banner
	case v.Modifier == ModifierSpeedUp:
		return "Max speed!"
	case v.Modifier == ModifierSlowDown:
		return "Slowed down"
	default:
		return ""
	}
}
