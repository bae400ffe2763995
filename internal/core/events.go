package core

// EventKind identifies a session lifecycle signal sent to collaborators.
type EventKind int

const (
	EventSessionStarted EventKind = iota
	EventPhaseChanged
	EventPaused
	EventResumed
	EventSessionEnded
)

// String returns a short name for logs.
func (k EventKind) String() string {
	switch k {
	case EventSessionStarted:
		return "session_started"
	case EventPhaseChanged:
		return "phase_changed"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventSessionEnded:
		return "session_ended"
	default:
		return "unknown"
	}
}

// Event is a lifecycle signal. Games never drive audio or persistence
// directly; they emit events and let collaborators react.
type Event struct {
	Kind  EventKind
	Phase int    // Phase index at the time of the event
	Theme string // Theme tag of that phase
	Score int
}

// Listener receives game events. Implementations must not block.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(e Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// HighScoreStore persists a single best score per game.
type HighScoreStore interface {
	HighScore(gameID string) (int, error)
	SaveHighScore(gameID string, score int) error
}

// Logger is the subset of a structured logger games use.
// *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
}

// Services bundles the optional collaborators handed to a game.
// Any field may be nil.
type Services struct {
	Scores   HighScoreStore
	Listener Listener
	Logger   Logger
}
