package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Options configures a Jukebox.
type Options struct {
	Volume    float64       // Linear master volume, 0..1
	Crossfade time.Duration // Fade length between chapter tracks
	Logger    *log.Logger
}

// Jukebox turns session events into music: a track per chapter theme,
// crossfaded on chapter change, paused with the game and faded out at the
// end of a session. It implements core.Listener.
//
// Until Init succeeds the Jukebox only tracks state, which keeps the game
// playable on machines without an audio device.
type Jukebox struct {
	mu          sync.Mutex
	opts        Options
	fader       *Crossfader
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	theme       string
	initialized bool
	logger      *log.Logger
}

var _ core.Listener = (*Jukebox)(nil)

// NewJukebox creates an uninitialized jukebox.
func NewJukebox(opts Options) *Jukebox {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fader := NewCrossfader()
	ctrl := &beep.Ctrl{Streamer: fader, Paused: true}
	return &Jukebox{
		opts:   opts,
		fader:  fader,
		ctrl:   ctrl,
		volume: newVolume(ctrl, opts.Volume),
		logger: logger,
	}
}

// newVolume wraps s with a linear volume. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(min(vol, 1))}
}

// Init opens the audio device and starts the output stream.
func (j *Jukebox) Init() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(j.volume)
	j.initialized = true
	return nil
}

// Close stops playback and releases the audio device.
func (j *Jukebox) Close() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	j.initialized = false
}

// OnEvent reacts to a session event.
func (j *Jukebox) OnEvent(e core.Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	switch e.Kind {
	case core.EventSessionStarted:
		j.withSpeaker(func() {
			j.ctrl.Paused = false
			j.play(e.Theme, j.fadeSamples())
		})
	case core.EventPhaseChanged:
		if e.Theme == j.theme {
			return
		}
		j.withSpeaker(func() { j.play(e.Theme, j.fadeSamples()) })
	case core.EventPaused:
		j.withSpeaker(func() { j.ctrl.Paused = true })
	case core.EventResumed:
		j.withSpeaker(func() { j.ctrl.Paused = false })
	case core.EventSessionEnded:
		j.withSpeaker(func() {
			j.fader.Switch(nil, j.fadeSamples())
			j.theme = ""
		})
	}
	j.logger.Debug("music", "event", e.Kind, "theme", j.theme)
}

func (j *Jukebox) play(theme string, fade int) {
	j.fader.Switch(NewTrackStreamer(TrackFor(theme), sampleRate), fade)
	j.theme = theme
}

func (j *Jukebox) fadeSamples() int {
	return sampleRate.N(j.opts.Crossfade)
}

// withSpeaker runs fn under the speaker lock once the speaker is streaming.
func (j *Jukebox) withSpeaker(fn func()) {
	if j.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
