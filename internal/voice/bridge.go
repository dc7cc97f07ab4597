package voice

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"kisanmitra/internal/domain"
	"kisanmitra/internal/i18n"
	"kisanmitra/internal/logger"
)

type CaptureState string

const (
	CaptureIdle CaptureState = "idle"
	Listening   CaptureState = "listening"
)

type PlaybackState string

const (
	PlaybackIdle PlaybackState = "idle"
	Speaking     PlaybackState = "speaking"
)

// Capture is the outcome of one listening session. Exactly one of Text and
// Err is set.
type Capture struct {
	Text string
	Err  error
}

// Change reports a transition of the capture or playback machine.
type Change struct {
	Channel domain.EventType // EventCapture or EventPlayback
	State   string
}

// Bridge runs the capture (Idle→Listening→Idle) and playback
// (Idle→Speaking→Idle) machines for one page session.
//
// The two are mutually exclusive: starting a capture cancels playback, and
// Speak is refused while listening.
type Bridge struct {
	caps    Capabilities
	rate    float64
	observe func(Change)

	emitMu        sync.Mutex // held while a transition is applied and reported
	mu            sync.Mutex
	capture       CaptureState
	playback      PlaybackState
	captureGen    uint64
	speechGen     uint64
	cancelCapture context.CancelFunc
	cancelSpeech  context.CancelFunc
}

// NewBridge creates an idle bridge. observe may be nil. It is called with
// each change in the order the changes were applied, one at a time, and must
// not call back into the bridge.
func NewBridge(caps Capabilities, rate float64, observe func(Change)) *Bridge {
	if observe == nil {
		observe = func(Change) {}
	}
	return &Bridge{
		caps:     caps,
		rate:     rate,
		observe:  observe,
		capture:  CaptureIdle,
		playback: PlaybackIdle,
	}
}

// CanCapture reports whether speech recognition is available.
func (b *Bridge) CanCapture() bool {
	_, ok := b.caps.Recognition()
	return ok
}

func (b *Bridge) CanSpeak() bool {
	_, ok := b.caps.Synthesis()
	return ok
}

func (b *Bridge) CaptureState() CaptureState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.capture
}

func (b *Bridge) PlaybackState() PlaybackState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.playback
}

// StartCapture begins listening in lang's locale. The returned channel yields
// one Capture and closes, or closes empty when the capture is stopped.
func (b *Bridge) StartCapture(lang domain.Language) (<-chan Capture, error) {
	rec, ok := b.caps.Recognition()
	if !ok {
		return nil, domain.ErrCapabilityUnavailable
	}

	var (
		ctx    context.Context
		cancel context.CancelFunc
		gen    uint64
		busy   bool
	)
	b.transition(func() []Change {
		if b.capture == Listening {
			busy = true
			return nil
		}
		var changes []Change
		if b.stopSpeechLocked() {
			changes = append(changes, Change{Channel: domain.EventPlayback, State: string(PlaybackIdle)})
		}
		ctx, cancel = context.WithCancel(context.Background())
		b.captureGen++
		gen = b.captureGen
		b.capture = Listening
		b.cancelCapture = cancel
		return append(changes, Change{Channel: domain.EventCapture, State: string(Listening)})
	})
	if busy {
		return nil, domain.ErrBusy
	}

	out := make(chan Capture, 1)
	go func() {
		defer close(out)
		defer cancel()

		text, err := rec.Recognize(ctx, i18n.VoiceLocale(lang))

		stopped := false
		b.transition(func() []Change {
			if b.captureGen != gen {
				// stopped; the partial result is discarded
				stopped = true
				return nil
			}
			b.capture = CaptureIdle
			b.cancelCapture = nil
			return []Change{{Channel: domain.EventCapture, State: string(CaptureIdle)}}
		})
		if stopped {
			return
		}

		switch {
		case err != nil:
			out <- Capture{Err: fmt.Errorf("%w: %v", domain.ErrRecognitionFailed, err)}
		case strings.TrimSpace(text) == "":
			out <- Capture{Err: fmt.Errorf("%w: empty transcript", domain.ErrRecognitionFailed)}
		default:
			out <- Capture{Text: text}
		}
	}()
	return out, nil
}

// StopCapture ends a capture in progress. Outside Listening it does nothing
// and returns false.
func (b *Bridge) StopCapture() bool {
	stopped := false
	b.transition(func() []Change {
		if b.capture != Listening {
			return nil
		}
		b.captureGen++
		b.cancelCapture()
		b.cancelCapture = nil
		b.capture = CaptureIdle
		stopped = true
		return []Change{{Channel: domain.EventCapture, State: string(CaptureIdle)}}
	})
	return stopped
}

// Speak plays text in lang's locale. The returned channel closes when
// playback ends, naturally or by cancellation. A new utterance replaces the
// one playing.
func (b *Bridge) Speak(lang domain.Language, text string) (<-chan struct{}, error) {
	synth, ok := b.caps.Synthesis()
	if !ok {
		return nil, domain.ErrCapabilityUnavailable
	}

	var (
		ctx    context.Context
		cancel context.CancelFunc
		gen    uint64
		busy   bool
	)
	b.transition(func() []Change {
		if b.capture == Listening {
			busy = true
			return nil
		}
		b.stopSpeechLocked()
		ctx, cancel = context.WithCancel(context.Background())
		b.speechGen++
		gen = b.speechGen
		b.playback = Speaking
		b.cancelSpeech = cancel
		return []Change{{Channel: domain.EventPlayback, State: string(Speaking)}}
	})
	if busy {
		return nil, domain.ErrBusy
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()

		u := Utterance{Text: text, Locale: i18n.VoiceLocale(lang), Rate: b.rate}
		if err := synth.Speak(ctx, u); err != nil && ctx.Err() == nil {
			logger.Warn("speech playback failed", zap.Error(err))
		}

		b.transition(func() []Change {
			if b.speechGen != gen {
				return nil
			}
			b.playback = PlaybackIdle
			b.cancelSpeech = nil
			return []Change{{Channel: domain.EventPlayback, State: string(PlaybackIdle)}}
		})
	}()
	return done, nil
}

// CancelSpeech forces playback to Idle. Valid only while Speaking; returns
// false otherwise.
func (b *Bridge) CancelSpeech() bool {
	stopped := false
	b.transition(func() []Change {
		if stopped = b.stopSpeechLocked(); stopped {
			return []Change{{Channel: domain.EventPlayback, State: string(PlaybackIdle)}}
		}
		return nil
	})
	return stopped
}

// Close stops both machines.
func (b *Bridge) Close() {
	b.StopCapture()
	b.CancelSpeech()
}

func (b *Bridge) stopSpeechLocked() bool {
	if b.playback != Speaking {
		return false
	}
	b.speechGen++
	b.cancelSpeech()
	b.cancelSpeech = nil
	b.playback = PlaybackIdle
	return true
}

// transition applies f under the state lock, then reports its changes.
// emitMu spans both steps, so observers see changes in the order they
// were applied.
func (b *Bridge) transition(f func() []Change) {
	b.emitMu.Lock()
	defer b.emitMu.Unlock()

	b.mu.Lock()
	changes := f()
	b.mu.Unlock()

	for _, c := range changes {
		b.observe(c)
	}
}
