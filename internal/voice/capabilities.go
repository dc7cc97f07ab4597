// Package voice wraps speech capture and playback behind capability handles
// and drives them through the Bridge state machine.
package voice

//go:generate mockgen -destination=./capabilities_mock_test.go -package=voice -source=capabilities.go

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/text/language"

	"kisanmitra/internal/config"
)

// Recognizer turns one utterance into text.
type Recognizer interface {
	// Recognize listens until an utterance is complete or ctx is done.
	Recognize(ctx context.Context, locale language.Tag) (string, error)
}

// Utterance is one piece of text to be spoken.
type Utterance struct {
	Text   string
	Locale language.Tag
	Rate   float64
}

// Synthesizer plays an utterance and returns once playback has finished.
type Synthesizer interface {
	Speak(ctx context.Context, u Utterance) error
}

// Capabilities is the result of feature detection. A nil engine means the
// runtime lacks it.
type Capabilities struct {
	recognizer  Recognizer
	synthesizer Synthesizer
}

func NewCapabilities(r Recognizer, s Synthesizer) Capabilities {
	return Capabilities{recognizer: r, synthesizer: s}
}

// Detect builds the engines enabled in cfg.
func Detect(cfg config.VoiceConfig) Capabilities {
	var caps Capabilities
	if cfg.Recognition {
		caps.recognizer = NewScriptedRecognizer(cfg.ListenDelay.Duration)
	}
	if cfg.Synthesis {
		caps.synthesizer = NewPacedSynthesizer(cfg.WordPace.Duration)
	}
	return caps
}

func (c Capabilities) Recognition() (Recognizer, bool) {
	return c.recognizer, c.recognizer != nil
}

func (c Capabilities) Synthesis() (Synthesizer, bool) {
	return c.synthesizer, c.synthesizer != nil
}

// --- Scripted recognizer ---

var sampleLocales = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("hi-IN"),
	language.MustParse("te-IN"),
}

// Questions a farmer would ask, one per sample locale.
var sampleQuestions = []string{
	"When should I sow wheat this season?",
	"इस मौसम में गेहूं कब बोना चाहिए?",
	"ఈ సీజన్‌లో గోధుమలు ఎప్పుడు విత్తాలి?",
}

var sampleMatcher = language.NewMatcher(sampleLocales)

// ErrNoSpeech is returned by the scripted recognizer when configured to fail.
var ErrNoSpeech = errors.New("no speech detected")

type scriptedRecognizer struct {
	delay time.Duration
	fail  bool
}

type ScriptedOption func(*scriptedRecognizer)

// FailRecognition makes every capture end with ErrNoSpeech.
func FailRecognition() ScriptedOption {
	return func(s *scriptedRecognizer) { s.fail = true }
}

// NewScriptedRecognizer "hears" a sample question in the requested locale
// after delay.
func NewScriptedRecognizer(delay time.Duration, opts ...ScriptedOption) Recognizer {
	s := &scriptedRecognizer{delay: delay}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *scriptedRecognizer) Recognize(ctx context.Context, locale language.Tag) (string, error) {
	if err := sleep(ctx, s.delay); err != nil {
		return "", err
	}
	if s.fail {
		return "", ErrNoSpeech
	}
	_, idx, _ := sampleMatcher.Match(locale)
	return sampleQuestions[idx], nil
}

// --- Paced synthesizer ---

type pacedSynthesizer struct {
	wordPace time.Duration
}

// NewPacedSynthesizer plays for wordPace per word, stretched by the speech rate.
func NewPacedSynthesizer(wordPace time.Duration) Synthesizer {
	return &pacedSynthesizer{wordPace: wordPace}
}

func (p *pacedSynthesizer) Speak(ctx context.Context, u Utterance) error {
	return sleep(ctx, PlaybackDuration(u, p.wordPace))
}

// PlaybackDuration is how long u takes at wordPace.
func PlaybackDuration(u Utterance, wordPace time.Duration) time.Duration {
	rate := u.Rate
	if rate <= 0 {
		rate = 1
	}
	words := len(strings.Fields(u.Text))
	return time.Duration(float64(words) * float64(wordPace) / rate)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
