package audio

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnsupportedClip reports that raw clip playback is not implemented. It is
// surfaced explicitly so callers can tell it apart from silence.
var ErrUnsupportedClip = errors.New("audio: raw clip playback not supported")

// silentPace is how long the engine idles between silence buffers so it stays
// responsive to mode changes without busy-waiting.
const silentPace = 100 * time.Millisecond

// Sink consumes interleaved 16-bit stereo PCM.
type Sink interface {
	Write(pcm []int16) error
	Close() error
}

// Clock is the pacing primitive. It exists so tests can run the engine
// without real time passing.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration)
}

type wallClock struct{}

func (wallClock) Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// Speakers is the snapshot of speaker state the engine renders from.
type Speakers struct {
	Mode   Mode
	Volume uint8
}

// Engine turns the current speaker state into paced PCM buffers. It owns its
// working buffer exclusively; the only shared input is the snapshot function.
type Engine struct {
	sink  Sink
	now   func() Speakers
	clock Clock
	log   zerolog.Logger

	buf [BufferSamples]int16
}

// NewEngine builds an engine reading speaker snapshots from now and writing
// PCM to sink.
func NewEngine(sink Sink, now func() Speakers, log zerolog.Logger) *Engine {
	return &Engine{sink: sink, now: now, clock: wallClock{}, log: log}
}

// SetClock replaces the pacing clock. Intended for tests.
func (e *Engine) SetClock(c Clock) { e.clock = c }

// Run drives the synthesis state machine until the context is canceled.
// Mode changes are picked up at the defined checkpoints: between silence
// buffers, after a tone, and before each chiptune note.
func (e *Engine) Run(ctx context.Context) error {
	e.log.Info().Msg("speaker engine started")
	for ctx.Err() == nil {
		sp := e.now()
		switch sp.Mode.Kind {
		case KindSilent:
			e.playSilence(ctx)
		case KindTone:
			note := sp.Mode.Tone
			volume := note.ResolveVolume(sp.Volume)
			e.playNote(ctx, note.Frequency, note.DurationMS, Amplitude(volume))
		case KindChiptune:
			e.playChiptune(ctx, sp)
		case KindClip:
			e.log.Warn().
				Err(ErrUnsupportedClip).
				Str("sound", sp.Mode.Clip.Sound).
				Msg("skipping clip playback")
			e.clock.Sleep(ctx, silentPace)
		}
	}
	return ctx.Err()
}

func (e *Engine) playSilence(ctx context.Context) {
	for i := range e.buf {
		e.buf[i] = 0
	}
	e.write(e.buf[:])
	e.clock.Sleep(ctx, silentPace)
}

// playNote synthesizes one tone into the working buffer, hands it to the
// sink, then paces by the note duration in wall time.
func (e *Engine) playNote(ctx context.Context, frequency float32, durationMS uint16, amplitude float32) {
	n := Synthesize(e.buf[:], frequency, durationMS, amplitude)
	e.write(e.buf[:n])
	e.clock.Sleep(ctx, time.Duration(durationMS)*time.Millisecond)
}

func (e *Engine) playChiptune(ctx context.Context, started Speakers) {
	seq := started.Mode.Chiptune
	for {
		for i, note := range seq.Active() {
			volume := note.ResolveVolume(seq.DefaultVolume)
			e.log.Debug().
				Int("note", i+1).
				Int("of", int(seq.Length)).
				Float32("frequency", note.Frequency).
				Msg("playing note")
			e.playNote(ctx, note.Frequency, note.DurationMS,
				ComposedAmplitude(volume, started.Volume))

			// Interruption checkpoint: worst case latency is one note.
			if ctx.Err() != nil || e.now().Mode != started.Mode {
				return
			}
		}
		if !seq.Looping || ctx.Err() != nil || e.now().Mode != started.Mode {
			return
		}
	}
}

// write pushes a buffer to the sink. Sink failures are soft and logged; the
// engine moves on to the next segment.
func (e *Engine) write(pcm []int16) {
	if err := e.sink.Write(pcm); err != nil {
		e.log.Warn().Err(err).Msg("audio sink write failed")
	}
}
