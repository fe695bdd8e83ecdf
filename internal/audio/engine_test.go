package audio_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziyadedher/catears/internal/audio"
)

type captureSink struct {
	mu     sync.Mutex
	writes []int
}

func (s *captureSink) Write(pcm []int16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, len(pcm))
	return nil
}

func (s *captureSink) Close() error { return nil }

func (s *captureSink) lens() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.writes...)
}

// scriptClock advances instantly and runs a callback after every sleep so
// tests can flip modes or cancel at deterministic points.
type scriptClock struct {
	mu      sync.Mutex
	sleeps  int
	onSleep func(n int)
}

func (c *scriptClock) Sleep(ctx context.Context, d time.Duration) {
	c.mu.Lock()
	c.sleeps++
	n := c.sleeps
	c.mu.Unlock()
	if c.onSleep != nil {
		c.onSleep(n)
	}
}

type speakerCell struct {
	mu sync.Mutex
	sp audio.Speakers
}

func (c *speakerCell) get() audio.Speakers {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sp
}

func (c *speakerCell) set(sp audio.Speakers) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sp = sp
}

// toneWriteLen is the buffer size of a 50ms note: well under capacity.
const toneWriteLen = 2 * 2205

func fiftyMSChiptune(looping bool) audio.Mode {
	notes := []audio.Note{
		audio.NewNote(440, 50),
		audio.NewNote(660, 50),
	}
	seq, err := audio.SequenceFromNotes(notes)
	if err != nil {
		panic(err)
	}
	if looping {
		seq = seq.WithLoop()
	}
	return audio.Chiptune(seq)
}

func TestLoopingChiptuneRestartsUntilModeChange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cell := &speakerCell{}
	cell.set(audio.Speakers{Mode: fiftyMSChiptune(true), Volume: 255})

	sink := &captureSink{}
	engine := audio.NewEngine(sink, cell.get, zerolog.Nop())
	engine.SetClock(&scriptClock{onSleep: func(n int) {
		// Five note-paced sleeps is past the two-note boundary twice,
		// proving the sequence restarted. Then switch to silent and let
		// one silence pace through before stopping.
		if n == 5 {
			cell.set(audio.Speakers{Mode: audio.Silent(), Volume: 255})
		}
		if n >= 7 {
			cancel()
		}
	}})

	err := engine.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	lens := sink.lens()
	require.GreaterOrEqual(t, len(lens), 6)
	for i := 0; i < 5; i++ {
		assert.Equal(t, toneWriteLen, lens[i], "write %d should be a note buffer", i)
	}
	// After the mode flip the engine must stop playing notes within one
	// note checkpoint and emit silence buffers instead.
	assert.Equal(t, audio.BufferSamples, lens[5])
}

func TestNonLoopingChiptunePlaysOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cell := &speakerCell{}
	cell.set(audio.Speakers{Mode: fiftyMSChiptune(false), Volume: 255})

	sink := &captureSink{}
	engine := audio.NewEngine(sink, cell.get, zerolog.Nop())
	engine.SetClock(&scriptClock{onSleep: func(n int) {
		// Two notes, then the sequence completes and the engine falls
		// through to re-evaluating the (unchanged) chiptune mode; flip to
		// silent right after the second note so it plays exactly once.
		if n == 2 {
			cell.set(audio.Speakers{Mode: audio.Silent(), Volume: 255})
		}
		if n >= 4 {
			cancel()
		}
	}})

	err := engine.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	lens := sink.lens()
	require.GreaterOrEqual(t, len(lens), 3)
	assert.Equal(t, toneWriteLen, lens[0])
	assert.Equal(t, toneWriteLen, lens[1])
	assert.Equal(t, audio.BufferSamples, lens[2])
}

func TestToneModePacesByDuration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cell := &speakerCell{}
	cell.set(audio.Speakers{Mode: audio.Tone(audio.NewNote(880, 50)), Volume: 128})

	sink := &captureSink{}
	engine := audio.NewEngine(sink, cell.get, zerolog.Nop())
	engine.SetClock(&scriptClock{onSleep: func(n int) {
		if n >= 3 {
			cancel()
		}
	}})

	require.ErrorIs(t, engine.Run(ctx), context.Canceled)
	lens := sink.lens()
	require.NotEmpty(t, lens)
	assert.Equal(t, toneWriteLen, lens[0])
}

func TestClipModeIsUnsupportedNotSilentSuccess(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cell := &speakerCell{}
	cell.set(audio.Speakers{Mode: audio.FromClip(audio.ExampleClip()), Volume: 128})

	sink := &captureSink{}
	engine := audio.NewEngine(sink, cell.get, zerolog.Nop())
	engine.SetClock(&scriptClock{onSleep: func(n int) {
		if n >= 2 {
			cancel()
		}
	}})

	require.ErrorIs(t, engine.Run(ctx), context.Canceled)
	// Unsupported clips produce no PCM at all, unlike silent mode which
	// actively streams zeroed buffers.
	assert.Empty(t, sink.lens())
}
