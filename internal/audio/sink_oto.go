package audio

import (
	"errors"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// OtoSink plays PCM through the host sound device via oto. Buffers handed to
// Write are queued; the oto player drains the queue from its own goroutine
// and reads zeros whenever the queue is empty, so playback never underruns
// with garbage.
type OtoSink struct {
	ctx    *oto.Context
	player pcmPlayer

	mu     sync.Mutex
	queue  []byte
	closed bool
}

// pcmPlayer is the slice of *oto.Player the sink drives.
type pcmPlayer interface {
	Play()
	Close() error
}

// NewOtoSink opens the host audio device at the engine's fixed format:
// 44.1 kHz interleaved 16-bit stereo.
func NewOtoSink() (*OtoSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	s := &OtoSink{ctx: ctx}
	s.player = ctx.NewPlayer(s)
	s.player.Play()
	return s, nil
}

// Read supplies the oto player. It drains the queue and zero-fills the rest.
func (s *OtoSink) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := copy(p, s.queue)
	s.queue = s.queue[n:]
	for i := n; i < len(p); i++ {
		p[i] = 0
	}
	return len(p), nil
}

func (s *OtoSink) Write(pcm []int16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("audio: oto sink closed")
	}
	buf := make([]byte, len(pcm)*2)
	for i, v := range pcm {
		buf[i*2] = byte(v)
		buf[i*2+1] = byte(uint16(v) >> 8)
	}
	s.queue = append(s.queue, buf...)
	return nil
}

func (s *OtoSink) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	// The player's drain goroutine calls Read under its own lock, and
	// player.Close waits for that lock. Holding s.mu across the close
	// would deadlock against a drain in flight.
	return s.player.Close()
}
