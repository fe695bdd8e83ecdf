package audio

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drainingPlayer mirrors the real player's shutdown: its drain goroutine can
// be inside the sink's Read when Close waits for it, so Close performs one
// final Read before returning.
type drainingPlayer struct {
	sink   *OtoSink
	closed bool
}

func (p *drainingPlayer) Play() {}

func (p *drainingPlayer) Close() error {
	buf := make([]byte, 256)
	if _, err := p.sink.Read(buf); err != nil {
		return err
	}
	p.closed = true
	return nil
}

func TestOtoSinkQueueDrainsAndZeroFills(t *testing.T) {
	s := &OtoSink{}

	require.NoError(t, s.Write([]int16{0x0102, -1}))

	buf := make([]byte, 8)
	n, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte{0x02, 0x01, 0xFF, 0xFF, 0, 0, 0, 0}, buf)

	// Queue empty now; the next read is pure zero-fill.
	buf[0] = 0xAA
	n, err = s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, byte(0), buf[0])
}

func TestOtoSinkCloseWhileDraining(t *testing.T) {
	s := &OtoSink{}
	p := &drainingPlayer{sink: s}
	s.player = p

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(2)
	go func() {
		defer wg.Done()
		buf := make([]byte, 64)
		for {
			select {
			case <-stop:
				return
			default:
				s.Read(buf)
			}
		}
	}()
	go func() {
		defer wg.Done()
		pcm := make([]int16, 32)
		for {
			select {
			case <-stop:
				return
			default:
				s.Write(pcm)
			}
		}
	}()

	done := make(chan error, 1)
	go func() { done <- s.Close() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Close deadlocked against the drain goroutine")
	}

	assert.True(t, p.closed)
	assert.Error(t, s.Write([]int16{0}), "writes after close must be refused")
	assert.NoError(t, s.Close(), "second close is a no-op")

	close(stop)
	wg.Wait()
}
