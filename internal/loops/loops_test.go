package loops_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziyadedher/catears/internal/lights"
	"github.com/ziyadedher/catears/internal/loops"
	"github.com/ziyadedher/catears/internal/servo"
	"github.com/ziyadedher/catears/internal/state"
)

type fakeSink struct {
	mu     sync.Mutex
	writes int
	failAt int // fail on the Nth write, 0 = never
}

func (f *fakeSink) Write(frame [lights.RingSize]lights.Color) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.failAt > 0 && f.writes >= f.failAt {
		return errors.New("spi bus gone")
	}
	return nil
}

func (f *fakeSink) Close() error { return nil }

func (f *fakeSink) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

type fakePWM struct {
	mu   sync.Mutex
	last uint16
	sets int
	err  error
}

func (f *fakePWM) MaxDuty() uint16 { return 19999 }

func (f *fakePWM) SetDuty(d uint16) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.last = d
	f.sets++
	return nil
}

func (f *fakePWM) snapshot() (uint16, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last, f.sets
}

func TestRunLightsStopsOnSinkFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	left := &fakeSink{failAt: 3}
	right := &fakeSink{}

	err := loops.RunLights(ctx, state.NewStore(), left, right, zerolog.Nop())
	require.Error(t, err)
	assert.NotErrorIs(t, err, context.DeadlineExceeded, "must stop on the sink error, not the timeout")
	assert.ErrorContains(t, err, "ring write")
	assert.Equal(t, 3, left.count())
}

func TestRunLightsRendersBothRings(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	left := &fakeSink{}
	right := &fakeSink{}

	done := make(chan error, 1)
	go func() { done <- loops.RunLights(ctx, state.NewStore(), left, right, zerolog.Nop()) }()

	require.Eventually(t, func() bool {
		return left.count() >= 2 && right.count() >= 2
	}, time.Second, loops.Tick)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestRunServosSurvivesOneFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	broken := &fakePWM{err: errors.New("pin gone")}
	healthy := &fakePWM{}
	left := servo.New(broken, servo.MG995)
	right := servo.New(healthy, servo.MG995)

	store := state.NewStore()
	store.Update(func(s *state.State) {
		s.Servos.Right = 255
	})

	done := make(chan error, 1)
	go func() { done <- loops.RunServos(ctx, store, left, right, zerolog.Nop()) }()

	require.Eventually(t, func() bool {
		_, sets := healthy.snapshot()
		return sets >= 3
	}, time.Second, loops.Tick)

	last, _ := healthy.snapshot()
	assert.Equal(t, uint16(2500), last, "rotation 255 maps to the max pulse at 19999 ticks over 20ms")

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

func TestRunServosStopsWhenBothFail(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	left := servo.New(&fakePWM{err: errors.New("pin gone")}, servo.MG995)
	right := servo.New(&fakePWM{err: errors.New("pin gone")}, servo.MG995)

	err := loops.RunServos(ctx, state.NewStore(), left, right, zerolog.Nop())
	require.Error(t, err)
	assert.ErrorContains(t, err, "both servos failed")
}
