// Package loops contains the render tasks: independent loops that poll the
// state store at their own cadence and drive one peripheral each. All
// animation counters and buffers are owned by their loop; the store is the
// only shared resource.
package loops

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ziyadedher/catears/internal/audio"
	"github.com/ziyadedher/catears/internal/led"
	"github.com/ziyadedher/catears/internal/lights"
	"github.com/ziyadedher/catears/internal/servo"
	"github.com/ziyadedher/catears/internal/state"
)

// Tick is the reference period of the LED and servo loops.
const Tick = lights.TickMS * time.Millisecond

// RunLights renders both rings once per tick. A pixel sink failure is fatal
// to this task: the error is returned and the loop stops. Dropping the task
// loses no data, a supervisor may restart it.
func RunLights(ctx context.Context, store *state.Store, left, right led.PixelSink, log zerolog.Logger) error {
	ticker := time.NewTicker(Tick)
	defer ticker.Stop()

	var leftAnim, rightAnim lights.PatternState
	log.Info().Msg("light loop started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			snap := store.Read().Lights

			frame := lights.Render(snap.Left, &leftAnim, snap.Brightness)
			if err := left.Write(frame); err != nil {
				return fmt.Errorf("left ring write: %w", err)
			}

			frame = lights.Render(snap.Right, &rightAnim, snap.Brightness)
			if err := right.Write(frame); err != nil {
				return fmt.Errorf("right ring write: %w", err)
			}
		}
	}
}

// RunServos repositions both ears once per tick. A mapping or PWM failure is
// a configuration error local to one servo: that servo stops being driven
// and the other keeps going.
func RunServos(ctx context.Context, store *state.Store, left, right *servo.Servo, log zerolog.Logger) error {
	ticker := time.NewTicker(Tick)
	defer ticker.Stop()

	log.Info().Msg("servo loop started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			positions := store.Read().Servos

			if left != nil {
				if err := left.SetRotation(positions.Left); err != nil {
					log.Error().Err(err).Msg("left servo failed, disabling")
					left = nil
				}
			}
			if right != nil {
				if err := right.SetRotation(positions.Right); err != nil {
					log.Error().Err(err).Msg("right servo failed, disabling")
					right = nil
				}
			}
			if left == nil && right == nil {
				return fmt.Errorf("both servos failed")
			}
		}
	}
}

// RunSpeakers runs the audio synthesis engine against the store.
func RunSpeakers(ctx context.Context, store *state.Store, sink audio.Sink, log zerolog.Logger) error {
	engine := audio.NewEngine(sink, func() audio.Speakers {
		sp := store.Read().Speakers
		return audio.Speakers{Mode: sp.Mode, Volume: sp.Volume}
	}, log)
	return engine.Run(ctx)
}
