package lights

import "math"

// TickMS is the reference render-loop period the animation math is scaled to.
const TickMS = 10

// PatternState holds the per-ring animation counters. Each render loop owns
// one PatternState per ring; it is never shared and never part of the device
// state.
type PatternState struct {
	Position   uint8
	Hue        uint8
	PulsePhase uint16
}

// Render produces one frame for a ring. It is a pure transform over the mode
// and counters: it always succeeds and advances the counters for animated
// modes. globalBrightness scales every pixel of every mode.
func Render(mode Mode, ps *PatternState, globalBrightness uint8) [RingSize]Color {
	var frame [RingSize]Color

	switch mode.Kind {
	case KindOff:
		// all black, already zeroed

	case KindSolid:
		scaled := Scale(mode.SolidColor, globalBrightness)
		for i := range frame {
			frame[i] = scaled
		}

	case KindGradient:
		for i := range frame {
			t := float32(i) / float32(RingSize-1)
			frame[i] = Scale(Lerp(mode.GradientFrom, mode.GradientTo, t), globalBrightness)
		}

	case KindChase:
		p := mode.Chase
		ps.Position++
		stepsPerRotation := p.SpeedMS / TickMS
		if stepsPerRotation < 1 {
			stepsPerRotation = 1
		}
		currentStep := uint8((uint16(ps.Position) / stepsPerRotation) % RingSize)

		bg := Scale(p.Background, globalBrightness)
		for i := range frame {
			frame[i] = bg
		}
		lit := Scale(p.Color, globalBrightness)
		for i := uint8(0); i < p.Length && i < RingSize; i++ {
			var pos uint8
			if p.Clockwise {
				pos = (currentStep + i) % RingSize
			} else {
				pos = (RingSize + currentStep - i) % RingSize
			}
			frame[pos] = lit
		}

	case KindPulse:
		p := mode.Pulse
		period := p.PeriodMS
		if period < 1 {
			period = 1
		}
		ps.PulsePhase += TickMS
		phase := ps.PulsePhase % period
		t := float64(phase) / float64(period)

		normalized := (math.Sin(t*2*math.Pi) + 1) / 2
		brightness := float64(p.MinBrightness) +
			float64(p.MaxBrightness-p.MinBrightness)*normalized

		// Two sequential scale passes: pulse brightness first, then the
		// global scalar. Kept as two passes to match observed behavior.
		pulsed := Scale(p.Color, uint8(brightness))
		final := Scale(pulsed, globalBrightness)
		for i := range frame {
			frame[i] = final
		}

	case KindRainbow:
		p := mode.Rainbow
		step := p.SpeedMS / TickMS
		if step < 1 {
			step = 1
		}
		ps.Hue += uint8(255 / step)

		if p.Spread {
			for i := range frame {
				hue := ps.Hue + uint8(i*21) // 21 ~= 255/12
				frame[i] = Scale(HSV(hue, 255, p.Brightness), globalBrightness)
			}
		} else {
			c := Scale(HSV(ps.Hue, 255, p.Brightness), globalBrightness)
			for i := range frame {
				frame[i] = c
			}
		}

	case KindCustom:
		for i := range frame {
			frame[i] = Scale(mode.Custom.Leds[i], globalBrightness)
		}
	}

	return frame
}
