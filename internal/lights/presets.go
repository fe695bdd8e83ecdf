package lights

// Named modes for common effects, usable by any state producer.

// Police is an emergency-style red chase over a blue background.
func Police() Mode {
	return ChaseWith(ChasePattern{
		Color:      RGB(255, 0, 0),
		Background: RGB(0, 0, 255),
		Length:     6,
		SpeedMS:    100,
		Clockwise:  true,
	})
}

// Breathing is a soft white pulse.
func Breathing() Mode {
	return PulseWith(PulsePattern{
		Color:         RGB(255, 255, 255),
		MinBrightness: 20,
		MaxBrightness: 255,
		PeriodMS:      3000,
	})
}

// Party is a fast spread rainbow.
func Party() Mode { return Rainbow(50) }

// Alert flashes red.
func Alert() Mode { return Pulse(RGB(255, 0, 0), 500) }

// Success pulses green.
func Success() Mode {
	return PulseWith(PulsePattern{
		Color:         RGB(0, 255, 0),
		MinBrightness: 50,
		MaxBrightness: 255,
		PeriodMS:      1000,
	})
}

// Loading is a short blue chase.
func Loading() Mode { return Chase(RGB(0, 100, 255), 3, 150) }

// CatEyes puts two amber dots on opposite sides of the ring.
func CatEyes() Mode {
	var p LedPattern
	p.Leds[0] = RGB(255, 150, 0)
	p.Leds[6] = RGB(255, 150, 0)
	return Custom(p)
}

// Notification is a soft blue pulse.
func Notification() Mode {
	return PulseWith(PulsePattern{
		Color:         RGB(0, 150, 255),
		MinBrightness: 30,
		MaxBrightness: 200,
		PeriodMS:      2000,
	})
}

// Fire is a red to orange gradient.
func Fire() Mode { return Gradient(RGB(255, 0, 0), RGB(255, 150, 0)) }

// Ocean is a blue to cyan gradient.
func Ocean() Mode { return Gradient(RGB(0, 0, 255), RGB(0, 255, 255)) }
