package servo

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
)

// defaultTimerTicks mirrors a 1MHz MCPWM timer over a 20ms period.
const defaultTimerTicks = 19999

// Pin adapts a periph.io GPIO output into a DutyCycler. periph expresses
// duty as a fraction of gpio.DutyMax; Pin keeps the tick-based contract the
// mapper needs and rescales on the way out.
type Pin struct {
	out     gpio.PinOut
	freq    physic.Frequency
	maxDuty uint16
}

// OpenPin looks up a GPIO pin by name and configures it for 50Hz servo PWM.
func OpenPin(name string) (*Pin, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("servo: no GPIO pin named %q", name)
	}
	return &Pin{out: p, freq: 50 * physic.Hertz, maxDuty: defaultTimerTicks}, nil
}

// NewPin wraps an already-resolved pin, mainly for tests and custom setups.
func NewPin(out gpio.PinOut, freq physic.Frequency, maxDuty uint16) *Pin {
	return &Pin{out: out, freq: freq, maxDuty: maxDuty}
}

func (p *Pin) MaxDuty() uint16 { return p.maxDuty }

func (p *Pin) SetDuty(duty uint16) error {
	scaled := gpio.Duty(uint64(duty) * uint64(gpio.DutyMax) / uint64(p.maxDuty))
	return p.out.PWM(scaled, p.freq)
}

// Halt stops the PWM output.
func (p *Pin) Halt() error {
	return p.out.Halt()
}
