// Package servo maps abstract 0-255 ear positions onto PWM duty cycles.
package servo

import (
	"fmt"
	"math"
	"time"
)

// Calibration describes the pulse timing a servo model expects.
type Calibration struct {
	// Period is the PWM period, typically 20ms (50Hz).
	Period time.Duration
	// MinPulse is the pulse width at rotation 0.
	MinPulse time.Duration
	// MaxPulse is the pulse width at rotation 255.
	MaxPulse time.Duration
}

// SG90 is the standard micro servo.
var SG90 = Calibration{
	Period:   20 * time.Millisecond,
	MinPulse: 500 * time.Microsecond,
	MaxPulse: 2500 * time.Microsecond,
}

// MG995 is the high-torque metal gear servo used for the ears.
var MG995 = Calibration{
	Period:   20 * time.Millisecond,
	MinPulse: 500 * time.Microsecond,
	MaxPulse: 2500 * time.Microsecond,
}

// DutyCycler is the PWM peripheral a servo drives: a timer with MaxDuty+1
// ticks per period where SetDuty picks how many are spent high.
type DutyCycler interface {
	MaxDuty() uint16
	SetDuty(duty uint16) error
}

// Duty maps a rotation onto a duty tick count for a peripheral with the
// given timer resolution. All arithmetic is done in uint64 before the final
// narrowing. It fails when the calibration cannot be represented on the
// peripheral, which is a configuration error local to this servo.
func (c Calibration) Duty(maxDuty uint16, rotation uint8) (uint16, error) {
	tickWidth := uint64(c.Period.Microseconds()) / (uint64(maxDuty) + 1)
	if tickWidth == 0 {
		return 0, fmt.Errorf("servo: period %v too short for %d duty ticks", c.Period, maxDuty)
	}
	minDuty := uint64(c.MinPulse.Microseconds()) / tickWidth
	maxTicks := uint64(c.MaxPulse.Microseconds()) / tickWidth
	if maxTicks < minDuty {
		return 0, fmt.Errorf("servo: max pulse %v below min pulse %v", c.MaxPulse, c.MinPulse)
	}
	duty := minDuty + (maxTicks-minDuty)*uint64(rotation)/255
	if duty > math.MaxUint16 {
		return 0, fmt.Errorf("servo: duty %d does not fit the peripheral range", duty)
	}
	return uint16(duty), nil
}

// Servo drives one PWM-controlled motor.
type Servo struct {
	pwm DutyCycler
	cal Calibration
}

// New wires a calibration onto a PWM peripheral.
func New(pwm DutyCycler, cal Calibration) *Servo {
	return &Servo{pwm: pwm, cal: cal}
}

// SetRotation moves the servo: 0 is the minimum position, 255 the maximum,
// values between are linearly interpolated over the pulse width range.
func (s *Servo) SetRotation(rotation uint8) error {
	duty, err := s.cal.Duty(s.pwm.MaxDuty(), rotation)
	if err != nil {
		return err
	}
	if err := s.pwm.SetDuty(duty); err != nil {
		return fmt.Errorf("servo: set duty: %w", err)
	}
	return nil
}
