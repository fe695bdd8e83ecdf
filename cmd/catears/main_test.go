package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ziyadedher/catears/internal/config"
	"github.com/ziyadedher/catears/internal/servo"
)

func TestServoSetup(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.Config
		wantLeft  string
		wantRight string
		wantCal   servo.Calibration
	}{
		{name: "no config", cfg: nil, wantCal: servo.MG995},
		{
			name:     "left only",
			cfg:      &config.Config{Servos: config.Servos{LeftPin: "GPIO12"}},
			wantLeft: "GPIO12",
			wantCal:  servo.MG995,
		},
		{
			name:      "right only",
			cfg:       &config.Config{Servos: config.Servos{RightPin: "GPIO13"}},
			wantRight: "GPIO13",
			wantCal:   servo.MG995,
		},
		{
			name:      "both pins sg90",
			cfg:       &config.Config{Servos: config.Servos{LeftPin: "GPIO12", RightPin: "GPIO13", Model: "sg90"}},
			wantLeft:  "GPIO12",
			wantRight: "GPIO13",
			wantCal:   servo.SG90,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			left, right, cal := servoSetup(tc.cfg)
			assert.Equal(t, tc.wantLeft, left)
			assert.Equal(t, tc.wantRight, right)
			assert.Equal(t, tc.wantCal, cal)
		})
	}
}
