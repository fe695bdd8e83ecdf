// Package state defines the single shared description of everything the
// device's peripherals should be doing, plus the store that synchronizes it
// between writer collaborators and the render loops.
package state

import (
	"github.com/ziyadedher/catears/internal/audio"
	"github.com/ziyadedher/catears/internal/lights"
)

// State is the complete desired configuration of all controllable hardware.
// It is a plain comparable value: producers build a whole new State and swap
// it in, render loops copy it out. No field is ever shared by reference.
type State struct {
	Servos   Servos   `json:"servos"`
	Lights   Lights   `json:"lights"`
	Speakers Speakers `json:"speakers"`
}

// Servos holds the ear positions, 0-255 with 125 as the neutral center.
type Servos struct {
	Left  uint8 `json:"left"`
	Right uint8 `json:"right"`
}

// Lights holds the per-ring light modes and the global brightness scalar
// applied on top of whatever each mode produces.
type Lights struct {
	Left       lights.Mode `json:"left"`
	Right      lights.Mode `json:"right"`
	Brightness uint8       `json:"brightness"`
}

// Speakers holds the audio mode and the master volume.
type Speakers struct {
	Mode   audio.Mode `json:"mode"`
	Volume uint8      `json:"volume"`
}

// Default returns the power-on state: ears centered, both rings pulsing red,
// speakers silent at medium volume.
func Default() State {
	return State{
		Servos: Servos{Left: 125, Right: 125},
		Lights: Lights{
			Left:       lights.Pulse(lights.RGB(255, 0, 0), 250),
			Right:      lights.Pulse(lights.RGB(255, 0, 0), 250),
			Brightness: 255,
		},
		Speakers: Speakers{
			Mode:   audio.Silent(),
			Volume: 128,
		},
	}
}
