package audio

import (
	"encoding/json"
	"fmt"
)

type noteJSON struct {
	Frequency  float32 `json:"frequency"`
	DurationMS uint16  `json:"duration_ms"`
	Volume     *uint8  `json:"volume,omitempty"`
}

func (n Note) MarshalJSON() ([]byte, error) {
	out := noteJSON{Frequency: n.Frequency, DurationMS: n.DurationMS}
	if n.Volume >= 0 && n.Volume <= 255 {
		v := uint8(n.Volume)
		out.Volume = &v
	}
	return json.Marshal(out)
}

func (n *Note) UnmarshalJSON(b []byte) error {
	var in noteJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	n.Frequency = in.Frequency
	n.DurationMS = in.DurationMS
	n.Volume = VolumeDefault
	if in.Volume != nil {
		n.Volume = int16(*in.Volume)
	}
	return nil
}

// sequenceJSON carries only the active notes on the wire; capacity is a
// storage detail.
type sequenceJSON struct {
	Notes         []Note `json:"notes"`
	DefaultVolume uint8  `json:"default_volume"`
	Looping       bool   `json:"looping"`
}

func (s Sequence) MarshalJSON() ([]byte, error) {
	notes := s.Notes[:s.Length]
	return json.Marshal(sequenceJSON{
		Notes:         notes,
		DefaultVolume: s.DefaultVolume,
		Looping:       s.Looping,
	})
}

func (s *Sequence) UnmarshalJSON(b []byte) error {
	var in sequenceJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	seq, err := SequenceFromNotes(in.Notes)
	if err != nil {
		return err
	}
	seq.DefaultVolume = in.DefaultVolume
	seq.Looping = in.Looping
	*s = seq
	return nil
}

type modeJSON struct {
	Kind     string    `json:"kind"`
	Note     *Note     `json:"note,omitempty"`
	Sequence *Sequence `json:"sequence,omitempty"`
	Clip     *Clip     `json:"clip,omitempty"`
}

func (m Mode) MarshalJSON() ([]byte, error) {
	out := modeJSON{Kind: m.Kind.String()}
	switch m.Kind {
	case KindSilent:
	case KindTone:
		n := m.Tone
		out.Note = &n
	case KindChiptune:
		s := m.Chiptune
		out.Sequence = &s
	case KindClip:
		c := m.Clip
		out.Clip = &c
	default:
		return nil, fmt.Errorf("unknown audio mode kind %d", m.Kind)
	}
	return json.Marshal(out)
}

func (m *Mode) UnmarshalJSON(b []byte) error {
	var in modeJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	switch in.Kind {
	case "silent":
		*m = Silent()
	case "tone":
		if in.Note == nil {
			return fmt.Errorf("tone audio mode requires a note")
		}
		*m = Tone(*in.Note)
	case "chiptune":
		if in.Sequence == nil {
			return fmt.Errorf("chiptune audio mode requires a sequence")
		}
		*m = Chiptune(*in.Sequence)
	case "audio":
		if in.Clip == nil {
			return fmt.Errorf("audio mode requires a clip")
		}
		*m = FromClip(*in.Clip)
	default:
		return fmt.Errorf("unknown audio mode kind %q", in.Kind)
	}
	return nil
}
