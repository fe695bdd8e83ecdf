package audio

import (
	"errors"
	"fmt"
)

// MaxNotes is the fixed capacity of a chiptune sequence.
const MaxNotes = 64

// ErrTooManyNotes is returned when a sequence is built from more than
// MaxNotes notes. Overlong inputs are rejected, never truncated.
var ErrTooManyNotes = errors.New("audio: sequence exceeds 64 notes")

// Kind discriminates the audio mode variants.
type Kind uint8

const (
	KindSilent Kind = iota
	KindTone
	KindChiptune
	KindClip
)

func (k Kind) String() string {
	switch k {
	case KindSilent:
		return "silent"
	case KindTone:
		return "tone"
	case KindChiptune:
		return "chiptune"
	case KindClip:
		return "audio"
	default:
		return "unknown"
	}
}

// Mode selects the speaker behavior. Like the light modes it is a closed
// variant set built through constructors so values compare with ==.
type Mode struct {
	Kind     Kind
	Tone     Note
	Chiptune Sequence
	Clip     Clip
}

// Silent is the default no-output mode.
func Silent() Mode { return Mode{Kind: KindSilent} }

// Tone plays a single note.
func Tone(n Note) Mode { return Mode{Kind: KindTone, Tone: n} }

// Chiptune plays a note sequence.
func Chiptune(s Sequence) Mode { return Mode{Kind: KindChiptune, Chiptune: s} }

// FromClip plays an embedded PCM clip. Playback is not implemented yet; the
// engine reports it as unsupported.
func FromClip(c Clip) Mode { return Mode{Kind: KindClip, Clip: c} }

// Note is a single chiptune note. Frequency 0 is a rest. Volume is 0-255, or
// VolumeDefault to fall back to the sequence default (or the master volume
// for a bare tone).
type Note struct {
	Frequency  float32
	DurationMS uint16
	Volume     int16
}

// VolumeDefault marks a note that inherits its volume.
const VolumeDefault int16 = -1

// NewNote builds a note inheriting the default volume.
func NewNote(frequency float32, durationMS uint16) Note {
	return Note{Frequency: frequency, DurationMS: durationMS, Volume: VolumeDefault}
}

// NoteWithVolume builds a note with its own volume.
func NoteWithVolume(frequency float32, durationMS uint16, volume uint8) Note {
	return Note{Frequency: frequency, DurationMS: durationMS, Volume: int16(volume)}
}

// Rest builds a silent note.
func Rest(durationMS uint16) Note {
	return Note{DurationMS: durationMS, Volume: VolumeDefault}
}

// ResolveVolume returns the note's own volume or fallback when the note
// inherits.
func (n Note) ResolveVolume(fallback uint8) uint8 {
	if n.Volume >= 0 && n.Volume <= 255 {
		return uint8(n.Volume)
	}
	return fallback
}

// Sequence is a fixed-capacity chiptune melody. Notes beyond Length are never
// played.
type Sequence struct {
	Notes         [MaxNotes]Note
	Length        uint8
	DefaultVolume uint8
	Looping       bool
}

// NewSequence returns an empty sequence with the standard default volume.
func NewSequence() Sequence {
	return Sequence{DefaultVolume: 128}
}

// SequenceFromNotes copies notes into a fixed-capacity sequence. It fails if
// more than MaxNotes notes are given.
func SequenceFromNotes(notes []Note) (Sequence, error) {
	if len(notes) > MaxNotes {
		return Sequence{}, fmt.Errorf("%w: got %d", ErrTooManyNotes, len(notes))
	}
	s := NewSequence()
	copy(s.Notes[:], notes)
	s.Length = uint8(len(notes))
	return s, nil
}

// mustSequence is used for the built-in melodies, which are all well under
// capacity.
func mustSequence(notes []Note) Sequence {
	s, err := SequenceFromNotes(notes)
	if err != nil {
		panic(err)
	}
	return s
}

// WithVolume returns a copy with a different default volume.
func (s Sequence) WithVolume(volume uint8) Sequence {
	s.DefaultVolume = volume
	return s
}

// WithLoop returns a copy that repeats until the mode changes.
func (s Sequence) WithLoop() Sequence {
	s.Looping = true
	return s
}

// Active returns the playable slice of the sequence.
func (s *Sequence) Active() []Note {
	return s.Notes[:s.Length]
}

// Clip references embedded raw PCM data by registry name. The sample data
// itself stays out of the value so state snapshots remain comparable and
// serializable.
type Clip struct {
	Sound         string `json:"sound"`
	SampleRate    uint32 `json:"sample_rate"`
	BitsPerSample uint8  `json:"bits_per_sample"`
	Stereo        bool   `json:"stereo"`
	Looping       bool   `json:"looping"`
}

// SampleCount returns the number of PCM samples the referenced data holds.
// Unregistered clips count as empty.
func (c Clip) SampleCount() uint32 {
	data := ClipData(c.Sound)
	bytesPerSample := int(c.BitsPerSample) / 8
	if bytesPerSample == 0 {
		return 0
	}
	channels := 1
	if c.Stereo {
		channels = 2
	}
	return uint32(len(data) / (bytesPerSample * channels))
}

// DurationMS returns the clip length in milliseconds.
func (c Clip) DurationMS() uint32 {
	if c.SampleRate == 0 {
		return 0
	}
	return c.SampleCount() * 1000 / c.SampleRate
}
