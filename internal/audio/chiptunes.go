package audio

// Built-in chiptune melodies for common device events.

// CoinCollect is a classic two-note coin pickup.
func CoinCollect() Sequence {
	return mustSequence([]Note{
		NewNote(988, 100),  // B5
		NewNote(1319, 400), // E6
	})
}

// PowerUp is a rising acquisition jingle.
func PowerUp() Sequence {
	return mustSequence([]Note{
		NewNote(523, 100),  // C5
		NewNote(659, 100),  // E5
		NewNote(784, 100),  // G5
		NewNote(1047, 200), // C6
	})
}

// LevelComplete is a short fanfare.
func LevelComplete() Sequence {
	return mustSequence([]Note{
		NewNote(523, 150),  // C5
		NewNote(659, 150),  // E5
		NewNote(784, 150),  // G5
		NewNote(1047, 150), // C6
		NewNote(784, 150),  // G5
		NewNote(1047, 400), // C6
	})
}

// GameOver is a descending minor line.
func GameOver() Sequence {
	return mustSequence([]Note{
		NewNote(523, 200), // C5
		NewNote(494, 200), // B4
		NewNote(466, 200), // Bb4
		NewNote(440, 600), // A4
	})
}

// MenuSelect is a quick confirmation blip.
func MenuSelect() Sequence {
	return mustSequence([]Note{
		NewNote(1047, 50), // C6
		NewNote(1319, 50), // E6
	})
}

// AlertChime is a double beep.
func AlertChime() Sequence {
	return mustSequence([]Note{
		NewNote(880, 100), // A5
		Rest(50),
		NewNote(880, 100), // A5
	})
}

// Happy is a cheerful major phrase.
func Happy() Sequence {
	return mustSequence([]Note{
		NewNote(523, 150),  // C5
		NewNote(659, 150),  // E5
		NewNote(784, 150),  // G5
		NewNote(659, 150),  // E5
		NewNote(1047, 300), // C6
	})
}

// Sad is a descending minor phrase.
func Sad() Sequence {
	return mustSequence([]Note{
		NewNote(440, 300), // A4
		NewNote(415, 300), // Ab4
		NewNote(392, 300), // G4
		NewNote(349, 600), // F4
	})
}

// Startup is the boot jingle.
func Startup() Sequence {
	return mustSequence([]Note{
		NewNote(262, 100), // C4
		NewNote(392, 100), // G4
		NewNote(523, 100), // C5
		NewNote(659, 100), // E5
		NewNote(784, 200), // G5
	})
}

// Shutdown is the power-down jingle.
func Shutdown() Sequence {
	return mustSequence([]Note{
		NewNote(784, 100), // G5
		NewNote(659, 100), // E5
		NewNote(523, 100), // C5
		NewNote(392, 100), // G4
		NewNote(262, 200), // C4
	})
}
