package audio

import "sync"

// The clip registry maps Clip.Sound names to raw PCM bytes baked into the
// binary. Registration normally happens from an init function next to the
// embedded asset.

var (
	clipMu   sync.RWMutex
	clipData = map[string][]byte{}
)

// RegisterClip associates a sound name with raw PCM bytes.
func RegisterClip(name string, data []byte) {
	clipMu.Lock()
	defer clipMu.Unlock()
	clipData[name] = data
}

// ClipData returns the raw PCM bytes for a registered sound, or nil.
func ClipData(name string) []byte {
	clipMu.RLock()
	defer clipMu.RUnlock()
	return clipData[name]
}

// MonoClip8 builds a clip reference for 8-bit mono PCM.
func MonoClip8(sound string, sampleRate uint32) Clip {
	return Clip{Sound: sound, SampleRate: sampleRate, BitsPerSample: 8}
}

// MonoClip16 builds a clip reference for 16-bit mono PCM.
func MonoClip16(sound string, sampleRate uint32) Clip {
	return Clip{Sound: sound, SampleRate: sampleRate, BitsPerSample: 16}
}

func init() {
	// Placeholder asset until real clips are recorded: one second-ish of
	// 8-bit silence centered at 128.
	silence := make([]byte, 1000)
	for i := range silence {
		silence[i] = 128
	}
	RegisterClip("example", silence)
}

// ExampleClip references the placeholder asset.
func ExampleClip() Clip { return MonoClip8("example", 8000) }
