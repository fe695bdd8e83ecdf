package audio

import "math"

const (
	// SampleRate is the fixed hardware output rate.
	SampleRate = 44100

	// BufferSamples is the fixed capacity of the working buffer in
	// interleaved 16-bit samples. Notes whose sample count exceeds it are
	// truncated to the buffer, not split across writes.
	BufferSamples = 8192

	// FadeSamples is the linear fade-in/out length applied to both ends of
	// every synthesized tone to avoid edge pops.
	FadeSamples = 220

	maxAmplitude = 32767

	// headroom keeps the synth well clear of full scale.
	headroom = 0.5
)

// Amplitude converts a 0-255 volume into a peak sample amplitude.
func Amplitude(volume uint8) float32 {
	return maxAmplitude * float32(volume) / 255 * headroom
}

// ComposedAmplitude composes a per-note volume with the master volume as two
// independent 0-255 scalars.
func ComposedAmplitude(noteVolume, masterVolume uint8) float32 {
	return maxAmplitude * float32(noteVolume) / 255 * float32(masterVolume) / 255 * headroom
}

// Envelope returns the amplitude multiplier for sample i of a buffer of
// total mono samples: linear fade-in over the first fade samples, linear
// fade-out over the last fade, full amplitude between. The subtraction
// saturates so short buffers still get a fade-out.
func Envelope(i, total, fade int) float32 {
	if i < fade {
		return float32(i) / float32(fade)
	}
	tail := total - fade
	if tail < 0 {
		tail = 0
	}
	if i > tail {
		return float32(total-i) / float32(fade)
	}
	return 1
}

// Synthesize fills dst with an interleaved stereo sine tone and returns the
// number of samples written. Frequency 0 produces exact silence for the
// duration. The mono signal is duplicated to both channels.
func Synthesize(dst []int16, frequency float32, durationMS uint16, amplitude float32) int {
	total := int(math.Round(float64(SampleRate) * float64(durationMS) / 1000))
	stereo := total * 2
	if stereo > len(dst) {
		stereo = len(dst)
	}
	mono := stereo / 2

	if frequency <= 0 {
		for i := 0; i < stereo; i++ {
			dst[i] = 0
		}
		return stereo
	}

	for i := 0; i < mono; i++ {
		phase := 2 * math.Pi * float64(frequency) * float64(i) / SampleRate
		sample := int16(float32(math.Sin(phase)) * amplitude * Envelope(i, mono, FadeSamples))
		dst[i*2] = sample
		dst[i*2+1] = sample
	}
	return stereo
}
