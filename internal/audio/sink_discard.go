package audio

// DiscardSink drops all PCM. It is the sink for sim mode and machines with
// no sound device.
type DiscardSink struct{}

func (DiscardSink) Write(pcm []int16) error { return nil }
func (DiscardSink) Close() error            { return nil }
