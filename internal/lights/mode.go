package lights

// RingSize is the number of addressable pixels on each ear ring.
const RingSize = 12

// Kind discriminates the light mode variants.
type Kind uint8

const (
	KindOff Kind = iota
	KindSolid
	KindGradient
	KindChase
	KindPulse
	KindRainbow
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindOff:
		return "off"
	case KindSolid:
		return "solid"
	case KindGradient:
		return "gradient"
	case KindChase:
		return "chase"
	case KindPulse:
		return "pulse"
	case KindRainbow:
		return "rainbow"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Mode selects the lighting behavior of one ring. It is a closed variant set:
// Kind picks the variant and only the matching payload field is meaningful.
// Build values through the constructors so unused payloads stay zeroed and
// modes compare with ==.
type Mode struct {
	Kind Kind

	SolidColor   Color
	GradientFrom Color
	GradientTo   Color
	Chase        ChasePattern
	Pulse        PulsePattern
	Rainbow      RainbowPattern
	Custom       LedPattern
}

// ChasePattern rotates a segment of lit pixels around the ring.
type ChasePattern struct {
	Color      Color  `json:"color"`
	Background Color  `json:"background"`
	Length     uint8  `json:"length"`
	SpeedMS    uint16 `json:"speed_ms"`
	Clockwise  bool   `json:"clockwise"`
}

// PulsePattern breathes a single color between two brightness bounds.
type PulsePattern struct {
	Color         Color  `json:"color"`
	MinBrightness uint8  `json:"min_brightness"`
	MaxBrightness uint8  `json:"max_brightness"`
	PeriodMS      uint16 `json:"period_ms"`
}

// RainbowPattern cycles hues, optionally spread across the ring.
type RainbowPattern struct {
	SpeedMS    uint16 `json:"speed_ms"`
	Spread     bool   `json:"spread"`
	Brightness uint8  `json:"brightness"`
}

// LedPattern addresses every pixel individually. The looping flag is carried
// for external producers; the engine itself does not animate custom patterns.
type LedPattern struct {
	Leds    [RingSize]Color `json:"leds"`
	Looping bool            `json:"looping"`
}

// Off returns the all-dark mode.
func Off() Mode { return Mode{Kind: KindOff} }

// Solid lights every pixel with one color.
func Solid(c Color) Mode { return Mode{Kind: KindSolid, SolidColor: c} }

// Gradient sweeps from one color to another across the ring.
func Gradient(from, to Color) Mode {
	return Mode{Kind: KindGradient, GradientFrom: from, GradientTo: to}
}

// Chase builds a clockwise chase with an unlit background.
func Chase(c Color, length uint8, speedMS uint16) Mode {
	return Mode{Kind: KindChase, Chase: ChasePattern{
		Color:     c,
		Length:    length,
		SpeedMS:   speedMS,
		Clockwise: true,
	}}
}

// ChaseWith uses a fully specified chase pattern.
func ChaseWith(p ChasePattern) Mode { return Mode{Kind: KindChase, Chase: p} }

// Pulse breathes a color over the full brightness range.
func Pulse(c Color, periodMS uint16) Mode {
	return Mode{Kind: KindPulse, Pulse: PulsePattern{
		Color:         c,
		MinBrightness: 0,
		MaxBrightness: 255,
		PeriodMS:      periodMS,
	}}
}

// PulseWith uses a fully specified pulse pattern.
func PulseWith(p PulsePattern) Mode { return Mode{Kind: KindPulse, Pulse: p} }

// Rainbow cycles hues across the ring.
func Rainbow(speedMS uint16) Mode {
	return Mode{Kind: KindRainbow, Rainbow: RainbowPattern{
		SpeedMS:    speedMS,
		Spread:     true,
		Brightness: 255,
	}}
}

// RainbowWith uses a fully specified rainbow pattern.
func RainbowWith(p RainbowPattern) Mode { return Mode{Kind: KindRainbow, Rainbow: p} }

// Custom addresses each pixel directly.
func Custom(p LedPattern) Mode { return Mode{Kind: KindCustom, Custom: p} }
