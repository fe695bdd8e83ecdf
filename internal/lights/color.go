package lights

// Color is an 8-bit-per-channel RGB value as sent to the ring.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB is shorthand for building a Color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// Scale multiplies every channel by scale/255 with truncating integer math.
// Scale(c, 0) is black and Scale(c, 255) is c.
func Scale(c Color, scale uint8) Color {
	return Color{
		R: uint8(uint16(c.R) * uint16(scale) / 255),
		G: uint8(uint16(c.G) * uint16(scale) / 255),
		B: uint8(uint16(c.B) * uint16(scale) / 255),
	}
}

// Lerp interpolates between a and b by t in [0,1].
func Lerp(a, b Color, t float32) Color {
	return Color{
		R: uint8(float32(a.R) + (float32(b.R)-float32(a.R))*t),
		G: uint8(float32(a.G) + (float32(b.G)-float32(a.G))*t),
		B: uint8(float32(a.B) + (float32(b.B)-float32(a.B))*t),
	}
}

// HSV converts a hue/saturation/value triple (all 0-255) to RGB. The hue wheel
// is split into six 43-step sectors, matching the usual 8-bit LED convention.
func HSV(hue, sat, val uint8) Color {
	if sat == 0 {
		return Color{R: val, G: val, B: val}
	}

	region := hue / 43
	remainder := uint16(hue-region*43) * 6

	p := uint8(uint16(val) * (255 - uint16(sat)) / 255)
	q := uint8(uint16(val) * (255 - (uint16(sat)*remainder)/255) / 255)
	t := uint8(uint16(val) * (255 - (uint16(sat)*(255-remainder))/255) / 255)

	switch region {
	case 0:
		return Color{R: val, G: t, B: p}
	case 1:
		return Color{R: q, G: val, B: p}
	case 2:
		return Color{R: p, G: val, B: t}
	case 3:
		return Color{R: p, G: q, B: val}
	case 4:
		return Color{R: t, G: p, B: val}
	default:
		return Color{R: val, G: p, B: q}
	}
}
