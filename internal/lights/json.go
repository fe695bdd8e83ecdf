package lights

import (
	"encoding/json"
	"fmt"
)

// modeJSON is the wire form of a Mode: a kind tag plus the payload of the
// active variant only.
type modeJSON struct {
	Kind         string          `json:"kind"`
	Color        *Color          `json:"color,omitempty"`
	GradientFrom *Color          `json:"from,omitempty"`
	GradientTo   *Color          `json:"to,omitempty"`
	Chase        *ChasePattern   `json:"chase,omitempty"`
	Pulse        *PulsePattern   `json:"pulse,omitempty"`
	Rainbow      *RainbowPattern `json:"rainbow,omitempty"`
	Custom       *LedPattern     `json:"custom,omitempty"`
}

func (m Mode) MarshalJSON() ([]byte, error) {
	out := modeJSON{Kind: m.Kind.String()}
	switch m.Kind {
	case KindOff:
	case KindSolid:
		c := m.SolidColor
		out.Color = &c
	case KindGradient:
		from, to := m.GradientFrom, m.GradientTo
		out.GradientFrom, out.GradientTo = &from, &to
	case KindChase:
		p := m.Chase
		out.Chase = &p
	case KindPulse:
		p := m.Pulse
		out.Pulse = &p
	case KindRainbow:
		p := m.Rainbow
		out.Rainbow = &p
	case KindCustom:
		p := m.Custom
		out.Custom = &p
	default:
		return nil, fmt.Errorf("unknown light mode kind %d", m.Kind)
	}
	return json.Marshal(out)
}

func (m *Mode) UnmarshalJSON(b []byte) error {
	var in modeJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	switch in.Kind {
	case "off":
		*m = Off()
	case "solid":
		if in.Color == nil {
			return fmt.Errorf("solid light mode requires a color")
		}
		*m = Solid(*in.Color)
	case "gradient":
		if in.GradientFrom == nil || in.GradientTo == nil {
			return fmt.Errorf("gradient light mode requires from and to colors")
		}
		*m = Gradient(*in.GradientFrom, *in.GradientTo)
	case "chase":
		if in.Chase == nil {
			return fmt.Errorf("chase light mode requires a chase payload")
		}
		if in.Chase.Length > RingSize {
			return fmt.Errorf("chase length %d exceeds ring size %d", in.Chase.Length, RingSize)
		}
		*m = ChaseWith(*in.Chase)
	case "pulse":
		if in.Pulse == nil {
			return fmt.Errorf("pulse light mode requires a pulse payload")
		}
		*m = PulseWith(*in.Pulse)
	case "rainbow":
		if in.Rainbow == nil {
			return fmt.Errorf("rainbow light mode requires a rainbow payload")
		}
		*m = RainbowWith(*in.Rainbow)
	case "custom":
		if in.Custom == nil {
			return fmt.Errorf("custom light mode requires a custom payload")
		}
		*m = Custom(*in.Custom)
	default:
		return fmt.Errorf("unknown light mode kind %q", in.Kind)
	}
	return nil
}
