// Package led writes rendered frames to the physical LED rings.
package led

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"

	"github.com/ziyadedher/catears/internal/lights"
)

// PixelSink consumes one ordered frame per tick.
type PixelSink interface {
	Write(frame [lights.RingSize]lights.Color) error
	Close() error
}

// Ring adapts a display.Drawer (the nrzled device, or the console screen in
// sim mode) into a PixelSink.
type Ring struct {
	drawer display.Drawer
	port   spi.PortCloser
	img    *image.NRGBA
}

// NewRing wraps an arbitrary drawer. Used directly by tests and sim mode.
func NewRing(d display.Drawer) *Ring {
	return &Ring{drawer: d, img: image.NewNRGBA(d.Bounds())}
}

// OpenSPI opens a spidev port and attaches a WS2812 ring to it. An empty
// name picks the first available port.
func OpenSPI(dev string) (*Ring, error) {
	port, err := spireg.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("led: open SPI port %q: %w", dev, err)
	}
	d, err := nrzled.NewSPI(port, &nrzled.Opts{
		NumPixels: lights.RingSize,
		Channels:  3,
		Freq:      2500 * physic.KiloHertz,
	})
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("led: attach ring: %w", err)
	}
	r := NewRing(d)
	r.port = port
	return r, nil
}

// NewConsole renders the ring as a strip of colored blocks on stdout.
func NewConsole() *Ring {
	return NewRing(screen.New(lights.RingSize))
}

func (r *Ring) Write(frame [lights.RingSize]lights.Color) error {
	for i, c := range frame {
		r.img.SetNRGBA(r.img.Rect.Min.X+i, r.img.Rect.Min.Y,
			color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	}
	if err := r.drawer.Draw(r.drawer.Bounds(), r.img, image.Point{}); err != nil {
		return fmt.Errorf("led: draw frame: %w", err)
	}
	return nil
}

func (r *Ring) Close() error {
	err := r.drawer.Halt()
	if r.port != nil {
		if cerr := r.port.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
