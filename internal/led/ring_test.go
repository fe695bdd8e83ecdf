package led_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spitest"
	"periph.io/x/devices/v3/nrzled"

	"github.com/ziyadedher/catears/internal/led"
	"github.com/ziyadedher/catears/internal/lights"
)

// fakeDrawer records the frames it is asked to draw.
type fakeDrawer struct {
	frames []*image.NRGBA
	halted bool
	err    error
}

func (f *fakeDrawer) String() string          { return "fakeDrawer" }
func (f *fakeDrawer) ColorModel() color.Model { return color.NRGBAModel }
func (f *fakeDrawer) Bounds() image.Rectangle { return image.Rect(0, 0, lights.RingSize, 1) }
func (f *fakeDrawer) Halt() error             { f.halted = true; return nil }
func (f *fakeDrawer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if f.err != nil {
		return f.err
	}
	snap := image.NewNRGBA(f.Bounds())
	draw.Draw(snap, snap.Rect, src, sp, draw.Src)
	f.frames = append(f.frames, snap)
	return nil
}

func TestRingWritesFramePixels(t *testing.T) {
	fd := &fakeDrawer{}
	ring := led.NewRing(fd)

	var frame [lights.RingSize]lights.Color
	frame[0] = lights.Color{R: 255}
	frame[6] = lights.Color{G: 128, B: 64}

	require.NoError(t, ring.Write(frame))
	require.Len(t, fd.frames, 1)

	got := fd.frames[0]
	assert.Equal(t, uint8(255), got.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(0), got.NRGBAAt(0, 0).G)
	assert.Equal(t, uint8(128), got.NRGBAAt(6, 0).G)
	assert.Equal(t, uint8(64), got.NRGBAAt(6, 0).B)
	assert.Equal(t, uint8(0), got.NRGBAAt(11, 0).R)
}

func TestRingDrawErrorSurfaces(t *testing.T) {
	fd := &fakeDrawer{err: errors.New("bus gone")}
	ring := led.NewRing(fd)

	err := ring.Write([lights.RingSize]lights.Color{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "bus gone")
}

func TestRingCloseHaltsDrawer(t *testing.T) {
	fd := &fakeDrawer{}
	ring := led.NewRing(fd)
	require.NoError(t, ring.Close())
	assert.True(t, fd.halted)
}

func TestRingOverSPIEncodesDeterministically(t *testing.T) {
	encode := func(frame [lights.RingSize]lights.Color) []byte {
		buf := bytes.Buffer{}
		d, err := nrzled.NewSPI(spitest.NewRecordRaw(&buf), &nrzled.Opts{
			NumPixels: lights.RingSize,
			Channels:  3,
			Freq:      2500 * physic.KiloHertz,
		})
		require.NoError(t, err)
		ring := led.NewRing(d)
		require.NoError(t, ring.Write(frame))
		return buf.Bytes()
	}

	var off, lit [lights.RingSize]lights.Color
	lit[3] = lights.Color{R: 255, G: 255, B: 255}

	a := encode(off)
	b := encode(off)
	c := encode(lit)

	assert.NotEmpty(t, a)
	assert.Equal(t, a, b, "same frame should produce the same wire bytes")
	assert.NotEqual(t, a, c, "lit pixel must change the wire bytes")
}
