package imagebuf

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/df07/go-scanline-raytracer/pkg/core"
)

// DefaultInverseGamma is the exponent applied to linear values when encoding for display
const DefaultInverseGamma = 0.45

// Buffer is a linear-RGB image. Row 0 is the top of the image.
type Buffer struct {
	width  int
	height int
	pixels []core.Color
}

// New creates a black buffer of the given size
func New(width, height int) *Buffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("imagebuf: negative size %dx%d", width, height))
	}
	return &Buffer{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// SetRow copies one scanline into row y.
// Passing a row of the wrong width or an out-of-range y is a programming error and panics.
func (b *Buffer) SetRow(row []core.Color, y int) {
	if y < 0 || y >= b.height {
		panic(fmt.Sprintf("imagebuf: row %d out of range [0, %d)", y, b.height))
	}
	if len(row) != b.width {
		panic(fmt.Sprintf("imagebuf: row has %d pixels, want %d", len(row), b.width))
	}
	copy(b.pixels[y*b.width:(y+1)*b.width], row)
}

// At returns the linear color at (x, y)
func (b *Buffer) At(x, y int) core.Color {
	return b.pixels[y*b.width+x]
}

// Row returns a copy of row y
func (b *Buffer) Row(y int) []core.Color {
	row := make([]core.Color, b.width)
	copy(row, b.pixels[y*b.width:(y+1)*b.width])
	return row
}

// EncodeChannel maps a display value to a byte, clamping to [0, 1] and rounding
func EncodeChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(0, math.Min(1, v))
	return uint8(math.Round(255 * v))
}

// ToRGBA gamma-encodes the buffer into an 8-bit image
func (b *Buffer) ToRGBA(inverseGamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.At(x, y).GammaEncode(inverseGamma)
			img.SetRGBA(x, y, color.RGBA{
				R: EncodeChannel(c.R),
				G: EncodeChannel(c.G),
				B: EncodeChannel(c.B),
				A: 255,
			})
		}
	}
	return img
}
