package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"math"
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder

	"github.com/df07/go-scanline-raytracer/pkg/core"
	"github.com/df07/go-scanline-raytracer/pkg/scene"
)

// displayGamma undoes the 0.45 encoding applied when images are saved
const displayGamma = 1 / 0.45

// ImageData contains decoded pixels in row-major order, top row first
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Color
}

// LoadImage loads a PNG, JPEG or BMP image with channels scaled to [0, 1]
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Format is detected from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewColor(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// Linearize converts display-encoded pixels back to linear radiance in place
func (d *ImageData) Linearize() {
	for i, c := range d.Pixels {
		d.Pixels[i] = core.NewColor(
			math.Pow(c.R, displayGamma),
			math.Pow(c.G, displayGamma),
			math.Pow(c.B, displayGamma),
		)
	}
}

// LoadEnvironment loads a latitude-longitude image as a scene background
func LoadEnvironment(filename string) (scene.Background, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	if data.Width == 0 || data.Height == 0 {
		return nil, fmt.Errorf("environment map %s is empty", filename)
	}
	data.Linearize()
	return scene.Equirectangular(data.Width, data.Height, data.Pixels), nil
}
