package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Image is the raster target of a render.
// Pixel (0, 0) is the bottom-left corner; y grows upwards like the camera's v coordinate.
// Painted colors are expected in [0, 256) per channel and are truncated on output.
type Image struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

// PaintPixel stores the display color of pixel (x, y)
func (img *Image) PaintPixel(x, y int, color core.Vec3) {
	img.pixels[y*img.width+x] = color
}

// Pixel returns the stored color of pixel (x, y)
func (img *Image) Pixel(x, y int) core.Vec3 {
	return img.pixels[y*img.width+x]
}

// channels truncates a stored color to displayable bytes
func (img *Image) channels(x, y int) (uint8, uint8, uint8) {
	c := img.Pixel(x, y)
	return toByte(c.X), toByte(c.Y), toByte(c.Z)
}

func toByte(value float64) uint8 {
	return uint8(core.Clamp(int(value), 0, 255))
}

// WriteTo writes the image as an ASCII PPM (P3), topmost row first
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64

	n, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.width, img.height)
	written += int64(n)
	if err != nil {
		return written, err
	}

	for y := img.height - 1; y >= 0; y-- {
		for x := 0; x < img.width; x++ {
			r, g, b := img.channels(x, y)
			n, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
	}

	return written, bw.Flush()
}

// Save writes the image to path in PPM format
func (img *Image) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := img.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

// ToRGBA converts the image to a standard top-down RGBA image
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			r, g, b := img.channels(x, y)
			rgba.SetRGBA(x, img.height-1-y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return rgba
}

// SavePNG writes the image to path; the format follows the file extension (.png, .jpg, ...)
func (img *Image) SavePNG(path string) error {
	if err := imaging.Save(img.ToRGBA(), path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the image to w as PNG
func (img *Image) EncodePNG(w io.Writer) error {
	return imaging.Encode(w, img.ToRGBA(), imaging.PNG)
}

// Thumbnail returns a downscaled copy fitting in a maxSize x maxSize square, keeping the aspect ratio
func (img *Image) Thumbnail(maxSize uint) image.Image {
	return resize.Thumbnail(maxSize, maxSize, img.ToRGBA(), resize.Bilinear)
}

// SaveThumbnail writes a downscaled copy of the image to path
func (img *Image) SaveThumbnail(path string, maxSize uint) error {
	if err := imaging.Save(img.Thumbnail(maxSize), path); err != nil {
		return fmt.Errorf("failed to save thumbnail %s: %w", path, err)
	}
	return nil
}
