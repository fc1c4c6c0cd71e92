// Package texfile decodes on-disk images into the 8-bit RGBA texel
// layout accepted by TexImage2D.
package texfile

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Image holds decoded texel data ready for upload: dense row-major RGBA,
// 4 bytes per texel.
type Image struct {
	W, H   int
	Pixels []uint8
}

// Load reads and decodes an image file. TGA, PNG, JPEG, BMP, and WebP
// are recognized.
func Load(path string) (*Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texfile: read %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texfile: decode %s: %w", path, err)
	}

	return fromImage(img), nil
}

// fromImage flattens any image into contiguous RGBA bytes.
func fromImage(src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Image{
		W:      b.Dx(),
		H:      b.Dy(),
		Pixels: dst.Pix,
	}
}
