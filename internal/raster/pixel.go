package raster

import "math"

// Pixel is a 4-channel color with each channel normalized to [0,1].
type Pixel struct {
	R, G, B, A float32
}

// PixelFromBytes builds a Pixel from four 8-bit channel values.
func PixelFromBytes(r, g, b, a uint8) Pixel {
	return Pixel{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// PixelFromWord unpacks an RGBA word with R in the most significant byte.
func PixelFromWord(w uint32) Pixel {
	return PixelFromBytes(
		uint8(w>>24),
		uint8(w>>16),
		uint8(w>>8),
		uint8(w),
	)
}

// PixelFromFloats builds a Pixel from float channels, clamping each to [0,1].
func PixelFromFloats(r, g, b, a float32) Pixel {
	return Pixel{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// Modulate multiplies two colors component-wise.
func (p Pixel) Modulate(q Pixel) Pixel {
	return Pixel{R: p.R * q.R, G: p.G * q.G, B: p.B * q.B, A: p.A * q.A}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Texture is a dense row-major pixel array. A generated texture starts
// empty (W, H zero, Pixels nil) until an upload populates it.
type Texture struct {
	W, H   int
	Pixels []Pixel
}

// Sample fetches the nearest texel for normalized coordinates (u, v).
// Coordinates wrap with repeat semantics: the texel index is reduced by a
// floored modulus whose result follows the sign of the divisor, so it is
// always in [0, n) even for negative inputs.
func (t *Texture) Sample(u, v float32) Pixel {
	tx := floorMod(int(math.Floor(float64(u)*float64(t.W))), t.W)
	ty := floorMod(int(math.Floor(float64(v)*float64(t.H))), t.H)
	return t.Pixels[tx+ty*t.W]
}

func floorMod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}
