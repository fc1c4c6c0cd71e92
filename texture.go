package consolegl

import "consolegl/internal/raster"

// GenTextures allocates count empty textures and writes their ids into
// buf. Ids are 1-based; id 0 is reserved to mean "no texture". A negative
// count latches InvalidEnum; a buf shorter than count latches
// InvalidOperation.
func (c *Context) GenTextures(count int, buf []int) {
	if !c.beginCheck() {
		return
	}
	if count < 0 {
		c.setError(InvalidEnum)
		return
	}
	if len(buf) < count {
		c.setError(InvalidOperation)
		return
	}

	for i := 0; i < count; i++ {
		c.textures = append(c.textures, &raster.Texture{})
		buf[i] = len(c.textures)
	}
}

// BindTexture makes a texture current. Id 0 clears the binding. The
// target must be Texture2D; an id that was never generated latches
// InvalidValue.
func (c *Context) BindTexture(target, id int) {
	if !c.beginCheck() {
		return
	}
	if target != Texture2D {
		c.setError(InvalidEnum)
		return
	}
	if id < 0 || id > len(c.textures) {
		c.setError(InvalidValue)
		return
	}
	c.curTexture = id - 1
}

// TexImage2D uploads width×height texels to the bound texture. data must
// be a []uint8 with typ Byte (channels in [0,255]) or a []float32 with
// typ Float (channels clamped to [0,1]); both are 4-channel RGBA,
// row-major. Uploading with no texture bound latches InvalidOperation.
func (c *Context) TexImage2D(target, width, height, typ int, data any) {
	if !c.beginCheck() {
		return
	}
	if target != Texture2D {
		c.setError(InvalidEnum)
		return
	}
	if typ != Byte && typ != Float {
		c.setError(InvalidEnum)
		return
	}
	if width <= 0 || height <= 0 {
		c.setError(InvalidValue)
		return
	}
	tex := c.boundTexture()
	if tex == nil {
		c.setError(InvalidOperation)
		return
	}

	n := width * height
	pixels := make([]raster.Pixel, n)

	switch src := data.(type) {
	case []uint8:
		if typ != Byte || len(src) < n*4 {
			c.setError(InvalidOperation)
			return
		}
		for i := 0; i < n; i++ {
			pixels[i] = raster.PixelFromBytes(src[i*4], src[i*4+1], src[i*4+2], src[i*4+3])
		}
	case []float32:
		if typ != Float || len(src) < n*4 {
			c.setError(InvalidOperation)
			return
		}
		for i := 0; i < n; i++ {
			pixels[i] = raster.PixelFromFloats(src[i*4], src[i*4+1], src[i*4+2], src[i*4+3])
		}
	default:
		c.setError(InvalidOperation)
		return
	}

	tex.W = width
	tex.H = height
	tex.Pixels = pixels
}
