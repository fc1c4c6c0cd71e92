package consolegl

import "consolegl/internal/classify"

// ReadPixels copies the w×h rectangle at (x, y) from the framebuffer (or
// depth buffer, for DepthComponent) into data, row-major. data must match
// the format/type pair: []uint8 for Byte with channels in [0,255],
// []float32 for Float with channels in [0,1], or []ConsolePixel for the
// console format, which classifies each pixel into a glyph and a packed
// fg|bg attribute. Source pixels outside the framebuffer leave their
// destination elements untouched.
//
// Unknown formats or types latch InvalidEnum; pairing the console format
// with a non-console type (or the reverse), a mismatched destination
// slice, or one too short for the rectangle latch InvalidOperation;
// non-positive w or h latch InvalidValue.
func (c *Context) ReadPixels(x, y, w, h, format, typ int, data any) {
	if !c.beginCheck() {
		return
	}

	switch format {
	case RGBA, RGB, DepthComponent, ConsolePixelFormat:
	default:
		c.setError(InvalidEnum)
		return
	}

	isConsoleType := typ == ConsolePixelType
	if typ != Byte && typ != Float && !isConsoleType {
		c.setError(InvalidEnum)
		return
	}
	if isConsoleType != (format == ConsolePixelFormat) {
		c.setError(InvalidOperation)
		return
	}
	if w <= 0 || h <= 0 {
		c.setError(InvalidValue)
		return
	}

	channels := 1
	switch format {
	case RGBA:
		channels = 4
	case RGB:
		channels = 3
	}

	switch dst := data.(type) {
	case []uint8:
		if typ != Byte || len(dst) < w*h*channels {
			c.setError(InvalidOperation)
			return
		}
		c.readBytes(x, y, w, h, format, channels, dst)
	case []float32:
		if typ != Float || len(dst) < w*h*channels {
			c.setError(InvalidOperation)
			return
		}
		c.readFloats(x, y, w, h, format, channels, dst)
	case []ConsolePixel:
		if !isConsoleType || len(dst) < w*h {
			c.setError(InvalidOperation)
			return
		}
		c.readConsole(x, y, w, h, dst)
	default:
		c.setError(InvalidOperation)
	}
}

func (c *Context) readBytes(x, y, w, h, format, channels int, dst []uint8) {
	for row := 0; row < h; row++ {
		sy := y + row
		if sy < 0 || sy >= c.h {
			continue
		}
		for col := 0; col < w; col++ {
			sx := x + col
			if sx < 0 || sx >= c.w {
				continue
			}
			src := sx + sy*c.w
			di := (col + row*w) * channels

			if format == DepthComponent {
				dst[di] = depthByte(c.buf.Depth[src])
				continue
			}
			p := c.buf.Color[src]
			dst[di] = uint8(p.R * 255)
			dst[di+1] = uint8(p.G * 255)
			dst[di+2] = uint8(p.B * 255)
			if format == RGBA {
				dst[di+3] = uint8(p.A * 255)
			}
		}
	}
}

func (c *Context) readFloats(x, y, w, h, format, channels int, dst []float32) {
	for row := 0; row < h; row++ {
		sy := y + row
		if sy < 0 || sy >= c.h {
			continue
		}
		for col := 0; col < w; col++ {
			sx := x + col
			if sx < 0 || sx >= c.w {
				continue
			}
			src := sx + sy*c.w
			di := (col + row*w) * channels

			if format == DepthComponent {
				dst[di] = c.buf.Depth[src]
				continue
			}
			p := c.buf.Color[src]
			dst[di] = p.R
			dst[di+1] = p.G
			dst[di+2] = p.B
			if format == RGBA {
				dst[di+3] = p.A
			}
		}
	}
}

func (c *Context) readConsole(x, y, w, h int, dst []ConsolePixel) {
	for row := 0; row < h; row++ {
		sy := y + row
		if sy < 0 || sy >= c.h {
			continue
		}
		for col := 0; col < w; col++ {
			sx := x + col
			if sx < 0 || sx >= c.w {
				continue
			}
			p := c.buf.Color[sx+sy*c.w]

			var sym, col16 uint16
			if c.slowColor {
				sym, col16 = classify.Slow(p.R, p.G, p.B)
			} else {
				sym, col16 = classify.HSV(p.R, p.G, p.B)
			}
			dst[col+row*w] = ConsolePixel{Char: sym, Attr: col16}
		}
	}
}

// depthByte maps a depth value to [0,255], clamping out-of-range values
// (the clear default of -1 would otherwise wrap).
func depthByte(d float32) uint8 {
	v := d * 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
