package consolegl

import (
	"github.com/go-gl/mathgl/mgl32"

	"consolegl/internal/raster"
)

const modeIdle = -1

// Context is one rasterization context. It owns its framebuffer, depth
// buffer, matrices, texture table, and error latch. A Context must not be
// shared between goroutines; give each goroutine its own.
type Context struct {
	w, h int
	buf  *raster.Buffer

	matModelView mgl32.Mat4
	matProj      mgl32.Mat4
	curMatrix    *mgl32.Mat4

	errCode int

	clearColor raster.Pixel
	clearDepth float32

	mode     int
	curColor raster.Pixel
	curUV    mgl32.Vec2
	verts    []raster.Vertex

	textures   []*raster.Texture
	curTexture int

	depthEnabled   bool
	cullingEnabled bool
	textureEnabled bool
	slowColor      bool
}

// New creates a context with a w×h framebuffer. The framebuffer starts
// filled with the clear color (opaque black); the clear depth starts at
// -1, matching the smaller-is-closer depth convention.
func New(w, h int) *Context {
	c := &Context{
		w:            w,
		h:            h,
		matModelView: mgl32.Ident4(),
		matProj:      mgl32.Ident4(),
		clearColor:   raster.PixelFromFloats(0, 0, 0, 1),
		clearDepth:   -1,
		mode:         modeIdle,
		curColor:     raster.PixelFromFloats(1, 1, 1, 1),
		curTexture:   -1,
	}
	c.curMatrix = &c.matModelView
	c.buf = raster.NewBuffer(w, h, c.clearColor)
	return c
}

// setError latches err unless an error is already pending: the latch
// keeps the first error since the last read and drops later ones.
func (c *Context) setError(err int) {
	if c.errCode == NoError {
		c.errCode = err
	}
}

func (c *Context) recording() bool {
	return c.mode != modeIdle
}

// beginCheck guards operations that are illegal between Begin and End.
// It reports whether the caller may proceed.
func (c *Context) beginCheck() bool {
	if c.recording() {
		c.setError(InvalidOperation)
		return false
	}
	return true
}

// GetError takes and clears the error latch. While recording it reports
// NoError without disturbing the latch.
func (c *Context) GetError() int {
	if c.recording() {
		return NoError
	}
	err := c.errCode
	c.errCode = NoError
	return err
}

// GetString reports a static property string. Unknown names latch
// InvalidEnum and report the empty string.
func (c *Context) GetString(name int) string {
	switch name {
	case Vendor:
		return "consolegl"
	case Renderer:
		return "Software Based (Go)"
	case Version:
		return "OpenGL 1.1 CONSOLE"
	case Extensions:
		return "EXT_CON"
	default:
		c.setError(InvalidEnum)
		return ""
	}
}

// Enable turns a capability on.
func (c *Context) Enable(capability int) {
	c.setCapability(capability, true)
}

// Disable turns a capability off.
func (c *Context) Disable(capability int) {
	c.setCapability(capability, false)
}

func (c *Context) setCapability(capability int, on bool) {
	if !c.beginCheck() {
		return
	}
	switch capability {
	case DepthTest:
		c.depthEnabled = on
	case CullFace:
		c.cullingEnabled = on
	case Texture2D:
		c.textureEnabled = on
	case SlowColor:
		c.slowColor = on
	default:
		c.setError(InvalidEnum)
	}
}

// ClearColor sets the color the framebuffer is filled with by Clear.
// Channels are clamped to [0,1].
func (c *Context) ClearColor(r, g, b, a float32) {
	if !c.beginCheck() {
		return
	}
	c.clearColor = raster.PixelFromFloats(r, g, b, a)
}

// ClearDepth sets the value the depth buffer is filled with by Clear.
func (c *Context) ClearDepth(depth float32) {
	if !c.beginCheck() {
		return
	}
	c.clearDepth = depth
}

// Clear fills the buffers selected by mask. Bits outside
// ColorBufferBit|DepthBufferBit latch InvalidValue.
func (c *Context) Clear(mask int) {
	if !c.beginCheck() {
		return
	}
	if mask&^(ColorBufferBit|DepthBufferBit) != 0 {
		c.setError(InvalidValue)
		return
	}

	if mask&ColorBufferBit != 0 {
		c.buf.FillColor(c.clearColor)
	}
	if mask&DepthBufferBit != 0 {
		c.buf.FillDepth(c.clearDepth)
	}
}

// Width reports the framebuffer width in pixels.
func (c *Context) Width() int { return c.w }

// Height reports the framebuffer height in pixels.
func (c *Context) Height() int { return c.h }

// boundTexture returns the texture the current binding refers to, or nil.
func (c *Context) boundTexture() *raster.Texture {
	if c.curTexture < 0 || c.curTexture >= len(c.textures) {
		return nil
	}
	return c.textures[c.curTexture]
}
