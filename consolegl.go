// Package consolegl is a fixed-function, immediate-mode software rasterizer
// that renders into an in-memory RGBA framebuffer with a parallel depth
// buffer. Primitives are emitted between Begin and End calls against a
// per-goroutine Context; the framebuffer can be read back as raw bytes,
// floats, or classified console cells (one shade glyph plus a 16-color
// foreground/background attribute per pixel) suitable for a text terminal.
//
// The constants below carry the traditional numeric codes so the API can
// stand in for a minimal subset of a well-known rasterization API.
package consolegl

// Begin modes.
const (
	Points    = 0x0000
	Lines     = 0x0001
	Triangles = 0x0004
	Quads     = 0x0007
)

// Error codes returned by GetError.
const (
	NoError          = 0x0000
	InvalidEnum      = 0x0500
	InvalidValue     = 0x0501
	InvalidOperation = 0x0502
)

// Capabilities for Enable and Disable. SlowColor selects the exhaustive
// console color classifier during console-format readback.
const (
	DepthTest = 0x0B71
	CullFace  = 0x0B44
	Texture2D = 0x0DE1
	SlowColor = 0x0C00
)

// Component types for texture upload and readback. ConsolePixelType is
// only valid together with ConsolePixelFormat.
const (
	Byte             = 0x1400
	Float            = 0x1406
	ConsolePixelType = 0x1500
)

// Matrix selectors for MatrixMode.
const (
	ModelView  = 0x1700
	Projection = 0x1707
)

// Pixel formats for ReadPixels.
const (
	DepthComponent     = 0x1902
	RGB                = 0x1907
	RGBA               = 0x1908
	ConsolePixelFormat = 0x2000
)

// Buffer selection bits for Clear.
const (
	DepthBufferBit = 0x0100
	ColorBufferBit = 0x0400
)

// String identifiers for GetString.
const (
	Vendor     = 0x0000
	Renderer   = 0x0001
	Version    = 0x0002
	Extensions = 0x0003
)

// ConsolePixel is one classified framebuffer cell: a shade glyph code unit
// and a packed color attribute. The low nibble of Attr is the foreground
// palette index, the next nibble the background index.
type ConsolePixel struct {
	Char uint16
	Attr uint16
}
