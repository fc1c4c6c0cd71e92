package consolegl

import (
	"github.com/go-gl/mathgl/mgl32"

	"consolegl/internal/raster"
)

// Begin enters recording with the given primitive mode and empties the
// in-flight vertex buffer. Unknown modes latch InvalidEnum.
func (c *Context) Begin(mode int) {
	if !c.beginCheck() {
		return
	}
	switch mode {
	case Points, Lines, Triangles, Quads:
		c.mode = mode
		c.verts = c.verts[:0]
	default:
		c.setError(InvalidEnum)
	}
}

// Color4 updates the vertex color latch. Channels are clamped to [0,1].
// The latch persists across vertices and across Begin/End boundaries.
func (c *Context) Color4(r, g, b, a float32) {
	c.curColor = raster.PixelFromFloats(r, g, b, a)
}

// Color3 updates the vertex color latch with alpha 1.
func (c *Context) Color3(r, g, b float32) {
	c.Color4(r, g, b, 1)
}

// TexCoord2 updates the texture coordinate latch.
func (c *Context) TexCoord2(u, v float32) {
	c.curUV = mgl32.Vec2{u, v}
}

// Vertex3 appends a vertex capturing the current latches. Emitting a
// vertex while idle latches InvalidOperation.
func (c *Context) Vertex3(x, y, z float32) {
	if !c.recording() {
		c.setError(InvalidOperation)
		return
	}
	c.verts = append(c.verts, raster.Vertex{
		Pos:   mgl32.Vec3{x, y, z},
		UV:    c.curUV,
		Color: c.curColor,
	})
}

// Vertex2 appends a vertex at depth 1.
func (c *Context) Vertex2(x, y float32) {
	c.Vertex3(x, y, 1)
}

// End flushes the recorded vertices through the transform pipeline and
// rasterizes them, then returns the context to idle. Calling End while
// idle latches InvalidOperation.
//
// The pipeline, in order: the modelview transform rewrites every position;
// with culling enabled, each face leader gets its back-face flag from the
// post-modelview positions; the projection transform, perspective divide,
// and viewport mapping produce window coordinates; finally primitives are
// assembled by mode and dispatched. Incomplete trailing primitives are
// dropped.
func (c *Context) End() {
	if !c.recording() {
		c.setError(InvalidOperation)
		return
	}
	verts := c.verts

	for i := range verts {
		eye := c.matModelView.Mul4x1(verts[i].Pos.Vec4(1))
		verts[i].Pos = eye.Vec3()
	}

	if c.cullingEnabled {
		var stride int
		switch c.mode {
		case Triangles:
			stride = 3
		case Quads:
			stride = 4
		}
		if stride > 0 {
			for i := 0; i+stride <= len(verts); i += stride {
				side1 := verts[i].Pos.Sub(verts[i+1].Pos)
				side2 := verts[i].Pos.Sub(verts[i+2].Pos)
				normal := side1.Cross(side2)
				verts[i].Front = normal.Dot(verts[i].Pos) <= 0
			}
		}
	}

	fw, fh := float32(c.w), float32(c.h)
	for i := range verts {
		clip := c.matProj.Mul4x1(verts[i].Pos.Vec4(1))
		w := clip.W()
		nx, ny, nz := clip.X()/w, clip.Y()/w, clip.Z()/w
		verts[i].Pos = mgl32.Vec3{
			(nx + 1) / 2 * fw,
			(1 - ny) / 2 * fh,
			nz,
		}
	}

	st := &raster.State{
		DepthTest: c.depthEnabled,
		Culling:   c.cullingEnabled,
		Texturing: c.textureEnabled,
		Tex:       c.boundTexture(),
	}

	switch c.mode {
	case Points:
		for i := 0; i < len(verts); i++ {
			raster.DrawPoint(c.buf, st, verts[i])
		}
	case Lines:
		for i := 0; i+1 < len(verts); i += 2 {
			raster.DrawLine(c.buf, st, verts[i], verts[i+1])
		}
	case Triangles:
		for i := 0; i+2 < len(verts); i += 3 {
			raster.DrawTriangle(c.buf, st, verts[i], verts[i+1], verts[i+2])
		}
	case Quads:
		for i := 0; i+3 < len(verts); i += 4 {
			raster.DrawQuad(c.buf, st, verts[i], verts[i+1], verts[i+2], verts[i+3])
		}
	}

	c.mode = modeIdle
	c.verts = c.verts[:0]
}
