package raster

import "math"

// DrawPoint rasterizes a single vertex at its floored window position.
// Interpolation weights are trivial, so the latched color and texcoord
// are used directly.
func DrawPoint(b *Buffer, st *State, p Vertex) {
	o := int(math.Floor(float64(p.Pos.X()))) + int(math.Floor(float64(p.Pos.Y())))*b.W
	if o < 0 || o >= len(b.Color) {
		return
	}

	if st.DepthTest {
		d := p.Pos.Z()
		if d > b.Depth[o] {
			return
		}
		b.Depth[o] = d
	}

	frag := p.Color
	if tex := st.texture(); tex != nil {
		frag = frag.Modulate(tex.Sample(p.UV.X(), p.UV.Y()))
	}

	b.Color[o] = frag
}
