package raster

import "math"

// DrawTriangle rasterizes a triangle by scanning the integer bounding box
// of the floored window positions and testing barycentric weights against
// the inclusive [0,1] range. Attributes interpolate perspective-correct
// (in 1/z); when any vertex has zero view depth the interpolation falls
// back to plain barycentric blending, since the reciprocal form is
// undefined there.
//
// This is the hot path: the inner loop allocates nothing.
func DrawTriangle(b *Buffer, st *State, p1, p2, p3 Vertex) {
	if st.Culling && !p1.Front {
		return
	}

	x1 := int(math.Floor(float64(p1.Pos.X())))
	x2 := int(math.Floor(float64(p2.Pos.X())))
	x3 := int(math.Floor(float64(p3.Pos.X())))
	y1 := int(math.Floor(float64(p1.Pos.Y())))
	y2 := int(math.Floor(float64(p2.Pos.Y())))
	y3 := int(math.Floor(float64(p3.Pos.Y())))

	minX := imin(x1, imin(x2, x3))
	minY := imin(y1, imin(y2, y3))
	maxX := imax(x1, imax(x2, x3))
	maxY := imax(y1, imax(y2, y3))

	den := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
	if den == 0 {
		return
	}
	factor := 1 / float32(den)

	tex := st.texture()
	z1, z2, z3 := p1.Pos.Z(), p2.Pos.Z(), p3.Pos.Z()
	persp := z1 != 0 && z2 != 0 && z3 != 0

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			ic0 := float32((y2-y3)*(x-x3)+(x3-x2)*(y-y3)) * factor
			if ic0 < 0 || ic0 > 1 {
				continue
			}
			ic1 := float32((y3-y1)*(x-x3)+(x1-x3)*(y-y3)) * factor
			if ic1 < 0 || ic1 > 1 {
				continue
			}
			ic2 := 1 - ic0 - ic1
			if ic2 < 0 || ic2 > 1 {
				continue
			}

			o := x + y*b.W
			if o < 0 || o >= len(b.Color) {
				continue
			}

			var z float32
			if persp {
				z = 1 / (ic0/z1 + ic1/z2 + ic2/z3)
			} else {
				z = ic0*z1 + ic1*z2 + ic2*z3
			}

			if st.DepthTest {
				if z > b.Depth[o] {
					continue
				}
				b.Depth[o] = z
			}

			var frag Pixel
			if persp {
				frag = Pixel{
					R: (ic0*p1.Color.R/z1 + ic1*p2.Color.R/z2 + ic2*p3.Color.R/z3) * z,
					G: (ic0*p1.Color.G/z1 + ic1*p2.Color.G/z2 + ic2*p3.Color.G/z3) * z,
					B: (ic0*p1.Color.B/z1 + ic1*p2.Color.B/z2 + ic2*p3.Color.B/z3) * z,
					A: (ic0*p1.Color.A/z1 + ic1*p2.Color.A/z2 + ic2*p3.Color.A/z3) * z,
				}
			} else {
				frag = Pixel{
					R: ic0*p1.Color.R + ic1*p2.Color.R + ic2*p3.Color.R,
					G: ic0*p1.Color.G + ic1*p2.Color.G + ic2*p3.Color.G,
					B: ic0*p1.Color.B + ic1*p2.Color.B + ic2*p3.Color.B,
					A: ic0*p1.Color.A + ic1*p2.Color.A + ic2*p3.Color.A,
				}
			}

			if tex != nil {
				var u, v float32
				if persp {
					u = (ic0*p1.UV.X()/z1 + ic1*p2.UV.X()/z2 + ic2*p3.UV.X()/z3) * z
					v = (ic0*p1.UV.Y()/z1 + ic1*p2.UV.Y()/z2 + ic2*p3.UV.Y()/z3) * z
				} else {
					u = ic0*p1.UV.X() + ic1*p2.UV.X() + ic2*p3.UV.X()
					v = ic0*p1.UV.Y() + ic1*p2.UV.Y() + ic2*p3.UV.Y()
				}
				frag = frag.Modulate(tex.Sample(u, v))
			}

			b.Color[o] = frag
		}
	}
}

// DrawQuad splits a quad into the triangles (p1,p2,p3) and (p3,p4,p1).
// The split shares an edge, so pixels on it may be shaded twice with the
// second write winning. The second triangle's leader flag is forced on so
// the per-face cull decision is not re-evaluated against it.
func DrawQuad(b *Buffer, st *State, p1, p2, p3, p4 Vertex) {
	if st.Culling {
		if !p1.Front {
			return
		}
		p3.Front = true
	}

	DrawTriangle(b, st, p1, p2, p3)
	DrawTriangle(b, st, p3, p4, p1)
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
