package raster

import "math"

// DrawLine rasterizes an integer Bresenham line from the floor of p1 to
// the ceiling of p2. The interpolation parameter at each step is the
// remaining distance along the dominant axis over the total dominant
// distance, so attributes blend from p2 at the far end back to p1 at the
// start. Lines ignore face culling.
func DrawLine(b *Buffer, st *State, p1, p2 Vertex) {
	x0 := int(math.Floor(float64(p1.Pos.X())))
	y0 := int(math.Floor(float64(p1.Pos.Y())))
	x1 := int(math.Ceil(float64(p2.Pos.X())))
	y1 := int(math.Ceil(float64(p2.Pos.Y())))

	dx := iabs(x1 - x0)
	dy := iabs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	e := dx - dy

	tot := dx
	if dy > tot {
		tot = dy
	}

	tex := st.texture()
	z1, z2 := p1.Pos.Z(), p2.Pos.Z()
	persp := z1 != 0 && z2 != 0

	for {
		var ic0 float32
		if tot > 0 {
			if dx > dy {
				ic0 = float32(iabs(x1-x0)) / float32(tot)
			} else {
				ic0 = float32(iabs(y1-y0)) / float32(tot)
			}
		}
		ic1 := 1 - ic0

		if o := x0 + y0*b.W; o >= 0 && o < len(b.Color) {
			var z float32
			if persp {
				z = 1 / (ic0/z1 + ic1/z2)
			} else {
				z = ic0*z1 + ic1*z2
			}

			write := true
			if st.DepthTest {
				if z > b.Depth[o] {
					write = false
				} else {
					b.Depth[o] = z
				}
			}

			if write {
				var frag Pixel
				if persp {
					frag = Pixel{
						R: (ic0*p1.Color.R/z1 + ic1*p2.Color.R/z2) * z,
						G: (ic0*p1.Color.G/z1 + ic1*p2.Color.G/z2) * z,
						B: (ic0*p1.Color.B/z1 + ic1*p2.Color.B/z2) * z,
						A: (ic0*p1.Color.A/z1 + ic1*p2.Color.A/z2) * z,
					}
				} else {
					frag = Pixel{
						R: ic0*p1.Color.R + ic1*p2.Color.R,
						G: ic0*p1.Color.G + ic1*p2.Color.G,
						B: ic0*p1.Color.B + ic1*p2.Color.B,
						A: ic0*p1.Color.A + ic1*p2.Color.A,
					}
				}

				if tex != nil {
					var u, v float32
					if persp {
						u = (ic0*p1.UV.X()/z1 + ic1*p2.UV.X()/z2) * z
						v = (ic0*p1.UV.Y()/z1 + ic1*p2.UV.Y()/z2) * z
					} else {
						u = ic0*p1.UV.X() + ic1*p2.UV.X()
						v = ic0*p1.UV.Y() + ic1*p2.UV.Y()
					}
					frag = frag.Modulate(tex.Sample(u, v))
				}

				b.Color[o] = frag
			}
		}

		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x0 += sx
		}
		if e2 < dx {
			e += dx
			y0 += sy
		}
	}
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
