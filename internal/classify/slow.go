package classify

// slowSkipThreshold gates the mid-shade candidates: while the running
// best squared distance (8-bit channel space) is above it, only the
// extreme shades are evaluated.
const slowSkipThreshold = 5000

var shadeGlyph = [4]uint16{Quarter, Half, ThreeQuarters, Solid}

// Slow classifies by exhaustive search over every foreground color,
// background color, and shade ratio, minimizing the squared distance
// between the blend (shade*fg + (4-shade)*bg)/4 and the pixel. It is a
// pure quality/cost trade-off over HSV and never touches the framebuffer.
func Slow(r, g, b float32) (sym uint16, col uint16) {
	pr := int(r * 255)
	pg := int(g * 255)
	pb := int(b * 255)

	best := int(^uint(0) >> 1)
	var bestSym, bestCol uint16

	for fg := 0; fg < 16; fg++ {
		for bg := 0; bg < 16; bg++ {
			for shade := 1; shade <= 4; shade++ {
				if shade > 1 && shade < 4 && best > slowSkipThreshold {
					continue
				}

				cr := (shade*int(Palette[fg][0]) + (4-shade)*int(Palette[bg][0])) / 4
				cg := (shade*int(Palette[fg][1]) + (4-shade)*int(Palette[bg][1])) / 4
				cb := (shade*int(Palette[fg][2]) + (4-shade)*int(Palette[bg][2])) / 4

				dr := cr - pr
				dg := cg - pg
				db := cb - pb
				d := dr*dr + dg*dg + db*db

				if d < best {
					best = d
					bestSym = shadeGlyph[shade-1]
					bestCol = attr(uint16(fg), uint16(bg))
				}
			}
		}
	}

	return bestSym, bestCol
}
