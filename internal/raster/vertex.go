package raster

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one recorded vertex. Pos starts in object space and is
// rewritten in place as the pipeline advances (eye space, then window
// coordinates with z holding normalized device depth).
//
// Front is only meaningful on the leader vertex of a face (index 0 of
// each 3- or 4-tuple): true means the face survived the back-face test
// and may be drawn. Rasterizers consult only the leader's flag.
type Vertex struct {
	Pos   mgl32.Vec3
	UV    mgl32.Vec2
	Color Pixel
	Front bool
}

// State is the slice of context state the rasterizers consult.
type State struct {
	DepthTest bool
	Culling   bool
	Texturing bool
	Tex       *Texture
}

// texture returns the sampler to use, or nil when texturing is off,
// nothing is bound, or the bound texture was never uploaded.
func (st *State) texture() *Texture {
	if !st.Texturing || st.Tex == nil || len(st.Tex.Pixels) == 0 {
		return nil
	}
	return st.Tex
}
