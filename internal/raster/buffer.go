package raster

// Buffer holds the render target as flat row-major slices for cache
// locality: one color plane and one depth plane, both of length W*H.
// Depth is "smaller is closer": a fragment is rejected when its depth
// exceeds the stored value.
type Buffer struct {
	W, H  int
	Color []Pixel
	Depth []float32
}

// NewBuffer allocates a buffer with every color pixel set to clear.
// The depth plane starts zeroed; callers clear it to their far value.
func NewBuffer(w, h int, clear Pixel) *Buffer {
	n := w * h
	b := &Buffer{
		W:     w,
		H:     h,
		Color: make([]Pixel, n),
		Depth: make([]float32, n),
	}
	for i := range b.Color {
		b.Color[i] = clear
	}
	return b
}

// FillColor sets every color pixel to p.
func (b *Buffer) FillColor(p Pixel) {
	for i := range b.Color {
		b.Color[i] = p
	}
}

// FillDepth sets every depth value to d.
func (b *Buffer) FillDepth(d float32) {
	for i := range b.Depth {
		b.Depth[i] = d
	}
}
