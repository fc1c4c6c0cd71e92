package raster

import "testing"

func TestPixelFromFloatsClamps(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float32
		want       Pixel
	}{
		{"in range", 0.25, 0.5, 0.75, 1, Pixel{0.25, 0.5, 0.75, 1}},
		{"below zero", -0.5, -1, 0, 1, Pixel{0, 0, 0, 1}},
		{"above one", 1.5, 2, 1, 3, Pixel{1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PixelFromFloats(tt.r, tt.g, tt.b, tt.a)
			if got != tt.want {
				t.Errorf("PixelFromFloats(%v, %v, %v, %v) = %+v, want %+v",
					tt.r, tt.g, tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestPixelFromBytes(t *testing.T) {
	p := PixelFromBytes(255, 0, 128, 255)
	if p.R != 1 || p.G != 0 || p.A != 1 {
		t.Errorf("PixelFromBytes(255, 0, 128, 255) = %+v", p)
	}
	if p.B < 0.5 || p.B > 0.51 {
		t.Errorf("blue channel = %v, want ~0.502", p.B)
	}
}

func TestPixelFromWord(t *testing.T) {
	tests := []struct {
		name string
		word uint32
		want Pixel
	}{
		{"opaque red", 0xFF0000FF, Pixel{1, 0, 0, 1}},
		{"opaque white", 0xFFFFFFFF, Pixel{1, 1, 1, 1}},
		{"transparent black", 0x00000000, Pixel{0, 0, 0, 0}},
		{"opaque blue", 0x0000FFFF, Pixel{0, 0, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelFromWord(tt.word); got != tt.want {
				t.Errorf("PixelFromWord(%#08x) = %+v, want %+v", tt.word, got, tt.want)
			}
		})
	}
}

func TestModulate(t *testing.T) {
	white := Pixel{1, 1, 1, 1}
	tex := Pixel{1, 0.5, 0, 1}
	if got := white.Modulate(tex); got != tex {
		t.Errorf("white.Modulate(%+v) = %+v", tex, got)
	}
}

func TestTextureSampleWrap(t *testing.T) {
	// 2×1 texture: texel 0 red, texel 1 green.
	tex := &Texture{
		W: 2, H: 1,
		Pixels: []Pixel{{1, 0, 0, 1}, {0, 1, 0, 1}},
	}

	tests := []struct {
		name string
		u, v float32
		want Pixel
	}{
		{"first texel", 0, 0, Pixel{1, 0, 0, 1}},
		{"second texel", 0.5, 0, Pixel{0, 1, 0, 1}},
		{"wrap past one", 1.25, 0, Pixel{1, 0, 0, 1}},
		// floor(-0.25*2) = -1, floor-mod 2 = 1: negative coordinates
		// wrap into range rather than mirroring the truncated sign.
		{"wrap negative", -0.25, 0, Pixel{0, 1, 0, 1}},
		{"wrap negative full", -1, 0, Pixel{1, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.Sample(tt.u, tt.v); got != tt.want {
				t.Errorf("Sample(%v, %v) = %+v, want %+v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{5, 4, 1},
		{-1, 4, 3},
		{-4, 4, 0},
		{-5, 4, 3},
		{0, 4, 0},
	}
	for _, tt := range tests {
		if got := floorMod(tt.i, tt.n); got != tt.want {
			t.Errorf("floorMod(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
