// Command orbit renders a full camera orbit around a cube into WebP
// frames. Frames render in parallel: contexts are single-goroutine, so
// each worker owns one, sized for supersampling, and the result is
// downsampled before encoding.
package main

import (
	"flag"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"consolegl"
	"consolegl/internal/config"
	"consolegl/internal/postprocess"
	"consolegl/internal/texfile"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	frames := flag.Int("frames", 0, "Number of orbit frames (default: 72)")
	size := flag.Int("size", 0, "Output frame size in pixels (default: 256)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	texture := flag.String("texture", "", "Image file to map onto the cube")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Frames:      *frames,
		Size:        *size,
		Supersample: *supersample,
		Workers:     *workers,
		OutputDir:   *outputDir,
		Texture:     *texture,
	})

	var tex *texfile.Image
	if cfg.Texture != "" {
		var err error
		tex, err = texfile.Load(cfg.Texture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %d frames at %d px (%dx supersampled) with %d workers\n",
		cfg.Frames, cfg.Size, cfg.Supersample, cfg.Workers)

	start := time.Now()
	errs := run(cfg, tex)

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  %v\n", err)
		}
	}
	fmt.Printf("Done: %d ok, %d failed in %.1fs\n",
		cfg.Frames-failed, failed, time.Since(start).Seconds())
	if failed > 0 {
		os.Exit(1)
	}
}

// run renders every frame using a worker pool and reports one error slot
// per frame.
func run(cfg config.Config, tex *texfile.Image) []error {
	errs := make([]error, cfg.Frames)
	var processed atomic.Int64

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Printf("  [%d/%d]\n", processed.Load(), cfg.Frames)
			}
		}
	}()

	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := newRenderContext(cfg, tex)
			for idx := range frameChan {
				errs[idx] = renderFrame(ctx, cfg, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < cfg.Frames; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return errs
}

func newRenderContext(cfg config.Config, tex *texfile.Image) *consolegl.Context {
	renderSize := cfg.Size * cfg.Supersample

	ctx := consolegl.New(renderSize, renderSize)
	ctx.Enable(consolegl.DepthTest)
	ctx.Enable(consolegl.CullFace)
	ctx.ClearDepth(1)
	ctx.ClearColor(0.1, 0.1, 0.12, 1)

	if tex != nil {
		ids := make([]int, 1)
		ctx.GenTextures(1, ids)
		ctx.BindTexture(consolegl.Texture2D, ids[0])
		ctx.TexImage2D(consolegl.Texture2D, tex.W, tex.H, consolegl.Byte, tex.Pixels)
		ctx.Enable(consolegl.Texture2D)
	}

	ctx.MatrixMode(consolegl.Projection)
	ctx.Perspective(math.Pi/3, 1, 0.1, 100)

	return ctx
}

func renderFrame(ctx *consolegl.Context, cfg config.Config, idx int) error {
	angle := 2 * math.Pi * float64(idx) / float64(cfg.Frames)
	eyeX := float32(4 * math.Sin(angle))
	eyeZ := float32(4 * math.Cos(angle))

	ctx.Clear(consolegl.ColorBufferBit | consolegl.DepthBufferBit)
	ctx.MatrixMode(consolegl.ModelView)
	ctx.LookAt(eyeX, 1.5, eyeZ, 0, 0, 0, 0, 1, 0)
	drawCube(ctx)

	renderSize := ctx.Width()
	data := make([]uint8, renderSize*renderSize*4)
	ctx.ReadPixels(0, 0, renderSize, renderSize,
		consolegl.RGBA, consolegl.Byte, data)
	if err := ctx.GetError(); err != consolegl.NoError {
		return fmt.Errorf("frame %d: render error 0x%04X", idx, err)
	}

	img := &image.NRGBA{
		Pix:    data,
		Stride: renderSize * 4,
		Rect:   image.Rect(0, 0, renderSize, renderSize),
	}
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Size, cfg.Size)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%03d.webp", idx))
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("frame %d: %w", idx, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("frame %d: WebP encode: %w", idx, err)
	}

	return nil
}

var cubeFaces = [6][4][3]float32{
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},     // +z
	{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, // -z
	{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},     // +x
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, // -x
	{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},     // +y
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, // -y
}

var faceColors = [6][3]float32{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 0},
	{0, 1, 1},
	{1, 0, 1},
}

var faceUVs = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func drawCube(ctx *consolegl.Context) {
	ctx.Begin(consolegl.Quads)
	for f, face := range cubeFaces {
		ctx.Color3(faceColors[f][0], faceColors[f][1], faceColors[f][2])
		for v, pos := range face {
			ctx.TexCoord2(faceUVs[v][0], faceUVs[v][1])
			ctx.Vertex3(pos[0], pos[1], pos[2])
		}
	}
	ctx.End()
}
