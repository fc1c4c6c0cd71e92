// Command spin renders a spinning cube into the terminal through the
// console-pixel readback path. Each frame is classified into shade glyphs
// and 16-color attributes, then written as ANSI escapes.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"consolegl"
	"consolegl/internal/config"
	"consolegl/internal/term"
	"consolegl/internal/texfile"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Console width in cells (default: 120)")
	height := flag.Int("height", 0, "Console height in cells (default: 80)")
	fps := flag.Int("fps", 0, "Target frames per second (default: 30)")
	seconds := flag.Int("seconds", 10, "How long to run")
	texture := flag.String("texture", "", "Image file to map onto the cube")
	slow := flag.Bool("slow", false, "Use the exhaustive color classifier")

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
		Width:   *width,
		Height:  *height,
		FPS:     *fps,
		Texture: *texture,
	})

	ctx := consolegl.New(cfg.Width, cfg.Height)
	ctx.Enable(consolegl.DepthTest)
	ctx.Enable(consolegl.CullFace)
	if *slow {
		ctx.Enable(consolegl.SlowColor)
	}
	ctx.ClearDepth(1)

	if cfg.Texture != "" {
		if err := uploadTexture(ctx, cfg.Texture); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
		ctx.Enable(consolegl.Texture2D)
	}

	ctx.MatrixMode(consolegl.Projection)
	ctx.Perspective(math.Pi/3, float32(cfg.Width)/float32(cfg.Height), 0.1, 100)

	cells := make([]consolegl.ConsolePixel, cfg.Width*cfg.Height)

	term.HideCursor(os.Stdout)
	defer term.ShowCursor(os.Stdout)

	start := time.Now()
	deadline := start.Add(time.Duration(*seconds) * time.Second)
	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for now := range ticker.C {
		if now.After(deadline) {
			break
		}

		drawFrame(ctx, float32(now.Sub(start).Seconds()))

		ctx.ReadPixels(0, 0, cfg.Width, cfg.Height,
			consolegl.ConsolePixelFormat, consolegl.ConsolePixelType, cells)
		if err := ctx.GetError(); err != consolegl.NoError {
			fmt.Fprintf(os.Stderr, "Render error: 0x%04X\n", err)
			os.Exit(1)
		}

		term.HomeCursor(os.Stdout)
		if err := term.WriteFrame(os.Stdout, cells, cfg.Width, cfg.Height); err != nil {
			fmt.Fprintf(os.Stderr, "Write error: %v\n", err)
			os.Exit(1)
		}
	}
}

func uploadTexture(ctx *consolegl.Context, path string) error {
	img, err := texfile.Load(path)
	if err != nil {
		return err
	}

	ids := make([]int, 1)
	ctx.GenTextures(1, ids)
	ctx.BindTexture(consolegl.Texture2D, ids[0])
	ctx.TexImage2D(consolegl.Texture2D, img.W, img.H, consolegl.Byte, img.Pixels)
	return nil
}

func drawFrame(ctx *consolegl.Context, angle float32) {
	ctx.Clear(consolegl.ColorBufferBit | consolegl.DepthBufferBit)

	ctx.MatrixMode(consolegl.ModelView)
	ctx.LookAt(0, 1.5, 4, 0, 0, 0, 0, 1, 0)
	ctx.Rotate(angle, 0, 1, 0)
	ctx.Rotate(angle/3, 1, 0, 0)

	drawCube(ctx)
}

// cubeFaces lists each face counter-clockwise as seen from outside, so
// back faces cull away from any viewpoint.
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
