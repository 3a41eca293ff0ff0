// Command gen renders the grid in a few sample states, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/sheet"
	"github.com/go-theft-auto/sheet/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single grid screenshot to capture.
type screenshot struct {
	name   string            // filename without extension
	width  int               // viewport width
	height int               // viewport height
	style  sheet.Style       // zero value means sheet.DefaultStyle
	setup  func(*sheet.Grid) // puts the grid into the state to show
	edit   string            // editor text drawn over the editing cell
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("grid renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection: the hidden window stays at 800x600,
	// larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh grid per screenshot to avoid state leaking between captures.
	g, err := sheet.New(sheet.DefaultConfig())
	if err != nil {
		return err
	}
	frame := sheet.Frame{
		Size:      sheet.Vec2{X: float32(s.width), Y: float32(s.height)},
		FontTexID: renderer.FontTextureID(),
	}
	body := frame.Body(g.Config())
	g.OnViewportChanged(0, 0, body.W, body.H)
	fillSample(g)
	if s.setup != nil {
		s.setup(g)
	}
	g.Tick()

	style := s.style
	if style == (sheet.Style{}) {
		style = sheet.DefaultStyle()
	}

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	dl := sheet.AcquireDrawList()
	sheet.DrawGrid(dl, g, style, frame)
	sheet.DrawEditor(dl, g, style, frame, s.edit)
	err = renderer.Render(dl)
	sheet.ReleaseDrawList(dl)
	if err != nil {
		return err
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// fillSample writes a small quarterly table into the top-left corner.
func fillSample(g *sheet.Grid) {
	header := []string{"Region", "Q1", "Q2", "Q3", "Q4"}
	for c, v := range header {
		_ = g.SetCell(0, c, v)
	}
	regions := []string{"North", "South", "East", "West", "Central"}
	for r, name := range regions {
		_ = g.SetCell(r+1, 0, name)
		for q := 1; q <= 4; q++ {
			_ = g.SetCell(r+1, q, strconv.Itoa(100+r*37+q*13))
		}
	}
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "grid", width: 640, height: 360},
		{
			name: "selection", width: 640, height: 360,
			setup: func(g *sheet.Grid) {
				g.OnPointerDown(1, 1, sheet.Modifiers{}, false)
				g.OnPointerDown(3, 3, sheet.Modifiers{Shift: true}, false)
				g.OnPointerDown(5, 0, sheet.Modifiers{Ctrl: true}, false)
			},
		},
		{
			name: "headers", width: 640, height: 360,
			setup: func(g *sheet.Grid) {
				g.SelectColumn(2, false)
				g.SelectRow(4, true)
			},
		},
		{
			name: "editing", width: 640, height: 360,
			setup: func(g *sheet.Grid) {
				g.OnPointerDown(2, 2, sheet.Modifiers{}, true)
			},
			edit: "240",
		},
		{
			name: "dark", width: 640, height: 360,
			style: sheet.DarkStyle(),
			setup: func(g *sheet.Grid) {
				g.SelectRange(1, 1, 5, 4)
			},
		},
	}
}
