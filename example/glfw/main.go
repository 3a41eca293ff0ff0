// Example glfw opens a spreadsheet window backed by the OpenGL renderer.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell                   # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/glfw/         # run this example
//	go run ./example/glfw/ -dark -config grid.toml -verbose
//
// Click, shift-click and drag to select; double-click or type to edit; drag
// a header edge to resize. See the sheet package docs for the key map.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/sheet"
	"github.com/go-theft-auto/sheet/backend/opengl"
)

const (
	windowWidth  = 1024
	windowHeight = 720
	windowTitle  = "sheet"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML grid config")
	dark := flag.Bool("dark", false, "use the dark style")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	sheet.SetVerbose(*verbose)
	if err := run(*configPath, *dark); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, dark bool) error {
	cfg := sheet.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = sheet.LoadConfig(configPath); err != nil {
			return err
		}
	}
	style := sheet.DefaultStyle()
	if dark {
		style = sheet.DarkStyle()
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		renderer.Resize(w, h)
	})

	// The title tracks the range the grid asks us to draw.
	host := sheet.HostFunc(func(r sheet.VisibleRange) {
		window.SetTitle(fmt.Sprintf("%s  %s%d:%s%d", windowTitle,
			sheet.ColumnLabel(r.ColStart), r.RowStart+1, sheet.ColumnLabel(r.ColEnd), r.RowEnd+1))
	})

	grid, err := sheet.New(cfg,
		sheet.WithHost(host),
		sheet.WithClipboardProvider(opengl.GLFWClipboard{Window: window}),
	)
	if err != nil {
		return err
	}
	input := opengl.NewGLFWAdapter(window, grid)
	input.SetFontTexture(renderer.FontTextureID())

	for !window.ShouldClose() {
		glfw.PollEvents()
		grid.Tick()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// Double buffering means every frame is redrawn, not only those
		// the host was told about.
		dl := sheet.AcquireDrawList()
		sheet.DrawGrid(dl, grid, style, input.Frame())
		sheet.DrawEditor(dl, grid, style, input.Frame(), input.EditText())
		err := renderer.Render(dl)
		sheet.ReleaseDrawList(dl)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}
	return nil
}
