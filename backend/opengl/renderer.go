// Package opengl draws sheet DrawLists with OpenGL 4.1 and feeds GLFW input
// into a sheet.Grid.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/sheet"
)

// Renderer implements sheet.Renderer using OpenGL.
type Renderer struct {
	program   uint32
	vao, vbo  uint32
	ebo       uint32
	fontTex   uint32
	projLoc   int32
	texLoc    int32
	useTexLoc int32
	width     int
	height    int
}

var _ sheet.Renderer = (*Renderer)(nil)

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// The font atlas is single channel: R is coverage, RGB comes from the vertex.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D fontTexture;
uniform bool useTexture;

void main() {
    if (useTexture) {
        FragColor = vec4(Color.rgb, Color.a * texture(fontTexture, TexCoord).r);
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer creates a renderer for a framebuffer of the given size.
// Requires a current GL context with gl.Init already called.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{width: width, height: height}

	var err error
	r.program, err = linkProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("create shader: %w", err)
	}
	r.projLoc = gl.GetUniformLocation(r.program, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.program, gl.Str("fontTexture\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.program, gl.Str("useTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Pos (2 floats), TexCoord (2 floats), Color (normalized uint8x4)
	stride := int32(unsafe.Sizeof(sheet.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(sheet.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(sheet.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	r.fontTex = uploadFont()
	return r, nil
}

// FontTextureID returns the texture holding the bitmap font atlas.
func (r *Renderer) FontTextureID() uint32 { return r.fontTex }

// Resize updates the framebuffer size used for projection and scissoring.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render finalizes and draws dl. GL state touched by the renderer is
// restored afterwards so the host can mix its own drawing.
func (r *Renderer) Render(dl *sheet.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.program)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(sheet.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		box, ok := scissorBox(cmd.ClipRect, r.width, r.height)
		if !ok {
			continue
		}
		gl.Scissor(box[0], box[1], box[2], box[3])

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
		}
		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}
	gl.BindVertexArray(0)
	return nil
}

// Delete releases the GL objects owned by the renderer.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// scissorBox converts a top-left origin clip rect (x1, y1, x2, y2) into a GL
// scissor box (x, y, w, h) with a bottom-left origin, clamped to the
// framebuffer. ok is false when nothing remains visible.
func scissorBox(clip [4]float32, width, height int) (box [4]int32, ok bool) {
	x1 := max(clip[0], 0)
	y1 := max(clip[1], 0)
	x2 := min(clip[2], float32(width))
	y2 := min(clip[3], float32(height))
	if x2 <= x1 || y2 <= y1 {
		return box, false
	}
	return [4]int32{
		int32(x1),
		int32(float32(height) - y2),
		int32(x2 - x1),
		int32(y2 - y1),
	}, true
}

type glState struct {
	program            int32
	blendSrc, blendDst int32
	scissor            [4]int32
	blend, depth, cull bool
	scissorTest        bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissor[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.scissorTest = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	setEnabled(gl.BLEND, s.blend)
	setEnabled(gl.DEPTH_TEST, s.depth)
	setEnabled(gl.CULL_FACE, s.cull)
	setEnabled(gl.SCISSOR_TEST, s.scissorTest)
	gl.Scissor(s.scissor[0], s.scissor[1], s.scissor[2], s.scissor[3])
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, n+1)
		gl.GetProgramInfoLog(program, n, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", log)
	}
	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		log := make([]byte, n+1)
		gl.GetShaderInfoLog(shader, n, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", log)
	}
	return shader, nil
}

// orthoMatrix creates a column-major orthographic projection.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
