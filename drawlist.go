package sheet

import "sync"

// drawListPool provides efficient reuse of DrawList buffers.
// The visible cells are redrawn every frame, so buffers are recycled.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 4096),
			IdxBuffer: make([]uint16, 0, 8192),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// Renderer consumes a finished DrawList.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// maxCmdVertices is the most vertices a single command may address with
// 16-bit indices.
const maxCmdVertices = 0xFFFF

// DrawList accumulates draw commands for a frame.
// It batches primitives by texture and clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data, relative to each command's VertexOffset

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // Vertex offset for current command
	idxCmdOffset uint32 // Index offset for current command
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect pushes a new clip rectangle onto the stack.
// It is intersected with the current clip so nested regions never widen.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	cur := dl.currentClip
	dl.clipStack = append(dl.clipStack, cur)
	dl.currentClip = [4]float32{
		max(x1, cur[0]), max(y1, cur[1]),
		min(x2, cur[2]), min(y2, cur[3]),
	}
	dl.splitDraw()
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// ClipRect returns the current clip rectangle (x1, y1, x2, y2).
func (dl *DrawList) ClipRect() [4]float32 { return dl.currentClip }

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addQuad appends a quad and its two triangles.
func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+4 > maxCmdVertices {
		dl.splitDraw()
	}
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	dl.SetTexture(0)
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddBorder draws the sides of a rectangle selected by mask, inset by
// thickness so adjacent cells' borders meet without overlapping.
func (dl *DrawList) AddBorder(x, y, w, h float32, mask BorderMask, color uint32, thickness float32) {
	if mask&BorderTop != 0 {
		dl.AddRect(x, y, w, thickness, color)
	}
	if mask&BorderBottom != 0 {
		dl.AddRect(x, y+h-thickness, w, thickness, color)
	}
	if mask&BorderLeft != 0 {
		dl.AddRect(x, y, thickness, h, color)
	}
	if mask&BorderRight != 0 {
		dl.AddRect(x+w-thickness, y, thickness, h, color)
	}
}

// AddHLine draws a horizontal line of the given thickness.
func (dl *DrawList) AddHLine(x1, x2, y float32, color uint32, thickness float32) {
	dl.AddRect(x1, y, x2-x1, thickness, color)
}

// AddVLine draws a vertical line of the given thickness.
func (dl *DrawList) AddVLine(x, y1, y2 float32, color uint32, thickness float32) {
	dl.AddRect(x, y1, thickness, y2-y1, color)
}

// AddText draws text with the built-in bitmap font starting at (x, y), using
// fontTex for glyphs. Characters that would cross maxWidth are not drawn;
// maxWidth <= 0 means unlimited. It returns the drawn width.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, fontTex uint32, charWidth, charHeight, maxWidth float32) float32 {
	if color&0xFF000000 == 0 || len(text) == 0 || charWidth <= 0 {
		return 0
	}
	dl.SetTexture(fontTex)

	drawn := float32(0)
	for _, r := range text {
		if maxWidth > 0 && drawn+charWidth > maxWidth {
			break
		}
		char := r
		if char < 32 || char > 127 {
			char = '?'
		}

		// 16x6 grid of 8x8 glyphs for ASCII 32-127 in a 128x48 texture.
		idx := int(char - 32)
		col := float32(idx % 16)
		row := float32(idx / 16)
		u0 := col * 8 / 128
		v0 := row * 8 / 48
		u1 := (col + 1) * 8 / 128
		v1 := (row + 1) * 8 / 48

		px := x + drawn
		dl.addQuad(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + charWidth, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + charWidth, y + charHeight}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + charHeight}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		drawn += charWidth
	}
	return drawn
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
