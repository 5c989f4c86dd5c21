//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/vovakirdan/snake-pwa/internal/core"
	"github.com/vovakirdan/snake-pwa/internal/snake"
)

// canvasSurface draws on a 2D canvas context in pixels.
type canvasSurface struct {
	canvas js.Value
	ctx    js.Value
}

func newCanvasSurface(canvas js.Value) *canvasSurface {
	return &canvasSurface{
		canvas: canvas,
		ctx:    canvas.Call("getContext", "2d"),
	}
}

func (s *canvasSurface) Width() int  { return s.canvas.Get("width").Int() }
func (s *canvasSurface) Height() int { return s.canvas.Get("height").Int() }

func (s *canvasSurface) Clear() {
	s.ctx.Set("fillStyle", "#000")
	s.ctx.Call("fillRect", 0, 0, s.Width(), s.Height())
}

func (s *canvasSurface) FillRect(r core.Rect, c core.Color) {
	s.ctx.Set("fillStyle", c.Hex())
	s.ctx.Call("fillRect", r.X, r.Y, r.W, r.H)
}

func (s *canvasSurface) Dim(r core.Rect) {
	s.ctx.Set("fillStyle", "rgba(0, 0, 0, 0.75)")
	s.ctx.Call("fillRect", r.X, r.Y, r.W, r.H)
}

func (s *canvasSurface) DrawLabel(cx, cy int, text string, c core.Color) {
	s.ctx.Set("fillStyle", c.Hex())
	s.ctx.Set("font", fmt.Sprintf("%dpx Arial", max(s.Height()/14, 12)))
	s.ctx.Set("textAlign", "center")
	s.ctx.Set("textBaseline", "middle")
	s.ctx.Call("fillText", text, cx, cy)
}

// canvasView is the browser snake.View. It sizes the canvas, draws the
// board and mirrors the score into the page.
type canvasView struct {
	surface  *canvasSurface
	renderer *snake.Renderer
	scoreEl  js.Value
	score    int
}

func newCanvasView(canvas, scoreEl js.Value, divisions, maxSide int) *canvasView {
	surface := newCanvasSurface(canvas)
	return &canvasView{
		surface:  surface,
		renderer: snake.NewRenderer(surface, divisions, maxSide),
		scoreEl:  scoreEl,
		score:    -1,
	}
}

// Resize implements snake.View. The canvas is square, sized to the
// renderer's board side.
func (v *canvasView) Resize(width, height int) {
	v.renderer.Resize(width, height)
	side := min(width, height)
	v.surface.canvas.Set("width", side)
	v.surface.canvas.Set("height", side)
}

// Draw implements snake.View.
func (v *canvasView) Draw(st snake.State) {
	v.renderer.Draw(st)
	if st.Score != v.score {
		v.score = st.Score
		v.scoreEl.Set("textContent", st.Score)
	}
}
