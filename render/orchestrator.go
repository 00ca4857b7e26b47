package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/humblebee/engine"
	"github.com/lixenwraith/humblebee/input"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline and implements engine.FrameRenderer
type RenderOrchestrator struct {
	screen    tcell.Screen
	canvas    *Canvas
	view      Viewport
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	cols, rows := screen.Size()
	o := &RenderOrchestrator{
		screen:    screen,
		canvas:    NewCanvas(cols, rows),
		renderers: make([]rendererEntry, 0, 8),
	}
	o.view = NewViewport(o.canvas.PixelSize())
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	// Insertion sort: find position and insert
	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates canvas dimensions, refits the viewport and syncs the screen
func (o *RenderOrchestrator) Resize(cols, rows int) {
	o.canvas.Resize(cols, rows)
	o.view = NewViewport(o.canvas.PixelSize())
	o.screen.Sync()
}

// Viewport returns the current playfield mapping
func (o *RenderOrchestrator) Viewport() Viewport {
	return o.view
}

// Canvas exposes the composited frame
func (o *RenderOrchestrator) Canvas() *Canvas {
	return o.canvas
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(w *engine.World, frame input.Frame) {
	cols, rows := o.screen.Size()
	if c, r := o.canvas.Size(); frame.Resized || c != cols || r != rows {
		o.Resize(cols, rows)
	}

	o.canvas.Clear(RgbLetterbox)

	ctx := NewRenderContext(w, o.view)
	for _, entry := range o.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.canvas)
	}

	o.canvas.Flush(o.screen)
	o.screen.Show()
}
