package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/humblebee/engine"
	"github.com/lixenwraith/humblebee/input"
)

type recordingRenderer struct {
	name    string
	log     *[]string
	visible bool
}

func (r *recordingRenderer) Render(ctx RenderContext, c *Canvas) {
	*r.log = append(*r.log, r.name)
}

type toggledRenderer struct {
	recordingRenderer
}

func (r *toggledRenderer) IsVisible() bool { return r.visible }

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func TestOrchestratorOrder(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	o := NewRenderOrchestrator(screen)

	var log []string
	o.Register(&recordingRenderer{name: "hud", log: &log}, PriorityUI)
	o.Register(&recordingRenderer{name: "bg", log: &log}, PriorityBackground)
	o.Register(&recordingRenderer{name: "player", log: &log}, PriorityPlayer)
	o.Register(&recordingRenderer{name: "bg2", log: &log}, PriorityBackground)
	o.Register(&toggledRenderer{recordingRenderer{name: "hidden", log: &log}}, PriorityOverlay)

	o.RenderFrame(engine.NewWorld("test"), input.Frame{})

	want := []string{"bg", "bg2", "player", "hud"}
	if len(log) != len(want) {
		t.Fatalf("render order = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("render order = %v, want %v", log, want)
		}
	}
}

func TestOrchestratorFollowsScreenSize(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	o := NewRenderOrchestrator(screen)
	w := engine.NewWorld("test")

	o.RenderFrame(w, input.Frame{})
	if cols, rows := o.Canvas().Size(); cols != 20 || rows != 10 {
		t.Fatalf("canvas = %dx%d, want 20x10", cols, rows)
	}

	screen.SetSize(96, 52)
	o.RenderFrame(w, input.Frame{Resized: true})
	if cols, rows := o.Canvas().Size(); cols != 96 || rows != 52 {
		t.Fatalf("canvas after resize = %dx%d, want 96x52", cols, rows)
	}
	if v := o.Viewport(); v.Width != 96 || v.Height != 104 {
		t.Errorf("viewport = %dx%d, want 96x104", v.Width, v.Height)
	}
}

func TestOrchestratorLetterbox(t *testing.T) {
	screen := newSimScreen(t, 200, 52)
	o := NewRenderOrchestrator(screen)
	o.RenderFrame(engine.NewWorld("test"), input.Frame{})

	_, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if fg != RgbLetterbox || bg != RgbLetterbox {
		t.Errorf("letterbox cell colors fg=%v bg=%v", fg, bg)
	}
}
