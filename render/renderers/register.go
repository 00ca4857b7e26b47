// Package renderers holds the drawing layers registered with the render orchestrator
package renderers

import (
	"github.com/lixenwraith/humblebee/asset"
	"github.com/lixenwraith/humblebee/render"
)

// SpriteSource resolves sprites by manifest name
type SpriteSource interface {
	Sprite(name string) (*asset.Sprite, error)
}

// Options configures optional layers
type Options struct {
	ShowHitboxes bool
}

// RegisterAll resolves every sprite and registers the layers in draw order.
// A missing sprite fails registration before anything is drawn
func RegisterAll(o *render.RenderOrchestrator, sprites SpriteSource, opts Options) error {
	get := func(names ...string) ([]*asset.Sprite, error) {
		out := make([]*asset.Sprite, 0, len(names))
		for _, n := range names {
			s, err := sprites.Sprite(n)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}

	s, err := get("bg", "pipe", "ground", "restart", "bee1", "bee2", "bee3")
	if err != nil {
		return err
	}

	o.Register(NewBackgroundRenderer(s[0]), render.PriorityBackground)
	o.Register(NewObstacleRenderer(s[1]), render.PriorityObstacles)
	o.Register(NewGroundRenderer(s[2]), render.PriorityGround)
	o.Register(NewPlayerRenderer(s[4:]...), render.PriorityPlayer)
	o.Register(NewHitboxRenderer(opts.ShowHitboxes), render.PriorityPlayer)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	o.Register(NewOverlayRenderer(s[3]), render.PriorityOverlay)
	return nil
}
