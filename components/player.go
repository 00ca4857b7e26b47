package components

import (
	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/vmath"
)

// PlayerInput is the per-tick view of phase and input the player reacts to
type PlayerInput struct {
	// Flying enables gravity, jumping and vertical motion
	Flying bool
	// Fallen freezes the flap animation and switches to the crash pose
	Fallen bool
	// Held is the current state of the primary press
	Held bool
}

// PlayerEffects reports side effects of one player advance
type PlayerEffects struct {
	// Flapped is set on the tick a jump impulse was applied
	Flapped bool
}

// Player is the bee. X is fixed, Y and velocity are simulated.
// Position is the sprite center in playfield units
type Player struct {
	X, Y     float64
	Velocity float64

	// Frame indexes the flap animation cycle
	Frame int
	// counter counts ticks since the last frame advance
	counter int

	// Clicked debounces the press so a held press jumps once
	Clicked bool
	// Fallen is the crash pose flag, mirrored from the phase each tick
	Fallen bool
}

// NewPlayer creates the player at the spawn point
func NewPlayer() *Player {
	p := &Player{}
	p.Reset()
	return p
}

// Reset moves the player back to the spawn point at rest
func (p *Player) Reset() {
	p.X = constants.SpawnX
	p.Y = constants.SpawnY
	p.Velocity = 0
	p.Frame = 0
	p.counter = 0
	p.Fallen = false
}

// Advance runs one tick of physics and animation
func (p *Player) Advance(in PlayerInput) PlayerEffects {
	var fx PlayerEffects

	p.Fallen = in.Fallen

	if in.Flying {
		fx.Flapped = p.applyGravityAndJump(in.Held)
	} else if !in.Fallen && !in.Held {
		p.Clicked = false
	}

	p.advanceAnimation()
	return fx
}

// applyGravityAndJump applies an edge-triggered jump or gravity, then moves
func (p *Player) applyGravityAndJump(held bool) bool {
	flapped := false

	if held && !p.Clicked {
		p.Velocity = constants.JumpImpulse
		p.Clicked = true
		flapped = true
	} else {
		p.Velocity += constants.Gravity
		if p.Velocity > constants.TerminalVelocity {
			p.Velocity = constants.TerminalVelocity
		}
	}

	if !held {
		p.Clicked = false
	}

	p.Y += p.Velocity

	// Lower edge never passes the ground line
	maxY := constants.GroundY - constants.BeeHeight/2
	if p.Y > maxY {
		p.Y = maxY
	}

	return flapped
}

// advanceAnimation steps the flap cycle, frozen while fallen
func (p *Player) advanceAnimation() {
	if p.Fallen {
		return
	}

	p.counter++
	if p.counter > constants.FlapCooldown {
		p.counter = 0
		p.Frame = (p.Frame + 1) % constants.BeeFrames
	}
}

// Rotation returns the render tilt in degrees, derived from velocity
func (p *Player) Rotation() float64 {
	if p.Fallen {
		return constants.FallenRotation
	}
	return p.Velocity * constants.RotationScale
}

// Bounds returns the full sprite rectangle
func (p *Player) Bounds() vmath.Rect {
	return vmath.RectFromCenter(p.X, p.Y, constants.BeeWidth, constants.BeeHeight)
}

// Hitbox returns the collision rectangle, inset from the sprite bounds
func (p *Player) Hitbox() vmath.Rect {
	return p.Bounds().Inset(constants.HitboxInset)
}
