package constants

// Player Physics (per tick)
const (
	// Gravity is added to the vertical velocity every tick without a jump
	Gravity = 0.5

	// TerminalVelocity caps the downward velocity
	TerminalVelocity = 8.0

	// JumpImpulse replaces the velocity on a jump (negative is up)
	JumpImpulse = -10.0
)

// Player Geometry
const (
	// SpawnX and SpawnY are the player's center at start and after reset
	SpawnX = 100.0
	SpawnY = ScreenHeight / 2

	// BeeWidth and BeeHeight are the sprite extents
	BeeWidth  = 51.0
	BeeHeight = 36.0

	// HitboxInset shrinks the hitbox on each side relative to the sprite
	HitboxInset = 10.0
)

// Player Animation
const (
	// BeeFrames is the length of the flap animation cycle
	BeeFrames = 3

	// FlapCooldown is the tick count the frame counter must exceed before advancing
	FlapCooldown = 5

	// RotationScale converts velocity into a tilt angle in degrees
	RotationScale = -2.0

	// FallenRotation is the fixed nose-down angle shown after a crash
	FallenRotation = -90.0
)
