package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit             // Esc, Ctrl+C, q
	IntentToggleEffectMute // Ctrl+S
	IntentToggleMusicMute  // Ctrl+G
	IntentResize           // Terminal resize event

	// Gameplay
	IntentPress // Space, Enter, Up; a one-tick press pulse
)

// Frame is the input snapshot consumed by one tick
type Frame struct {
	// Held is true if the primary press was down at any point during the tick
	Held bool
	// Pressed is true if a down edge occurred during the tick
	Pressed bool

	Quit bool

	// Toggles requested during the tick
	ToggleEffects bool
	ToggleMusic   bool

	// Resized is set when the terminal changed size
	Resized bool
}
