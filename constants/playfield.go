package constants

// Playfield dimensions in playfield units (pixels of the original surface)
const (
	ScreenWidth  = 864.0
	ScreenHeight = 936.0

	// GroundY is the ground line; nothing flies below it
	GroundY = 768.0

	// Centerline is the vertical midpoint that obstacle gaps are placed around
	Centerline = ScreenHeight / 2
)

// HUD placement
const (
	// ScoreY is the top of the centered score text
	ScoreY = 20.0

	// HighScoreX and HighScoreY place the high score caption at the bottom-left
	HighScoreX = 10.0
	HighScoreY = ScreenHeight - 80

	// RestartWidth and RestartHeight size the restart button
	RestartWidth  = 100.0
	RestartHeight = 42.0

	// RestartX and RestartY are the top-left of the restart button
	RestartX = ScreenWidth/2 - 50
	RestartY = ScreenHeight/2 - 100
)
