package core

// Color is a logical foreground color for a screen cell. The platform maps
// each value to a terminal color.
type Color uint8

// Colors used by the board and overlays.
const (
	ColorDefault      Color = iota // Terminal default, used for hints
	ColorRed                       // Unused by the board
	ColorGreen                     // Snake body
	ColorYellow                    // Unused by the board
	ColorWhite                     // Board frame
	ColorBrightRed                 // Food
	ColorBrightGreen               // Snake head
	ColorBrightYellow              // Boosts and the boosted HUD
	ColorBrightWhite               // HUD and overlay text
	ColorGray                      // Obstacles
)
