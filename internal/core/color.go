package core

// Color is a palette entry for a screen cell. Games pick what a cell means;
// the front end decides how that looks in the terminal.
type Color uint8

const (
	ColorDefault Color = iota

	// One per mino, used for the active piece, its ghost and locked blocks.
	ColorMinoI
	ColorMinoO
	ColorMinoS
	ColorMinoZ
	ColorMinoJ
	ColorMinoL
	ColorMinoT

	ColorFrame   // boxes, empty cells, labels
	ColorFlash   // rows being cleared
	ColorAlert   // game over, errors
	ColorNotice  // pause and countdown banners, back-to-back
	ColorSuccess // game clear, perfect clear
	ColorSpin    // T-Spin banners

	ColorCount
)
