package board

// Side is the color of a piece, and of the player to move.
type Side uint8

const (
	// SideUnknown marks an empty cell; it is never a mover.
	SideUnknown Side = iota

	// SideWhite plays up the board and moves first.
	SideWhite

	// SideBlack plays down the board.
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

// Opposite returns the other color; SideUnknown has no opposite.
func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}
