package position

import (
	"errors"
)

const (
	// Width is the board width and height the square system supports.
	Width Square = 8

	// TotalSquares is the number of addressable squares on the board.
	TotalSquares Square = Width * Width

	// SquareUnknown marks the absence of a square, e.g. no en passant target.
	SquareUnknown Square = -1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Square indexes the board top-down: a8 is 0, h8 is 7, a1 is 56, h1 is 63.
type Square int8

const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

func NewSquareFromNotation(n string) (Square, error) {
	if len(n) != 2 {
		return SquareUnknown, ErrInvalidNotation
	}
	file := Square(n[0] - 'a')
	if file < 0 || Width <= file {
		return SquareUnknown, ErrInvalidNotation
	}
	rank := Square(n[1] - '0')
	if rank < 1 || Width < rank {
		return SquareUnknown, ErrInvalidNotation
	}
	return NewSquare(Width-rank, file), nil
}

// NewSquare builds a square from a top-down row (0 is rank 8) and a file.
func NewSquare(row, file Square) Square {
	return row*Width + file
}

func (s Square) String() string {
	return s.Notation()
}

func (s Square) Notation() string {
	if !s.Valid() {
		return "-"
	}
	return string(rune('a'+s.File())) + string(rune('0'+s.Rank()))
}

func (s Square) Valid() bool {
	return 0 <= s && s < TotalSquares
}

// File returns the file component, 0 for the a-file up to 7 for the h-file.
func (s Square) File() Square {
	return s % Width
}

// Row returns the top-down row component: 0 holds rank 8, 7 holds rank 1.
func (s Square) Row() Square {
	return s / Width
}

// Rank returns the chess rank digit, 1 up to 8.
func (s Square) Rank() Square {
	return Width - s.Row()
}
