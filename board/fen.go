package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/skewer-chess/skewer/position"
)

// UnmarshalFEN loads the six FEN segments into b. Positions missing a king
// or carrying more than one king per side are rejected here; the move
// generator and search assume the invariant holds.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	*b = Board{}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	var kings [3]int
	for row := position.Square(0); row < Height; row++ {
		ptr := -1
		for file := position.Square(0); file < Width; file++ {
			ptr++
			if ptr >= len(rows[row]) {
				return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			cell := rune(rows[row][ptr])
			s, p, ok := pieceFromFENSymbol(cell)
			if !ok {
				if cell != '0' && unicode.IsDigit(cell) {
					skip := position.Square(cell - '0')
					if skip != 0 && file+skip-1 < Width {
						file += skip - 1
						continue
					}
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			if p == PieceKing {
				kings[s]++
			}
			b.set(position.NewSquare(row, file), s, p)
		}
		if ptr != len(rows[row])-1 {
			return fmt.Errorf("%w: excess cells", ErrInvalidFEN)
		}
	}
	if kings[SideWhite] != 1 || kings[SideBlack] != 1 {
		return fmt.Errorf("%w: each side must have exactly one king", ErrInvalidFEN)
	}

	switch segments[1] {
	case "w":
		b.turn = SideWhite
	case "b":
		b.turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) == 0 || len(segments[2]) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	if segments[2] != "-" {
		for _, e := range segments[2] {
			var d CastleDirection
			switch e {
			case 'K':
				d = CastleDirectionWhiteRight
			case 'Q':
				d = CastleDirectionWhiteLeft
			case 'k':
				d = CastleDirectionBlackRight
			case 'q':
				d = CastleDirectionBlackLeft
			default:
				return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
			}
			if b.castleRights.IsAllowed(d) {
				return fmt.Errorf("%w: duplicate castling rights", ErrInvalidFEN)
			}
			b.castleRights.Set(d, true)
		}
	}
	// a right is only meaningful while its king and rook still sit at home
	for _, d := range [...]CastleDirection{
		CastleDirectionWhiteRight,
		CastleDirectionWhiteLeft,
		CastleDirectionBlackRight,
		CastleDirectionBlackLeft,
	} {
		if !b.castleRights.IsAllowed(d) {
			continue
		}
		side := SideBlack
		if d.IsWhite() {
			side = SideWhite
		}
		for _, p := range [...]Piece{PieceKing, PieceRook} {
			if s, occupant := b.GetSideAndPieces(posCastling[d][p][0]); s != side || occupant != p {
				return fmt.Errorf("%w: castling rights without the %s on its home square", ErrInvalidFEN, p)
			}
		}
	}

	b.enPassant = position.SquareUnknown
	if segments[3] != "-" {
		pos, err := position.NewSquareFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant square: %v", ErrInvalidFEN, err)
		}
		if pos.Rank() != 3 && pos.Rank() != 6 {
			return fmt.Errorf("%w: invalid enpassant square", ErrInvalidFEN)
		}
		b.enPassant = pos
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	b.halfMoveClock = halfMoveClock

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	b.fullMoveClock = fullMoveClock

	return nil
}

func MarshalFEN(b *Board) string {
	builder := strings.Builder{}
	for row := position.Square(0); row < Height; row++ {
		var skip uint8
		for file := position.Square(0); file < Width; file++ {
			s, p := b.GetSideAndPieces(position.NewSquare(row, file))
			if p == PieceUnknown {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN(s))
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune(skip + '0'))
		}
		if row < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	if b.castleRights == 0 {
		_, _ = builder.WriteRune('-')
	} else {
		if b.castleRights.IsAllowed(CastleDirectionWhiteRight) {
			_, _ = builder.WriteRune('K')
		}
		if b.castleRights.IsAllowed(CastleDirectionWhiteLeft) {
			_, _ = builder.WriteRune('Q')
		}
		if b.castleRights.IsAllowed(CastleDirectionBlackRight) {
			_, _ = builder.WriteRune('k')
		}
		if b.castleRights.IsAllowed(CastleDirectionBlackLeft) {
			_, _ = builder.WriteRune('q')
		}
	}
	_, _ = builder.WriteRune(' ')

	if b.enPassant == position.SquareUnknown {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(b.enPassant.Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	return builder.String()
}

// FEN serializes the full position: placement, side to move, all four
// castle rights, en passant target and both move clocks.
func (b *Board) FEN() string {
	return MarshalFEN(b)
}
