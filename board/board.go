package board

import (
	"errors"

	"github.com/skewer-chess/skewer/position"
)

const (
	Width        = position.Width
	Height       = position.Width
	TotalSquares = position.TotalSquares

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

var (
	ErrInvalidFEN  = errors.New("invalid fen")
	ErrIllegalMove = errors.New("illegal move")
)

// Board is a snapshot of a single position: piece placement, side to move,
// castle rights, en passant target and move clocks. It is advanced by Apply
// and duplicated by Clone; the search never mutates a shared instance.
type Board struct {
	// grid data, packed per square as side<<4|piece, 0 when empty
	cells [TotalSquares]uint8

	// meta
	turn          Side
	castleRights  CastleRights
	enPassant     position.Square
	halfMoveClock uint64
	fullMoveClock uint64
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

func (b *Board) EnPassant() position.Square {
	return b.enPassant
}

func (b *Board) HalfMoveClock() uint64 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint64 {
	return b.fullMoveClock
}

func (b *Board) GetSideAndPieces(s position.Square) (Side, Piece) {
	return Side(b.cells[s] >> 4), Piece(b.cells[s] & 0x0F)
}

func (b *Board) KingSquare(s Side) position.Square {
	for pos := position.Square(0); pos < TotalSquares; pos++ {
		side, piece := b.GetSideAndPieces(pos)
		if side == s && piece == PieceKing {
			return pos
		}
	}
	return position.SquareUnknown
}

func (b *Board) set(pos position.Square, s Side, p Piece) {
	b.cells[pos] = uint8(s)<<4 | uint8(p)
}

func (b *Board) clear(pos position.Square) {
	b.cells[pos] = 0
}

// Apply advances the board by the given move. The move must come from this
// board's move generator; Apply performs no legality checking of its own.
func (b *Board) Apply(mv Move) {
	if mv.IsCastle != CastleDirectionUnknown {
		hopsKing := posCastling[mv.IsCastle][PieceKing]
		hopsRook := posCastling[mv.IsCastle][PieceRook]
		b.clear(hopsKing[0])
		b.clear(hopsRook[0])
		b.set(hopsKing[1], b.turn, PieceKing)
		b.set(hopsRook[1], b.turn, PieceRook)
	} else {
		if mv.IsEnPassant {
			// the captured pawn sits behind the target square
			if b.turn == SideWhite {
				b.clear(mv.To + Width)
			} else {
				b.clear(mv.To - Width)
			}
		}
		b.clear(mv.From)
		placed := mv.Piece
		if mv.IsPromote != PieceUnknown {
			placed = mv.IsPromote
		}
		b.set(mv.To, b.turn, placed)
	}

	// update enPassant target
	b.enPassant = position.SquareUnknown
	if mv.Piece == PiecePawn && (mv.From-mv.To == 2*Width || mv.To-mv.From == 2*Width) {
		b.enPassant = (mv.From + mv.To) / 2
	}

	// update castleRights
	if mv.Piece == PieceKing {
		if b.turn == SideWhite {
			b.castleRights.Set(CastleDirectionWhiteRight, false)
			b.castleRights.Set(CastleDirectionWhiteLeft, false)
		} else {
			b.castleRights.Set(CastleDirectionBlackRight, false)
			b.castleRights.Set(CastleDirectionBlackLeft, false)
		}
	}
	// a rook leaving or getting captured on its home square drops the right
	for _, rh := range [...]struct {
		square    position.Square
		direction CastleDirection
	}{
		{position.H1, CastleDirectionWhiteRight},
		{position.A1, CastleDirectionWhiteLeft},
		{position.H8, CastleDirectionBlackRight},
		{position.A8, CastleDirectionBlackLeft},
	} {
		if mv.From == rh.square || mv.To == rh.square {
			b.castleRights.Set(rh.direction, false)
		}
	}

	// update half move clock
	if mv.Piece == PiecePawn || mv.IsCapture {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}

	// update full move clock
	if b.turn == SideBlack {
		b.fullMoveClock++
	}

	b.turn = b.turn.Opposite()
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

func (b *Board) Equals(other *Board) bool {
	return b.cells == other.cells &&
		b.turn == other.turn &&
		b.castleRights == other.castleRights &&
		b.enPassant == other.enPassant &&
		b.halfMoveClock == other.halfMoveClock &&
		b.fullMoveClock == other.fullMoveClock
}

// State classifies the position for the side to move.
func (b *Board) State() State {
	checked := b.IsKingChecked(b.turn)
	if len(b.GenerateMoves()) == 0 {
		if checked {
			if b.turn == SideWhite {
				return StateCheckmateWhite
			}
			return StateCheckmateBlack
		}
		return StateStalemate
	}
	if checked {
		if b.turn == SideWhite {
			return StateCheckWhite
		}
		return StateCheckBlack
	}
	if b.halfMoveClock >= 100 {
		return StateFiftyMoveViolated
	}
	return StateRunning
}
