package board

import "github.com/skewer-chess/skewer/position"

// Offsets are (row, file) deltas; rows grow downwards, towards rank 1.
var (
	stepsKnight = [8][2]position.Square{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	stepsKing = [8][2]position.Square{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	raysDiagonal = [4][2]position.Square{
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}
	raysLateral = [4][2]position.Square{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	}
)

// IsSquareAttacked reports whether any piece of the given side could capture
// on the square in one step. Pawn attacks are diagonal adjacency regardless
// of occupancy, and en passant is never considered.
func (b *Board) IsSquareAttacked(target position.Square, by Side) bool {
	row, file := target.Row(), target.File()

	// a White pawn attacks upwards, so it would sit one row below the target
	pawnRow := row + 1
	if by == SideBlack {
		pawnRow = row - 1
	}
	for _, df := range [2]position.Square{-1, 1} {
		if s, p, ok := b.pieceAt(pawnRow, file+df); ok && s == by && p == PiecePawn {
			return true
		}
	}

	for _, step := range stepsKnight {
		if s, p, ok := b.pieceAt(row+step[0], file+step[1]); ok && s == by && p == PieceKnight {
			return true
		}
	}

	for _, step := range stepsKing {
		if s, p, ok := b.pieceAt(row+step[0], file+step[1]); ok && s == by && p == PieceKing {
			return true
		}
	}

	for _, ray := range raysDiagonal {
		if s, p := b.castRay(row, file, ray); s == by && (p == PieceBishop || p == PieceQueen) {
			return true
		}
	}
	for _, ray := range raysLateral {
		if s, p := b.castRay(row, file, ray); s == by && (p == PieceRook || p == PieceQueen) {
			return true
		}
	}

	return false
}

func (b *Board) IsKingChecked(s Side) bool {
	king := b.KingSquare(s)
	if !king.Valid() {
		return false
	}
	return b.IsSquareAttacked(king, s.Opposite())
}

// pieceAt bounds-checks (row, file) and returns the occupant, if any.
func (b *Board) pieceAt(row, file position.Square) (Side, Piece, bool) {
	if row < 0 || Height <= row || file < 0 || Width <= file {
		return SideUnknown, PieceUnknown, false
	}
	s, p := b.GetSideAndPieces(position.NewSquare(row, file))
	return s, p, p != PieceUnknown
}

// castRay walks from (row, file) along the ray and returns the first piece
// hit, or no piece when the ray leaves the board unobstructed.
func (b *Board) castRay(row, file position.Square, ray [2]position.Square) (Side, Piece) {
	for r, f := row+ray[0], file+ray[1]; 0 <= r && r < Height && 0 <= f && f < Width; r, f = r+ray[0], f+ray[1] {
		if s, p := b.GetSideAndPieces(position.NewSquare(r, f)); p != PieceUnknown {
			return s, p
		}
	}
	return SideUnknown, PieceUnknown
}
