package board

import "github.com/skewer-chess/skewer/position"

// GeneratePseudoLegalMoves emits every move obeying piece-movement shape and
// occupancy rules for the side to move. Moves may still leave the own king
// in check; GenerateMoves applies that filter.
func (b *Board) GeneratePseudoLegalMoves() []Move {
	mvs := make([]Move, 0, 48)
	for pos := position.Square(0); pos < TotalSquares; pos++ {
		s, p := b.GetSideAndPieces(pos)
		if s != b.turn {
			continue
		}
		switch p {
		case PiecePawn:
			b.generatePawnMoves(&mvs, pos)
		case PieceKnight:
			b.generateStepMoves(&mvs, pos, p, stepsKnight[:])
		case PieceBishop:
			b.generateSlideMoves(&mvs, pos, p, raysDiagonal[:])
		case PieceRook:
			b.generateSlideMoves(&mvs, pos, p, raysLateral[:])
		case PieceQueen:
			b.generateSlideMoves(&mvs, pos, p, raysDiagonal[:])
			b.generateSlideMoves(&mvs, pos, p, raysLateral[:])
		case PieceKing:
			b.generateStepMoves(&mvs, pos, p, stepsKing[:])
		}
	}
	b.generateCastleMoves(&mvs)
	return mvs
}

// GenerateMoves returns the legal moves for the side to move: pseudo-legal
// moves whose resulting position does not leave the mover's king attacked.
// Applying each move for real covers pins, discovered checks and the
// en passant capture that exposes the king along the vacated rank.
func (b *Board) GenerateMoves() []Move {
	pseudo := b.GeneratePseudoLegalMoves()
	mvs := make([]Move, 0, len(pseudo))
	for _, mv := range pseudo {
		bb := b.Clone()
		bb.Apply(mv)
		if bb.IsKingChecked(b.turn) {
			continue
		}
		mv.IsCheck = bb.IsKingChecked(b.turn.Opposite())
		mvs = append(mvs, mv)
	}
	return mvs
}

// FindMove resolves (from, to, promotion) against the legal moves of the
// current position, restoring the derived capture/en passant/castle flags.
func (b *Board) FindMove(from, to position.Square, promotion Piece) (Move, error) {
	for _, mv := range b.GenerateMoves() {
		if mv.From == from && mv.To == to && mv.IsPromote == promotion {
			return mv, nil
		}
	}
	return Move{}, ErrIllegalMove
}

func (b *Board) generatePawnMoves(mvs *[]Move, from position.Square) {
	row, file := from.Row(), from.File()
	dir, homeRow := position.Square(-1), position.Square(6)
	if b.turn == SideBlack {
		dir, homeRow = 1, 1
	}

	// advances only onto empty squares
	if r := row + dir; 0 <= r && r < Height {
		if _, p := b.GetSideAndPieces(position.NewSquare(r, file)); p == PieceUnknown {
			b.pushPawnMove(mvs, from, position.NewSquare(r, file), false, false)
			if row == homeRow {
				if _, p := b.GetSideAndPieces(position.NewSquare(row+2*dir, file)); p == PieceUnknown {
					b.pushPawnMove(mvs, from, position.NewSquare(row+2*dir, file), false, false)
				}
			}
		}
	}

	// diagonal captures onto enemy pieces or the en passant target
	for _, df := range [2]position.Square{-1, 1} {
		r, f := row+dir, file+df
		if r < 0 || Height <= r || f < 0 || Width <= f {
			continue
		}
		to := position.NewSquare(r, f)
		if s, _ := b.GetSideAndPieces(to); s == b.turn.Opposite() {
			b.pushPawnMove(mvs, from, to, true, false)
		} else if to == b.enPassant {
			b.pushPawnMove(mvs, from, to, true, true)
		}
	}
}

// pushPawnMove expands a pawn move landing on the farthest rank into one
// move per promotion candidate; promotion is disallowed anywhere else.
func (b *Board) pushPawnMove(mvs *[]Move, from, to position.Square, capture, enPassant bool) {
	lastRow := position.Square(0)
	if b.turn == SideBlack {
		lastRow = Height - 1
	}
	mv := Move{
		From:        from,
		To:          to,
		Piece:       PiecePawn,
		IsTurn:      b.turn,
		IsCapture:   capture,
		IsEnPassant: enPassant,
	}
	if to.Row() != lastRow {
		*mvs = append(*mvs, mv)
		return
	}
	for _, prom := range PawnPromoteCandidates {
		mv.IsPromote = prom
		*mvs = append(*mvs, mv)
	}
}

func (b *Board) generateStepMoves(mvs *[]Move, from position.Square, p Piece, steps [][2]position.Square) {
	row, file := from.Row(), from.File()
	for _, step := range steps {
		r, f := row+step[0], file+step[1]
		if r < 0 || Height <= r || f < 0 || Width <= f {
			continue
		}
		to := position.NewSquare(r, f)
		s, occupant := b.GetSideAndPieces(to)
		if occupant != PieceUnknown && s == b.turn {
			continue
		}
		*mvs = append(*mvs, Move{
			From:      from,
			To:        to,
			Piece:     p,
			IsTurn:    b.turn,
			IsCapture: occupant != PieceUnknown,
		})
	}
}

func (b *Board) generateSlideMoves(mvs *[]Move, from position.Square, p Piece, rays [][2]position.Square) {
	row, file := from.Row(), from.File()
	for _, ray := range rays {
		for r, f := row+ray[0], file+ray[1]; 0 <= r && r < Height && 0 <= f && f < Width; r, f = r+ray[0], f+ray[1] {
			to := position.NewSquare(r, f)
			s, occupant := b.GetSideAndPieces(to)
			if occupant != PieceUnknown {
				if s != b.turn {
					*mvs = append(*mvs, Move{
						From:      from,
						To:        to,
						Piece:     p,
						IsTurn:    b.turn,
						IsCapture: true,
					})
				}
				break
			}
			*mvs = append(*mvs, Move{
				From:   from,
				To:     to,
				Piece:  p,
				IsTurn: b.turn,
			})
		}
	}
}

func (b *Board) generateCastleMoves(mvs *[]Move) {
	if !b.castleRights.IsSideAllowed(b.turn) || b.IsKingChecked(b.turn) {
		return
	}

	ds := [2]CastleDirection{CastleDirectionWhiteRight, CastleDirectionWhiteLeft}
	if b.turn == SideBlack {
		ds = [2]CastleDirection{CastleDirectionBlackRight, CastleDirectionBlackLeft}
	}
directions:
	for _, d := range ds {
		if !b.castleRights.IsAllowed(d) {
			continue
		}
		for _, pos := range posCastlingEmpty[d] {
			if _, p := b.GetSideAndPieces(pos); p != PieceUnknown {
				continue directions
			}
		}
		for _, pos := range posCastlingSafe[d] {
			if b.IsSquareAttacked(pos, b.turn.Opposite()) {
				continue directions
			}
		}
		hopsKing := posCastling[d][PieceKing]
		*mvs = append(*mvs, Move{
			From:     hopsKing[0],
			To:       hopsKing[1],
			Piece:    PieceKing,
			IsTurn:   b.turn,
			IsCastle: d,
		})
	}
}
