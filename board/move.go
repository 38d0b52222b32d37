package board

import "github.com/skewer-chess/skewer/position"

// Move is fully determined by From, To and IsPromote against the board it
// was generated from; IsCapture, IsEnPassant and IsCastle are consequences
// recorded at generation time.
type Move struct {
	From, To position.Square
	Piece    Piece

	IsTurn      Side
	IsCapture   bool
	IsCheck     bool
	IsCastle    CastleDirection
	IsEnPassant bool
	IsPromote   Piece
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) IsNull() bool {
	return m.From == m.To
}

func (m Move) Equals(other Move) bool {
	return m.From == other.From && m.To == other.To && m.IsPromote == other.IsPromote
}

func (m Move) Algebra() string {
	if m.IsCastle != CastleDirectionUnknown {
		if m.IsCastle.IsRight() {
			return "0-0"
		}
		return "0-0-0"
	}
	nt := m.Piece.SymbolAlgebra(SideWhite) // SideWhite because it returns capital symbols
	if m.IsCapture {
		if m.Piece == PiecePawn {
			nt += string(rune('a' + m.From.File()))
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if m.IsPromote != PieceUnknown {
		nt += m.IsPromote.SymbolAlgebra(SideWhite)
	}
	if m.IsCheck {
		nt += "+"
	}
	if m.IsEnPassant {
		nt += " e.p."
	}
	return nt
}

func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation() + m.IsPromote.SymbolAlgebra(SideBlack)
}
