package board

import (
	"testing"

	"github.com/skewer-chess/skewer/position"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fen       string
		from, to  position.Square
		promotion Piece
		wantFEN   string
	}{
		{
			name:    "pawn double push sets en passant target",
			fen:     DefaultStartingPositionFEN,
			from:    position.E2,
			to:      position.E4,
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "black reply increments full move clock",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			from:    position.C7,
			to:      position.C5,
			wantFEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		},
		{
			name:    "quiet knight move advances half move clock",
			fen:     "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			from:    position.G1,
			to:      position.F3,
			wantFEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		},
		{
			name:    "capture resets half move clock",
			fen:     "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
			from:    position.B8,
			to:      position.C6,
			wantFEN: "r1bqkbnr/pp1ppppp/2n5/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		},
		{
			name:    "white kingside castle relocates the rook",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from:    position.E1,
			to:      position.G1,
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name:    "black queenside castle relocates the rook",
			fen:     "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
			from:    position.E8,
			to:      position.C8,
			wantFEN: "2kr3r/8/8/8/8/8/8/R4RK1 w - - 2 2",
		},
		{
			name:    "rook move drops one castle right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from:    position.A1,
			to:      position.A8,
			wantFEN: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:    "king move drops both castle rights",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from:    position.E1,
			to:      position.E2,
			wantFEN: "r3k2r/8/8/8/8/8/4K3/R6R b kq - 1 1",
		},
		{
			name:    "en passant capture removes the passed pawn",
			fen:     "k7/8/8/3pP3/8/8/8/K7 w - d6 0 1",
			from:    position.E5,
			to:      position.D6,
			wantFEN: "k7/8/3P4/8/8/8/8/K7 b - - 0 1",
		},
		{
			name:      "promotion replaces the pawn",
			fen:       "k7/4P3/8/8/8/8/8/K7 w - - 0 1",
			from:      position.E7,
			to:        position.E8,
			promotion: PieceRook,
			wantFEN:   "k3R3/8/8/8/8/8/8/K7 b - - 0 1",
		},
		{
			name:      "capture promotion",
			fen:       "k2r4/4P3/8/8/8/8/8/K7 w - - 0 1",
			from:      position.E7,
			to:        position.D8,
			promotion: PieceQueen,
			wantFEN:   "k2Q4/8/8/8/8/8/8/K7 b - - 0 1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := NewBoard(WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			mv, err := b.FindMove(tt.from, tt.to, tt.promotion)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			b.Apply(mv)
			if got := b.FEN(); got != tt.wantFEN {
				t.Errorf("unexpected FEN: got=%s want=%s", got, tt.wantFEN)
			}

			// the successor must equal an independently constructed position
			want, err := NewBoard(WithFEN(tt.wantFEN))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if !b.Equals(want) {
				t.Error("applied board does not equal independently constructed successor")
			}
		})
	}
}

func TestApplyDoesNotShareState(t *testing.T) {
	t.Parallel()

	b, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	snapshot := b.Clone()

	mv, err := b.FindMove(position.E2, position.E4, PieceUnknown)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	bb := b.Clone()
	bb.Apply(mv)

	if !b.Equals(snapshot) {
		t.Error("applying on a clone mutated the original board")
	}
	if b.Equals(bb) {
		t.Error("clone still equals original after apply")
	}
}
