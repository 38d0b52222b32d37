package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/skewer-chess/skewer/position"
)

var (
	cellLight = color.New(color.BgHiWhite, color.FgBlack)
	cellDark  = color.New(color.BgGreen, color.FgBlack)
	labelText = color.New(color.Bold)
)

// Dump renders the board as plain ASCII, suitable for logs.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for row := position.Square(0); row < Height; row++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", Height-row))
		for file := position.Square(0); file < Width; file++ {
			s, p := b.GetSideAndPieces(position.NewSquare(row, file))
			sym := p.SymbolFEN(s)
			if p == PieceUnknown {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for file := position.Square(0); file < Width; file++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %c ", 'a'+file))
	}
	return builder.String()
}

// Draw renders a checkered board with unicode pieces for the terminal.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for row := position.Square(0); row < Height; row++ {
		_, _ = builder.WriteString(labelText.Sprintf(" %d ", Height-row))
		for file := position.Square(0); file < Width; file++ {
			s, p := b.GetSideAndPieces(position.NewSquare(row, file))
			sym := p.SymbolUnicode(s)
			if p == PieceUnknown {
				sym = " "
			}
			cell := cellDark
			if (row+file)%2 == 0 {
				cell = cellLight
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for file := position.Square(0); file < Width; file++ {
		_, _ = builder.WriteString(labelText.Sprintf(" %c ", 'a'+file))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	return fmt.Sprintf("cast: %04b\nenps: %s\nhalf: %4d\nfull: %4d", b.castleRights, b.enPassant, b.halfMoveClock, b.fullMoveClock)
}
