package engine

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/skewer-chess/skewer/board"
)

const (
	// ScoreInfinite bounds the alpha/beta window.
	ScoreInfinite int32 = 1000000

	// ScoreCheckmate dominates any material and positional sum, so forced
	// mates are always preferred over merely good positions.
	ScoreCheckmate int32 = 100000
)

var (
	// ErrNoLegalMoves is returned when Search is asked for a move on a
	// terminal position; checkmate and stalemate are the caller's call.
	ErrNoLegalMoves = errors.New("no legal moves available")
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type EngineConfig struct {
	Logger func(...any)
}

type Engine struct {
	nodes  uint64
	logger func(...any)
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	return &Engine{
		logger: cfg.Logger,
	}
}

// Nodes reports the node count of the most recent search.
func (e *Engine) Nodes() uint64 {
	return e.nodes
}

// Search returns the best move for the side to move, looking depth plies
// ahead. White maximizes and Black minimizes; the first generated move
// seeds the running best, so a move is always returned whenever at least
// one legal move exists.
func (e *Engine) Search(b *board.Board, depth int) (board.Move, error) {
	if depth < 1 {
		return board.Move{}, fmt.Errorf("search depth must be at least 1, got %d", depth)
	}
	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		return board.Move{}, ErrNoLegalMoves
	}

	e.nodes = 0
	startTime := time.Now()

	maximizing := b.Turn() == board.SideWhite
	bestMove := mvs[0]
	bestScore := ScoreInfinite
	if maximizing {
		bestScore = -ScoreInfinite
	}
	for _, mv := range mvs {
		bb := b.Clone()
		bb.Apply(mv)
		score := e.minimax(bb, depth-1, -ScoreInfinite, ScoreInfinite, !maximizing)
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			bestMove = mv
		}
	}

	elapsed := time.Since(startTime)
	e.logger(message.NewPrinter(language.English).
		Sprintf("depth:%d best:%s score:%s nodes:%d (%.0fn/s) t:%s",
			depth, bestMove.UCI(), formatScore(bestScore), e.nodes,
			float64(e.nodes)/(elapsed+1).Seconds(), elapsed))

	return bestMove, nil
}

// minimax searches the move tree with alpha-beta pruning. Alpha and beta
// travel by value, so sibling branches never observe each other's bounds.
func (e *Engine) minimax(b *board.Board, depth int, alpha, beta int32, maximizing bool) int32 {
	e.nodes++

	if depth == 0 {
		return Evaluate(b)
	}

	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		if !b.IsKingChecked(b.Turn()) {
			return 0 // stalemate is a draw, not a mate
		}
		if maximizing {
			return -ScoreCheckmate
		}
		return ScoreCheckmate
	}

	if maximizing {
		best := -ScoreInfinite
		for _, mv := range mvs {
			bb := b.Clone()
			bb.Apply(mv)
			best = max(best, e.minimax(bb, depth-1, alpha, beta, false))
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := ScoreInfinite
	for _, mv := range mvs {
		bb := b.Clone()
		bb.Apply(mv)
		best = min(best, e.minimax(bb, depth-1, alpha, beta, true))
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}

func formatScore(s int32) string {
	switch {
	case s >= ScoreCheckmate:
		return "#+"
	case s <= -ScoreCheckmate:
		return "#-"
	case s > 0:
		return fmt.Sprintf("+%.2f", float64(s)/100)
	case s < 0:
		return fmt.Sprintf("%.2f", float64(s)/100)
	default:
		return "0"
	}
}
