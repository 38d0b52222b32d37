package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/skewer-chess/skewer/board"
	"github.com/skewer-chess/skewer/engine"
	"github.com/skewer-chess/skewer/position"
	"github.com/skewer-chess/skewer/storage"
)

// snapshot pairs a board with the move list that produced it, so undo and
// redo restore both in lockstep.
type snapshot struct {
	board   *board.Board
	history []string
}

// session is the interactive game: a current board advanced wholesale after
// each confirmed move, with undo/redo snapshot stacks and a save-game store.
type session struct {
	board   *board.Board
	engine  *engine.Engine
	depth   int
	side    board.Side // the human's side
	history []string   // UCI moves played so far

	undoStack []snapshot
	redoStack []snapshot

	store   *storage.Store
	saveDir string
}

func play(fen string, depth int, saveDir string) error {
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}

	s := &session{
		board:   b,
		engine:  engine.NewEngine(&engine.EngineConfig{Logger: func(...any) {}}),
		depth:   depth,
		side:    board.SideWhite,
		saveDir: saveDir,
	}
	defer func() {
		if s.store != nil {
			_ = s.store.Close()
		}
	}()
	return s.run()
}

func (s *session) run() error {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println()
		fmt.Println(s.board.Draw())
		fmt.Println(s.board.FEN())

		st := s.board.State()
		if !st.IsRunning() {
			s.announce(st)
			return nil
		}

		if s.board.Turn() != s.side {
			fmt.Println("Skewer is thinking...")
			mv, err := s.engine.Search(s.board, s.depth)
			if err != nil {
				return err
			}
			s.commit(mv)
			fmt.Printf(">>> %s: %s\n", mv.IsTurn, mv)
			continue
		}

		fmt.Printf("%s to move (e.g. 'e2 e4', 'hint', 'undo', 'redo', 'save <name>', 'load <name>', 'quit'): ", s.board.Turn())
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "quit":
			return nil
		case "hint":
			mv, err := s.engine.Search(s.board, s.depth)
			if err != nil {
				return err
			}
			fmt.Printf("hint: %s (%s)\n", mv.UCI(), mv)
		case "undo":
			s.undo()
		case "redo":
			s.redo()
		case "save":
			if len(args) != 2 {
				fmt.Println("usage: save <name>")
				continue
			}
			if err := s.save(args[1]); err != nil {
				fmt.Println("save failed:", err)
				continue
			}
			fmt.Printf("game saved as %q\n", args[1])
		case "load":
			if len(args) != 2 {
				fmt.Println("usage: load <name>")
				continue
			}
			if err := s.load(args[1]); err != nil {
				fmt.Println("load failed:", err)
				continue
			}
			fmt.Printf("game %q loaded\n", args[1])
		default:
			if err := s.tryMove(args); err != nil {
				fmt.Println(err)
			}
		}
	}
}

// tryMove parses "e2 e4", "e2e4" or "e7e8q" style input. Malformed
// coordinates and illegal moves are reported and leave the board unchanged.
func (s *session) tryMove(args []string) error {
	input := strings.Join(args, "")
	if len(input) != 4 && len(input) != 5 {
		return position.ErrInvalidNotation
	}
	from, err := position.NewSquareFromNotation(input[:2])
	if err != nil {
		return fmt.Errorf("invalid coordinates: %w", err)
	}
	to, err := position.NewSquareFromNotation(input[2:4])
	if err != nil {
		return fmt.Errorf("invalid coordinates: %w", err)
	}
	promotion := board.PieceUnknown
	if len(input) == 5 {
		switch input[4] {
		case 'n':
			promotion = board.PieceKnight
		case 'b':
			promotion = board.PieceBishop
		case 'r':
			promotion = board.PieceRook
		case 'q':
			promotion = board.PieceQueen
		default:
			return fmt.Errorf("invalid promotion piece %q", string(input[4]))
		}
	}

	mv, err := s.board.FindMove(from, to, promotion)
	if err != nil {
		if errors.Is(err, board.ErrIllegalMove) {
			return fmt.Errorf("%w: %s%s", board.ErrIllegalMove, from, to)
		}
		return err
	}
	s.commit(mv)
	return nil
}

func (s *session) snapshot() snapshot {
	return snapshot{
		board:   s.board,
		history: append([]string(nil), s.history...),
	}
}

func (s *session) restore(sn snapshot) {
	s.board = sn.board
	s.history = sn.history
}

func (s *session) commit(mv board.Move) {
	s.undoStack = append(s.undoStack, s.snapshot())
	s.redoStack = s.redoStack[:0]
	s.board = s.board.Clone()
	s.board.Apply(mv)
	s.history = append(s.history, mv.UCI())
}

func (s *session) undo() {
	if len(s.undoStack) == 0 {
		fmt.Println("nothing to undo")
		return
	}
	s.redoStack = append(s.redoStack, s.snapshot())
	s.restore(s.undoStack[len(s.undoStack)-1])
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
}

func (s *session) redo() {
	if len(s.redoStack) == 0 {
		fmt.Println("nothing to redo")
		return
	}
	s.undoStack = append(s.undoStack, s.snapshot())
	s.restore(s.redoStack[len(s.redoStack)-1])
	s.redoStack = s.redoStack[:len(s.redoStack)-1]
}

func (s *session) ensureStore() error {
	if s.store != nil {
		return nil
	}
	store, err := storage.NewStore(s.saveDir)
	if err != nil {
		return err
	}
	s.store = store
	return nil
}

func (s *session) save(name string) error {
	if err := s.ensureStore(); err != nil {
		return err
	}
	return s.store.SaveGame(&storage.SavedGame{
		Name:  name,
		FEN:   s.board.FEN(),
		Moves: append([]string(nil), s.history...),
	})
}

func (s *session) load(name string) error {
	if err := s.ensureStore(); err != nil {
		return err
	}
	g, err := s.store.LoadGame(name)
	if err != nil {
		return err
	}
	b, err := g.Board()
	if err != nil {
		return err
	}
	s.board = b
	s.history = append([]string(nil), g.Moves...)
	s.undoStack = s.undoStack[:0]
	s.redoStack = s.redoStack[:0]
	return nil
}

func (s *session) announce(st board.State) {
	switch st {
	case board.StateCheckmateWhite:
		fmt.Println("checkmate, Black wins")
	case board.StateCheckmateBlack:
		fmt.Println("checkmate, White wins")
	case board.StateStalemate:
		fmt.Println("stalemate, draw")
	case board.StateFiftyMoveViolated:
		fmt.Println("fifty-move rule, draw")
	default:
		fmt.Println("game over:", st)
	}
}
