package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/skewer-chess/skewer/board"
)

const keyPrefixGame = "game/"

var (
	ErrGameNotFound = errors.New("saved game not found")
)

// SavedGame captures everything needed to resume: the FEN carries the full
// position (placement, side to move, castle rights, en passant target and
// both clocks), the move list is kept for replay display.
type SavedGame struct {
	Name    string    `json:"name"`
	FEN     string    `json:"fen"`
	Moves   []string  `json:"moves"`
	SavedAt time.Time `json:"saved_at"`
}

// Board reconstructs the position, rejecting corrupted records before they
// ever reach the move generator or search.
func (g *SavedGame) Board() (*board.Board, error) {
	b, err := board.NewBoard(board.WithFEN(g.FEN))
	if err != nil {
		return nil, fmt.Errorf("corrupted saved game %q: %w", g.Name, err)
	}
	return b, nil
}

// Store wraps BadgerDB for persistent saved games.
type Store struct {
	db *badger.DB
}

func NewStore(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveGame(g *SavedGame) error {
	if g.SavedAt.IsZero() {
		g.SavedAt = time.Now()
	}
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode saved game: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefixGame+g.Name), data)
	})
}

func (s *Store) LoadGame(name string) (*SavedGame, error) {
	var g SavedGame
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefixGame + name))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", ErrGameNotFound, name)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &g)
		})
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Store) DeleteGame(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefixGame + name))
	})
}

func (s *Store) ListGames() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefixGame)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, string(it.Item().Key()[len(keyPrefixGame):]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
