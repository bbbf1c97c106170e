package storage

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"

	"github.com/chessadvent/chessadvent/internal/piece"
	"github.com/chessadvent/chessadvent/internal/state"
)

// Entry is the cached value for one board state fingerprint: the
// BoardState summary (pieces-and-moves, material histogram) plus the
// evaluator's memoized score for a given self team and future-sight
// depth, so a repeated (state, team, depth) triple need not recompute
// move generation or the recursive look-ahead.
type Entry struct {
	PiecesAndMovesByTeam map[piece.Team][]state.PieceMoves `json:"pieces_and_moves_by_team"`
	MaterialByTeam       map[piece.Team]map[piece.Kind]int `json:"material_by_team"`
	TeamsPresent         map[piece.Team]bool                `json:"teams_present"`
	Score                float64                             `json:"score"`
}

// Store wraps BadgerDB as a position cache keyed by state fingerprint.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the Badger database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenDefault opens the database at the platform-default (or
// CHESSADVENT_CACHE_DIR-overridden) cache directory.
func OpenDefault() (*Store, error) {
	dir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CacheKey composes a Badger key from a board's state fingerprint, the
// evaluating team, and the look-ahead depth: the same fingerprint
// scored for a different team or depth is a different cache entry.
func CacheKey(stateID string, team piece.Team, futureDepth int) string {
	b, _ := json.Marshal([3]any{stateID, team, futureDepth})
	return string(b)
}

// Put stores entry under key.
func (s *Store) Put(key string, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Get looks up key, returning ok=false (and a zero Entry, nil error) if
// it is not present.
func (s *Store) Get(key string) (Entry, bool, error) {
	var entry Entry
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})

	return entry, found, err
}
