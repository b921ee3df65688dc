// Package server exposes puzzle generation over HTTP.
//
// The API persists generated puzzles in a Store so they can be listed,
// fetched, and re-rendered later. Two store backends exist: an in-memory map
// for development and single-instance use, and MongoDB for deployments that
// need persistence across restarts.
package server

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wordgrid/wordgrid/pkg/errors"
)

// Record is one stored puzzle. Data holds the serialized puzzle JSON so the
// store does not depend on the puzzle wire format.
type Record struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title,omitempty" bson:"title,omitempty"`
	Size      int       `json:"size" bson:"size"`
	Mode      string    `json:"mode" bson:"mode"`
	Seed      uint64    `json:"seed" bson:"seed"`
	Placed    int       `json:"placed" bson:"placed"`
	Unplaced  []string  `json:"unplaced,omitempty" bson:"unplaced,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	Data      []byte    `json:"-" bson:"data"`
}

// Store persists puzzle records.
type Store interface {
	// Save stores a record, assigning an ID and timestamp if unset.
	Save(ctx context.Context, rec *Record) error

	// Get returns a record by ID. Missing records yield PUZZLE_NOT_FOUND.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns all records, most recent first.
	List(ctx context.Context) ([]*Record, error)

	// Close releases store resources.
	Close(ctx context.Context) error
}

// MemoryStore holds records in memory. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

// Save stores a record, assigning an ID and timestamp if unset.
func (s *MemoryStore) Save(_ context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.records[rec.ID] = rec
	s.mu.Unlock()
	return nil
}

// Get returns a record by ID.
func (s *MemoryStore) Get(_ context.Context, id string) (*Record, error) {
	s.mu.RLock()
	rec := s.records[id]
	s.mu.RUnlock()

	if rec == nil {
		return nil, errors.New(errors.ErrCodePuzzleNotFound, "puzzle %s not found", id)
	}
	return rec, nil
}

// List returns all records, most recent first.
func (s *MemoryStore) List(_ context.Context) ([]*Record, error) {
	s.mu.RLock()
	list := make([]*Record, 0, len(s.records))
	for _, rec := range s.records {
		list = append(list, rec)
	}
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close(context.Context) error { return nil }
