package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"questboard/internal/storage"
)

// DefaultStateKey is the key the board snapshot is stored under.
const DefaultStateKey = "questBoardData"

// Store holds serialized snapshots by key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Service owns the board state. Every successful mutation is written through
// to the store before it becomes visible; a failed call leaves both unchanged.
type Service struct {
	store Store
	key   string
	now   func() time.Time

	state  State
	lastID int64
}

type Option func(*Service)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithStateKey(key string) Option {
	return func(s *Service) { s.key = key }
}

// NewService loads the board from store, seeding and saving the defaults when
// no snapshot exists yet.
func NewService(ctx context.Context, store Store, opts ...Option) (*Service, error) {
	s := &Service{
		store: store,
		key:   DefaultStateKey,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := store.Get(ctx, s.key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		log.Printf("no saved board under %q, seeding defaults", s.key)
		seed := DefaultState()
		if err := s.save(ctx, seed); err != nil {
			return nil, err
		}
		s.state = seed
	case err != nil:
		return nil, fmt.Errorf("load board: %w", err)
	default:
		st, err := DecodeState(data)
		if err != nil {
			return nil, err
		}
		s.state = st
	}

	s.lastID = s.state.maxID()
	return s, nil
}

// State returns a copy of the current board.
func (s *Service) State() State {
	return s.state.Clone()
}

func (s *Service) Stats() UserStats {
	return s.state.UserStats
}

func (s *Service) History() []HistoryEntry {
	return s.state.History.Entries()
}

// Now is the service clock.
func (s *Service) Now() time.Time {
	return s.now()
}

// nextID hands out creation tokens: the current unix millisecond, bumped to
// stay strictly increasing.
func (s *Service) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Service) save(ctx context.Context, st State) error {
	data, err := EncodeState(st)
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, s.key, data); err != nil {
		log.Printf("save board: %v", err)
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}

// mutate runs fn against a working copy and commits it once saved. fn reports
// whether it changed anything; unchanged copies are not written.
func (s *Service) mutate(ctx context.Context, fn func(st *State) (bool, error)) error {
	next := s.state.Clone()
	changed, err := fn(&next)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := s.save(ctx, next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *Service) AddQuest(ctx context.Context, title string, d Difficulty, recurring bool) (int64, error) {
	id := s.nextID()
	err := s.mutate(ctx, func(st *State) (bool, error) {
		return true, st.AddQuest(id, title, d, recurring)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Service) CompleteQuest(ctx context.Context, id int64) (*RewardResult, error) {
	var res *RewardResult
	err := s.mutate(ctx, func(st *State) (bool, error) {
		var err error
		res, err = st.CompleteQuest(id, s.now(), s.nextID())
		return true, err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// AbandonQuest is a silent no-op for unknown ids.
func (s *Service) AbandonQuest(ctx context.Context, id int64) error {
	return s.mutate(ctx, func(st *State) (bool, error) {
		return st.AbandonQuest(id, s.now(), s.nextID()), nil
	})
}

func (s *Service) CompleteDaily(ctx context.Context, id int64) (*RewardResult, error) {
	var res *RewardResult
	err := s.mutate(ctx, func(st *State) (bool, error) {
		var err error
		res, err = st.CompleteDaily(id, s.now(), s.nextID())
		return true, err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteDaily is a silent no-op for unknown ids.
func (s *Service) DeleteDaily(ctx context.Context, id int64) error {
	return s.mutate(ctx, func(st *State) (bool, error) {
		return st.DeleteDaily(id, s.now(), s.nextID()), nil
	})
}

func (s *Service) AddReward(ctx context.Context, name string, cost int) (int64, error) {
	id := s.nextID()
	err := s.mutate(ctx, func(st *State) (bool, error) {
		return true, st.AddReward(id, name, cost)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// RemoveReward is a silent no-op for unknown ids.
func (s *Service) RemoveReward(ctx context.Context, id int64) error {
	return s.mutate(ctx, func(st *State) (bool, error) {
		return st.RemoveReward(id), nil
	})
}

func (s *Service) Purchase(ctx context.Context, id int64) (*PurchaseResult, error) {
	var res *PurchaseResult
	err := s.mutate(ctx, func(st *State) (bool, error) {
		var err error
		res, err = st.Purchase(id, s.now(), s.nextID())
		return true, err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
