package mystore

import (
	"context"
	"sort"
	"sync"
)

type inMemoryStore[T any] struct {
	sync.Mutex
	items map[string]T
}

func newInMemoryStore[T any](c context.Context) (*inMemoryStore[T], func(), error) {
	return &inMemoryStore[T]{
		items: make(map[string]T),
	}, func() {}, nil
}

func (s *inMemoryStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	s.Lock()
	defer s.Unlock()

	// Within this block everything is serialized
	return f(context.WithValue(c, ctxTransactionKey{}, true))
}

func (s *inMemoryStore[T]) Put(c context.Context, uid string, value T) error {
	if !inTransaction(c) {
		s.Lock()
		defer s.Unlock()
	}

	s.items[uid] = value

	return nil
}

func (s *inMemoryStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	if !inTransaction(c) {
		s.Lock()
		defer s.Unlock()
	}

	result, exists := s.items[uid]

	return result, exists, nil
}

// List returns items ordered by uid so callers get a stable result.
func (s *inMemoryStore[T]) List(c context.Context) ([]T, error) {
	if !inTransaction(c) {
		s.Lock()
		defer s.Unlock()
	}

	uids := make([]string, 0, len(s.items))
	for uid := range s.items {
		uids = append(uids, uid)
	}
	sort.Strings(uids)

	result := make([]T, 0, len(s.items))
	for _, uid := range uids {
		result = append(result, s.items[uid])
	}

	return result, nil
}

func inTransaction(c context.Context) bool {
	return c.Value(ctxTransactionKey{}) != nil
}
