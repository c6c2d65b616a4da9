package sqlite

import (
	"context"
	"sync"

	"github.com/custodia-labs/molkit/internal/core/domain"
	"github.com/custodia-labs/molkit/internal/core/ports/driven"
)

// LazyStore opens the database on first use, so commands that never touch
// history leave the data directory alone.
type LazyStore struct {
	mu      sync.Mutex
	path    string
	prepare func() error
	store   *Store
	closed  bool
}

// NewLazyStore returns a store for dbPath that is opened on first use.
// prepare, if set, runs just before opening (e.g. to create the directory).
func NewLazyStore(dbPath string, prepare func() error) *LazyStore {
	return &LazyStore{path: dbPath, prepare: prepare}
}

// Opened reports whether the database has been opened.
func (l *LazyStore) Opened() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store != nil
}

// Close closes the database if it was opened. Later use returns
// domain.ErrStoreClosed.
func (l *LazyStore) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	if l.store == nil {
		return nil
	}
	return l.store.Close()
}

// ConversionStore returns a ConversionStore that opens the database on
// its first call.
func (l *LazyStore) ConversionStore() driven.ConversionStore {
	return &lazyConversionStore{lazy: l}
}

func (l *LazyStore) open() (driven.ConversionStore, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, domain.ErrStoreClosed
	}
	if l.store == nil {
		if l.prepare != nil {
			if err := l.prepare(); err != nil {
				return nil, err
			}
		}
		store, err := NewStore(l.path)
		if err != nil {
			return nil, err
		}
		l.store = store
	}
	return l.store.ConversionStore(), nil
}

// lazyConversionStore implements driven.ConversionStore over a LazyStore.
type lazyConversionStore struct {
	lazy *LazyStore
}

var _ driven.ConversionStore = (*lazyConversionStore)(nil)

func (s *lazyConversionStore) Save(ctx context.Context, conversion *domain.Conversion) error {
	store, err := s.lazy.open()
	if err != nil {
		return err
	}
	return store.Save(ctx, conversion)
}

func (s *lazyConversionStore) Get(ctx context.Context, id string) (*domain.Conversion, error) {
	store, err := s.lazy.open()
	if err != nil {
		return nil, err
	}
	return store.Get(ctx, id)
}

func (s *lazyConversionStore) List(ctx context.Context, limit int) ([]domain.Conversion, error) {
	store, err := s.lazy.open()
	if err != nil {
		return nil, err
	}
	return store.List(ctx, limit)
}

func (s *lazyConversionStore) Clear(ctx context.Context) error {
	store, err := s.lazy.open()
	if err != nil {
		return err
	}
	return store.Clear(ctx)
}
