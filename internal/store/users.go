// Package store holds the in-memory user list. Records are addressed by their
// zero-based position, and deleting one shifts every later record down by
// one.
package store

import (
	"sync"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	"utility-calculator/internal/models"
)

var ErrNotFound = errors.New("user not found")

type Option func(*Users)

// WithObserver registers a callback invoked with the record count after every
// change. It runs under the store lock and must not call back into the store.
func WithObserver(fn func(count int)) Option {
	return func(u *Users) {
		u.observe = fn
	}
}

// Users is safe for concurrent use. Records are deep-copied on the way in and
// out so callers never share state with the store.
type Users struct {
	mu      sync.RWMutex
	records []models.Record
	observe func(count int)
}

func NewUsers(opts ...Option) *Users {
	u := &Users{}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Create appends rec and returns the number of stored records.
func (u *Users) Create(rec models.Record) (int, error) {
	cp, err := clone(rec)
	if err != nil {
		return 0, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.records = append(u.records, cp)
	u.notify()
	return len(u.records), nil
}

// List returns every record in insertion order.
func (u *Users) List() ([]models.Record, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]models.Record, 0, len(u.records))
	for _, rec := range u.records {
		cp, err := clone(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, nil
}

func (u *Users) Get(index int) (models.Record, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if !u.inRange(index) {
		return nil, ErrNotFound
	}
	return clone(u.records[index])
}

// Update replaces the record at index wholesale.
func (u *Users) Update(index int, rec models.Record) error {
	cp, err := clone(rec)
	if err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.inRange(index) {
		return ErrNotFound
	}
	u.records[index] = cp
	return nil
}

func (u *Users) Delete(index int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.inRange(index) {
		return ErrNotFound
	}
	u.records = append(u.records[:index], u.records[index+1:]...)
	u.notify()
	return nil
}

func (u *Users) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.records)
}

func (u *Users) inRange(index int) bool {
	return index >= 0 && index < len(u.records)
}

func (u *Users) notify() {
	if u.observe != nil {
		u.observe(len(u.records))
	}
}

func clone(rec models.Record) (models.Record, error) {
	out := make(models.Record, len(rec))
	if err := copier.CopyWithOption(&out, rec, copier.Option{DeepCopy: true}); err != nil {
		return nil, errors.Wrap(err, "copy record")
	}
	return out, nil
}
