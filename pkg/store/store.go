// Package store owns the users, products and orders collections and mirrors
// them into a storage.Backend after every mutation.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"shopdata/pkg/domain"
	"shopdata/pkg/env"
	"shopdata/pkg/storage"
)

// Backend keys, one JSON value per key.
const (
	UsersKey         = "ecommerce_users"
	ProductsKey      = "ecommerce_products"
	OrdersKey        = "ecommerce_orders"
	NextUserIDKey    = "ecommerce_nextUserId"
	NextProductIDKey = "ecommerce_nextProductId"
	NextOrderIDKey   = "ecommerce_nextOrderId"
)

// Counters holds the next id each collection will assign.
type Counters struct {
	NextUserID    int
	NextProductID int
	NextOrderID   int
}

type Option func(*DataStore)

// WithLogger sets the logger used for swallowed storage failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *DataStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *DataStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLegacyReseed makes Init overwrite any restored state with the sample
// data, as the first releases did.
func WithLegacyReseed() Option {
	return func(s *DataStore) {
		s.legacyReseed = true
	}
}

// DataStore is the single authority for the three collections and the only
// writer of their persisted form.
type DataStore struct {
	mu           sync.RWMutex
	backend      storage.Backend
	env          env.Environment
	logger       *slog.Logger
	now          func() time.Time
	legacyReseed bool
	// detached is set when Init could not read the backend. The keys may
	// hold state this process never saw, so nothing is written for the
	// life of the store.
	detached bool

	users    []domain.User
	products []domain.Product
	orders   []domain.Order
	counters Counters
}

// New builds an empty store. Call Init before use. A nil environment probes
// the backend directly.
func New(backend storage.Backend, environment env.Environment, opts ...Option) *DataStore {
	if environment == nil {
		environment = env.Probe{Backend: backend}
	}
	s := &DataStore{
		backend:  backend,
		env:      environment,
		logger:   slog.Default(),
		now:      func() time.Time { return time.Now().UTC() },
		users:    []domain.User{},
		products: []domain.Product{},
		orders:   []domain.Order{},
		counters: Counters{NextUserID: 1, NextProductID: 1, NextOrderID: 1},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Init restores persisted state and seeds sample data when nothing was
// restored. Unreadable entries are logged and keep their defaults. When the
// backend cannot be read at all the store runs detached: it seeds in memory
// and never writes, so a backend that recovers later is left untouched.
func (s *DataStore) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.storageReady() {
		s.detached = true
		s.seedLocked()
		s.logger.Warn("storage unavailable at startup, changes will not be persisted")
		return
	}
	restored, err := s.restoreLocked()
	if err != nil {
		s.detached = true
		s.logger.Error("read from storage failed, changes will not be persisted", "err", err)
	}
	if restored && !s.legacyReseed {
		s.repairCountersLocked()
		s.logger.Info("store restored",
			"users", len(s.users), "products", len(s.products), "orders", len(s.orders))
		return
	}
	if restored {
		s.logger.Warn("legacy reseed: discarding restored state")
	}
	s.seedLocked()
	s.persistLocked()
	s.logger.Info("store seeded with sample data")
}

// Counters returns the next ids to be assigned.
func (s *DataStore) Counters() Counters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counters
}

// Detached reports whether the store gave up on persistence at Init.
func (s *DataStore) Detached() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.detached
}

func (s *DataStore) storageReady() bool {
	return s.backend != nil && !s.detached && s.env.StorageAvailable()
}

// restoreLocked reports whether at least one collection was read back. The
// error joins every backend read failure; unparsable values are only logged.
func (s *DataStore) restoreLocked() (bool, error) {
	var errs []error
	restored := false
	if users, ok, err := readJSON[[]domain.User](s, UsersKey); err != nil {
		errs = append(errs, err)
	} else if ok {
		s.users = nonNil(users)
		restored = true
	}
	if products, ok, err := readJSON[[]domain.Product](s, ProductsKey); err != nil {
		errs = append(errs, err)
	} else if ok {
		s.products = nonNil(products)
		restored = true
	}
	if orders, ok, err := readJSON[[]domain.Order](s, OrdersKey); err != nil {
		errs = append(errs, err)
	} else if ok {
		s.orders = nonNil(orders)
		restored = true
	}
	counters := []struct {
		key string
		dst *int
	}{
		{NextUserIDKey, &s.counters.NextUserID},
		{NextProductIDKey, &s.counters.NextProductID},
		{NextOrderIDKey, &s.counters.NextOrderID},
	}
	for _, c := range counters {
		n, ok, err := s.readCounter(c.key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			*c.dst = n
		}
	}
	return restored, errors.Join(errs...)
}

func (s *DataStore) read(key string) (string, bool, error) {
	raw, ok, err := s.backend.Get(key)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", key, err)
	}
	return raw, ok, nil
}

func readJSON[T any](s *DataStore, key string) (T, bool, error) {
	var out T
	raw, ok, err := s.read(key)
	if err != nil || !ok {
		return out, false, err
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		s.logger.Error("parse stored entry failed", "key", key, "err", err)
		var zero T
		return zero, false, nil
	}
	return out, true, nil
}

func (s *DataStore) readCounter(key string) (int, bool, error) {
	raw, ok, err := s.read(key)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		s.logger.Error("parse stored counter failed", "key", key, "value", raw, "err", err)
		return 0, false, nil
	}
	return n, true, nil
}

// repairCountersLocked raises each counter past the highest numeric id
// present so restored collections never get an id reissued.
func (s *DataStore) repairCountersLocked() {
	fix := func(name string, counter *int, maxID int) {
		if *counter <= maxID {
			s.logger.Warn("counter behind stored ids, advancing", "collection", name, "from", *counter, "to", maxID+1)
			*counter = maxID + 1
		}
	}
	fix("users", &s.counters.NextUserID, maxNumericID(s.users, userID))
	fix("products", &s.counters.NextProductID, maxNumericID(s.products, productID))
	fix("orders", &s.counters.NextOrderID, maxNumericID(s.orders, orderID))
}

type entry struct {
	key   string
	value string
}

func (s *DataStore) encodeLocked() ([]entry, error) {
	users, err := json.Marshal(nonNil(s.users))
	if err != nil {
		return nil, fmt.Errorf("encode users: %w", err)
	}
	products, err := json.Marshal(nonNil(s.products))
	if err != nil {
		return nil, fmt.Errorf("encode products: %w", err)
	}
	orders, err := json.Marshal(nonNil(s.orders))
	if err != nil {
		return nil, fmt.Errorf("encode orders: %w", err)
	}
	return []entry{
		{UsersKey, string(users)},
		{ProductsKey, string(products)},
		{OrdersKey, string(orders)},
		{NextUserIDKey, strconv.Itoa(s.counters.NextUserID)},
		{NextProductIDKey, strconv.Itoa(s.counters.NextProductID)},
		{NextOrderIDKey, strconv.Itoa(s.counters.NextOrderID)},
	}, nil
}

// persistLocked rewrites all six entries. Failures are logged and never
// reach the caller; the in-memory state stays authoritative.
func (s *DataStore) persistLocked() {
	if !s.storageReady() {
		return
	}
	entries, err := s.encodeLocked()
	if err != nil {
		s.logger.Error("save to storage failed", "err", err)
		return
	}
	var errs []error
	for _, e := range entries {
		if err := s.backend.Set(e.key, e.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.key, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		s.logger.Error("save to storage failed", "err", err)
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
