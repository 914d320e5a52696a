// Package memstore is an in-memory Store used by tests and as a dev backend
// when no MongoDB is configured.
package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/creatorlabs/creator-platform/internal/store"
)

type Store struct {
	mu    sync.RWMutex
	colls map[string][]store.Document
}

func New() *Store {
	return &Store{colls: make(map[string][]store.Document)}
}

// Insert normalizes doc through its JSON form so stored field names match the
// wire names, then appends it under collection. Documents keep insertion order.
func (s *Store) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	var d store.Document
	if err := json.Unmarshal(b, &d); err != nil {
		return "", err
	}
	id := uuid.NewString()
	d["id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.colls[collection] = append(s.colls[collection], d)
	return id, nil
}

func (s *Store) Find(ctx context.Context, collection string, f store.Filter, limit int64) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []store.Document{}
	for _, d := range s.colls[collection] {
		if matches(d, f) {
			out = append(out, d)
			if limit > 0 && int64(len(out)) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (s *Store) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.colls))
	for name := range s.colls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func matches(d store.Document, f store.Filter) bool {
	switch f.Op {
	case store.OpAll, "":
		return true
	case store.OpEq:
		return eq(d[f.Field], f.Value)
	case store.OpContains:
		arr, ok := d[f.Field].([]interface{})
		if !ok {
			return false
		}
		for _, v := range arr {
			if eq(v, f.Value) {
				return true
			}
		}
		return false
	case store.OpIn:
		for _, v := range f.Values {
			if eq(d[f.Field], v) {
				return true
			}
		}
		return false
	case store.OpSubstringCI:
		s, ok := d[f.Field].(string)
		if !ok {
			return false
		}
		q, _ := f.Value.(string)
		return strings.Contains(strings.ToLower(s), strings.ToLower(q))
	case store.OpAnd:
		for _, sub := range f.Sub {
			if !matches(d, sub) {
				return false
			}
		}
		return true
	case store.OpOr:
		for _, sub := range f.Sub {
			if matches(d, sub) {
				return true
			}
		}
		return false
	}
	return false
}

// eq compares loosely across the types a JSON round-trip produces; numbers
// are compared by their printed form so int filters match float64 documents.
func eq(a, b interface{}) bool {
	if a == b {
		return true
	}
	switch a.(type) {
	case float64, int, int64:
		return fmt.Sprint(a) == fmt.Sprint(b)
	}
	return false
}
