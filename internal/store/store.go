package store

import "context"

// Document is one stored record as returned by reads. Every document carries
// a server-generated "id" string assigned at insert.
type Document = map[string]interface{}

// Store is the contract both backends implement. Insert returns the generated
// identifier; Find returns up to limit matches in store-native order and an
// empty slice (not an error) when nothing matches; Collections enumerates
// collection names for the diagnostics endpoint.
type Store interface {
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	Find(ctx context.Context, collection string, f Filter, limit int64) ([]Document, error)
	Collections(ctx context.Context) ([]string, error)
}
