package mongostore

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/creatorlabs/creator-platform/internal/store"
)

// toBSON translates the filter tree into a MongoDB query document. AND
// branches merge into one flat document when their fields are distinct, so
// simple conjunctions query the same shape a hand-written filter would.
func toBSON(f store.Filter) bson.M {
	switch f.Op {
	case store.OpAll, "":
		return bson.M{}
	case store.OpEq:
		return bson.M{f.Field: f.Value}
	case store.OpContains:
		return bson.M{f.Field: bson.M{"$in": bson.A{f.Value}}}
	case store.OpIn:
		return bson.M{f.Field: bson.M{"$in": bson.A(f.Values)}}
	case store.OpSubstringCI:
		q, _ := f.Value.(string)
		return bson.M{f.Field: primitive.Regex{Pattern: q, Options: "i"}}
	case store.OpAnd:
		merged := bson.M{}
		for _, sub := range f.Sub {
			m := toBSON(sub)
			for k, v := range m {
				if _, dup := merged[k]; dup {
					return andList(f.Sub)
				}
				merged[k] = v
			}
		}
		return merged
	case store.OpOr:
		parts := make(bson.A, len(f.Sub))
		for i, sub := range f.Sub {
			parts[i] = toBSON(sub)
		}
		return bson.M{"$or": parts}
	}
	return bson.M{}
}

func andList(sub []store.Filter) bson.M {
	parts := make(bson.A, len(sub))
	for i, s := range sub {
		parts[i] = toBSON(s)
	}
	return bson.M{"$and": parts}
}
