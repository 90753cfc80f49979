package storage

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidID = errors.New("invalid id")

// ParseID turns an external id string into an ObjectID.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// Serialize replaces the internal _id key with a string id. Empty input is
// returned unchanged; the input map itself is never modified.
func Serialize(doc bson.M) bson.M {
	if len(doc) == 0 {
		return doc
	}

	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	rawID, ok := out["_id"]
	if !ok {
		return out
	}
	delete(out, "_id")

	switch id := rawID.(type) {
	case primitive.ObjectID:
		out["id"] = id.Hex()
	case string:
		out["id"] = id
	default:
		out["id"] = fmt.Sprint(id)
	}
	return out
}

func SerializeAll(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Serialize(doc))
	}
	return out
}
