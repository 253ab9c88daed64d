package db

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID marks an externally supplied identifier that is not a valid
// store key. Callers must map it to a client error before querying.
var ErrInvalidID = errors.New("invalid id format")

// ParseID converts a raw path identifier to the store's native key.
func ParseID(raw string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return oid, nil
}
