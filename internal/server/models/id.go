package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID returns a fresh 24-hex identifier, the same shape on every backend.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID reports whether s has the identifier shape storage expects.
func IsValidID(s string) bool {
	return primitive.IsValidObjectID(s)
}
