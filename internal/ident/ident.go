// Package ident generates item identifiers.
package ident

import "github.com/google/uuid"

// Func produces a fresh identifier. Controllers accept one so tests can pin ids.
type Func func() string

// New returns a random (version 4) UUID string read from crypto/rand.
func New() string {
	return uuid.NewString()
}
