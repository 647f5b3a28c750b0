// Package types defines the error taxonomy and the small shared types used
// across the gojaq packages.
//
// This package contains type definitions for:
//   - Error: structured errors with codes and categories
//   - Key: the (name, arity) pair functions are registered and called under
package types

import "strconv"

// Key identifies a function by name and the number of filter operands it takes.
type Key struct {
	Name  string
	Arity int
}

// String renders the key as name/arity.
func (k Key) String() string {
	return k.Name + "/" + strconv.Itoa(k.Arity)
}
