// Package common contains small helpers shared across the client packages.
package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Use it to remove sensitive data such as passwords from memory once they are
// no longer needed.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
