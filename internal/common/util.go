// Package common contains small shared helpers used across client layers.
package common

// WipeByteArray zeroes the buffer in place. Call it (usually via defer) as
// soon as a password or other sensitive value is no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
