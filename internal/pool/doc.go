// Package pool provides sync.Pool backed buffers and slices used while plotting
// and encoding curves.
package pool
