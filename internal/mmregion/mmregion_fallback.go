//go:build !unix

package mmregion

import "fmt"

// Map allocates a heap-backed region on platforms without a usable mmap.
// The cleanup is a no-op; the garbage collector reclaims the slice once
// the caller drops it.
func Map(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmregion: invalid region size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}
