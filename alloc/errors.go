package alloc

import "errors"

var (
	// ErrMemoryOverlap indicates a region extension that intersects the
	// currently managed range.
	ErrMemoryOverlap = errors.New("alloc: added memory overlaps managed region")

	// ErrNoMemory indicates a request larger than the free gap available
	// to the requesting side.
	ErrNoMemory = errors.New("alloc: insufficient space in free gap")

	// ErrInvalidParam indicates a page alignment that is not a power of
	// two, not a multiple of the page size, or a non-positive page count.
	ErrInvalidParam = errors.New("alloc: invalid page alignment or count")
)
