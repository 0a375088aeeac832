package alloc

import "github.com/kernelcraft/bootalloc/internal/mem"

// EarlyAllocator is the phase-0 allocator: a double-ended bump allocator
// over one contiguous address range, used before the permanent byte and
// page allocators can work.
//
// Key characteristics:
//   - O(1) initialization and O(1) allocation: pure bump pointers, no free
//     lists, no indexes, no maps
//   - Byte allocations grow forward from the low end, page allocations
//     grow backward from the high end; the frontiers never cross
//   - Dealloc takes effect only for the most recent byte allocation
//     (LIFO); any other free is a silent no-op and the space leaks until
//     the allocator is retired
//   - DeallocPages rolls the page frontier back unconditionally; callers
//     must free pages in exact reverse allocation order or not at all
//
// The zero value is inactive. Init must be called exactly once before any
// allocation; calling it twice, or allocating before it, is a caller
// contract violation with unspecified behavior. Failed operations never
// mutate any cursor.
type EarlyAllocator struct {
	// start is the lowest managed address. Fixed by Init; lowered only
	// when AddMemory merges a block below it.
	start Address

	// end is the exclusive upper bound of the managed range, raised by
	// AddMemory.
	end Address

	// bPos is the byte frontier: the next byte allocation lands here.
	// Bytes-used is exactly [start, bPos).
	bPos Address

	// pPos is the page frontier: pages-used is exactly [pPos, end).
	pPos Address
}

// NewEarly returns an inactive EarlyAllocator. Call Init before use.
func NewEarly() *EarlyAllocator {
	return &EarlyAllocator{}
}

// Init activates the allocator over [base, base+size): both sub-regions
// start empty and the whole range is free gap.
func (a *EarlyAllocator) Init(base Address, size Size) {
	a.start = base
	a.end = base + size
	a.bPos = a.start
	a.pPos = a.end
}

// AddMemory merges a disjoint block into the managed range. A block
// strictly below start lowers start; a block strictly above end raises end
// and resets the page frontier to the new end, making the whole upper
// extension available to the page side.
//
// Resetting the frontier drops the accounting of any pages allocated
// before the extension, so callers must extend upward before handing out
// pages from the old top. The address space between a non-adjacent block
// and the old bounds is adopted into the range as-is.
func (a *EarlyAllocator) AddMemory(base Address, size Size) error {
	if base < a.end && base+size > a.start {
		return ErrMemoryOverlap
	}
	if base < a.start {
		a.start = base
	}
	if base+size > a.end {
		a.end = base + size
		a.pPos = a.end
	}
	return nil
}

// gap returns the live free gap between the two frontiers.
func (a *EarlyAllocator) gap() Size {
	return a.pPos - a.bPos
}

// Alloc claims size bytes from the low end of the free gap and returns
// their base address. Placement is natural: align is part of the contract
// signature but the frontier is neither searched nor padded, so callers
// needing stricter alignment must size earlier requests accordingly.
//
// Alloc fails with ErrNoMemory when size exceeds the gap to the page
// frontier, which can be smaller than AvailableBytes once pages occupy
// the high end of the range.
func (a *EarlyAllocator) Alloc(size, align Size) (Address, error) {
	_ = align // natural placement only
	if size > a.gap() {
		return 0, ErrNoMemory
	}
	addr := a.bPos
	a.bPos += size
	return addr, nil
}

// Dealloc rolls the byte frontier back iff [addr, addr+size) is exactly
// the most recent allocation. Out-of-order frees are deliberate no-ops:
// the block leaks until the early allocator is retired wholesale.
func (a *EarlyAllocator) Dealloc(addr Address, size Size) {
	if addr+size == a.bPos {
		a.bPos -= size
	}
}

// TotalBytes reports the size of the whole managed range.
func (a *EarlyAllocator) TotalBytes() Size {
	return a.end - a.start
}

// UsedBytes reports bytes consumed by byte allocations.
func (a *EarlyAllocator) UsedBytes() Size {
	return a.bPos - a.start
}

// AvailableBytes reports the whole span above the byte frontier. It
// includes any pages-used tail, so TotalBytes == UsedBytes +
// AvailableBytes holds at every point; the tighter Alloc precondition is
// the live gap to the page frontier.
func (a *EarlyAllocator) AvailableBytes() Size {
	return a.end - a.bPos
}

// PageSize returns the fixed page granularity. It is a build-time
// constant, not a runtime setting.
func (a *EarlyAllocator) PageSize() Size {
	return mem.PageSize
}

// AllocPages claims count contiguous pages from the high end of the free
// gap and returns their base address. align must be a power of two and a
// multiple of PageSize. The new frontier is rounded down to align before
// the bounds check, so the returned base genuinely satisfies it; bytes
// skipped by the rounding leak, consistent with the no-reclaim discipline.
func (a *EarlyAllocator) AllocPages(count int, align Size) (Address, error) {
	if count <= 0 || !mem.IsPowerOfTwo(align) || align%mem.PageSize != 0 {
		return 0, ErrInvalidParam
	}
	need := Size(count) * mem.PageSize
	if need > a.gap() {
		return 0, ErrNoMemory
	}
	pos := mem.AlignDown(a.pPos-need, align)
	if pos < a.bPos {
		return 0, ErrNoMemory
	}
	a.pPos = pos
	return pos, nil
}

// DeallocPages rolls the page frontier forward over count pages. There is
// no validation that addr matches the current frontier: callers must free
// in exact reverse allocation order, or the frontier silently corrupts.
// Freed pages are never reused out of order and never returned to any
// backing store.
func (a *EarlyAllocator) DeallocPages(addr Address, count int) {
	_ = addr // trusted to name the block at the current frontier
	a.pPos += Size(count) * mem.PageSize
}

// TotalPages reports the page capacity of the whole managed range.
// Ranges that are not page-multiples lose their fractional tail.
func (a *EarlyAllocator) TotalPages() int {
	return mem.PagesFor(a.TotalBytes())
}

// UsedPages reports pages consumed by page allocations.
func (a *EarlyAllocator) UsedPages() int {
	return mem.PagesFor(a.end - a.pPos)
}

// AvailablePages reports pages still open to the page side, measured down
// to start. Like AvailableBytes, it is the contract-level view; the
// tighter AllocPages bound is the live gap to the byte frontier.
func (a *EarlyAllocator) AvailablePages() int {
	return mem.PagesFor(a.pPos - a.start)
}

// Compile-time interface check
var _ Allocator = (*EarlyAllocator)(nil)
