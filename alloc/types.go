package alloc

import "github.com/kernelcraft/bootalloc/internal/mem"

// Address is a location inside a managed address range.
type Address = uintptr

// Size is a byte length, aliased from internal/mem so allocator callers
// need only this package.
type Size = mem.Size

// BaseAllocator is the lifecycle and region-growth capability every
// allocator implementation provides.
type BaseAllocator interface {
	// Init activates the allocator over the contiguous range
	// [base, base+size). It must be called exactly once, before any
	// allocation; the implementation keeps no guard state and does not
	// detect misuse.
	Init(base Address, size Size)

	// AddMemory extends the managed range with a disjoint block.
	// It fails with ErrMemoryOverlap if the block intersects the
	// current range.
	AddMemory(base Address, size Size) error
}

// ByteAllocator is the byte-granularity allocation capability.
type ByteAllocator interface {
	BaseAllocator

	// Alloc claims size bytes and returns their base address, or
	// ErrNoMemory if the free gap cannot hold them.
	Alloc(size, align Size) (Address, error)

	// Dealloc returns a block previously handed out by Alloc.
	// Implementations may restrict which frees take effect.
	Dealloc(addr Address, size Size)

	// TotalBytes reports the size of the whole managed range.
	TotalBytes() Size

	// UsedBytes reports bytes consumed by byte allocations.
	UsedBytes() Size

	// AvailableBytes reports the span still open to the byte side.
	AvailableBytes() Size
}

// PageAllocator is the page-granularity allocation capability.
type PageAllocator interface {
	BaseAllocator

	// PageSize returns the fixed page granularity shared by all page
	// operations.
	PageSize() Size

	// AllocPages claims count contiguous pages whose base address
	// satisfies align. It fails with ErrInvalidParam for a bad
	// alignment and ErrNoMemory when the pages do not fit.
	AllocPages(count int, align Size) (Address, error)

	// DeallocPages returns count pages previously handed out by
	// AllocPages.
	DeallocPages(addr Address, count int)

	// TotalPages reports the page capacity of the whole managed range.
	TotalPages() int

	// UsedPages reports pages consumed by page allocations.
	UsedPages() int

	// AvailablePages reports pages still open to the page side.
	AvailablePages() int
}

// Allocator is the full double-ended capability contract: lifecycle,
// byte allocation, and page allocation over one region.
type Allocator interface {
	ByteAllocator
	PageAllocator
}
