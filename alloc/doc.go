// Package alloc provides the allocation capability contract used during
// early boot, and EarlyAllocator, the phase-0 implementation that serves
// requests before the permanent byte and page allocators are online.
//
// # Overview
//
// Boot code needs memory before any real heap or page-frame allocator has
// been set up. EarlyAllocator covers that window with the simplest scheme
// that works: one contiguous address range, byte allocations bumped forward
// from the low end, page allocations bumped backward from the high end. The
// two frontiers approach each other across a shrinking free gap and never
// cross.
//
//	[ bytes-used | free gap | pages-used ]
//	start       bPos       pPos        end
//
// # Capability Contract
//
// The contract is split into three interfaces so later allocators can
// implement a subset:
//
//   - BaseAllocator: Init and AddMemory (lifecycle and region growth)
//   - ByteAllocator: byte-granularity Alloc/Dealloc plus byte accounting
//   - PageAllocator: page-granularity AllocPages/DeallocPages plus page
//     accounting and the fixed PageSize
//
// Allocator combines all three; a generic front-end consumes whichever
// capability the current boot phase requires.
//
// # Usage Example
//
//	a := alloc.NewEarly()
//	a.Init(base, 16*mem.Mb)
//
//	buf, err := a.Alloc(64, 8)
//	if err != nil {
//	    return err
//	}
//
//	stack, err := a.AllocPages(4, a.PageSize())
//	if err != nil {
//	    return err
//	}
//
// # Deallocation Discipline
//
// Both sides free in strict LIFO order only. Freeing the most recent byte
// allocation rolls the frontier back; freeing anything else is a silent
// no-op and the space leaks until the whole allocator is retired. Page
// frees roll the frontier back unconditionally with no validation at all,
// so out-of-order page frees corrupt the frontier. This is the documented
// contract of a phase-0 allocator, not a defect: its entire backing range
// is handed off wholesale once the permanent allocators take over.
//
// # Thread Safety
//
// EarlyAllocator is not thread-safe. Early boot runs a single execution
// context; if that ever changes, callers must wrap the allocator in
// external mutual exclusion.
//
// # Related Packages
//
//   - github.com/kernelcraft/bootalloc/internal/mem: page geometry and
//     alignment helpers
//   - github.com/kernelcraft/bootalloc/internal/mmregion: anonymous
//     mappings for exercising the allocator in hosted environments
package alloc
