// Package mem houses the size units, page geometry, and alignment helpers
// shared by the allocators. The goal is to keep the arithmetic in one place
// and independent from the public API so higher-level packages can stay
// focused on allocation policy.
package mem

// Size is a byte length within a managed address range. It aliases uintptr
// so sizes and addresses mix without conversion noise in allocator code.
type Size = uintptr

// Common memory block sizes.
const (
	Byte Size = 1
	Kb        = 1024 * Byte
	Mb        = 1024 * Kb
	Gb        = 1024 * Mb
)

const (
	// PageSize is the fixed page granularity of the page-side allocator.
	// It is a build-time constant shared by every page operation, never a
	// runtime configuration value.
	PageSize Size = 4 * Kb

	// PageShift is log2(PageSize), for converting byte spans to page counts
	// without a division.
	PageShift = 12
)
