package mem

// Alignment utilities for allocator frontier math. All helpers require a
// power-of-two alignment; callers validate inputs that originate outside
// the module.

// AlignUp returns n aligned up to the next multiple of align.
//
// Example:
//
//	AlignUp(1, 8)  = 8
//	AlignUp(8, 8)  = 8
//	AlignUp(9, 8)  = 16
func AlignUp(n, align Size) Size {
	return (n + align - 1) &^ (align - 1)
}

// AlignDown returns n aligned down to the previous multiple of align.
//
// Example:
//
//	AlignDown(1, 8)  = 0
//	AlignDown(8, 8)  = 8
//	AlignDown(15, 8) = 8
func AlignDown(n, align Size) Size {
	return n &^ (align - 1)
}

// IsPowerOfTwo reports whether n is a nonzero power of two.
func IsPowerOfTwo(n Size) bool {
	return n != 0 && n&(n-1) == 0
}

// PagesFor returns the number of whole pages contained in n bytes.
// Fractional tail bytes are dropped.
func PagesFor(n Size) int {
	return int(n >> PageShift)
}
