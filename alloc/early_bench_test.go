package alloc

import (
	"testing"

	"github.com/kernelcraft/bootalloc/internal/mem"
)

// BenchmarkEarlyAllocator_Alloc measures byte allocation throughput.
// Every operation is a pure bump, so this is the floor for any allocator
// layered on top during boot.
func BenchmarkEarlyAllocator_Alloc(b *testing.B) {
	a := NewEarly()
	a.Init(0x100000, 1*mem.Gb)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		size := Size(16 + (i%64)*2) // 16-142 bytes
		if _, err := a.Alloc(size, 8); err != nil {
			// Reset rather than grow; the range is finite.
			a.Init(0x100000, 1*mem.Gb)
		}
	}
}

// BenchmarkEarlyAllocator_AllocPages measures page allocation throughput.
func BenchmarkEarlyAllocator_AllocPages(b *testing.B) {
	a := NewEarly()
	a.Init(0, 1*mem.Gb)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		addr, err := a.AllocPages(1, mem.PageSize)
		if err != nil {
			a.Init(0, 1*mem.Gb)
			continue
		}
		a.DeallocPages(addr, 1)
	}
}

// BenchmarkEarlyAllocator_Queries measures the derived accounting calls.
func BenchmarkEarlyAllocator_Queries(b *testing.B) {
	a := NewEarly()
	a.Init(0, 64*mem.Mb)
	if _, err := a.Alloc(0x1234, 1); err != nil {
		b.Fatal(err)
	}
	if _, err := a.AllocPages(7, mem.PageSize); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	var sink Size
	for i := 0; i < b.N; i++ {
		sink += a.UsedBytes() + a.AvailableBytes()
		sink += Size(a.UsedPages() + a.AvailablePages())
	}
	_ = sink
}
