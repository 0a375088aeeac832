package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignUp(t *testing.T) {
	cases := []struct {
		n, align, want Size
	}{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{1, PageSize, PageSize},
		{PageSize, PageSize, PageSize},
		{PageSize + 1, PageSize, 2 * PageSize},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, AlignUp(c.n, c.align), "AlignUp(%#x, %#x)", c.n, c.align)
	}
}

func TestAlignDown(t *testing.T) {
	cases := []struct {
		n, align, want Size
	}{
		{0, 8, 0},
		{1, 8, 0},
		{8, 8, 8},
		{15, 8, 8},
		{PageSize - 1, PageSize, 0},
		{2*PageSize + 5, PageSize, 2 * PageSize},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, AlignDown(c.n, c.align), "AlignDown(%#x, %#x)", c.n, c.align)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []Size{1, 2, 4, 8, PageSize, 1 << 30} {
		assert.True(t, IsPowerOfTwo(n), "%#x should be a power of two", n)
	}
	for _, n := range []Size{0, 3, 6, 0x1500, 0x3000, PageSize + 1} {
		assert.False(t, IsPowerOfTwo(n), "%#x should not be a power of two", n)
	}
}

func TestPagesFor(t *testing.T) {
	assert.Equal(t, 0, PagesFor(0))
	assert.Equal(t, 0, PagesFor(PageSize-1), "fractional tail should be dropped")
	assert.Equal(t, 1, PagesFor(PageSize))
	assert.Equal(t, 1, PagesFor(PageSize+1))
	assert.Equal(t, 16, PagesFor(16*PageSize))
}
