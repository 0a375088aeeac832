package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kernelcraft/bootalloc/alloc"
)

var (
	statsSize  uint64
	statsBase  uint64
	statsBytes uint64
	statsPages int
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().Uint64Var(&statsSize, "size", 16<<20, "Region size in bytes")
	cmd.Flags().Uint64Var(&statsBase, "base", 0x100000, "Region base address")
	cmd.Flags().Uint64Var(&statsBytes, "alloc-bytes", 4096, "Bytes to allocate from the low end")
	cmd.Flags().IntVar(&statsPages, "alloc-pages", 4, "Pages to allocate from the high end")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show region accounting after a fixed trace",
		Long: `The stats command initializes an allocator over a synthetic region,
performs one byte allocation and one page allocation, and prints the
resulting byte- and page-side accounting.

Example:
  bootallocctl stats
  bootallocctl stats --size 0x1000000 --alloc-pages 16
  bootallocctl stats --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
	return cmd
}

// RegionStats is the accounting snapshot printed by the stats command.
type RegionStats struct {
	Base uintptr

	TotalBytes     uintptr
	UsedBytes      uintptr
	AvailableBytes uintptr

	PageSize       uintptr
	TotalPages     int
	UsedPages      int
	AvailablePages int

	ByteBlockAddr uintptr
	PageBlockAddr uintptr
}

func runStats() error {
	a := alloc.NewEarly()
	a.Init(uintptr(statsBase), uintptr(statsSize))
	printVerbose("Initialized region [%#x, %#x)\n", statsBase, statsBase+statsSize)

	stats := RegionStats{Base: uintptr(statsBase), PageSize: a.PageSize()}

	if statsBytes > 0 {
		addr, err := a.Alloc(uintptr(statsBytes), 8)
		if err != nil {
			return fmt.Errorf("byte allocation of %d bytes failed: %w", statsBytes, err)
		}
		stats.ByteBlockAddr = addr
		printVerbose("Allocated %d bytes at %#x\n", statsBytes, addr)
	}

	if statsPages > 0 {
		addr, err := a.AllocPages(statsPages, a.PageSize())
		if err != nil {
			return fmt.Errorf("page allocation of %d pages failed: %w", statsPages, err)
		}
		stats.PageBlockAddr = addr
		printVerbose("Allocated %d pages at %#x\n", statsPages, addr)
	}

	stats.TotalBytes = a.TotalBytes()
	stats.UsedBytes = a.UsedBytes()
	stats.AvailableBytes = a.AvailableBytes()
	stats.TotalPages = a.TotalPages()
	stats.UsedPages = a.UsedPages()
	stats.AvailablePages = a.AvailablePages()

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("Region base:       %#x\n", stats.Base)
	printInfo("Total bytes:       %#x\n", stats.TotalBytes)
	printInfo("Used bytes:        %#x\n", stats.UsedBytes)
	printInfo("Available bytes:   %#x\n", stats.AvailableBytes)
	printInfo("Page size:         %#x\n", stats.PageSize)
	printInfo("Total pages:       %d\n", stats.TotalPages)
	printInfo("Used pages:        %d\n", stats.UsedPages)
	printInfo("Available pages:   %d\n", stats.AvailablePages)
	if stats.ByteBlockAddr != 0 {
		printInfo("Byte block at:     %#x\n", stats.ByteBlockAddr)
	}
	if stats.PageBlockAddr != 0 {
		printInfo("Page block at:     %#x\n", stats.PageBlockAddr)
	}
	return nil
}
