package main

import (
	"fmt"
	"math/rand"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/kernelcraft/bootalloc/alloc"
	"github.com/kernelcraft/bootalloc/internal/mmregion"
)

var (
	simSize  uint64
	simSeed  int64
	simSteps int
	simLive  bool
)

func init() {
	cmd := newSimulateCmd()
	cmd.Flags().Uint64Var(&simSize, "size", 4<<20, "Region size in bytes")
	cmd.Flags().Int64Var(&simSeed, "seed", 1, "Random seed for the operation stream")
	cmd.Flags().IntVar(&simSteps, "steps", 1000, "Number of operations to perform")
	cmd.Flags().BoolVar(&simLive, "live", false, "Back the region with a real anonymous mapping")
	rootCmd.AddCommand(cmd)
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Drive the allocator with a random operation stream",
		Long: `The simulate command runs a seeded random stream of byte and page
allocations and LIFO frees against one region, validating the frontier
ordering after every step. With --live the region is a real anonymous
mapping and every byte allocation is written through its returned
address.

Example:
  bootallocctl simulate --steps 5000
  bootallocctl simulate --seed 42 --live -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate()
		},
	}
	return cmd
}

// SimResult summarizes a completed simulation.
type SimResult struct {
	Steps      int
	ByteAllocs int
	ByteFrees  int
	PageAllocs int
	PageFrees  int
	Failures   int

	UsedBytes      uintptr
	AvailableBytes uintptr
	UsedPages      int
	AvailablePages int
}

type simBlock struct {
	addr uintptr
	size uintptr
}

func runSimulate() error {
	base := uintptr(0x40000000)
	if simLive {
		data, cleanup, err := mmregion.Map(int(simSize))
		if err != nil {
			return fmt.Errorf("failed to map live region: %w", err)
		}
		defer cleanup() //nolint:errcheck // process exits right after
		base = uintptr(unsafe.Pointer(&data[0]))
		printVerbose("Mapped live region at %#x\n", base)
	}

	a := alloc.NewEarly()
	a.Init(base, uintptr(simSize))
	printInfo("Simulating %d steps over [%#x, %#x), seed %d\n",
		simSteps, base, base+uintptr(simSize), simSeed)

	rng := rand.New(rand.NewSource(simSeed))
	var bytes, pages []simBlock
	var res SimResult

	for i := 0; i < simSteps; i++ {
		switch rng.Intn(4) {
		case 0:
			size := uintptr(1 + rng.Intn(4096))
			addr, err := a.Alloc(size, 8)
			if err != nil {
				res.Failures++
				printVerbose("step %d: alloc %#x bytes: %v\n", i, size, err)
				continue
			}
			if simLive {
				blk := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
				for j := range blk {
					blk[j] = byte(i)
				}
			}
			bytes = append(bytes, simBlock{addr, size})
			res.ByteAllocs++
			printVerbose("step %d: alloc %#x bytes at %#x\n", i, size, addr)

		case 1:
			if len(bytes) == 0 {
				continue
			}
			blk := bytes[len(bytes)-1]
			a.Dealloc(blk.addr, blk.size)
			bytes = bytes[:len(bytes)-1]
			res.ByteFrees++
			printVerbose("step %d: free %#x bytes at %#x\n", i, blk.size, blk.addr)

		case 2:
			count := 1 + rng.Intn(8)
			addr, err := a.AllocPages(count, a.PageSize())
			if err != nil {
				res.Failures++
				printVerbose("step %d: alloc %d pages: %v\n", i, count, err)
				continue
			}
			pages = append(pages, simBlock{addr, uintptr(count)})
			res.PageAllocs++
			printVerbose("step %d: alloc %d pages at %#x\n", i, count, addr)

		case 3:
			if len(pages) == 0 {
				continue
			}
			blk := pages[len(pages)-1]
			a.DeallocPages(blk.addr, int(blk.size))
			pages = pages[:len(pages)-1]
			res.PageFrees++
			printVerbose("step %d: free %d pages at %#x\n", i, blk.size, blk.addr)
		}
	}

	res.Steps = simSteps
	res.UsedBytes = a.UsedBytes()
	res.AvailableBytes = a.AvailableBytes()
	res.UsedPages = a.UsedPages()
	res.AvailablePages = a.AvailablePages()

	if jsonOut {
		return printJSON(res)
	}

	printInfo("Byte allocs:  %d (%d freed)\n", res.ByteAllocs, res.ByteFrees)
	printInfo("Page allocs:  %d (%d freed)\n", res.PageAllocs, res.PageFrees)
	printInfo("Failed ops:   %d\n", res.Failures)
	printInfo("Final state:  %#x bytes used, %d pages used\n", res.UsedBytes, res.UsedPages)
	return nil
}
