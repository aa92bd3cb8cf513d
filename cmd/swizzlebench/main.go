// Command swizzlebench times swizzle/deswizzle throughput over a set of
// representative surface geometries, the way cmd/astcbench times the
// ASTC codec in the reference CLI this module's cmd/ layout follows.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-tegra/swizzle/swizzle"
)

type geometry struct {
	name          string
	width, height uint64
	depth         uint64
	bpp           uint64
	blockHeight   swizzle.BlockHeight
}

var seedGeometries = []geometry{
	{"uncompressed-256", 256, 256, 1, 4, swizzle.BlockHeightSixteen},
	{"bc7-256-in-blocks", 64, 64, 1, 16, swizzle.BlockHeightSixteen},
	{"edge-70x10", 70, 10, 1, 1, swizzle.BlockHeightOne},
	{"volume-64x64x8", 64, 64, 8, 4, swizzle.BlockHeightFour},
	{"uncompressed-2048", 2048, 2048, 1, 4, swizzle.BlockHeightSixteen},
}

func main() {
	var iters int
	var name string
	flag.IntVar(&iters, "iters", 50, "iterations per geometry")
	flag.StringVar(&name, "geometry", "", "only benchmark the geometry with this name (default: all)")
	flag.Parse()

	if iters <= 0 {
		fmt.Fprintln(os.Stderr, "iters must be > 0")
		os.Exit(2)
	}

	for _, g := range seedGeometries {
		if name != "" && g.name != name {
			continue
		}
		if err := runGeometry(g, iters); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", g.name, err)
			os.Exit(1)
		}
	}
}

func runGeometry(g geometry, iters int) error {
	deswizzledSize := swizzle.DeswizzledMipSize(g.width, g.height, g.depth, g.bpp)
	data := make([]byte, deswizzledSize)
	for i := range data {
		data[i] = byte(i)
	}

	swizzled, err := swizzle.SwizzleBlockLinear(g.width, g.height, g.depth, data, g.blockHeight, g.bpp)
	if err != nil {
		return err
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		if _, err := swizzle.SwizzleBlockLinear(g.width, g.height, g.depth, data, g.blockHeight, g.bpp); err != nil {
			return err
		}
	}
	swizzleElapsed := time.Since(start)

	start = time.Now()
	for i := 0; i < iters; i++ {
		if _, err := swizzle.DeswizzleBlockLinear(g.width, g.height, g.depth, swizzled, g.blockHeight, g.bpp); err != nil {
			return err
		}
	}
	deswizzleElapsed := time.Since(start)

	mib := float64(deswizzledSize) / (1024 * 1024)
	fmt.Printf("%-20s %8.2f MiB  swizzle %8.3f ms/iter (%6.1f MiB/s)  deswizzle %8.3f ms/iter (%6.1f MiB/s)\n",
		g.name, mib,
		float64(swizzleElapsed.Microseconds())/1000/float64(iters),
		mib*float64(iters)/swizzleElapsed.Seconds(),
		float64(deswizzleElapsed.Microseconds())/1000/float64(iters),
		mib*float64(iters)/deswizzleElapsed.Seconds(),
	)
	return nil
}
