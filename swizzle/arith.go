package swizzle

// DivRoundUp divides x by d, rounding up rather than truncating. d must be
// greater than zero.
func DivRoundUp(x, d uint64) uint64 {
	return (x + d - 1) / d
}

// RoundUp rounds x up to the next multiple of n. n must be greater than
// zero.
func RoundUp(x, n uint64) uint64 {
	return DivRoundUp(x, n) * n
}

// WidthInGOBs returns the number of GOBs needed to cover widthInBlocks
// compressed-pixel-blocks at bytesPerPixel bytes each, assuming a block is
// always one GOB wide (gob_blocks_in_tile_x == 1, the only tiling this
// package implements).
func WidthInGOBs(widthInBlocks, bytesPerPixel uint64) uint64 {
	return DivRoundUp(widthInBlocks*bytesPerPixel, gobWidthInBytes)
}

// HeightInBlocks returns the number of vertical blocks needed to cover
// height rows given a block stacks blockHeight GOBs.
func HeightInBlocks(height, blockHeight uint64) uint64 {
	return DivRoundUp(height, blockHeight*gobHeightInBytes)
}
