package swizzle

// SwizzledMipSize calculates the size in bytes of the swizzled data for a
// single mipmap with the given dimensions, block height, and
// bytes-per-pixel. The result is always at least as large as
// [DeswizzledMipSize] for the same parameters.
//
// Dimensions should be given in compressed pixel-blocks: for uncompressed
// formats this is pixels; for BCn/DXT formats, divide width and height by
// the block dimensions first (see [DivRoundUp]).
func SwizzledMipSize(width, height, depth uint64, blockHeight BlockHeight, bytesPerPixel uint64) uint64 {
	widthInGOBsVal := WidthInGOBs(width, bytesPerPixel)

	heightInBlocksVal := HeightInBlocks(height, uint64(blockHeight))
	heightInGOBs := heightInBlocksVal * uint64(blockHeight)

	depthInGOBs := RoundUp(depth, blockDepth(depth))

	numGOBs := widthInGOBsVal * heightInGOBs * depthInGOBs
	return numGOBs * gobSizeInBytes
}

// DeswizzledMipSize calculates the size in bytes of the tightly-packed
// linear data for a single mipmap with the given dimensions and
// bytes-per-pixel. Compare with [SwizzledMipSize].
func DeswizzledMipSize(width, height, depth, bytesPerPixel uint64) uint64 {
	return width * height * depth * bytesPerPixel
}

// AlignLayerSize rounds layerSize up to the alignment required between
// array layers of a swizzled surface.
//
// depthInGOBs is used as the starting GOB depth of the alignment block, but
// the surface walker in this package always passes 1, even for 3-D
// surfaces, matching the reference implementation.
func AlignLayerSize(layerSize, height, depth uint64, blockHeightMip0 BlockHeight, depthInGOBs uint64) uint64 {
	// gob_blocks_in_tile_x is assumed to be 1: sparse tiling is unimplemented.
	gobHeight := uint64(blockHeightMip0)
	gobDepth := depthInGOBs

	for height <= (gobHeight/2)*8 && gobHeight > 1 {
		gobHeight /= 2
	}
	for depth <= gobDepth/2 && gobDepth > 1 {
		gobDepth /= 2
	}

	blockOfGOBsSize := gobHeight * gobDepth * gobSizeInBytes
	sizeInBlockOfGOBs := layerSize / blockOfGOBsSize

	if layerSize != sizeInBlockOfGOBs*blockOfGOBsSize {
		return (sizeInBlockOfGOBs + 1) * blockOfGOBsSize
	}
	return layerSize
}
