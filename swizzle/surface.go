package swizzle

// BlockDim is the dimensions of a compressed pixel block. Compressed block
// sizes are usually 4x4 pixels; uncompressed formats use a 1x1x1 block.
type BlockDim struct {
	Width  uint64
	Height uint64
	Depth  uint64
}

// BlockDimUncompressed is the 1x1x1 block for formats that do not use
// block compression, like R8G8B8A8.
func BlockDimUncompressed() BlockDim {
	return BlockDim{Width: 1, Height: 1, Depth: 1}
}

// BlockDim4x4 is the 4x4x1 compressed block used by the BCn formats (BC1,
// BC3, BC7, ...) and their DXT predecessors.
func BlockDim4x4() BlockDim {
	return BlockDim{Width: 4, Height: 4, Depth: 1}
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func mipDims(width, height, depth uint64, mip uint, blockDim BlockDim) (mipWidth, mipHeight, mipDepth uint64) {
	mipWidth = maxU64(DivRoundUp(width>>mip, blockDim.Width), 1)
	mipHeight = maxU64(DivRoundUp(height>>mip, blockDim.Height), 1)
	mipDepth = maxU64(DivRoundUp(depth>>mip, blockDim.Depth), 1)
	return
}

// resolveBlockHeightMip0 infers the base block height for mip 0 when the
// caller does not supply one. 3-D surfaces (depth != 1) always use
// BlockHeightOne regardless of any caller override, because they already
// stack GOBs in Z; 2-D surfaces (depth == 1) respect the caller's override
// when given, or fall back to the heuristic applied to the block-adjusted
// height.
func resolveBlockHeightMip0(depth, height uint64, blockDim BlockDim, override *BlockHeight) BlockHeight {
	if depth != 1 {
		return BlockHeightOne
	}
	if override != nil {
		return *override
	}
	return blockHeightMip0(DivRoundUp(height, blockDim.Height))
}

// SwizzledSurfaceSize calculates the size in bytes of the swizzled data for
// a complete surface: all mipmap levels of all array layers, including the
// padding the block-linear layout inserts between mipmaps and (when
// layerCount > 1) between array layers.
//
// Dimensions should be given in pixels. Pass nil for blockHeightMip0 to
// infer the block height from height and blockDim.Height; for depth != 1
// the block height is always BlockHeightOne.
func SwizzledSurfaceSize(width, height, depth uint64, blockDim BlockDim, blockHeightMip0 *BlockHeight, bytesPerPixel uint64, mipmapCount, layerCount uint) uint64 {
	bh0 := resolveBlockHeightMip0(depth, height, blockDim, blockHeightMip0)

	var mipSize uint64
	for mip := uint(0); mip < mipmapCount; mip++ {
		mipWidth, mipHeight, mipDepth := mipDims(width, height, depth, mip, blockDim)
		mbh := mipBlockHeight(mipHeight, bh0)
		mipSize += SwizzledMipSize(mipWidth, mipHeight, mipDepth, mbh, bytesPerPixel)
	}

	if layerCount > 1 {
		layerSize := AlignLayerSize(mipSize, height, depth, bh0, 1)
		return layerSize * uint64(layerCount)
	}
	return mipSize
}

// DeswizzledSurfaceSize calculates the size in bytes of the tightly-packed
// linear data for a complete surface. Compare with [SwizzledSurfaceSize].
func DeswizzledSurfaceSize(width, height, depth uint64, blockDim BlockDim, bytesPerPixel uint64, mipmapCount, layerCount uint) uint64 {
	var layerSize uint64
	for mip := uint(0); mip < mipmapCount; mip++ {
		mipWidth, mipHeight, mipDepth := mipDims(width, height, depth, mip, blockDim)
		layerSize += DeswizzledMipSize(mipWidth, mipHeight, mipDepth, bytesPerPixel)
	}
	return layerSize * uint64(layerCount)
}

// swizzleMipmap swizzles or deswizzles one mipmap level, advancing the
// source and destination cursors by that mip's input and output sizes.
func swizzleMipmap(width, height, depth uint64, blockHeightVal BlockHeight, blockDepthVal uint64, bytesPerPixel uint64, source []byte, srcOffset *uint64, dst []byte, dstOffset *uint64, deswizzle bool) {
	swizzledSize := SwizzledMipSize(width, height, depth, blockHeightVal, bytesPerPixel)
	deswizzledSize := DeswizzledMipSize(width, height, depth, bytesPerPixel)

	swizzleInner(width, height, depth, source[*srcOffset:], dst[*dstOffset:], blockHeightVal, blockDepthVal, bytesPerPixel, deswizzle)

	if deswizzle {
		*srcOffset += swizzledSize
		*dstOffset += deswizzledSize
	} else {
		*srcOffset += deswizzledSize
		*dstOffset += swizzledSize
	}
}

// swizzleSurfaceInner iterates layers and mipmaps, maintaining parallel
// source/destination cursors and applying per-layer alignment padding to
// the swizzled-side cursor when layerCount > 1.
func swizzleSurfaceInner(width, height, depth uint64, source, result []byte, blockDim BlockDim, blockHeightMip0 *BlockHeight, bytesPerPixel uint64, mipmapCount, layerCount uint, deswizzle bool) {
	bh0 := resolveBlockHeightMip0(depth, height, blockDim, blockHeightMip0)
	blockDepthMip0 := blockDepth(depth)

	var srcOffset, dstOffset uint64
	for layer := uint(0); layer < layerCount; layer++ {
		tracef("swizzle: layer %d/%d src=%d dst=%d", layer, layerCount, srcOffset, dstOffset)
		for mip := uint(0); mip < mipmapCount; mip++ {
			mipWidth, mipHeight, mipDepth := mipDims(width, height, depth, mip, blockDim)

			mbh := mipBlockHeight(mipHeight, bh0)
			mbd := mipBlockDepth(mipDepth, blockDepthMip0)

			swizzleMipmap(mipWidth, mipHeight, mipDepth, mbh, mbd, bytesPerPixel, source, &srcOffset, result, &dstOffset, deswizzle)
		}

		if layerCount > 1 {
			if deswizzle {
				srcOffset = AlignLayerSize(srcOffset, height, depth, bh0, 1)
			} else {
				dstOffset = AlignLayerSize(dstOffset, height, depth, bh0, 1)
			}
		}
	}
}

// surfaceDestination validates that source has at least expectedSize bytes
// and allocates a zero-filled destination of outputSize bytes. Validation
// happens before allocation so a too-small source never causes a spurious
// large allocation.
func surfaceDestination(outputSize, expectedSize uint64, source []byte, ctx string) ([]byte, error) {
	if uint64(len(source)) < expectedSize {
		return nil, notEnoughData(expectedSize, uint64(len(source)), ctx)
	}
	return make([]byte, outputSize), nil
}

// SwizzleBlockLinear swizzles a single mipmap level from dense linear
// layout to block-linear layout.
//
// width, height, and depth are in compressed pixel-blocks (for
// uncompressed formats, pixels). Returns an error wrapping
// [ErrNotEnoughData] if source is shorter than [DeswizzledMipSize] for
// these parameters.
func SwizzleBlockLinear(width, height, depth uint64, source []byte, blockHeight BlockHeight, bytesPerPixel uint64) ([]byte, error) {
	outputSize := SwizzledMipSize(width, height, depth, blockHeight, bytesPerPixel)
	expectedSize := DeswizzledMipSize(width, height, depth, bytesPerPixel)

	destination, err := surfaceDestination(outputSize, expectedSize, source, "swizzle_block_linear")
	if err != nil {
		return nil, err
	}

	bd := blockDepth(depth)
	swizzleInner(width, height, depth, source, destination, blockHeight, bd, bytesPerPixel, false)
	return destination, nil
}

// DeswizzleBlockLinear deswizzles a single mipmap level from block-linear
// layout back to dense linear layout.
//
// Returns an error wrapping [ErrNotEnoughData] if source is shorter than
// [SwizzledMipSize] for these parameters.
func DeswizzleBlockLinear(width, height, depth uint64, source []byte, blockHeight BlockHeight, bytesPerPixel uint64) ([]byte, error) {
	outputSize := DeswizzledMipSize(width, height, depth, bytesPerPixel)
	expectedSize := SwizzledMipSize(width, height, depth, blockHeight, bytesPerPixel)

	destination, err := surfaceDestination(outputSize, expectedSize, source, "deswizzle_block_linear")
	if err != nil {
		return nil, err
	}

	bd := blockDepth(depth)
	swizzleInner(width, height, depth, source, destination, blockHeight, bd, bytesPerPixel, true)
	return destination, nil
}

// SwizzleSurface swizzles all array layers and mipmaps in source, using the
// block-linear algorithm, into a single combined buffer with the mipmap
// and layer alignment/padding a real Tegra X1 texture requires.
//
// Array layers and mipmaps are ordered layer-major: layer 0's mips 0..M-1,
// then layer 1's mips 0..M-1, and so on. Pass nil for blockHeightMip0 to
// infer it from height and blockDim.Height; for depth != 1 it is always
// BlockHeightOne.
//
// Returns an error wrapping [ErrNotEnoughData] if source is shorter than
// [DeswizzledSurfaceSize] for these parameters.
func SwizzleSurface(width, height, depth uint64, source []byte, blockDim BlockDim, blockHeightMip0 *BlockHeight, bytesPerPixel uint64, mipmapCount, layerCount uint) ([]byte, error) {
	swizzledSize := SwizzledSurfaceSize(width, height, depth, blockDim, blockHeightMip0, bytesPerPixel, mipmapCount, layerCount)
	deswizzledSize := DeswizzledSurfaceSize(width, height, depth, blockDim, bytesPerPixel, mipmapCount, layerCount)

	result, err := surfaceDestination(swizzledSize, deswizzledSize, source, "swizzle_surface")
	if err != nil {
		return nil, err
	}

	swizzleSurfaceInner(width, height, depth, source, result, blockDim, blockHeightMip0, bytesPerPixel, mipmapCount, layerCount, false)
	return result, nil
}

// DeswizzleSurface deswizzles all array layers and mipmaps in source into a
// new tightly-packed buffer with no padding between layers or mipmaps,
// suitable for use as-is in a DDS file or a Vulkan buffer-to-image copy.
//
// Returns an error wrapping [ErrNotEnoughData] if source is shorter than
// [SwizzledSurfaceSize] for these parameters.
func DeswizzleSurface(width, height, depth uint64, source []byte, blockDim BlockDim, blockHeightMip0 *BlockHeight, bytesPerPixel uint64, mipmapCount, layerCount uint) ([]byte, error) {
	swizzledSize := SwizzledSurfaceSize(width, height, depth, blockDim, blockHeightMip0, bytesPerPixel, mipmapCount, layerCount)
	deswizzledSize := DeswizzledSurfaceSize(width, height, depth, blockDim, bytesPerPixel, mipmapCount, layerCount)

	result, err := surfaceDestination(deswizzledSize, swizzledSize, source, "deswizzle_surface")
	if err != nil {
		return nil, err
	}

	swizzleSurfaceInner(width, height, depth, source, result, blockDim, blockHeightMip0, bytesPerPixel, mipmapCount, layerCount, true)
	return result, nil
}
