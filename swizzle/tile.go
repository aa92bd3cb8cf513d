package swizzle

// sliceSize returns the number of bytes occupied by one block_depth-deep
// group of Z-slices' GOB-blocks, used as the stride between consecutive
// block_depth-groups of Z.
func sliceSize(blockHeight, blockDepth, widthInGOBs, height uint64) uint64 {
	robSize := gobSizeInBytes * blockHeight * blockDepth * widthInGOBs
	return DivRoundUp(height, blockHeight*gobHeightInBytes) * robSize
}

// gobAddressZ returns the Z contribution to a tile's swizzled address.
func gobAddressZ(z, blockHeight, blockDepth, sliceSz uint64) uint64 {
	return (z/blockDepth)*sliceSz + (z&(blockDepth-1))*gobSizeInBytes*blockHeight
}

// gobAddressY returns the Y contribution to a tile's swizzled address.
func gobAddressY(y, blockHeightInBytes, blockSizeInBytes, widthInGOBs uint64) uint64 {
	blockY := y / blockHeightInBytes
	blockInnerRow := y % blockHeightInBytes / gobHeightInBytes
	return blockY*blockSizeInBytes*widthInGOBs + blockInnerRow*gobSizeInBytes
}

// gobAddressX returns the X contribution to a tile's swizzled address.
func gobAddressX(x, blockSizeInBytes uint64) uint64 {
	return (x / gobWidthInBytes) * blockSizeInBytes
}

// swizzleInner walks a single mipmap's worth of (z, y, x) GOB-aligned
// tiles, composing each tile's swizzled address from gobAddress{X,Y,Z} and
// invoking the GOB kernel's fast or slow path as appropriate.
//
// deswizzle selects the transfer direction: when true, source is the
// swizzled buffer and destination is linear; when false, the reverse.
// Both buffers must already be sized for the full mip (source read-only,
// destination exclusively owned by the caller for the duration of the
// call).
func swizzleInner(width, height, depth uint64, source, destination []byte, blockHeightVal BlockHeight, blockDepthVal uint64, bytesPerPixel uint64, deswizzle bool) {
	bh := uint64(blockHeightVal)
	widthInGOBsVal := WidthInGOBs(width, bytesPerPixel)
	sliceSz := sliceSize(bh, blockDepthVal, widthInGOBsVal, height)

	const blockWidth = 1
	blockSizeInBytes := gobSizeInBytes * blockWidth * bh * blockDepthVal
	blockHeightInBytes := gobHeightInBytes * bh

	rowBytes := width * bytesPerPixel

	for z0 := uint64(0); z0 < depth; z0++ {
		offsetZ := gobAddressZ(z0, bh, blockDepthVal, sliceSz)

		for y0 := uint64(0); y0 < height; y0 += gobHeightInBytes {
			offsetY := gobAddressY(y0, blockHeightInBytes, blockSizeInBytes, widthInGOBsVal)

			for x0 := uint64(0); x0 < rowBytes; x0 += gobWidthInBytes {
				offsetX := gobAddressX(x0, blockSizeInBytes)
				gobAddress := offsetZ + offsetY + offsetX

				if x0+gobWidthInBytes < rowBytes && y0+gobHeightInBytes < height {
					linearOffset := z0*width*height*bytesPerPixel + y0*rowBytes + x0

					if deswizzle {
						deswizzleCompleteGOB(destination[linearOffset:], source[gobAddress:], int(rowBytes))
					} else {
						swizzleCompleteGOB(destination[gobAddress:], source[linearOffset:], int(rowBytes))
					}
				} else {
					swizzleDeswizzleGOBSlow(
						destination, source,
						int(x0), int(y0), int(z0),
						int(width), int(height), int(bytesPerPixel),
						int(gobAddress), deswizzle,
					)
				}
			}
		}
	}
}
