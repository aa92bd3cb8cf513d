package swizzle

// A GOB ("group of bytes") is the atomic unit of Tegra block-linear
// addressing: a fixed 64-byte-wide, 8-byte-tall tile of 512 bytes total.
// These are wire constants of the hardware format and never vary.
const (
	gobWidthInBytes  = 64
	gobHeightInBytes = 8
	gobSizeInBytes   = gobWidthInBytes * gobHeightInBytes
)

// gobRowOffsets holds the swizzled byte offset of each of the eight linear
// rows within a complete GOB, in row order. The fast-path copy below walks
// it row by row; within each row the four 16-byte copies are ordered from
// the highest offset to the lowest to help the compiler elide bounds checks.
var gobRowOffsets = [gobHeightInBytes]int{0, 16, 64, 80, 128, 144, 192, 208}

// gobOffset maps a byte coordinate (x, y) inside a GOB, x in [0,64) and y
// in [0,8), to its offset within the GOB's 512 contiguous swizzled bytes.
//
// This is the formula given in the Tegra TRM page 1188 and is a bijection
// on {0..63} x {0..7}.
func gobOffset(x, y int) int {
	return ((x%64)/32)*256 + ((y%8)/2)*64 + ((x%32)/16)*32 + (y%2)*16 + (x % 16)
}

// deswizzleGOBRow copies the four 16-byte segments of one linear row out of
// a swizzled GOB. Ordered from the highest offset to the lowest to reduce
// bounds checks, matching the reference implementation.
func deswizzleGOBRow(dst []byte, dstOffset int, src []byte, srcOffset int) {
	copy(dst[dstOffset+48:dstOffset+64], src[srcOffset+288:srcOffset+304])
	copy(dst[dstOffset+32:dstOffset+48], src[srcOffset+256:srcOffset+272])
	copy(dst[dstOffset+16:dstOffset+32], src[srcOffset+32:srcOffset+48])
	copy(dst[dstOffset:dstOffset+16], src[srcOffset:srcOffset+16])
}

// swizzleGOBRow is deswizzleGOBRow with source and destination swapped: the
// mapping between linear and swizzled offsets is identical in both
// directions, only the transfer direction changes.
func swizzleGOBRow(dst []byte, dstOffset int, src []byte, srcOffset int) {
	copy(dst[dstOffset+288:dstOffset+304], src[srcOffset+48:srcOffset+64])
	copy(dst[dstOffset+256:dstOffset+272], src[srcOffset+32:srcOffset+48])
	copy(dst[dstOffset+32:dstOffset+48], src[srcOffset+16:srcOffset+32])
	copy(dst[dstOffset:dstOffset+16], src[srcOffset:srcOffset+16])
}

// deswizzleCompleteGOB transfers a full 512-byte swizzled GOB at src into
// the 64x8 linear tile at dst, which is laid out at rowSizeInBytes pitch.
// Callers must only use this when the GOB tile is entirely inside the
// surface in both x and y; partial tiles at the right/bottom edge must use
// swizzleDeswizzleGOBSlow instead.
func deswizzleCompleteGOB(dst []byte, src []byte, rowSizeInBytes int) {
	for i, off := range gobRowOffsets {
		deswizzleGOBRow(dst, rowSizeInBytes*i, src, off)
	}
}

// swizzleCompleteGOB is deswizzleCompleteGOB with the addresses swapped.
func swizzleCompleteGOB(dst []byte, src []byte, rowSizeInBytes int) {
	for i, off := range gobRowOffsets {
		swizzleGOBRow(dst, off, src, rowSizeInBytes*i)
	}
}

// swizzleDeswizzleGOBSlow handles a GOB tile that is only partially inside
// the surface (the right or bottom edge). It iterates every byte of the
// 64x8 tile and copies only the bytes that land inside the
// width*bytesPerPixel by height footprint; bytes outside the footprint are
// left untouched in the destination, which callers must zero-initialize.
func swizzleDeswizzleGOBSlow(dst, src []byte, x0, y0, z0 int, width, height, bytesPerPixel int, gobAddress int, deswizzle bool) {
	rowBytes := width * bytesPerPixel
	sliceBytes := width * height * bytesPerPixel
	for y := 0; y < gobHeightInBytes; y++ {
		if y0+y >= height {
			continue
		}
		for x := 0; x < gobWidthInBytes; x++ {
			if x0+x >= rowBytes {
				continue
			}
			swizzledOffset := gobAddress + gobOffset(x, y)
			linearOffset := z0*sliceBytes + (y0+y)*rowBytes + x0 + x
			if deswizzle {
				dst[linearOffset] = src[swizzledOffset]
			} else {
				dst[swizzledOffset] = src[linearOffset]
			}
		}
	}
}
