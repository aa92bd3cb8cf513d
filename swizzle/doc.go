// Package swizzle converts image surface data between the block-linear
// swizzled layout used by the NVIDIA Tegra X1 GPU and a dense linear
// (row-major) layout suitable for graphics APIs and common container
// formats.
//
// The package is a pure, synchronous, in-memory transformation: it never
// reads from or writes to the filesystem, network, or environment, and it
// neither parses nor emits any texture container format. Callers supply an
// opaque byte buffer and surface geometry; the package returns a freshly
// allocated, permuted byte buffer.
//
// # Quick start
//
//	swizzled, err := swizzle.SwizzleBlockLinear(256, 256, 1, deswizzled, swizzle.BlockHeightSixteen, 4)
//	if err != nil {
//	    // err wraps swizzle.ErrNotEnoughData
//	}
//	original, err := swizzle.DeswizzleBlockLinear(256, 256, 1, swizzled, swizzle.BlockHeightSixteen, 4)
//
// For textures with mipmaps and array layers, use [SwizzleSurface] and
// [DeswizzleSurface] instead, which additionally handle per-mip block
// height/depth degradation and per-layer alignment padding.
//
// # Ported from
//
// The address-mapping algorithm and tiling heuristics are ported from the
// Tegra X1 TRM and the Ryujinx emulator's BlockLinearLayout implementation,
// by way of the tegra_swizzle Rust crate.
package swizzle
