package swizzle

import "testing"

func TestSwizzledMipSizeUncompressed256(t *testing.T) {
	got := SwizzledMipSize(256, 256, 1, BlockHeightSixteen, 4)
	if got != 262144 {
		t.Fatalf("SwizzledMipSize = %d, want 262144", got)
	}
	deswizzled := DeswizzledMipSize(256, 256, 1, 4)
	if deswizzled != 262144 {
		t.Fatalf("DeswizzledMipSize = %d, want 262144", deswizzled)
	}
}

func TestSwizzledMipSizeBC7256(t *testing.T) {
	width := DivRoundUp(256, 4)
	height := DivRoundUp(256, 4)
	got := SwizzledMipSize(width, height, 1, BlockHeightSixteen, 16)
	if got != 131072 {
		t.Fatalf("SwizzledMipSize(BC7) = %d, want 131072", got)
	}
	deswizzled := DeswizzledMipSize(width, height, 1, 16)
	if deswizzled != 65536 {
		t.Fatalf("DeswizzledMipSize(BC7) = %d, want 65536", deswizzled)
	}
}

func TestEdgeTile70x10Size(t *testing.T) {
	got := SwizzledMipSize(70, 10, 1, BlockHeightOne, 1)
	if got != 2048 {
		t.Fatalf("SwizzledMipSize(70x10) = %d, want 2048", got)
	}
}

func TestSwizzledSizeMonotonicity(t *testing.T) {
	cases := []struct {
		w, h, d, bpp uint64
		bh           BlockHeight
	}{
		{256, 256, 1, 4, BlockHeightSixteen},
		{70, 10, 1, 1, BlockHeightOne},
		{64, 64, 8, 4, BlockHeightFour},
		{17, 33, 1, 3, BlockHeightTwo},
		{1, 1, 1, 1, BlockHeightOne},
	}
	for _, c := range cases {
		sw := SwizzledMipSize(c.w, c.h, c.d, c.bh, c.bpp)
		de := DeswizzledMipSize(c.w, c.h, c.d, c.bpp)
		if sw < de {
			t.Fatalf("SwizzledMipSize(%+v) = %d < DeswizzledMipSize = %d", c, sw, de)
		}
	}
}

func TestSizeFunctionsAreDeterministic(t *testing.T) {
	a := SwizzledMipSize(300, 157, 3, BlockHeightEight, 4)
	b := SwizzledMipSize(300, 157, 3, BlockHeightEight, 4)
	if a != b {
		t.Fatalf("SwizzledMipSize not deterministic: %d != %d", a, b)
	}
}

func TestAlignLayerSizeRoundsUpToBlockOfGobs(t *testing.T) {
	// block_of_gobs_size = gob_height * gob_depth * 512 = 8 * 1 * 512 = 4096
	// (height=256 keeps gob_height at 8 for these inputs; depth_in_gobs stays 1).
	size := AlignLayerSize(65536, 256, 1, BlockHeightEight, 1)
	if size != 65536 {
		t.Fatalf("AlignLayerSize of an already-aligned size changed it: %d", size)
	}

	unaligned := AlignLayerSize(65535, 256, 1, BlockHeightEight, 1)
	if unaligned%4096 != 0 {
		t.Fatalf("AlignLayerSize(65535) = %d is not a multiple of 4096", unaligned)
	}
	if unaligned <= 65535 {
		t.Fatalf("AlignLayerSize(65535) = %d did not round up", unaligned)
	}
}
