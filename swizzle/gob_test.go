package swizzle

import "testing"

func TestGobOffsetIsBijection(t *testing.T) {
	var seen [512]bool
	for y := 0; y < gobHeightInBytes; y++ {
		for x := 0; x < gobWidthInBytes; x++ {
			off := gobOffset(x, y)
			if off < 0 || off >= 512 {
				t.Fatalf("gobOffset(%d,%d) = %d out of range", x, y, off)
			}
			if seen[off] {
				t.Fatalf("gobOffset(%d,%d) = %d collides with an earlier coordinate", x, y, off)
			}
			seen[off] = true
		}
	}
	for i, s := range seen {
		if !s {
			t.Fatalf("offset %d never produced by gobOffset", i)
		}
	}
}

func TestCompleteGobRoundTrip(t *testing.T) {
	// 64x8, BH=1, BPP=1: exactly one complete GOB.
	linear := make([]byte, 64*8)
	for i := range linear {
		linear[i] = byte(i % 256)
	}

	swizzled, err := SwizzleBlockLinear(64, 8, 1, linear, BlockHeightOne, 1)
	if err != nil {
		t.Fatalf("SwizzleBlockLinear: %v", err)
	}
	if len(swizzled) != 512 {
		t.Fatalf("swizzled size = %d, want 512", len(swizzled))
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 64; x++ {
			want := linear[y*64+x]
			got := swizzled[gobOffset(x, y)]
			if got != want {
				t.Fatalf("swizzled[gobOffset(%d,%d)] = %d, want %d", x, y, got, want)
			}
		}
	}

	roundTripped, err := DeswizzleBlockLinear(64, 8, 1, swizzled, BlockHeightOne, 1)
	if err != nil {
		t.Fatalf("DeswizzleBlockLinear: %v", err)
	}
	if string(roundTripped) != string(linear) {
		t.Fatalf("round trip mismatch")
	}
}
