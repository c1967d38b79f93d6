package symmetry

import "testing"

func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < Count; i++ {
		s := FromIndex(i)
		if s.Index() != i {
			t.Errorf("index %d round-tripped to %d (%v)", i, s.Index(), s)
		}
	}
}

func TestFromIndexOutOfRange(t *testing.T) {
	for _, bad := range []int{-1, 8, 9, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("FromIndex(%d) did not panic", bad)
				}
			}()
			FromIndex(bad)
		}()
	}
}

func TestAllMatchesIndexOrder(t *testing.T) {
	for i, s := range All {
		if s != FromIndex(i) {
			t.Errorf("All[%d] = %v, want %v", i, s, FromIndex(i))
		}
	}
}

func TestMirrorTwiceIsIdentity(t *testing.T) {
	for _, s := range All {
		if got := s.MirrorHorizontal().MirrorHorizontal(); got != s {
			t.Errorf("double horizontal mirror of %v gave %v", s, got)
		}
		if got := s.MirrorVertical().MirrorVertical(); got != s {
			t.Errorf("double vertical mirror of %v gave %v", s, got)
		}
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, s := range All {
		got := s
		for i := 0; i < 4; i++ {
			got = got.Rotate(1)
		}
		if got != s {
			t.Errorf("four quarter turns of %v gave %v", s, got)
		}
		if s.Rotate(4) != s {
			t.Errorf("Rotate(4) of %v gave %v", s, s.Rotate(4))
		}
	}
}

func TestRotateNormalization(t *testing.T) {
	for _, s := range All {
		if s.Rotate(-1) != s.Rotate(3) {
			t.Errorf("Rotate(-1) != Rotate(3) for %v", s)
		}
		if s.Rotate(-3) != s.Rotate(1) {
			t.Errorf("Rotate(-3) != Rotate(1) for %v", s)
		}
		if s.Rotate(5) != s.Rotate(1) {
			t.Errorf("Rotate(5) != Rotate(1) for %v", s)
		}
	}
}

func TestRotateStepsCompose(t *testing.T) {
	for _, s := range All {
		if got := s.Rotate(1).Rotate(1); got != s.Rotate(2) {
			t.Errorf("stepwise Rotate(2) of %v gave %v, want %v", s, got, s.Rotate(2))
		}
		if got := s.Rotate(2).Rotate(1); got != s.Rotate(3) {
			t.Errorf("stepwise Rotate(3) of %v gave %v, want %v", s, got, s.Rotate(3))
		}
	}
}

func TestInverse(t *testing.T) {
	// Applying a symmetry and then its inverse must land back on the
	// original coordinate for every point of a sample grid.
	apply := func(s Symmetry, x, y int) (int, int) {
		if s.Diagonal {
			x, y = y, x
		}
		if s.Horizontal {
			x = -x
		}
		if s.Vertical {
			y = -y
		}
		return x, y
	}
	for _, s := range All {
		inv := s.Inverse()
		for x := -2; x <= 2; x++ {
			for y := -2; y <= 2; y++ {
				mx, my := apply(s, x, y)
				rx, ry := apply(inv, mx, my)
				if rx != x || ry != y {
					t.Fatalf("inverse of %v (%v) failed on (%d,%d): got (%d,%d)",
						s, inv, x, y, rx, ry)
				}
			}
		}
		if inv.Inverse() != s {
			t.Errorf("double inverse of %v gave %v", s, inv.Inverse())
		}
	}
}

func TestQuarterTurnIsTransposePlusMirror(t *testing.T) {
	// A clockwise quarter turn from the identity is the transpose followed
	// by a vertical flip of the input.
	want := Symmetry{Vertical: true, Diagonal: true}
	if got := Identity.Rotate(1); got != want {
		t.Errorf("Rotate(1) from identity gave %v, want %v", got, want)
	}
}
