package numerical

import "testing"

func TestIdentityIsNoOp(t *testing.T) {
	id := Identity4()
	p := id.ApplyPoint([3]float64{1, 2, 3})
	if p != [3]float64{1, 2, 3} {
		t.Errorf("got %v, want (1,2,3)", p)
	}
}

func TestInverseRoundTrips(t *testing.T) {
	// An orthonormal basis rotated 90 degrees about z, translated by
	// (1,2,3).
	m := NewMatrix4Columns(
		[3]float64{0, 1, 0},
		[3]float64{-1, 0, 0},
		[3]float64{0, 0, 1},
		[3]float64{1, 2, 3},
	)
	inv := m.Inverse()
	roundTrip := m.Mul(inv)
	if !roundTrip.ApproxEqual(Identity4(), 1e-9) {
		t.Errorf("m * m^-1 = %v, want identity", roundTrip)
	}

	p := [3]float64{4, 5, 6}
	back := inv.ApplyPoint(m.ApplyPoint(p))
	for i := range p {
		if back[i]-p[i] > 1e-9 || p[i]-back[i] > 1e-9 {
			t.Errorf("round trip of %v gave %v", p, back)
		}
	}
}

func TestMulComposesTransforms(t *testing.T) {
	translateX := NewMatrix4Columns(
		[3]float64{1, 0, 0},
		[3]float64{0, 1, 0},
		[3]float64{0, 0, 1},
		[3]float64{5, 0, 0},
	)
	translateY := NewMatrix4Columns(
		[3]float64{1, 0, 0},
		[3]float64{0, 1, 0},
		[3]float64{0, 0, 1},
		[3]float64{0, 7, 0},
	)
	combined := translateY.Mul(translateX)
	got := combined.ApplyPoint([3]float64{0, 0, 0})
	want := [3]float64{5, 7, 0}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
