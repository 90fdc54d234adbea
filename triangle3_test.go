package geodesic

import (
	"math"
	"testing"
)

func TestTriangle3AreaRightTriangle(t *testing.T) {
	tri := Triangle3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	got := tri.Area()
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("got %v, want 0.5", got)
	}
}

func TestTriangle3CollinearIsZeroArea(t *testing.T) {
	tri := Triangle3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	if !tri.Collinear() {
		t.Error("expected a collinear triangle")
	}
	if _, ok := tri.Angles(); ok {
		t.Error("Angles should report ok=false for a degenerate triangle")
	}
}

func TestTriangle3AnglesSumToPi(t *testing.T) {
	tri := Triangle3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	angles, ok := tri.Angles()
	if !ok {
		t.Fatal("expected a non-degenerate triangle")
	}
	sum := angles[0] + angles[1] + angles[2]
	if math.Abs(sum-math.Pi) > 1e-9 {
		t.Errorf("angle sum %v, want pi", sum)
	}
	if math.Abs(angles[0]-math.Pi/2) > 1e-9 {
		t.Errorf("right angle at vertex a, got %v", angles[0])
	}
}
