package vec

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalizedZeroVector(t *testing.T) {
	v := Vec3{}.Normalized()
	if v != (Vec3{}) {
		t.Fatalf("normalized zero vector = %v, want zero", v)
	}
}

func TestFromYawPitchRoundTrip(t *testing.T) {
	for _, yaw := range []float64{0, 0.5, -1.2, math.Pi / 2} {
		dir := FromYaw(yaw)
		if !almostEqual(dir.Len(), 1) {
			t.Fatalf("FromYaw(%f) is not unit length: %f", yaw, dir.Len())
		}
		got := dir.Yaw()
		if math.Abs(got-yaw) > 1e-9 {
			t.Fatalf("Yaw(FromYaw(%f)) = %f", yaw, got)
		}
	}
}

func TestFromYawPitchLooksUp(t *testing.T) {
	dir := FromYawPitch(0, math.Pi/2)
	if !almostEqual(dir.Y, 1) {
		t.Fatalf("pitch +90 must look straight up, got %v", dir)
	}
}

func TestSegmentDist(t *testing.T) {
	a := New(0, 0, 0)
	b := New(10, 0, 0)

	// Point beside the middle of the segment.
	if d := SegmentDist(New(5, 0, 3), a, b); !almostEqual(d, 3) {
		t.Fatalf("mid-segment distance = %f, want 3", d)
	}
	// Point past the far endpoint clamps to the endpoint.
	if d := SegmentDist(New(14, 0, 3), a, b); !almostEqual(d, 5) {
		t.Fatalf("past-endpoint distance = %f, want 5", d)
	}
	// Degenerate segment falls back to point distance.
	if d := SegmentDist(New(0, 4, 0), a, a); !almostEqual(d, 4) {
		t.Fatalf("degenerate segment distance = %f, want 4", d)
	}
}
