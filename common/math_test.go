package common

import (
	"math"
	"testing"
)

const tolerance = 1e-5

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func matricesEqual(t *testing.T, got, want []float32) {
	t.Helper()
	for i := range 16 {
		if absf(got[i]-want[i]) > tolerance {
			t.Fatalf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 99
	}
	Identity(m)

	want := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	matricesEqual(t, m, want)
}

func TestMul4Identity(t *testing.T) {
	a := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	ident := make([]float32, 16)
	Identity(ident)

	out := make([]float32, 16)
	Mul4(out, a, ident)
	matricesEqual(t, out, a)

	Mul4(out, ident, a)
	matricesEqual(t, out, a)
}

func TestMul4Translation(t *testing.T) {
	// Composing two translations adds the offsets (column-major, offsets in
	// elements 12..14).
	ta := make([]float32, 16)
	tb := make([]float32, 16)
	Identity(ta)
	Identity(tb)
	ta[12], ta[13], ta[14] = 1, 2, 3
	tb[12], tb[13], tb[14] = 10, 20, 30

	out := make([]float32, 16)
	Mul4(out, ta, tb)

	if out[12] != 11 || out[13] != 22 || out[14] != 33 {
		t.Errorf("composed translation: got (%v, %v, %v), want (11, 22, 33)", out[12], out[13], out[14])
	}
}

func TestMul4AliasedOutput(t *testing.T) {
	a := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	b := make([]float32, 16)
	Identity(b)

	// out aliasing a must still produce a * b.
	Mul4(a, a, b)

	want := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	matricesEqual(t, a, want)
}

func TestPerspectiveDepthRange(t *testing.T) {
	const (
		fovY   = float32(math.Pi / 2)
		aspect = float32(1.0)
		near   = float32(1.0)
		far    = float32(10.0)
	)
	m := make([]float32, 16)
	Perspective(m, fovY, aspect, near, far)

	project := func(z float32) float32 {
		// Column-major: clipZ = m[10]*z + m[14], clipW = m[11]*z + m[15].
		clipZ := m[10]*z + m[14]
		clipW := m[11]*z + m[15]
		return clipZ / clipW
	}

	// Points on the near and far planes sit at view-space z = -near / -far
	// (right-handed, looking down -Z) and must map to the [-1, 1] ends.
	if got := project(-near); absf(got-(-1.0)) > tolerance {
		t.Errorf("near plane depth: got %v, want -1", got)
	}
	if got := project(-far); absf(got-1.0) > tolerance {
		t.Errorf("far plane depth: got %v, want 1", got)
	}
}

func TestPerspectiveFocalLength(t *testing.T) {
	m := make([]float32, 16)
	Perspective(m, math.Pi/2, 2.0, 0.1, 100.0)

	f := float32(1.0 / math.Tan(math.Pi/4))
	if absf(m[0]-f/2.0) > tolerance {
		t.Errorf("m[0]: got %v, want %v", m[0], f/2.0)
	}
	if absf(m[5]-f) > tolerance {
		t.Errorf("m[5]: got %v, want %v", m[5], f)
	}
	if m[11] != -1.0 {
		t.Errorf("m[11]: got %v, want -1", m[11])
	}
	if m[15] != 0.0 {
		t.Errorf("m[15]: got %v, want 0", m[15])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	m := make([]float32, 16)
	LookAt(m, 3, 4, 5, 0, 0, 0, 0, 1, 0)

	// The eye itself must land at the view-space origin.
	x := m[0]*3 + m[4]*4 + m[8]*5 + m[12]
	y := m[1]*3 + m[5]*4 + m[9]*5 + m[13]
	z := m[2]*3 + m[6]*4 + m[10]*5 + m[14]
	if absf(x) > tolerance || absf(y) > tolerance || absf(z) > tolerance {
		t.Errorf("eye in view space: got (%v, %v, %v), want origin", x, y, z)
	}
}

func TestLookAtTargetOnNegativeZ(t *testing.T) {
	m := make([]float32, 16)
	LookAt(m, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	// The target sits straight ahead, 5 units down the view -Z axis.
	z := m[2]*0 + m[6]*0 + m[10]*0 + m[14]
	if absf(z-(-5.0)) > tolerance {
		t.Errorf("target view-space z: got %v, want -5", z)
	}
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1.0, 2.0}
	b := SliceToBytes(data)
	if len(b) != 8 {
		t.Fatalf("byte length: got %d, want 8", len(b))
	}
	// 1.0 is 0x3F800000 little-endian.
	if b[0] != 0x00 || b[1] != 0x00 || b[2] != 0x80 || b[3] != 0x3F {
		t.Errorf("first float bytes: got % x", b[:4])
	}

	if SliceToBytes([]float32(nil)) != nil {
		t.Error("empty slice should convert to nil")
	}
}

func TestStructToBytes(t *testing.T) {
	type uniform struct {
		A [4]float32
		B [16]float32
	}
	u := uniform{}
	b := StructToBytes(&u)
	if len(b) != 80 {
		t.Errorf("struct byte length: got %d, want 80", len(b))
	}
}
