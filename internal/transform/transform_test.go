package transform

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rotX(a float64) Mat4 {
	m := Identity()
	c, s := math.Cos(a), math.Sin(a)
	m[5], m[6], m[9], m[10] = c, s, -s, c
	return m
}

func rotY(a float64) Mat4 {
	m := Identity()
	c, s := math.Cos(a), math.Sin(a)
	m[0], m[2], m[8], m[10] = c, -s, s, c
	return m
}

func rotZ(a float64) Mat4 {
	m := Identity()
	c, s := math.Cos(a), math.Sin(a)
	m[0], m[1], m[4], m[5] = c, s, -s, c
	return m
}

func reference(p, r, s Vec3) Mat4 {
	rot := Mul(Mul(rotX(r.X), rotY(r.Y)), rotZ(r.Z))
	return Mul(Mul(Translation(p), rot), Scaling(s))
}

func requireMatrixInDelta(t *testing.T, want, got Mat4) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-12, "component %d", i)
	}
}

func TestComposeTranslationOnly(t *testing.T) {
	m := ComposeEuler(NewVec3(1, 0, 0), Vec3{}, Uniform(1))
	assert.Equal(t, "1\n0\n0\n0\n0\n1\n0\n0\n0\n0\n1\n0\n1\n0\n0\n1", m.Text())
	assert.Equal(t, Translation(NewVec3(1, 0, 0)), m)
}

func TestComposeMatchesReference(t *testing.T) {
	cases := []struct {
		name    string
		p, r, s Vec3
	}{
		{"identity", Vec3{}, Vec3{}, Uniform(1)},
		{"rotate x", Vec3{}, NewVec3(math.Pi/2, 0, 0), Uniform(1)},
		{"rotate y", Vec3{}, NewVec3(0, 0.3, 0), Uniform(1)},
		{"rotate z", Vec3{}, NewVec3(0, 0, -1.2), Uniform(1)},
		{"all axes", NewVec3(1, -2, 3), NewVec3(0.4, 1.1, -0.7), NewVec3(2, 0.5, 3)},
		{"negative scale", NewVec3(-5, 0, 0.25), NewVec3(3, 2, 1), NewVec3(-1, 1, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireMatrixInDelta(t, reference(tc.p, tc.r, tc.s), ComposeEuler(tc.p, tc.r, tc.s))
		})
	}
}

func TestQuatFromEulerIsUnit(t *testing.T) {
	q := QuatFromEuler(NewVec3(0.9, -2.2, 4.1))
	n := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	assert.InDelta(t, 1, n, 1e-12)
	assert.Equal(t, IdentityQuat, QuatFromEuler(Vec3{}))
}

func TestRotationMatchesCompose(t *testing.T) {
	q := QuatFromEuler(NewVec3(0.1, 0.2, 0.3))
	requireMatrixInDelta(t, Mul(Mul(rotX(0.1), rotY(0.2)), rotZ(0.3)), Rotation(q))
}

func TestTextPropagatesNaN(t *testing.T) {
	m := ComposeEuler(NewVec3(math.NaN(), 0, 0), Vec3{}, Uniform(1))
	lines := strings.Split(m.Text(), "\n")
	require.Len(t, lines, 16)
	assert.Equal(t, "NaN", lines[12])
	assert.Equal(t, "1", lines[0])
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		0:                   "0",
		1:                   "1",
		-2.5:                "-2.5",
		0.30000000000000004: "0.30000000000000004",
		1.5e-6:              "0.0000015",
		1e-7:                "1e-7",
		-2.5e-9:             "-2.5e-9",
		1e21:                "1e+21",
		123456789:           "123456789",
		math.Inf(1):         "Infinity",
		math.Inf(-1):        "-Infinity",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNumber(in), "input %v", in)
	}
	assert.Equal(t, "NaN", FormatNumber(math.NaN()))
	assert.Equal(t, "0", FormatNumber(math.Copysign(0, -1)))
}

func TestFloat32KeepsOrder(t *testing.T) {
	m := Translation(NewVec3(1, 2, 3)).Float32()
	assert.Equal(t, float32(1), m[12])
	assert.Equal(t, float32(2), m[13])
	assert.Equal(t, float32(3), m[14])
	assert.Equal(t, float32(1), m[15])
}
