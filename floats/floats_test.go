package floats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	a, b := 0.1, 0.2
	require.NotEqual(t, 0.3, a+b)
	require.True(t, Equal(a+b, 0.3))
	require.False(t, Equal(1.0, 1.0+4*Epsilon[float64]()))

	var a32, b32 float32 = 0.1, 0.2
	require.True(t, Equal(a32+b32, 0.3))
	require.False(t, Equal[float32](1, 1.001))
}

func TestApproxEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		tol  float64
		want bool
	}{
		{"identical", 1.5, 1.5, 0, true},
		{"within tolerance", 1.0, 1.0005, 1e-3, true},
		{"outside tolerance", 1.0, 1.01, 1e-3, false},
		{"+Inf with itself", math.Inf(1), math.Inf(1), 1, false},
		{"-Inf with finite", math.Inf(-1), 0, math.MaxFloat64, false},
		{"NaN", math.NaN(), math.NaN(), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ApproxEqual(tt.a, tt.b, tt.tol))
		})
	}
}

func TestEpsilon(t *testing.T) {
	require.Equal(t, math.Ldexp(1, -52), Epsilon[float64]())
	require.Equal(t, float32(math.Ldexp(1, -23)), Epsilon[float32]())
}

func TestULPDistance(t *testing.T) {
	one := 1.0
	tests := []struct {
		name string
		a, b float64
		want uint64
	}{
		{"same value", 2.5, 2.5, 0},
		{"signed zeros", 0, math.Copysign(0, -1), 0},
		{"next up", one, math.Nextafter(one, 2), 1},
		{"symmetric", math.Nextafter(one, 2), one, 1},
		{"across zero", math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64, 2},
		{"max to inf", math.MaxFloat64, math.Inf(1), 1},
		{"NaN", math.NaN(), 1, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ULPDistance(tt.a, tt.b))
		})
	}
}
