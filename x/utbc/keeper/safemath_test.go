package keeper

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/utbc-labs/utbc/x/utbc/types"
)

func TestMulDiv(t *testing.T) {
	tests := []struct {
		a, b, c int64
		want    int64
	}{
		{6, 7, 2, 21},
		{7, 3, 2, 10},  // floors
		{1, 1, 3, 0},
		{0, 5, 7, 0},
	}

	for _, tc := range tests {
		got, err := MulDiv(math.NewInt(tc.a), math.NewInt(tc.b), math.NewInt(tc.c))
		require.NoError(t, err)
		require.Equal(t, math.NewInt(tc.want), got)
	}
}

func TestMulDiv_WideIntermediate(t *testing.T) {
	// a*b overflows 128 bits but the quotient fits.
	a := math.NewIntFromUint64(1).MulRaw(1 << 62).MulRaw(1 << 62)
	got, err := MulDiv(a, a, a)
	require.NoError(t, err)
	require.Equal(t, a, got)
}

func TestMulDiv_ZeroDivisor(t *testing.T) {
	_, err := MulDiv(math.OneInt(), math.OneInt(), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrDivisionByZero)
}

func TestDivCeil(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{10, 5, 2},
		{11, 5, 3},
		{1, 5, 1},
		{0, 5, 0},
	}

	for _, tc := range tests {
		got, err := DivCeil(math.NewInt(tc.a), math.NewInt(tc.b))
		require.NoError(t, err)
		require.Equal(t, math.NewInt(tc.want), got)
	}

	_, err := DivCeil(math.OneInt(), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrDivisionByZero)
}

func TestIsqrt_Exact(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 3, 4, 8, 9, 15, 16, 17, 1 << 40} {
		got, err := Isqrt(math.NewInt(n))
		require.NoError(t, err)
		// got^2 <= n < (got+1)^2
		require.True(t, got.Mul(got).LTE(math.NewInt(n)), "n=%d", n)
		next := got.AddRaw(1)
		require.True(t, next.Mul(next).GT(math.NewInt(n)), "n=%d", n)
	}
}

func TestIsqrt_Large(t *testing.T) {
	// Perfect square near the monetary envelope.
	root := types.Precision.MulRaw(123_456_789)
	got, err := Isqrt(root.Mul(root))
	require.NoError(t, err)
	require.Equal(t, root, got)

	got, err = Isqrt(root.Mul(root).SubRaw(1))
	require.NoError(t, err)
	require.Equal(t, root.SubRaw(1), got)
}

func TestIsqrt_Negative(t *testing.T) {
	_, err := Isqrt(math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrNegativeValue)
}

func TestAbsMinMax(t *testing.T) {
	require.Equal(t, math.NewInt(5), AbsInt(math.NewInt(-5)))
	require.Equal(t, math.NewInt(5), AbsInt(math.NewInt(5)))
	require.Equal(t, math.NewInt(2), MinInt(math.NewInt(2), math.NewInt(3)))
	require.Equal(t, math.NewInt(3), MaxInt(math.NewInt(2), math.NewInt(3)))
}
