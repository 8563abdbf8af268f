package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func newTestPol(t *testing.T) (*PolManager, *XykPool) {
	t.Helper()
	pool, err := NewXykPool(math.NewInt(3000))
	require.NoError(t, err)
	return NewPolManager(pool, log.NewNopLogger()), pool
}

func TestPol_BootstrapParksOneSidedAmounts(t *testing.T) {
	pm, pool := newTestPol(t)

	// Foreign only: nothing to pair against, everything parks.
	res := pm.AddLiquidity(math.ZeroInt(), tokens(t, 100))
	require.False(t, res.Added)
	require.True(t, res.LpMinted.IsZero())
	require.False(t, pool.HasLiquidity())

	state := pm.State()
	require.True(t, state.BufferNative.IsZero())
	require.Equal(t, tokens(t, 100), state.BufferForeign)
	require.True(t, state.BalanceLp.IsZero())
}

func TestPol_BootstrapUsesBuffers(t *testing.T) {
	pm, pool := newTestPol(t)

	pm.AddLiquidity(math.ZeroInt(), tokens(t, 100))

	// The native side arrives later; the buffered foreign joins it.
	res := pm.AddLiquidity(tokens(t, 25), math.ZeroInt())
	require.True(t, res.Added)
	require.Equal(t, tokens(t, 50), res.LpMinted) // isqrt(25 * 100) tokens
	require.True(t, pool.HasLiquidity())

	state := pm.State()
	require.Equal(t, tokens(t, 50), state.BalanceLp)
	require.Equal(t, tokens(t, 25), state.ContributedNative)
	require.Equal(t, tokens(t, 100), state.ContributedForeign)
	require.True(t, state.BufferNative.IsZero())
	require.True(t, state.BufferForeign.IsZero())
}

func TestPol_ZapBalancedThenResidualSwap(t *testing.T) {
	pm, pool := newTestPol(t)

	// Live pool at 1:4.
	pm.AddLiquidity(tokens(t, 100), tokens(t, 400))
	require.True(t, pool.HasLiquidity())

	before := pm.State()

	// Native-limited contribution: 10 native pairs with 40 foreign, the
	// remaining 60 foreign is swapped into native and buffered.
	res := pm.AddLiquidity(tokens(t, 10), tokens(t, 100))
	require.True(t, res.Added)
	require.True(t, res.LpMinted.IsPositive())

	state := pm.State()
	require.True(t, state.BalanceLp.GT(before.BalanceLp))
	require.True(t, state.ContributedNative.GT(before.ContributedNative))
	// All foreign was placed: paired first, residual swapped.
	require.Equal(t, before.ContributedForeign.Add(tokens(t, 100)), state.ContributedForeign)
	require.True(t, state.BufferForeign.IsZero())
	require.True(t, state.BufferNative.IsPositive())
}

func TestPol_ZapForeignLimited(t *testing.T) {
	pm, pool := newTestPol(t)

	pm.AddLiquidity(tokens(t, 100), tokens(t, 400))
	require.True(t, pool.HasLiquidity())

	// Foreign-limited: 100 native offered, only 10 foreign. 2.5 native
	// pairs with the 10 foreign; the native remainder stays buffered.
	res := pm.AddLiquidity(tokens(t, 100), tokens(t, 10))
	require.True(t, res.Added)

	state := pm.State()
	require.True(t, state.BufferForeign.IsZero())
	require.True(t, state.BufferNative.IsPositive())
}

func TestPol_ZapZeroContribution(t *testing.T) {
	pm, pool := newTestPol(t)

	pm.AddLiquidity(tokens(t, 100), tokens(t, 400))
	require.True(t, pool.HasLiquidity())

	res := pm.AddLiquidity(math.ZeroInt(), math.ZeroInt())
	require.False(t, res.Added)
	require.True(t, res.LpMinted.IsZero())
}

func TestPol_NegativeInputsClamped(t *testing.T) {
	pm, _ := newTestPol(t)

	res := pm.AddLiquidity(math.NewInt(-5), math.NewInt(-7))
	require.False(t, res.Added)
	require.True(t, pm.State().BufferNative.IsZero())
	require.True(t, pm.State().BufferForeign.IsZero())
}

func TestPol_CountersMonotonic(t *testing.T) {
	pm, _ := newTestPol(t)

	prev := pm.State()
	contributions := []struct{ n, f int64 }{
		{0, 500}, {100, 0}, {7, 300}, {0, 0}, {50, 50}, {1, 1},
	}

	for _, c := range contributions {
		pm.AddLiquidity(tokens(t, c.n), tokens(t, c.f))
		state := pm.State()
		require.True(t, state.BalanceLp.GTE(prev.BalanceLp))
		require.True(t, state.ContributedNative.GTE(prev.ContributedNative))
		require.True(t, state.ContributedForeign.GTE(prev.ContributedForeign))
		prev = state
	}
}
