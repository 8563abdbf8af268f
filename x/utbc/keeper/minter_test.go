package keeper

import (
	"math/big"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/utbc-labs/utbc/x/utbc/types"
)

func newTestMinter(t *testing.T, params types.Params) *UtbcMinter {
	t.Helper()
	pool, err := NewXykPool(params.FeeXykPpm)
	require.NoError(t, err)
	logger := log.NewNopLogger()
	return NewUtbcMinter(params, NewPolManager(pool, logger), logger)
}

// mintCost returns the doubled, PPM*Precision-scaled curve cost of minting
// d units starting from supply s:
//
//	slope*d^2 + 2*(priceInitial*PPM + slope*s)*d
func mintCost(params types.Params, s, d math.Int) *big.Int {
	cost := new(big.Int).Mul(params.SlopePpm.BigInt(), new(big.Int).Mul(d.BigInt(), d.BigInt()))
	lin := new(big.Int).Mul(params.PriceInitial.BigInt(), types.PPM.BigInt())
	lin.Add(lin, new(big.Int).Mul(params.SlopePpm.BigInt(), s.BigInt()))
	lin.Lsh(lin, 1)
	return cost.Add(cost, lin.Mul(lin, d.BigInt()))
}

// requireLargestAffordable asserts d is the largest mint the payment f
// covers: cost(d) <= 2*f*PPM*Precision < cost(d+1).
func requireLargestAffordable(t *testing.T, params types.Params, s, d, f math.Int) {
	t.Helper()
	budget := new(big.Int).Mul(f.BigInt(), types.PPM.BigInt())
	budget.Mul(budget, types.Precision.BigInt())
	budget.Lsh(budget, 1)

	require.True(t, mintCost(params, s, d).Cmp(budget) <= 0, "cost(d) must not exceed payment")
	require.True(t, mintCost(params, s, d.AddRaw(1)).Cmp(budget) > 0, "d+1 must be unaffordable")
}

func TestMinter_GetPrice(t *testing.T) {
	params := types.DefaultParams()
	m := newTestMinter(t, params)

	// Zero supply: spot price is the initial price.
	require.Equal(t, params.PriceInitial, m.GetPrice())
}

func TestMinter_CalculateMint_FlatCurve(t *testing.T) {
	params := types.DefaultParams()
	params.SlopePpm = math.ZeroInt()
	m := newTestMinter(t, params)

	// d = f * Precision / priceInitial = 1000 tokens for 1 foreign at 0.001.
	d := m.CalculateMint(types.Precision)
	require.Equal(t, types.Precision.MulRaw(1000), d)
}

func TestMinter_CalculateMint_Quadratic(t *testing.T) {
	params := types.DefaultParams()
	m := newTestMinter(t, params)

	for _, f := range []math.Int{
		types.Precision,
		types.Precision.MulRaw(10_000),
		types.Precision.MulRaw(123_456),
	} {
		d := m.CalculateMint(f)
		require.True(t, d.IsPositive())
		requireLargestAffordable(t, params, math.ZeroInt(), d, f)
	}
}

func TestMinter_CalculateMint_AtSupply(t *testing.T) {
	params := types.DefaultParams()
	m := newTestMinter(t, params)

	// Advance supply, then verify the solve accounts for the spot offset.
	_, err := m.MintNative(types.Precision.MulRaw(5000))
	require.NoError(t, err)
	s := m.State().Supply

	f := types.Precision.MulRaw(777)
	d := m.CalculateMint(f)
	require.True(t, d.IsPositive())
	requireLargestAffordable(t, params, s, d, f)
}

func TestMinter_CalculateMint_NonPositive(t *testing.T) {
	m := newTestMinter(t, types.DefaultParams())

	require.True(t, m.CalculateMint(math.ZeroInt()).IsZero())
	require.True(t, m.CalculateMint(math.NewInt(-1)).IsZero())
}

func TestMinter_GetMintQuote(t *testing.T) {
	m := newTestMinter(t, types.DefaultParams())

	require.Nil(t, m.GetMintQuote(math.ZeroInt()))

	quote := m.GetMintQuote(types.Precision.MulRaw(100))
	require.NotNil(t, quote)
	sum := quote.User.Add(quote.Pol).Add(quote.Treasury).Add(quote.Team)
	require.Equal(t, quote.Minted, sum)
}

func TestMinter_DistributeRemainderToTeam(t *testing.T) {
	m := newTestMinter(t, types.DefaultParams())

	// 100 units: floor shares are 33/33/22, team takes the remainder 12.
	user, pol, treasury, team := m.distribute(math.NewInt(100))
	require.Equal(t, math.NewInt(33), user)
	require.Equal(t, math.NewInt(33), pol)
	require.Equal(t, math.NewInt(22), treasury)
	require.Equal(t, math.NewInt(12), team)

	// No unit is ever lost, whatever the quantity.
	for _, n := range []int64{1, 7, 99, 1_000_003} {
		user, pol, treasury, team := m.distribute(math.NewInt(n))
		require.Equal(t, math.NewInt(n), user.Add(pol).Add(treasury).Add(team))
	}
}

func TestMinter_MintNative(t *testing.T) {
	params := types.DefaultParams()
	m := newTestMinter(t, params)

	res, err := m.MintNative(types.Precision.MulRaw(10_000))
	require.NoError(t, err)

	sum := res.UserNative.Add(res.PolNative).Add(res.TreasuryNative).Add(res.TeamNative)
	require.Equal(t, res.TotalNative, sum)
	require.Equal(t, res.TotalNative, m.State().Supply)
	require.Equal(t, res.TreasuryNative, m.State().Treasury)
	require.Equal(t, res.TeamNative, m.State().Team)

	// Minting along a positive slope strictly raises the spot price.
	require.True(t, res.PriceAfter.GT(res.PriceBefore))
	require.Equal(t, params.PriceInitial, res.PriceBefore)
}

func TestMinter_MintNative_InsufficientAmount(t *testing.T) {
	m := newTestMinter(t, types.DefaultParams())

	_, err := m.MintNative(math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestMinter_BurnNative(t *testing.T) {
	m := newTestMinter(t, types.DefaultParams())

	_, err := m.MintNative(types.Precision.MulRaw(10_000))
	require.NoError(t, err)

	supply := m.State().Supply
	priceBefore := m.GetPrice()

	res, err := m.BurnNative(supply.QuoRaw(3))
	require.NoError(t, err)
	require.Equal(t, supply, res.SupplyBefore)
	require.Equal(t, supply.Sub(res.NativeBurned), res.SupplyAfter)
	require.Equal(t, res.SupplyAfter, m.State().Supply)

	// Burning lowers the supply-parameterised spot price.
	require.True(t, m.GetPrice().LT(priceBefore))
}

func TestMinter_BurnNative_Errors(t *testing.T) {
	m := newTestMinter(t, types.DefaultParams())

	_, err := m.BurnNative(math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = m.BurnNative(math.OneInt())
	require.ErrorIs(t, err, types.ErrSupplyExhausted)
}
