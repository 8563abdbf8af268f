package types

import (
	"cosmossdk.io/math"
)

// SwapResult reports a single pool swap.
type SwapResult struct {
	AmountIn       math.Int
	AmountOut      math.Int
	PriceBefore    math.Int
	PriceAfter     math.Int
	PriceImpactPpm math.Int
}

// AddLiquidityResult reports a pool add-liquidity call. On a live-pool
// top-up the Rest fields carry back whatever part of the inputs the pool
// could not consume at its current ratio.
type AddLiquidityResult struct {
	LpMinted    math.Int
	NativeUsed  math.Int
	ForeignUsed math.Int
	NativeRest  math.Int
	ForeignRest math.Int
}

// PolResult aggregates a protocol-owned-liquidity contribution across the
// balanced add and the residual swap. Added is true when any LP was minted.
type PolResult struct {
	LpMinted    math.Int
	NativeUsed  math.Int
	ForeignUsed math.Int
	Added       bool
}

// MintQuote is the pure quote for a bonding-curve mint: the total minted
// quantity and its share breakdown.
type MintQuote struct {
	Minted   math.Int
	User     math.Int
	Pol      math.Int
	Treasury math.Int
	Team     math.Int
}

// MintResult reports an executed bonding-curve mint, including the POL
// sub-report for the liquidity leg.
type MintResult struct {
	ForeignIn      math.Int
	TotalNative    math.Int
	UserNative     math.Int
	PolNative      math.Int
	TreasuryNative math.Int
	TeamNative     math.Int
	PriceBefore    math.Int
	PriceAfter     math.Int
	Pol            PolResult
}

// BurnResult reports an explicit supply burn.
type BurnResult struct {
	NativeBurned math.Int
	SupplyBefore math.Int
	SupplyAfter  math.Int
}

// RouteQuote carries both route outputs for a net foreign amount. A zero
// value means the branch is unavailable.
type RouteQuote struct {
	UtbcUserOut math.Int
	XykOut      math.Int
}

// RouteResult is the router's trade report. Mint is set on the UTBC branch,
// Swap on the XYK branch and on every native-to-foreign trade.
type RouteResult struct {
	Route       Route
	AmountIn    math.Int
	FeeAmount   math.Int
	AmountOut   math.Int
	PriceBefore math.Int
	PriceAfter  math.Int
	Mint        *MintResult
	Swap        *SwapResult
}

// PoolState is a read-only snapshot of the pool.
type PoolState struct {
	FeePpm         math.Int
	ReserveNative  math.Int
	ReserveForeign math.Int
	SupplyLp       math.Int
}

// MinterState is a read-only snapshot of the bonding-curve minter.
type MinterState struct {
	Supply   math.Int
	Treasury math.Int
	Team     math.Int
	Price    math.Int
}

// PolState is a read-only snapshot of the POL manager.
type PolState struct {
	BalanceLp          math.Int
	ContributedNative  math.Int
	ContributedForeign math.Int
	BufferNative       math.Int
	BufferForeign      math.Int
}

// FeeState is a read-only snapshot of the fee manager.
type FeeState struct {
	BufferNative        math.Int
	BufferForeign       math.Int
	TotalNativeBurned   math.Int
	TotalForeignSwapped math.Int
	FeesNative          math.Int
	FeesForeign         math.Int
}
