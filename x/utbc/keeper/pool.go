package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/utbc-labs/utbc/x/utbc/types"
)

// XykPool is a constant-product pool holding native/foreign reserves with
// LP-share accounting. It starts empty and turns live on the first
// successful AddLiquidity; once live it can never drain back to empty.
type XykPool struct {
	feePpm         math.Int
	reserveNative  math.Int
	reserveForeign math.Int
	supplyLp       math.Int
}

// NewXykPool creates an empty pool with the given proportional swap fee.
func NewXykPool(feePpm math.Int) (*XykPool, error) {
	if feePpm.IsNil() || feePpm.IsNegative() {
		return nil, types.ErrInvalidParams.Wrapf("pool fee cannot be negative: %s", feePpm)
	}
	if feePpm.GTE(types.PPM) {
		return nil, types.ErrInvalidParams.Wrapf("pool fee must be below 100%%: %s", feePpm)
	}

	return &XykPool{
		feePpm:         feePpm,
		reserveNative:  math.ZeroInt(),
		reserveForeign: math.ZeroInt(),
		supplyLp:       math.ZeroInt(),
	}, nil
}

// HasLiquidity reports whether both reserves are strictly positive.
func (p *XykPool) HasLiquidity() bool {
	return p.reserveNative.IsPositive() && p.reserveForeign.IsPositive()
}

// GetPrice returns the spot price as Precision-scaled foreign per native.
func (p *XykPool) GetPrice() (math.Int, error) {
	if !p.HasLiquidity() {
		return math.Int{}, types.ErrPoolNotInitialized.Wrap("pool has no liquidity")
	}
	return MulDiv(p.reserveForeign, types.Precision, p.reserveNative)
}

// GetOutForeign quotes the foreign output for a native input. Returns zero
// when the input is non-positive or the pool is not live.
func (p *XykPool) GetOutForeign(nativeIn math.Int) math.Int {
	return p.getOut(nativeIn, p.reserveNative, p.reserveForeign)
}

// GetOutNative quotes the native output for a foreign input. Returns zero
// when the input is non-positive or the pool is not live.
func (p *XykPool) GetOutNative(foreignIn math.Int) math.Int {
	return p.getOut(foreignIn, p.reserveForeign, p.reserveNative)
}

// getOut applies the fee-adjusted constant-product rule:
//
//	in_after_fee = in * (PPM - fee)
//	out          = in_after_fee * reserve_out / (reserve_in * PPM + in_after_fee)
func (p *XykPool) getOut(amountIn, reserveIn, reserveOut math.Int) math.Int {
	if amountIn.IsNil() || !amountIn.IsPositive() || !p.HasLiquidity() {
		return math.ZeroInt()
	}

	inAfterFee := new(big.Int).Mul(amountIn.BigInt(), types.PPM.Sub(p.feePpm).BigInt())
	num := new(big.Int).Mul(inAfterFee, reserveOut.BigInt())
	den := new(big.Int).Mul(reserveIn.BigInt(), types.PPM.BigInt())
	den.Add(den, inAfterFee)
	return math.NewIntFromBigInt(num.Quo(num, den))
}

// AddLiquidity adds both tokens to the pool. On an empty pool it bootstraps
// the initial ratio and mints isqrt(native*foreign) LP; on a live pool it
// consumes the largest ratio-matching subset of the inputs and reports the
// unused remainder.
func (p *XykPool) AddLiquidity(nativeIn, foreignIn math.Int) (*types.AddLiquidityResult, error) {
	if nativeIn.IsNil() || !nativeIn.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("native amount must be positive")
	}
	if foreignIn.IsNil() || !foreignIn.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("foreign amount must be positive")
	}

	if !p.HasLiquidity() {
		return p.bootstrap(nativeIn, foreignIn)
	}

	lpFromN, err := MulDiv(nativeIn, p.supplyLp, p.reserveNative)
	if err != nil {
		return nil, err
	}
	lpFromF, err := MulDiv(foreignIn, p.supplyLp, p.reserveForeign)
	if err != nil {
		return nil, err
	}
	lpMinted := MinInt(lpFromN, lpFromF)
	if !lpMinted.IsPositive() {
		return nil, types.ErrInsufficientLiquidity.Wrap("amounts too small to mint any LP")
	}

	nativeUsed, err := MulDiv(p.reserveNative, lpMinted, p.supplyLp)
	if err != nil {
		return nil, err
	}
	foreignUsed, err := MulDiv(p.reserveForeign, lpMinted, p.supplyLp)
	if err != nil {
		return nil, err
	}

	p.reserveNative = p.reserveNative.Add(nativeUsed)
	p.reserveForeign = p.reserveForeign.Add(foreignUsed)
	p.supplyLp = p.supplyLp.Add(lpMinted)

	return &types.AddLiquidityResult{
		LpMinted:    lpMinted,
		NativeUsed:  nativeUsed,
		ForeignUsed: foreignUsed,
		NativeRest:  nativeIn.Sub(nativeUsed),
		ForeignRest: foreignIn.Sub(foreignUsed),
	}, nil
}

// bootstrap sets the pool's initial ratio directly from the supplied
// amounts and mints geometric-mean LP.
func (p *XykPool) bootstrap(nativeIn, foreignIn math.Int) (*types.AddLiquidityResult, error) {
	lpMinted, err := Isqrt(nativeIn.Mul(foreignIn))
	if err != nil {
		return nil, err
	}
	if !lpMinted.IsPositive() {
		return nil, types.ErrInsufficientLiquidity.Wrap("initial amounts too small to mint any LP")
	}

	p.reserveNative = nativeIn
	p.reserveForeign = foreignIn
	p.supplyLp = lpMinted

	return &types.AddLiquidityResult{
		LpMinted:    lpMinted,
		NativeUsed:  nativeIn,
		ForeignUsed: foreignIn,
		NativeRest:  math.ZeroInt(),
		ForeignRest: math.ZeroInt(),
	}, nil
}

// SwapNativeToForeign swaps native into the pool for foreign out.
func (p *XykPool) SwapNativeToForeign(nativeIn, minForeignOut math.Int) (*types.SwapResult, error) {
	return p.swap(nativeIn, minForeignOut, true)
}

// SwapForeignToNative swaps foreign into the pool for native out.
func (p *XykPool) SwapForeignToNative(foreignIn, minNativeOut math.Int) (*types.SwapResult, error) {
	return p.swap(foreignIn, minNativeOut, false)
}

func (p *XykPool) swap(amountIn, minOut math.Int, nativeIn bool) (*types.SwapResult, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}
	if !p.HasLiquidity() {
		return nil, types.ErrPoolNotInitialized.Wrap("pool has no liquidity")
	}
	if minOut.IsNil() {
		minOut = math.ZeroInt()
	}

	var amountOut, reserveOut math.Int
	if nativeIn {
		amountOut = p.GetOutForeign(amountIn)
		reserveOut = p.reserveForeign
	} else {
		amountOut = p.GetOutNative(amountIn)
		reserveOut = p.reserveNative
	}

	if amountOut.LT(minOut) {
		return nil, types.ErrSlippageExceeded.Wrapf("output %s below minimum %s", amountOut, minOut)
	}
	if amountOut.GTE(reserveOut) {
		return nil, types.ErrInsufficientLiquidity.Wrapf("output %s exceeds reserve %s", amountOut, reserveOut)
	}

	priceBefore, err := p.GetPrice()
	if err != nil {
		return nil, err
	}

	if nativeIn {
		p.reserveNative = p.reserveNative.Add(amountIn)
		p.reserveForeign = p.reserveForeign.Sub(amountOut)
	} else {
		p.reserveForeign = p.reserveForeign.Add(amountIn)
		p.reserveNative = p.reserveNative.Sub(amountOut)
	}

	priceAfter, err := p.GetPrice()
	if err != nil {
		return nil, err
	}

	priceImpact := math.ZeroInt()
	if priceBefore.IsPositive() {
		priceImpact, err = MulDiv(AbsInt(priceAfter.Sub(priceBefore)), types.PPM, priceBefore)
		if err != nil {
			return nil, err
		}
	}

	return &types.SwapResult{
		AmountIn:       amountIn,
		AmountOut:      amountOut,
		PriceBefore:    priceBefore,
		PriceAfter:     priceAfter,
		PriceImpactPpm: priceImpact,
	}, nil
}

// State returns a read-only snapshot of the pool.
func (p *XykPool) State() types.PoolState {
	return types.PoolState{
		FeePpm:         p.feePpm,
		ReserveNative:  p.reserveNative,
		ReserveForeign: p.reserveForeign,
		SupplyLp:       p.supplyLp,
	}
}
