package keeper

import (
	"cosmossdk.io/log"
	"cosmossdk.io/math"

	"github.com/utbc-labs/utbc/x/utbc/types"
)

// SmartRouter front-ends all external trades. It validates minima, collects
// the router fee, quotes the bonding-curve mint against the pool swap on
// the net amount and executes whichever delivers more native to the user.
// The router holds no mutable state of its own.
type SmartRouter struct {
	params  types.Params
	pool    *XykPool
	minter  *UtbcMinter
	fees    *FeeManager
	logger  log.Logger
	metrics *Metrics
}

// NewSmartRouter wires the router over the pool, minter and fee manager.
func NewSmartRouter(params types.Params, pool *XykPool, minter *UtbcMinter, fees *FeeManager, logger log.Logger, metrics *Metrics) *SmartRouter {
	return &SmartRouter{
		params:  params,
		pool:    pool,
		minter:  minter,
		fees:    fees,
		logger:  logger.With("component", "router"),
		metrics: metrics,
	}
}

// SwapForeignToNative trades foreign for native over the better of the two
// routes. Ties go to the mint branch.
func (r *SmartRouter) SwapForeignToNative(foreignIn, minNativeOut math.Int) (*types.RouteResult, error) {
	if foreignIn.IsNil() || !foreignIn.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}
	if foreignIn.LT(r.params.MinSwapForeign) {
		return nil, types.ErrBelowMinimum.Wrapf("amount %s below minimum %s", foreignIn, r.params.MinSwapForeign)
	}
	if !r.pool.HasLiquidity() && foreignIn.LT(r.params.MinInitialForeign) {
		return nil, types.ErrBelowMinimum.Wrapf("initial mint requires minimum %s, got %s", r.params.MinInitialForeign, foreignIn)
	}
	if minNativeOut.IsNil() {
		minNativeOut = math.ZeroInt()
	}

	foreignFee, err := MulDiv(foreignIn, r.params.FeeRouterPpm, types.PPM)
	if err != nil {
		return nil, err
	}
	foreignNet := foreignIn.Sub(foreignFee)
	if !foreignNet.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrapf("amount %s consumed entirely by fees", foreignIn)
	}

	utbcQuote := r.minter.GetMintQuote(foreignNet)
	xykOut := math.ZeroInt()
	if r.pool.HasLiquidity() {
		xykOut = r.pool.GetOutNative(foreignNet)
	}

	utbcViable := utbcQuote != nil && utbcQuote.User.IsPositive() && utbcQuote.User.GTE(minNativeOut)
	xykViable := xykOut.IsPositive() && xykOut.GTE(minNativeOut)

	switch {
	case utbcViable && (!xykViable || utbcQuote.User.GTE(xykOut)):
		r.fees.ReceiveFeeForeign(foreignFee)
		return r.executeMint(foreignIn, foreignFee, foreignNet)
	case xykViable:
		r.fees.ReceiveFeeForeign(foreignFee)
		return r.executeXykBuy(foreignIn, foreignFee, foreignNet, minNativeOut)
	case xykOut.IsPositive():
		return nil, types.ErrSlippageExceeded.Wrapf("best output %s below minimum %s", MaxInt(xykOut, quoteUser(utbcQuote)), minNativeOut)
	default:
		return nil, types.ErrNoRoute.Wrapf("no route for %s foreign", foreignIn)
	}
}

func (r *SmartRouter) executeMint(foreignIn, foreignFee, foreignNet math.Int) (*types.RouteResult, error) {
	mint, err := r.minter.MintNative(foreignNet)
	if err != nil {
		return nil, err
	}

	r.metrics.RecordSwap(types.RouteUtbc, foreignNet, mint.UserNative)
	r.metrics.RecordMint(mint)
	r.observeStates()

	return &types.RouteResult{
		Route:       types.RouteUtbc,
		AmountIn:    foreignIn,
		FeeAmount:   foreignFee,
		AmountOut:   mint.UserNative,
		PriceBefore: mint.PriceBefore,
		PriceAfter:  mint.PriceAfter,
		Mint:        mint,
	}, nil
}

func (r *SmartRouter) executeXykBuy(foreignIn, foreignFee, foreignNet, minNativeOut math.Int) (*types.RouteResult, error) {
	swap, err := r.pool.SwapForeignToNative(foreignNet, minNativeOut)
	if err != nil {
		return nil, err
	}

	r.metrics.RecordSwap(types.RouteXyk, foreignNet, swap.AmountOut)
	r.observeStates()

	return &types.RouteResult{
		Route:       types.RouteXyk,
		AmountIn:    foreignIn,
		FeeAmount:   foreignFee,
		AmountOut:   swap.AmountOut,
		PriceBefore: swap.PriceBefore,
		PriceAfter:  swap.PriceAfter,
		Swap:        swap,
	}, nil
}

// SwapNativeToForeign sells native into the pool. The bonding curve is
// unidirectional, so the pool is the only route.
func (r *SmartRouter) SwapNativeToForeign(nativeIn, minForeignOut math.Int) (*types.RouteResult, error) {
	if nativeIn.IsNil() || !nativeIn.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}
	if !r.pool.HasLiquidity() {
		return nil, types.ErrPoolNotInitialized.Wrap("cannot sell native before the pool is initialised")
	}
	if minForeignOut.IsNil() {
		minForeignOut = math.ZeroInt()
	}

	nativeFee, err := MulDiv(nativeIn, r.params.FeeRouterPpm, types.PPM)
	if err != nil {
		return nil, err
	}
	nativeNet := nativeIn.Sub(nativeFee)
	if !nativeNet.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrapf("amount %s consumed entirely by fees", nativeIn)
	}

	priceSpot, err := r.pool.GetPrice()
	if err != nil {
		return nil, err
	}
	if priceSpot.IsZero() {
		return nil, types.ErrInsufficientLiquidity.Wrap("pool spot price is zero")
	}

	netAsForeign, err := MulDiv(nativeNet, priceSpot, types.Precision)
	if err != nil {
		return nil, err
	}
	if netAsForeign.LT(r.params.MinSwapForeign) {
		return nil, types.ErrBelowMinimum.Wrapf("foreign equivalent %s below minimum %s", netAsForeign, r.params.MinSwapForeign)
	}

	// The fee is forwarded only once the trade is known to clear the
	// caller's minimum, so a slippage failure leaves no state behind.
	if r.pool.GetOutForeign(nativeNet).LT(minForeignOut) {
		return nil, types.ErrSlippageExceeded.Wrapf("output below minimum %s", minForeignOut)
	}

	r.fees.ReceiveFeeNative(nativeFee)

	swap, err := r.pool.SwapNativeToForeign(nativeNet, minForeignOut)
	if err != nil {
		return nil, err
	}

	r.metrics.RecordSwap(types.RouteXyk, nativeNet, swap.AmountOut)
	r.observeStates()

	return &types.RouteResult{
		Route:       types.RouteXyk,
		AmountIn:    nativeIn,
		FeeAmount:   nativeFee,
		AmountOut:   swap.AmountOut,
		PriceBefore: swap.PriceBefore,
		PriceAfter:  swap.PriceAfter,
		Swap:        swap,
	}, nil
}

// QuoteBothRoutes quotes both branches for a gross foreign amount without
// touching any state.
func (r *SmartRouter) QuoteBothRoutes(foreignIn math.Int) (types.RouteQuote, error) {
	quote := types.RouteQuote{UtbcUserOut: math.ZeroInt(), XykOut: math.ZeroInt()}
	if foreignIn.IsNil() || !foreignIn.IsPositive() {
		return quote, types.ErrInvalidAmount.Wrap("quote amount must be positive")
	}

	foreignFee, err := MulDiv(foreignIn, r.params.FeeRouterPpm, types.PPM)
	if err != nil {
		return quote, err
	}
	foreignNet := foreignIn.Sub(foreignFee)
	if !foreignNet.IsPositive() {
		return quote, nil
	}

	if mintQuote := r.minter.GetMintQuote(foreignNet); mintQuote != nil {
		quote.UtbcUserOut = mintQuote.User
	}
	if r.pool.HasLiquidity() {
		quote.XykOut = r.pool.GetOutNative(foreignNet)
	}
	return quote, nil
}

func (r *SmartRouter) observeStates() {
	r.metrics.ObservePool(r.pool.State())
	r.metrics.ObserveMinter(r.minter.State())
	r.metrics.ObservePol(r.minter.pol.State())
	r.metrics.ObserveFees(r.fees.State())
}

func quoteUser(q *types.MintQuote) math.Int {
	if q == nil {
		return math.ZeroInt()
	}
	return q.User
}
