package keeper

import (
	"cosmossdk.io/log"
	"cosmossdk.io/math"

	"github.com/utbc-labs/utbc/x/utbc/types"
)

// FeeManager buffers router fees and recycles them into burned supply.
// Foreign fees are swapped to native through the pool once the buffer
// crosses the minimum swap threshold; the native buffer is burned through
// the minter. Every downstream failure is absorbed: the buffers are the
// recovery mechanism and the next qualifying fee retries.
type FeeManager struct {
	minSwapForeign math.Int
	pool           *XykPool
	minter         *UtbcMinter
	logger         log.Logger

	bufferNative        math.Int
	bufferForeign       math.Int
	totalNativeBurned   math.Int
	totalForeignSwapped math.Int
	feesNative          math.Int
	feesForeign         math.Int
}

// NewFeeManager creates a fee manager draining into the given pool and minter.
func NewFeeManager(minSwapForeign math.Int, pool *XykPool, minter *UtbcMinter, logger log.Logger) *FeeManager {
	return &FeeManager{
		minSwapForeign:      minSwapForeign,
		pool:                pool,
		minter:              minter,
		logger:              logger.With("component", "fees"),
		bufferNative:        math.ZeroInt(),
		bufferForeign:       math.ZeroInt(),
		totalNativeBurned:   math.ZeroInt(),
		totalForeignSwapped: math.ZeroInt(),
		feesNative:          math.ZeroInt(),
		feesForeign:         math.ZeroInt(),
	}
}

// ReceiveFeeNative credits a native fee and attempts to burn the whole
// native buffer. No-op for non-positive amounts.
func (fm *FeeManager) ReceiveFeeNative(amount math.Int) {
	if amount.IsNil() || !amount.IsPositive() {
		return
	}

	fm.feesNative = fm.feesNative.Add(amount)
	fm.bufferNative = fm.bufferNative.Add(amount)
	fm.tryBurn()
}

// ReceiveFeeForeign credits a foreign fee. Once the foreign buffer reaches
// the swap threshold and the pool is live, the buffer is swapped to native
// and the native buffer burned. No-op for non-positive amounts.
func (fm *FeeManager) ReceiveFeeForeign(amount math.Int) {
	if amount.IsNil() || !amount.IsPositive() {
		return
	}

	fm.feesForeign = fm.feesForeign.Add(amount)
	fm.bufferForeign = fm.bufferForeign.Add(amount)

	if fm.bufferForeign.LT(fm.minSwapForeign) || !fm.pool.HasLiquidity() {
		return
	}

	swapped := fm.bufferForeign
	res, err := fm.pool.SwapForeignToNative(swapped, math.ZeroInt())
	if err != nil {
		fm.logger.Debug("fee swap absorbed", "err", err, "foreign", swapped)
		return
	}

	fm.bufferForeign = math.ZeroInt()
	fm.bufferNative = fm.bufferNative.Add(res.AmountOut)
	fm.totalForeignSwapped = fm.totalForeignSwapped.Add(swapped)
	fm.tryBurn()
}

// tryBurn burns the entire native buffer through the minter, keeping the
// buffer on failure.
func (fm *FeeManager) tryBurn() {
	if !fm.bufferNative.IsPositive() {
		return
	}

	res, err := fm.minter.BurnNative(fm.bufferNative)
	if err != nil {
		fm.logger.Debug("fee burn absorbed", "err", err, "native", fm.bufferNative)
		return
	}

	fm.totalNativeBurned = fm.totalNativeBurned.Add(res.NativeBurned)
	fm.bufferNative = math.ZeroInt()
}

// State returns a read-only snapshot of the fee manager.
func (fm *FeeManager) State() types.FeeState {
	return types.FeeState{
		BufferNative:        fm.bufferNative,
		BufferForeign:       fm.bufferForeign,
		TotalNativeBurned:   fm.totalNativeBurned,
		TotalForeignSwapped: fm.totalForeignSwapped,
		FeesNative:          fm.feesNative,
		FeesForeign:         fm.feesForeign,
	}
}
