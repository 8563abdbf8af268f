package keeper

import (
	"cosmossdk.io/log"
	"cosmossdk.io/math"

	"github.com/utbc-labs/utbc/x/utbc/types"
)

// PolManager accumulates protocol-owned liquidity. It converts (native,
// foreign) contributions from the minter into LP positions against the
// pool's current ratio and parks anything it cannot place in its buffers.
// The LP it holds is permanent: nothing here ever decreases BalanceLp or
// the contributed counters.
type PolManager struct {
	pool   *XykPool
	logger log.Logger

	balanceLp          math.Int
	contributedNative  math.Int
	contributedForeign math.Int
	bufferNative       math.Int
	bufferForeign      math.Int
}

// NewPolManager creates a POL manager writing to the given pool.
func NewPolManager(pool *XykPool, logger log.Logger) *PolManager {
	return &PolManager{
		pool:               pool,
		logger:             logger.With("component", "pol"),
		balanceLp:          math.ZeroInt(),
		contributedNative:  math.ZeroInt(),
		contributedForeign: math.ZeroInt(),
		bufferNative:       math.ZeroInt(),
		bufferForeign:      math.ZeroInt(),
	}
}

// AddLiquidity places a (native, foreign) contribution. It never fails the
// caller: on an empty pool it bootstraps directly from the combined buffers
// and contribution; on a live pool it runs a two-step zap (balanced top-up,
// then residual swap). Whatever cannot be placed stays buffered for the
// next cycle.
func (pm *PolManager) AddLiquidity(native, foreign math.Int) *types.PolResult {
	native = sanitizeAmount(native)
	foreign = sanitizeAmount(foreign)

	if !pm.pool.HasLiquidity() {
		return pm.bootstrap(native, foreign)
	}
	return pm.zap(native, foreign)
}

// bootstrap sets the pool's initial ratio from everything POL holds. Not a
// zap: there is no live ratio to balance against yet.
func (pm *PolManager) bootstrap(native, foreign math.Int) *types.PolResult {
	n := pm.bufferNative.Add(native)
	f := pm.bufferForeign.Add(foreign)

	if n.IsZero() || f.IsZero() {
		pm.bufferNative = n
		pm.bufferForeign = f
		return zeroPolResult()
	}

	res, err := pm.pool.AddLiquidity(n, f)
	if err != nil {
		pm.logger.Debug("bootstrap add_liquidity absorbed", "err", err, "native", n, "foreign", f)
		pm.bufferNative = n
		pm.bufferForeign = f
		return zeroPolResult()
	}

	pm.balanceLp = pm.balanceLp.Add(res.LpMinted)
	pm.contributedNative = pm.contributedNative.Add(res.NativeUsed)
	pm.contributedForeign = pm.contributedForeign.Add(res.ForeignUsed)
	pm.bufferNative = res.NativeRest
	pm.bufferForeign = res.ForeignRest

	return &types.PolResult{
		LpMinted:    res.LpMinted,
		NativeUsed:  res.NativeUsed,
		ForeignUsed: res.ForeignUsed,
		Added:       res.LpMinted.IsPositive(),
	}
}

// zap runs the two-step conversion against a live pool: add the largest
// ratio-balanced subset, then swap the foreign residual into native.
func (pm *PolManager) zap(native, foreign math.Int) *types.PolResult {
	n := pm.bufferNative.Add(native)
	f := pm.bufferForeign.Add(foreign)

	nativeRest := n
	foreignRest := f
	lpMinted := math.ZeroInt()
	nativeUsed := math.ZeroInt()
	foreignUsed := math.ZeroInt()

	// Step 1: balanced top-up at the pool's current ratio.
	if n.IsPositive() && f.IsPositive() {
		useNative, useForeign := pm.balancedPair(n, f)
		if useNative.IsPositive() && useForeign.IsPositive() {
			res, err := pm.pool.AddLiquidity(useNative, useForeign)
			if err != nil {
				pm.logger.Debug("zap add_liquidity absorbed", "err", err)
			} else {
				lpMinted = lpMinted.Add(res.LpMinted)
				nativeUsed = nativeUsed.Add(res.NativeUsed)
				foreignUsed = foreignUsed.Add(res.ForeignUsed)
				pm.balanceLp = pm.balanceLp.Add(res.LpMinted)
				pm.contributedNative = pm.contributedNative.Add(res.NativeUsed)
				pm.contributedForeign = pm.contributedForeign.Add(res.ForeignUsed)
				nativeRest = nativeRest.Sub(res.NativeUsed)
				foreignRest = foreignRest.Sub(res.ForeignUsed)
			}
		}
	}

	// Step 2: swap the foreign residual into native so the buffer leans to
	// the native side for the next cycle.
	if foreignRest.IsPositive() && pm.pool.HasLiquidity() {
		res, err := pm.pool.SwapForeignToNative(foreignRest, math.ZeroInt())
		if err != nil {
			pm.logger.Debug("zap residual swap absorbed", "err", err, "foreign", foreignRest)
		} else {
			nativeRest = nativeRest.Add(res.AmountOut)
			pm.contributedForeign = pm.contributedForeign.Add(foreignRest)
			foreignUsed = foreignUsed.Add(foreignRest)
			foreignRest = math.ZeroInt()
		}
	}

	pm.bufferNative = nativeRest
	pm.bufferForeign = foreignRest

	return &types.PolResult{
		LpMinted:    lpMinted,
		NativeUsed:  nativeUsed,
		ForeignUsed: foreignUsed,
		Added:       lpMinted.IsPositive(),
	}
}

// balancedPair returns the largest (native, foreign) pair matching the
// pool's reserve ratio that fits inside (n, f).
func (pm *PolManager) balancedPair(n, f math.Int) (math.Int, math.Int) {
	fByN, err := MulDiv(n, pm.pool.reserveForeign, pm.pool.reserveNative)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt()
	}
	if fByN.LTE(f) {
		return n, fByN
	}

	nByF, err := MulDiv(f, pm.pool.reserveNative, pm.pool.reserveForeign)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt()
	}
	return nByF, f
}

// State returns a read-only snapshot of the POL position.
func (pm *PolManager) State() types.PolState {
	return types.PolState{
		BalanceLp:          pm.balanceLp,
		ContributedNative:  pm.contributedNative,
		ContributedForeign: pm.contributedForeign,
		BufferNative:       pm.bufferNative,
		BufferForeign:      pm.bufferForeign,
	}
}

func zeroPolResult() *types.PolResult {
	return &types.PolResult{
		LpMinted:    math.ZeroInt(),
		NativeUsed:  math.ZeroInt(),
		ForeignUsed: math.ZeroInt(),
	}
}

// sanitizeAmount clamps nil or negative contributions to zero.
func sanitizeAmount(a math.Int) math.Int {
	if a.IsNil() || a.IsNegative() {
		return math.ZeroInt()
	}
	return a
}
