package keeper

import (
	"sync"

	"cosmossdk.io/log"
	"cosmossdk.io/math"

	"github.com/utbc-labs/utbc/x/utbc/types"
)

// Keeper owns the composed token-economy state: the constant-product pool,
// the bonding-curve minter, the POL manager, the fee manager and the smart
// router on top. Construction is strictly acyclic — pool, then POL manager,
// then minter, then fee manager, then router — so no component ever calls
// back up the stack.
//
// Every operation is a synchronous, atomic transition across the
// components. The keeper's exported entry points serialise behind a single
// mutex covering the whole call; per-component locking would let an
// observer see a half-executed mint.
type Keeper struct {
	mu sync.Mutex

	params  types.Params
	pool    *XykPool
	pol     *PolManager
	minter  *UtbcMinter
	fees    *FeeManager
	router  *SmartRouter
	logger  log.Logger
	metrics *Metrics
}

// NewKeeper validates the params and wires the five components. A nil
// metrics recorder disables metric collection.
func NewKeeper(params types.Params, logger log.Logger, metrics *Metrics) (*Keeper, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	logger = logger.With("module", "x/"+types.ModuleName)

	pool, err := NewXykPool(params.FeeXykPpm)
	if err != nil {
		return nil, err
	}
	pol := NewPolManager(pool, logger)
	minter := NewUtbcMinter(params, pol, logger)
	fees := NewFeeManager(params.MinSwapForeign, pool, minter, logger)
	router := NewSmartRouter(params, pool, minter, fees, logger, metrics)

	return &Keeper{
		params:  params,
		pool:    pool,
		pol:     pol,
		minter:  minter,
		fees:    fees,
		router:  router,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// SwapForeignToNative routes a foreign-in trade through the smart router.
func (k *Keeper) SwapForeignToNative(foreignIn, minNativeOut math.Int) (*types.RouteResult, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.router.SwapForeignToNative(foreignIn, minNativeOut)
}

// SwapNativeToForeign routes a native-in trade through the smart router.
func (k *Keeper) SwapNativeToForeign(nativeIn, minForeignOut math.Int) (*types.RouteResult, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.router.SwapNativeToForeign(nativeIn, minForeignOut)
}

// QuoteBothRoutes quotes both branches for a gross foreign amount.
func (k *Keeper) QuoteBothRoutes(foreignIn math.Int) (types.RouteQuote, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.router.QuoteBothRoutes(foreignIn)
}

// Params returns the immutable system configuration.
func (k *Keeper) Params() types.Params { return k.params }

// Pool returns the constant-product pool.
func (k *Keeper) Pool() *XykPool { return k.pool }

// Pol returns the POL manager.
func (k *Keeper) Pol() *PolManager { return k.pol }

// Minter returns the bonding-curve minter.
func (k *Keeper) Minter() *UtbcMinter { return k.minter }

// FeeManager returns the fee manager.
func (k *Keeper) FeeManager() *FeeManager { return k.fees }

// Router returns the smart router. Direct router access bypasses the
// keeper's mutex; callers in concurrent deployments must serialise
// externally.
func (k *Keeper) Router() *SmartRouter { return k.router }
