package keeper

import (
	"math/big"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/utbc-labs/utbc/x/utbc/types"
)

var (
	swapCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "utbc_swaps_total",
			Help: "Total number of routed swaps executed",
		},
		[]string{"route"},
	)

	swapVolume = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "utbc_swap_volume_tokens",
			Help: "Cumulative routed input volume in whole tokens",
		},
		[]string{"route"},
	)

	mintCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "utbc_mints_total",
			Help: "Total number of bonding-curve mints",
		},
	)

	mintedSupply = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "utbc_minter_supply_tokens",
			Help: "Current native supply in whole tokens",
		},
	)

	minterPrice = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "utbc_minter_spot_price",
			Help: "Bonding-curve spot price in foreign per native",
		},
	)

	poolReserves = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "utbc_pool_reserves_tokens",
			Help: "Current pool reserves in whole tokens",
		},
		[]string{"token"},
	)

	polLpBalance = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "utbc_pol_lp_balance",
			Help: "LP balance held by the POL manager, in whole LP tokens",
		},
	)

	feeBuffers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "utbc_fee_buffer_tokens",
			Help: "Fee-manager buffer balances in whole tokens",
		},
		[]string{"token"},
	)

	nativeBurned = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "utbc_native_burned_tokens",
			Help: "Cumulative native supply burned from fees, in whole tokens",
		},
	)
)

// Metrics records prometheus metrics for the module. A nil *Metrics is a
// valid no-op recorder, so tests and embedders that do not scrape can pass
// nil.
type Metrics struct{}

// NewMetrics returns the module metrics recorder.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordSwap counts an executed routed swap and its input volume.
func (m *Metrics) RecordSwap(route types.Route, amountIn, _ math.Int) {
	if m == nil {
		return
	}
	swapCount.WithLabelValues(string(route)).Inc()
	swapVolume.WithLabelValues(string(route)).Add(gaugeTokens(amountIn))
}

// RecordMint counts an executed mint.
func (m *Metrics) RecordMint(_ *types.MintResult) {
	if m == nil {
		return
	}
	mintCount.Inc()
}

// ObservePool updates the pool reserve gauges.
func (m *Metrics) ObservePool(s types.PoolState) {
	if m == nil {
		return
	}
	poolReserves.WithLabelValues("native").Set(gaugeTokens(s.ReserveNative))
	poolReserves.WithLabelValues("foreign").Set(gaugeTokens(s.ReserveForeign))
}

// ObserveMinter updates the supply and spot-price gauges.
func (m *Metrics) ObserveMinter(s types.MinterState) {
	if m == nil {
		return
	}
	mintedSupply.Set(gaugeTokens(s.Supply))
	minterPrice.Set(gaugeTokens(s.Price))
}

// ObservePol updates the POL holding gauge.
func (m *Metrics) ObservePol(s types.PolState) {
	if m == nil {
		return
	}
	polLpBalance.Set(gaugeTokens(s.BalanceLp))
}

// ObserveFees updates the fee buffer and burn gauges.
func (m *Metrics) ObserveFees(s types.FeeState) {
	if m == nil {
		return
	}
	feeBuffers.WithLabelValues("native").Set(gaugeTokens(s.BufferNative))
	feeBuffers.WithLabelValues("foreign").Set(gaugeTokens(s.BufferForeign))
	nativeBurned.Set(gaugeTokens(s.TotalNativeBurned))
}

// gaugeTokens converts an internal Precision-scaled amount to whole tokens
// for gauge display. Display only; monetary paths never touch floats.
func gaugeTokens(amount math.Int) float64 {
	if amount.IsNil() {
		return 0
	}
	f, _ := new(big.Rat).SetFrac(amount.BigInt(), types.Precision.BigInt()).Float64()
	return f
}
