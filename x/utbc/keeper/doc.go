// Package keeper implements the UTBC token-economy core: a deterministic,
// integer-exact composition of a unidirectional bonding-curve minter, a
// constant-product pool and a protocol-owned-liquidity manager, fronted by
// a smart router and a fee manager.
//
// # Core Functionality
//
// Bonding-curve mints: the minter issues native supply against a foreign
// payment along a linear price curve, solving the quadratic cost integral
// in exact integer arithmetic and distributing the minted quantity among
// user, POL, treasury and team by fixed PPM shares.
//
// Pool swaps: a constant-product pool (x * y = k) with a proportional fee
// holds native/foreign reserves and LP shares. The pool bootstraps on the
// first add-liquidity and can never drain back to empty.
//
// Protocol-owned liquidity: the POL manager turns the minter's POL share
// plus the buyer's full foreign payment into LP via a two-step zap
// (balanced add, then residual swap) and carries anything unplaceable in
// buffers. It never fails its caller.
//
// Routing: the smart router compares the mint quote against the pool quote
// on the net-of-fee amount and executes the branch that delivers more
// native to the user, with mint winning ties.
//
// Fee recycling: the fee manager buffers router fees, swaps foreign fees
// to native once a threshold is crossed and burns the native buffer
// through the minter. All downstream failures are absorbed into buffers.
//
// # Arithmetic
//
// Monetary values are cosmossdk.io/math.Int scaled by types.Precision;
// fractions are PPM-scaled integers. Intermediates widen through math/big;
// no monetary path uses floating point.
//
// # Concurrency
//
// Operations are synchronous and serial. The Keeper entry points hold one
// mutex across the whole call; direct component access requires external
// serialisation.
//
// # Metrics
//
// The keeper exposes Prometheus metrics for routed swaps, mints, burns,
// pool reserves and POL holdings via Metrics.
package keeper
