package keeper

import (
	"math/big"

	"cosmossdk.io/log"
	"cosmossdk.io/math"

	"github.com/utbc-labs/utbc/x/utbc/types"
)

// UtbcMinter issues native supply along a linear, unidirectional bonding
// curve. The spot price at supply s is priceInitial + slopePpm*s/PPM, so a
// mint of size d costs the quadratic integral of the curve between s and
// s+d. Minted supply is distributed by fixed shares; the POL share plus the
// buyer's full foreign payment is handed to the POL manager.
type UtbcMinter struct {
	priceInitial math.Int
	slopePpm     math.Int
	shares       types.ShareConfig
	pol          *PolManager
	logger       log.Logger

	supply   math.Int
	treasury math.Int
	team     math.Int
}

// NewUtbcMinter creates a minter at zero supply.
func NewUtbcMinter(params types.Params, pol *PolManager, logger log.Logger) *UtbcMinter {
	return &UtbcMinter{
		priceInitial: params.PriceInitial,
		slopePpm:     params.SlopePpm,
		shares:       params.Shares,
		pol:          pol,
		logger:       logger.With("component", "minter"),
		supply:       math.ZeroInt(),
		treasury:     math.ZeroInt(),
		team:         math.ZeroInt(),
	}
}

// GetPrice returns the bonding-curve spot price at the current supply.
func (m *UtbcMinter) GetPrice() math.Int {
	return m.priceAt(m.supply)
}

func (m *UtbcMinter) priceAt(supply math.Int) math.Int {
	step := new(big.Int).Mul(m.slopePpm.BigInt(), supply.BigInt())
	step.Quo(step, types.PPM.BigInt())
	step.Add(step, m.priceInitial.BigInt())
	return math.NewIntFromBigInt(step)
}

// CalculateMint returns the largest mint size whose cumulative curve cost
// does not exceed the foreign payment. Zero when the payment is
// non-positive or buys less than one unit.
func (m *UtbcMinter) CalculateMint(foreignIn math.Int) math.Int {
	if foreignIn.IsNil() || !foreignIn.IsPositive() {
		return math.ZeroInt()
	}

	if m.slopePpm.IsZero() {
		// Flat curve: d = f * PRECISION / priceInitial.
		d, err := MulDiv(foreignIn, types.Precision, m.priceInitial)
		if err != nil {
			return math.ZeroInt()
		}
		return d
	}

	// Solve a*d^2 + b*d + c = 0 for the largest integer d with
	//   a = slope
	//   b = 2*(priceInitial*PPM + slope*supply)
	//   c = -2*f*PPM*PRECISION
	// widened through big.Int: the discriminant overflows 256 bits at the
	// edges of the parameter envelope.
	a := m.slopePpm.BigInt()

	b := new(big.Int).Mul(m.priceInitial.BigInt(), types.PPM.BigInt())
	b.Add(b, new(big.Int).Mul(m.slopePpm.BigInt(), m.supply.BigInt()))
	b.Lsh(b, 1)

	negC := new(big.Int).Mul(foreignIn.BigInt(), types.PPM.BigInt())
	negC.Mul(negC, types.Precision.BigInt())
	negC.Lsh(negC, 1)

	disc := new(big.Int).Mul(b, b)
	disc.Add(disc, new(big.Int).Lsh(new(big.Int).Mul(a, negC), 2))
	if disc.Sign() < 0 {
		return math.ZeroInt()
	}

	root := isqrtBig(disc)
	if root.Cmp(b) <= 0 {
		return math.ZeroInt()
	}

	d := new(big.Int).Sub(root, b)
	d.Quo(d, new(big.Int).Lsh(a, 1))
	return math.NewIntFromBigInt(d)
}

// GetMintQuote returns the share breakdown for a prospective mint, or nil
// when the payment would mint nothing.
func (m *UtbcMinter) GetMintQuote(foreignIn math.Int) *types.MintQuote {
	minted := m.CalculateMint(foreignIn)
	if !minted.IsPositive() {
		return nil
	}

	user, pol, treasury, team := m.distribute(minted)
	return &types.MintQuote{
		Minted:   minted,
		User:     user,
		Pol:      pol,
		Treasury: treasury,
		Team:     team,
	}
}

// distribute splits a minted quantity by the share config. The team share
// takes the floor-division remainder, so the four shares always sum to the
// minted quantity exactly.
func (m *UtbcMinter) distribute(minted math.Int) (user, pol, treasury, team math.Int) {
	user, _ = MulDiv(minted, m.shares.UserPpm, types.PPM)
	pol, _ = MulDiv(minted, m.shares.PolPpm, types.PPM)
	treasury, _ = MulDiv(minted, m.shares.TreasuryPpm, types.PPM)
	team = minted.Sub(user).Sub(pol).Sub(treasury)
	return user, pol, treasury, team
}

// MintNative executes a mint for the full foreign payment, credits the
// treasury and team accumulators and forwards the POL share together with
// the whole payment to the POL manager.
func (m *UtbcMinter) MintNative(foreignIn math.Int) (*types.MintResult, error) {
	minted := m.CalculateMint(foreignIn)
	if !minted.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrapf("insufficient amount: %s mints nothing", foreignIn)
	}

	priceBefore := m.GetPrice()
	user, pol, treasury, team := m.distribute(minted)

	m.supply = m.supply.Add(minted)
	m.treasury = m.treasury.Add(treasury)
	m.team = m.team.Add(team)

	priceAfter := m.GetPrice()

	polRes := m.pol.AddLiquidity(pol, foreignIn)

	return &types.MintResult{
		ForeignIn:      foreignIn,
		TotalNative:    minted,
		UserNative:     user,
		PolNative:      pol,
		TreasuryNative: treasury,
		TeamNative:     team,
		PriceBefore:    priceBefore,
		PriceAfter:     priceAfter,
		Pol:            *polRes,
	}, nil
}

// BurnNative removes supply from circulation. Burning lowers the spot
// price; the curve itself is unchanged.
func (m *UtbcMinter) BurnNative(amount math.Int) (*types.BurnResult, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrap("burn amount must be positive")
	}
	if amount.GT(m.supply) {
		return nil, types.ErrSupplyExhausted.Wrapf("burn %s exceeds supply %s", amount, m.supply)
	}

	supplyBefore := m.supply
	m.supply = m.supply.Sub(amount)

	return &types.BurnResult{
		NativeBurned: amount,
		SupplyBefore: supplyBefore,
		SupplyAfter:  m.supply,
	}, nil
}

// State returns a read-only snapshot of the minter.
func (m *UtbcMinter) State() types.MinterState {
	return types.MinterState{
		Supply:   m.supply,
		Treasury: m.treasury,
		Team:     m.team,
		Price:    m.GetPrice(),
	}
}
