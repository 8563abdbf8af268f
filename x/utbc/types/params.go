package types

import (
	"cosmossdk.io/math"
)

// Scaling constants shared by every monetary path in the module.
//
// Monetary quantities are unbounded integers scaled by Precision; fractions
// (fees, shares, slopes) are integers scaled by PPM and carry a Ppm suffix.
var (
	// Precision is the monetary scaling factor: one token is Precision units.
	Precision = math.NewInt(1_000_000_000_000) // 10^12

	// PPM encodes fractions as parts per million: 1.0 == 1 000 000.
	PPM = math.NewInt(1_000_000) // 10^6
)

// ShareConfig fixes how freshly minted native supply is distributed.
// The four shares must sum to exactly PPM.
type ShareConfig struct {
	UserPpm     math.Int
	PolPpm      math.Int
	TreasuryPpm math.Int
	TeamPpm     math.Int
}

// Params holds the immutable system configuration. All fields are fixed at
// construction time; there is no governance surface that mutates them.
type Params struct {
	// PriceInitial is the bonding-curve spot price at zero supply,
	// Precision-scaled foreign per native.
	PriceInitial math.Int

	// SlopePpm is the linear bonding-curve slope, PPM-scaled.
	SlopePpm math.Int

	// FeeXykPpm is the constant-product pool's proportional swap fee.
	FeeXykPpm math.Int

	// FeeRouterPpm is the router fee taken off every external trade.
	FeeRouterPpm math.Int

	// MinSwapForeign is the smallest foreign-denominated trade the router
	// accepts.
	MinSwapForeign math.Int

	// MinInitialForeign is the floor for the very first mint while the pool
	// is not yet live.
	MinInitialForeign math.Int

	// Shares distributes minted supply among user, POL, treasury and team.
	Shares ShareConfig
}

// DefaultParams returns the default system configuration.
func DefaultParams() Params {
	return Params{
		PriceInitial:      Precision.QuoRaw(1000),          // 0.001 foreign per native
		SlopePpm:          PPM.QuoRaw(1000),                // 1000
		FeeXykPpm:         PPM.MulRaw(3).QuoRaw(1000),      // 0.3%
		FeeRouterPpm:      PPM.MulRaw(2).QuoRaw(1000),      // 0.2%
		MinSwapForeign:    Precision.QuoRaw(100),           // 0.01 foreign
		MinInitialForeign: Precision.MulRaw(100),           // 100 foreign
		Shares: ShareConfig{
			UserPpm:     PPM.QuoRaw(3),                     // 333333
			PolPpm:      PPM.QuoRaw(3),                     // 333333
			TreasuryPpm: PPM.MulRaw(2).QuoRaw(9),           // 222222
			TeamPpm:     PPM.Sub(PPM.MulRaw(8).QuoRaw(9)),  // 111112, takes the remainder
		},
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validatePriceInitial(p.PriceInitial); err != nil {
		return err
	}
	if err := validateSlopePpm(p.SlopePpm); err != nil {
		return err
	}
	if err := validateFeePpm("xyk fee", p.FeeXykPpm); err != nil {
		return err
	}
	if err := validateFeePpm("router fee", p.FeeRouterPpm); err != nil {
		return err
	}
	if err := validateThreshold("min swap foreign", p.MinSwapForeign); err != nil {
		return err
	}
	if err := validateThreshold("min initial foreign", p.MinInitialForeign); err != nil {
		return err
	}
	return p.Shares.Validate()
}

// Validate checks that every share is non-negative and the four shares sum
// to exactly PPM.
func (s ShareConfig) Validate() error {
	for _, share := range []struct {
		name string
		ppm  math.Int
	}{
		{"user", s.UserPpm},
		{"pol", s.PolPpm},
		{"treasury", s.TreasuryPpm},
		{"team", s.TeamPpm},
	} {
		if share.ppm.IsNil() {
			return ErrInvalidParams.Wrapf("%s share is nil", share.name)
		}
		if share.ppm.IsNegative() {
			return ErrInvalidParams.Wrapf("%s share cannot be negative: %s", share.name, share.ppm)
		}
	}

	sum := s.UserPpm.Add(s.PolPpm).Add(s.TreasuryPpm).Add(s.TeamPpm)
	if !sum.Equal(PPM) {
		return ErrInvalidParams.Wrapf("shares must sum to %s, got %s", PPM, sum)
	}
	return nil
}

func validatePriceInitial(v math.Int) error {
	if v.IsNil() {
		return ErrInvalidParams.Wrap("initial price is nil")
	}
	if !v.IsPositive() {
		return ErrInvalidParams.Wrapf("initial price must be positive: %s", v)
	}
	return nil
}

func validateSlopePpm(v math.Int) error {
	if v.IsNil() {
		return ErrInvalidParams.Wrap("slope is nil")
	}
	if v.IsNegative() {
		return ErrInvalidParams.Wrapf("slope cannot be negative: %s", v)
	}
	return nil
}

func validateFeePpm(name string, v math.Int) error {
	if v.IsNil() {
		return ErrInvalidParams.Wrapf("%s is nil", name)
	}
	if v.IsNegative() {
		return ErrInvalidParams.Wrapf("%s cannot be negative: %s", name, v)
	}
	if v.GTE(PPM) {
		return ErrInvalidParams.Wrapf("%s must be below 100%%: %s", name, v)
	}
	return nil
}

func validateThreshold(name string, v math.Int) error {
	if v.IsNil() {
		return ErrInvalidParams.Wrapf("%s is nil", name)
	}
	if v.IsNegative() {
		return ErrInvalidParams.Wrapf("%s cannot be negative: %s", name, v)
	}
	return nil
}
