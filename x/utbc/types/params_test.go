package types

import (
	"testing"

	"cosmossdk.io/math"
)

func TestDefaultParams_Valid(t *testing.T) {
	params := DefaultParams()
	if err := params.Validate(); err != nil {
		t.Fatalf("default params must validate: %v", err)
	}
}

func TestDefaultParams_Values(t *testing.T) {
	params := DefaultParams()

	if !params.PriceInitial.Equal(math.NewInt(1_000_000_000)) {
		t.Errorf("PriceInitial mismatch: %s", params.PriceInitial)
	}
	if !params.SlopePpm.Equal(math.NewInt(1000)) {
		t.Errorf("SlopePpm mismatch: %s", params.SlopePpm)
	}
	if !params.FeeXykPpm.Equal(math.NewInt(3000)) {
		t.Errorf("FeeXykPpm mismatch: %s", params.FeeXykPpm)
	}
	if !params.FeeRouterPpm.Equal(math.NewInt(2000)) {
		t.Errorf("FeeRouterPpm mismatch: %s", params.FeeRouterPpm)
	}
	if !params.MinSwapForeign.Equal(math.NewInt(10_000_000_000)) {
		t.Errorf("MinSwapForeign mismatch: %s", params.MinSwapForeign)
	}
	if !params.MinInitialForeign.Equal(math.NewInt(100_000_000_000_000)) {
		t.Errorf("MinInitialForeign mismatch: %s", params.MinInitialForeign)
	}
}

func TestShareConfig_DefaultSum(t *testing.T) {
	shares := DefaultParams().Shares

	sum := shares.UserPpm.Add(shares.PolPpm).Add(shares.TreasuryPpm).Add(shares.TeamPpm)
	if !sum.Equal(PPM) {
		t.Errorf("default shares must sum to PPM, got %s", sum)
	}
	if !shares.TeamPpm.Equal(math.NewInt(111_112)) {
		t.Errorf("team share must absorb the rounding remainder, got %s", shares.TeamPpm)
	}
}

func TestShareConfig_SumMismatchRejected(t *testing.T) {
	params := DefaultParams()
	params.Shares.TeamPpm = params.Shares.TeamPpm.AddRaw(1)

	if err := params.Validate(); err == nil {
		t.Fatal("shares not summing to PPM must be rejected")
	}
}

func TestShareConfig_NegativeShareRejected(t *testing.T) {
	params := DefaultParams()
	params.Shares.UserPpm = math.NewInt(-1)
	params.Shares.TeamPpm = params.Shares.TeamPpm.Add(params.Shares.UserPpm.Neg().MulRaw(2))

	if err := params.Validate(); err == nil {
		t.Fatal("negative share must be rejected")
	}
}

func TestParams_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero initial price", func(p *Params) { p.PriceInitial = math.ZeroInt() }},
		{"negative initial price", func(p *Params) { p.PriceInitial = math.NewInt(-1) }},
		{"negative slope", func(p *Params) { p.SlopePpm = math.NewInt(-1) }},
		{"xyk fee at 100%", func(p *Params) { p.FeeXykPpm = PPM }},
		{"router fee above 100%", func(p *Params) { p.FeeRouterPpm = PPM.AddRaw(1) }},
		{"negative min swap", func(p *Params) { p.MinSwapForeign = math.NewInt(-1) }},
		{"negative min initial", func(p *Params) { p.MinInitialForeign = math.NewInt(-1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := DefaultParams()
			tc.mutate(&params)
			if err := params.Validate(); err == nil {
				t.Fatalf("expected %s to be rejected", tc.name)
			}
		})
	}
}
