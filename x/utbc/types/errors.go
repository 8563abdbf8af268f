package types

import (
	"cosmossdk.io/errors"
)

// UTBC module sentinel errors
var (
	ErrInvalidAmount         = errors.Register(ModuleName, 1, "invalid amount")
	ErrInvalidParams         = errors.Register(ModuleName, 2, "invalid parameters")
	ErrDivisionByZero        = errors.Register(ModuleName, 3, "division by zero")
	ErrNegativeValue         = errors.Register(ModuleName, 4, "negative value")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 5, "insufficient liquidity in pool")
	ErrPoolNotInitialized    = errors.Register(ModuleName, 6, "pool not initialised")
	ErrBelowMinimum          = errors.Register(ModuleName, 7, "amount below minimum threshold")
	ErrSlippageExceeded      = errors.Register(ModuleName, 8, "output amount less than minimum required")
	ErrNoRoute               = errors.Register(ModuleName, 9, "no route available")
	ErrSupplyExhausted       = errors.Register(ModuleName, 10, "burn amount exceeds current supply")
)
