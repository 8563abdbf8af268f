package types

const (
	// ModuleName defines the module name
	ModuleName = "utbc"

	// RouterKey defines the routing key for the smart router surface
	RouterKey = ModuleName
)

// Route identifies which execution branch the smart router selected.
type Route string

const (
	// RouteUtbc is the bonding-curve mint branch.
	RouteUtbc Route = "utbc"

	// RouteXyk is the constant-product pool branch.
	RouteXyk Route = "xyk"
)
