package parameter

// Collectible placement and pickup
const (
	// CoinChance is the per-sample probability of spawning a coin outside the safe zone
	CoinChance = 0.12

	// FuelChance is the per-sample probability of spawning a fuel can outside the safe zone
	FuelChance = 0.03

	// CollectibleLift is how far above the surface collectibles float
	CollectibleLift = 60.0

	// PickupRadius is the chassis-to-collectible distance that consumes it
	PickupRadius = 50.0

	// CoinTierDistance is the generated distance (world units) per coin tier step
	CoinTierDistance = 5000.0
)

// CoinValues are coin denominations, cheapest first
var CoinValues = [...]int{25, 50, 75, 100, 200, 500, 1000}
