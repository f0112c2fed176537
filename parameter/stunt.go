package parameter

// Stunt detection and rewards
const (
	// FlipThreshold is the accumulated rotation (radians) credited as one flip (1.8π)
	FlipThreshold = 5.654866776461628

	// FrontFlipReward is coins awarded per front flip
	FrontFlipReward = 750

	// BackFlipReward is coins awarded per back flip
	BackFlipReward = 500

	// AirTimeReward is coins awarded per full second of continuous air time
	AirTimeReward = 50
)
