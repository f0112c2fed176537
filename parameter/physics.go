package parameter

// Per-tick physics constants, expressed in world units (one unit is one screen pixel at 1:1 zoom)

// Vehicle skeleton
const (
	// RigidStiffness is the stiffness of axle and neck links
	RigidStiffness = 1.0

	// DefaultSuspensionLength is the chassis-to-wheel rest length
	DefaultSuspensionLength = 45.0

	// DefaultWheelbase is the front-to-rear axle rest length
	DefaultWheelbase = 80.0

	// DefaultHeadOffset is the distance from chassis center to the driver head, along chassis-up
	DefaultHeadOffset = 25.0

	// UpgradeStep is the per-level multiplier gain for engine and suspension upgrades
	UpgradeStep = 0.1

	// MaxUpgradeLevel bounds upgrade levels accepted by validation
	MaxUpgradeLevel = 10
)

// Input forces
const (
	// FuelPerTick is fuel drained each tick while gas or nitro is held
	FuelPerTick = 0.05

	// FuelMax is a full tank
	FuelMax = 100.0

	// NitroPerTick is nitro meter drained each tick while nitro is held
	NitroPerTick = 0.5

	// NitroRegenPerTick is nitro meter regained each tick while nitro is released
	NitroRegenPerTick = 0.1

	// NitroMax is a full nitro meter
	NitroMax = 100.0

	// NitroGroundBoost is the forward chassis displacement per tick on the ground
	NitroGroundBoost = 0.5

	// NitroAirBoost is the forward chassis displacement per tick in the air
	NitroAirBoost = 0.2

	// AirControlAngle is the wheel rotation about the chassis per tick of gas/brake in the air
	AirControlAngle = 0.004

	// MaxAirSpin is the angular velocity (rad/tick) beyond which air control stops adding spin
	MaxAirSpin = 0.03

	// AngularDrag is the share of rig angular velocity kept each tick
	AngularDrag = 0.92

	// ReverseLimit is how far behind the start x the car may reverse
	ReverseLimit = 150.0
)

// Run-ending thresholds
const (
	// HeadTolerance is the depth the head may sink below the surface before it counts as a strike
	HeadTolerance = 5.0

	// CrashTilt is the absolute chassis angle beyond which a grounded car has crashed (π/1.5)
	CrashTilt = 2.0943951023931953

	// StallSpeed is the chassis speed below which an empty tank ends the run
	StallSpeed = 0.1
)
