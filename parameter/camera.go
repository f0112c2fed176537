package parameter

// Camera and terrain windows
const (
	// DefaultViewWidth is the host viewport width in world units when none is given
	DefaultViewWidth = 1280.0

	// CameraLead divides the view width to place the chassis one third from the left edge
	CameraLead = 3.0

	// GenerationLookahead is generated terrain kept beyond the right edge of the view
	GenerationLookahead = 500.0

	// PruneDistance is how far behind the camera samples are retained
	PruneDistance = 1000.0

	// CollisionMargin is terrain always retained behind the rearmost body
	CollisionMargin = 200.0

	// ExtendChunk is the number of samples appended per extension
	ExtendChunk = 20

	// UnitsPerMeter converts world units to reported meters
	UnitsPerMeter = 10.0

	// DefaultStartX is the chassis spawn x
	DefaultStartX = 200.0

	// SpawnHeight is how far above the surface the chassis spawns to settle
	SpawnHeight = 100.0
)
