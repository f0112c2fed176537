package sim

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/hillclimb/catalog"
	"github.com/lixenwraith/hillclimb/event"
	"github.com/lixenwraith/hillclimb/stunt"
	"github.com/lixenwraith/hillclimb/terrain"
	"github.com/lixenwraith/hillclimb/vmath"
)

// Cause is why a run ended
type Cause string

const (
	CauseHeadStrike Cause = "head strike"
	CauseCrash      Cause = "crash landing"
	CauseOutOfFuel  Cause = "out of fuel"
)

// Report summarizes a finished run
type Report struct {
	RunID          uuid.UUID         `json:"run_id"`
	Vehicle        catalog.VehicleID `json:"vehicle"`
	Stage          catalog.StageID   `json:"stage"`
	Seed           uint64            `json:"seed"`
	Cause          Cause             `json:"cause"`
	FinalDistance  float64           `json:"final_distance"` // Meters
	FinalCoins     int               `json:"final_coins"`
	AirTimeSeconds float64           `json:"air_time_seconds"`
	Ticks          uint64            `json:"ticks"`
}

// RunState is the mutable per-run scoreboard
type RunState struct {
	Fuel     float64     `json:"fuel"`
	Nitro    float64     `json:"nitro"`
	Coins    int         `json:"coins"`
	Distance float64     `json:"distance"` // Meters, max so far
	AirTicks int         `json:"air_ticks"`
	Rotation float64     `json:"rotation"`
	Grounded bool        `json:"grounded"`
	Stunt    stunt.State `json:"stunt"`
}

// TickResult is what one tick reports to the host
type TickResult struct {
	Tick          uint64                `json:"tick"`
	Grounded      bool                  `json:"grounded"`
	FuelRemaining float64               `json:"fuel_remaining"`
	Nitro         float64               `json:"nitro"`
	Distance      float64               `json:"distance"`
	Coins         int                   `json:"coins"`
	NewlyConsumed []terrain.Collectible `json:"newly_consumed,omitempty"`
	Events        []event.Event         `json:"events,omitempty"`
	Terminal      *Report               `json:"terminal,omitempty"`
}

// Snapshot is a read-only copy of render state taken at a tick boundary
type Snapshot struct {
	RunID        uuid.UUID             `json:"run_id"`
	Tick         uint64                `json:"tick"`
	Camera       float64               `json:"camera"` // World x of the left view edge
	ViewWidth    float64               `json:"view_width"`
	Chassis      vmath.Vec2            `json:"chassis"`
	Front        vmath.Vec2            `json:"front"`
	Rear         vmath.Vec2            `json:"rear"`
	Head         vmath.Vec2            `json:"head"`
	WheelRadius  float64               `json:"wheel_radius"`
	Angle        float64               `json:"angle"`
	Terrain      []terrain.Sample      `json:"terrain"`
	Collectibles []terrain.Collectible `json:"collectibles"`
	State        RunState              `json:"state"`
	Terminal     *Report               `json:"terminal,omitempty"`
}
