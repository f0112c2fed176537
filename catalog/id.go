package catalog

import "fmt"

// VehicleID tags a vehicle record
type VehicleID string

const (
	VehicleJeep    VehicleID = "jeep"
	VehicleMonster VehicleID = "monster"
	VehicleRace    VehicleID = "race"
	VehicleSuper   VehicleID = "super"
	VehicleBike    VehicleID = "bike"
)

var vehicleIDs = []VehicleID{VehicleJeep, VehicleMonster, VehicleRace, VehicleSuper, VehicleBike}

// VehicleIDs lists every known vehicle id
func VehicleIDs() []VehicleID {
	return append([]VehicleID(nil), vehicleIDs...)
}

func (id VehicleID) Valid() bool {
	for _, v := range vehicleIDs {
		if v == id {
			return true
		}
	}
	return false
}

func (id *VehicleID) UnmarshalText(b []byte) error {
	v := VehicleID(b)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownVehicle, string(b))
	}
	*id = v
	return nil
}

// StageID tags a stage record
type StageID string

const (
	StageCountryside StageID = "countryside"
	StageDesert      StageID = "desert"
	StageMoon        StageID = "moon"
	StageGlaciers    StageID = "glaciers"
	StageMars        StageID = "mars"
)

var stageIDs = []StageID{StageCountryside, StageDesert, StageMoon, StageGlaciers, StageMars}

// StageIDs lists every known stage id
func StageIDs() []StageID {
	return append([]StageID(nil), stageIDs...)
}

func (id StageID) Valid() bool {
	for _, s := range stageIDs {
		if s == id {
			return true
		}
	}
	return false
}

func (id *StageID) UnmarshalText(b []byte) error {
	s := StageID(b)
	if !s.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStage, string(b))
	}
	*id = s
	return nil
}
