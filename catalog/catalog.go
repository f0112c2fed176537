package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultCatalog []byte

// Catalog is the set of selectable vehicles and stages
type Catalog struct {
	Vehicles []VehicleSpec `toml:"vehicle"`
	Stages   []StageSpec   `toml:"stage"`
}

// Parse decodes and validates a TOML catalog
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown catalog key %q", ErrInvalidSpec, undecoded[0].String())
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a catalog file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded catalog
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog invalid: %v", err))
	}
	return c
}

// Validate checks every record and rejects duplicate ids
func (c *Catalog) Validate() error {
	if len(c.Vehicles) == 0 || len(c.Stages) == 0 {
		return fmt.Errorf("%w: catalog needs at least one vehicle and one stage", ErrInvalidSpec)
	}
	seenV := make(map[VehicleID]bool, len(c.Vehicles))
	for _, v := range c.Vehicles {
		if err := v.Validate(); err != nil {
			return err
		}
		if seenV[v.ID] {
			return fmt.Errorf("%w: duplicate vehicle %q", ErrInvalidSpec, v.ID)
		}
		seenV[v.ID] = true
	}
	seenS := make(map[StageID]bool, len(c.Stages))
	for _, s := range c.Stages {
		if err := s.Validate(); err != nil {
			return err
		}
		if seenS[s.ID] {
			return fmt.Errorf("%w: duplicate stage %q", ErrInvalidSpec, s.ID)
		}
		seenS[s.ID] = true
	}
	return nil
}

// Vehicle looks up a vehicle record by id
func (c *Catalog) Vehicle(id VehicleID) (VehicleSpec, error) {
	for _, v := range c.Vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return VehicleSpec{}, fmt.Errorf("%w: %q", ErrUnknownVehicle, id)
}

// Stage looks up a stage record by id
func (c *Catalog) Stage(id StageID) (StageSpec, error) {
	for _, s := range c.Stages {
		if s.ID == id {
			return s, nil
		}
	}
	return StageSpec{}, fmt.Errorf("%w: %q", ErrUnknownStage, id)
}
