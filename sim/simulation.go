package sim

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/lixenwraith/hillclimb/catalog"
	"github.com/lixenwraith/hillclimb/collision"
	"github.com/lixenwraith/hillclimb/event"
	"github.com/lixenwraith/hillclimb/parameter"
	"github.com/lixenwraith/hillclimb/physics"
	"github.com/lixenwraith/hillclimb/stunt"
	"github.com/lixenwraith/hillclimb/terrain"
	"github.com/lixenwraith/hillclimb/vehicle"
	"github.com/lixenwraith/hillclimb/vmath"
)

// Simulation owns one run: rig, terrain, stunt tracker and scoreboard
// Tick and Snapshot must be called from one goroutine; SetInput is safe from any
type Simulation struct {
	id      uuid.UUID
	vehicle catalog.VehicleSpec
	stage   catalog.StageSpec
	opts    Options

	field    *terrain.Field
	rig      *vehicle.Rig
	resolver *collision.Resolver
	tracker  *stunt.Tracker

	input    *event.InputQueue
	controls event.Controls

	state  RunState
	tick   uint64
	camera float64
	report *Report
}

// CreateRun validates every input and builds a run resting above the start of the safe zone
func CreateRun(v catalog.VehicleSpec, s catalog.StageSpec, opts Options) (*Simulation, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cfg := s.Terrain(opts.Seed)
	// Terrain origin sits a fixed distance behind the start so the reverse limit stays on generated ground
	cfg.StartX = opts.StartX - parameter.DefaultStartX
	field, err := terrain.NewField(cfg)
	if err != nil {
		return nil, fmt.Errorf("terrain: %w", err)
	}
	if field.SafeZoneEnd() < opts.StartX+v.Wheelbase {
		return nil, fmt.Errorf("%w: stage %q: safe zone ends at %g, before the spawn footprint",
			catalog.ErrInvalidSpec, s.ID, field.SafeZoneEnd())
	}

	spawn := vmath.V2(opts.StartX, field.HeightAt(opts.StartX)-parameter.SpawnHeight)
	rig, err := vehicle.New(v, spawn, opts.Iterations, opts.HeadMode)
	if err != nil {
		return nil, fmt.Errorf("vehicle: %w", err)
	}

	sim := &Simulation{
		id:       uuid.New(),
		vehicle:  v,
		stage:    s,
		opts:     opts,
		field:    field,
		rig:      rig,
		resolver: collision.NewResolver(field, opts.StartX),
		tracker:  stunt.NewTracker(),
		input:    event.NewInputQueue(),
		state: RunState{
			Fuel:  parameter.FuelMax,
			Nitro: parameter.NitroMax,
		},
	}
	sim.camera = sim.cameraFor(rig.Chassis.Pos[0])
	return sim, nil
}

// RunID returns the identifier stamped on this run
func (s *Simulation) RunID() uuid.UUID { return s.id }

// Field exposes the run's heightfield for diagnostics
func (s *Simulation) Field() *terrain.Field { return s.field }

// Rig exposes the run's vehicle
func (s *Simulation) Rig() *vehicle.Rig { return s.rig }

// State returns a copy of the scoreboard
func (s *Simulation) State() RunState { return s.state }

// Ended reports whether the run has produced its terminal report
func (s *Simulation) Ended() bool { return s.report != nil }

// SetInput queues a control level change for the next tick
func (s *Simulation) SetInput(c event.Control, active bool) {
	s.input.Push(event.InputEvent{Control: c, Active: active})
}

func (s *Simulation) cameraFor(x float64) float64 {
	return x - s.opts.ViewWidth/parameter.CameraLead
}

// Tick advances the run by one fixed step
// After the terminal tick the run is frozen and every call returns the same report
func (s *Simulation) Tick() TickResult {
	if s.report != nil {
		return s.result(nil, nil)
	}
	s.tick++

	// Input
	if s.opts.Source != nil {
		s.controls.Apply(s.opts.Source.Poll(s.tick))
	}
	s.controls.Apply(s.input.Consume())
	gas, brake, nitro := s.controls.Gas(), s.controls.Brake(), s.controls.Nitro()

	// Fuel
	if (gas || nitro) && s.state.Fuel > 0 {
		s.state.Fuel = math.Max(0, s.state.Fuel-parameter.FuelPerTick)
	}
	hasFuel := s.state.Fuel > 0

	// Physics
	s.rig.Integrate(s.stage.Gravity, s.stage.Friction)
	s.rig.Solve()

	drive := collision.Drive{Gas: gas, Brake: brake, Fuel: s.state.Fuel, Traction: s.rig.Traction()}
	frontDown := s.resolver.ResolveWheel(s.rig.Front, drive)
	rearDown := s.resolver.ResolveWheel(s.rig.Rear, drive)
	grounded := frontDown || rearDown

	s.applyNitro(nitro, hasFuel, grounded)
	if !grounded && hasFuel && gas != brake {
		// Gas pitches nose-up (negative), brake nose-down
		dir := 1.0
		if gas {
			dir = -1
		}
		if dir*s.rig.AngularVelocity() < parameter.MaxAirSpin {
			s.rig.Spin(dir * parameter.AirControlAngle)
		}
	}
	s.rig.DampSpin(parameter.AngularDrag)

	s.rig.UpdateHead()
	headStrike := s.resolver.HeadStrike(s.rig.Head.Pos)

	// Stunts
	var events []event.Event
	angle := s.rig.Angle()
	chassisX := s.rig.Chassis.Pos[0]
	for _, a := range s.tracker.Update(grounded, angle) {
		s.state.Coins += a.Value
		events = append(events, event.Event{Kind: awardKind(a.Kind), Tick: s.tick, Value: a.Value, X: chassisX})
	}

	// Camera and terrain windows
	s.camera = s.cameraFor(chassisX)
	for s.field.Frontier() < chassisX+s.opts.ViewWidth+parameter.GenerationLookahead {
		if steps := s.field.Extend(parameter.ExtendChunk); steps > 0 {
			events = append(events, event.Event{Kind: event.KindDifficultyUp, Tick: s.tick, Value: steps, X: s.field.Frontier()})
		}
	}
	s.field.Prune(math.Min(s.camera-parameter.PruneDistance, s.rearmost()-parameter.CollisionMargin))

	// Pickups
	consumed := s.field.Collect(s.rig.Chassis.Pos, parameter.PickupRadius)
	for _, c := range consumed {
		switch c.Kind {
		case terrain.KindCoin:
			s.state.Coins += c.Value
			events = append(events, event.Event{Kind: event.KindCoinCollected, Tick: s.tick, Value: c.Value, X: c.X})
		case terrain.KindFuel:
			refill := parameter.FuelMax - s.state.Fuel
			s.state.Fuel = parameter.FuelMax
			events = append(events, event.Event{Kind: event.KindFuelCollected, Tick: s.tick, Value: int(math.Round(refill)), X: c.X})
		}
	}

	s.state.Distance = math.Max(s.state.Distance, (chassisX-s.opts.StartX)/parameter.UnitsPerMeter)
	s.state.Grounded = grounded
	s.state.Stunt = s.tracker.State()
	s.state.AirTicks = s.tracker.AirTicks()
	s.state.Rotation = s.tracker.Rotation()

	// Run end
	speed := physics.Velocity(s.rig.Chassis).Len()
	if cause, ok := terminalCause(headStrike, grounded, angle, s.state.Fuel, speed); ok {
		s.report = &Report{
			RunID:          s.id,
			Vehicle:        s.vehicle.ID,
			Stage:          s.stage.ID,
			Seed:           s.opts.Seed,
			Cause:          cause,
			FinalDistance:  s.state.Distance,
			FinalCoins:     s.state.Coins,
			AirTimeSeconds: float64(s.tracker.TotalAirTicks()) / parameter.TickRate,
			Ticks:          s.tick,
		}
		events = append(events, event.Event{Kind: event.KindRunEnded, Tick: s.tick, X: chassisX})
	}

	return s.result(consumed, events)
}

// applyNitro boosts the chassis forward while the meter lasts, regenerating it when released
func (s *Simulation) applyNitro(held, hasFuel, grounded bool) {
	if !held {
		s.state.Nitro = math.Min(parameter.NitroMax, s.state.Nitro+parameter.NitroRegenPerTick)
		return
	}
	if !hasFuel || s.state.Nitro <= 0 {
		return
	}
	boost := parameter.NitroAirBoost
	if grounded {
		boost = parameter.NitroGroundBoost
	}
	s.rig.Push(boost / s.rig.Mass())
	s.state.Nitro = math.Max(0, s.state.Nitro-parameter.NitroPerTick)
}

// rearmost returns the smallest x of any body that collides with terrain
func (s *Simulation) rearmost() float64 {
	x := s.rig.Head.Pos[0]
	for _, b := range s.rig.Bodies() {
		x = math.Min(x, b.Pos[0])
	}
	return x
}

// terminalCause checks run-ending conditions in priority order
func terminalCause(headStrike, grounded bool, angle, fuel, speed float64) (Cause, bool) {
	switch {
	case headStrike:
		return CauseHeadStrike, true
	case grounded && math.Abs(angle) > parameter.CrashTilt:
		return CauseCrash, true
	case fuel <= 0 && speed < parameter.StallSpeed:
		return CauseOutOfFuel, true
	}
	return "", false
}

func awardKind(k stunt.AwardKind) event.Kind {
	switch k {
	case stunt.FrontFlip:
		return event.KindFrontFlip
	case stunt.BackFlip:
		return event.KindBackFlip
	default:
		return event.KindAirTime
	}
}

func (s *Simulation) result(consumed []terrain.Collectible, events []event.Event) TickResult {
	r := TickResult{
		Tick:          s.tick,
		Grounded:      s.state.Grounded,
		FuelRemaining: s.state.Fuel,
		Nitro:         s.state.Nitro,
		Distance:      s.state.Distance,
		Coins:         s.state.Coins,
		NewlyConsumed: consumed,
		Events:        events,
	}
	if s.report != nil {
		rep := *s.report
		r.Terminal = &rep
	}
	return r
}

// Snapshot copies everything a renderer needs for the current tick
func (s *Simulation) Snapshot() Snapshot {
	x0 := s.camera
	x1 := s.camera + s.opts.ViewWidth
	snap := Snapshot{
		RunID:        s.id,
		Tick:         s.tick,
		Camera:       s.camera,
		ViewWidth:    s.opts.ViewWidth,
		Chassis:      s.rig.Chassis.Pos,
		Front:        s.rig.Front.Pos,
		Rear:         s.rig.Rear.Pos,
		Head:         s.rig.Head.Pos,
		WheelRadius:  s.vehicle.WheelRadius,
		Angle:        s.rig.Angle(),
		Terrain:      s.field.Window(x0, x1),
		Collectibles: s.field.Active(x0, x1),
		State:        s.state,
	}
	if s.report != nil {
		rep := *s.report
		snap.Terminal = &rep
	}
	return snap
}
