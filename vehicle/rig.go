package vehicle

import (
	"fmt"

	"github.com/lixenwraith/hillclimb/catalog"
	"github.com/lixenwraith/hillclimb/parameter"
	"github.com/lixenwraith/hillclimb/physics"
	"github.com/lixenwraith/hillclimb/vmath"
)

// HeadMode selects how the driver head follows the chassis
type HeadMode uint8

const (
	// HeadKinematic places the head by transforming a fixed chassis-local offset every tick
	HeadKinematic HeadMode = iota
	// HeadSimulated integrates the head as its own body tied to the chassis by a rigid neck
	// and braced to both wheels so it cannot swing below the chassis
	HeadSimulated
)

func (m HeadMode) String() string {
	if m == HeadSimulated {
		return "simulated"
	}
	return "kinematic"
}

// Rig is a four-body vehicle skeleton: chassis, two wheels and the driver-head sensor
// Tuning is fixed at construction
type Rig struct {
	Chassis *physics.Body
	Front   *physics.Body
	Rear    *physics.Body
	Head    *physics.Body

	spec     catalog.VehicleSpec
	headMode HeadMode
	headRest vmath.Vec2 // Chassis-local head offset
	solver   *physics.Solver
	bodies   []*physics.Body
	power    float64
}

// New assembles a rig with its chassis at pos and wheels hanging at suspension rest length
func New(spec catalog.VehicleSpec, pos vmath.Vec2, iterations int, mode HeadMode) (*Rig, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	half := spec.Wheelbase / 2
	ride := spec.RideHeight()

	r := &Rig{
		Chassis:  physics.NewBody(pos, 0),
		Front:    physics.NewBody(pos.Add(vmath.V2(half, ride)), spec.WheelRadius),
		Rear:     physics.NewBody(pos.Add(vmath.V2(-half, ride)), spec.WheelRadius),
		Head:     physics.NewBody(pos.Add(vmath.V2(0, -spec.HeadOffset)), 0),
		spec:     spec,
		headMode: mode,
		headRest: vmath.V2(0, -spec.HeadOffset),
		solver:   physics.NewSolver(iterations),
		power:    spec.EffectivePower(),
	}

	stiffness := spec.EffectiveStiffness()
	front, err := physics.NewConstraint(r.Chassis, r.Front, spec.SuspensionLength, stiffness, spec.SuspensionDamping)
	if err != nil {
		return nil, fmt.Errorf("front suspension: %w", err)
	}
	rear, err := physics.NewConstraint(r.Chassis, r.Rear, spec.SuspensionLength, stiffness, spec.SuspensionDamping)
	if err != nil {
		return nil, fmt.Errorf("rear suspension: %w", err)
	}
	axle, err := physics.NewConstraint(r.Front, r.Rear, spec.Wheelbase, parameter.RigidStiffness, 0)
	if err != nil {
		return nil, fmt.Errorf("axle: %w", err)
	}
	// Suspension first, then the rigid axle, then the neck
	r.solver.Add(front, rear, axle)
	r.bodies = []*physics.Body{r.Chassis, r.Front, r.Rear}

	if mode == HeadSimulated {
		neck, err := physics.NewConstraint(r.Chassis, r.Head, spec.HeadOffset, parameter.RigidStiffness, 0)
		if err != nil {
			return nil, fmt.Errorf("neck: %w", err)
		}
		braceFront, err := physics.NewConstraint(r.Head, r.Front, r.Head.Pos.Sub(r.Front.Pos).Len(), parameter.RigidStiffness, 0)
		if err != nil {
			return nil, fmt.Errorf("front brace: %w", err)
		}
		braceRear, err := physics.NewConstraint(r.Head, r.Rear, r.Head.Pos.Sub(r.Rear.Pos).Len(), parameter.RigidStiffness, 0)
		if err != nil {
			return nil, fmt.Errorf("rear brace: %w", err)
		}
		r.solver.Add(neck, braceFront, braceRear)
		r.bodies = append(r.bodies, r.Head)
	}
	return r, nil
}

// Spec returns the vehicle record the rig was built from
func (r *Rig) Spec() catalog.VehicleSpec { return r.spec }

// HeadMode returns how the head is driven
func (r *Rig) HeadMode() HeadMode { return r.headMode }

// Bodies returns the integrated bodies
func (r *Rig) Bodies() []*physics.Body { return r.bodies }

// Wheels returns front and rear wheel bodies
func (r *Rig) Wheels() [2]*physics.Body { return [2]*physics.Body{r.Front, r.Rear} }

// Constraints returns the skeleton links in solve order
func (r *Rig) Constraints() []*physics.Constraint { return r.solver.Constraints() }

// Traction returns the per-tick wheel displacement under throttle
func (r *Rig) Traction() float64 { return r.power / r.spec.Mass }

// Mass returns the vehicle mass
func (r *Rig) Mass() float64 { return r.spec.Mass }

// Integrate advances every simulated body one Verlet step
func (r *Rig) Integrate(gravity, damping float64) {
	for _, b := range r.bodies {
		physics.Integrate(b, gravity, damping)
	}
}

// Solve relaxes the skeleton constraints
func (r *Rig) Solve() {
	r.solver.Solve()
}

// Angle returns chassis orientation from the rear-to-front wheel line, 0 = level, +Y-down positive = nose down
func (r *Rig) Angle() float64 {
	return vmath.Heading(r.Rear.Pos, r.Front.Pos)
}

// UpdateHead moves a kinematic head to the chassis-local offset under the current orientation
// A simulated head is left to the solver
func (r *Rig) UpdateHead() {
	if r.headMode != HeadKinematic {
		return
	}
	r.Head.Prev = r.Head.Pos
	r.Head.Pos = r.Chassis.Pos.Add(vmath.Rotate(r.headRest, r.Angle()))
}

// Spin rotates every body about the chassis by angle, position only, so the turn carries into the next tick
func (r *Rig) Spin(angle float64) {
	for _, b := range r.bodies[1:] {
		b.Pos = vmath.RotateAbout(b.Pos, r.Chassis.Pos, angle)
	}
}

// AngularVelocity returns the per-tick change of Angle implied by current and previous positions
func (r *Rig) AngularVelocity() float64 {
	return vmath.WrapAngle(r.Angle() - vmath.Heading(r.Rear.Prev, r.Front.Prev))
}

// DampSpin scales angular velocity by keep, leaving linear velocity of the chassis untouched
// Previous positions are turned toward the current orientation about the previous chassis position
func (r *Rig) DampSpin(keep float64) {
	delta := r.AngularVelocity() * (1 - keep)
	if delta == 0 {
		return
	}
	for _, b := range r.bodies[1:] {
		b.Prev = vmath.RotateAbout(b.Prev, r.Chassis.Prev, delta)
	}
}

// Push displaces the chassis forward by dx, adding to its implicit velocity
func (r *Rig) Push(dx float64) {
	physics.Displace(r.Chassis, vmath.V2(dx, 0))
}

// Speed returns the chassis horizontal speed per tick
func (r *Rig) Speed() float64 {
	return physics.Velocity(r.Chassis)[0]
}
