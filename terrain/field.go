package terrain

import (
	"math"

	"github.com/lixenwraith/hillclimb/parameter"
	"github.com/lixenwraith/hillclimb/vmath"
)

// Sample is one heightfield vertex
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Field is an append-only heightfield with a prunable tail
// Samples are uniformly spaced, so lookups are index arithmetic against the retained origin
type Field struct {
	cfg Config
	rng *vmath.FastRand

	samples ring[Sample]
	next    int // Global index of the next sample to generate

	items  ring[Collectible]
	nextID uint64

	// Generator state, only ever affects future samples
	phase      float64
	phase2     float64
	phase3     float64
	scale      float64
	nextStepX  float64
	outOfRange uint64
}

// NewField validates cfg and generates cfg.Initial samples
func NewField(cfg Config) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Field{
		cfg:       cfg,
		rng:       vmath.NewFastRand(cfg.Seed),
		samples:   newRing[Sample](cfg.Initial * 2),
		items:     newRing[Collectible](64),
		scale:     1,
		nextStepX: cfg.StartX + parameter.DifficultyInterval,
		nextID:    1,
	}
	// Seeded phase offsets so distinct seeds produce distinct hills
	f.phase = f.rng.Float64() * 2 * math.Pi
	f.phase2 = f.rng.Float64() * 2 * math.Pi
	f.phase3 = f.rng.Float64() * 2 * math.Pi
	f.Extend(cfg.Initial)
	return f, nil
}

// Config returns the generation parameters
func (f *Field) Config() Config { return f.cfg }

// Len returns the retained sample count
func (f *Field) Len() int { return f.samples.Len() }

// First returns the oldest retained sample
func (f *Field) First() Sample { return *f.samples.At(0) }

// Last returns the generation frontier sample
func (f *Field) Last() Sample { return *f.samples.At(f.samples.Len() - 1) }

// Frontier returns the x of the newest sample
func (f *Field) Frontier() float64 { return f.Last().X }

// Scale returns the current difficulty multiplier applied to new samples
func (f *Field) Scale() float64 { return f.scale }

// OutOfRange returns how many queries fell outside the retained range and were clamped
func (f *Field) OutOfRange() uint64 { return f.outOfRange }

// SafeZoneEnd returns the last x guaranteed to lie on the flat baseline
func (f *Field) SafeZoneEnd() float64 {
	return f.xAt(f.cfg.SafeZone - 1)
}

func (f *Field) xAt(global int) float64 {
	return f.cfg.StartX + float64(global)*f.cfg.SegmentWidth
}

// Extend appends count samples beyond the frontier
// Returns the number of difficulty steps crossed while generating
func (f *Field) Extend(count int) int {
	steps := 0
	for range count {
		i := f.next
		x := f.xAt(i)

		if f.cfg.Difficulty && x >= f.nextStepX {
			f.nextStepX += parameter.DifficultyInterval
			if f.scale < parameter.DifficultyMaxScale {
				f.scale = math.Min(f.scale*parameter.DifficultyStep, parameter.DifficultyMaxScale)
				steps++
			}
		}

		y := f.cfg.Baseline
		if i >= f.cfg.SafeZone {
			blend := math.Min(1, float64(i-f.cfg.SafeZone+1)/float64(f.cfg.Blend))
			amp := f.cfg.Roughness * f.scale
			h := math.Sin(f.phase) +
				parameter.SecondWaveAmp*math.Sin(parameter.SecondWaveFreq*f.phase+f.phase2) +
				parameter.ThirdWaveAmp*math.Sin(parameter.ThirdWaveFreq*f.phase+f.phase3)
			y += blend * amp * h
		}
		// Accumulated phase keeps frequency changes from shearing the profile
		f.phase += f.cfg.Frequency * f.scale * f.cfg.SegmentWidth

		f.samples.PushBack(Sample{X: x, Y: y})
		f.next++

		if f.cfg.Collectibles && i >= f.cfg.SafeZone {
			f.spawn(x, y)
		}
	}
	return steps
}

// spawn rolls for a collectible above the sample at (x, y)
func (f *Field) spawn(x, y float64) {
	fuel := f.rng.Chance(parameter.FuelChance)
	coin := f.rng.Chance(parameter.CoinChance)
	switch {
	case fuel:
		f.add(Collectible{X: x, Y: y - parameter.CollectibleLift, Kind: KindFuel})
	case coin:
		tier := int((x - f.cfg.StartX) / parameter.CoinTierDistance)
		tier = min(tier, len(parameter.CoinValues)-1)
		value := parameter.CoinValues[coinIndex(f.rng.Intn(tier+2), tier)]
		f.add(Collectible{X: x, Y: y - parameter.CollectibleLift, Kind: KindCoin, Value: value})
	}
}

// coinIndex maps a roll in [0, tier+2) to a CoinValues index
// Rolls past the top denomination pay the top denomination, so far tiers skew high
func coinIndex(roll, tier int) int {
	top := len(parameter.CoinValues) - 1
	tier = max(0, min(tier, top))
	return max(0, min(roll, tier+1, top))
}

func (f *Field) add(c Collectible) {
	c.ID = f.nextID
	f.nextID++
	f.items.PushBack(c)
}

// locate returns the segment index (relative to the retained origin) and interpolation factor for x
// Queries outside the retained range clamp to the nearest end sample
func (f *Field) locate(x float64) (idx int, t float64) {
	n := f.samples.Len()
	rel := (x - f.First().X) / f.cfg.SegmentWidth
	if rel < 0 || math.IsNaN(rel) {
		f.outOfRange++
		return 0, 0
	}
	idx = int(math.Floor(rel))
	if idx >= n-1 {
		if idx > n-1 || rel > float64(n-1) {
			f.outOfRange++
		}
		return n - 2, 1
	}
	return idx, rel - float64(idx)
}

// index returns the clamped retained index at or before x without range accounting
func (f *Field) index(x float64) int {
	rel := math.Floor((x - f.First().X) / f.cfg.SegmentWidth)
	if !(rel > 0) {
		return 0
	}
	return int(math.Min(rel, float64(f.samples.Len()-1)))
}

// HeightAt returns the interpolated ground height at x
func (f *Field) HeightAt(x float64) float64 {
	idx, t := f.locate(x)
	a, b := f.samples.At(idx), f.samples.At(idx+1)
	return vmath.Lerp(a.Y, b.Y, t)
}

// Segment returns the two samples bounding x, clamped to the retained range
func (f *Field) Segment(x float64) (Sample, Sample) {
	idx, _ := f.locate(x)
	return *f.samples.At(idx), *f.samples.At(idx + 1)
}

// Tangent returns the unit direction of the segment under x, pointing toward +X
func (f *Field) Tangent(x float64) vmath.Vec2 {
	a, b := f.Segment(x)
	return vmath.Normalize(vmath.V2(b.X-a.X, b.Y-a.Y))
}

// Prune drops samples and collectibles wholly behind cutoff
// The sample at or before cutoff is kept so HeightAt(cutoff) stays exact
func (f *Field) Prune(cutoff float64) int {
	dropped := 0
	for f.samples.Len() > 2 && f.samples.At(1).X <= cutoff {
		f.samples.PopFront()
		dropped++
	}
	for f.items.Len() > 0 && f.items.At(0).X < cutoff {
		f.items.PopFront()
	}
	return dropped
}

// Window copies the samples covering [x0, x1], including the bounding samples on each side
func (f *Field) Window(x0, x1 float64) []Sample {
	n := f.samples.Len()
	lo := f.index(x0)
	hi := min(f.index(x1)+1, n-1)
	if lo >= n-1 {
		lo = n - 2
	}
	out := make([]Sample, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, *f.samples.At(i))
	}
	return out
}

// Active copies unconsumed collectibles with x in [x0, x1]
func (f *Field) Active(x0, x1 float64) []Collectible {
	var out []Collectible
	for i := 0; i < f.items.Len(); i++ {
		c := f.items.At(i)
		if c.X > x1 {
			break
		}
		if c.X >= x0 && !c.Consumed {
			out = append(out, *c)
		}
	}
	return out
}

// Collect consumes every unconsumed collectible within radius of p and returns copies of them
func (f *Field) Collect(p vmath.Vec2, radius float64) []Collectible {
	var out []Collectible
	r2 := radius * radius
	for i := 0; i < f.items.Len(); i++ {
		c := f.items.At(i)
		if c.X > p[0]+radius {
			break
		}
		if c.Consumed || c.X < p[0]-radius {
			continue
		}
		if vmath.DistSq(vmath.V2(c.X, c.Y), p) < r2 {
			c.Consumed = true
			out = append(out, *c)
		}
	}
	return out
}

// Collectibles returns the number of retained collectibles, consumed or not
func (f *Field) Collectibles() int { return f.items.Len() }
