package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/hillclimb/audio"
	"github.com/lixenwraith/hillclimb/catalog"
	"github.com/lixenwraith/hillclimb/event"
	"github.com/lixenwraith/hillclimb/parameter"
	"github.com/lixenwraith/hillclimb/render"
	"github.com/lixenwraith/hillclimb/sim"
	"github.com/lixenwraith/hillclimb/terrain"
	"github.com/lixenwraith/hillclimb/vmath"
)

const (
	screenW = 1280
	screenH = 720

	// Vertical position of the chassis on screen as a fraction of height
	chassisRow = 0.55
)

var (
	colorSky    = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	colorGround = color.RGBA{0x5b, 0x3a, 0x1e, 0xff}
	colorGrass  = color.RGBA{0x3c, 0x9a, 0x3c, 0xff}
	colorBody   = color.RGBA{0xd0, 0x30, 0x30, 0xff}
	colorWheel  = color.RGBA{0x20, 0x20, 0x20, 0xff}
	colorHead   = color.RGBA{0xf0, 0xc0, 0x90, 0xff}
	colorCoin   = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	colorFuel   = color.RGBA{0xe0, 0x20, 0x20, 0xff}
)

// Game implements ebiten.Game over one simulation at a time
type Game struct {
	vehicle catalog.VehicleSpec
	stage   catalog.StageSpec
	opts    sim.Options

	run      *sim.Simulation
	controls event.Controls // Levels last sent to the run
	cues     *audio.Cues
}

func (g *Game) restart() error {
	if g.run != nil {
		g.opts.Seed++
	}
	run, err := sim.CreateRun(g.vehicle, g.stage, g.opts)
	if err != nil {
		return err
	}
	g.run = run
	g.controls = event.Controls{}
	return nil
}

// poll sends level changes only, the window reports real key state
func (g *Game) poll() {
	held := [event.ControlCount]bool{
		event.ControlGas:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		event.ControlBrake: ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		event.ControlNitro: ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
	}
	for c := event.Control(0); c < event.ControlCount; c++ {
		if held[c] != g.controls[c] {
			g.controls[c] = held[c]
			g.run.SetInput(c, held[c])
		}
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			return err
		}
	}

	g.poll()
	r := g.run.Tick()
	if r.Terminal != nil && len(r.Events) > 0 {
		log.Printf("run %s ended: %s at %.1fm", r.Terminal.RunID, r.Terminal.Cause, r.Terminal.FinalDistance)
	}
	if g.cues != nil {
		g.cues.Play(r.Events)
		g.cues.Throttle(g.controls.Gas(), g.controls.Nitro(), r.Terminal == nil)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.run.Snapshot()
	screen.Fill(colorSky)

	top := s.Chassis.Y() - chassisRow*screenH
	project := func(p vmath.Vec2) (float32, float32) {
		return float32(p.X() - s.Camera), float32(p.Y() - top)
	}

	// Terrain: filled columns under a surface line
	for i := 1; i < len(s.Terrain); i++ {
		a, b := s.Terrain[i-1], s.Terrain[i]
		ax, ay := project(vmath.V2(a.X, a.Y))
		bx, by := project(vmath.V2(b.X, b.Y))
		vector.DrawFilledRect(screen, ax, min(ay, by), bx-ax+1, screenH-min(ay, by), colorGround, false)
		vector.StrokeLine(screen, ax, ay, bx, by, 4, colorGrass, true)
	}

	for _, c := range s.Collectibles {
		x, y := project(vmath.V2(c.X, c.Y))
		col := colorCoin
		if c.Kind == terrain.KindFuel {
			col = colorFuel
		}
		vector.DrawFilledCircle(screen, x, y, float32(parameter.PickupRadius/2), col, true)
	}

	cx, cy := project(s.Chassis)
	fx, fy := project(s.Front)
	rx, ry := project(s.Rear)
	hx, hy := project(s.Head)
	vector.StrokeLine(screen, rx, ry, fx, fy, 6, colorBody, true)
	vector.StrokeLine(screen, cx, cy, hx, hy, 3, colorBody, true)
	vector.DrawFilledCircle(screen, hx, hy, 8, colorHead, true)
	wr := float32(s.WheelRadius)
	for _, w := range [][2]float32{{fx, fy}, {rx, ry}} {
		vector.DrawFilledCircle(screen, w[0], w[1], wr, colorWheel, true)
		vector.StrokeCircle(screen, w[0], w[1], wr*0.5, 2, colorSky, true)
	}

	hud := render.HUD(s)
	if s.Terminal != nil {
		hud += fmt.Sprintf("\n\n%s - %.1fm, %d coins. R to restart, Esc to quit",
			s.Terminal.Cause, s.Terminal.FinalDistance, s.Terminal.FinalCoins)
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	vehicleFlag := flag.String("vehicle", string(catalog.VehicleJeep), "Vehicle id")
	stageFlag := flag.String("stage", string(catalog.StageCountryside), "Stage id")
	seedFlag := flag.Uint64("seed", 0, "Terrain seed, 0 picks one from the clock")
	catalogFlag := flag.String("catalog", "", "Catalog TOML overriding the built-in vehicles and stages")
	muteFlag := flag.Bool("mute", false, "Disable audio")
	flag.Parse()

	cat := catalog.Default()
	if *catalogFlag != "" {
		c, err := catalog.Load(*catalogFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
			os.Exit(1)
		}
		cat = c
	}
	v, err := cat.Vehicle(catalog.VehicleID(*vehicleFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	s, err := cat.Stage(catalog.StageID(*stageFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	opts := sim.DefaultOptions()
	opts.ViewWidth = screenW
	opts.Seed = *seedFlag
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	g := &Game{vehicle: v, stage: s, opts: opts}
	if err := g.restart(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var cleanup []func()
	if !*muteFlag {
		cues := audio.NewCues(audio.LoadConfig())
		if err := cues.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			g.cues = cues
			cleanup = append(cleanup, cues.Cleanup)
		}
	}

	ebiten.SetTPS(parameter.TickRate)
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(fmt.Sprintf("hillclimb - %s on %s", v.ID, s.ID))
	os.Exit(runWindow(os.Stderr, func() error { return ebiten.RunGame(g) }, cleanup...))
}

// runWindow runs the window loop and releases resources before reporting the exit code
func runWindow(stderr io.Writer, run func() error, cleanup ...func()) int {
	err := run()
	for _, c := range cleanup {
		c()
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}
