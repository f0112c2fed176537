package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/hillclimb/audio"
	"github.com/lixenwraith/hillclimb/catalog"
	"github.com/lixenwraith/hillclimb/event"
	"github.com/lixenwraith/hillclimb/parameter"
	"github.com/lixenwraith/hillclimb/render"
	"github.com/lixenwraith/hillclimb/sim"
	"github.com/lixenwraith/hillclimb/stream"
)

// Optional .env seeds flag defaults
func init() {
	_ = godotenv.Load()
}

var (
	vehicleFlag  = flag.String("vehicle", envOr("HILLCLIMB_VEHICLE", string(catalog.VehicleJeep)), "Vehicle id")
	stageFlag    = flag.String("stage", envOr("HILLCLIMB_STAGE", string(catalog.StageCountryside)), "Stage id")
	seedFlag     = flag.Uint64("seed", envUint("HILLCLIMB_SEED", 0), "Terrain seed, 0 picks one from the clock")
	catalogFlag  = flag.String("catalog", "", "Catalog TOML overriding the built-in vehicles and stages")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag     = flag.Bool("mute", false, "Disable audio")
	streamFlag   = flag.String("stream", os.Getenv("HILLCLIMB_STREAM"), "Serve spectator websocket on this address")
	headlessFlag = flag.Bool("headless", false, "Run a gas-only run without a terminal and print the report")
	ticksFlag    = flag.Uint64("ticks", 60*parameter.TickRate, "Tick limit for -headless")
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envUint(key string, def uint64) uint64 {
	if v, err := strconv.ParseUint(os.Getenv(key), 10, 64); err == nil {
		return v
	}
	return def
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

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
	opts.Seed = *seedFlag
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	if *headlessFlag {
		if err := runHeadless(os.Stdout, v, s, opts, *ticksFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mHILLCLIMB CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	g := &game{
		vehicle: v,
		stage:   s,
		opts:    opts,
		screen:  screen,
		view:    render.NewTerminal(screen),
		keys:    newLatch(keyQuiet),
	}

	if !*muteFlag {
		cues := audio.NewCues(audio.LoadConfig())
		if err := cues.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			g.cues = cues
			defer cues.Cleanup()
		}
	}

	if *streamFlag != "" {
		cfg := stream.DefaultConfig()
		cfg.Address = *streamFlag
		srv := stream.NewServer(cfg)
		if err := srv.Start(); err != nil {
			log.Printf("Stream server failed: %v (continuing without spectators)", err)
		} else {
			log.Printf("Streaming on ws://%s%s", srv.Addr(), cfg.Path)
			g.spectators = srv
			defer srv.Stop()
		}
	}

	if err := g.restart(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	g.loop()
}

// runHeadless drives a scripted gas-only run and prints its outcome as JSON
func runHeadless(w io.Writer, v catalog.VehicleSpec, s catalog.StageSpec, opts sim.Options, ticks uint64) error {
	opts.Source = sim.Hold(event.ControlGas, 1, ticks+1)
	run, err := sim.CreateRun(v, s, opts)
	if err != nil {
		return err
	}

	for i := uint64(0); i < ticks; i++ {
		r := run.Tick()
		for _, e := range r.Events {
			log.Printf("tick %d: %s value=%d x=%.1f", e.Tick, e.Kind, e.Value, e.X)
		}
		if r.Terminal != nil {
			break
		}
	}

	out := struct {
		RunID  string       `json:"run_id"`
		Seed   uint64       `json:"seed"`
		Ended  bool         `json:"ended"`
		State  sim.RunState `json:"state"`
		Report *sim.Report  `json:"report,omitempty"`
	}{
		RunID: run.RunID().String(),
		Seed:  opts.Seed,
		Ended: run.Ended(),
		State: run.State(),
	}
	if run.Ended() {
		out.Report = run.Snapshot().Terminal
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
