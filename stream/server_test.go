package stream

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/hillclimb/catalog"
	"github.com/lixenwraith/hillclimb/event"
	"github.com/lixenwraith/hillclimb/sim"
)

func newRun(t *testing.T) *sim.Simulation {
	t.Helper()
	cat := catalog.Default()
	v, _ := cat.Vehicle(catalog.VehicleJeep)
	st, _ := cat.Stage(catalog.StageMoon)
	run, err := sim.CreateRun(v, st, sim.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	return run
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return f
}

func waitPeers(t *testing.T, s *Server, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.PeerCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d peers, have %d", n, s.PeerCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestServer_LateJoinerGetsLatestFrame(t *testing.T) {
	s := NewServer(nil)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()
	defer s.Stop()

	run := newRun(t)
	run.Tick()
	run.Tick()
	if ok, err := s.Publish(run.Snapshot(), nil); !ok || err != nil {
		t.Fatalf("publish tick 2: %v %v", ok, err)
	}

	conn := dial(t, ts)
	f := readFrame(t, conn)
	if f.Seq != 1 || f.Snapshot.Tick != 2 || f.Snapshot.RunID != run.RunID() {
		t.Errorf("unexpected replay frame seq=%d tick=%d run=%s", f.Seq, f.Snapshot.Tick, f.Snapshot.RunID)
	}
	if len(f.Snapshot.Terrain) == 0 {
		t.Error("replayed frame carries no terrain")
	}

	waitPeers(t, s, 1)
	run.Tick()
	r := run.Tick()
	events := []event.Event{{Kind: event.KindCoinCollected, Tick: r.Tick, Value: 25}}
	if _, err := s.Publish(run.Snapshot(), events); err != nil {
		t.Fatal(err)
	}
	f = readFrame(t, conn)
	if f.Snapshot.Tick != 4 || len(f.Events) != 1 || f.Events[0].Kind != event.KindCoinCollected {
		t.Errorf("unexpected live frame: tick %d events %+v", f.Snapshot.Tick, f.Events)
	}
	t.Logf("✓ Replay then live frame delivered")
}

func TestServer_FrameEvery(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameEvery = 3
	s := NewServer(cfg)

	run := newRun(t)
	var published []uint64
	for range 9 {
		run.Tick()
		if ok, _ := s.Publish(run.Snapshot(), nil); ok {
			published = append(published, run.Snapshot().Tick)
		}
	}
	if len(published) != 3 || published[0] != 3 || published[2] != 9 {
		t.Errorf("expected ticks 3,6,9 published, got %v", published)
	}

	// Events force a frame out of cadence
	run.Tick()
	if ok, _ := s.Publish(run.Snapshot(), []event.Event{{Kind: event.KindAirTime}}); !ok {
		t.Error("event frame skipped")
	}
}

func TestServer_MaxPeers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPeers = 1
	s := NewServer(cfg)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()
	defer s.Stop()

	dial(t, ts)
	waitPeers(t, s, 1)

	second := dial(t, ts)
	second.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := second.ReadMessage()
	if !websocket.IsCloseError(err, websocket.ClosePolicyViolation) {
		t.Errorf("expected policy violation close, got %v", err)
	}
	if s.PeerCount() != 1 {
		t.Errorf("expected 1 peer, got %d", s.PeerCount())
	}
}

func TestPeer_SendDropsWhenFull(t *testing.T) {
	p := newPeer(1, "test", nil, 1)
	if !p.Send([]byte("a")) {
		t.Fatal("first frame rejected")
	}
	if p.Send([]byte("b")) {
		t.Error("full queue accepted a frame")
	}

	p.Close()
	p.Close()
	<-p.sendCh
	if p.Send([]byte("c")) {
		t.Error("closed peer accepted a frame")
	}
}

func TestServer_StartStop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:0"
	s := NewServer(cfg)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if s.Addr() == "" || strings.HasSuffix(s.Addr(), ":0") {
		t.Errorf("expected bound address, got %q", s.Addr())
	}

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+s.Addr()+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitPeers(t, s, 1)

	if err := s.Stop(); err != nil {
		t.Errorf("stop: %v", err)
	}
	if s.PeerCount() != 0 {
		t.Errorf("peers survived stop: %d", s.PeerCount())
	}
}
