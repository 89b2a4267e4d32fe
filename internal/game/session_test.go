package game

import (
	"testing"

	"github.com/rafaelantao/tui-archery/internal/config"
	"github.com/rafaelantao/tui-archery/internal/core"
)

const tickDt = 1.0 / 60.0

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.DefaultConfig()
	// A flat aim keeps the full-power trajectory on the easy target.
	cfg.Aim.InitialPitchDeg = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	return NewSession(cfg, config.DifficultyEasy)
}

// fireFullPower charges to the cap and releases.
func fireFullPower(t *testing.T, s *Session) {
	t.Helper()
	s.StartCharge()
	if s.Phase() != PhaseCharging {
		t.Fatalf("phase after StartCharge = %v, expected Charging", s.Phase())
	}
	s.Step(core.NewInputFrame(), 5)
	s.Release()
	if s.Phase() != PhaseInFlight {
		t.Fatalf("phase after Release = %v, expected InFlight", s.Phase())
	}
}

// flyUntilResolve steps until the arrow finalizes.
func flyUntilResolve(t *testing.T, s *Session) {
	t.Helper()
	in := core.NewInputFrame()
	for i := 0; i < 100000; i++ {
		s.Step(in, tickDt)
		if s.Phase() == PhaseResolve {
			return
		}
	}
	t.Fatal("arrow never finalized")
}

func TestShotLifecycle(t *testing.T) {
	s := newTestSession(t)
	fireFullPower(t, s)
	flyUntilResolve(t, s)

	res := s.LastResult()
	if res == nil {
		t.Fatal("LastResult() should be set after finalize")
	}
	if !res.Hit {
		t.Errorf("full-power straight shot at easy range should hit, got %+v", res)
	}
	if res.Points <= 0 {
		t.Errorf("hit scored %d points, expected positive", res.Points)
	}
	if s.ShotCount() != 1 {
		t.Errorf("ShotCount() = %d, expected 1", s.ShotCount())
	}

	// Resolve holds for the configured pause, then returns to Aiming.
	in := core.NewInputFrame()
	for i := 0; i < 200 && s.Phase() == PhaseResolve; i++ {
		s.Step(in, tickDt)
	}
	if s.Phase() != PhaseAiming {
		t.Errorf("phase after resolve pause = %v, expected Aiming", s.Phase())
	}
}

func TestZeroChargeReleaseFiresNothing(t *testing.T) {
	s := newTestSession(t)
	before := s.Snapshot().ArrowsRemaining

	s.StartCharge()
	s.Release()

	if s.Phase() != PhaseAiming {
		t.Errorf("phase = %v, expected Aiming after zero-power release", s.Phase())
	}
	if s.Snapshot().HasArrow {
		t.Error("no arrow should spawn from a zero-power release")
	}
	if got := s.Snapshot().ArrowsRemaining; got != before {
		t.Errorf("ArrowsRemaining = %d, expected unchanged %d", got, before)
	}
	if s.ShotCount() != 0 {
		t.Errorf("ShotCount() = %d, expected 0", s.ShotCount())
	}
}

func TestBackwardShotRejected(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Aim.YawMaxDeg = 180
	cfg.Aim.InitialYawDeg = 180
	s := NewSession(cfg, config.DifficultyEasy)

	s.StartCharge()
	s.Step(core.NewInputFrame(), 5)
	s.Release()

	if s.Phase() != PhaseAiming {
		t.Errorf("phase = %v, expected Aiming after backward rejection", s.Phase())
	}
	if s.Snapshot().HasArrow {
		t.Error("no arrow should spawn from a backward launch")
	}
	if s.Snapshot().Warning == "" {
		t.Error("backward rejection should surface a warning")
	}
	if s.Snapshot().ArrowsRemaining != cfg.Rules.QuiverSize {
		t.Error("backward rejection should not consume an arrow")
	}
}

func TestSingleArrowInvariant(t *testing.T) {
	s := newTestSession(t)
	fireFullPower(t, s)

	s.StartCharge()
	if s.Phase() != PhaseInFlight {
		t.Errorf("StartCharge mid-flight changed phase to %v", s.Phase())
	}
}

func TestArrowConsumedOnFinalizeNotRelease(t *testing.T) {
	s := newTestSession(t)
	full := s.Snapshot().QuiverSize

	fireFullPower(t, s)
	if got := s.Snapshot().ArrowsRemaining; got != full {
		t.Errorf("ArrowsRemaining during flight = %d, expected %d", got, full)
	}
	flyUntilResolve(t, s)
	if got := s.Snapshot().ArrowsRemaining; got != full-1 {
		t.Errorf("ArrowsRemaining after finalize = %d, expected %d", got, full-1)
	}
}

func TestQuiverExhaustionAndReload(t *testing.T) {
	s := newTestSession(t)
	full := s.Snapshot().QuiverSize
	in := core.NewInputFrame()

	for i := 0; i < full; i++ {
		for s.Phase() != PhaseAiming {
			s.Step(in, tickDt)
		}
		fireFullPower(t, s)
		flyUntilResolve(t, s)
	}

	snap := s.Snapshot()
	if !snap.AwaitingReload {
		t.Fatal("AwaitingReload should be set after the last arrow")
	}
	if snap.ArrowsRemaining != 0 {
		t.Errorf("ArrowsRemaining = %d, expected 0", snap.ArrowsRemaining)
	}
	if s.RoundCount() != 1 {
		t.Errorf("RoundCount() = %d, expected 1", s.RoundCount())
	}

	// Charging with an empty quiver is refused.
	for s.Phase() != PhaseAiming {
		s.Step(in, tickDt)
	}
	s.StartCharge()
	if s.Phase() != PhaseAiming {
		t.Errorf("StartCharge with empty quiver changed phase to %v", s.Phase())
	}

	s.Reload()
	snap = s.Snapshot()
	if snap.ArrowsRemaining != full {
		t.Errorf("ArrowsRemaining after reload = %d, expected %d", snap.ArrowsRemaining, full)
	}
	if snap.AwaitingReload {
		t.Error("AwaitingReload should clear on reload")
	}
	if snap.RoundScore != 0 {
		t.Errorf("RoundScore after reload = %d, expected 0", snap.RoundScore)
	}
	if len(snap.HitMarkers) != 0 {
		t.Error("hit markers should clear on reload")
	}
}

func TestReloadRefusedInFlight(t *testing.T) {
	s := newTestSession(t)
	fireFullPower(t, s)
	s.Reload()
	if s.Phase() != PhaseInFlight {
		t.Errorf("Reload mid-flight changed phase to %v", s.Phase())
	}
	if s.Snapshot().Warning == "" {
		t.Error("mid-flight reload should surface a warning")
	}
}

func TestTimeoutTakesPriority(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Physics.ArrowTimeoutSeconds = 0.01
	s := NewSession(cfg, config.DifficultyEasy)

	fireFullPower(t, s)
	// One large tick carries the arrow past both the timeout and the
	// target plane; the timeout must win.
	s.Step(core.NewInputFrame(), 1.0)

	res := s.LastResult()
	if res == nil {
		t.Fatal("shot should have finalized")
	}
	if res.Hit {
		t.Error("timed-out shot should not score")
	}
	if res.Reason != MissTimeout {
		t.Errorf("Reason = %q, expected %q", res.Reason, MissTimeout)
	}
}

func TestDifficultySwitchRefusedInFlight(t *testing.T) {
	s := newTestSession(t)
	fireFullPower(t, s)

	s.SetDifficulty(config.DifficultyHard)
	if s.Difficulty() != config.DifficultyEasy {
		t.Errorf("Difficulty() = %q, expected unchanged easy", s.Difficulty())
	}

	flyUntilResolve(t, s)
	s.SetDifficulty(config.DifficultyHard)
	if s.Difficulty() != config.DifficultyHard {
		t.Errorf("Difficulty() = %q, expected hard after flight ended", s.Difficulty())
	}
}

func TestChargeRatioClampsAtFullDraw(t *testing.T) {
	s := newTestSession(t)
	s.StartCharge()

	in := core.NewInputFrame()
	s.Step(in, 0.5)
	partial := s.ChargeRatio()
	if partial <= 0 || partial >= 1 {
		t.Errorf("ChargeRatio after partial draw = %v, expected in (0,1)", partial)
	}
	s.Step(in, 10)
	if s.ChargeRatio() != 1 {
		t.Errorf("ChargeRatio after overdraw = %v, expected 1", s.ChargeRatio())
	}
}

func TestLaunchSpeedMonotonicInDraw(t *testing.T) {
	s := newTestSession(t)
	s.StartCharge()

	in := core.NewInputFrame()
	prev := s.LaunchSpeed()
	for i := 0; i < 10; i++ {
		s.Step(in, 0.1)
		speed := s.LaunchSpeed()
		if speed < prev {
			t.Fatalf("LaunchSpeed decreased from %v to %v while drawing", prev, speed)
		}
		prev = speed
	}
}

func TestHitOutcomeIndependentOfTickRate(t *testing.T) {
	outcomes := make([]ShotResult, 0, 2)
	for _, dt := range []float64{1.0 / 120.0, 1.0 / 15.0} {
		s := newTestSession(t)
		fireFullPower(t, s)
		in := core.NewInputFrame()
		for i := 0; i < 100000 && s.Phase() == PhaseInFlight; i++ {
			s.Step(in, dt)
		}
		res := s.LastResult()
		if res == nil {
			t.Fatal("shot should have finalized")
		}
		outcomes = append(outcomes, *res)
	}

	a, b := outcomes[0], outcomes[1]
	if a.Hit != b.Hit || a.Ring != b.Ring || a.Points != b.Points {
		t.Errorf("outcome depends on tick rate: %+v vs %+v", a, b)
	}
	if a.RadialDistance != b.RadialDistance {
		t.Errorf("radial depends on tick rate: %v vs %v", a.RadialDistance, b.RadialDistance)
	}
}

func TestWarningExpires(t *testing.T) {
	s := newTestSession(t)
	fireFullPower(t, s)
	s.Reload()
	if s.Snapshot().Warning == "" {
		t.Fatal("expected a warning")
	}
	flyUntilResolve(t, s)
	in := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		s.Step(in, tickDt)
	}
	if s.Snapshot().Warning != "" {
		t.Error("warning should expire")
	}
}
