package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/diegok/crankpong/internal/config"
	"github.com/diegok/crankpong/internal/geom"
	"github.com/diegok/crankpong/internal/physics"
)

// stubInput scripts button and crank state for a frame.
type stubInput struct {
	held    map[Button]bool
	pressed map[Button]bool
	angle   float64
	docked  bool
}

func newStubInput() *stubInput {
	return &stubInput{
		held:    make(map[Button]bool),
		pressed: make(map[Button]bool),
		docked:  true,
	}
}

func (s *stubInput) ButtonHeld(b Button) bool        { return s.held[b] }
func (s *stubInput) ButtonJustPressed(b Button) bool { return s.pressed[b] }
func (s *stubInput) Crank() (float64, bool)          { return s.angle, s.docked }

type note struct {
	freq, volume float64
	d            time.Duration
}

// noteRecorder captures every tone the game asks for.
type noteRecorder struct {
	notes []note
}

func (r *noteRecorder) PlayNote(freq, volume float64, d time.Duration) {
	r.notes = append(r.notes, note{freq: freq, volume: volume, d: d})
}

func newTestGame(seed int64) (*Game, *stubInput, *noteRecorder) {
	in := newStubInput()
	rec := &noteRecorder{}
	g := New(config.Default(), rand.New(rand.NewSource(seed)), in, rec)
	return g, in, rec
}

func TestNew_PlacesEntities(t *testing.T) {
	g, _, _ := newTestGame(1)

	if got := g.ball.rect(); got != (geom.Rect{X: 200, Y: 10, W: 8, H: 8}) {
		t.Errorf("unexpected ball rect %+v", got)
	}
	if got := g.player.rect(); got != (geom.Rect{X: 8, Y: 96, W: 8, H: 48}) {
		t.Errorf("unexpected player rect %+v", got)
	}
	if got := g.cpu.rect(); got != (geom.Rect{X: 384, Y: 96, W: 8, H: 48}) {
		t.Errorf("unexpected computer rect %+v", got)
	}
	if g.state != StatePlaying {
		t.Errorf("expected StatePlaying, got %v", g.state)
	}
	if g.score != (Score{}) {
		t.Errorf("expected zero score, got %+v", g.score)
	}
}

func TestGame_Update_LeftWallScoresForComputer(t *testing.T) {
	g, _, _ := newTestGame(1)
	g.ball.body.Rect.X, g.ball.body.Rect.Y = 2, 100
	g.ball.velocity = geom.Vector2{X: -6, Y: 0}

	g.Update()

	if g.score.CPU != 1 || g.score.Player != 0 {
		t.Errorf("expected score 0-1, got %+v", g.score)
	}
	if g.state != StatePlaying {
		t.Errorf("expected play to continue, got state %v", g.state)
	}
	if g.ball.body.Rect.X != BallResetX || g.ball.body.Rect.Y != BallResetY {
		t.Errorf("expected ball re-served at (%d, %d), got (%f, %f)",
			BallResetX, BallResetY, g.ball.body.Rect.X, g.ball.body.Rect.Y)
	}
	if g.ball.velocity.Y != 1 {
		t.Errorf("expected capped serve VY 1, got %f", g.ball.velocity.Y)
	}
	if math.Abs(math.Abs(g.ball.velocity.X)-math.Sqrt(40)) > 0.001 {
		t.Errorf("expected |VX| rebuilt to sqrt(40), got %f", g.ball.velocity.X)
	}
}

func TestGame_Update_RightWallScoresForPlayer(t *testing.T) {
	g, _, _ := newTestGame(1)
	g.ball.body.Rect.X, g.ball.body.Rect.Y = 390, 100
	g.ball.velocity = geom.Vector2{X: 6, Y: 0}

	g.Update()

	if g.score.Player != 1 || g.score.CPU != 0 {
		t.Errorf("expected score 1-0, got %+v", g.score)
	}
	if g.ball.body.Rect.X != BallResetX || g.ball.body.Rect.Y != BallResetY {
		t.Errorf("expected ball re-served, got (%f, %f)", g.ball.body.Rect.X, g.ball.body.Rect.Y)
	}
}

func TestGame_Update_ReachingWinningScoreEndsGame(t *testing.T) {
	g, _, _ := newTestGame(1)
	g.score.Player = g.winningScore - 1
	g.ball.body.Rect.X, g.ball.body.Rect.Y = 390, 100
	g.ball.velocity = geom.Vector2{X: 6, Y: 0}

	g.Update()

	if g.score.Player != g.winningScore {
		t.Errorf("expected winning score %d, got %d", g.winningScore, g.score.Player)
	}
	if g.state != StateGameOver {
		t.Errorf("expected StateGameOver, got %v", g.state)
	}
}

func TestGame_Update_GameOverFreezesEntities(t *testing.T) {
	g, in, _ := newTestGame(1)
	g.state = StateGameOver
	g.score = Score{Player: 11, CPU: 3}
	in.held[ButtonUp] = true
	ballAt := g.ball.rect()
	playerAt := g.player.rect()

	g.Update()

	if g.ball.rect() != ballAt {
		t.Errorf("expected ball frozen at %+v, got %+v", ballAt, g.ball.rect())
	}
	if g.player.rect() != playerAt {
		t.Errorf("expected player frozen at %+v, got %+v", playerAt, g.player.rect())
	}
	if g.state != StateGameOver {
		t.Errorf("expected StateGameOver to persist, got %v", g.state)
	}
	if g.score != (Score{Player: 11, CPU: 3}) {
		t.Errorf("expected score kept for the results screen, got %+v", g.score)
	}
}

func TestGame_Update_RestartClearsScore(t *testing.T) {
	g, in, _ := newTestGame(1)
	g.state = StateGameOver
	g.score = Score{Player: 11, CPU: 3}
	in.pressed[ButtonA] = true

	g.Update()

	if g.state != StatePlaying {
		t.Errorf("expected StatePlaying after restart, got %v", g.state)
	}
	if g.score != (Score{}) {
		t.Errorf("expected score cleared, got %+v", g.score)
	}
}

// A free-flying ball must reach the scoring edge within one velocity step,
// score, and re-serve. The world here holds only the ball and the right
// wall so nothing deflects it on the way; the wall is stretched so the
// diagonal path cannot slip past its end.
func TestGame_Update_BallCrossingRightEdgeScores(t *testing.T) {
	g := &Game{
		world:        physics.NewWorld(),
		rng:          rand.New(rand.NewSource(1)),
		input:        newStubInput(),
		notes:        &noteRecorder{},
		winningScore: 11,
		playerSpeed:  6,
		cpuSpeed:     6,
	}
	g.rightWall = newWall(g.world, geom.Rect{
		X: DisplayWidth, Y: -wallThickness,
		W: wallThickness, H: 600,
	})
	g.ball = newBall(g.world)
	g.ball.body.Rect.X, g.ball.body.Rect.Y = 100, 50
	g.ball.velocity = geom.Vector2{X: 3, Y: 4}
	g.entities = []updater{g.ball}

	var prevX float64
	for i := 0; i < 200; i++ {
		prevX = g.ball.body.Rect.X
		g.Update()
		if g.score.Player > 0 {
			break
		}
	}

	if g.score.Player != 1 {
		t.Fatal("expected the ball to score within 200 frames")
	}
	if prevX < 390 {
		t.Errorf("expected the scoring step to start within one step of the edge, was at x=%f", prevX)
	}
	if g.ball.body.Rect.X != BallResetX || g.ball.body.Rect.Y != BallResetY {
		t.Errorf("expected ball re-served, got (%f, %f)", g.ball.body.Rect.X, g.ball.body.Rect.Y)
	}
	if g.ball.velocity.Y <= 0 {
		t.Errorf("expected downward serve, got VY=%f", g.ball.velocity.Y)
	}
	if math.Abs(g.ball.velocity.Length()-initialBallSpeed) > 0.001 {
		t.Errorf("expected serve speed %f, got %f", initialBallSpeed, g.ball.velocity.Length())
	}
	if g.ball.bounceCount != 0 {
		t.Errorf("expected bounce counter cleared, got %d", g.ball.bounceCount)
	}
}

func TestGame_Snapshot(t *testing.T) {
	g, in, _ := newTestGame(1)
	g.score = Score{Player: 3, CPU: 2}
	in.angle = 42.5
	in.docked = false

	snap := g.Snapshot()

	if snap.Ball != g.ball.rect() {
		t.Errorf("expected ball rect %+v, got %+v", g.ball.rect(), snap.Ball)
	}
	if snap.Player != g.player.rect() {
		t.Errorf("expected player rect %+v, got %+v", g.player.rect(), snap.Player)
	}
	if snap.CPU != g.cpu.rect() {
		t.Errorf("expected computer rect %+v, got %+v", g.cpu.rect(), snap.CPU)
	}
	if snap.Score != (Score{Player: 3, CPU: 2}) {
		t.Errorf("unexpected score %+v", snap.Score)
	}
	if snap.State != StatePlaying {
		t.Errorf("unexpected state %v", snap.State)
	}
	if snap.WinningScore != 11 {
		t.Errorf("expected winning score 11, got %d", snap.WinningScore)
	}
	if snap.CrankAngle != 42.5 || snap.CrankDocked {
		t.Errorf("unexpected crank state %f docked=%v", snap.CrankAngle, snap.CrankDocked)
	}
}
