package game

import (
	"math/rand"
	"time"

	"github.com/diegok/crankpong/internal/config"
	"github.com/diegok/crankpong/internal/geom"
	"github.com/diegok/crankpong/internal/physics"
)

// Button identifies the digital inputs the game reads.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonA
)

// Input supplies button and crank state once per frame.
type Input interface {
	ButtonHeld(b Button) bool
	ButtonJustPressed(b Button) bool
	// Crank reports the crank's absolute angle in degrees [0, 360) and
	// whether it is docked.
	Crank() (angle float64, docked bool)
}

// NotePlayer plays a tone. Satisfied by *audio.Synth.
type NotePlayer interface {
	PlayNote(freq, volume float64, d time.Duration)
}

// State is the orchestrator's phase.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// Score tracks points for both sides.
type Score struct {
	Player, CPU int
}

// Game owns the entities, the collision world, and the match state. All
// randomness flows through the injected rng.
type Game struct {
	world *physics.World
	rng   *rand.Rand
	input Input
	notes NotePlayer

	winningScore   int
	playerSpeed    float64
	cpuSpeed       float64
	maxAngleErrDeg float64
	maxSpeedErr    float64

	ball   *Ball
	player *PlayerPaddle
	cpu    *ComputerPaddle

	topWall    *Wall
	bottomWall *Wall
	leftWall   *Wall
	rightWall  *Wall

	entities []updater

	score Score
	state State
}

// New builds a game with every entity registered against a fresh collision
// world: player paddle near the left edge, computer paddle near the right,
// ball at the top spawn. The caller supplies the random source and the
// input and sound collaborators.
func New(cfg *config.Config, rng *rand.Rand, input Input, notes NotePlayer) *Game {
	g := &Game{
		world:          physics.NewWorld(),
		rng:            rng,
		input:          input,
		notes:          notes,
		winningScore:   cfg.Tuning.WinningScore,
		playerSpeed:    cfg.Tuning.PlayerPaddleSpeed,
		cpuSpeed:       cfg.Tuning.CPUPaddleSpeed,
		maxAngleErrDeg: cfg.Tuning.MaxAngleErrorDeg,
		maxSpeedErr:    cfg.Tuning.MaxSpeedError,
	}

	g.topWall = newWall(g.world, geom.Rect{
		X: -wallThickness, Y: -wallThickness,
		W: DisplayWidth + 2*wallThickness, H: wallThickness,
	})
	g.bottomWall = newWall(g.world, geom.Rect{
		X: -wallThickness, Y: DisplayHeight,
		W: DisplayWidth + 2*wallThickness, H: wallThickness,
	})
	g.leftWall = newWall(g.world, geom.Rect{
		X: -wallThickness, Y: -wallThickness,
		W: wallThickness, H: DisplayHeight + 2*wallThickness,
	})
	g.rightWall = newWall(g.world, geom.Rect{
		X: DisplayWidth, Y: -wallThickness,
		W: wallThickness, H: DisplayHeight + 2*wallThickness,
	})

	g.player = newPlayerPaddle(g.world, g.playerSpeed)
	g.cpu = newComputerPaddle(g.world, g.cpuSpeed)
	g.ball = newBall(g.world)

	g.entities = []updater{g.player, g.cpu, g.ball}

	return g
}

// Update advances one frame. During play every entity updates in
// registration order; after a win only the restart input is polled.
// Scores survive into the game-over screen and clear on restart.
func (g *Game) Update() {
	switch g.state {
	case StatePlaying:
		for _, e := range g.entities {
			e.update(g)
		}
	case StateGameOver:
		if g.input.ButtonJustPressed(ButtonA) {
			g.score = Score{}
			g.state = StatePlaying
		}
	}
}

// checkWin flips to game over the moment either side reaches the winning
// score. Called right after every scoring event.
func (g *Game) checkWin() {
	if g.score.Player >= g.winningScore || g.score.CPU >= g.winningScore {
		g.state = StateGameOver
	}
}

// Snapshot is the render-facing view of one frame, in play-field
// coordinates.
type Snapshot struct {
	Ball   geom.Rect
	Player geom.Rect
	CPU    geom.Rect

	Score        Score
	State        State
	WinningScore int

	CrankAngle  float64
	CrankDocked bool
}

func (g *Game) Snapshot() Snapshot {
	angle, docked := g.input.Crank()
	return Snapshot{
		Ball:         g.ball.rect(),
		Player:       g.player.rect(),
		CPU:          g.cpu.rect(),
		Score:        g.score,
		State:        g.state,
		WinningScore: g.winningScore,
		CrankAngle:   angle,
		CrankDocked:  docked,
	}
}
