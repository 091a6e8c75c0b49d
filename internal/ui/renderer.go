package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/crankpong/internal/game"
	"github.com/diegok/crankpong/internal/geom"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █

	// centerLinePattern dashes the center line: four rows on, four off.
	centerLinePattern = 0xF0
)

// Renderer draws the game's screens onto the terminal. Play-field
// coordinates are scaled to whatever size the terminal has, keeping the
// top row for the scoreboard and the bottom row for the status bar.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderPlaying displays one frame of play.
func (r *Renderer) RenderPlaying(snap game.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	// Map play-field coordinates to screen cells, -2 rows for the bars.
	scaleX := float64(screenW) / game.DisplayWidth
	scaleY := float64(screenH-2) / game.DisplayHeight

	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	r.screen.DrawVerticalPatternLine(screenW/2, 1, screenH-2, centerLinePattern, lineStyle, '|')

	r.renderScoreboard(snap.Score, screenW)

	paddleStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, rect := range []geom.Rect{snap.Player, snap.CPU} {
		x, y, w, h := scaleRect(rect, scaleX, scaleY)
		r.screen.FillRect(x, y+1, w, h, paddleStyle, PaddleChar)
	}

	ballStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x, y, w, h := scaleRect(snap.Ball, scaleX, scaleY)
	r.screen.FillEllipse(x, y+1, w, h, ballStyle, BallChar)

	r.renderStatusBar(snap, screenW, screenH)

	r.screen.Show()
}

// renderScoreboard draws a stadium-style scoreboard at top center
func (r *Renderer) renderScoreboard(score game.Score, screenW int) {
	left := fmt.Sprintf("%d", score.Player)
	right := fmt.Sprintf("%d", score.CPU)

	text := fmt.Sprintf("[ YOU %s - %s CPU ]", left, right)
	x := (screenW - len(text)) / 2

	base := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	youStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorGreen).Bold(true)
	cpuStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorRed).Bold(true)

	r.screen.DrawText(x, 0, "[ ", base)
	r.screen.DrawText(x+2, 0, "YOU", youStyle)
	r.screen.DrawText(x+5, 0, fmt.Sprintf(" %s - %s ", left, right), base)
	r.screen.DrawText(x+10+len(left)+len(right), 0, "CPU", cpuStyle)
	r.screen.DrawText(x+13+len(left)+len(right), 0, " ]", base)
}

// renderStatusBar draws the controls and the crank readout at the bottom.
func (r *Renderer) renderStatusBar(snap game.Snapshot, screenW, screenH int) {
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}

	statusText := fmt.Sprintf(" w/s move | [ ] crank | c dock | q quit | first to %d", snap.WinningScore)
	r.screen.DrawText(0, statusY, statusText, statusStyle)

	crankText := "crank: docked "
	if !snap.CrankDocked {
		crankText = fmt.Sprintf("crank: %3.0f deg ", snap.CrankAngle)
	}
	r.screen.DrawText(screenW-len(crankText), statusY, crankText, statusStyle)
}

// RenderGameOver displays the game over screen
func (r *Renderer) RenderGameOver(snap game.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	boxW := 36
	boxH := 9
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	boxStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawBox(boxX, boxY, boxW, boxH, boxStyle)

	title := "=== GAME OVER ==="
	titleX := (screenW - len(title)) / 2
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	r.screen.DrawText(titleX, boxY+2, title, titleStyle)

	var winner string
	var winnerStyle tcell.Style
	if snap.Score.Player > snap.Score.CPU {
		winner = "YOU WIN!"
		winnerStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	} else {
		winner = "CPU WINS!"
		winnerStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	winnerX := (screenW - len(winner)) / 2
	r.screen.DrawText(winnerX, boxY+4, winner, winnerStyle)

	scoreText := fmt.Sprintf("Final Score: %d - %d", snap.Score.Player, snap.Score.CPU)
	scoreX := (screenW - len(scoreText)) / 2
	r.screen.DrawText(scoreX, boxY+6, scoreText, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	hint := "Press ENTER to play again | 'q' to quit"
	hintX := (screenW - len(hint)) / 2
	r.screen.DrawText(hintX, boxY+boxH+1, hint, tcell.StyleDefault.Foreground(tcell.ColorGreen))

	r.screen.Show()
}

// scaleRect maps a play-field rectangle to screen cells, keeping a
// minimum footprint of one cell so small entities stay visible.
func scaleRect(r geom.Rect, scaleX, scaleY float64) (x, y, w, h int) {
	x = int(r.X * scaleX)
	y = int(r.Y * scaleY)
	w = int(r.W * scaleX)
	h = int(r.H * scaleY)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x, y, w, h
}
