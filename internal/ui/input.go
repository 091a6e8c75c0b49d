package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/crankpong/internal/game"
)

const (
	// holdTicks keeps a button held after its last key event (~266ms
	// at 30Hz), since terminals report key repeats, not releases.
	holdTicks = 8
	// crankStepDeg is how far one bracket press turns the simulated crank.
	crankStepDeg = 10
)

// Keyboard adapts terminal key events to the console-style input the game
// reads: held buttons, edge-triggered presses, and a crank simulated with
// the bracket keys.
type Keyboard struct {
	held    map[game.Button]int
	pressed map[game.Button]bool

	crankAngle  float64
	crankDocked bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		held:        make(map[game.Button]int),
		pressed:     make(map[game.Button]bool),
		crankDocked: true,
	}
}

// HandleKey feeds one key event into the frame's input state.
func (k *Keyboard) HandleKey(ev *tcell.EventKey) {
	if b, ok := keyToButton(ev.Key(), ev.Rune()); ok {
		k.held[b] = holdTicks
		k.pressed[b] = true
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case '[':
		k.turnCrank(-crankStepDeg)
	case ']':
		k.turnCrank(crankStepDeg)
	case 'c', 'C':
		k.crankDocked = !k.crankDocked
	}
}

// turnCrank rotates the simulated crank, wrapping into [0, 360). A docked
// crank does not turn.
func (k *Keyboard) turnCrank(deg float64) {
	if k.crankDocked {
		return
	}
	k.crankAngle = math.Mod(k.crankAngle+deg+360, 360)
}

// EndFrame ages the held buttons and clears the edge-triggered presses.
// Call once per game frame, after the update has read the input.
func (k *Keyboard) EndFrame() {
	for b, ticks := range k.held {
		if ticks > 0 {
			k.held[b] = ticks - 1
		}
	}
	for b := range k.pressed {
		delete(k.pressed, b)
	}
}

func (k *Keyboard) ButtonHeld(b game.Button) bool {
	return k.held[b] > 0
}

func (k *Keyboard) ButtonJustPressed(b game.Button) bool {
	return k.pressed[b]
}

func (k *Keyboard) Crank() (float64, bool) {
	return k.crankAngle, k.crankDocked
}

// keyToButton converts a key event to a game button.
func keyToButton(key tcell.Key, r rune) (game.Button, bool) {
	switch key {
	case tcell.KeyUp:
		return game.ButtonUp, true
	case tcell.KeyDown:
		return game.ButtonDown, true
	case tcell.KeyEnter:
		return game.ButtonA, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.ButtonUp, true
		case 's', 'S':
			return game.ButtonDown, true
		case ' ':
			return game.ButtonA, true
		}
	}
	return 0, false
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}
