package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var clickButtons = []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight}

// Input polls ebiten once per tick and turns what happened into events.
type Input struct {
	// CursorX/Y are the cursor position in screen pixels.
	CursorX int
	CursorY int

	Events EventQueue
}

func NewInput() *Input {
	return &Input{}
}

// Update samples the cursor and queues this tick's events.
func (i *Input) Update() {
	i.CursorX, i.CursorY = ebiten.CursorPosition()

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		i.Events.Push(Event{Kind: EventClose})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		i.Events.Push(Event{Kind: EventPause})
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		i.Events.Push(Event{Kind: EventWheel, Delta: dy})
	}

	for _, b := range clickButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			i.Events.Push(Event{Kind: EventButton, Button: b, X: i.CursorX, Y: i.CursorY})
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		i.Events.Push(Event{Kind: EventCopyCursor, X: i.CursorX, Y: i.CursorY})
	}
}
