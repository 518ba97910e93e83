package app

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/soocke/radial-select-go/domain/selection"
)

// InputSource narrows the provider's input API to what the selector polls.
type InputSource interface {
	CursorPosition() (int, int)
	MouseButtonJustPressed(ebiten.MouseButton) bool
	JustPressedKeys() []ebiten.Key
	CloseRequested() bool
}

type ebitenInput struct {
	keys []ebiten.Key
}

// NewEbitenInput returns the live ebiten input source.
func NewEbitenInput() InputSource { return &ebitenInput{} }

func (in *ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (in *ebitenInput) MouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (in *ebitenInput) JustPressedKeys() []ebiten.Key {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	return in.keys
}

func (in *ebitenInput) CloseRequested() bool { return ebiten.IsWindowBeingClosed() }

// PollBatch collects this frame's input into an ordered event batch.
// Cancel is placed before a primary press seen in the same frame.
func PollBatch(src InputSource, quit ebiten.Key, vp selection.Viewport, logger *slog.Logger) []selection.Event {
	var batch []selection.Event
	if src.MouseButtonJustPressed(ebiten.MouseButtonRight) {
		batch = append(batch, selection.Secondary{})
	}
	if src.MouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := src.CursorPosition()
		batch = append(batch, selection.Primary{
			Cursor:   selection.Cursor{X: float64(x), Y: float64(y)},
			Viewport: vp,
		})
	}
	for _, k := range src.JustPressedKeys() {
		if logger != nil {
			logger.Debug("received keypress", "key", k.String())
		}
		if k == quit {
			batch = append(batch, selection.Dismiss{})
		}
	}
	if src.CloseRequested() {
		batch = append(batch, selection.Dismiss{})
	}
	return batch
}
