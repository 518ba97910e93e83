package app

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var namedKeys = map[string]ebiten.Key{
	"ESCAPE":    ebiten.KeyEscape,
	"ESC":       ebiten.KeyEscape,
	"SPACE":     ebiten.KeySpace,
	"ENTER":     ebiten.KeyEnter,
	"RETURN":    ebiten.KeyEnter,
	"TAB":       ebiten.KeyTab,
	"BACKSPACE": ebiten.KeyBackspace,
}

var letterKeys = [...]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF,
	ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL,
	ebiten.KeyM, ebiten.KeyN, ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR,
	ebiten.KeyS, ebiten.KeyT, ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX,
	ebiten.KeyY, ebiten.KeyZ,
}

// ParseKey converts a key token (e.g. "Q", "Escape") into an ebiten key.
// Recognizes single letters A..Z and a few named keys. Unknown tokens return Q.
func ParseKey(name string) ebiten.Key {
	k := strings.ToUpper(strings.TrimSpace(name))
	if len(k) == 1 && k[0] >= 'A' && k[0] <= 'Z' {
		return letterKeys[k[0]-'A']
	}
	if key, ok := namedKeys[k]; ok {
		return key
	}
	return ebiten.KeyQ
}
