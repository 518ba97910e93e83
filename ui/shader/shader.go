package shader

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/soocke/radial-select-go/assets"
	"github.com/soocke/radial-select-go/ui/render"
)

// ErrCompile wraps every shader compilation failure.
var ErrCompile = errors.New("shader compile failed")

// Compile compiles Kage source into a shader.
func Compile(src []byte) (*ebiten.Shader, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: empty source", ErrCompile)
	}
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}
	return s, nil
}

// Ring compiles the embedded ring shader.
func Ring() (*ebiten.Shader, error) {
	src, err := assets.RingShaderSource()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}
	return Compile(src)
}

// Draw fills dst with the ring for frame f.
func Draw(dst *ebiten.Image, s *ebiten.Shader, f render.Frame) {
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = f.Uniforms()
	dst.DrawRectShader(f.Width, f.Height, s, op)
}
