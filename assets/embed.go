package assets

import (
	_ "embed"
	"fmt"
)

// RingShader contains the Kage source of the ring fragment shader.
//
//go:embed ring.kage
var RingShader []byte

// RingShaderSource returns the embedded shader source.
func RingShaderSource() ([]byte, error) {
	if len(RingShader) == 0 {
		return nil, fmt.Errorf("embedded ring.kage is empty")
	}
	return RingShader, nil
}
