package scene

import (
	"github.com/simukka/sonosphere/common"
)

// Material is the static appearance of the sphere.
type Material struct {
	Color             common.Color
	Emissive          common.Color
	EmissiveIntensity float64
	Wireframe         bool
	Opacity           float64
}

// NewMaterial builds the sphere material from the parameters. Malformed
// colors fall back to the defaults.
func NewMaterial(p Params) *Material {
	def := DefaultParams()
	m := &Material{
		Color:             common.MustParseHex(def.Color),
		Emissive:          common.MustParseHex(def.Emissive),
		EmissiveIntensity: 0.2,
		Wireframe:         p.Wireframe,
		Opacity:           0.9,
	}
	_ = m.SetColor(p.Color)
	_ = m.SetEmissive(p.Emissive)
	return m
}

// SetColor sets the base color from a hex string.
func (m *Material) SetColor(hex string) error {
	c, err := common.ParseHex(hex)
	if err != nil {
		return err
	}
	m.Color = c
	return nil
}

// SetEmissive sets the emissive color from a hex string.
func (m *Material) SetEmissive(hex string) error {
	c, err := common.ParseHex(hex)
	if err != nil {
		return err
	}
	m.Emissive = c
	return nil
}

// SetWireframe toggles wireframe rendering.
func (m *Material) SetWireframe(on bool) {
	m.Wireframe = on
}
